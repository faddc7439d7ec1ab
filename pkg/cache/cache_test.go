package cache

import (
	"testing"
	"time"
)

func TestCache(t *testing.T) {
	tests := []struct {
		name    string
		ttl     time.Duration
		actions func(c *Cache, t *testing.T)
	}{
		{
			name: "set and get within TTL",
			ttl:  time.Second,
			actions: func(c *Cache, t *testing.T) {
				c.Set("a", []byte("1"))
				if v, ok := c.Get("a"); !ok || string(v) != "1" {
					t.Errorf("expected value=1, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name: "get after expiration",
			ttl:  time.Millisecond * 50,
			actions: func(c *Cache, t *testing.T) {
				c.Set("a", []byte("1"))
				time.Sleep(time.Millisecond * 60)
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key to be expired")
				}
			},
		},
		{
			name: "stored value is a copy",
			ttl:  time.Second,
			actions: func(c *Cache, t *testing.T) {
				v := []byte("1")
				c.Set("a", v)
				v[0] = '2'
				if got, _ := c.Get("a"); string(got) != "1" {
					t.Errorf("expected stored copy, got=%s", got)
				}
			},
		},
		{
			name: "update value resets TTL",
			ttl:  time.Millisecond * 50,
			actions: func(c *Cache, t *testing.T) {
				c.Set("a", []byte("1"))
				time.Sleep(time.Millisecond * 30)
				c.Set("a", []byte("2"))
				time.Sleep(time.Millisecond * 30)
				if v, ok := c.Get("a"); !ok || string(v) != "2" {
					t.Errorf("expected updated value=2, got=%v", v)
				}
			},
		},
		{
			name: "namespaces do not collide",
			ttl:  time.Second,
			actions: func(c *Cache, t *testing.T) {
				users := c.Namespace("users")
				products := c.Namespace("products")
				users.Set("1", []byte("u"))
				products.Set("1", []byte("p"))
				if v, _ := users.Get("1"); string(v) != "u" {
					t.Errorf("expected u, got=%s", v)
				}
				if v, _ := products.Get("1"); string(v) != "p" {
					t.Errorf("expected p, got=%s", v)
				}
				if c.Size() != 2 {
					t.Errorf("expected shared storage, size=%d", c.Size())
				}
			},
		},
		{
			name: "delete prefix",
			ttl:  time.Second,
			actions: func(c *Cache, t *testing.T) {
				products := c.Namespace("products")
				products.Set("PIZZA#PIZZA_SMALL", []byte("1"))
				products.Set("PIZZA#PIZZA_LARGE", []byte("2"))
				products.Set("PASTA#PASTA_SMALL", []byte("3"))
				c.Set("PIZZA#other", []byte("4"))

				products.DeletePrefix("PIZZA#")

				if _, ok := products.Get("PIZZA#PIZZA_SMALL"); ok {
					t.Errorf("expected PIZZA_SMALL to be removed")
				}
				if _, ok := products.Get("PASTA#PASTA_SMALL"); !ok {
					t.Errorf("expected PASTA_SMALL to stay")
				}
				if _, ok := c.Get("PIZZA#other"); !ok {
					t.Errorf("expected key outside namespace to stay")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.ttl, time.Minute)
			tt.actions(c, t)
		})
	}
}
