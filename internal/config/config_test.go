package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnv(t *testing.T) {
	t.Setenv("POSTGRES_USER", "pizza")
	t.Setenv("POSTGRES_PASSWORD", "pizza")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")
}

func TestNew_Defaults(t *testing.T) {
	validEnv(t)

	conf := New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "development", conf.Env)
	assert.Equal(t, "8080", conf.Http.Port)
	assert.Equal(t, time.Hour, conf.JWT.TTL)
	assert.Equal(t, 10, conf.Bcrypt.Cost)
	assert.Equal(t, 10*time.Second, conf.Query.DrainTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, conf.Cors.AllowedOrigins)
}

func TestNew_Overrides(t *testing.T) {
	validEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("QUERY_DRAIN_PAGE_SIZE", "not-a-number")
	t.Setenv("ALLOWED_CORS_ORIGINS", "http://a.com,http://b.com")

	conf := New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "production", conf.Env)
	assert.Equal(t, "9000", conf.Http.Port)
	assert.Equal(t, 15*time.Minute, conf.JWT.TTL)
	assert.Equal(t, 100, conf.Query.DrainPageSize)
	assert.Equal(t, []string{"http://a.com", "http://b.com"}, conf.Cors.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{"missing jwt secret", map[string]string{"JWT_SECRET": ""}},
		{"short jwt secret", map[string]string{"JWT_SECRET": "short"}},
		{"unknown env", map[string]string{"ENV": "dev"}},
		{"bcrypt cost too low", map[string]string{"BCRYPT_COST": "2"}},
		{"seed admin without password", map[string]string{"SEED_ADMIN_EMAIL": "admin@pizza.com"}},
		{"bad ssl mode", map[string]string{"POSTGRES_SSL_MODE": "maybe"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			validEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			assert.Error(t, New().Validate())
		})
	}
}

func TestSectionValidate(t *testing.T) {
	validEnv(t)
	t.Setenv("JWT_SECRET", "")

	conf := New()
	require.Error(t, conf.Validate())
	assert.NoError(t, conf.Postgres.Validate())
	assert.NoError(t, conf.Seed.Validate())

	t.Setenv("SEED_ADMIN_EMAIL", "admin@pizza.com")
	assert.Error(t, New().Seed.Validate())
}
