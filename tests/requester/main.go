package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// Drives a local instance with a customer placing orders and polling them.
// Expects the sample catalog from `pizza seed` and an existing customer.

var (
	baseURL  = env("BASE_URL", "http://localhost:8080")
	email    = env("CUSTOMER_EMAIL", "customer@pizza.com")
	password = env("CUSTOMER_PASSWORD", "customer123")
)

var variants = []string{
	"MARG_SMALL", "MARG_MEDIUM", "MARG_LARGE",
	"PEPP_SMALL", "PEPP_MEDIUM", "PEPP_LARGE",
	"HAWAII_LARGE", "FOURCHEESE_MEDIUM",
}

func main() {
	token, customerID, err := login()
	if err != nil {
		fmt.Println("login failed:", err)
		os.Exit(1)
	}

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { placeOrder(token) })
		}
		wg.Go(func() { get(token, "/orders/customer/"+customerID+"/current") })
		wg.Wait()
		time.Sleep(200 * time.Millisecond)
	}
}

func login() (string, string, error) {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := http.Post(baseURL+"/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("POST /auth/login -> %s", resp.Status)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", "", err
	}
	return out.Token, subject(out.Token), nil
}

// subject reads the sub claim without verifying the token.
func subject(token string) string {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return ""
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return ""
	}
	var claims struct {
		Sub string `json:"sub"`
	}
	json.Unmarshal(payload, &claims)
	return claims.Sub
}

func placeOrder(token string) {
	items := make([]map[string]any, 0, 3)
	for range 1 + rand.Intn(3) {
		v := variants[rand.Intn(len(variants))]
		if rand.Intn(10) == 0 {
			v = "GHOST_SMALL"
		}
		items = append(items, map[string]any{
			"baseSku":    baseOf(v),
			"variantSku": v,
			"quantity":   1 + rand.Intn(3),
		})
	}

	order := map[string]any{"type": "pickup", "items": items}
	if rand.Intn(2) == 0 {
		order["type"] = "delivery"
		order["deliveryInformation"] = map[string]string{
			"addressLine1": "1 Main St",
			"postalCode":   "10001",
			"city":         "New York",
			"country":      "US",
		}
	}

	body, _ := json.Marshal(order)
	do(token, http.MethodPost, "/orders", body)
}

func get(token, path string) {
	do(token, http.MethodGet, path, nil)
}

func do(token, method, path string, body []byte) {
	req, err := http.NewRequest(method, baseURL+path, bytes.NewReader(body))
	if err != nil {
		fmt.Println("request error:", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("request error:", err)
		return
	}
	resp.Body.Close()
	fmt.Println(method, path, "->", resp.Status)
}

func baseOf(variant string) string {
	if i := strings.LastIndex(variant, "_"); i >= 0 {
		return variant[:i]
	}
	return variant
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
