//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"
)

var baseURL = getenv("E2E_BASE_URL", "http://localhost:8080")

func TestSystem_E2E_Storefront(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	waitReady(t, ctx, baseURL+"/readyz")

	var products []map[string]any
	doJSON(t, http.MethodGet, baseURL+"/products", nil, &products, 200)
	if len(products) == 0 {
		t.Fatalf("expected non-empty products")
	}

	pid, ok := products[0]["id"].(float64)
	if !ok {
		t.Fatalf("product id missing in response: %#v", products[0])
	}

	var view struct {
		SessionID string `json:"session_id"`
		Locale    string `json:"locale"`
		Header    struct {
			CartCount int `json:"cart_count"`
		} `json:"header"`
		Checkout struct {
			Total int64 `json:"total"`
		} `json:"checkout"`
	}
	doJSON(t, http.MethodPost, baseURL+"/sessions", nil, &view, 201)
	if view.SessionID == "" {
		t.Fatalf("session id missing")
	}
	session := baseURL + "/sessions/" + view.SessionID

	doJSON(t, http.MethodPost, session+"/cart", map[string]any{"product_id": pid}, &view, 200)
	doJSON(t, http.MethodPost, session+"/cart", map[string]any{"product_id": pid}, &view, 200)
	if view.Header.CartCount != 2 {
		t.Fatalf("cart count=%d", view.Header.CartCount)
	}

	price, _ := products[0]["price"].(float64)
	if view.Checkout.Total != 2*int64(price) {
		t.Fatalf("total=%d want %d", view.Checkout.Total, 2*int64(price))
	}

	doJSON(t, http.MethodPut, session+"/locale", map[string]any{"locale": "jp"}, nil, 400)
	doJSON(t, http.MethodPut, session+"/locale", map[string]any{"locale": "es"}, &view, 200)
	if view.Locale != "es" {
		t.Fatalf("locale=%q", view.Locale)
	}
}

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}

	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		resp, err := client.Do(req)
		if err == nil && resp != nil && resp.StatusCode == 200 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("service not ready: %s", url)
}

func doJSON(t *testing.T, method, url string, body any, out any, want int) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		t.Fatalf("%s %s: status=%d want=%d", method, url, resp.StatusCode, want)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
