package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	s := &Server{Catalog: NewSnapshot(Seed()), Log: zap.NewNop()}
	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return resp.StatusCode
}

func TestHTTP_ListWithQuery(t *testing.T) {
	ts := newTestServer(t)

	var all []Product
	if code := getJSON(t, ts.URL+"/", &all); code != http.StatusOK {
		t.Fatalf("status=%d", code)
	}
	if len(all) != 3 {
		t.Fatalf("len=%d want 3", len(all))
	}

	var rings []Product
	getJSON(t, ts.URL+"/?q=RING", &rings)
	if len(rings) != 2 || rings[0].ID != 2 || rings[1].ID != 3 {
		t.Fatalf("rings=%+v", rings)
	}

	var none []Product
	getJSON(t, ts.URL+"/?q=diamond", &none)
	if none == nil || len(none) != 0 {
		t.Fatalf("want empty array, got %+v", none)
	}
}

func TestHTTP_Get(t *testing.T) {
	ts := newTestServer(t)

	var p Product
	if code := getJSON(t, ts.URL+"/3", &p); code != http.StatusOK || p.Name != "Emerald Earrings" {
		t.Fatalf("status=%d product=%+v", code, p)
	}

	if code := getJSON(t, ts.URL+"/99", nil); code != http.StatusNotFound {
		t.Fatalf("unknown id status=%d", code)
	}
	if code := getJSON(t, ts.URL+"/abc", nil); code != http.StatusBadRequest {
		t.Fatalf("bad id status=%d", code)
	}
}
