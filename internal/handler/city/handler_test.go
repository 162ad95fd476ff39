package city

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"

	cityModel "github.com/cndaip/chatroom/internal/model/city"
)

func setupRouter() *chi.Mux {
	handler := New(cityModel.NewMemoryStore(cityModel.Seed()))
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func lookup(t *testing.T, r *chi.Mux, name string) (bool, []cityModel.City) {
	t.Helper()
	target := "/city"
	if name != "" {
		target += "?name=" + url.QueryEscape(name)
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Success bool             `json:"success"`
		Data    []cityModel.City `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body.Success, body.Data
}

func TestLookupFound(t *testing.T) {
	r := setupRouter()

	ok, data := lookup(t, r, "北京")
	if !ok || len(data) != 1 {
		t.Fatalf("unexpected result: ok=%v data=%v", ok, data)
	}
	if data[0].AdCode != "110000" {
		t.Fatalf("unexpected adcode: %s", data[0].AdCode)
	}
}

func TestLookupMiss(t *testing.T) {
	r := setupRouter()

	if ok, _ := lookup(t, r, "亚特兰蒂斯"); ok {
		t.Fatal("expected miss")
	}
}

func TestLookupMissingName(t *testing.T) {
	r := setupRouter()

	if ok, _ := lookup(t, r, ""); ok {
		t.Fatal("expected failure without name parameter")
	}
}
