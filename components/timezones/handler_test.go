package timezones

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type handlerResponse struct {
	Data []Option `json:"data"`
}

func serve(t *testing.T, h http.Handler, method, target string) (*httptest.ResponseRecorder, handlerResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	var payload handlerResponse
	if rec.Code == http.StatusOK && method == http.MethodGet {
		if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return rec, payload
}

func TestHandler_EmptyQueryReturnsEmptyArray(t *testing.T) {
	rec, payload := serve(t, NewHandler(WithZones([]string{"UTC"})), http.MethodGet, "/api/timezones")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content type, got %q", ct)
	}
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
}

func TestHandler_SearchLimitClamp(t *testing.T) {
	h := NewHandler(
		WithZones([]string{"America/Chicago", "America/New_York", "Europe/Paris", "UTC"}),
		WithMaxLimit(2),
	)
	_, payload := serve(t, h, http.MethodGet, "/api/timezones?q=America&limit=10")

	want := []Option{
		{Value: "America/Chicago", Label: "America/Chicago"},
		{Value: "America/New_York", Label: "America/New_York"},
	}
	if diff := cmp.Diff(want, payload.Data); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_PriorityParam(t *testing.T) {
	h := NewHandler(WithZones([]string{"America/Chicago", "America/New_York", "Europe/Paris"}))
	_, payload := serve(t, h, http.MethodGet, "/api/timezones?q=america&priority=America/New_York,,Europe/Paris")

	want := []Option{
		{Value: "America/New_York", Label: "America/New_York", Priority: true},
		{Value: "America/Chicago", Label: "America/Chicago"},
	}
	if diff := cmp.Diff(want, payload.Data); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_CustomParams(t *testing.T) {
	h := NewHandler(
		WithZones([]string{"UTC", "Europe/Paris"}),
		WithSearchParam("search"),
		WithLimitParam("l"),
	)
	_, payload := serve(t, h, http.MethodGet, "/api/timezones?search=utc&l=5")
	if len(payload.Data) != 1 || payload.Data[0].Value != "UTC" {
		t.Fatalf("unexpected payload %#v", payload.Data)
	}
}

func TestHandler_GuardStatus(t *testing.T) {
	h := NewHandler(
		WithZones([]string{"UTC"}),
		WithGuard(func(*http.Request) error { return StatusError{Code: http.StatusUnauthorized} }),
	)
	rec, _ := serve(t, h, http.MethodGet, "/api/timezones?q=utc")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	rec, _ := serve(t, NewHandler(WithZones([]string{"UTC"})), http.MethodPost, "/api/timezones")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("unexpected Allow header %q", allow)
	}
}

func TestHandler_NegativeLimit(t *testing.T) {
	_, payload := serve(t, NewHandler(WithZones([]string{"UTC"})), http.MethodGet, "/api/timezones?q=utc&limit=-1")
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
}
