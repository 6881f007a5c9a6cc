package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

func TestMiddleware_CountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	r := chi.NewRouter()
	r.Use(c.Middleware)
	r.Get("/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/posts/abc123", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	found := false
	for _, mf := range families {
		if mf.GetName() != "sharetable_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["method"] == "GET" && labels["route"] == "/posts/{id}" && labels["status"] == "200" {
				found = true
				if got := m.GetCounter().GetValue(); got != 1 {
					t.Errorf("counter = %v, want 1", got)
				}
			}
		}
	}
	if !found {
		t.Error("request counter with route pattern /posts/{id} not found")
	}
}

func TestMiddleware_RecordsErrorStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	r := chi.NewRouter()
	r.Use(c.Middleware)
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	req := httptest.NewRequest("GET", "/boom", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	found := false
	for _, mf := range families {
		if mf.GetName() != "sharetable_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "status" && lp.GetValue() == "409" {
					found = true
				}
			}
		}
	}
	if !found {
		t.Error("409 status was not recorded")
	}
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordPostCreated()
	c.RecordClaim("accepted")
	c.RecordClaim("conflict")

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "sharetable_posts_created_total 1") {
		t.Errorf("body missing posts counter:\n%s", body)
	}
	if !strings.Contains(body, `sharetable_claims_total{result="accepted"} 1`) {
		t.Errorf("body missing accepted claims counter:\n%s", body)
	}
	if !strings.Contains(body, `sharetable_claims_total{result="conflict"} 1`) {
		t.Errorf("body missing conflict claims counter:\n%s", body)
	}
}
