package internal

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"itam-dashboard/internal/config"
)

func TestMetricsEndpoint(t *testing.T) {
	// Create a new metrics instance
	metrics := NewMetrics()

	// Create a Chi router with the middleware attached
	router := chi.NewRouter()
	router.Use(metrics.Middleware())

	// Add a test endpoint
	router.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	// Mount metrics endpoint
	router.Get("/metrics", metrics.Handler().ServeHTTP)

	// Make a request to generate some metrics
	testReq := httptest.NewRequest("GET", "/ping", nil)
	testW := httptest.NewRecorder()
	router.ServeHTTP(testW, testReq)

	// Verify the test request worked
	if testW.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", testW.Code)
	}

	// Now test metrics endpoint
	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	// Check for expected metric names
	body := w.Body.String()
	expectedMetrics := []string{"http_requests_total", "http_request_duration_seconds"}
	for _, metric := range expectedMetrics {
		if !strings.Contains(body, metric) {
			t.Errorf("Expected metric '%s' not found in response", metric)
		}
	}

	// Check that we have metrics for the /ping endpoint
	if !strings.Contains(body, `path="/ping"`) {
		t.Error("Expected metrics to contain path label for /ping endpoint")
	}
}

func TestMetricsWithChiRoutePatterns(t *testing.T) {
	metrics := NewMetrics()
	router := chi.NewRouter()
	router.Use(metrics.Middleware())

	// Add a parameterized route
	router.Get("/offices/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("office"))
	})

	// Mount metrics endpoint
	router.Get("/metrics", metrics.Handler().ServeHTTP)

	// Make a request to generate metrics
	testReq := httptest.NewRequest("GET", "/offices/123", nil)
	testW := httptest.NewRecorder()
	router.ServeHTTP(testW, testReq)

	// Now check metrics
	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	body := w.Body.String()

	// Should contain the route pattern, not the actual path
	if !strings.Contains(body, `path="/offices/{id}"`) {
		t.Error("Expected metrics to contain Chi route pattern, not actual path")
	}
}

func TestServerWithMetricsEnabled(t *testing.T) {
	t.Setenv("ENABLE_METRICS", "true")

	srv := NewServer(&config.Config{
		CMSBaseURL: "http://localhost:1337",
		ListenAddr: ":0",
		SessionTTL: time.Hour,
	})

	// Generate a sample
	healthReq := httptest.NewRequest("GET", "/health", nil)
	healthW := httptest.NewRecorder()
	srv.Router.ServeHTTP(healthW, healthReq)
	if healthW.Code != http.StatusOK {
		t.Fatalf("Expected status 200 from /health, got %d", healthW.Code)
	}

	// Scrape the server's own endpoint
	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 from /metrics, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "http_requests_total") {
		t.Error("Expected http_requests_total in scrape output")
	}
	if !strings.Contains(body, `path="/health"`) {
		t.Error("Expected metrics to contain path label for /health")
	}

	// Scrape again: the scrape endpoint itself must not be recorded
	w2 := httptest.NewRecorder()
	srv.Router.ServeHTTP(w2, httptest.NewRequest("GET", "/metrics", nil))
	if strings.Contains(w2.Body.String(), `path="/metrics"`) {
		t.Error("Scrape requests must not generate their own series")
	}
}

func TestServerWithMetricsDisabled(t *testing.T) {
	t.Setenv("ENABLE_METRICS", "")

	srv := NewServer(&config.Config{
		CMSBaseURL: "http://localhost:1337",
		ListenAddr: ":0",
		SessionTTL: time.Hour,
	})

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for /metrics when disabled, got %d", w.Code)
	}
}
