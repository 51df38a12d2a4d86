package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-api-gateway/internal/adapter"
	"github.com/MKhiriev/go-api-gateway/internal/config"
	"github.com/MKhiriev/go-api-gateway/internal/logger"
	"github.com/MKhiriev/go-api-gateway/internal/service"
	"github.com/MKhiriev/go-api-gateway/models"
)

// newGateway wires the real adapter, services and router against baseURL.
func newGateway(t *testing.T, baseURL, prefix string) *chi.Mux {
	t.Helper()

	redirects := 2
	upstream := adapter.NewHTTPUpstreamAdapter(config.Upstream{
		BaseURL:        baseURL,
		RequestTimeout: 2 * time.Second,
		MaxRedirects:   &redirects,
	}, logger.Nop())

	buildInfo := models.NewAppBuildInfo("go-api-gateway", "v1.2.3", "2026-10-01", "abc123")
	services := service.NewServices(upstream, buildInfo, logger.Nop())

	return NewHandler(services, config.Server{PathPrefix: prefix}, logger.Nop()).Init()
}

// serve sends one request through router and returns the recorded response.
func serve(router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestNewHandler_TrimsPrefix(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{prefix: "/api", want: "/api"},
		{prefix: "/api/", want: "/api"},
		{prefix: "/", want: ""},
		{prefix: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			h := NewHandler(&service.Services{}, config.Server{PathPrefix: tt.prefix}, logger.Nop())
			assert.Equal(t, tt.want, h.pathPrefix)
		})
	}
}

func TestInit_ReturnsRouter(t *testing.T) {
	router := newGateway(t, "http://127.0.0.1:1", "/api")
	require.NotNil(t, router)
}

func TestGetBuildInfo(t *testing.T) {
	router := newGateway(t, "http://127.0.0.1:1", "/api")

	rr := serve(router, http.MethodGet, "/api/", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"service":"go-api-gateway","version":"v1.2.3","date":"2026-10-01","commit":"abc123"}`,
		rr.Body.String())
}

func TestGetBuildInfo_DoesNotCallUpstream(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	router := newGateway(t, srv.URL, "/api")
	rr := serve(router, http.MethodGet, "/api/", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Zero(t, calls)
}

func TestMetrics_OutsidePrefix(t *testing.T) {
	router := newGateway(t, "http://127.0.0.1:1", "/api")

	rr := serve(router, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}

func TestEmptyPrefix_MountsAtRoot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	router := newGateway(t, srv.URL, "")

	rr := serve(router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())

	rr = serve(router, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
