package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeRequest creates a test request with a buffered logger in context the
// same way withTraceID does.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/api/users",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/api/users"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:            "POST 201",
			method:          http.MethodPost,
			path:            "/api/users",
			handlerStatus:   http.StatusCreated,
			handlerResponse: `{"id":"1"}`,
			checkLogContains: []string{
				`"method":"POST"`,
				`"status":201`,
				`"size":10`,
			},
		},
		{
			name:          "503 without body",
			method:        http.MethodGet,
			path:          "/api/health",
			handlerStatus: http.StatusServiceUnavailable,
			checkLogContains: []string{
				`"status":503`,
				`"size":0`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &buf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, s := range tt.checkLogContains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})

	newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"size":5`)
}

func TestWithLogging_LogsSubjectNotToken(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-7"}).
		SignedString([]byte("upstream-secret"))
	require.NoError(t, err)

	var buf bytes.Buffer
	req := makeRequest(http.MethodGet, "/api/users", &buf)
	req.Header.Set("Authorization", "Bearer "+token)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"subject":"user-7"`)
	assert.NotContains(t, buf.String(), token)
}

func TestWithLogging_OpaqueTokenIsNotLogged(t *testing.T) {
	var buf bytes.Buffer
	req := makeRequest(http.MethodGet, "/api/users", &buf)
	req.Header.Set("Authorization", "Bearer opaque-secret-value")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.NotContains(t, buf.String(), "opaque-secret-value")
	assert.NotContains(t, buf.String(), `"subject"`)
}
