package utils

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-api-gateway/internal/logger"
)

func TestNewHTTPClient_AppliesOptions(t *testing.T) {
	client := NewHTTPClient(HTTPClientOptions{Timeout: 3 * time.Second, MaxRedirects: 2})

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
	assert.Equal(t, 0, client.RetryCount)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(HTTPClientOptions{})
	client2 := NewHTTPClient(HTTPClientOptions{})

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_StopsAfterMaxRedirects(t *testing.T) {
	var hops atomic.Int32
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hops.Add(1)
		http.Redirect(w, r, srv.URL+"/next", http.StatusFound)
	}))
	defer srv.Close()

	client := NewHTTPClient(HTTPClientOptions{Timeout: time.Second, MaxRedirects: 2})
	_, err := client.R().Get(srv.URL)

	require.Error(t, err)
	// the initial request plus two followed redirects
	assert.Equal(t, int32(3), hops.Load())
}

func TestNewHTTPClient_FollowsRedirectsWithinLimit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/end", http.StatusFound)
	})
	mux.HandleFunc("/end", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("done"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewHTTPClient(HTTPClientOptions{Timeout: time.Second, MaxRedirects: 5})
	resp, err := client.R().Get(srv.URL + "/start")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "done", string(resp.Body()))
}

type countingTransport struct {
	calls atomic.Int32
}

func (c *countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	c.calls.Add(1)
	return http.DefaultTransport.RoundTrip(r)
}

func TestNewHTTPClient_UsesCustomTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	transport := &countingTransport{}
	client := NewHTTPClient(HTTPClientOptions{Timeout: time.Second, Transport: transport})

	_, err := client.R().Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(1), transport.calls.Load())
}

func TestRestyLogger_WritesComponentField(t *testing.T) {
	var buf bytes.Buffer
	l := &logger.Logger{Logger: zerolog.New(&buf)}

	restyLogger{log: l}.Warnf("something %s", "odd")

	assert.Contains(t, buf.String(), `"component":"resty"`)
	assert.Contains(t, buf.String(), `"message":"something odd"`)
}
