package adapter

import (
	"context"
	"net/http"
	"sync/atomic"
)

type dispatchKey struct{}

// withDispatchMarker returns a context whose requests record when they reach
// the transport.
func withDispatchMarker(ctx context.Context) (context.Context, *atomic.Bool) {
	marker := new(atomic.Bool)
	return context.WithValue(ctx, dispatchKey{}, marker), marker
}

// dispatchTransport marks the request context as dispatched before handing
// the request to the network.
type dispatchTransport struct {
	next http.RoundTripper
}

func newDispatchTransport(next http.RoundTripper) *dispatchTransport {
	if next == nil {
		next = http.DefaultTransport.(*http.Transport).Clone()
	}
	return &dispatchTransport{next: next}
}

func (t *dispatchTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if marker, ok := r.Context().Value(dispatchKey{}).(*atomic.Bool); ok {
		marker.Store(true)
	}
	return t.next.RoundTrip(r)
}
