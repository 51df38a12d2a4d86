package adapter

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// RequestDescriptor is everything needed to dispatch one upstream call. It is
// built fresh for each call.
type RequestDescriptor struct {
	Operation Operation
	// URL is the absolute target address.
	URL string
	// Body is the marshalled JSON body, nil when the operation sends none.
	Body []byte
	// Authorization is the value of the outbound Authorization header. Empty
	// means the header is not sent.
	Authorization string
}

// NewRequestDescriptor builds the outbound request for op. id replaces the
// "{id}" placeholder verbatim. token is attached only when op requires it.
// body, when not nil, is marshalled to JSON.
func NewRequestDescriptor(baseURL string, op Operation, id, token string, body any) (RequestDescriptor, error) {
	target := strings.TrimRight(baseURL, "/") + strings.Replace(op.Path, "{id}", id, 1)

	u, err := url.Parse(target)
	if err != nil {
		return RequestDescriptor{}, fmt.Errorf("%w: %w", errInvalidTargetURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return RequestDescriptor{}, fmt.Errorf("%w: %q is not an absolute http(s) address", errInvalidTargetURL, target)
	}

	desc := RequestDescriptor{
		Operation: op,
		URL:       target,
	}

	if body != nil {
		desc.Body, err = json.Marshal(body)
		if err != nil {
			return RequestDescriptor{}, fmt.Errorf("marshal %s body: %w", op.Name, err)
		}
	}

	if op.TokenRequired && token != "" {
		if !validHeaderValue(token) {
			return RequestDescriptor{}, errInvalidAuthorization
		}
		desc.Authorization = token
	}

	return desc, nil
}

// validHeaderValue rejects control characters, which net/http refuses to
// send.
func validHeaderValue(v string) bool {
	for i := 0; i < len(v); i++ {
		c := v[i]
		if (c < ' ' && c != '\t') || c == 0x7f {
			return false
		}
	}
	return true
}
