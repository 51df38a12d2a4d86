package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-api-gateway/models"
)

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    models.User
		wantErr error
	}{
		{name: "object", body: `{"name":"A","age":30}`, want: models.User{"name": "A", "age": "30"}},
		{name: "empty body is an empty object", body: "", want: models.User{}},
		{name: "whitespace only", body: "  \n ", want: models.User{}},
		{name: "array", body: `[1,2]`, wantErr: ErrInvalidJSONBody},
		{name: "null", body: `null`, wantErr: ErrInvalidJSONBody},
		{name: "malformed", body: `{"name":`, wantErr: ErrInvalidJSONBody},
		{name: "trailing value", body: `{} {}`, wantErr: ErrInvalidJSONBody},
		{name: "too large", body: `{"x":"` + strings.Repeat("a", maxBodySize) + `"}`, wantErr: ErrBodyTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			var got models.User
			err := decodeBody(rr, req, &got)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for k, v := range tt.want {
				assert.Equal(t, v, toString(got[k]), k)
			}
		})
	}
}

func toString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case interface{ String() string }:
		return val.String()
	default:
		return ""
	}
}

func TestDecodeBody_KeepsNumberPrecision(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":12345678901234567890}`))

	var got models.User
	require.NoError(t, decodeBody(httptest.NewRecorder(), req, &got))

	assert.Equal(t, "12345678901234567890", toString(got["id"]))
}

func TestReadBody_WritesBadRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`"text"`))
	rr := httptest.NewRecorder()

	var got models.Credentials
	ok := readBody(rr, req, &got)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"invalid JSON body","status":400}`, rr.Body.String())
}
