package utils

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
	// header is not of the form "<scheme> <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrNoSubject is returned by TokenSubject when the token carries no
	// "sub" claim.
	ErrNoSubject = errors.New("token has no subject")
)

// ParseBearerToken extracts the token part of an "Authorization" header
// value such as "Bearer eyJhbGciOi...".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || parts[1] == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// TokenSubject returns the "sub" claim of the bearer token found in an
// "Authorization" header value.
//
// The signature is NOT verified: the gateway never makes authentication
// decisions, the subject is only used to identify the caller in logs
// without writing the token itself.
func TokenSubject(authorizationHeader string) (string, error) {
	tokenString, err := ParseBearerToken(authorizationHeader)
	if err != nil {
		return "", err
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", ErrNoSubject
	}

	return sub, nil
}
