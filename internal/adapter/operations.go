package adapter

import "net/http"

// ResponseShape tells how a successful upstream body is interpreted.
type ResponseShape int

const (
	// ShapeJSON bodies are relayed as they are.
	ShapeJSON ResponseShape = iota
	// ShapeBinary bodies are raw bytes (the 2FA QR image).
	ShapeBinary
)

func (s ResponseShape) String() string {
	if s == ShapeBinary {
		return "binary"
	}
	return "json"
}

// Operation is one entry of the operation catalogue.
type Operation struct {
	// Name identifies the operation in logs and metrics.
	Name string
	// Method is the upstream HTTP method.
	Method string
	// Path is the upstream path relative to the base URL. It may contain a
	// single "{id}" placeholder.
	Path string
	// TokenRequired operations carry the caller's Authorization value.
	TokenRequired bool
	// Response is the shape of a successful body.
	Response ResponseShape
	// FailureMessage is reported when the upstream error body has no message.
	FailureMessage string
}

// Catalogue entries. They are values and must not be modified.
var (
	OpHealth = Operation{
		Name: "health", Method: http.MethodGet, Path: "/health",
		FailureMessage: "Health check failed",
	}

	OpListUsers = Operation{
		Name: "listUsers", Method: http.MethodGet, Path: "/users", TokenRequired: true,
		FailureMessage: "Failed to fetch users",
	}
	OpCreateUser = Operation{
		Name: "createUser", Method: http.MethodPost, Path: "/users", TokenRequired: true,
		FailureMessage: "Failed to create user",
	}
	OpGetUser = Operation{
		Name: "getUser", Method: http.MethodGet, Path: "/users/{id}", TokenRequired: true,
		FailureMessage: "Failed to fetch user",
	}
	OpUpdateUser = Operation{
		Name: "updateUser", Method: http.MethodPatch, Path: "/users/{id}", TokenRequired: true,
		FailureMessage: "Failed to update user",
	}
	OpDeleteUser = Operation{
		Name: "deleteUser", Method: http.MethodDelete, Path: "/users/{id}", TokenRequired: true,
		FailureMessage: "Failed to delete user",
	}

	OpRegister = Operation{
		Name: "register", Method: http.MethodPost, Path: "/auth/register",
		FailureMessage: "Registration failed",
	}
	OpSignIn = Operation{
		Name: "signIn", Method: http.MethodPost, Path: "/auth/signIn",
		FailureMessage: "Sign in failed",
	}
	OpRequestPasswordReset = Operation{
		Name: "requestPasswordReset", Method: http.MethodPost, Path: "/auth/request-reset-password",
		FailureMessage: "Password reset request failed",
	}
	OpResetPassword = Operation{
		Name: "resetPassword", Method: http.MethodPost, Path: "/auth/reset-password",
		FailureMessage: "Password reset failed",
	}

	OpGenerateQR = Operation{
		Name: "generateQr", Method: http.MethodPost, Path: "/2fa/generate-qr", TokenRequired: true,
		Response:       ShapeBinary,
		FailureMessage: "Failed to generate QR code",
	}
	OpTurnOn2FA = Operation{
		Name: "turnOn2fa", Method: http.MethodPost, Path: "/2fa/turn-on-qr", TokenRequired: true,
		FailureMessage: "Failed to turn on two-factor authentication",
	}
	OpAuthenticate2FA = Operation{
		Name: "authenticate2fa", Method: http.MethodPost, Path: "/2fa/authenticate", TokenRequired: true,
		FailureMessage: "Two-factor authentication failed",
	}
)

// Operations returns the whole catalogue in a stable order.
func Operations() []Operation {
	return []Operation{
		OpHealth,
		OpListUsers, OpCreateUser, OpGetUser, OpUpdateUser, OpDeleteUser,
		OpRegister, OpSignIn, OpRequestPasswordReset, OpResetPassword,
		OpGenerateQR, OpTurnOn2FA, OpAuthenticate2FA,
	}
}
