package models

// PasswordResetRequest asks the upstream service to send a password reset
// code to Email.
type PasswordResetRequest struct {
	// Email is the address the reset code is sent to. It is kept as decoded
	// and omitted when the caller did not send it.
	Email any `json:"email,omitempty"`
}

// PasswordReset is the reset-password payload (reset code, new password and
// whatever else the upstream service requires).
type PasswordReset map[string]any

// TwoFactorCode carries a one-time code produced by the user's authenticator
// app. The code is forwarded exactly as received, string or number (numbers
// arrive as json.Number), and omitted when absent.
type TwoFactorCode struct {
	Code any `json:"code,omitempty"`
}
