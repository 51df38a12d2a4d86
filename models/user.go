package models

// User is the user DTO accepted by the create-user and register operations.
//
// The gateway does not own the user schema: fields are kept as decoded from
// the inbound request (numbers as json.Number) and forwarded to the upstream
// service unchanged.
type User map[string]any

// UserUpdate is the partial user DTO accepted by the update-user operation.
// Only the fields present in the inbound request are forwarded.
type UserUpdate map[string]any

// Credentials is the sign-in payload. Its shape (login/email, password, ...)
// is defined by the upstream service.
type Credentials map[string]any
