package models

// LoginRequest holds a credential submission. Shape is validated locally
// before any network call; accessKey is forwarded verbatim to the upstream
// API and never interpreted here.
type LoginRequest struct {
	Email     string `json:"email" form:"email" validate:"required,email"`
	Password  string `json:"password" form:"password" validate:"required,min=6"`
	AccessKey string `json:"accessKey,omitempty" form:"accessKey" validate:"omitempty"`
}

// LoginResult is the outcome of a successful credential exchange with the
// upstream API: the authenticated user plus the bearer token that authorizes
// subsequent calls on their behalf. A nil LoginResult means "no session
// created" regardless of why.
type LoginResult struct {
	User  User
	Token string
}
