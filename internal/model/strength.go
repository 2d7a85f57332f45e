package model

// CheckRequest represents a password strength check request.
type CheckRequest struct {
	Password string `json:"password"`
}
