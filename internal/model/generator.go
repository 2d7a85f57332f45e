package model

import "github.com/passcheck/passcheck-go/internal/strength"

// GenerateRequest represents a password generation request.
// A nil Length means the default length; any other value is clamped.
type GenerateRequest struct {
	Length *int
}

// GenerateResponse is the strength record for a generated password plus the password itself.
type GenerateResponse struct {
	strength.Result
	Password string `json:"password"`
}
