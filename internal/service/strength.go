package service

import (
	"errors"

	"github.com/passcheck/passcheck-go/internal/metrics"
	"github.com/passcheck/passcheck-go/internal/model"
	"github.com/passcheck/passcheck-go/internal/strength"
)

var ErrPasswordRequired = errors.New("password is required")

// StrengthService handles password scoring.
type StrengthService struct{}

// NewStrengthService creates a new StrengthService.
func NewStrengthService() *StrengthService {
	return &StrengthService{}
}

// Check scores the password in req. The password is never stored or logged.
func (s *StrengthService) Check(req model.CheckRequest) (strength.Result, error) {
	if req.Password == "" {
		return strength.Result{}, ErrPasswordRequired
	}

	result := strength.Check(req.Password)
	metrics.ObserveCheck(result.Strength)
	return result, nil
}
