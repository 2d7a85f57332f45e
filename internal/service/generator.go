package service

import (
	"fmt"

	"github.com/passcheck/passcheck-go/internal/crypto"
	"github.com/passcheck/passcheck-go/internal/metrics"
	"github.com/passcheck/passcheck-go/internal/model"
	"github.com/passcheck/passcheck-go/internal/strength"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	generator *crypto.Generator
}

// NewGeneratorService creates a new GeneratorService. A nil generator uses crypto/rand.
func NewGeneratorService(gen *crypto.Generator) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	return &GeneratorService{generator: gen}
}

// Generate produces a password of the requested (clamped) length and scores it.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := crypto.DefaultLength
	if req.Length != nil {
		length = *req.Length
	}

	password, err := s.generator.Generate(length)
	if err != nil {
		return model.GenerateResponse{}, fmt.Errorf("generating password: %w", err)
	}
	metrics.ObserveGenerated()

	return model.GenerateResponse{
		Result:   strength.Check(password),
		Password: password,
	}, nil
}
