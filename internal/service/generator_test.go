package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/passcheck/passcheck-go/internal/crypto"
	"github.com/passcheck/passcheck-go/internal/model"
	"github.com/passcheck/passcheck-go/internal/strength"
)

func intPtr(n int) *int { return &n }

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService(nil)
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Password) != crypto.DefaultLength {
		t.Errorf("expected password length %d, got %d", crypto.DefaultLength, len(resp.Password))
	}
}

func TestGenerate_ClampsLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   int
	}{
		{name: "zero", length: 0, want: 8},
		{name: "too short", length: 3, want: 8},
		{name: "in range", length: 24, want: 24},
		{name: "too long", length: 200, want: 32},
	}

	svc := NewGeneratorService(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Generate(model.GenerateRequest{Length: intPtr(tt.length)})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(resp.Password) != tt.want {
				t.Errorf("expected password length %d, got %d", tt.want, len(resp.Password))
			}
		})
	}
}

func TestGenerate_ScoresPassword(t *testing.T) {
	svc := NewGeneratorService(nil)
	resp, err := svc.Generate(model.GenerateRequest{Length: intPtr(32)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := strength.Check(resp.Password)
	if resp.Score != want.Score || resp.Strength != want.Strength {
		t.Errorf("expected score %d (%s), got %d (%s)", want.Score, want.Strength, resp.Score, resp.Strength)
	}
	if strings.Trim(resp.Password, crypto.Alphabet) != "" {
		t.Errorf("password %q has characters outside the alphabet", resp.Password)
	}
}

func TestGenerate_ReaderFailure(t *testing.T) {
	svc := NewGeneratorService(crypto.NewGenerator(failingReader{}))
	_, err := svc.Generate(model.GenerateRequest{})
	if err == nil {
		t.Fatal("expected error when the random source fails")
	}
}
