package service

import (
	"testing"

	"github.com/passcheck/passcheck-go/internal/model"
	"github.com/passcheck/passcheck-go/internal/strength"
)

func TestCheck_EmptyPassword(t *testing.T) {
	svc := NewStrengthService()

	_, err := svc.Check(model.CheckRequest{Password: ""})

	if err != ErrPasswordRequired {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestCheck_ReturnsResult(t *testing.T) {
	svc := NewStrengthService()

	result, err := svc.Check(model.CheckRequest{Password: "aaaa1111"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 2 {
		t.Errorf("expected score 2, got %d", result.Score)
	}
	if result.Strength != strength.VeryWeak {
		t.Errorf("expected %q, got %q", strength.VeryWeak, result.Strength)
	}
}
