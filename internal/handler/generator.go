package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/passcheck/passcheck-go/internal/model"
	"github.com/passcheck/passcheck-go/internal/service"
)

// ServerErrorRenderer writes the generic 500 page.
type ServerErrorRenderer interface {
	ServerError(w http.ResponseWriter, r *http.Request)
}

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
	pages   ServerErrorRenderer
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService, pages ServerErrorRenderer) *GeneratorHandler {
	return &GeneratorHandler{service: svc, pages: pages}
}

// HandleGenerate handles GET /api/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	req := model.GenerateRequest{Length: parseLength(r.URL.Query().Get("length"))}

	resp, err := h.service.Generate(req)
	if err != nil {
		slog.ErrorContext(r.Context(), "password generation failed", "error", err)
		h.pages.ServerError(w, r)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// parseLength returns nil when raw is missing or not an integer. Integers
// outside the int range are pinned to its bounds and clamped later.
func parseLength(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil
	}

	n = min(max(n, math.MinInt), math.MaxInt)
	length := int(n)
	return &length
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
