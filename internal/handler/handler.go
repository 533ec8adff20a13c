package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dungpa45/5-star-rating/internal/buildinfo"
	"github.com/dungpa45/5-star-rating/internal/models"
	"github.com/dungpa45/5-star-rating/internal/service"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const (
	contentTypeJSON = "application/json"

	// MaxRequestBodySize - предельный размер тела запроса (после распаковки gzip)
	MaxRequestBodySize = 64 << 10
)

// ReviewService определяет интерфейс генерации отзывов
type ReviewService interface {
	Generate(ctx context.Context, req models.ReviewRequest) (*models.ReviewResult, error)
	Language(req models.ReviewRequest) string
}

type Handler struct {
	service ReviewService
	build   *buildinfo.Info
	logger  *zap.Logger
}

func NewHandler(service ReviewService, build *buildinfo.Info, logger *zap.Logger) *Handler {
	if build == nil {
		build = buildinfo.DefaultInfo()
	}
	return &Handler{
		service: service,
		build:   build,
		logger:  logger,
	}
}

// HandleGenerateReview обрабатывает POST /api/generate-review
func (h *Handler) HandleGenerateReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		h.writeJSON(w, http.StatusMethodNotAllowed, models.ReviewResult{Error: true, Message: "Method not allowed"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodySize)
	defer func() {
		if err := r.Body.Close(); err != nil {
			h.logger.Error("Error closing request body", zap.Error(err))
		}
	}()

	var req models.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		lang := h.service.Language(req)
		h.logger.Warn("Invalid request body",
			zap.String("request_id", chimiddleware.GetReqID(r.Context())),
			zap.Error(err),
		)

		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeJSON(w, http.StatusRequestEntityTooLarge, models.ReviewResult{
				Error:   true,
				Message: service.Message(lang, service.MsgBodyTooLarge),
			})
			return
		}
		h.writeJSON(w, http.StatusBadRequest, models.ReviewResult{
			Error:   true,
			Message: service.Message(lang, service.MsgInvalidBody),
		})
		return
	}

	result, err := h.service.Generate(r.Context(), req)
	if err != nil {
		status, body := h.errorResponse(h.service.Language(req), err)
		h.writeJSON(w, status, body)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// errorResponse сопоставляет ошибку сервиса со статусом и телом ответа
func (h *Handler) errorResponse(lang string, err error) (int, models.ReviewResult) {
	var (
		verr *service.ValidationError
		uerr *service.InvalidURLError
		aerr *service.UpstreamError
	)

	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, models.ReviewResult{
			Error:   true,
			Message: service.Message(lang, service.MsgValidationFailed),
			Details: verr.Fields,
		}
	case errors.As(err, &uerr):
		return http.StatusBadRequest, models.ReviewResult{
			Error:   true,
			Message: service.Message(lang, service.MsgInvalidURL),
		}
	case errors.As(err, &aerr):
		body := models.ReviewResult{
			Error:   true,
			Message: service.Message(lang, service.MsgGenerationFailed),
		}
		if msg := aerr.ClientMessage(); msg != "" {
			body.Details = msg
		}
		return http.StatusInternalServerError, body
	default:
		h.logger.Error("Unexpected error generating review", zap.Error(err))
		return http.StatusInternalServerError, models.ReviewResult{
			Error:   true,
			Message: service.Message(lang, service.MsgInternal),
		}
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Error writing JSON response", zap.Error(err))
	}
}
