// Package service содержит бизнес-логику генерации отзывов.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/dungpa45/5-star-rating/internal/completion"
	"github.com/dungpa45/5-star-rating/internal/config"
	"github.com/dungpa45/5-star-rating/internal/models"
	"github.com/dungpa45/5-star-rating/internal/placeinfo"
	"github.com/dungpa45/5-star-rating/internal/prompt"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewService проверяет запрос, извлекает данные места, дополняет prompt
// и запрашивает текст у сервиса генерации
type ReviewService struct {
	client   completion.Client
	cfg      *config.Config
	logger   *zap.Logger
	validate *validator.Validate
	extract  func(rawURL string) (models.PlaceDescriptor, error)
}

// NewReviewService создает новый экземпляр ReviewService
func NewReviewService(client completion.Client, cfg *config.Config, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		client:   client,
		cfg:      cfg,
		logger:   logger,
		validate: newValidator(cfg.PromptMinLength, cfg.PromptMaxLength),
		extract:  placeinfo.Extract,
	}
}

// Language возвращает язык пользовательских сообщений для запроса
func (s *ReviewService) Language(req models.ReviewRequest) string {
	switch req.Language {
	case "vi", "en":
		return req.Language
	}
	return s.cfg.DefaultLanguage
}

// Generate обрабатывает запрос на генерацию отзыва.
// Для prompt "extract_place_info" (или пустого prompt) возвращаются только
// метаданные места без обращения к AI. Повторов и кэширования нет.
func (s *ReviewService) Generate(ctx context.Context, req models.ReviewRequest) (*models.ReviewResult, error) {
	log := s.logger.With(
		zap.String("request_id", middleware.GetReqID(ctx)),
		zap.String("generation_id", uuid.NewString()),
		zap.String("map_url", req.MapURL),
	)
	lang := s.Language(req)

	log.Info("Review request received",
		zap.Bool("extract_only", req.IsExtractOnly()),
		zap.String("language", lang),
		zap.String("style", req.Style),
	)

	if err := s.validateRequest(req, lang); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			log.Warn("Review request rejected", zap.Any("fields", verr.Fields))
		}
		return nil, err
	}

	place, err := s.extract(req.MapURL)
	if err != nil {
		log.Warn("Place info extraction failed", zap.Error(err))
		return nil, &InvalidURLError{URL: req.MapURL, Err: err}
	}

	log.Info("Place info extracted",
		zap.Stringp("name", place.Name),
		zap.Bool("has_coordinates", place.Coordinates != nil),
		zap.Stringp("place_id", place.PlaceID),
	)

	if req.IsExtractOnly() {
		return &models.ReviewResult{PlaceInfo: &place}, nil
	}

	base := req.Prompt
	if req.Language != "" || req.Style != "" {
		base += "\n\n" + prompt.Requirements(lang, req.Style)
	}
	composed := prompt.Compose(base, &place, req.MapURL)

	start := time.Now()
	review, err := s.client.Complete(ctx, prompt.SystemInstruction, composed)
	latency := time.Since(start)
	if err != nil {
		fields := []zap.Field{zap.Error(err), zap.Duration("latency", latency)}
		var cerr *completion.Error
		if errors.As(err, &cerr) {
			fields = append(fields, zap.String("kind", string(cerr.Kind)), zap.Int("upstream_status", cerr.StatusCode))
		}
		log.Error("Upstream completion failed", fields...)
		return nil, &UpstreamError{Err: err}
	}

	log.Info("Review generated",
		zap.Duration("latency", latency),
		zap.Int("review_length", len(review)),
	)

	return &models.ReviewResult{
		Review:    review,
		PlaceInfo: &place,
	}, nil
}
