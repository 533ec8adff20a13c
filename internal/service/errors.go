package service

import (
	"errors"
	"fmt"

	"github.com/dungpa45/5-star-rating/internal/completion"
	"github.com/dungpa45/5-star-rating/internal/models"
)

// ValidationError возвращается, когда запрос не проходит проверку
type ValidationError struct {
	Fields []models.ErrorDetail
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(e.Fields))
}

// InvalidURLError возвращается, когда URL прошел проверку маркеров,
// но не разбирается как URL
type InvalidURLError struct {
	URL string
	Err error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid map URL %q: %v", e.URL, e.Err)
}

func (e *InvalidURLError) Unwrap() error {
	return e.Err
}

// UpstreamError возвращается при любом отказе сервиса генерации.
// Причина сохраняется в Err для логов.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream completion failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ClientMessage возвращает короткое описание отказа сервиса генерации,
// пригодное для ответа клиенту
func (e *UpstreamError) ClientMessage() string {
	var cerr *completion.Error
	if errors.As(e.Err, &cerr) {
		return cerr.Message
	}
	return ""
}
