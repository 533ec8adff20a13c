package models

// ExtractPlaceInfoPrompt - значение prompt, при котором сервис только извлекает
// метаданные места и не обращается к AI.
const ExtractPlaceInfoPrompt = "extract_place_info"

// ReviewRequest представляет входящий запрос POST /api/generate-review
type ReviewRequest struct {
	MapURL   string `json:"mapUrl" validate:"required,url,mapsurl"`
	Prompt   string `json:"prompt,omitempty" validate:"omitempty,promptlen"`
	Language string `json:"language,omitempty" validate:"omitempty,oneof=vi en"`
	Style    string `json:"style,omitempty" validate:"omitempty,oneof=friendly professional enthusiastic concise"`
}

// IsExtractOnly сообщает, что запрос не требует генерации текста
func (r ReviewRequest) IsExtractOnly() bool {
	return r.Prompt == "" || r.Prompt == ExtractPlaceInfoPrompt
}

// ReviewResult представляет ответ сервиса генерации отзывов
type ReviewResult struct {
	Error     bool             `json:"error"`
	Review    string           `json:"review,omitempty"`
	PlaceInfo *PlaceDescriptor `json:"placeInfo,omitempty"`
	Message   string           `json:"message,omitempty"`
	Details   any              `json:"details,omitempty"`
}

// ErrorDetail описывает ошибку валидации конкретного поля
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
