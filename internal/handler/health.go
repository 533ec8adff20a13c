package handler

import "net/http"

// HealthResponse - ответ GET /api/health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// HandleHealth сообщает, что сервис запущен, и отдает информацию о сборке
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.build.Version,
		Commit:  h.build.Commit,
		Date:    h.build.Date,
	})
}
