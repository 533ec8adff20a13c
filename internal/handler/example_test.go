package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/dungpa45/5-star-rating/internal/buildinfo"
	"github.com/dungpa45/5-star-rating/internal/config"
	"github.com/dungpa45/5-star-rating/internal/handler"
	"github.com/dungpa45/5-star-rating/internal/service"
	"go.uber.org/zap"
)

// cannedClient возвращает заранее заданный текст вместо обращения к AI
type cannedClient string

func (c cannedClient) Complete(context.Context, string, string) (string, error) {
	return string(c), nil
}

// ExampleHandler_HandleGenerateReview демонстрирует генерацию отзыва через POST запрос.
func ExampleHandler_HandleGenerateReview() {
	cfg := config.Default()
	cfg.AIAPIURL = "http://localhost:8080/v1/chat/completions"
	logger := zap.NewNop()

	svc := service.NewReviewService(cannedClient("Cozy place with great coffee."), cfg, logger)
	h := handler.NewHandler(svc, nil, logger)

	body := strings.NewReader(`{"mapUrl":"https://maps.app.goo.gl/AbC123","prompt":"Write a review about the coffee"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/generate-review", body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.HandleGenerateReview(rr, req)

	var resp struct {
		Error     bool   `json:"error"`
		Review    string `json:"review"`
		PlaceInfo struct {
			PlaceID string `json:"placeId"`
		} `json:"placeInfo"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		fmt.Println("decode error:", err)
		return
	}

	fmt.Printf("Status: %d\n", rr.Code)
	fmt.Printf("Error: %t\n", resp.Error)
	fmt.Printf("Review: %s\n", resp.Review)
	fmt.Printf("Place ID: %s\n", resp.PlaceInfo.PlaceID)

	// Output:
	// Status: 200
	// Error: false
	// Review: Cozy place with great coffee.
	// Place ID: AbC123
}

// ExampleHandler_HandleGenerateReview_invalidURL показывает ответ на URL, не относящийся к Google Maps.
func ExampleHandler_HandleGenerateReview_invalidURL() {
	cfg := config.Default()
	cfg.AIAPIURL = "http://localhost:8080/v1/chat/completions"
	logger := zap.NewNop()

	svc := service.NewReviewService(cannedClient("unused"), cfg, logger)
	h := handler.NewHandler(svc, nil, logger)

	body := strings.NewReader(`{"mapUrl":"https://example.com/place","prompt":"extract_place_info","language":"en"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/generate-review", body)
	rr := httptest.NewRecorder()

	h.HandleGenerateReview(rr, req)

	fmt.Printf("Status: %d\n", rr.Code)
	fmt.Println(strings.Contains(rr.Body.String(), `"field":"mapUrl"`))

	// Output:
	// Status: 400
	// true
}

// ExampleHandler_HandleHealth демонстрирует проверку работоспособности сервиса.
func ExampleHandler_HandleHealth() {
	h := handler.NewHandler(nil, buildinfo.NewInfo("v1.0.0", "2024-01-01", "abc123"), zap.NewNop())

	rr := httptest.NewRecorder()
	h.HandleHealth(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	fmt.Printf("Status: %d\n", rr.Code)
	fmt.Print(rr.Body.String())

	// Output:
	// Status: 200
	// {"status":"ok","version":"v1.0.0","commit":"abc123","date":"2024-01-01"}
}
