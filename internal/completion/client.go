// Package completion отправляет запросы к OpenAI-совместимому API chat completions.
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dungpa45/5-star-rating/internal/config"
	"go.uber.org/zap"
)

const maxResponseSize = 1 << 20

// Client генерирует текст по паре системное сообщение + сообщение пользователя
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// HTTPClient реализует Client поверх HTTP
type HTTPClient struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPClient создает клиент по конфигурации. Таймаут всего запроса
// задается через cfg.RequestTimeout.
func NewHTTPClient(cfg *config.Config, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		endpoint: cfg.AIAPIURL,
		model:    cfg.AIModel,
		apiKey:   cfg.AIAPIKey,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message *struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// errorBody покрывает варианты {"error":{"message":...}}, {"error":"..."} и {"message":...}
type errorBody struct {
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
}

// Complete выполняет один запрос без повторов
func (c *HTTPClient) Complete(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", transportError(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("Error closing upstream response body", zap.Error(err))
		}
	}()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", transportError(err)
	}

	c.logger.Debug("Upstream responded",
		zap.Int("status", resp.StatusCode),
		zap.Int("size", len(respBody)),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", statusError(resp.StatusCode, parseErrorMessage(respBody))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", formatError(resp.StatusCode, err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message == nil || parsed.Choices[0].Message.Content == "" {
		return "", formatError(resp.StatusCode, errors.New("missing choices[0].message.content"))
	}

	return parsed.Choices[0].Message.Content, nil
}

func parseErrorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}

	if len(eb.Error) > 0 {
		var nested struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(eb.Error, &nested); err == nil && nested.Message != "" {
			return strings.TrimSpace(nested.Message)
		}
		var plain string
		if err := json.Unmarshal(eb.Error, &plain); err == nil && plain != "" {
			return strings.TrimSpace(plain)
		}
	}

	return strings.TrimSpace(eb.Message)
}
