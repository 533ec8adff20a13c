// Package server предоставляет общую функциональность запуска HTTP сервера:
// инициализацию логгера и конфигурации, запуск и плавную остановку.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/dungpa45/5-star-rating/internal/config"
	"go.uber.org/zap"
)

// HTTPServer представляет HTTP сервер с общей логикой запуска и остановки
type HTTPServer struct {
	server *http.Server
	config *config.Config
	logger *zap.Logger
}

// NewHTTPServer создает новый HTTP сервер
func NewHTTPServer(server *http.Server, cfg *config.Config, logger *zap.Logger) *HTTPServer {
	return &HTTPServer{
		server: server,
		config: cfg,
		logger: logger,
	}
}

// Run запускает сервер и блокируется до отмены ctx или ошибки прослушивания.
// После отмены ctx сервер дожидается активных запросов не дольше ShutdownTimeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			zap.String("address", s.server.Addr),
			zap.String("environment", s.config.Environment),
		)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen and serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server", zap.Duration("timeout", s.config.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	s.logger.Info("HTTP server stopped")
	return nil
}

// InitLogger инициализирует логгер для окружения env с функцией синхронизации.
// В development используется человекочитаемый вывод, иначе - JSON.
func InitLogger(env string) (*zap.Logger, func()) {
	newLogger := zap.NewProduction
	if env == config.EnvDevelopment {
		newLogger = zap.NewDevelopment
	}

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	cleanup := func() {
		if err := logger.Sync(); err != nil {
			log.Printf("Error syncing logger: %v", err)
		}
	}

	return logger, cleanup
}

// InitConfig инициализирует конфигурацию приложения
func InitConfig() *config.Config {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	return cfg
}
