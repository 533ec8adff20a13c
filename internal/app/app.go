// Package app собирает приложение: клиент AI, сервис генерации отзывов,
// HTTP обработчики, middleware и маршруты.
package app

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/dungpa45/5-star-rating/internal/buildinfo"
	"github.com/dungpa45/5-star-rating/internal/completion"
	"github.com/dungpa45/5-star-rating/internal/config"
	"github.com/dungpa45/5-star-rating/internal/handler"
	"github.com/dungpa45/5-star-rating/internal/middleware"
	"github.com/dungpa45/5-star-rating/internal/server"
	"github.com/dungpa45/5-star-rating/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// запас времени на запись ответа сверх таймаута запроса к AI
const writeTimeoutMargin = 5 * time.Second

// App представляет основное приложение сервиса генерации отзывов.
type App struct {
	config  *config.Config          // Конфигурация приложения
	router  *chi.Mux                // HTTP роутер для обработки запросов
	logger  *zap.Logger             // Логгер для записи событий приложения
	handler *handler.Handler        // Обработчики HTTP запросов
	limiter *middleware.RateLimiter // Ограничитель частоты запросов к генерации

	routesOnce sync.Once
}

// NewApp создает приложение из готовой конфигурации и логгера.
// build может быть nil, тогда в /api/health отдается "N/A".
func NewApp(cfg *config.Config, build *buildinfo.Info, logger *zap.Logger) *App {
	client := completion.NewHTTPClient(cfg, logger)
	svc := service.NewReviewService(client, cfg, logger)

	return &App{
		config:  cfg,
		router:  chi.NewRouter(),
		logger:  logger,
		handler: handler.NewHandler(svc, build, logger),
		limiter: middleware.NewRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMax, logger),
	}
}

// Handler возвращает корневой HTTP обработчик с зарегистрированными маршрутами
func (a *App) Handler() http.Handler {
	a.routesOnce.Do(a.setupRoutes)
	return a.router
}

// Run запускает HTTP сервер и блокируется до отмены ctx.
// По завершении останавливает фоновые задачи приложения.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()
	return server.NewHTTPServer(a.GetServer(), a.config, a.logger).Run(ctx)
}

// Close освобождает ресурсы приложения
func (a *App) Close() {
	a.limiter.Stop()
}

// GetServer создает и возвращает настроенный HTTP сервер.
// WriteTimeout превышает таймаут запроса к AI, чтобы ответ успел записаться.
func (a *App) GetServer() *http.Server {
	return &http.Server{
		Addr:              a.config.ServerAddress,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      a.config.RequestTimeout + writeTimeoutMargin,
		IdleTimeout:       120 * time.Second,
	}
}

// setupRoutes настраивает HTTP маршруты и middleware для приложения.
func (a *App) setupRoutes() {
	a.router.Use(middleware.RequestID)
	a.router.Use(chimiddleware.RealIP)
	a.router.Use(middleware.LoggerMiddleware(a.logger))
	a.router.Use(middleware.Recoverer(a.logger))
	a.router.Use(middleware.CORS(a.config.CORSOrigins))
	a.router.Use(middleware.GzipMiddleware(a.logger))

	a.router.Route("/api", func(r chi.Router) {
		r.Get("/health", a.handler.HandleHealth)
		r.With(a.limiter.Handler).Post("/generate-review", a.handler.HandleGenerateReview)
	})

	// Профилирование (доступно только в development)
	if a.config.IsDevelopment() {
		a.router.Mount("/debug", chimiddleware.Profiler())
	}
}
