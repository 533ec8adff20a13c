package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/dungpa45/5-star-rating/internal/app"
	"github.com/dungpa45/5-star-rating/internal/buildinfo"
	"github.com/dungpa45/5-star-rating/internal/config"
	"github.com/dungpa45/5-star-rating/internal/server"
)

// Заполняются при сборке: go build -ldflags "-X main.buildVersion=v1.0.0 ..."
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg := server.InitConfig()
	build := buildinfo.NewInfo(buildVersion, buildDate, buildCommit)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, cfg, build)
	stop()

	if err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
}

// run запускает приложение и блокируется до отмены ctx
func run(ctx context.Context, cfg *config.Config, build *buildinfo.Info) error {
	logger, cleanup := server.InitLogger(cfg.Environment)
	defer cleanup()

	build.Log(logger)

	return app.NewApp(cfg, build, logger).Run(ctx)
}
