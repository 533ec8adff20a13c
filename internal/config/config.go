// Package config читает конфигурацию сервиса из флагов и переменных окружения.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
)

const (
	// EnvDevelopment - окружение разработки
	EnvDevelopment = "development"
	// EnvProduction - боевое окружение
	EnvProduction = "production"
	// EnvTest - окружение тестов
	EnvTest = "test"

	devCORSOrigin = "http://localhost:3000"
)

// Config хранит конфигурацию приложения.
type Config struct {
	ServerAddress string `env:"SERVER_ADDRESS" validate:"required"`                   // Адрес для запуска HTTP-сервера
	Environment   string `env:"APP_ENV" validate:"oneof=development production test"` // Окружение

	AIAPIURL       string        `env:"AI_API_URL" validate:"required,url"` // Адрес API chat completions
	AIAPIKey       string        `env:"AI_API_KEY"`                         // Необязательный ключ API
	AIModel        string        `env:"AI_MODEL" validate:"required"`       // Идентификатор модели
	RequestTimeout time.Duration `env:"AI_REQUEST_TIMEOUT" validate:"gt=0"` // Таймаут запроса к AI

	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" validate:"gt=0"` // Окно ограничения запросов
	RateLimitMax    int           `env:"RATE_LIMIT_MAX" validate:"gt=0"`    // Запросов на клиента за окно

	CORSOrigins []string `env:"CORS_ORIGIN" envSeparator:"," validate:"dive,required"`

	DefaultLanguage string `env:"DEFAULT_LANGUAGE" validate:"oneof=vi en"`
	PromptMinLength int    `env:"PROMPT_MIN_LENGTH" validate:"gte=0"`
	PromptMaxLength int    `env:"PROMPT_MAX_LENGTH" validate:"gtfield=PromptMinLength"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		ServerAddress:   ":3000",
		Environment:     EnvProduction,
		AIModel:         "gpt-4o-mini",
		RequestTimeout:  30 * time.Second,
		RateLimitWindow: 15 * time.Minute,
		RateLimitMax:    100,
		DefaultLanguage: "vi",
		PromptMinLength: 10,
		PromptMaxLength: 1000,
		ShutdownTimeout: 10 * time.Second,
	}
}

// NewConfig инициализирует конфигурацию, читая флаги и переменные окружения.
func NewConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load разбирает флаги из args, затем переменные окружения (наивысший приоритет),
// и проверяет результат.
func Load(args []string) (*Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("reviewer", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "Адрес запуска HTTP-сервера (env: SERVER_ADDRESS)")
	fs.StringVar(&cfg.Environment, "env", cfg.Environment, "Окружение: development, production, test (env: APP_ENV)")
	fs.StringVar(&cfg.AIAPIURL, "ai-url", cfg.AIAPIURL, "Адрес API chat completions (env: AI_API_URL)")
	fs.StringVar(&cfg.AIModel, "ai-model", cfg.AIModel, "Модель AI (env: AI_MODEL)")
	fs.DurationVar(&cfg.RequestTimeout, "ai-timeout", cfg.RequestTimeout, "Таймаут запроса к AI (env: AI_REQUEST_TIMEOUT)")
	fs.DurationVar(&cfg.RateLimitWindow, "rl-window", cfg.RateLimitWindow, "Окно ограничения запросов (env: RATE_LIMIT_WINDOW)")
	fs.IntVar(&cfg.RateLimitMax, "rl-max", cfg.RateLimitMax, "Запросов на клиента за окно (env: RATE_LIMIT_MAX)")
	fs.StringVar(&cfg.DefaultLanguage, "lang", cfg.DefaultLanguage, "Язык сообщений по умолчанию (env: DEFAULT_LANGUAGE)")
	fs.Func("cors", "Разрешенные источники CORS через запятую (env: CORS_ORIGIN)", func(s string) error {
		cfg.CORSOrigins = splitList(s)
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
		if cfg.IsDevelopment() {
			cfg.CORSOrigins = []string{devCORSOrigin}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsDevelopment сообщает, что сервис запущен в окружении разработки
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
