// Package buildinfo хранит версию, дату сборки и commit hash,
// переданные через -ldflags, и отдает их в лог и в /api/health.
package buildinfo

import (
	"fmt"

	"go.uber.org/zap"
)

const notAvailable = "N/A"

// Info содержит информацию о сборке приложения
type Info struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// DefaultInfo возвращает информацию о сборке по умолчанию
func DefaultInfo() *Info {
	return &Info{
		Version: notAvailable,
		Date:    notAvailable,
		Commit:  notAvailable,
	}
}

// NewInfo создает информацию о сборке; пустые значения заменяются на "N/A"
func NewInfo(version, date, commit string) *Info {
	return &Info{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// Log пишет информацию о сборке в лог при старте
func (info *Info) Log(logger *zap.Logger) {
	logger.Info("Build info",
		zap.String("version", info.Version),
		zap.String("date", info.Date),
		zap.String("commit", info.Commit),
	)
}

// String возвращает строковое представление информации о сборке
func (info *Info) String() string {
	return fmt.Sprintf("Version: %s, Date: %s, Commit: %s", info.Version, info.Date, info.Commit)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
