package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestDefaultInfo проверяет создание информации о сборке по умолчанию
func TestDefaultInfo(t *testing.T) {
	info := DefaultInfo()

	assert.Equal(t, "N/A", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.Equal(t, "N/A", info.Commit)
}

func TestNewInfo(t *testing.T) {
	tests := []struct {
		name                  string
		version, date, commit string
		want                  Info
	}{
		{
			name:    "All values set",
			version: "v1.0.0", date: "2024-01-01", commit: "abc123",
			want: Info{Version: "v1.0.0", Date: "2024-01-01", Commit: "abc123"},
		},
		{
			name:    "Missing ldflags fall back to N/A",
			version: "v1.0.0",
			want:    Info{Version: "v1.0.0", Date: "N/A", Commit: "N/A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, *NewInfo(tt.version, tt.date, tt.commit))
		})
	}
}

// TestString проверяет строковое представление информации о сборке
func TestString(t *testing.T) {
	info := NewInfo("v1.0.0", "2024-01-01", "abc123")

	assert.Equal(t, "Version: v1.0.0, Date: 2024-01-01, Commit: abc123", info.String())
}

func TestLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	NewInfo("v1.0.0", "2024-01-01", "abc123").Log(zap.New(core))

	entries := logs.FilterMessage("Build info").All()
	require.Len(t, entries, 1)
	assert.Equal(t, map[string]interface{}{
		"version": "v1.0.0",
		"date":    "2024-01-01",
		"commit":  "abc123",
	}, entries[0].ContextMap())
}
