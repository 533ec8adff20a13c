package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecoverer(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/generate-review", nil)
	w := httptest.NewRecorder()

	require.NotPanics(t, func() {
		RequestID(Recoverer(logger)(panicking)).ServeHTTP(w, req)
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body errorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.True(t, body.Error)
	assert.Equal(t, InternalErrorMessage, body.Message)
	assert.NotContains(t, w.Body.String(), "goroutine")

	entries := logs.FilterMessage("Panic recovered").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "boom", fields["panic"])
	assert.NotEmpty(t, fields["request_id"])
	assert.Contains(t, fields["stack"], "goroutine")
}

func TestRecovererPassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	Recoverer(zap.NewNop())(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRecovererRepanicsOnAbort(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		Recoverer(zap.NewNop())(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
