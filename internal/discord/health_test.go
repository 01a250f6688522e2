package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHealth(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	bot := &Bot{Session: ctx.Session, Client: ctx.APIClient}
	srv := NewHTTPServer("0", bot)

	RecordCommand()

	t.Run("Degraded while the gateway is closed", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.HandleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var status HealthStatus
		require.NoError(t, json.NewDecoder(w.Body).Decode(&status))
		assert.Equal(t, "degraded", status.Status)
		assert.True(t, status.APIReachable)
		assert.False(t, status.Connected)
		assert.Positive(t, status.CommandsReceived)
		assert.False(t, status.LastCommandTime.IsZero())
	})

	t.Run("Healthy once ready", func(t *testing.T) {
		ctx.Session.DataReady = true
		defer func() { ctx.Session.DataReady = false }()

		w := httptest.NewRecorder()
		srv.HandleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	})
}
