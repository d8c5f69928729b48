package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifyhub/regionhealth/internal/api/handler"
)

func doHealth(t *testing.T, h *handler.HealthHandler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Health(rec, req)
	return rec
}

func TestHealthHandler_FixedClock(t *testing.T) {
	fixed := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	h := handler.NewHealthHandler("ap-northeast-1", func() time.Time { return fixed })

	rec := doHealth(t, h, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"status":"healthy","timestamp":"2024-01-15T10:30:00.000Z","region":"ap-northeast-1"}`,
		rec.Body.String(),
	)
}

func TestHealthHandler_ExactBody(t *testing.T) {
	fixed := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	h := handler.NewHealthHandler("ap-northeast-1", func() time.Time { return fixed })

	rec := doHealth(t, h, httptest.NewRequest(http.MethodGet, "/health", nil))

	// json.Encoder terminates the document with a newline.
	assert.Equal(t,
		"{\"status\":\"healthy\",\"timestamp\":\"2024-01-15T10:30:00.000Z\",\"region\":\"ap-northeast-1\"}\n",
		rec.Body.String(),
	)
}

func TestHealthHandler_ExactKeys(t *testing.T) {
	h := handler.NewHealthHandler("ap-northeast-1", nil)
	rec := doHealth(t, h, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Len(t, body, 3)
	assert.Contains(t, body, "status")
	assert.Contains(t, body, "timestamp")
	assert.Contains(t, body, "region")
}

func TestHealthHandler_WallClock(t *testing.T) {
	h := handler.NewHealthHandler("ap-northeast-1", nil)

	before := time.Now()
	rec := doHealth(t, h, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	ts, err := time.Parse(time.RFC3339Nano, body["timestamp"])
	require.NoError(t, err)
	assert.WithinDuration(t, before, ts, 5*time.Second)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "ap-northeast-1", body["region"])
}

func TestHealthHandler_IgnoresRequestInput(t *testing.T) {
	fixed := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	h := handler.NewHealthHandler("ap-northeast-1", func() time.Time { return fixed })

	plain := doHealth(t, h, httptest.NewRequest(http.MethodGet, "/health", nil))

	noisy := httptest.NewRequest(http.MethodGet, "/health?verbose=1&region=us-east-1", nil)
	noisy.Header.Set("Accept", "text/plain")
	noisy.Header.Set("Authorization", "Bearer whatever")
	decorated := doHealth(t, h, noisy)

	assert.Equal(t, plain.Code, decorated.Code)
	assert.Equal(t, plain.Body.String(), decorated.Body.String())
}

func TestHealthHandler_SuccessiveCalls(t *testing.T) {
	h := handler.NewHealthHandler("ap-northeast-1", nil)

	decode := func() map[string]string {
		rec := doHealth(t, h, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body
	}

	first := decode()
	second := decode()

	assert.Equal(t, first["status"], second["status"])
	assert.Equal(t, first["region"], second["region"])

	t1, err := time.Parse(time.RFC3339Nano, first["timestamp"])
	require.NoError(t, err)
	t2, err := time.Parse(time.RFC3339Nano, second["timestamp"])
	require.NoError(t, err)
	assert.False(t, t2.Before(t1), "timestamp went backwards: %s then %s", t1, t2)
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.NotFound(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
	})

	t.Run("method not allowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.MethodNotAllowed(rec, httptest.NewRequest(http.MethodPost, "/health", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.JSONEq(t, `{"error":"method not allowed"}`, rec.Body.String())
	})
}
