package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/api"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/auth"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/config"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/storage"
)

const testToken = "MOCK-TOKEN"

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	logger := internal.NopLogger{}
	fs, err := storage.NewFileStorage(
		filepath.Join(dir, "checkins.json"),
		filepath.Join(dir, "notes.json"),
		filepath.Join(dir, "contacts.json"),
		logger,
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = fs.Close() })

	repos := &storage.Repositories{CheckIns: fs, Notes: fs, Contacts: fs}
	app := api.NewApp(logger, repos)

	cfg := &config.Config{Env: "development"}
	provider := auth.NewLocalAuthProvider(testToken, logger)

	r := gin.New()
	api.RegisterRoutes(r, app, auth.Middleware(provider, cfg))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+testToken)
	r.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestUnauthorizedWithoutToken(t *testing.T) {
	r := setupRouter(t)
	rec := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/checkins", nil)
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/checkins", nil)
	req.Header.Set("Authorization", "Bearer wrong-token")
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPostCheckIn(t *testing.T) {
	r := setupRouter(t)
	body := `{"date":"2026-08-30","bedtime":{"hour":23,"minute":0},"wake_time":{"hour":7,"minute":0},"sleep_quality":8,"gratitude":["coffee"],"intention":"write","mindset":"calm"}`

	rec := doJSON(r, "POST", "/checkins", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	envelope := decodeEnvelope(t, rec)
	meta := envelope["meta"].(map[string]any)
	assert.Equal(t, "8h00m", meta["sleep"])

	// Second check-in on the same date conflicts.
	rec = doJSON(r, "POST", "/checkins", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPostCheckInValidation(t *testing.T) {
	r := setupRouter(t)

	// Minute off the 5-minute grid.
	body := `{"date":"2026-08-30","bedtime":{"hour":23,"minute":17},"wake_time":{"hour":7,"minute":0},"sleep_quality":8}`
	rec := doJSON(r, "POST", "/checkins", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Quality out of range.
	body = `{"date":"2026-08-30","bedtime":{"hour":23,"minute":0},"wake_time":{"hour":7,"minute":0},"sleep_quality":99}`
	rec = doJSON(r, "POST", "/checkins", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Malformed date.
	body = `{"date":"soon","bedtime":{"hour":23,"minute":0},"wake_time":{"hour":7,"minute":0},"sleep_quality":8}`
	rec = doJSON(r, "POST", "/checkins", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCheckInsAndReview(t *testing.T) {
	r := setupRouter(t)
	for _, date := range []string{"2026-08-28", "2026-08-29", "2026-08-30"} {
		body := fmt.Sprintf(`{"date":"%s","bedtime":{"hour":23,"minute":0},"wake_time":{"hour":7,"minute":0},"sleep_quality":7}`, date)
		rec := doJSON(r, "POST", "/checkins", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec := doJSON(r, "GET", "/checkins", "")
	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].([]any)
	require.Len(t, data, 3)
	first := data[0].(map[string]any)
	assert.Equal(t, "2026-08-30", first["date"])

	rec = doJSON(r, "GET", "/checkins/review", "")
	require.Equal(t, http.StatusOK, rec.Code)
	envelope = decodeEnvelope(t, rec)
	review := envelope["data"].(map[string]any)
	assert.Contains(t, review, "days")
	assert.Contains(t, review, "current_streak_days")
}

func TestNoteLifecycle(t *testing.T) {
	r := setupRouter(t)

	rec := doJSON(r, "POST", "/notes", `{"title":"Meditations","author":"Marcus Aurelius","excerpt":"You have power over your mind.","tags":["stoicism"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeEnvelope(t, rec)["data"].(map[string]any)
	id := created["id"].(string)
	require.NotEmpty(t, id)

	rec = doJSON(r, "GET", "/notes?tag=stoicism", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeEnvelope(t, rec)["data"].([]any), 1)

	rec = doJSON(r, "GET", "/notes?tag=cooking", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeEnvelope(t, rec)["data"])

	rec = doJSON(r, "PUT", "/notes/"+id, `{"title":"Meditations II","tags":["stoicism","morning"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Meditations II", updated["title"])

	rec = doJSON(r, "PUT", "/notes/unknown-id", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(r, "DELETE", "/notes/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(r, "DELETE", "/notes/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNoteValidation(t *testing.T) {
	r := setupRouter(t)
	rec := doJSON(r, "POST", "/notes", `{"author":"No Title"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactLifecycle(t *testing.T) {
	r := setupRouter(t)

	rec := doJSON(r, "POST", "/contacts", `{"name":"Sam","met_at":"bookstore","status":"interested"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeEnvelope(t, rec)["data"].(map[string]any)
	id := created["id"].(string)

	rec = doJSON(r, "PUT", "/contacts/"+id, `{"name":"Sam","status":"dating","last_seen":"2026-08-29T19:00:00Z"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Equal(t, "dating", updated["status"])

	rec = doJSON(r, "GET", "/contacts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeEnvelope(t, rec)["data"].([]any), 1)

	rec = doJSON(r, "DELETE", "/contacts/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(r, "GET", "/contacts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeEnvelope(t, rec)["data"])
}

func TestContactValidation(t *testing.T) {
	r := setupRouter(t)

	rec := doJSON(r, "POST", "/contacts", `{"name":"Sam","status":"complicated"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(r, "POST", "/contacts", `{"status":"dating"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(r, "PUT", "/contacts/unknown-id", `{"name":"Sam","status":"dating"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
