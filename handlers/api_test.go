package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"dojoboard/database"
	"dojoboard/handlers/admin"
	"dojoboard/middleware"
	"dojoboard/models"
	"dojoboard/realtime"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupApp builds a Fiber app with the API routes against a fresh in-memory
// database, mirroring the wiring in main.go.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-test-secret-test-secret-42")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = sqlDB.Close() })

	database.SetDB(db)
	Init(db, realtime.NewHub())

	app := fiber.New()
	api := app.Group("/api")
	api.Get("/leaderboard", GetLeaderboard)
	api.Get("/seasons", GetSeasons)
	api.Get("/seasons/active", GetActiveSeason)
	api.Get("/participants", GetParticipants)
	api.Get("/history", GetHistory)
	api.Get("/stats", GetStats)

	adminGroup := api.Group("/admin")
	adminGroup.Post("/login", admin.Login)

	adminProtected := adminGroup.Group("")
	adminProtected.Use(middleware.AdminAuthMiddleware)
	adminProtected.Post("/exercises", RecordExercise)
	adminProtected.Post("/participants", CreateParticipant)
	adminProtected.Delete("/participants/:id", DeleteParticipant)
	adminProtected.Post("/seasons", CreateSeason)

	return app, db
}

func createAdmin(t *testing.T, db *gorm.DB, username, password string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.AdminUser{
		Username: username,
		Password: string(hashed),
	}).Error)
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &payload))
	}
	return resp.StatusCode, payload
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	status, payload := doJSON(t, app, http.MethodPost, "/api/admin/login", "",
		map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, status)
	token, _ := payload["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestPublicEndpoints(t *testing.T) {
	app, _ := setupApp(t)

	status, payload := doJSON(t, app, http.MethodGet, "/api/leaderboard", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, payload["success"])
	assert.Empty(t, payload["entries"])

	status, payload = doJSON(t, app, http.MethodGet, "/api/stats", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, payload["success"])

	status, _ = doJSON(t, app, http.MethodGet, "/api/seasons/active", "", nil)
	assert.Equal(t, http.StatusConflict, status)
}

func TestAdminAuthRequired(t *testing.T) {
	app, _ := setupApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/admin/seasons", "",
		map[string]string{"name": "S1"})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, app, http.MethodPost, "/api/admin/seasons", "garbage-token",
		map[string]string{"name": "S1"})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAdminLogin(t *testing.T) {
	app, db := setupApp(t)
	createAdmin(t, db, "staff", "hunter2hunter2")

	t.Run("WrongPassword", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPost, "/api/admin/login", "",
			map[string]string{"username": "staff", "password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("Success", func(t *testing.T) {
		token := login(t, app, "staff", "hunter2hunter2")
		assert.NotEmpty(t, token)
	})
}

func TestAdminFlow(t *testing.T) {
	app, db := setupApp(t)
	createAdmin(t, db, "staff", "hunter2hunter2")
	token := login(t, app, "staff", "hunter2hunter2")

	// season must exist before exercises can be recorded
	status, payload := doJSON(t, app, http.MethodPost, "/api/admin/participants", token,
		map[string]string{"name": "Ana"})
	require.Equal(t, http.StatusCreated, status)
	participant := payload["participant"].(map[string]interface{})
	anaID := participant["id"].(string)

	status, payload = doJSON(t, app, http.MethodPost, "/api/admin/exercises", token,
		map[string]interface{}{
			"participant_id": anaID,
			"exercise_name":  "FizzBuzz",
			"difficulty":     "Easy",
		})
	require.Equal(t, http.StatusConflict, status)
	assert.Contains(t, payload["error"], "No active season")

	status, _ = doJSON(t, app, http.MethodPost, "/api/admin/seasons", token,
		map[string]string{"name": "Season 1"})
	require.Equal(t, http.StatusCreated, status)

	status, payload = doJSON(t, app, http.MethodPost, "/api/admin/exercises", token,
		map[string]interface{}{
			"participant_id": anaID,
			"exercise_name":  "FizzBuzz",
			"difficulty":     "Easy",
		})
	require.Equal(t, http.StatusCreated, status)
	submission := payload["submission"].(map[string]interface{})
	assert.EqualValues(t, 500, submission["points_awarded"])

	status, payload = doJSON(t, app, http.MethodGet, "/api/leaderboard", "", nil)
	require.Equal(t, http.StatusOK, status)
	entries := payload["entries"].([]interface{})
	require.Len(t, entries, 1)
	first := entries[0].(map[string]interface{})
	assert.Equal(t, "Ana", first["participant_name"])
	assert.EqualValues(t, 1, first["position"])
	assert.EqualValues(t, 500, first["total_points"])

	status, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/admin/participants/%s", anaID), token, nil)
	require.Equal(t, http.StatusOK, status)

	status, payload = doJSON(t, app, http.MethodGet, "/api/leaderboard", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, payload["entries"])
}

func TestRecordExerciseRejectsBadInput(t *testing.T) {
	app, db := setupApp(t)
	createAdmin(t, db, "staff", "hunter2hunter2")
	token := login(t, app, "staff", "hunter2hunter2")

	status, _ := doJSON(t, app, http.MethodPost, "/api/admin/seasons", token,
		map[string]string{"name": "Season 1"})
	require.Equal(t, http.StatusCreated, status)

	status, payload := doJSON(t, app, http.MethodPost, "/api/admin/exercises", token,
		map[string]interface{}{
			"participant_id": "not-a-uuid",
			"exercise_name":  "FizzBuzz",
			"difficulty":     "Brutal",
		})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, payload["success"])
	assert.NotEmpty(t, payload["error"])
}
