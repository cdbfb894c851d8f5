package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pathstarter/backend/internal/database"
	"github.com/pathstarter/backend/internal/services"
	"github.com/pathstarter/backend/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	logger := zap.NewNop()
	sessions := session.NewMemoryStore(24 * time.Hour)

	userService := services.NewUserService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)

	return SetupRouter(RouterConfig{
		Auth:         NewAuthHandler(userService, sessions, 24*time.Hour, logger),
		Jobs:         NewJobHandler(jobService, logger),
		Applications: NewApplicationHandler(applicationService, logger),
		Sessions:     sessions,
		Logger:       logger,
		StaticDir:    t.TempDir(),
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func register(t *testing.T, r *gin.Engine, name, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(t, r, http.MethodPost, "/api/register", gin.H{
		"name": name, "email": email, "password": password,
	}, nil)
}

func login(t *testing.T, r *gin.Engine, email, password string) (*httptest.ResponseRecorder, []*http.Cookie) {
	t.Helper()
	rec := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email": email, "password": password,
	}, nil)
	return rec, rec.Result().Cookies()
}

func TestRegister(t *testing.T) {
	r := newTestRouter(t)

	rec := register(t, r, "Alice", "a@x.com", "pw123")
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "User registered successfully", body["message"])
	assert.NotZero(t, body["userId"])
}

func TestRegister_MissingFields(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/register", gin.H{"email": "a@x.com"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "All fields are required", decodeBody(t, rec)["error"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r := newTestRouter(t)

	rec := register(t, r, "Alice", "a@x.com", "pw123")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = register(t, r, "Other Alice", "a@x.com", "other")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email already in use", decodeBody(t, rec)["error"])
}

func TestLogin(t *testing.T) {
	r := newTestRouter(t)
	require.Equal(t, http.StatusCreated, register(t, r, "Alice", "a@x.com", "pw123").Code)

	rec, cookies := login(t, r, "a@x.com", "pw123")
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Login successful", body["message"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "Alice", user["name"])
	assert.Equal(t, "a@x.com", user["email"])

	require.NotEmpty(t, cookies)
	assert.Equal(t, "session_token", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLogin_WrongPassword(t *testing.T) {
	r := newTestRouter(t)
	require.Equal(t, http.StatusCreated, register(t, r, "Alice", "a@x.com", "pw123").Code)

	rec, _ := login(t, r, "a@x.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, rec)["error"])
}

func TestLogin_MissingFields(t *testing.T) {
	r := newTestRouter(t)

	rec, _ := login(t, r, "a@x.com", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email and password are required", decodeBody(t, rec)["error"])
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/logout"},
		{http.MethodGet, "/api/profile"},
		{http.MethodPost, "/api/jobs"},
		{http.MethodPost, "/api/jobs/1/apply"},
		{http.MethodGet, "/api/applications"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := doJSON(t, r, tt.method, tt.path, nil, nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Unauthorized", decodeBody(t, rec)["error"])
		})
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	r := newTestRouter(t)
	require.Equal(t, http.StatusCreated, register(t, r, "Alice", "a@x.com", "pw123").Code)
	_, cookies := login(t, r, "a@x.com", "pw123")

	rec := doJSON(t, r, http.MethodPost, "/api/logout", nil, cookies)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logout successful", decodeBody(t, rec)["message"])

	rec = doJSON(t, r, http.MethodGet, "/api/profile", nil, cookies)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfile(t *testing.T) {
	r := newTestRouter(t)
	require.Equal(t, http.StatusCreated, register(t, r, "Alice", "a@x.com", "pw123").Code)
	_, cookies := login(t, r, "a@x.com", "pw123")

	rec := doJSON(t, r, http.MethodGet, "/api/profile", nil, cookies)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Alice", body["name"])
	assert.Equal(t, "a@x.com", body["email"])
	assert.NotZero(t, body["id"])
}

func TestGetJob_NotFound(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/jobs/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found", decodeBody(t, rec)["error"])
}

func TestCreateJob_MissingRequiredFields(t *testing.T) {
	r := newTestRouter(t)
	require.Equal(t, http.StatusCreated, register(t, r, "Alice", "a@x.com", "pw123").Code)
	_, cookies := login(t, r, "a@x.com", "pw123")

	rec := doJSON(t, r, http.MethodPost, "/api/jobs", gin.H{"title": "Eng"}, cookies)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Title, company, location, and description are required", decodeBody(t, rec)["error"])
}

func TestEndToEndFlow(t *testing.T) {
	r := newTestRouter(t)

	// register
	rec := register(t, r, "Alice", "a@x.com", "pw123")
	require.Equal(t, http.StatusCreated, rec.Code)

	// login
	loginRec, cookies := login(t, r, "a@x.com", "pw123")
	require.Equal(t, http.StatusOK, loginRec.Code)

	// post a job
	rec = doJSON(t, r, http.MethodPost, "/api/jobs", gin.H{
		"title":       "Eng",
		"company":     "Acme",
		"location":    "NYC",
		"description": "Build things",
	}, cookies)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Job posted successfully", body["message"])
	assert.Equal(t, float64(1), body["jobId"])

	// job listing shows it
	rec = doJSON(t, r, http.MethodGet, "/api/jobs", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var jobs []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, "Eng", jobs[0]["title"])

	// apply
	rec = doJSON(t, r, http.MethodPost, "/api/jobs/1/apply", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "Application submitted successfully", body["message"])
	assert.Equal(t, float64(1), body["applicationId"])

	// applying again conflicts
	rec = doJSON(t, r, http.MethodPost, "/api/jobs/1/apply", nil, cookies)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "You have already applied to this job", decodeBody(t, rec)["error"])

	// the applications listing holds exactly one joined row
	rec = doJSON(t, r, http.MethodGet, "/api/applications", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	var applications []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &applications))
	require.Len(t, applications, 1)
	assert.Equal(t, "Eng", applications[0]["title"])
	assert.Equal(t, "Acme", applications[0]["company"])
	assert.Equal(t, "NYC", applications[0]["location"])
}

func TestApplyToMissingJob(t *testing.T) {
	r := newTestRouter(t)
	require.Equal(t, http.StatusCreated, register(t, r, "Alice", "a@x.com", "pw123").Code)
	_, cookies := login(t, r, "a@x.com", "pw123")

	rec := doJSON(t, r, http.MethodPost, "/api/jobs/999/apply", nil, cookies)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found", decodeBody(t, rec)["error"])
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestUnknownAPIRoute(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", decodeBody(t, rec)["error"])
}
