package server_test

import (
	"bytes"
	"collaband/CollaBand/internal/api/controller"
	"collaband/CollaBand/internal/api/repository"
	"collaband/CollaBand/internal/api/service"
	"collaband/CollaBand/internal/db"
	"collaband/CollaBand/internal/server"
	"collaband/CollaBand/internal/token"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testApp struct {
	engine *gin.Engine
	conn   *sqlx.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	conn, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	require.NoError(t, db.InitializeSchema(conn))
	t.Cleanup(func() { _ = conn.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	userRepo := repository.NewUserRepository(conn)
	projectRepo := repository.NewProjectRepository(conn)
	chatRepo := repository.NewChatRepository(conn)
	tokens := token.NewRedisStore(rdb)

	srv := server.NewServer(
		controller.NewAuthController(service.NewAuthService(userRepo, tokens)),
		controller.NewProjectController(service.NewProjectService(projectRepo)),
		controller.NewChatController(service.NewChatService(chatRepo)),
		controller.NewPageController(),
		tokens,
	)

	return &testApp{engine: srv.Engine(), conn: conn}
}

// do performs a request with an optional JSON body and bearer token.
func (a *testApp) do(t *testing.T, method, path, tok string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Token "+tok)
	}

	rec := httptest.NewRecorder()
	a.engine.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// signup registers a user and logs them in, returning the token.
func (a *testApp) signup(t *testing.T, username, email, password string) string {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/register/", "", gin.H{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = a.do(t, http.MethodPost, "/login/", "", gin.H{
		"email_or_username": username,
		"password":          password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	tok, ok := decode(t, rec)["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, tok)
	return tok
}

func TestStaticPages(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/home/", "/Home/"} {
		rec := app.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "CollaBand")
	}

	for _, path := range []string{"/user-settings/", "/contact/"} {
		rec := app.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	}
}

func TestRegister(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/register/", "", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "correcthorse",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "alice@example.com", body["email"])
	assert.NotZero(t, body["id"])

	// Duplicate username reports a field-keyed validation error.
	rec = app.do(t, http.MethodPost, "/register/", "", gin.H{
		"username": "alice",
		"email":    "alice2@example.com",
		"password": "correcthorse",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec), "username")

	// A missing field is rejected before it reaches the service.
	rec = app.do(t, http.MethodPost, "/register/", "", gin.H{"username": "bob"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "alice", "alice@example.com", "correcthorse")

	// By email, with user payload in the response.
	rec := app.do(t, http.MethodPost, "/login/", "", gin.H{
		"email_or_username": "alice@example.com",
		"password":          "correcthorse",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.NotEmpty(t, body["token"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "alice@example.com", user["email"])

	// Same token on a second login.
	rec2 := app.do(t, http.MethodPost, "/login/", "", gin.H{
		"email_or_username": "alice",
		"password":          "correcthorse",
	})
	require.Equal(t, http.StatusOK, rec2.Code)
	assert.Equal(t, body["token"], decode(t, rec2)["token"])

	// Unregistered email is a client error, not a server error.
	rec = app.do(t, http.MethodPost, "/login/", "", gin.H{
		"email_or_username": "nobody@example.com",
		"password":          "correcthorse",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid credentials", decode(t, rec)["error"])

	// Wrong password.
	rec = app.do(t, http.MethodPost, "/login/", "", gin.H{
		"email_or_username": "alice",
		"password":          "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardRequiresAuth(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/dashboard/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(t, http.MethodGet, "/dashboard/", "bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDashboardCRUD(t *testing.T) {
	app := newTestApp(t)
	tok := app.signup(t, "alice", "alice@example.com", "correcthorse")

	// Empty at first.
	rec := app.do(t, http.MethodGet, "/dashboard/", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode(t, rec)["projects"])

	// Create.
	rec = app.do(t, http.MethodPost, "/dashboard/", tok, gin.H{"projectName": "Demo"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "New project created successfully", decode(t, rec)["message"])

	// Missing name.
	rec = app.do(t, http.MethodPost, "/dashboard/", tok, gin.H{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Project name is required", decode(t, rec)["error"])

	// The created project shows up in the listing.
	rec = app.do(t, http.MethodGet, "/dashboard/", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	projects, ok := decode(t, rec)["projects"].([]any)
	require.True(t, ok)
	require.Len(t, projects, 1)
	project, ok := projects[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Demo", project["name"])
	projectID := int64(project["id"].(float64))

	// Partial update: description only, name untouched.
	rec = app.do(t, http.MethodPut, "/dashboard/", tok, gin.H{
		"projectID":   projectID,
		"description": "first mix",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Project modified successfully", decode(t, rec)["message"])

	rec = app.do(t, http.MethodGet, "/dashboard/", tok, nil)
	projects = decode(t, rec)["projects"].([]any)
	project = projects[0].(map[string]any)
	assert.Equal(t, "Demo", project["name"])
	assert.Equal(t, "first mix", project["description"])

	// Update of an unknown id is 404.
	rec = app.do(t, http.MethodPut, "/dashboard/", tok, gin.H{"projectID": 9999})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Project not found", decode(t, rec)["error"])

	// Unsupported verb on the multiplexed endpoint.
	rec = app.do(t, http.MethodPatch, "/dashboard/", tok, nil)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Invalid request method", decode(t, rec)["error"])

	// Delete.
	rec = app.do(t, http.MethodDelete, "/dashboard/", tok, gin.H{"projectID": projectID})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Project deleted successfully", decode(t, rec)["message"])

	rec = app.do(t, http.MethodDelete, "/dashboard/", tok, gin.H{"projectID": projectID})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProjectsNewAliasesDashboard(t *testing.T) {
	app := newTestApp(t)
	tok := app.signup(t, "alice", "alice@example.com", "correcthorse")

	rec := app.do(t, http.MethodPost, "/projects/new/", tok, gin.H{"projectName": "Side Project"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.do(t, http.MethodGet, "/projects/new/", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["projects"], 1)
}

func TestCrossUserIsolation(t *testing.T) {
	app := newTestApp(t)
	aliceTok := app.signup(t, "alice", "alice@example.com", "correcthorse")
	bobTok := app.signup(t, "bob", "bob@example.com", "correcthorse")

	rec := app.do(t, http.MethodPost, "/dashboard/", aliceTok, gin.H{"projectName": "Demo"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.do(t, http.MethodGet, "/dashboard/", aliceTok, nil)
	projects := decode(t, rec)["projects"].([]any)
	require.Len(t, projects, 1)
	projectID := int64(projects[0].(map[string]any)["id"].(float64))

	// Bob sees nothing of Alice's.
	rec = app.do(t, http.MethodGet, "/dashboard/", bobTok, nil)
	assert.Empty(t, decode(t, rec)["projects"])

	// Bob's update of Alice's project is 404 and changes nothing.
	rec = app.do(t, http.MethodPut, "/dashboard/", bobTok, gin.H{
		"projectID":   projectID,
		"description": "hijacked",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodGet, "/dashboard/", aliceTok, nil)
	project := decode(t, rec)["projects"].([]any)[0].(map[string]any)
	assert.Equal(t, "", project["description"])

	// Bob's delete is 404 and the row survives.
	rec = app.do(t, http.MethodDelete, "/dashboard/", bobTok, gin.H{"projectID": projectID})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodGet, "/dashboard/", aliceTok, nil)
	assert.Len(t, decode(t, rec)["projects"], 1)

	// Bob's workspace view of Alice's project is 404 too.
	rec = app.do(t, http.MethodGet, fmt.Sprintf("/project-%d/", projectID), bobTok, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWorkspace(t *testing.T) {
	app := newTestApp(t)
	tok := app.signup(t, "alice", "alice@example.com", "correcthorse")

	rec := app.do(t, http.MethodPost, "/dashboard/", tok, gin.H{"projectName": "Demo"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.do(t, http.MethodGet, "/dashboard/", tok, nil)
	projectID := int64(decode(t, rec)["projects"].([]any)[0].(map[string]any)["id"].(float64))

	rec = app.do(t, http.MethodGet, fmt.Sprintf("/project-%d/", projectID), tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, fmt.Sprintf("Project DAW for project ID %d", projectID), body["message"])
	assert.Equal(t, "Demo", body["project"])

	rec = app.do(t, http.MethodGet, "/project-9999/", tok, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Project not found", decode(t, rec)["error"])
}

func TestGetChat(t *testing.T) {
	app := newTestApp(t)
	tok := app.signup(t, "alice", "alice@example.com", "correcthorse")

	rec := app.do(t, http.MethodGet, "/all/", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Chat gotten", body["message"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	chatID := data["id"]

	// Second fetch returns the very same chat.
	rec = app.do(t, http.MethodGet, "/all/", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, chatID, decode(t, rec)["data"].(map[string]any)["id"])

	rec = app.do(t, http.MethodGet, "/all/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
