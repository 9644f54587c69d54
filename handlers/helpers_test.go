package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"homecook-api/config"
	"homecook-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// envelope matches the API's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Token   string          `json:"token"`
	User    map[string]any  `json:"user"`
}

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Load()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	}
	return w, env
}

// register creates an account through the API and returns its bearer token.
func register(t *testing.T, r *gin.Engine, body map[string]interface{}) string {
	t.Helper()
	w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code, "register: %s", w.Body.String())
	require.NotEmpty(t, env.Token)
	return env.Token
}

func registerUser(t *testing.T, r *gin.Engine, name string) string {
	t.Helper()
	return register(t, r, map[string]interface{}{
		"name":     name,
		"email":    strings.ToLower(name) + "@example.com",
		"password": "secret123",
	})
}

func registerChef(t *testing.T, r *gin.Engine, name string) string {
	t.Helper()
	return register(t, r, map[string]interface{}{
		"name":     name,
		"email":    strings.ToLower(name) + "@example.com",
		"password": "secret123",
		"role":     "chef",
		"bio":      "I cook at home",
	})
}
