package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"daily-diet-backend/models"
	"daily-diet-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Meal{}))

	return routes.SetupRouter(db)
}

// doJSON performs one request against the router, attaching any cookies.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerUser creates a user and returns its session cookies.
func registerUser(t *testing.T, r *gin.Engine, name, email string) []*http.Cookie {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/users", gin.H{"name": name, "email": email}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// createMeal posts one meal and returns its id.
func createMeal(t *testing.T, r *gin.Engine, cookies []*http.Cookie, name string, onDiet bool) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/meals", gin.H{
		"name":        name,
		"description": name + " description",
		"isOnDiet":    onDiet,
		"date":        "2022-10-10",
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	id, ok := decodeBody(t, w)["id"].(string)
	require.True(t, ok)
	return id
}
