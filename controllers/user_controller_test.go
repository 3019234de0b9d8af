package controllers_test

import (
	"net/http"
	"testing"

	"daily-diet-backend/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserSetsSessionCookie(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/users", gin.H{"name": "John Doe", "email": "john@example.com"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var session *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middlewares.SessionCookie {
			session = ck
		}
	}
	require.NotNil(t, session)
	assert.NotEmpty(t, session.Value)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "John Doe", body["name"])
	assert.Equal(t, "john@example.com", body["email"])
}

func TestCreateUserValidation(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/users", gin.H{"email": "john@example.com"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/users", gin.H{"name": "John Doe", "email": "not-an-email"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	r := setupServer(t)

	registerUser(t, r, "John Doe", "john@example.com")

	w := doJSON(t, r, http.MethodPost, "/users", gin.H{"name": "Jane Doe", "email": "john@example.com"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "user already exists", decodeBody(t, w)["error"])
}
