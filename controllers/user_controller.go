package controllers

import (
	"errors"
	"net/http"

	"daily-diet-backend/middlewares"
	"daily-diet-backend/services"
	"daily-diet-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	sessionTokenLength = 32
	sessionMaxAge      = 60 * 60 * 24 * 7 // 7 days
)

type UserController struct {
	Svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

type CreateUserInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// CreateUser registers a user and binds it to the browser's session cookie,
// issuing a fresh one when the request carries none.
func (h *UserController) CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := c.Cookie(middlewares.SessionCookie)
	if err != nil || token == "" {
		token = utils.GenerateRandomToken(sessionTokenLength)
		c.SetCookie(middlewares.SessionCookie, token, sessionMaxAge, "/", "", false, true)
	}

	user, err := h.Svc.Register(input.Name, input.Email, token)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user)
}
