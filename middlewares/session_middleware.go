package middlewares

import (
	"net/http"

	"daily-diet-backend/services"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie holding the opaque session token.
const SessionCookie = "sessionId"

// SessionMiddleware resolves the session cookie to a user and stores the
// user id in the context under "userID". Requests without a valid session
// are rejected before any handler runs.
func SessionMiddleware(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		user, err := users.FindBySession(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set("userID", user.ID)
		c.Next()
	}
}
