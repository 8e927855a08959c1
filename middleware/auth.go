package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"staylux-backend/models"
	"staylux-backend/services"
	"staylux-backend/utils"
)

const sessionKey = "session"

// RequireSession validates the Bearer token and injects the session into the
// request context for handlers to read via GetSession. Everything behind it
// gets an explicit session object instead of ambient global state.
func RequireSession(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.JSONError(c, http.StatusUnauthorized, "missing session token")
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		session, err := auth.ParseToken(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid session token")
			c.Abort()
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// GetSession returns the session the auth middleware stored on the context.
func GetSession(c *gin.Context) (models.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return models.Session{}, false
	}
	session, ok := v.(models.Session)
	return session, ok
}
