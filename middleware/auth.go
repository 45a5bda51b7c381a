package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "session"

// UserKey is the context key under which RequireAuth stores the
// authenticated username.
const UserKey = "username"

// RequireAuth rejects requests without a valid, unexpired session with 401
// and stores the authenticated username in the request context otherwise.
func RequireAuth(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "login required")
			c.Abort()
			return
		}

		username, err := sessions.Authenticate(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "invalid or expired session")
			c.Abort()
			return
		}

		c.Set(UserKey, username)
		c.Next()
	}
}
