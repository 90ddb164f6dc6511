package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stai-tuned/gcf-flood-backend/internal/auth/service"
)

// RequireSession resolves the bearer token to a live session and stores
// the caller's identity on the request context. Requests without a valid
// session are rejected.
func RequireSession(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
			return
		}

		sess, err := svc.Session(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
			return
		}

		c.Set("user_email", sess.Email)
		c.Set("user_name", sess.Name)
		c.Next()
	}
}
