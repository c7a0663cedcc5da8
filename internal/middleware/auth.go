package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"chat-task-manager/internal/model"
	"chat-task-manager/pkg/response"
)

const scopeKey = "scope"

// Auth reads the caller from the X-User-ID header. Requests without one get 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: missing %s header on %s", UserIDHeader, c.FullPath())
			response.Unauthorized(c)
			return
		}

		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// GetScope returns the scope set by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
