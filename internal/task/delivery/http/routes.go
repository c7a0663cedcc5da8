package http

import (
	"github.com/gin-gonic/gin"

	"chat-task-manager/internal/middleware"
)

// RegisterRoutes maps the chat endpoints under rg. Every route needs a user and is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat", mw.Auth(), mw.RateLimit())
	{
		chat.POST("", h.Chat)
		chat.GET("/history", h.History)
	}
}
