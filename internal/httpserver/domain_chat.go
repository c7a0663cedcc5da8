package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"chat-task-manager/internal/middleware"
	taskHTTP "chat-task-manager/internal/task/delivery/http"
)

// setupChatDomain registers /api/v1/chat and /api/v1/chat/history.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := taskHTTP.New(srv.l, srv.taskUC, srv.chatUC)
	taskHTTP.RegisterRoutes(api, h, mw)

	if srv.rateLimit.Enabled {
		srv.l.Infof(ctx, "Chat domain registered (rate limit %d req/min per user)", srv.rateLimit.RequestsPerMin)
	} else {
		srv.l.Infof(ctx, "Chat domain registered (rate limit off)")
	}
	return nil
}
