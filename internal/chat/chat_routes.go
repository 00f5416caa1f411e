package chat

import (
	"github.com/ganeshsahu2020/SmileCastle/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	messages := r.Group("/chat")
	messages.Use(middleware.AuthMiddleware())
	messages.Use(middleware.ExtractUserID())
	{
		messages.POST("/messages", middleware.RateLimitByUser(2, 5), h.Send)
		messages.GET("/messages", h.ListRoom)
		messages.GET("/messages/with/:userId", h.ListThread)
		messages.GET("/unread", h.Unread)
	}
}
