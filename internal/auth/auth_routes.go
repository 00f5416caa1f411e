package auth

import (
	"github.com/ganeshsahu2020/SmileCastle/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("/auth")
	{
		// Gate and login are brute-forceable; keep them behind the IP limiter.
		authGroup.POST("/gate", middleware.RateLimitByIP(rate.Limit(1), 5), h.Gate)
		authGroup.POST("/login", middleware.RateLimitByIP(rate.Limit(1), 5), middleware.GateMiddleware(), h.Login)
		authGroup.POST("/refresh", h.Refresh)

		authGroup.GET("/me", middleware.AuthMiddleware(), middleware.ExtractUserID(), h.Me)
		authGroup.POST("/change-password", middleware.AuthMiddleware(), middleware.ExtractUserID(), h.ChangePassword)
	}
}
