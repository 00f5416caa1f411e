package passwordreset

import (
	"github.com/ganeshsahu2020/SmileCastle/internal/employee"
	"github.com/ganeshsahu2020/SmileCastle/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	resets := r.Group("/password-resets")

	// Submitting a reset happens from the login screen, so it sits behind the
	// store gate rather than a session.
	resets.POST("", middleware.GateMiddleware(), middleware.RateLimitByIP(1, 3), h.Submit)

	admin := resets.Group("")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.ExtractUserID())
	admin.Use(middleware.RoleMiddleware(employee.RoleAdmin))
	{
		admin.GET("", h.List)
		admin.POST("/:id/approve", h.Approve)
		admin.POST("/:id/reject", h.Reject)
	}
}
