package punch

import (
	"github.com/ganeshsahu2020/SmileCastle/internal/employee"
	"github.com/ganeshsahu2020/SmileCastle/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	punches := r.Group("/punches")
	punches.Use(middleware.AuthMiddleware())
	punches.Use(middleware.ExtractUserID())
	{
		punches.POST("", middleware.RateLimitByUser(5, 10), middleware.Idempotency(rdb), h.Punch)
		punches.GET("/status", h.Status)
		punches.GET("/history", h.History)

		admin := punches.Group("")
		admin.Use(middleware.RoleMiddleware(employee.RoleAdmin))
		{
			admin.GET("/history/all", h.HistoryAll)
			admin.DELETE("/:id", h.Delete)
		}
	}
}
