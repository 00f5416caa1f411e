package editrequest

import (
	"github.com/ganeshsahu2020/SmileCastle/internal/employee"
	"github.com/ganeshsahu2020/SmileCastle/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	requests := r.Group("/edit-requests")
	requests.Use(middleware.AuthMiddleware())
	requests.Use(middleware.ExtractUserID())
	{
		requests.POST("", h.Submit)
		requests.GET("/mine", h.ListMine)

		admin := requests.Group("")
		admin.Use(middleware.RoleMiddleware(employee.RoleAdmin))
		{
			admin.GET("", h.ListPending)
			admin.POST("/:id/approve", h.Approve)
			admin.POST("/:id/deny", h.Deny)
		}
	}
}
