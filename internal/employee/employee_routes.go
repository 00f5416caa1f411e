package employee

import (
	"github.com/ganeshsahu2020/SmileCastle/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.RoleMiddleware(RoleAdmin))
	{
		employees.GET("", h.GetAll)
		employees.GET("/:id", h.GetById)
		employees.POST("", h.Create)
		employees.PUT("/:id", h.Update)
		employees.DELETE("/:id", h.Delete)
	}
}
