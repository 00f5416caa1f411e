package report

import (
	"github.com/ganeshsahu2020/SmileCastle/internal/employee"
	"github.com/ganeshsahu2020/SmileCastle/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	reports.Use(middleware.RoleMiddleware(employee.RoleAdmin))
	{
		reports.GET("", h.Get)
		reports.GET("/export/csv", h.ExportCSV)
		reports.GET("/export/pdf", h.ExportPDF)
	}
}
