package app

import (
	"database/sql"
	"time"

	"github.com/ganeshsahu2020/SmileCastle/internal/auth"
	"github.com/ganeshsahu2020/SmileCastle/internal/chat"
	"github.com/ganeshsahu2020/SmileCastle/internal/editrequest"
	"github.com/ganeshsahu2020/SmileCastle/internal/employee"
	"github.com/ganeshsahu2020/SmileCastle/internal/messaging/kafka"
	"github.com/ganeshsahu2020/SmileCastle/internal/passwordreset"
	"github.com/ganeshsahu2020/SmileCastle/internal/punch"
	"github.com/ganeshsahu2020/SmileCastle/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	loc *time.Location,
) error {
	// --- Repositories ---
	chatRepo := chat.NewRepository(gormDB)
	editRequestRepo := editrequest.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	passwordResetRepo := passwordreset.NewRepository(gormDB)
	punchRepo := punch.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(employeeRepo)
	chatService := chat.NewService(db, chatRepo, outboxRepo, rdb)
	editRequestService := editrequest.NewService(db, editRequestRepo, punchRepo, outboxRepo)
	employeeService := employee.NewService(employeeRepo)
	passwordResetService := passwordreset.NewService(db, passwordResetRepo, employeeRepo)
	punchService := punch.NewService(db, punchRepo, outboxRepo, loc)
	reportService := report.NewService(reportRepo, rdb, loc)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	chatHandler := chat.NewHandler(chatService)
	editRequestHandler := editrequest.NewHandler(editRequestService)
	employeeHandler := employee.NewHandler(employeeService)
	passwordResetHandler := passwordreset.NewHandler(passwordResetService)
	punchHandler := punch.NewHandler(punchService, rdb)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		chat.RegisterRoutes(api, chatHandler)
		editrequest.RegisterRoutes(api, editRequestHandler)
		employee.RegisterRoutes(api, employeeHandler)
		passwordreset.RegisterRoutes(api, passwordResetHandler)
		punch.RegisterRoutes(api, punchHandler, rdb)
		report.RegisterRoutes(api, reportHandler)
	}

	return nil
}
