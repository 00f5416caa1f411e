package app

import (
	"log"
	"os"
	"time"

	"github.com/ganeshsahu2020/SmileCastle/internal/middleware"
	"github.com/ganeshsahu2020/SmileCastle/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// storeLocation resolves the store's wall-clock timezone. All day grouping in
// histories and reports follows this location, not the server's.
func storeLocation() *time.Location {
	tz := os.Getenv("STORE_TIMEZONE")
	if tz == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		zap.L().Warn("invalid STORE_TIMEZONE, falling back to local", zap.String("tz", tz))
		return time.Local
	}
	return loc
}

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("✅ Database connection established")

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	log.Println("✅ Redis connection established")

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// Register Modules & Routes
	return registerModules(router, db, gormDB, redisClient, storeLocation())
}
