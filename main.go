package main

import (
	"bakery_store/config"
	"bakery_store/database"
	"bakery_store/helper"
	"bakery_store/logger"
	"bakery_store/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Sync()

	app := fiber.New(fiber.Config{
		BodyLimit: 16 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("CORS_ORIGINS", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.Connect()
	database.ConnectRedis()

	helper.StartPublishScheduler()
	defer helper.StopPublishScheduler()
	helper.StartStaleOrderSweeper()
	defer helper.StopStaleOrderSweeper()

	app.Static("/static", "./static")
	router.SetupRoutes(app)

	addr := ":" + config.ConfigDefault("PORT", "8002")
	if err := app.Listen(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
