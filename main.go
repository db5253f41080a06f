package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"codecamp/config"
	"codecamp/database"
	"codecamp/routers/authRoutes"
	"codecamp/routers/courseRoutes"
	"codecamp/routers/dashboardRoutes"
	"codecamp/routers/exerciseRoutes"
	"codecamp/routers/lessonRoutes"
	"codecamp/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	lessonRoutes.SetupLessonRoutes(app)
	exerciseRoutes.SetupExerciseRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)

	// Periodic orphan sweep over the content graph
	utils.InitializeReconciler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
