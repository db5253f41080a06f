package dashboardRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "codecamp/controllers/dashboard"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/user/:userId/dashboard", controllers.Dashboard)
}
