package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authControllers "codecamp/controllers/auth"
	authValidators "codecamp/validators/auth"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/verify-email", authControllers.VerifyEmail)
	authGroup.Post("/forgot-password", authControllers.ForgotPassword)
	authGroup.Post("/reset-password", authControllers.ResetPassword)
}
