package authValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"codecamp/middleware"
)

var validate = validator.New()

type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup validates the registration payload.
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		reqData.FirstName = strings.TrimSpace(reqData.FirstName)
		reqData.LastName = strings.TrimSpace(reqData.LastName)
		reqData.Email = strings.TrimSpace(reqData.Email)

		if reqData.FirstName == "" || reqData.LastName == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "Please make sure all fields are filled!")
		}
		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "Please provide a valid email address!")
		}
		if len(reqData.Password) < 8 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "Password must be at least 8 characters long!")
		}

		c.Locals("signupRequest", reqData)
		return c.Next()
	}
}

// Login validates the login payload.
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		reqData.Email = strings.TrimSpace(reqData.Email)
		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "Please provide a valid email address!")
		}
		if reqData.Password == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "Password is required!")
		}

		c.Locals("loginRequest", reqData)
		return c.Next()
	}
}
