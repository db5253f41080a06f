package exerciseValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"codecamp/middleware"
	"codecamp/models"
	"codecamp/services"
)

var validLevels = map[string]bool{
	models.LevelBeginner:     true,
	models.LevelIntermediate: true,
	models.LevelExpert:       true,
}

// ExerciseBody parses and stashes the exercise payload.
func ExerciseBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(services.ExerciseInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if level := strings.TrimSpace(reqData.Level); level != "" && !validLevels[level] {
			return middleware.JsonResponse(c, fiber.StatusBadRequest,
				"Level must be one of Beginner, Intermediate or Expert!")
		}

		c.Locals("exerciseInput", reqData)
		return c.Next()
	}
}

// SolutionBody parses and stashes the solution payload.
func SolutionBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(services.SolutionInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		c.Locals("solutionInput", reqData)
		return c.Next()
	}
}

// ExerciseID parses the :exerciseId path param.
func ExerciseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("exerciseId"), 10, 64)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, "Exercise not found!")
		}
		c.Locals("exerciseId", uint(id))
		return c.Next()
	}
}
