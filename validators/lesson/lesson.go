package lessonValidator

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

// LessonBody parses and stashes the lesson payload.
func LessonBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(services.LessonInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if level := strings.TrimSpace(reqData.Level); level != "" && !validLevels[level] {
			return middleware.JsonResponse(c, fiber.StatusBadRequest,
				"Level must be one of Beginner, Intermediate or Expert!")
		}

		c.Locals("lessonInput", reqData)
		return c.Next()
	}
}

// LessonID parses the :lessonId path param.
func LessonID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("lessonId"), 10, 64)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, "Lesson not found!")
		}
		c.Locals("lessonId", uint(id))
		return c.Next()
	}
}
