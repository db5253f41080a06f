package courseValidator

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

// CourseBody parses and stashes the course payload. Required-field checks
// live in the hierarchy service (single write path); here we only reject
// malformed bodies and unknown levels early.
func CourseBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(services.CourseInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if level := strings.TrimSpace(reqData.Level); level != "" && !validLevels[level] {
			return middleware.JsonResponse(c, fiber.StatusBadRequest,
				"Level must be one of Beginner, Intermediate or Expert!")
		}

		c.Locals("courseInput", reqData)
		return c.Next()
	}
}

// CourseID parses the :courseId path param. A non-numeric id can never
// resolve, so it is reported the same way as a missing course.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("courseId"), 10, 64)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, "Course not found!")
		}
		c.Locals("courseId", uint(id))
		return c.Next()
	}
}
