package dashboardController

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"codecamp/database"
	"codecamp/middleware"
	"codecamp/services"
	"codecamp/store"
)

// Dashboard handles GET /user/:userId/dashboard?page=
//
// page=learning returns every enrolled course; anything else behaves like the
// dashboard view: the first enrolled course, or an empty payload when the
// user has no enrollments. A missing user is 404. "User has no courses" and
// "user does not exist" are different outcomes and must stay that way.
func Dashboard(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("userId"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, "User not found")
	}

	ledger := services.NewEnrollment(store.New(database.Database.Db))

	if c.Query("page") == "learning" {
		courses, err := ledger.Learning(uint(userID))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return middleware.JsonResponse(c, fiber.StatusNotFound, "User not found")
			}
			log.Printf("learning view for user %d: %v", userID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"courses": courses})
	}

	course, err := ledger.Dashboard(uint(userID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("dashboard view for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	// course is nil for a user with zero enrollments; serialized as null
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"courses": course})
}
