package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"codecamp/database"
	"codecamp/models"
)

// AdminOnly gates destructive routes. It trusts the token claim when present
// and falls back to the user row, so a freshly promoted admin only needs a
// new login when their token predates the promotion.
func AdminOnly(c *fiber.Ctx) error {
	if isAdmin, ok := c.Locals("isAdmin").(bool); ok && isAdmin {
		return c.Next()
	}

	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
	}

	var user models.User
	err := database.Database.Db.First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JsonResponse(c, fiber.StatusForbidden, "You do not have permission to access this resource!")
		}
		return JsonResponse(c, fiber.StatusInternalServerError, "Server error while checking permissions!")
	}
	if !user.IsAdmin {
		return JsonResponse(c, fiber.StatusForbidden, "You do not have permission to access this resource!")
	}

	return c.Next()
}
