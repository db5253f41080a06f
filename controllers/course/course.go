package courseController

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

func hierarchy() *services.Hierarchy {
	return services.NewHierarchy(store.New(database.Database.Db))
}

func paginator() *services.Paginator {
	return services.NewPaginator(store.New(database.Database.Db))
}

// CreateCourse handles POST /courses/create
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("courseInput").(*services.CourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	course, err := hierarchy().CreateCourse(*reqData)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrInvalidInput):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Please make sure all fields are filled!")
	case errors.Is(err, store.ErrConflict):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Course with the same name already exists")
	default:
		log.Printf("create course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"course":  course,
		"message": "Course created successfully",
	})
}

// GetAllCourses handles GET /courses?limit&offset
func GetAllCourses(c *fiber.Ctx) error {
	window := services.ParseWindow(c.Query("limit"), c.Query("offset"))

	courses, totalPages, err := paginator().ListCourses(window)
	if err != nil {
		log.Printf("list courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"courses":    courses,
		"totalPages": totalPages,
	})
}

// GetCourse handles GET /courses/:courseId
func GetCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseId").(uint)

	course, err := paginator().PopulateCourse(courseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, "Course not found!")
		}
		log.Printf("get course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"course": course})
}

// EditCourse handles PUT /courses/:courseId/edit
func EditCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseId").(uint)
	reqData, ok := c.Locals("courseInput").(*services.CourseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	course, err := hierarchy().EditCourse(courseID, *reqData)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrInvalidInput):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Please make sure all fields are filled!")
	case errors.Is(err, store.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, "Course not found!")
	default:
		log.Printf("edit course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Unable to save updated course!")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Course updated",
		"updatedCourse": course,
	})
}

// DeleteCourse handles DELETE /courses/:courseId
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseId").(uint)

	if err := hierarchy().DeleteCourse(courseID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, "Course not found!")
		}
		log.Printf("delete course %d: %v", courseID, err)
		// 505 kept as-is: clients already special-case this path
		return middleware.JsonResponse(c, fiber.StatusHTTPVersionNotSupported, "Internal Server Error")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Course deleted successfully!")
}

// SearchCourses handles GET /searchcourses?name=
func SearchCourses(c *fiber.Ctx) error {
	refs, err := services.SearchCourses(store.New(database.Database.Db), c.Query("name"))
	if err != nil {
		log.Printf("search courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"courses": refs})
}

// Enrol handles POST /user/:userId/course/:courseId/enrol
func Enrol(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("userId"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Unable to enrol you in the course")
	}
	courseID := c.Locals("courseId").(uint)

	ledger := services.NewEnrollment(store.New(database.Database.Db))
	if err := ledger.Enrol(uint(userID), courseID); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Unable to enrol you in the course")
		case errors.Is(err, store.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, "Course not found")
		default:
			log.Printf("enrol user %d in course %d: %v", userID, courseID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "You been enroled")
}

// UserCourses handles GET /user/:userId/courses
func UserCourses(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("userId"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, "User not found")
	}

	ledger := services.NewEnrollment(store.New(database.Database.Db))
	courses, err := ledger.Courses(uint(userID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("courses for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"courses": courses})
}
