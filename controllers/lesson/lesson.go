package lessonController

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

// CreateLesson handles POST /courses/:courseId/lessons/create
func CreateLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseId").(uint)
	reqData, ok := c.Locals("lessonInput").(*services.LessonInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	h := services.NewHierarchy(store.New(database.Database.Db))
	lesson, err := h.CreateLesson(courseID, *reqData)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrInvalidInput):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Please make sure all fields are filled!")
	case errors.Is(err, store.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, "Course not found")
	case errors.Is(err, store.ErrPartialFailure):
		log.Printf("create lesson under course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Could not add lesson to course")
	default:
		log.Printf("create lesson under course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to create lesson!")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Lesson created and added to course",
		"createdLesson": lesson,
	})
}

// LearnCourseLessons handles GET /learn/user/:userId/courses/:courseId/lessons?limit&offset
func LearnCourseLessons(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("userId"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, "User not found")
	}
	courseID := c.Locals("courseId").(uint)
	window := services.ParseWindow(c.Query("limit"), c.Query("offset"))

	s := store.New(database.Database.Db)
	if _, err := s.GetUser(uint(userID)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("learn lessons, user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	lessons, totalPages, err := services.NewPaginator(s).CourseLessons(courseID, window)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("learn lessons, course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"lessons":    lessons,
		"totalPages": totalPages,
	})
}

// EditLesson handles PUT /courses/:courseId/lessons/:lessonId
func EditLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseId").(uint)
	lessonID := c.Locals("lessonId").(uint)
	reqData, ok := c.Locals("lessonInput").(*services.LessonInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	h := services.NewHierarchy(store.New(database.Database.Db))
	lesson, err := h.EditLesson(courseID, lessonID, *reqData)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrInvalidInput):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Please make sure all fields are filled!")
	case errors.Is(err, store.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, "Lesson not found!")
	default:
		log.Printf("edit lesson %d in course %d: %v", lessonID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Lesson updated successfully",
		"updatedLesson": lesson,
	})
}

// DeleteLesson handles DELETE /courses/:courseId/lessons/:lessonId
func DeleteLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseId").(uint)
	lessonID := c.Locals("lessonId").(uint)

	h := services.NewHierarchy(store.New(database.Database.Db))
	if err := h.DeleteLesson(courseID, lessonID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, "Lesson not found in course")
		}
		log.Printf("delete lesson %d from course %d: %v", lessonID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Lesson deleted successfully")
}
