package exerciseController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"codecamp/database"
	"codecamp/middleware"
	"codecamp/services"
	"codecamp/store"
)

// CreateExercise handles POST /lessons/:lessonId/exercises/create
func CreateExercise(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonId").(uint)
	reqData, ok := c.Locals("exerciseInput").(*services.ExerciseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	h := services.NewHierarchy(store.New(database.Database.Db))
	exercise, err := h.CreateExercise(lessonID, *reqData)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrInvalidInput):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Please make sure all fields are filled!")
	case errors.Is(err, store.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, "Lesson not found!")
	case errors.Is(err, store.ErrPartialFailure):
		log.Printf("create exercise under lesson %d: %v", lessonID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Could not add exercise to lesson")
	default:
		log.Printf("create exercise under lesson %d: %v", lessonID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to create exercise!")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":         "Exercise created and added to lesson",
		"createdExercise": exercise,
	})
}

// LessonExercises handles GET /lessons/:lessonId/exercises?limit&offset
func LessonExercises(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonId").(uint)
	window := services.ParseWindow(c.Query("limit"), c.Query("offset"))

	p := services.NewPaginator(store.New(database.Database.Db))
	exercises, totalPages, err := p.LessonExercises(lessonID, window)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, "Lesson not found!")
		}
		log.Printf("exercises for lesson %d: %v", lessonID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"exercises":  exercises,
		"totalPages": totalPages,
	})
}

// EditExercise handles PUT /lessons/:lessonId/exercises/:exerciseId
func EditExercise(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonId").(uint)
	exerciseID := c.Locals("exerciseId").(uint)
	reqData, ok := c.Locals("exerciseInput").(*services.ExerciseInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	h := services.NewHierarchy(store.New(database.Database.Db))
	exercise, err := h.EditExercise(lessonID, exerciseID, *reqData)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrInvalidInput):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Please make sure all fields are filled!")
	case errors.Is(err, store.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, "Exercise not found!")
	default:
		log.Printf("edit exercise %d in lesson %d: %v", exerciseID, lessonID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":         "Exercise updated successfully",
		"updatedExercise": exercise,
	})
}

// DeleteExercise handles DELETE /lessons/:lessonId/exercises/:exerciseId
func DeleteExercise(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonId").(uint)
	exerciseID := c.Locals("exerciseId").(uint)

	h := services.NewHierarchy(store.New(database.Database.Db))
	if err := h.DeleteExercise(lessonID, exerciseID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, "Exercise not found in lesson")
		}
		log.Printf("delete exercise %d from lesson %d: %v", exerciseID, lessonID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Exercise deleted successfully")
}

// ExerciseSolutions handles GET /exercises/:exerciseId/solutions
func ExerciseSolutions(c *fiber.Ctx) error {
	exerciseID := c.Locals("exerciseId").(uint)

	p := services.NewPaginator(store.New(database.Database.Db))
	solutions, err := p.ExerciseSolutions(exerciseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, "Exercise not found!")
		}
		log.Printf("solutions for exercise %d: %v", exerciseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"solutions": solutions})
}

// CreateSolution handles POST /exercises/:exerciseId/solutions
func CreateSolution(c *fiber.Ctx) error {
	exerciseID := c.Locals("exerciseId").(uint)
	reqData, ok := c.Locals("solutionInput").(*services.SolutionInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	h := services.NewHierarchy(store.New(database.Database.Db))
	solution, err := h.CreateSolution(exerciseID, *reqData)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrInvalidInput):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Please make sure all fields are filled!")
	case errors.Is(err, store.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, "Exercise not found!")
	default:
		log.Printf("create solution under exercise %d: %v", exerciseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to create solution!")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Solution created successfully",
		"solution": solution,
	})
}
