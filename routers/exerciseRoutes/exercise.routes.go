package exerciseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "codecamp/controllers/exercise"
	"codecamp/middleware"
	validators "codecamp/validators/exercise"
	lessonValidators "codecamp/validators/lesson"
)

func SetupExerciseRoutes(app *fiber.App) {
	app.Post("/lessons/:lessonId/exercises/create",
		middleware.JWTMiddleware, lessonValidators.LessonID(), validators.ExerciseBody(), controllers.CreateExercise)

	app.Get("/lessons/:lessonId/exercises",
		lessonValidators.LessonID(), controllers.LessonExercises)

	app.Put("/lessons/:lessonId/exercises/:exerciseId",
		middleware.JWTMiddleware, lessonValidators.LessonID(), validators.ExerciseID(), validators.ExerciseBody(), controllers.EditExercise)

	app.Delete("/lessons/:lessonId/exercises/:exerciseId",
		middleware.JWTMiddleware, middleware.AdminOnly, lessonValidators.LessonID(), validators.ExerciseID(), controllers.DeleteExercise)

	app.Post("/exercises/:exerciseId/solutions",
		middleware.JWTMiddleware, validators.ExerciseID(), validators.SolutionBody(), controllers.CreateSolution)

	app.Get("/exercises/:exerciseId/solutions",
		validators.ExerciseID(), controllers.ExerciseSolutions)
}
