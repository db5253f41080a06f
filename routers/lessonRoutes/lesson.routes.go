package lessonRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "codecamp/controllers/lesson"
	"codecamp/middleware"
	courseValidators "codecamp/validators/course"
	validators "codecamp/validators/lesson"
)

func SetupLessonRoutes(app *fiber.App) {
	app.Post("/courses/:courseId/lessons/create",
		middleware.JWTMiddleware, courseValidators.CourseID(), validators.LessonBody(), controllers.CreateLesson)

	app.Get("/learn/user/:userId/courses/:courseId/lessons",
		courseValidators.CourseID(), controllers.LearnCourseLessons)

	app.Put("/courses/:courseId/lessons/:lessonId",
		middleware.JWTMiddleware, courseValidators.CourseID(), validators.LessonID(), validators.LessonBody(), controllers.EditLesson)

	app.Delete("/courses/:courseId/lessons/:lessonId",
		middleware.JWTMiddleware, middleware.AdminOnly, courseValidators.CourseID(), validators.LessonID(), controllers.DeleteLesson)
}
