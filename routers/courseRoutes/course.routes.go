package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "codecamp/controllers/course"
	"codecamp/middleware"
	validators "codecamp/validators/course"
)

// SetupCourseRoutes sets up the course surface. Mutations require auth,
// deletes require an admin; reads and enrolment are open.
func SetupCourseRoutes(app *fiber.App) {
	app.Post("/courses/create", middleware.JWTMiddleware, validators.CourseBody(), controllers.CreateCourse)
	app.Get("/courses", controllers.GetAllCourses)
	app.Get("/searchcourses", controllers.SearchCourses)
	app.Get("/courses/:courseId", validators.CourseID(), controllers.GetCourse)
	app.Put("/courses/:courseId/edit", middleware.JWTMiddleware, validators.CourseID(), validators.CourseBody(), controllers.EditCourse)
	app.Delete("/courses/:courseId", middleware.JWTMiddleware, middleware.AdminOnly, validators.CourseID(), controllers.DeleteCourse)

	app.Post("/user/:userId/course/:courseId/enrol", validators.CourseID(), controllers.Enrol)
	app.Get("/user/:userId/courses", controllers.UserCourses)
}
