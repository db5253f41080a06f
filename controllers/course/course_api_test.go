package courseController_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"codecamp/config"
	"codecamp/database"
	"codecamp/middleware"
	"codecamp/models"
	"codecamp/routers/courseRoutes"
	"codecamp/routers/dashboardRoutes"
	"codecamp/routers/exerciseRoutes"
	"codecamp/routers/lessonRoutes"
)

func newTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Lesson{},
		&models.Exercise{},
		&models.Solution{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	lessonRoutes.SetupLessonRoutes(app)
	exerciseRoutes.SetupExerciseRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)

	token, err := middleware.GenerateJWT(1, "admin@example.com", true)
	require.NoError(t, err)

	return app, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

func courseBody(name string) map[string]string {
	return map[string]string{
		"name":                name,
		"description":         "d",
		"estimatedDuration":   "2h",
		"level":               "Beginner",
		"programmingLanguage": "js",
	}
}

func lessonBody(name string) map[string]string {
	return map[string]string{
		"name":                name,
		"description":         "d",
		"content":             "c",
		"estimatedDuration":   "30m",
		"level":               "Beginner",
		"programmingLanguage": "js",
	}
}

func TestCourseLifecycleOverHTTP(t *testing.T) {
	app, token := newTestApp(t)

	// create a course
	status, body := doJSON(t, app, http.MethodPost, "/courses/create", token, courseBody("intro-js"))
	require.Equal(t, http.StatusOK, status)
	course := body["course"].(map[string]any)
	courseID := int(course["ID"].(float64))

	// duplicate name is rejected before any write
	status, body = doJSON(t, app, http.MethodPost, "/courses/create", token, courseBody("intro-js"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Course with the same name already exists", body["message"])

	// create a lesson under it
	status, body = doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/courses/%d/lessons/create", courseID), token, lessonBody("vars"))
	require.Equal(t, http.StatusOK, status)
	lesson := body["createdLesson"].(map[string]any)
	lessonID := int(lesson["ID"].(float64))

	// the course now shows one populated lesson
	status, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/courses/%d", courseID), "", nil)
	require.Equal(t, http.StatusOK, status)
	fetched := body["course"].(map[string]any)
	assert.Len(t, fetched["lessons"].([]any), 1)

	// delete the lesson
	status, _ = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/courses/%d/lessons/%d", courseID, lessonID), token, nil)
	require.Equal(t, http.StatusOK, status)

	// the course shows zero lessons and the lesson id no longer resolves
	status, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/courses/%d", courseID), "", nil)
	require.Equal(t, http.StatusOK, status)
	fetched = body["course"].(map[string]any)
	assert.Empty(t, fetched["lessons"])

	status, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/lessons/%d/exercises", lessonID), "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreateCourseRequiresAllFields(t *testing.T) {
	app, token := newTestApp(t)

	body := courseBody("intro-js")
	body["description"] = "   "
	status, resp := doJSON(t, app, http.MethodPost, "/courses/create", token, body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Please make sure all fields are filled!", resp["message"])

	// nothing was written
	status, resp = doJSON(t, app, http.MethodGet, "/courses?limit=10", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, resp["courses"])
}

func TestCreateLessonPartialFailureIs500(t *testing.T) {
	app, token := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/courses/create", token, courseBody("intro-js"))
	require.Equal(t, http.StatusOK, status)
	courseID := int(body["course"].(map[string]any)["ID"].(float64))

	// make the lesson-id append to the course fail after the lesson row exists
	require.NoError(t, database.Database.Db.Exec(
		"CREATE TRIGGER block_update_courses BEFORE UPDATE ON courses BEGIN SELECT RAISE(ABORT, 'writes disabled'); END",
	).Error)

	status, body = doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/courses/%d/lessons/create", courseID), token, lessonBody("vars"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Could not add lesson to course", body["message"])

	// the half-committed lesson never shows up in the course's view
	status, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/courses/%d", courseID), "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["course"].(map[string]any)["lessons"])
}

func TestDeleteCourseRequiresAdmin(t *testing.T) {
	app, admin := newTestApp(t)

	user := models.User{FirstName: "Ada", LastName: "L", Email: "ada@example.com", Password: "x"}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	status, body := doJSON(t, app, http.MethodPost, "/courses/create", admin, courseBody("intro-js"))
	require.Equal(t, http.StatusOK, status)
	courseID := int(body["course"].(map[string]any)["ID"].(float64))

	token, err := middleware.GenerateJWT(user.ID, user.Email, false)
	require.NoError(t, err)

	status, body = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/courses/%d", courseID), token, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "You do not have permission to access this resource!", body["message"])

	// the course survives
	status, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/courses/%d", courseID), "", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestCreateCourseRequiresAuth(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/courses/create", "", courseBody("intro-js"))
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestListCoursesReportsTotalPages(t *testing.T) {
	app, token := newTestApp(t)

	for _, name := range []string{"a", "b", "c"} {
		status, _ := doJSON(t, app, http.MethodPost, "/courses/create", token, courseBody(name))
		require.Equal(t, http.StatusOK, status)
	}

	status, body := doJSON(t, app, http.MethodGet, "/courses?limit=2&offset=0", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["courses"].([]any), 3)
	assert.EqualValues(t, 2, body["totalPages"])
}

func TestGetMissingCourseIs404(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/courses/999", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Course not found!", body["message"])
}

func TestSearchCoursesProjection(t *testing.T) {
	app, token := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/courses/create", token, courseBody("Intro to JS"))
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, app, http.MethodGet, "/searchcourses?name=js", "", nil)
	require.Equal(t, http.StatusOK, status)
	courses := body["courses"].([]any)
	require.Len(t, courses, 1)
	ref := courses[0].(map[string]any)
	assert.Equal(t, "Intro to JS", ref["name"])
	assert.NotContains(t, ref, "description")

	// no match is still a 200
	status, body = doJSON(t, app, http.MethodGet, "/searchcourses?name=rust", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["courses"])
}

func TestEnrolmentAndDashboardViews(t *testing.T) {
	app, token := newTestApp(t)

	user := models.User{FirstName: "Ada", LastName: "L", Email: "ada@example.com", Password: "x"}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	status, body := doJSON(t, app, http.MethodPost, "/courses/create", token, courseBody("intro-js"))
	require.Equal(t, http.StatusOK, status)
	courseID := int(body["course"].(map[string]any)["ID"].(float64))

	// empty dashboard before enrolment: success, empty payload
	status, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/user/%d/dashboard?page=dashboard", user.ID), "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, body["courses"])

	// a missing user is a different outcome
	status, _ = doJSON(t, app, http.MethodGet, "/user/999/dashboard?page=dashboard", "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	// enrol
	status, _ = doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/user/%d/course/%d/enrol", user.ID, courseID), "", nil)
	require.Equal(t, http.StatusOK, status)

	status, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/user/%d/dashboard?page=dashboard", user.ID), "", nil)
	require.Equal(t, http.StatusOK, status)
	first := body["courses"].(map[string]any)
	assert.EqualValues(t, courseID, first["id"])

	status, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/user/%d/dashboard?page=learning", user.ID), "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["courses"].([]any), 1)

	status, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/user/%d/courses", user.ID), "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["courses"].([]any), 1)
}

func TestEnrolInMissingCourse(t *testing.T) {
	app, _ := newTestApp(t)

	user := models.User{FirstName: "Ada", LastName: "L", Email: "ada@example.com", Password: "x"}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	status, body := doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/user/%d/course/42/enrol", user.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Course not found", body["message"])
}
