package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"codecamp/models"
	"codecamp/services"
	"codecamp/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

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
	return store.New(db)
}

func seedHierarchy(t *testing.T, s *store.Store) (courseID, lessonID, exerciseID uint) {
	t.Helper()
	h := services.NewHierarchy(s)

	course, err := h.CreateCourse(services.CourseInput{
		Name: "intro-js", Description: "d", EstimatedDuration: "2h",
		Level: models.LevelBeginner, ProgrammingLanguage: "js",
	})
	require.NoError(t, err)
	lesson, err := h.CreateLesson(course.ID, services.LessonInput{
		Name: "vars", Description: "d", Content: "c", EstimatedDuration: "30m",
		Level: models.LevelBeginner, ProgrammingLanguage: "js",
	})
	require.NoError(t, err)
	exercise, err := h.CreateExercise(lesson.ID, services.ExerciseInput{
		Name: "e", Description: "d", Content: "c",
		Level: models.LevelBeginner, ProgrammingLanguage: "js",
	})
	require.NoError(t, err)
	return course.ID, lesson.ID, exercise.ID
}

func TestScanFindsNothingOnConsistentGraph(t *testing.T) {
	s := newTestStore(t)
	seedHierarchy(t, s)

	assert.Zero(t, ScanForOrphans(s))
}

func TestScanFindsLessonOrphanedByCourseDelete(t *testing.T) {
	s := newTestStore(t)
	courseID, _, _ := seedHierarchy(t, s)

	// course row removed out from under its lesson
	require.NoError(t, s.DeleteCourse(courseID))

	assert.Equal(t, 1, ScanForOrphans(s))
}

func TestScanFindsUnlinkedLesson(t *testing.T) {
	s := newTestStore(t)
	courseID, _, _ := seedHierarchy(t, s)

	// simulate the crash window between lesson create and course append
	course, err := s.GetCourse(courseID)
	require.NoError(t, err)
	course.Lessons = nil
	require.NoError(t, s.SaveCourse(course))

	assert.Equal(t, 1, ScanForOrphans(s))
}

func TestScanFindsExercisesOrphanedByLessonDelete(t *testing.T) {
	s := newTestStore(t)
	courseID, lessonID, _ := seedHierarchy(t, s)

	h := services.NewHierarchy(s)
	require.NoError(t, h.DeleteLesson(courseID, lessonID))

	assert.Equal(t, 1, ScanForOrphans(s))
}
