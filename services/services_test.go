package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"codecamp/models"
	"codecamp/store"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func newTestStore(t *testing.T) *store.Store {
	return store.New(newTestDB(t))
}

// blockWrites installs a trigger that aborts the given statement kind on a
// table, to force a failure between the two halves of an edge update.
func blockWrites(t *testing.T, db *gorm.DB, op, table string) {
	t.Helper()
	stmt := fmt.Sprintf(
		"CREATE TRIGGER block_%s_%s BEFORE %s ON %s BEGIN SELECT RAISE(ABORT, 'writes disabled'); END",
		op, table, op, table,
	)
	require.NoError(t, db.Exec(stmt).Error)
}

func validCourse() CourseInput {
	return CourseInput{
		Name:                "intro-js",
		Description:         "d",
		EstimatedDuration:   "2h",
		Level:               models.LevelBeginner,
		ProgrammingLanguage: "js",
	}
}

func validLesson() LessonInput {
	return LessonInput{
		Name:                "vars",
		Description:         "variables",
		Content:             "let x = 1",
		EstimatedDuration:   "30m",
		Level:               models.LevelBeginner,
		ProgrammingLanguage: "js",
	}
}

func validExercise() ExerciseInput {
	return ExerciseInput{
		Name:                "declare a variable",
		Description:         "declare x",
		Content:             "// your code here",
		Level:               models.LevelBeginner,
		ProgrammingLanguage: "js",
	}
}
