package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"codecamp/models"
)

// Store is the persistence boundary for all entities. Single-row operations
// are atomic; nothing here spans rows. Cross-row consistency is the hierarchy
// service's problem, not the store's.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CourseRef is the {id, name} projection used by search.
type CourseRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("store: %w", err)
}

// --- Courses ---

func (s *Store) GetCourse(id uint) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, id).Error; err != nil {
		return nil, translate(err)
	}
	return &course, nil
}

// GetCourseByName does a case-sensitive exact match, which is what course
// name uniqueness is defined over.
func (s *Store) GetCourseByName(name string) (*models.Course, error) {
	var course models.Course
	if err := s.db.Where("name = ?", name).First(&course).Error; err != nil {
		return nil, translate(err)
	}
	return &course, nil
}

func (s *Store) CreateCourse(course *models.Course) error {
	if err := s.db.Create(course).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *Store) SaveCourse(course *models.Course) error {
	if err := s.db.Save(course).Error; err != nil {
		return translate(err)
	}
	return nil
}

// DeleteCourse is idempotent: deleting an id that is already gone is a no-op.
// Deletes are hard deletes; a soft-deleted course would keep its name locked
// by the unique index.
func (s *Store) DeleteCourse(id uint) error {
	if err := s.db.Unscoped().Delete(&models.Course{}, id).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *Store) ListCourses() ([]models.Course, error) {
	var courses []models.Course
	if err := s.db.Order("id").Find(&courses).Error; err != nil {
		return nil, translate(err)
	}
	return courses, nil
}

// CoursesByIDs resolves ids in the order given. Ids that no longer resolve are
// skipped rather than failing the whole read; duplicate ids yield duplicate
// entries, matching the enrollment ledger's append-without-dedup behavior.
func (s *Store) CoursesByIDs(ids []uint) ([]models.Course, error) {
	if len(ids) == 0 {
		return []models.Course{}, nil
	}
	var rows []models.Course
	if err := s.db.Where("id IN ?", []uint(ids)).Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	byID := make(map[uint]models.Course, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	ordered := make([]models.Course, 0, len(ids))
	for _, id := range ids {
		if course, ok := byID[id]; ok {
			ordered = append(ordered, course)
		}
	}
	return ordered, nil
}

// SearchCourses matches a case-insensitive substring of the course name and
// returns the {id, name} projection only. An empty result is not an error.
func (s *Store) SearchCourses(nameFragment string) ([]CourseRef, error) {
	var refs []CourseRef
	pattern := "%" + strings.ToLower(nameFragment) + "%"
	err := s.db.Model(&models.Course{}).
		Where("LOWER(name) LIKE ?", pattern).
		Order("id").
		Select("id", "name").
		Find(&refs).Error
	if err != nil {
		return nil, translate(err)
	}
	return refs, nil
}

// --- Lessons ---

func (s *Store) GetLesson(id uint) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := s.db.First(&lesson, id).Error; err != nil {
		return nil, translate(err)
	}
	return &lesson, nil
}

func (s *Store) CreateLesson(lesson *models.Lesson) error {
	if err := s.db.Create(lesson).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *Store) SaveLesson(lesson *models.Lesson) error {
	if err := s.db.Save(lesson).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *Store) DeleteLesson(id uint) error {
	if err := s.db.Unscoped().Delete(&models.Lesson{}, id).Error; err != nil {
		return translate(err)
	}
	return nil
}

// LessonsByIDs resolves ids in the order given, skipping ids that are gone.
func (s *Store) LessonsByIDs(ids []uint) ([]models.Lesson, error) {
	if len(ids) == 0 {
		return []models.Lesson{}, nil
	}
	var rows []models.Lesson
	if err := s.db.Where("id IN ?", []uint(ids)).Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	byID := make(map[uint]models.Lesson, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	ordered := make([]models.Lesson, 0, len(ids))
	for _, id := range ids {
		if lesson, ok := byID[id]; ok {
			ordered = append(ordered, lesson)
		}
	}
	return ordered, nil
}

// ListLessons returns every lesson row. Used by the reconciler sweep.
func (s *Store) ListLessons() ([]models.Lesson, error) {
	var lessons []models.Lesson
	if err := s.db.Order("id").Find(&lessons).Error; err != nil {
		return nil, translate(err)
	}
	return lessons, nil
}

// --- Exercises ---

func (s *Store) GetExercise(id uint) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := s.db.First(&exercise, id).Error; err != nil {
		return nil, translate(err)
	}
	return &exercise, nil
}

func (s *Store) CreateExercise(exercise *models.Exercise) error {
	if err := s.db.Create(exercise).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *Store) SaveExercise(exercise *models.Exercise) error {
	if err := s.db.Save(exercise).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *Store) DeleteExercise(id uint) error {
	if err := s.db.Unscoped().Delete(&models.Exercise{}, id).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *Store) ExercisesByIDs(ids []uint) ([]models.Exercise, error) {
	if len(ids) == 0 {
		return []models.Exercise{}, nil
	}
	var rows []models.Exercise
	if err := s.db.Where("id IN ?", []uint(ids)).Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	byID := make(map[uint]models.Exercise, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	ordered := make([]models.Exercise, 0, len(ids))
	for _, id := range ids {
		if exercise, ok := byID[id]; ok {
			ordered = append(ordered, exercise)
		}
	}
	return ordered, nil
}

// ListExercises returns every exercise row. Used by the reconciler sweep.
func (s *Store) ListExercises() ([]models.Exercise, error) {
	var exercises []models.Exercise
	if err := s.db.Order("id").Find(&exercises).Error; err != nil {
		return nil, translate(err)
	}
	return exercises, nil
}

// --- Solutions ---

func (s *Store) CreateSolution(solution *models.Solution) error {
	if err := s.db.Create(solution).Error; err != nil {
		return translate(err)
	}
	return nil
}

// SolutionsByExercise returns an exercise's solutions in submission order.
func (s *Store) SolutionsByExercise(exerciseID uint) ([]models.Solution, error) {
	var solutions []models.Solution
	if err := s.db.Where("exercise_id = ?", exerciseID).Order("id").Find(&solutions).Error; err != nil {
		return nil, translate(err)
	}
	return solutions, nil
}

// --- Users ---

func (s *Store) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) GetUserByEmailToken(token string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email_token = ?", token).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) GetUserByResetToken(token string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("password_reset_token = ?", token).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) CreateUser(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *Store) SaveUser(user *models.User) error {
	if err := s.db.Save(user).Error; err != nil {
		return translate(err)
	}
	return nil
}
