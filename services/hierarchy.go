package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/datatypes"

	"codecamp/models"
	"codecamp/store"
)

// Hierarchy is the single write path for every parent/child edge in the
// content graph. Nothing else in the codebase is allowed to mutate a Lessons,
// Exercises or Courses sequence. Each edge mutation performs both sides or
// reports the failure; a half-committed edge surfaces as ErrPartialFailure
// with the unlinked record's id, never silently.
type Hierarchy struct {
	store *store.Store
}

func NewHierarchy(s *store.Store) *Hierarchy {
	return &Hierarchy{store: s}
}

// CourseInput carries the editable attributes of a course. Relationship
// fields and ids are never part of an input.
type CourseInput struct {
	Name                string `json:"name"`
	Description         string `json:"description"`
	EstimatedDuration   string `json:"estimatedDuration"`
	Level               string `json:"level"`
	ProgrammingLanguage string `json:"programmingLanguage"`
}

type LessonInput struct {
	Name                string `json:"name"`
	Description         string `json:"description"`
	Content             string `json:"content"`
	EstimatedDuration   string `json:"estimatedDuration"`
	Level               string `json:"level"`
	ProgrammingLanguage string `json:"programmingLanguage"`
}

type ExerciseInput struct {
	Name                string `json:"name"`
	Description         string `json:"description"`
	Content             string `json:"content"`
	Level               string `json:"level"`
	ProgrammingLanguage string `json:"programmingLanguage"`
}

type SolutionInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// trimRequired trims every field in place and reports the names of the ones
// that are empty afterwards. The trimmed values are what gets persisted.
func trimRequired(fields map[string]*string) error {
	var missing []string
	for name, value := range fields {
		*value = strings.TrimSpace(*value)
		if *value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s",
			store.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

func (in *CourseInput) validate() error {
	return trimRequired(map[string]*string{
		"name":                &in.Name,
		"description":         &in.Description,
		"estimatedDuration":   &in.EstimatedDuration,
		"level":               &in.Level,
		"programmingLanguage": &in.ProgrammingLanguage,
	})
}

func (in *LessonInput) validate() error {
	return trimRequired(map[string]*string{
		"name":                &in.Name,
		"description":         &in.Description,
		"content":             &in.Content,
		"estimatedDuration":   &in.EstimatedDuration,
		"level":               &in.Level,
		"programmingLanguage": &in.ProgrammingLanguage,
	})
}

func (in *ExerciseInput) validate() error {
	return trimRequired(map[string]*string{
		"name":                &in.Name,
		"description":         &in.Description,
		"content":             &in.Content,
		"level":               &in.Level,
		"programmingLanguage": &in.ProgrammingLanguage,
	})
}

func (in *SolutionInput) validate() error {
	return trimRequired(map[string]*string{
		"name":        &in.Name,
		"description": &in.Description,
		"content":     &in.Content,
	})
}

// indexOf returns the position of id in seq, or -1.
func indexOf(seq []uint, id uint) int {
	for i, v := range seq {
		if v == id {
			return i
		}
	}
	return -1
}

// removeAt drops the element at i, preserving the order of the rest.
func removeAt(seq []uint, i int) []uint {
	out := make([]uint, 0, len(seq)-1)
	out = append(out, seq[:i]...)
	return append(out, seq[i+1:]...)
}

// --- Courses ---

// CreateCourse validates, enforces name uniqueness (case-sensitive exact
// match, checked before any write) and creates the course with an empty
// lesson sequence.
func (h *Hierarchy) CreateCourse(in CourseInput) (*models.Course, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	if _, err := h.store.GetCourseByName(in.Name); err == nil {
		return nil, fmt.Errorf("%w: course name %q already exists", store.ErrConflict, in.Name)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	course := &models.Course{
		Name:                in.Name,
		Description:         in.Description,
		EstimatedDuration:   in.EstimatedDuration,
		Level:               in.Level,
		ProgrammingLanguage: in.ProgrammingLanguage,
		Lessons:             datatypes.NewJSONSlice([]uint{}),
	}
	if err := h.store.CreateCourse(course); err != nil {
		return nil, err
	}
	return course, nil
}

// EditCourse replaces the editable attributes in full. The id and the Lessons
// sequence are never touched by an edit.
func (h *Hierarchy) EditCourse(courseID uint, in CourseInput) (*models.Course, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	course, err := h.store.GetCourse(courseID)
	if err != nil {
		return nil, err
	}

	course.Name = in.Name
	course.Description = in.Description
	course.EstimatedDuration = in.EstimatedDuration
	course.Level = in.Level
	course.ProgrammingLanguage = in.ProgrammingLanguage

	if err := h.store.SaveCourse(course); err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes the course row. Its lessons are unlinked, not
// cascade-deleted; the reconciler reports them as orphans.
func (h *Hierarchy) DeleteCourse(courseID uint) error {
	if _, err := h.store.GetCourse(courseID); err != nil {
		return err
	}
	return h.store.DeleteCourse(courseID)
}

// --- Lessons ---

// CreateLesson creates the lesson with its course back-reference, then
// appends the new id to the course's lesson sequence. If the append fails
// after the lesson row exists, the lesson is left store-resident but unlinked
// and the caller gets ErrPartialFailure carrying the lesson id.
func (h *Hierarchy) CreateLesson(courseID uint, in LessonInput) (*models.Lesson, error) {
	course, err := h.store.GetCourse(courseID)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	lesson := &models.Lesson{
		Name:                in.Name,
		Description:         in.Description,
		Content:             in.Content,
		EstimatedDuration:   in.EstimatedDuration,
		Level:               in.Level,
		ProgrammingLanguage: in.ProgrammingLanguage,
		Exercises:           datatypes.NewJSONSlice([]uint{}),
		CourseID:            course.ID,
	}
	if err := h.store.CreateLesson(lesson); err != nil {
		return nil, err
	}

	course.Lessons = append(course.Lessons, lesson.ID)
	if err := h.store.SaveCourse(course); err != nil {
		log.Printf("lesson %d created but not linked to course %d: %v", lesson.ID, course.ID, err)
		return nil, fmt.Errorf("%w: lesson %d is unlinked under course %d",
			store.ErrPartialFailure, lesson.ID, course.ID)
	}
	return lesson, nil
}

// EditLesson replaces the lesson's editable attributes. Membership is decided
// by scanning the course's lesson sequence: a lesson that exists but is not
// linked to this course is not found from this course's view.
func (h *Hierarchy) EditLesson(courseID, lessonID uint, in LessonInput) (*models.Lesson, error) {
	course, err := h.store.GetCourse(courseID)
	if err != nil {
		return nil, err
	}
	if indexOf(course.Lessons, lessonID) < 0 {
		return nil, fmt.Errorf("%w: lesson %d not in course %d", store.ErrNotFound, lessonID, courseID)
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	lesson, err := h.store.GetLesson(lessonID)
	if err != nil {
		return nil, err
	}

	lesson.Name = in.Name
	lesson.Description = in.Description
	lesson.Content = in.Content
	lesson.EstimatedDuration = in.EstimatedDuration
	lesson.Level = in.Level
	lesson.ProgrammingLanguage = in.ProgrammingLanguage

	if err := h.store.SaveLesson(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

// DeleteLesson removes exactly one occurrence of the lesson id from the
// course's sequence, persists the course, then deletes the lesson row. A
// repeated delete finds neither the occurrence nor the row and is a no-op.
// Exercises under the lesson are NOT cascade-deleted:
// they may carry user solutions, so they are left as detectable orphans for
// the reconciler instead of being purged.
func (h *Hierarchy) DeleteLesson(courseID, lessonID uint) error {
	course, err := h.store.GetCourse(courseID)
	if err != nil {
		return err
	}
	i := indexOf(course.Lessons, lessonID)
	if i < 0 {
		// A lesson that is gone from both the sequence and the store was
		// already deleted: a repeated delete is a no-op, not an error. A
		// lesson that still exists but is not linked to this course is not
		// found from this course's view.
		if _, err := h.store.GetLesson(lessonID); errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("%w: lesson %d not in course %d", store.ErrNotFound, lessonID, courseID)
	}

	course.Lessons = datatypes.NewJSONSlice(removeAt(course.Lessons, i))
	if err := h.store.SaveCourse(course); err != nil {
		return err
	}

	if err := h.store.DeleteLesson(lessonID); err != nil {
		log.Printf("lesson %d unlinked from course %d but not deleted: %v", lessonID, courseID, err)
		return fmt.Errorf("%w: lesson %d is unlinked but still resident",
			store.ErrPartialFailure, lessonID)
	}
	return nil
}

// --- Exercises ---

// CreateExercise mirrors CreateLesson one level down.
func (h *Hierarchy) CreateExercise(lessonID uint, in ExerciseInput) (*models.Exercise, error) {
	lesson, err := h.store.GetLesson(lessonID)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	exercise := &models.Exercise{
		Name:                in.Name,
		Description:         in.Description,
		Content:             in.Content,
		Level:               in.Level,
		ProgrammingLanguage: in.ProgrammingLanguage,
		LessonID:            lesson.ID,
	}
	if err := h.store.CreateExercise(exercise); err != nil {
		return nil, err
	}

	lesson.Exercises = append(lesson.Exercises, exercise.ID)
	if err := h.store.SaveLesson(lesson); err != nil {
		log.Printf("exercise %d created but not linked to lesson %d: %v", exercise.ID, lesson.ID, err)
		return nil, fmt.Errorf("%w: exercise %d is unlinked under lesson %d",
			store.ErrPartialFailure, exercise.ID, lesson.ID)
	}
	return exercise, nil
}

func (h *Hierarchy) EditExercise(lessonID, exerciseID uint, in ExerciseInput) (*models.Exercise, error) {
	lesson, err := h.store.GetLesson(lessonID)
	if err != nil {
		return nil, err
	}
	if indexOf(lesson.Exercises, exerciseID) < 0 {
		return nil, fmt.Errorf("%w: exercise %d not in lesson %d", store.ErrNotFound, exerciseID, lessonID)
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	exercise, err := h.store.GetExercise(exerciseID)
	if err != nil {
		return nil, err
	}

	exercise.Name = in.Name
	exercise.Description = in.Description
	exercise.Content = in.Content
	exercise.Level = in.Level
	exercise.ProgrammingLanguage = in.ProgrammingLanguage

	if err := h.store.SaveExercise(exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (h *Hierarchy) DeleteExercise(lessonID, exerciseID uint) error {
	lesson, err := h.store.GetLesson(lessonID)
	if err != nil {
		return err
	}
	i := indexOf(lesson.Exercises, exerciseID)
	if i < 0 {
		if _, err := h.store.GetExercise(exerciseID); errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("%w: exercise %d not in lesson %d", store.ErrNotFound, exerciseID, lessonID)
	}

	lesson.Exercises = datatypes.NewJSONSlice(removeAt(lesson.Exercises, i))
	if err := h.store.SaveLesson(lesson); err != nil {
		return err
	}

	if err := h.store.DeleteExercise(exerciseID); err != nil {
		log.Printf("exercise %d unlinked from lesson %d but not deleted: %v", exerciseID, lessonID, err)
		return fmt.Errorf("%w: exercise %d is unlinked but still resident",
			store.ErrPartialFailure, exerciseID)
	}
	return nil
}

// --- Solutions ---

// CreateSolution attaches a solution to an existing exercise. The reference
// is one-way; no sequence on the exercise is updated.
func (h *Hierarchy) CreateSolution(exerciseID uint, in SolutionInput) (*models.Solution, error) {
	exercise, err := h.store.GetExercise(exerciseID)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	solution := &models.Solution{
		Name:        in.Name,
		Description: in.Description,
		Content:     in.Content,
		ExerciseID:  exercise.ID,
	}
	if err := h.store.CreateSolution(solution); err != nil {
		return nil, err
	}
	return solution, nil
}
