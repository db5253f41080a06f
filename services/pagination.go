package services

import (
	"strconv"

	"codecamp/models"
	"codecamp/store"
)

// Window is a bounded view over a parent's child sequence.
type Window struct {
	Limit  int
	Offset int
}

// ParseWindow parses caller-supplied limit/offset values. Anything that fails
// to parse as a non-negative integer falls back to limit=1, offset=0. The
// one-child default looks odd but existing clients depend on it, so it is
// reproduced exactly.
func ParseWindow(limit, offset string) Window {
	w := Window{Limit: 1, Offset: 0}
	if n, err := strconv.Atoi(limit); err == nil && n >= 0 {
		w.Limit = n
	}
	if n, err := strconv.Atoi(offset); err == nil && n >= 0 {
		w.Offset = n
	}
	// totalPages is undefined for limit 0, guard it
	if w.Limit == 0 {
		w.Limit = 1
	}
	return w
}

// TotalPages is ceil(total / limit) for the window's limit.
func (w Window) TotalPages(total int) int {
	return (total + w.Limit - 1) / w.Limit
}

// slice applies the window to an id sequence in its stored order. An offset
// past the end yields an empty window, not an error.
func (w Window) slice(ids []uint) []uint {
	if w.Offset >= len(ids) {
		return []uint{}
	}
	end := w.Offset + w.Limit
	if end > len(ids) {
		end = len(ids)
	}
	return ids[w.Offset:end]
}

// LessonView is the allow-listed lesson projection served to clients.
// Timestamps and other internal columns never leave the store.
type LessonView struct {
	ID                  uint   `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	Content             string `json:"content"`
	EstimatedDuration   string `json:"estimatedDuration"`
	Level               string `json:"level"`
	ProgrammingLanguage string `json:"programmingLanguage"`
	Exercises           []uint `json:"exercises"`
	Course              uint   `json:"course"`
}

func projectLesson(l models.Lesson) LessonView {
	return LessonView{
		ID:                  l.ID,
		Name:                l.Name,
		Description:         l.Description,
		Content:             l.Content,
		EstimatedDuration:   l.EstimatedDuration,
		Level:               l.Level,
		ProgrammingLanguage: l.ProgrammingLanguage,
		Exercises:           l.Exercises,
		Course:              l.CourseID,
	}
}

// ExerciseView is the allow-listed exercise projection.
type ExerciseView struct {
	ID                  uint   `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	Content             string `json:"content"`
	Level               string `json:"level"`
	ProgrammingLanguage string `json:"programmingLanguage"`
	Completed           bool   `json:"completed"`
	Lesson              uint   `json:"lesson"`
}

func projectExercise(e models.Exercise) ExerciseView {
	return ExerciseView{
		ID:                  e.ID,
		Name:                e.Name,
		Description:         e.Description,
		Content:             e.Content,
		Level:               e.Level,
		ProgrammingLanguage: e.ProgrammingLanguage,
		Completed:           e.Completed,
		Lesson:              e.LessonID,
	}
}

// SolutionView is the allow-listed solution projection.
type SolutionView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Exercise    uint   `json:"exercise"`
}

func projectSolution(s models.Solution) SolutionView {
	return SolutionView{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Content:     s.Content,
		Exercise:    s.ExerciseID,
	}
}

// CourseView is the allow-listed course projection with lesson ids only.
type CourseView struct {
	ID                  uint   `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	EstimatedDuration   string `json:"estimatedDuration"`
	Level               string `json:"level"`
	ProgrammingLanguage string `json:"programmingLanguage"`
	Lessons             []uint `json:"lessons"`
}

func projectCourse(c models.Course) CourseView {
	return CourseView{
		ID:                  c.ID,
		Name:                c.Name,
		Description:         c.Description,
		EstimatedDuration:   c.EstimatedDuration,
		Level:               c.Level,
		ProgrammingLanguage: c.ProgrammingLanguage,
		Lessons:             c.Lessons,
	}
}

// PopulatedCourse is a course with its lesson sequence resolved to documents.
type PopulatedCourse struct {
	ID                  uint         `json:"id"`
	Name                string       `json:"name"`
	Description         string       `json:"description"`
	EstimatedDuration   string       `json:"estimatedDuration"`
	Level               string       `json:"level"`
	ProgrammingLanguage string       `json:"programmingLanguage"`
	Lessons             []LessonView `json:"lessons"`
}

// Paginator computes bounded, projected windows over a parent's children.
// It never partially populates: a missing parent is NotFound, not an empty
// window.
type Paginator struct {
	store *store.Store
}

func NewPaginator(s *store.Store) *Paginator {
	return &Paginator{store: s}
}

// PopulateCourse resolves a course's full lesson sequence into documents.
// Lesson ids that no longer resolve are dropped from the view.
func (p *Paginator) PopulateCourse(courseID uint) (*PopulatedCourse, error) {
	course, err := p.store.GetCourse(courseID)
	if err != nil {
		return nil, err
	}
	lessons, err := p.store.LessonsByIDs(course.Lessons)
	if err != nil {
		return nil, err
	}
	views := make([]LessonView, 0, len(lessons))
	for _, lesson := range lessons {
		views = append(views, projectLesson(lesson))
	}
	return &PopulatedCourse{
		ID:                  course.ID,
		Name:                course.Name,
		Description:         course.Description,
		EstimatedDuration:   course.EstimatedDuration,
		Level:               course.Level,
		ProgrammingLanguage: course.ProgrammingLanguage,
		Lessons:             views,
	}, nil
}

// ListCourses returns every course with the lesson window applied to each
// course's sequence. totalPages is computed over the course count, while the
// window bounds the populated lessons; lopsided, but that is the contract
// existing clients were built against.
func (p *Paginator) ListCourses(w Window) ([]PopulatedCourse, int, error) {
	courses, err := p.store.ListCourses()
	if err != nil {
		return nil, 0, err
	}

	totalPages := w.TotalPages(len(courses))

	out := make([]PopulatedCourse, 0, len(courses))
	for _, course := range courses {
		lessons, err := p.store.LessonsByIDs(w.slice(course.Lessons))
		if err != nil {
			return nil, 0, err
		}
		views := make([]LessonView, 0, len(lessons))
		for _, lesson := range lessons {
			views = append(views, projectLesson(lesson))
		}
		out = append(out, PopulatedCourse{
			ID:                  course.ID,
			Name:                course.Name,
			Description:         course.Description,
			EstimatedDuration:   course.EstimatedDuration,
			Level:               course.Level,
			ProgrammingLanguage: course.ProgrammingLanguage,
			Lessons:             views,
		})
	}
	return out, totalPages, nil
}

// CourseLessons returns the course's lesson window in insertion order plus
// the page count over the full (unwindowed) sequence.
func (p *Paginator) CourseLessons(courseID uint, w Window) ([]LessonView, int, error) {
	course, err := p.store.GetCourse(courseID)
	if err != nil {
		return nil, 0, err
	}

	totalPages := w.TotalPages(len(course.Lessons))

	lessons, err := p.store.LessonsByIDs(w.slice(course.Lessons))
	if err != nil {
		return nil, 0, err
	}
	views := make([]LessonView, 0, len(lessons))
	for _, lesson := range lessons {
		views = append(views, projectLesson(lesson))
	}
	return views, totalPages, nil
}

// ExerciseSolutions returns every solution submitted for the exercise. The
// list is unwindowed; an exercise rarely holds more than a handful.
func (p *Paginator) ExerciseSolutions(exerciseID uint) ([]SolutionView, error) {
	if _, err := p.store.GetExercise(exerciseID); err != nil {
		return nil, err
	}
	solutions, err := p.store.SolutionsByExercise(exerciseID)
	if err != nil {
		return nil, err
	}
	views := make([]SolutionView, 0, len(solutions))
	for _, solution := range solutions {
		views = append(views, projectSolution(solution))
	}
	return views, nil
}

// LessonExercises returns the lesson's exercise window in insertion order.
func (p *Paginator) LessonExercises(lessonID uint, w Window) ([]ExerciseView, int, error) {
	lesson, err := p.store.GetLesson(lessonID)
	if err != nil {
		return nil, 0, err
	}

	totalPages := w.TotalPages(len(lesson.Exercises))

	exercises, err := p.store.ExercisesByIDs(w.slice(lesson.Exercises))
	if err != nil {
		return nil, 0, err
	}
	views := make([]ExerciseView, 0, len(exercises))
	for _, exercise := range exercises {
		views = append(views, projectExercise(exercise))
	}
	return views, totalPages, nil
}
