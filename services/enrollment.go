package services

import (
	"errors"
	"fmt"

	"codecamp/store"
)

// ErrUserNotFound lets the HTTP layer tell a missing user apart from a
// missing course; both are NotFound underneath.
var ErrUserNotFound = fmt.Errorf("user: %w", store.ErrNotFound)

// Enrollment is the ledger for the many-to-many User/Course relation and the
// derived dashboard views.
type Enrollment struct {
	store *store.Store
}

func NewEnrollment(s *store.Store) *Enrollment {
	return &Enrollment{store: s}
}

// Enrol appends the course id to the user's enrollment sequence. The append
// deliberately does not deduplicate: re-enrolling keeps every entry and the
// read paths treat a duplicate id as already-enrolled. De-duplicating here
// would be a silent behavior change for clients that rely on the entries.
func (e *Enrollment) Enrol(userID, courseID uint) error {
	course, err := e.store.GetCourse(courseID)
	if err != nil {
		return err
	}
	user, err := e.store.GetUser(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	user.Courses = append(user.Courses, course.ID)
	return e.store.SaveUser(user)
}

// Courses returns every enrolled course, populated, in enrollment order.
// Ids that no longer resolve are skipped; duplicates stay duplicated.
func (e *Enrollment) Courses(userID uint) ([]CourseView, error) {
	user, err := e.store.GetUser(userID)
	if err != nil {
		return nil, err
	}
	courses, err := e.store.CoursesByIDs(user.Courses)
	if err != nil {
		return nil, err
	}
	views := make([]CourseView, 0, len(courses))
	for _, course := range courses {
		views = append(views, projectCourse(course))
	}
	return views, nil
}

// Dashboard returns the user's first enrolled course, or nil when the user
// has no enrollments. A missing user is NotFound; a user with zero courses is
// a success with an empty payload. The two outcomes are distinct on purpose.
func (e *Enrollment) Dashboard(userID uint) (*CourseView, error) {
	views, err := e.Courses(userID)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}
	return &views[0], nil
}

// Learning returns all enrolled courses, populated.
func (e *Enrollment) Learning(userID uint) ([]CourseView, error) {
	return e.Courses(userID)
}
