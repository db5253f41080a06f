package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codecamp/models"
	"codecamp/store"
)

func seedUser(t *testing.T, s *store.Store) *models.User {
	t.Helper()
	user := &models.User{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "hashed",
	}
	require.NoError(t, s.CreateUser(user))
	return user
}

func TestEnrolMissingCourse(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)

	err := NewEnrollment(s).Enrol(user.ID, 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestEnrolMissingUser(t *testing.T) {
	s := newTestStore(t)
	course, err := NewHierarchy(s).CreateCourse(validCourse())
	require.NoError(t, err)

	err = NewEnrollment(s).Enrol(42, course.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestEnrolAppendsCourse(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)
	course, err := NewHierarchy(s).CreateCourse(validCourse())
	require.NoError(t, err)

	e := NewEnrollment(s)
	require.NoError(t, e.Enrol(user.ID, course.ID))

	courses, err := e.Courses(user.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, course.ID, courses[0].ID)
	assert.Equal(t, course.Name, courses[0].Name)
}

func TestEnrolDoesNotDeduplicate(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)
	course, err := NewHierarchy(s).CreateCourse(validCourse())
	require.NoError(t, err)

	e := NewEnrollment(s)
	require.NoError(t, e.Enrol(user.ID, course.ID))
	require.NoError(t, e.Enrol(user.ID, course.ID))

	// the double entry is kept; reads treat it as already-enrolled
	courses, err := e.Courses(user.ID)
	require.NoError(t, err)
	assert.Len(t, courses, 2)

	first, err := e.Dashboard(user.ID)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, course.ID, first.ID)
}

func TestDashboardEmptyForUserWithoutCourses(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s)

	course, err := NewEnrollment(s).Dashboard(user.ID)
	require.NoError(t, err)
	assert.Nil(t, course)
}

func TestDashboardMissingUserIsNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := NewEnrollment(s).Dashboard(7)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLearningReturnsAllEnrolled(t *testing.T) {
	s := newTestStore(t)
	h := NewHierarchy(s)
	user := seedUser(t, s)

	e := NewEnrollment(s)
	var ids []uint
	for _, name := range []string{"intro-js", "intro-go"} {
		in := validCourse()
		in.Name = name
		course, err := h.CreateCourse(in)
		require.NoError(t, err)
		require.NoError(t, e.Enrol(user.ID, course.ID))
		ids = append(ids, course.ID)
	}

	courses, err := e.Learning(user.ID)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, ids[0], courses[0].ID)
	assert.Equal(t, ids[1], courses[1].ID)
}

func TestCoursesSkipsDanglingEnrollments(t *testing.T) {
	s := newTestStore(t)
	h := NewHierarchy(s)
	user := seedUser(t, s)

	course, err := h.CreateCourse(validCourse())
	require.NoError(t, err)

	e := NewEnrollment(s)
	require.NoError(t, e.Enrol(user.ID, course.ID))
	require.NoError(t, h.DeleteCourse(course.ID))

	courses, err := e.Courses(user.ID)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestSearchCourses(t *testing.T) {
	s := newTestStore(t)
	h := NewHierarchy(s)
	for _, name := range []string{"intro-js", "Advanced JS", "intro-go"} {
		in := validCourse()
		in.Name = name
		_, err := h.CreateCourse(in)
		require.NoError(t, err)
	}

	refs, err := SearchCourses(s, "js")
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "intro-js", refs[0].Name)
	assert.Equal(t, "Advanced JS", refs[1].Name)

	refs, err = SearchCourses(s, "python")
	require.NoError(t, err)
	assert.Empty(t, refs)
}
