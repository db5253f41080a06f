package services

import "codecamp/store"

// SearchCourses matches a case-insensitive substring of course names and
// returns {id, name} refs only. No results is a valid outcome, not an error.
func SearchCourses(s *store.Store, nameFragment string) ([]store.CourseRef, error) {
	return s.SearchCourses(nameFragment)
}
