package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"codecamp/database"
	"codecamp/store"
)

// The hierarchy has no cross-row transactions, so a crash between the two
// halves of an edge update can leave unlinked lessons, and deleting a lesson
// never purges its exercises. Both states are legal but must stay detectable.
// The reconciler sweeps for them on a schedule and reports; it does not
// repair, since orphaned exercises may carry user solutions.

func logReconciler(message string) {
	log.Printf("[RECONCILER %s] %s", time.Now().Format(time.RFC3339), message)
}

// ScanForOrphans reports every detectable inconsistency in the content graph:
// lessons whose course is gone or no longer lists them, and exercises whose
// lesson is gone. Returns the number of findings.
func ScanForOrphans(s *store.Store) int {
	findings := 0

	lessons, err := s.ListLessons()
	if err != nil {
		logReconciler("Error listing lessons: " + err.Error())
		return findings
	}

	courseLinks := make(map[uint]map[uint]bool)
	courses, err := s.ListCourses()
	if err != nil {
		logReconciler("Error listing courses: " + err.Error())
		return findings
	}
	for _, course := range courses {
		links := make(map[uint]bool, len(course.Lessons))
		for _, id := range course.Lessons {
			links[id] = true
		}
		courseLinks[course.ID] = links
	}

	lessonAlive := make(map[uint]bool, len(lessons))
	for _, lesson := range lessons {
		lessonAlive[lesson.ID] = true
		links, courseExists := courseLinks[lesson.CourseID]
		switch {
		case !courseExists:
			logReconciler(fmt.Sprintf("lesson %d orphaned: course %d missing", lesson.ID, lesson.CourseID))
			findings++
		case !links[lesson.ID]:
			logReconciler(fmt.Sprintf("lesson %d orphaned: course %d does not list it", lesson.ID, lesson.CourseID))
			findings++
		}
	}

	exercises, err := s.ListExercises()
	if err != nil {
		logReconciler("Error listing exercises: " + err.Error())
		return findings
	}
	for _, exercise := range exercises {
		if !lessonAlive[exercise.LessonID] {
			logReconciler(fmt.Sprintf("exercise %d orphaned: lesson %d missing", exercise.ID, exercise.LessonID))
			findings++
		}
	}

	if findings == 0 {
		logReconciler("No inconsistencies found")
	}
	return findings
}

// InitializeReconciler starts the hourly orphan sweep.
func InitializeReconciler() *cron.Cron {
	logReconciler("Initializing reconciler...")

	c := cron.New()
	c.AddFunc("@hourly", func() {
		ScanForOrphans(store.New(database.Database.Db))
	})
	c.Start()

	logReconciler("Reconciler initialized successfully")
	return c
}
