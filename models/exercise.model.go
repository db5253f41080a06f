package models

import "gorm.io/gorm"

// Exercise is a leaf of the hierarchy; symmetry with the lesson's Exercises
// list is not enforced for reads, only maintained on the write path.
type Exercise struct {
	gorm.Model
	Name                string `json:"name"`
	Description         string `json:"description"`
	Content             string `json:"content"`
	Level               string `json:"level"`
	ProgrammingLanguage string `json:"programmingLanguage"`
	Completed           bool   `json:"completed" gorm:"default:false"`
	LessonID            uint   `json:"lesson" gorm:"index"`
}
