package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lesson belongs to a Course and owns the ordering of its exercises.
// CourseID is a back-reference only; the forward list lives on the Course row.
type Lesson struct {
	gorm.Model
	Name                string                    `json:"name"`
	Description         string                    `json:"description"`
	Content             string                    `json:"content"`
	EstimatedDuration   string                    `json:"estimatedDuration"`
	Level               string                    `json:"level"`
	ProgrammingLanguage string                    `json:"programmingLanguage"`
	Exercises           datatypes.JSONSlice[uint] `json:"exercises"`
	CourseID            uint                      `json:"course" gorm:"index"`
}
