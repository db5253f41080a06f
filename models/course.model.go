package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course levels. Stored as plain strings; validators reject anything else.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelExpert       = "Expert"
)

// Course is the root of the content hierarchy. It owns the ordering of its
// lessons: the Lessons column is the single source of truth for which lessons
// belong to the course and in what sequence. There is deliberately no database
// foreign key here; the hierarchy service maintains both sides of the edge.
type Course struct {
	gorm.Model
	Name                string                    `json:"name" gorm:"unique;not null"`
	Description         string                    `json:"description"`
	ProgrammingLanguage string                    `json:"programmingLanguage"`
	EstimatedDuration   string                    `json:"estimatedDuration"`
	Level               string                    `json:"level"`
	Lessons             datatypes.JSONSlice[uint] `json:"lessons"`
}
