package models

import "gorm.io/gorm"

// Solution references its Exercise one-way; no reverse list is kept.
type Solution struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Content     string `json:"content"`
	ExerciseID  uint   `json:"exercise" gorm:"index"`
}
