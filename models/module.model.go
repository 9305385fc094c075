package models

import (
	"time"

	"gorm.io/gorm"
)

type Module struct {
	gorm.Model
	Title       string          `json:"title" gorm:"not null"`
	Description string          `json:"description" gorm:"type:text"`
	ClassModule string          `json:"class_module" gorm:"not null"`
	Date        time.Time       `json:"date" gorm:"not null"`
	MentorID    *uint           `json:"mentor_id" gorm:"index"`
	Mentor      *Mentor         `json:"mentor,omitempty" gorm:"foreignKey:MentorID"`
	Contents    []ModuleContent `json:"contents" gorm:"foreignKey:ModuleID"`
}

type ModuleContent struct {
	gorm.Model
	ModuleID uint   `json:"module_id" gorm:"index;not null"`
	Title    string `json:"title" gorm:"not null"`
	Content  string `json:"content" gorm:"type:text;not null"`
}
