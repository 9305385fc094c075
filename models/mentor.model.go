package models

import "gorm.io/gorm"

type Mentor struct {
	gorm.Model
	Name  string `json:"name" gorm:"not null"`
	Email string `json:"email" gorm:"default:''"`
}
