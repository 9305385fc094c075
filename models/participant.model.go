package models

import "gorm.io/gorm"

type Participant struct {
	gorm.Model
	Name  string `json:"name" gorm:"not null"`
	Email string `json:"email" gorm:"default:''"`
	Phone string `json:"phone" gorm:"default:''"`
}
