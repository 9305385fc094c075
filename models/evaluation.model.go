package models

import "gorm.io/gorm"

type Evaluation struct {
	gorm.Model
	Rank          int          `json:"rank"`
	ParticipantID *uint        `json:"participant_id" gorm:"index"`
	ModuleID      *uint        `json:"module_id" gorm:"index"`
	Class         string       `json:"class" gorm:"default:''"`
	Points        int          `json:"points"`
	Participant   *Participant `json:"participant,omitempty" gorm:"foreignKey:ParticipantID"`
	Module        *Module      `json:"module,omitempty" gorm:"foreignKey:ModuleID"`
}
