package models

import "time"

type Assignment struct {
	BaseModel

	CoworkerID    uint      `gorm:"not null;index"`
	TaskItemID    uint      `gorm:"not null;index"`
	HoursAssigned float64   `gorm:"not null"`
	AssignedDate  time.Time `gorm:"not null"`
	Note          string    `gorm:"not null"`
	AssignedBy    string    `gorm:"not null;default:''"`

	// Relationships
	Coworker *Coworker `gorm:"foreignKey:CoworkerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	TaskItem *Task     `gorm:"foreignKey:TaskItemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
