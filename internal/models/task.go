package models

import "time"

type Task struct {
	BaseModel

	ProjectID      uint      `gorm:"not null;index"`
	Name           string    `gorm:"not null"`
	Priority       string    `gorm:"not null"`
	Status         string    `gorm:"not null"`
	EstimatedHours float64   `gorm:"not null"`
	WeeklyEffort   float64   `gorm:"not null"`
	Added          time.Time `gorm:"not null"`
	Completed      *time.Time
	Note           string `gorm:"not null"`

	// Relationships
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
