package models

import "time"

// BaseModel carries the columns shared by every table. It has no
// DeletedAt so that gorm performs hard deletes.
type BaseModel struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
