package models

type Coworker struct {
	BaseModel

	Name     string  `gorm:"not null"`
	Capacity float64 `gorm:"not null"` // Hours per week
	IsActive *bool   `gorm:"not null;default:true"`
}
