package types

import "time"

type CoworkerRequest struct {
	Name     string  `json:"name" binding:"required"`
	Capacity float64 `json:"capacity"`
	IsActive *bool   `json:"isActive,omitempty"` // Only honoured on create
}

type ProjectRequest struct {
	Name string `json:"name" binding:"required"`
}

type TaskRequest struct {
	Name           string     `json:"name" binding:"required"`
	ProjectID      uint       `json:"projectId" binding:"required"`
	Priority       *string    `json:"priority,omitempty"`
	Status         *string    `json:"status,omitempty"`
	EstimatedHours float64    `json:"estimatedHours"`
	WeeklyEffort   float64    `json:"weeklyEffort"`
	Added          *time.Time `json:"added,omitempty"`
	Completed      *time.Time `json:"completed,omitempty"`
	Note           string     `json:"note"`
}

type AssignmentRequest struct {
	CoworkerID    uint       `json:"coworkerId" binding:"required"`
	TaskItemID    uint       `json:"taskItemId" binding:"required"`
	HoursAssigned float64    `json:"hoursAssigned"`
	AssignedDate  *time.Time `json:"assignedDate,omitempty"`
	Note          string     `json:"note"`
	AssignedBy    string     `json:"assignedBy"`
}
