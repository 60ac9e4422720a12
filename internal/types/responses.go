package types

import "time"

type CoworkerResponse struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Capacity float64 `json:"capacity"`
	IsActive bool    `json:"isActive"`
}

type ProjectResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type TaskResponse struct {
	ID             uint       `json:"id"`
	ProjectID      uint       `json:"projectId"`
	Name           string     `json:"name"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	EstimatedHours float64    `json:"estimatedHours"`
	WeeklyEffort   float64    `json:"weeklyEffort"`
	Added          time.Time  `json:"added"`
	Completed      *time.Time `json:"completed,omitempty"`
	Note           string     `json:"note"`
}

// AssignmentResponse carries the embedded coworker and task only on reads.
type AssignmentResponse struct {
	ID            uint              `json:"id"`
	CoworkerID    uint              `json:"coworkerId"`
	TaskItemID    uint              `json:"taskItemId"`
	HoursAssigned float64           `json:"hoursAssigned"`
	AssignedDate  time.Time         `json:"assignedDate"`
	Note          string            `json:"note"`
	AssignedBy    string            `json:"assignedBy"`
	Coworker      *CoworkerResponse `json:"coworker,omitempty"`
	TaskItem      *TaskResponse     `json:"taskItem,omitempty"`
}

type StatusResponse struct {
	Status string    `json:"status"`
	Now    time.Time `json:"now"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MeResponse struct {
	Viewer      Viewer      `json:"viewer"`
	Permissions Permissions `json:"permissions"`
}
