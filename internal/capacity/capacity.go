// Package capacity derives utilization and rollup figures from already loaded
// coworkers, tasks and assignments. Nothing here performs I/O.
//
// The figures are advisory. Over-commitment (assigned hours above a coworker's
// capacity or a task's estimate) is reported, never rejected.
package capacity

import (
	"math"

	"github.com/capsyncer/capsyncer/internal/types"
)

// Utilization levels used by displays to colour percentages.
const (
	LevelOK   = "ok"
	LevelHigh = "high"
	LevelOver = "over"
)

type Utilization struct {
	CoworkerID    uint    `json:"coworkerId"`
	Name          string  `json:"name,omitempty"`
	Capacity      float64 `json:"capacity"`
	AssignedHours float64 `json:"assignedHours"`
	Available     float64 `json:"available"`
	Percentage    float64 `json:"percentage"`
	Level         string  `json:"level"`
}

type TaskSummary struct {
	TaskID         uint    `json:"taskId"`
	EstimatedHours float64 `json:"estimatedHours"`
	TotalAssigned  float64 `json:"totalAssigned"`
	Remaining      float64 `json:"remaining"`
	Progress       float64 `json:"progress"`
	OverAllocated  float64 `json:"overAllocated"`
	Assignments    int     `json:"assignments"`
}

type ProjectSummary struct {
	ProjectID           uint           `json:"projectId"`
	Name                string         `json:"name,omitempty"`
	TotalTasks          int            `json:"totalTasks"`
	TasksByStatus       map[string]int `json:"tasksByStatus"`
	CompletedTasks      int            `json:"completedTasks"`
	TotalEstimatedHours float64        `json:"totalEstimatedHours"`
	TotalAssignedHours  float64        `json:"totalAssignedHours"`
	Completion          float64        `json:"completion"`
}

type TeamSummary struct {
	Coworkers     []Utilization `json:"coworkers"`
	TotalCapacity float64       `json:"totalCapacity"`
	TotalAssigned float64       `json:"totalAssigned"`
	Available     float64       `json:"available"`
	Percentage    float64       `json:"percentage"`
	Level         string        `json:"level"`
}

// percent returns part/whole*100, or 0 when whole is not positive or the
// quotient is not finite (tiny subnormal capacities).
func percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	pct := part / whole * 100
	if math.IsInf(pct, 0) || math.IsNaN(pct) {
		return 0
	}
	return pct
}

// finite clamps an overflowed sum to the largest float and maps NaN to 0, so
// every figure stays encodable as JSON.
func finite(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	default:
		return v
	}
}

// Level classifies a utilization percentage.
func Level(percentage float64) string {
	switch {
	case percentage > 100:
		return LevelOver
	case percentage > 80:
		return LevelHigh
	default:
		return LevelOK
	}
}

// AssignedHours sums the hours of every assignment belonging to the coworker.
func AssignedHours(coworkerID uint, assignments []types.AssignmentResponse) float64 {
	var sum float64
	for _, a := range assignments {
		if a.CoworkerID == coworkerID {
			sum += a.HoursAssigned
		}
	}
	return finite(sum)
}

// CoworkerUtilization computes assigned and available hours for one coworker.
// Available is not clamped and goes negative when the coworker is over-booked.
func CoworkerUtilization(coworkerID uint, capacity float64, assignments []types.AssignmentResponse) Utilization {
	assigned := AssignedHours(coworkerID, assignments)
	pct := percent(assigned, capacity)
	return Utilization{
		CoworkerID:    coworkerID,
		Capacity:      capacity,
		AssignedHours: assigned,
		Available:     finite(capacity - assigned),
		Percentage:    pct,
		Level:         Level(pct),
	}
}

// TaskRollup computes how much of a task's estimate is covered by assignments.
// Remaining is floored at zero, unlike a coworker's available hours; the raw
// excess is kept in OverAllocated.
func TaskRollup(taskID uint, estimatedHours float64, assignments []types.AssignmentResponse) TaskSummary {
	summary := TaskSummary{TaskID: taskID, EstimatedHours: estimatedHours}
	for _, a := range assignments {
		if a.TaskItemID == taskID {
			summary.TotalAssigned += a.HoursAssigned
			summary.Assignments++
		}
	}
	summary.TotalAssigned = finite(summary.TotalAssigned)
	summary.Remaining = finite(max(0, estimatedHours-summary.TotalAssigned))
	summary.OverAllocated = finite(max(0, summary.TotalAssigned-estimatedHours))
	summary.Progress = percent(summary.TotalAssigned, estimatedHours)
	return summary
}

// ProjectCompletion is the share of tasks whose status is exactly
// StatusCompleted, as a percentage. Estimated hours do not weigh in.
func ProjectCompletion(tasks []types.TaskResponse) float64 {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Status == types.StatusCompleted {
			completed++
		}
	}
	return percent(float64(completed), float64(len(tasks)))
}

// ProjectRollup aggregates the tasks of one project and the assignments
// pointing at them. tasks and assignments may contain rows of other projects.
func ProjectRollup(projectID uint, tasks []types.TaskResponse, assignments []types.AssignmentResponse) ProjectSummary {
	summary := ProjectSummary{
		ProjectID:     projectID,
		TasksByStatus: make(map[string]int),
	}

	var own []types.TaskResponse
	taskIDs := make(map[uint]struct{})
	for _, t := range tasks {
		if t.ProjectID != projectID {
			continue
		}
		own = append(own, t)
		taskIDs[t.ID] = struct{}{}
		summary.TasksByStatus[t.Status]++
		summary.TotalEstimatedHours += t.EstimatedHours
	}
	summary.TotalTasks = len(own)
	summary.TotalEstimatedHours = finite(summary.TotalEstimatedHours)
	summary.CompletedTasks = summary.TasksByStatus[types.StatusCompleted]

	for _, a := range assignments {
		if _, ok := taskIDs[a.TaskItemID]; ok {
			summary.TotalAssignedHours += a.HoursAssigned
		}
	}
	summary.TotalAssignedHours = finite(summary.TotalAssignedHours)

	summary.Completion = ProjectCompletion(own)
	return summary
}

// Team computes utilization for every coworker plus team-wide totals.
func Team(coworkers []types.CoworkerResponse, assignments []types.AssignmentResponse) TeamSummary {
	team := TeamSummary{Coworkers: make([]Utilization, 0, len(coworkers))}
	for _, c := range coworkers {
		u := CoworkerUtilization(c.ID, c.Capacity, assignments)
		u.Name = c.Name
		team.Coworkers = append(team.Coworkers, u)
		team.TotalCapacity += c.Capacity
		team.TotalAssigned += u.AssignedHours
	}
	team.TotalCapacity = finite(team.TotalCapacity)
	team.TotalAssigned = finite(team.TotalAssigned)
	team.Available = finite(team.TotalCapacity - team.TotalAssigned)
	team.Percentage = percent(team.TotalAssigned, team.TotalCapacity)
	team.Level = Level(team.Percentage)
	return team
}

// Projects rolls up every project.
func Projects(projects []types.ProjectResponse, tasks []types.TaskResponse, assignments []types.AssignmentResponse) []ProjectSummary {
	summaries := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		s := ProjectRollup(p.ID, tasks, assignments)
		s.Name = p.Name
		summaries = append(summaries, s)
	}
	return summaries
}
