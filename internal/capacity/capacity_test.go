package capacity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/capsyncer/capsyncer/internal/types"
)

func assignment(coworkerID, taskID uint, hours float64) types.AssignmentResponse {
	return types.AssignmentResponse{CoworkerID: coworkerID, TaskItemID: taskID, HoursAssigned: hours}
}

func TestCoworkerUtilization(t *testing.T) {
	assignments := []types.AssignmentResponse{
		assignment(1, 10, 10),
		assignment(1, 11, 15),
		assignment(2, 10, 8),
		assignment(1, 12, 5),
	}

	u := CoworkerUtilization(1, 40, assignments)

	assert.Equal(t, uint(1), u.CoworkerID)
	assert.Equal(t, 30.0, u.AssignedHours)
	assert.Equal(t, 10.0, u.Available)
	assert.Equal(t, 75.0, u.Percentage)
	assert.Equal(t, LevelOK, u.Level)
}

func TestCoworkerUtilization_AvailableIsNotClamped(t *testing.T) {
	assignments := []types.AssignmentResponse{
		assignment(1, 10, 30),
		assignment(1, 11, 20),
	}

	u := CoworkerUtilization(1, 40, assignments)

	assert.Equal(t, 50.0, u.AssignedHours)
	assert.Equal(t, -10.0, u.Available)
	assert.Equal(t, 125.0, u.Percentage)
	assert.Equal(t, LevelOver, u.Level)
}

func TestCoworkerUtilization_NegativeHoursAreSummedAsIs(t *testing.T) {
	u := CoworkerUtilization(1, 10, []types.AssignmentResponse{
		assignment(1, 10, 6),
		assignment(1, 11, -2),
	})

	assert.Equal(t, 4.0, u.AssignedHours)
	assert.Equal(t, 6.0, u.Available)
	assert.Equal(t, 40.0, u.Percentage)
}

func TestCoworkerUtilization_ZeroCapacity(t *testing.T) {
	u := CoworkerUtilization(1, 0, []types.AssignmentResponse{assignment(1, 10, 5)})

	assert.Equal(t, 5.0, u.AssignedHours)
	assert.Equal(t, -5.0, u.Available)
	assert.Equal(t, 0.0, u.Percentage)
	assert.False(t, math.IsNaN(u.Percentage))
	assert.False(t, math.IsInf(u.Percentage, 0))
}

func TestCoworkerUtilization_SubnormalCapacity(t *testing.T) {
	u := CoworkerUtilization(1, 1e-320, []types.AssignmentResponse{assignment(1, 10, 5)})

	assert.Equal(t, 0.0, u.Percentage)
	assert.Equal(t, LevelOK, u.Level)
	assert.InDelta(t, -5.0, u.Available, 1e-9)
}

func TestOverflowingHoursStayFinite(t *testing.T) {
	assignments := []types.AssignmentResponse{
		assignment(1, 10, math.MaxFloat64),
		assignment(1, 10, math.MaxFloat64),
	}

	u := CoworkerUtilization(1, 40, assignments)
	assert.Equal(t, math.MaxFloat64, u.AssignedHours)
	assert.False(t, math.IsInf(u.Available, 0))
	assert.False(t, math.IsInf(u.Percentage, 0))

	rollup := TaskRollup(10, 5, assignments)
	assert.Equal(t, math.MaxFloat64, rollup.TotalAssigned)
	assert.False(t, math.IsInf(rollup.OverAllocated, 0))
	assert.False(t, math.IsInf(rollup.Progress, 0))

	summary := ProjectRollup(1, []types.TaskResponse{{ID: 10, ProjectID: 1, EstimatedHours: math.MaxFloat64}, {ID: 11, ProjectID: 1, EstimatedHours: math.MaxFloat64}}, assignments)
	assert.Equal(t, math.MaxFloat64, summary.TotalEstimatedHours)
	assert.Equal(t, math.MaxFloat64, summary.TotalAssignedHours)

	team := Team([]types.CoworkerResponse{{ID: 1, Capacity: math.MaxFloat64}, {ID: 2, Capacity: math.MaxFloat64}}, assignments)
	assert.Equal(t, math.MaxFloat64, team.TotalCapacity)
	assert.False(t, math.IsInf(team.Available, 0))
	assert.False(t, math.IsNaN(team.Percentage))
}

func TestCoworkerUtilization_NoAssignments(t *testing.T) {
	u := CoworkerUtilization(7, 32, nil)

	assert.Equal(t, 0.0, u.AssignedHours)
	assert.Equal(t, 32.0, u.Available)
	assert.Equal(t, 0.0, u.Percentage)
}

func TestTaskRollup(t *testing.T) {
	tests := []struct {
		name      string
		estimate  float64
		hours     []float64
		assigned  float64
		remaining float64
		over      float64
		progress  float64
	}{
		{name: "partially covered", estimate: 20, hours: []float64{5, 5}, assigned: 10, remaining: 10, over: 0, progress: 50},
		{name: "exactly covered", estimate: 8, hours: []float64{8}, assigned: 8, remaining: 0, over: 0, progress: 100},
		{name: "over allocated", estimate: 10, hours: []float64{7, 8}, assigned: 15, remaining: 0, over: 5, progress: 150},
		{name: "zero estimate", estimate: 0, hours: []float64{3}, assigned: 3, remaining: 0, over: 3, progress: 0},
		{name: "no assignments", estimate: 12, hours: nil, assigned: 0, remaining: 12, over: 0, progress: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var assignments []types.AssignmentResponse
			for _, h := range tt.hours {
				assignments = append(assignments, assignment(1, 42, h))
			}
			// Noise on another task must not count.
			assignments = append(assignments, assignment(1, 43, 100))

			s := TaskRollup(42, tt.estimate, assignments)

			assert.Equal(t, tt.assigned, s.TotalAssigned)
			assert.Equal(t, tt.remaining, s.Remaining)
			assert.Equal(t, tt.over, s.OverAllocated)
			assert.Equal(t, tt.progress, s.Progress)
			assert.Equal(t, len(tt.hours), s.Assignments)
		})
	}
}

func TestProjectCompletion(t *testing.T) {
	tasks := []types.TaskResponse{
		{Status: types.StatusCompleted, EstimatedHours: 1},
		{Status: types.StatusInProgress, EstimatedHours: 50},
		{Status: "completed", EstimatedHours: 10}, // status match is exact
		{Status: types.StatusCompleted, EstimatedHours: 1},
	}

	// Count based: 2 of 4, regardless of the hours involved.
	assert.Equal(t, 50.0, ProjectCompletion(tasks))
	assert.Equal(t, 0.0, ProjectCompletion(nil))
}

func TestProjectRollup(t *testing.T) {
	tasks := []types.TaskResponse{
		{ID: 1, ProjectID: 1, Status: types.StatusCompleted, EstimatedHours: 10},
		{ID: 2, ProjectID: 1, Status: types.StatusInProgress, EstimatedHours: 20},
		{ID: 3, ProjectID: 1, Status: types.StatusInProgress, EstimatedHours: 5},
		{ID: 4, ProjectID: 2, Status: types.StatusCompleted, EstimatedHours: 99},
	}
	assignments := []types.AssignmentResponse{
		assignment(1, 1, 4),
		assignment(2, 2, 6),
		assignment(2, 4, 50),
	}

	s := ProjectRollup(1, tasks, assignments)

	assert.Equal(t, uint(1), s.ProjectID)
	assert.Equal(t, 3, s.TotalTasks)
	assert.Equal(t, 1, s.CompletedTasks)
	assert.Equal(t, map[string]int{types.StatusCompleted: 1, types.StatusInProgress: 2}, s.TasksByStatus)
	assert.Equal(t, 35.0, s.TotalEstimatedHours)
	assert.Equal(t, 10.0, s.TotalAssignedHours)
	assert.InDelta(t, 100.0/3, s.Completion, 1e-9)
}

func TestProjectRollup_Empty(t *testing.T) {
	s := ProjectRollup(9, nil, nil)

	assert.Equal(t, 0, s.TotalTasks)
	assert.Equal(t, 0.0, s.Completion)
	assert.Empty(t, s.TasksByStatus)
}

func TestLevel(t *testing.T) {
	assert.Equal(t, LevelOK, Level(0))
	assert.Equal(t, LevelOK, Level(80))
	assert.Equal(t, LevelHigh, Level(80.5))
	assert.Equal(t, LevelHigh, Level(100))
	assert.Equal(t, LevelOver, Level(100.1))
}

func TestTeam(t *testing.T) {
	coworkers := []types.CoworkerResponse{
		{ID: 1, Name: "Alice", Capacity: 40},
		{ID: 2, Name: "Bob", Capacity: 0},
	}
	assignments := []types.AssignmentResponse{
		assignment(1, 1, 20),
		assignment(2, 1, 5),
	}

	team := Team(coworkers, assignments)

	if assert.Len(t, team.Coworkers, 2) {
		assert.Equal(t, "Alice", team.Coworkers[0].Name)
		assert.Equal(t, 50.0, team.Coworkers[0].Percentage)
		assert.Equal(t, 0.0, team.Coworkers[1].Percentage)
	}
	assert.Equal(t, 40.0, team.TotalCapacity)
	assert.Equal(t, 25.0, team.TotalAssigned)
	assert.Equal(t, 15.0, team.Available)
	assert.Equal(t, 62.5, team.Percentage)
}

func TestTeam_NoCapacity(t *testing.T) {
	team := Team(nil, []types.AssignmentResponse{assignment(1, 1, 3)})

	assert.Empty(t, team.Coworkers)
	assert.Equal(t, 0.0, team.Percentage)
}

func TestProjects(t *testing.T) {
	projects := []types.ProjectResponse{{ID: 1, Name: "Apollo"}, {ID: 2, Name: "Gemini"}}
	tasks := []types.TaskResponse{{ID: 5, ProjectID: 2, Status: types.StatusCompleted, EstimatedHours: 3}}

	summaries := Projects(projects, tasks, nil)

	if assert.Len(t, summaries, 2) {
		assert.Equal(t, "Apollo", summaries[0].Name)
		assert.Equal(t, 0, summaries[0].TotalTasks)
		assert.Equal(t, "Gemini", summaries[1].Name)
		assert.Equal(t, 100.0, summaries[1].Completion)
	}
}
