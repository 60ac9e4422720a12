package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/capsyncer/capsyncer/internal/capacity"
	"github.com/capsyncer/capsyncer/internal/client"
	"github.com/capsyncer/capsyncer/internal/types"
)

// api is the part of the client the commands use.
type api interface {
	Status(ctx context.Context) (types.StatusResponse, error)
	ListCoworkers(ctx context.Context) ([]types.CoworkerResponse, error)
	ListProjects(ctx context.Context) ([]types.ProjectResponse, error)
	ListTasks(ctx context.Context) ([]types.TaskResponse, error)
	ListAssignments(ctx context.Context) ([]types.AssignmentResponse, error)
	Dashboard(ctx context.Context) (client.Dashboard, error)
	ProjectRollup(ctx context.Context, id uint) (capacity.ProjectSummary, error)
}

func runStatus(ctx context.Context, c api, p *printer) error {
	status, err := c.Status(ctx)
	if err != nil {
		return err
	}
	p.line("%s (server time %s)", p.ok(status.Status), status.Now.Format(time.RFC3339))
	return nil
}

func runCoworkers(ctx context.Context, c api, p *printer) error {
	coworkers, err := c.ListCoworkers(ctx)
	if err != nil {
		return err
	}

	t := p.table("ID", "NAME", "CAPACITY", "ACTIVE")
	for _, cw := range coworkers {
		t.row(cw.ID, cw.Name, hours(cw.Capacity), cw.IsActive)
	}
	return t.flush()
}

func runProjects(ctx context.Context, c api, p *printer) error {
	projects, err := c.ListProjects(ctx)
	if err != nil {
		return err
	}

	t := p.table("ID", "NAME")
	for _, pr := range projects {
		t.row(pr.ID, pr.Name)
	}
	return t.flush()
}

func runTasks(ctx context.Context, c api, p *printer) error {
	tasks, err := c.ListTasks(ctx)
	if err != nil {
		return err
	}

	t := p.table("ID", "PROJECT", "NAME", "PRIORITY", "STATUS", "ESTIMATE")
	for _, task := range tasks {
		t.row(task.ID, task.ProjectID, task.Name, task.Priority, task.Status, hours(task.EstimatedHours))
	}
	return t.flush()
}

func runAssignments(ctx context.Context, c api, p *printer) error {
	assignments, err := c.ListAssignments(ctx)
	if err != nil {
		return err
	}

	t := p.table("ID", "COWORKER", "TASK", "HOURS", "ASSIGNED", "BY")
	for _, a := range assignments {
		coworker := fmt.Sprintf("#%d", a.CoworkerID)
		if a.Coworker != nil {
			coworker = a.Coworker.Name
		}
		task := fmt.Sprintf("#%d", a.TaskItemID)
		if a.TaskItem != nil {
			task = a.TaskItem.Name
		}
		t.row(a.ID, coworker, task, hours(a.HoursAssigned), a.AssignedDate.Format(time.DateOnly), a.AssignedBy)
	}
	return t.flush()
}

func runUtilization(ctx context.Context, c api, p *printer) error {
	dashboard, err := c.Dashboard(ctx)
	if err != nil {
		return err
	}

	t := p.table("ID", "NAME", "CAPACITY", "ASSIGNED", "AVAILABLE", "UTILIZATION")
	for _, u := range dashboard.Team.Coworkers {
		t.row(u.CoworkerID, u.Name, hours(u.Capacity), hours(u.AssignedHours), hours(u.Available), p.level(u.Level, percentage(u.Percentage)))
	}
	team := dashboard.Team
	t.row("", "TEAM", hours(team.TotalCapacity), hours(team.TotalAssigned), hours(team.Available), p.level(team.Level, percentage(team.Percentage)))
	return t.flush()
}

func runProject(ctx context.Context, c api, p *printer, id uint) error {
	summary, err := c.ProjectRollup(ctx, id)
	if errors.Is(err, client.ErrNotFound) {
		return fmt.Errorf("project %d does not exist", id)
	}
	if err != nil {
		return err
	}

	p.line("%s (#%d)", p.bold(summary.Name), summary.ProjectID)
	p.line("  tasks:      %d (%d completed)", summary.TotalTasks, summary.CompletedTasks)
	p.line("  completion: %s", percentage(summary.Completion))
	p.line("  estimated:  %s", hours(summary.TotalEstimatedHours))
	p.line("  assigned:   %s", hours(summary.TotalAssignedHours))

	if len(summary.TasksByStatus) == 0 {
		return nil
	}

	t := p.table("STATUS", "TASKS")
	for _, status := range sortedKeys(summary.TasksByStatus) {
		t.row(status, summary.TasksByStatus[status])
	}
	return t.flush()
}
