package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"

	"github.com/capsyncer/capsyncer/internal/client"
	"github.com/capsyncer/capsyncer/internal/config"
	"github.com/capsyncer/capsyncer/internal/types"
)

var (
	app = kingpin.New("capsyncerctl", "Command line client for the CapSyncer API")

	baseURL = app.Flag("url", "API base URL (defaults to CAPSYNCER_API_BASEURL)").String()
	role    = app.Flag("role", "Viewer role sent to the server").Default("user").Enum("admin", "user")
	user    = app.Flag("user", "Viewer user name sent to the server").String()
	noColor = app.Flag("no-color", "Disable coloured output").Bool()

	statusCmd = app.Command("status", "Show server status")

	coworkersCmd   = app.Command("coworkers", "List coworkers")
	projectsCmd    = app.Command("projects", "List projects")
	tasksCmd       = app.Command("tasks", "List tasks")
	assignmentsCmd = app.Command("assignments", "List assignments")

	utilizationCmd = app.Command("utilization", "Show team utilization")

	projectCmd = app.Command("project", "Show a project rollup")
	projectID  = projectCmd.Arg("id", "Project ID").Required().Uint()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	c, err := newClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := newPrinter(os.Stdout, !*noColor)

	switch command {
	case statusCmd.FullCommand():
		err = runStatus(ctx, c, p)
	case coworkersCmd.FullCommand():
		err = runCoworkers(ctx, c, p)
	case projectsCmd.FullCommand():
		err = runProjects(ctx, c, p)
	case tasksCmd.FullCommand():
		err = runTasks(ctx, c, p)
	case assignmentsCmd.FullCommand():
		err = runAssignments(ctx, c, p)
	case utilizationCmd.FullCommand():
		err = runUtilization(ctx, c, p)
	case projectCmd.FullCommand():
		err = runProject(ctx, c, p, *projectID)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newClient() (*client.Client, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}

	url := cfg.APIBaseURL
	if *baseURL != "" {
		url = *baseURL
	}

	return client.New(url, client.WithViewer(types.Viewer{
		Role:     types.ParseRole(*role),
		UserName: *user,
	})), nil
}
