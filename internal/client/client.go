// Package client is a typed HTTP client for the CapSyncer REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/capsyncer/capsyncer/internal/capacity"
	"github.com/capsyncer/capsyncer/internal/types"
)

// ErrNotFound is returned when the server answers 404.
var ErrNotFound = errors.New("not found")

// StatusError is any other non-2xx answer.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	viewer     types.Viewer
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithViewer sends the viewer headers on every request.
func WithViewer(viewer types.Viewer) Option {
	return func(c *Client) {
		c.viewer = viewer
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", method, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.viewer.Role != "" {
		req.Header.Set(types.HeaderViewerRole, string(c.viewer.Role))
	}
	if c.viewer.UserName != "" {
		req.Header.Set(types.HeaderViewerName, c.viewer.UserName)
	}

	return req, nil
}

// send performs the request once and decodes a 2xx body into out when out
// is not nil.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var payload types.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			statusErr.Message = payload.Error
		}
		return fmt.Errorf("%s %s: %w", method, path, statusErr)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}

	return nil
}

func do[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var out T
	err := c.send(ctx, method, path, body, &out)
	return out, err
}

func idPath(prefix string, id uint, suffix string) string {
	return prefix + "/" + strconv.FormatUint(uint64(id), 10) + suffix
}

func (c *Client) Status(ctx context.Context) (types.StatusResponse, error) {
	return do[types.StatusResponse](ctx, c, http.MethodGet, "/api/status", nil)
}

func (c *Client) Health(ctx context.Context) error {
	return c.send(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) Me(ctx context.Context) (types.MeResponse, error) {
	return do[types.MeResponse](ctx, c, http.MethodGet, "/api/me", nil)
}

func (c *Client) ListCoworkers(ctx context.Context) ([]types.CoworkerResponse, error) {
	return do[[]types.CoworkerResponse](ctx, c, http.MethodGet, "/api/coworkers", nil)
}

func (c *Client) GetCoworker(ctx context.Context, id uint) (types.CoworkerResponse, error) {
	return do[types.CoworkerResponse](ctx, c, http.MethodGet, idPath("/api/coworkers", id, ""), nil)
}

func (c *Client) CreateCoworker(ctx context.Context, req types.CoworkerRequest) (types.CoworkerResponse, error) {
	return do[types.CoworkerResponse](ctx, c, http.MethodPost, "/api/coworkers", req)
}

func (c *Client) UpdateCoworker(ctx context.Context, id uint, req types.CoworkerRequest) (types.CoworkerResponse, error) {
	return do[types.CoworkerResponse](ctx, c, http.MethodPut, idPath("/api/coworkers", id, ""), req)
}

func (c *Client) DeleteCoworker(ctx context.Context, id uint) error {
	return c.send(ctx, http.MethodDelete, idPath("/api/coworkers", id, ""), nil, nil)
}

func (c *Client) ListProjects(ctx context.Context) ([]types.ProjectResponse, error) {
	return do[[]types.ProjectResponse](ctx, c, http.MethodGet, "/api/projects", nil)
}

func (c *Client) GetProject(ctx context.Context, id uint) (types.ProjectResponse, error) {
	return do[types.ProjectResponse](ctx, c, http.MethodGet, idPath("/api/projects", id, ""), nil)
}

func (c *Client) CreateProject(ctx context.Context, req types.ProjectRequest) (types.ProjectResponse, error) {
	return do[types.ProjectResponse](ctx, c, http.MethodPost, "/api/projects", req)
}

func (c *Client) UpdateProject(ctx context.Context, id uint, req types.ProjectRequest) (types.ProjectResponse, error) {
	return do[types.ProjectResponse](ctx, c, http.MethodPut, idPath("/api/projects", id, ""), req)
}

func (c *Client) DeleteProject(ctx context.Context, id uint) error {
	return c.send(ctx, http.MethodDelete, idPath("/api/projects", id, ""), nil, nil)
}

func (c *Client) ListTasks(ctx context.Context) ([]types.TaskResponse, error) {
	return do[[]types.TaskResponse](ctx, c, http.MethodGet, "/api/tasks", nil)
}

func (c *Client) GetTask(ctx context.Context, id uint) (types.TaskResponse, error) {
	return do[types.TaskResponse](ctx, c, http.MethodGet, idPath("/api/tasks", id, ""), nil)
}

func (c *Client) CreateTask(ctx context.Context, req types.TaskRequest) (types.TaskResponse, error) {
	return do[types.TaskResponse](ctx, c, http.MethodPost, "/api/tasks", req)
}

func (c *Client) UpdateTask(ctx context.Context, id uint, req types.TaskRequest) (types.TaskResponse, error) {
	return do[types.TaskResponse](ctx, c, http.MethodPut, idPath("/api/tasks", id, ""), req)
}

func (c *Client) DeleteTask(ctx context.Context, id uint) error {
	return c.send(ctx, http.MethodDelete, idPath("/api/tasks", id, ""), nil, nil)
}

func (c *Client) ListAssignments(ctx context.Context) ([]types.AssignmentResponse, error) {
	return do[[]types.AssignmentResponse](ctx, c, http.MethodGet, "/api/assignments", nil)
}

func (c *Client) GetAssignment(ctx context.Context, id uint) (types.AssignmentResponse, error) {
	return do[types.AssignmentResponse](ctx, c, http.MethodGet, idPath("/api/assignments", id, ""), nil)
}

func (c *Client) CreateAssignment(ctx context.Context, req types.AssignmentRequest) (types.AssignmentResponse, error) {
	return do[types.AssignmentResponse](ctx, c, http.MethodPost, "/api/assignments", req)
}

func (c *Client) UpdateAssignment(ctx context.Context, id uint, req types.AssignmentRequest) (types.AssignmentResponse, error) {
	return do[types.AssignmentResponse](ctx, c, http.MethodPut, idPath("/api/assignments", id, ""), req)
}

func (c *Client) DeleteAssignment(ctx context.Context, id uint) error {
	return c.send(ctx, http.MethodDelete, idPath("/api/assignments", id, ""), nil, nil)
}

// Dashboard mirrors the server's dashboard payload.
type Dashboard struct {
	Team        capacity.TeamSummary      `json:"team"`
	Projects    []capacity.ProjectSummary `json:"projects"`
	GeneratedAt time.Time                 `json:"generatedAt"`
}

func (c *Client) Dashboard(ctx context.Context) (Dashboard, error) {
	return do[Dashboard](ctx, c, http.MethodGet, "/api/dashboard", nil)
}

func (c *Client) CoworkerUtilization(ctx context.Context, id uint) (capacity.Utilization, error) {
	return do[capacity.Utilization](ctx, c, http.MethodGet, idPath("/api/coworkers", id, "/utilization"), nil)
}

func (c *Client) TaskRollup(ctx context.Context, id uint) (capacity.TaskSummary, error) {
	return do[capacity.TaskSummary](ctx, c, http.MethodGet, idPath("/api/tasks", id, "/rollup"), nil)
}

func (c *Client) ProjectRollup(ctx context.Context, id uint) (capacity.ProjectSummary, error) {
	return do[capacity.ProjectSummary](ctx, c, http.MethodGet, idPath("/api/projects", id, "/rollup"), nil)
}
