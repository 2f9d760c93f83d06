package harvest

import (
	"context"
	"fmt"
	"net/url"
)

// Task is a Harvest task record.
type Task struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	BillableByDefault bool     `json:"billable_by_default"`
	DefaultHourlyRate *float64 `json:"default_hourly_rate"`
	IsDefault         bool     `json:"is_default"`
	IsActive          bool     `json:"is_active"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

// TaskRef is the abbreviated task embedded in other records.
type TaskRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TaskList is one page of tasks with its pagination envelope.
type TaskList struct {
	Tasks []Task `json:"tasks"`
	Pagination
}

// TaskListParams filter the task listing.
type TaskListParams struct {
	IsActive     *bool
	UpdatedSince string
	ListParams
}

// Validate checks the filter fields.
func (p TaskListParams) Validate() error {
	var probs problems
	probs.datetime("updated_since", p.UpdatedSince)
	return probs.err()
}

func (p TaskListParams) query() url.Values {
	q := p.ListParams.query()
	addBool(q, "is_active", p.IsActive)
	addString(q, "updated_since", p.UpdatedSince)
	return q
}

// TaskCreate are the fields accepted when creating a task.
type TaskCreate struct {
	Name              string   `json:"name"`
	BillableByDefault *bool    `json:"billable_by_default,omitempty"`
	DefaultHourlyRate *float64 `json:"default_hourly_rate,omitempty"`
	IsDefault         *bool    `json:"is_default,omitempty"`
	IsActive          *bool    `json:"is_active,omitempty"`
}

// Validate checks the input before any request is sent.
func (in TaskCreate) Validate() error {
	var p problems
	p.requireString("name", in.Name)
	p.money("default_hourly_rate", in.DefaultHourlyRate)
	return p.err()
}

// TaskUpdate are the fields accepted when updating a task.
type TaskUpdate struct {
	Name              *string  `json:"name,omitempty"`
	BillableByDefault *bool    `json:"billable_by_default,omitempty"`
	DefaultHourlyRate *float64 `json:"default_hourly_rate,omitempty"`
	IsDefault         *bool    `json:"is_default,omitempty"`
	IsActive          *bool    `json:"is_active,omitempty"`
}

// Validate checks only the fields that are present.
func (in TaskUpdate) Validate() error {
	var p problems
	if in.Name != nil {
		p.requireString("name", *in.Name)
	}
	p.money("default_hourly_rate", in.DefaultHourlyRate)
	return p.err()
}

// ListTasks returns one page of tasks.
func (a *API) ListTasks(ctx context.Context, params TaskListParams) (*TaskList, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	var out TaskList
	if err := a.get(ctx, "/tasks", params.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTask fetches a single task by ID.
func (a *API) GetTask(ctx context.Context, id int64) (*Task, error) {
	if err := checkID("task_id", id); err != nil {
		return nil, err
	}
	var out Task
	if err := a.get(ctx, fmt.Sprintf("/tasks/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTask creates a task and returns the stored record.
func (a *API) CreateTask(ctx context.Context, in TaskCreate) (*Task, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out Task
	if err := a.post(ctx, "/tasks", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTask applies the set fields to an existing task.
func (a *API) UpdateTask(ctx context.Context, id int64, in TaskUpdate) (*Task, error) {
	if err := checkID("task_id", id); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out Task
	if err := a.patch(ctx, fmt.Sprintf("/tasks/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTask removes a task. Deletion fails upstream while the task has
// tracked time against it.
func (a *API) DeleteTask(ctx context.Context, id int64) error {
	if err := checkID("task_id", id); err != nil {
		return err
	}
	return a.del(ctx, fmt.Sprintf("/tasks/%d", id))
}
