package harvest

import (
	"context"
	"fmt"
	"net/url"
)

// Project is a Harvest project record.
type Project struct {
	ID                               int64     `json:"id"`
	Client                           ClientRef `json:"client"`
	Name                             string    `json:"name"`
	Code                             string    `json:"code"`
	IsActive                         bool      `json:"is_active"`
	IsBillable                       bool      `json:"is_billable"`
	IsFixedFee                       bool      `json:"is_fixed_fee"`
	BillBy                           string    `json:"bill_by"`
	Budget                           *float64  `json:"budget"`
	BudgetBy                         string    `json:"budget_by"`
	BudgetIsMonthly                  bool      `json:"budget_is_monthly"`
	NotifyWhenOverBudget             bool      `json:"notify_when_over_budget"`
	OverBudgetNotificationPercentage *float64  `json:"over_budget_notification_percentage"`
	ShowBudgetToAll                  bool      `json:"show_budget_to_all"`
	CostBudget                       *float64  `json:"cost_budget"`
	CostBudgetIncludeExpenses        bool      `json:"cost_budget_include_expenses"`
	HourlyRate                       *float64  `json:"hourly_rate"`
	Fee                              *float64  `json:"fee"`
	Notes                            string    `json:"notes"`
	StartsOn                         string    `json:"starts_on"`
	EndsOn                           string    `json:"ends_on"`
	CreatedAt                        string    `json:"created_at"`
	UpdatedAt                        string    `json:"updated_at"`
}

// ProjectRef is the abbreviated project embedded in other records.
type ProjectRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// ProjectList is one page of projects with its pagination envelope.
type ProjectList struct {
	Projects []Project `json:"projects"`
	Pagination
}

// ProjectListParams filter the project listing.
type ProjectListParams struct {
	IsActive     *bool
	ClientID     int64
	UpdatedSince string
	ListParams
}

// Validate checks the filter fields.
func (p ProjectListParams) Validate() error {
	var probs problems
	if p.ClientID < 0 {
		probs.addf("client_id: must be a positive integer")
	}
	probs.datetime("updated_since", p.UpdatedSince)
	return probs.err()
}

func (p ProjectListParams) query() url.Values {
	q := p.ListParams.query()
	addBool(q, "is_active", p.IsActive)
	addID(q, "client_id", p.ClientID)
	addString(q, "updated_since", p.UpdatedSince)
	return q
}

// ProjectCreate are the fields accepted when creating a project.
type ProjectCreate struct {
	ClientID                         int64    `json:"client_id"`
	Name                             string   `json:"name"`
	IsBillable                       bool     `json:"is_billable"`
	Code                             string   `json:"code,omitempty"`
	IsActive                         *bool    `json:"is_active,omitempty"`
	IsFixedFee                       *bool    `json:"is_fixed_fee,omitempty"`
	BillBy                           string   `json:"bill_by,omitempty"`
	Budget                           *float64 `json:"budget,omitempty"`
	BudgetBy                         string   `json:"budget_by,omitempty"`
	BudgetIsMonthly                  *bool    `json:"budget_is_monthly,omitempty"`
	NotifyWhenOverBudget             *bool    `json:"notify_when_over_budget,omitempty"`
	OverBudgetNotificationPercentage *float64 `json:"over_budget_notification_percentage,omitempty"`
	ShowBudgetToAll                  *bool    `json:"show_budget_to_all,omitempty"`
	CostBudget                       *float64 `json:"cost_budget,omitempty"`
	CostBudgetIncludeExpenses        *bool    `json:"cost_budget_include_expenses,omitempty"`
	HourlyRate                       *float64 `json:"hourly_rate,omitempty"`
	Fee                              *float64 `json:"fee,omitempty"`
	Notes                            string   `json:"notes,omitempty"`
	StartsOn                         string   `json:"starts_on,omitempty"`
	EndsOn                           string   `json:"ends_on,omitempty"`
}

// Validate checks the input before any request is sent.
func (in ProjectCreate) Validate() error {
	var p problems
	p.requireID("client_id", in.ClientID)
	p.requireString("name", in.Name)
	p.money("budget", in.Budget)
	p.percent("over_budget_notification_percentage", in.OverBudgetNotificationPercentage)
	p.money("cost_budget", in.CostBudget)
	p.money("hourly_rate", in.HourlyRate)
	p.money("fee", in.Fee)
	p.date("starts_on", in.StartsOn)
	p.date("ends_on", in.EndsOn)
	return p.err()
}

// ProjectUpdate are the fields accepted when updating a project.
type ProjectUpdate struct {
	ClientID                         *int64   `json:"client_id,omitempty"`
	Name                             *string  `json:"name,omitempty"`
	IsBillable                       *bool    `json:"is_billable,omitempty"`
	Code                             *string  `json:"code,omitempty"`
	IsActive                         *bool    `json:"is_active,omitempty"`
	IsFixedFee                       *bool    `json:"is_fixed_fee,omitempty"`
	BillBy                           *string  `json:"bill_by,omitempty"`
	Budget                           *float64 `json:"budget,omitempty"`
	BudgetBy                         *string  `json:"budget_by,omitempty"`
	BudgetIsMonthly                  *bool    `json:"budget_is_monthly,omitempty"`
	NotifyWhenOverBudget             *bool    `json:"notify_when_over_budget,omitempty"`
	OverBudgetNotificationPercentage *float64 `json:"over_budget_notification_percentage,omitempty"`
	ShowBudgetToAll                  *bool    `json:"show_budget_to_all,omitempty"`
	CostBudget                       *float64 `json:"cost_budget,omitempty"`
	CostBudgetIncludeExpenses        *bool    `json:"cost_budget_include_expenses,omitempty"`
	HourlyRate                       *float64 `json:"hourly_rate,omitempty"`
	Fee                              *float64 `json:"fee,omitempty"`
	Notes                            *string  `json:"notes,omitempty"`
	StartsOn                         *string  `json:"starts_on,omitempty"`
	EndsOn                           *string  `json:"ends_on,omitempty"`
}

// Validate checks only the fields that are present.
func (in ProjectUpdate) Validate() error {
	var p problems
	p.optionalID("client_id", in.ClientID)
	if in.Name != nil {
		p.requireString("name", *in.Name)
	}
	p.money("budget", in.Budget)
	p.percent("over_budget_notification_percentage", in.OverBudgetNotificationPercentage)
	p.money("cost_budget", in.CostBudget)
	p.money("hourly_rate", in.HourlyRate)
	p.money("fee", in.Fee)
	if in.StartsOn != nil {
		p.date("starts_on", *in.StartsOn)
	}
	if in.EndsOn != nil {
		p.date("ends_on", *in.EndsOn)
	}
	return p.err()
}

// TaskAssignment links a task to a project with billing overrides.
type TaskAssignment struct {
	ID         int64      `json:"id"`
	Project    ProjectRef `json:"project"`
	Task       TaskRef    `json:"task"`
	IsActive   bool       `json:"is_active"`
	Billable   bool       `json:"billable"`
	HourlyRate *float64   `json:"hourly_rate"`
	Budget     *float64   `json:"budget"`
	CreatedAt  string     `json:"created_at"`
	UpdatedAt  string     `json:"updated_at"`
}

// TaskAssignmentList is one page of task assignments.
type TaskAssignmentList struct {
	TaskAssignments []TaskAssignment `json:"task_assignments"`
	Pagination
}

// UserAssignment links a user to a project.
type UserAssignment struct {
	ID               int64      `json:"id"`
	Project          ProjectRef `json:"project"`
	User             UserRef    `json:"user"`
	IsActive         bool       `json:"is_active"`
	IsProjectManager bool       `json:"is_project_manager"`
	UseDefaultRates  bool       `json:"use_default_rates"`
	HourlyRate       *float64   `json:"hourly_rate"`
	Budget           *float64   `json:"budget"`
	CreatedAt        string     `json:"created_at"`
	UpdatedAt        string     `json:"updated_at"`
}

// UserAssignmentList is one page of user assignments.
type UserAssignmentList struct {
	UserAssignments []UserAssignment `json:"user_assignments"`
	Pagination
}

// ListProjects returns one page of projects.
func (a *API) ListProjects(ctx context.Context, params ProjectListParams) (*ProjectList, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	var out ProjectList
	if err := a.get(ctx, "/projects", params.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProject fetches a single project by ID.
func (a *API) GetProject(ctx context.Context, id int64) (*Project, error) {
	if err := checkID("project_id", id); err != nil {
		return nil, err
	}
	var out Project
	if err := a.get(ctx, fmt.Sprintf("/projects/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProject creates a project and returns the stored record.
func (a *API) CreateProject(ctx context.Context, in ProjectCreate) (*Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out Project
	if err := a.post(ctx, "/projects", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProject applies the set fields to an existing project.
func (a *API) UpdateProject(ctx context.Context, id int64, in ProjectUpdate) (*Project, error) {
	if err := checkID("project_id", id); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out Project
	if err := a.patch(ctx, fmt.Sprintf("/projects/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProject removes a project along with its time entries and
// expenses.
func (a *API) DeleteProject(ctx context.Context, id int64) error {
	if err := checkID("project_id", id); err != nil {
		return err
	}
	return a.del(ctx, fmt.Sprintf("/projects/%d", id))
}

// ListTaskAssignments returns one page of a project's task assignments.
func (a *API) ListTaskAssignments(ctx context.Context, projectID int64, params ListParams) (*TaskAssignmentList, error) {
	if err := checkID("project_id", projectID); err != nil {
		return nil, err
	}
	var out TaskAssignmentList
	if err := a.get(ctx, fmt.Sprintf("/projects/%d/task_assignments", projectID), params.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUserAssignments returns one page of a project's user assignments.
func (a *API) ListUserAssignments(ctx context.Context, projectID int64, params ListParams) (*UserAssignmentList, error) {
	if err := checkID("project_id", projectID); err != nil {
		return nil, err
	}
	var out UserAssignmentList
	if err := a.get(ctx, fmt.Sprintf("/projects/%d/user_assignments", projectID), params.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
