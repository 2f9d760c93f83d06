package harvest

import (
	"context"
	"fmt"
	"net/url"
)

// TimeEntry is a Harvest time entry record. StartedTime, EndedTime and
// TimerStartedAt are null while not applicable, so they stay pointers:
// a running entry has started_time but no ended_time.
type TimeEntry struct {
	ID                int64              `json:"id"`
	SpentDate         string             `json:"spent_date"`
	User              UserRef            `json:"user"`
	Client            ClientRef          `json:"client"`
	Project           ProjectRef         `json:"project"`
	Task              TaskRef            `json:"task"`
	Invoice           *InvoiceRef        `json:"invoice"`
	ExternalReference *ExternalReference `json:"external_reference"`
	Hours             float64            `json:"hours"`
	HoursWithoutTimer float64            `json:"hours_without_timer"`
	RoundedHours      float64            `json:"rounded_hours"`
	Notes             string             `json:"notes"`
	IsLocked          bool               `json:"is_locked"`
	LockedReason      string             `json:"locked_reason"`
	IsClosed          bool               `json:"is_closed"`
	IsBilled          bool               `json:"is_billed"`
	TimerStartedAt    *string            `json:"timer_started_at"`
	StartedTime       *string            `json:"started_time"`
	EndedTime         *string            `json:"ended_time"`
	IsRunning         bool               `json:"is_running"`
	Billable          bool               `json:"billable"`
	Budgeted          bool               `json:"budgeted"`
	BillableRate      *float64           `json:"billable_rate"`
	CostRate          *float64           `json:"cost_rate"`
	CreatedAt         string             `json:"created_at"`
	UpdatedAt         string             `json:"updated_at"`
}

// ExternalReference ties a time entry to an object in another system.
type ExternalReference struct {
	ID             string `json:"id"`
	GroupID        string `json:"group_id"`
	AccountID      string `json:"account_id"`
	Permalink      string `json:"permalink"`
	Service        string `json:"service"`
	ServiceIconURL string `json:"service_icon_url"`
}

// TimeEntryList is one page of time entries with its pagination
// envelope.
type TimeEntryList struct {
	TimeEntries []TimeEntry `json:"time_entries"`
	Pagination
}

// TimeEntryListParams filter the time entry listing.
type TimeEntryListParams struct {
	UserID       int64
	ClientID     int64
	ProjectID    int64
	TaskID       int64
	IsBilled     *bool
	IsRunning    *bool
	UpdatedSince string
	From         string
	To           string
	ListParams
}

// Validate checks the filter fields.
func (p TimeEntryListParams) Validate() error {
	var probs problems
	probs.datetime("updated_since", p.UpdatedSince)
	probs.date("from", p.From)
	probs.date("to", p.To)
	return probs.err()
}

func (p TimeEntryListParams) query() url.Values {
	q := p.ListParams.query()
	addID(q, "user_id", p.UserID)
	addID(q, "client_id", p.ClientID)
	addID(q, "project_id", p.ProjectID)
	addID(q, "task_id", p.TaskID)
	addBool(q, "is_billed", p.IsBilled)
	addBool(q, "is_running", p.IsRunning)
	addString(q, "updated_since", p.UpdatedSince)
	addString(q, "from", p.From)
	addString(q, "to", p.To)
	return q
}

// TimeEntryCreate are the fields accepted when creating a time entry.
// An entry is created in one of two modes: a duration (hours > 0), or a
// start/end pair of day times. Supplying neither is rejected locally.
type TimeEntryCreate struct {
	ProjectID   int64    `json:"project_id"`
	TaskID      int64    `json:"task_id"`
	SpentDate   string   `json:"spent_date"`
	UserID      *int64   `json:"user_id,omitempty"`
	Hours       *float64 `json:"hours,omitempty"`
	StartedTime string   `json:"started_time,omitempty"`
	EndedTime   string   `json:"ended_time,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

// Validate checks the input before any request is sent.
func (in TimeEntryCreate) Validate() error {
	var p problems
	p.requireID("project_id", in.ProjectID)
	p.requireID("task_id", in.TaskID)
	p.requireDate("spent_date", in.SpentDate)
	p.optionalID("user_id", in.UserID)
	p.hours("hours", in.Hours)
	p.timeOfDay("started_time", in.StartedTime)
	p.timeOfDay("ended_time", in.EndedTime)

	hasHours := in.Hours != nil && *in.Hours > 0
	hasTimes := in.StartedTime != "" && in.EndedTime != ""
	if !hasHours && !hasTimes {
		p.addf("%s", timeEntryModeMessage)
	}

	return p.err()
}

// TimeEntryUpdate are the fields accepted when updating a time entry.
type TimeEntryUpdate struct {
	ProjectID   *int64   `json:"project_id,omitempty"`
	TaskID      *int64   `json:"task_id,omitempty"`
	SpentDate   *string  `json:"spent_date,omitempty"`
	Hours       *float64 `json:"hours,omitempty"`
	StartedTime *string  `json:"started_time,omitempty"`
	EndedTime   *string  `json:"ended_time,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

// Validate checks only the fields that are present.
func (in TimeEntryUpdate) Validate() error {
	var p problems
	p.optionalID("project_id", in.ProjectID)
	p.optionalID("task_id", in.TaskID)
	if in.SpentDate != nil {
		p.requireDate("spent_date", *in.SpentDate)
	}
	p.hours("hours", in.Hours)
	if in.StartedTime != nil {
		p.timeOfDay("started_time", *in.StartedTime)
	}
	if in.EndedTime != nil {
		p.timeOfDay("ended_time", *in.EndedTime)
	}
	return p.err()
}

// TimerStart are the fields accepted when starting a running timer.
// The start time is taken from the client's clock, not the caller.
type TimerStart struct {
	ProjectID int64
	TaskID    int64
	SpentDate string
	UserID    *int64
	Notes     string
}

// Validate checks the input before any request is sent.
func (in TimerStart) Validate() error {
	var p problems
	p.requireID("project_id", in.ProjectID)
	p.requireID("task_id", in.TaskID)
	p.date("spent_date", in.SpentDate)
	p.optionalID("user_id", in.UserID)
	return p.err()
}

// ListTimeEntries returns one page of time entries.
func (a *API) ListTimeEntries(ctx context.Context, params TimeEntryListParams) (*TimeEntryList, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	var out TimeEntryList
	if err := a.get(ctx, "/time_entries", params.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTimeEntry fetches a single time entry by ID.
func (a *API) GetTimeEntry(ctx context.Context, id int64) (*TimeEntry, error) {
	if err := checkID("time_entry_id", id); err != nil {
		return nil, err
	}
	var out TimeEntry
	if err := a.get(ctx, fmt.Sprintf("/time_entries/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTimeEntry creates a time entry and returns the stored record.
func (a *API) CreateTimeEntry(ctx context.Context, in TimeEntryCreate) (*TimeEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out TimeEntry
	if err := a.post(ctx, "/time_entries", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTimeEntry applies the set fields to an existing time entry.
func (a *API) UpdateTimeEntry(ctx context.Context, id int64, in TimeEntryUpdate) (*TimeEntry, error) {
	if err := checkID("time_entry_id", id); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out TimeEntry
	if err := a.patch(ctx, fmt.Sprintf("/time_entries/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTimeEntry removes a time entry.
func (a *API) DeleteTimeEntry(ctx context.Context, id int64) error {
	if err := checkID("time_entry_id", id); err != nil {
		return err
	}
	return a.del(ctx, fmt.Sprintf("/time_entries/%d", id))
}

// StartTimer creates a running time entry: spent_date defaults to
// today, started_time is the current wall clock, and no ended_time is
// sent. The returned entry reports is_running on accounts that track
// start and end times.
func (a *API) StartTimer(ctx context.Context, in TimerStart) (*TimeEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := a.now()
	spentDate := in.SpentDate
	if spentDate == "" {
		spentDate = now.Format(dateLayout)
	}

	payload := TimeEntryCreate{
		ProjectID:   in.ProjectID,
		TaskID:      in.TaskID,
		SpentDate:   spentDate,
		UserID:      in.UserID,
		StartedTime: now.Format(timeLayout),
		Notes:       in.Notes,
	}

	var out TimeEntry
	if err := a.post(ctx, "/time_entries", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StopTimer stops a running time entry.
func (a *API) StopTimer(ctx context.Context, id int64) (*TimeEntry, error) {
	if err := checkID("time_entry_id", id); err != nil {
		return nil, err
	}
	var out TimeEntry
	if err := a.patch(ctx, fmt.Sprintf("/time_entries/%d/stop", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RestartTimer restarts a stopped time entry.
func (a *API) RestartTimer(ctx context.Context, id int64) (*TimeEntry, error) {
	if err := checkID("time_entry_id", id); err != nil {
		return nil, err
	}
	var out TimeEntry
	if err := a.patch(ctx, fmt.Sprintf("/time_entries/%d/restart", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
