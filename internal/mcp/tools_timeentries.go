package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ianaleck/harvest-mcp-server/internal/harvest"
)

func registerTimeEntryTools(r *registry, api *harvest.API) {
	addTool(r, &mcp.Tool{
		Name:        "list_time_entries",
		Description: "List time entries. Filter by user, client, project, task, date range, billed state, or running state; results are paginated.",
		Annotations: readOnlyAnnotations(),
	}, handleListTimeEntries(api))

	addTool(r, &mcp.Tool{
		Name:        "get_time_entry",
		Description: "Get a single time entry by its ID.",
		Annotations: readOnlyAnnotations(),
	}, handleGetTimeEntry(api))

	addTool(r, &mcp.Tool{
		Name:        "create_time_entry",
		Description: "Create a time entry for a project and task. Provide either hours, or both started_time and ended_time in HH:MM format.",
		Annotations: writeAnnotations(),
	}, handleCreateTimeEntry(api))

	addTool(r, &mcp.Tool{
		Name:        "update_time_entry",
		Description: "Update a time entry. Only the fields provided are changed.",
		Annotations: writeAnnotations(),
	}, handleUpdateTimeEntry(api))

	addTool(r, &mcp.Tool{
		Name:        "delete_time_entry",
		Description: "Delete a time entry.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteTimeEntry(api))

	addTool(r, &mcp.Tool{
		Name:        "start_timer",
		Description: "Start a running timer on a project and task. The start time is the current clock time; spent_date defaults to today.",
		Annotations: writeAnnotations(),
	}, handleStartTimer(api))

	addTool(r, &mcp.Tool{
		Name:        "stop_timer",
		Description: "Stop a running time entry's timer.",
		Annotations: writeAnnotations(),
	}, handleStopTimer(api))

	addTool(r, &mcp.Tool{
		Name:        "restart_timer",
		Description: "Restart the timer on a stopped time entry.",
		Annotations: writeAnnotations(),
	}, handleRestartTimer(api))
}

// ListTimeEntriesInput is the input for the list_time_entries tool.
type ListTimeEntriesInput struct {
	UserID       int64  `json:"user_id,omitempty"       jsonschema:"only return entries tracked by this user"`
	ClientID     int64  `json:"client_id,omitempty"     jsonschema:"only return entries for this client"`
	ProjectID    int64  `json:"project_id,omitempty"    jsonschema:"only return entries for this project"`
	TaskID       int64  `json:"task_id,omitempty"       jsonschema:"only return entries for this task"`
	IsBilled     *bool  `json:"is_billed,omitempty"     jsonschema:"true for invoiced entries only, false for uninvoiced only"`
	IsRunning    *bool  `json:"is_running,omitempty"    jsonschema:"true for running entries only, false for stopped only"`
	UpdatedSince string `json:"updated_since,omitempty" jsonschema:"only return entries updated since this ISO-8601 datetime"`
	From         string `json:"from,omitempty"          jsonschema:"only return entries on or after this date, YYYY-MM-DD"`
	To           string `json:"to,omitempty"            jsonschema:"only return entries on or before this date, YYYY-MM-DD"`
	Page         int    `json:"page,omitempty"          jsonschema:"page number to fetch, starting at 1"`
	PerPage      int    `json:"per_page,omitempty"      jsonschema:"records per page, 1-2000"`
}

// GetTimeEntryInput is the input for the get_time_entry tool.
type GetTimeEntryInput struct {
	TimeEntryID int64 `json:"time_entry_id" jsonschema:"ID of the time entry to fetch"`
}

// CreateTimeEntryInput is the input for the create_time_entry tool.
type CreateTimeEntryInput struct {
	ProjectID   int64    `json:"project_id"             jsonschema:"ID of the project to log time against"`
	TaskID      int64    `json:"task_id"                jsonschema:"ID of the task to log time against"`
	SpentDate   string   `json:"spent_date"             jsonschema:"date the time was spent, YYYY-MM-DD"`
	UserID      *int64   `json:"user_id,omitempty"      jsonschema:"log time for this user instead of the token owner"`
	Hours       *float64 `json:"hours,omitempty"        jsonschema:"duration in decimal hours, 0-24"`
	StartedTime string   `json:"started_time,omitempty" jsonschema:"start of day time in HH:MM 24-hour format"`
	EndedTime   string   `json:"ended_time,omitempty"   jsonschema:"end of day time in HH:MM 24-hour format"`
	Notes       string   `json:"notes,omitempty"        jsonschema:"notes on the entry"`
}

// UpdateTimeEntryInput is the input for the update_time_entry tool.
type UpdateTimeEntryInput struct {
	TimeEntryID int64    `json:"time_entry_id"          jsonschema:"ID of the time entry to update"`
	ProjectID   *int64   `json:"project_id,omitempty"   jsonschema:"move the entry to this project"`
	TaskID      *int64   `json:"task_id,omitempty"      jsonschema:"move the entry to this task"`
	SpentDate   *string  `json:"spent_date,omitempty"   jsonschema:"new spent date, YYYY-MM-DD"`
	Hours       *float64 `json:"hours,omitempty"        jsonschema:"new duration in decimal hours, 0-24"`
	StartedTime *string  `json:"started_time,omitempty" jsonschema:"new start of day time, HH:MM"`
	EndedTime   *string  `json:"ended_time,omitempty"   jsonschema:"new end of day time, HH:MM"`
	Notes       *string  `json:"notes,omitempty"        jsonschema:"new notes"`
}

// DeleteTimeEntryInput is the input for the delete_time_entry tool.
type DeleteTimeEntryInput struct {
	TimeEntryID int64 `json:"time_entry_id" jsonschema:"ID of the time entry to delete"`
}

// StartTimerInput is the input for the start_timer tool.
type StartTimerInput struct {
	ProjectID int64  `json:"project_id"           jsonschema:"ID of the project to track time against"`
	TaskID    int64  `json:"task_id"              jsonschema:"ID of the task to track time against"`
	SpentDate string `json:"spent_date,omitempty" jsonschema:"date of the entry, YYYY-MM-DD, defaults to today"`
	UserID    *int64 `json:"user_id,omitempty"    jsonschema:"start the timer for this user instead of the token owner"`
	Notes     string `json:"notes,omitempty"      jsonschema:"notes on the entry"`
}

// TimerInput is the input for the stop_timer and restart_timer tools.
type TimerInput struct {
	TimeEntryID int64 `json:"time_entry_id" jsonschema:"ID of the time entry whose timer to control"`
}

func handleListTimeEntries(api *harvest.API) mcp.ToolHandlerFor[ListTimeEntriesInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListTimeEntriesInput) (*mcp.CallToolResult, any, error) {
		list, err := api.ListTimeEntries(ctx, harvest.TimeEntryListParams{
			UserID:       input.UserID,
			ClientID:     input.ClientID,
			ProjectID:    input.ProjectID,
			TaskID:       input.TaskID,
			IsBilled:     input.IsBilled,
			IsRunning:    input.IsRunning,
			UpdatedSince: input.UpdatedSince,
			From:         input.From,
			To:           input.To,
			ListParams:   harvest.ListParams{Page: input.Page, PerPage: input.PerPage},
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

func handleGetTimeEntry(api *harvest.API) mcp.ToolHandlerFor[GetTimeEntryInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetTimeEntryInput) (*mcp.CallToolResult, any, error) {
		entry, err := api.GetTimeEntry(ctx, input.TimeEntryID)
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(entry), nil, nil
	}
}

func handleCreateTimeEntry(api *harvest.API) mcp.ToolHandlerFor[CreateTimeEntryInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateTimeEntryInput) (*mcp.CallToolResult, any, error) {
		entry, err := api.CreateTimeEntry(ctx, harvest.TimeEntryCreate{
			ProjectID:   input.ProjectID,
			TaskID:      input.TaskID,
			SpentDate:   input.SpentDate,
			UserID:      input.UserID,
			Hours:       input.Hours,
			StartedTime: input.StartedTime,
			EndedTime:   input.EndedTime,
			Notes:       input.Notes,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(entry), nil, nil
	}
}

func handleUpdateTimeEntry(api *harvest.API) mcp.ToolHandlerFor[UpdateTimeEntryInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateTimeEntryInput) (*mcp.CallToolResult, any, error) {
		entry, err := api.UpdateTimeEntry(ctx, input.TimeEntryID, harvest.TimeEntryUpdate{
			ProjectID:   input.ProjectID,
			TaskID:      input.TaskID,
			SpentDate:   input.SpentDate,
			Hours:       input.Hours,
			StartedTime: input.StartedTime,
			EndedTime:   input.EndedTime,
			Notes:       input.Notes,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(entry), nil, nil
	}
}

func handleDeleteTimeEntry(api *harvest.API) mcp.ToolHandlerFor[DeleteTimeEntryInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeleteTimeEntryInput) (*mcp.CallToolResult, any, error) {
		if err := api.DeleteTimeEntry(ctx, input.TimeEntryID); err != nil {
			return errorResult(err), nil, nil
		}
		return deletedResult("Time entry", input.TimeEntryID), nil, nil
	}
}

func handleStartTimer(api *harvest.API) mcp.ToolHandlerFor[StartTimerInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input StartTimerInput) (*mcp.CallToolResult, any, error) {
		entry, err := api.StartTimer(ctx, harvest.TimerStart{
			ProjectID: input.ProjectID,
			TaskID:    input.TaskID,
			SpentDate: input.SpentDate,
			UserID:    input.UserID,
			Notes:     input.Notes,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(entry), nil, nil
	}
}

func handleStopTimer(api *harvest.API) mcp.ToolHandlerFor[TimerInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TimerInput) (*mcp.CallToolResult, any, error) {
		entry, err := api.StopTimer(ctx, input.TimeEntryID)
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(entry), nil, nil
	}
}

func handleRestartTimer(api *harvest.API) mcp.ToolHandlerFor[TimerInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TimerInput) (*mcp.CallToolResult, any, error) {
		entry, err := api.RestartTimer(ctx, input.TimeEntryID)
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(entry), nil, nil
	}
}
