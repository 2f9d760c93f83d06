package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ianaleck/harvest-mcp-server/internal/harvest"
)

func registerTaskTools(r *registry, api *harvest.API) {
	addTool(r, &mcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks in the Harvest account. Filter by active state or last update time; results are paginated.",
		Annotations: readOnlyAnnotations(),
	}, handleListTasks(api))

	addTool(r, &mcp.Tool{
		Name:        "get_task",
		Description: "Get a single task by its ID.",
		Annotations: readOnlyAnnotations(),
	}, handleGetTask(api))

	addTool(r, &mcp.Tool{
		Name:        "create_task",
		Description: "Create a new task. Only the name is required.",
		Annotations: writeAnnotations(),
	}, handleCreateTask(api))

	addTool(r, &mcp.Tool{
		Name:        "update_task",
		Description: "Update a task. Only the fields provided are changed.",
		Annotations: writeAnnotations(),
	}, handleUpdateTask(api))

	addTool(r, &mcp.Tool{
		Name:        "delete_task",
		Description: "Delete a task. Fails if time has been tracked against it.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteTask(api))
}

// ListTasksInput is the input for the list_tasks tool.
type ListTasksInput struct {
	IsActive     *bool  `json:"is_active,omitempty"     jsonschema:"true for active tasks only, false for archived only"`
	UpdatedSince string `json:"updated_since,omitempty" jsonschema:"only return tasks updated since this ISO-8601 datetime"`
	Page         int    `json:"page,omitempty"          jsonschema:"page number to fetch, starting at 1"`
	PerPage      int    `json:"per_page,omitempty"      jsonschema:"records per page, 1-2000"`
}

// GetTaskInput is the input for the get_task tool.
type GetTaskInput struct {
	TaskID int64 `json:"task_id" jsonschema:"ID of the task to fetch"`
}

// CreateTaskInput is the input for the create_task tool.
type CreateTaskInput struct {
	Name              string   `json:"name"                          jsonschema:"task name"`
	BillableByDefault *bool    `json:"billable_by_default,omitempty" jsonschema:"whether the task is billable when added to a project, defaults to true"`
	DefaultHourlyRate *float64 `json:"default_hourly_rate,omitempty" jsonschema:"default hourly rate for the task"`
	IsDefault         *bool    `json:"is_default,omitempty"          jsonschema:"whether the task is added to new projects automatically"`
	IsActive          *bool    `json:"is_active,omitempty"           jsonschema:"whether the task is active, defaults to true"`
}

// UpdateTaskInput is the input for the update_task tool.
type UpdateTaskInput struct {
	TaskID            int64    `json:"task_id"                       jsonschema:"ID of the task to update"`
	Name              *string  `json:"name,omitempty"                jsonschema:"new task name"`
	BillableByDefault *bool    `json:"billable_by_default,omitempty" jsonschema:"new billable-by-default state"`
	DefaultHourlyRate *float64 `json:"default_hourly_rate,omitempty" jsonschema:"new default hourly rate"`
	IsDefault         *bool    `json:"is_default,omitempty"          jsonschema:"new auto-add state"`
	IsActive          *bool    `json:"is_active,omitempty"           jsonschema:"new active state"`
}

// DeleteTaskInput is the input for the delete_task tool.
type DeleteTaskInput struct {
	TaskID int64 `json:"task_id" jsonschema:"ID of the task to delete"`
}

func handleListTasks(api *harvest.API) mcp.ToolHandlerFor[ListTasksInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListTasksInput) (*mcp.CallToolResult, any, error) {
		list, err := api.ListTasks(ctx, harvest.TaskListParams{
			IsActive:     input.IsActive,
			UpdatedSince: input.UpdatedSince,
			ListParams:   harvest.ListParams{Page: input.Page, PerPage: input.PerPage},
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

func handleGetTask(api *harvest.API) mcp.ToolHandlerFor[GetTaskInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetTaskInput) (*mcp.CallToolResult, any, error) {
		task, err := api.GetTask(ctx, input.TaskID)
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(task), nil, nil
	}
}

func handleCreateTask(api *harvest.API) mcp.ToolHandlerFor[CreateTaskInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateTaskInput) (*mcp.CallToolResult, any, error) {
		task, err := api.CreateTask(ctx, harvest.TaskCreate{
			Name:              input.Name,
			BillableByDefault: input.BillableByDefault,
			DefaultHourlyRate: input.DefaultHourlyRate,
			IsDefault:         input.IsDefault,
			IsActive:          input.IsActive,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(task), nil, nil
	}
}

func handleUpdateTask(api *harvest.API) mcp.ToolHandlerFor[UpdateTaskInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateTaskInput) (*mcp.CallToolResult, any, error) {
		task, err := api.UpdateTask(ctx, input.TaskID, harvest.TaskUpdate{
			Name:              input.Name,
			BillableByDefault: input.BillableByDefault,
			DefaultHourlyRate: input.DefaultHourlyRate,
			IsDefault:         input.IsDefault,
			IsActive:          input.IsActive,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(task), nil, nil
	}
}

func handleDeleteTask(api *harvest.API) mcp.ToolHandlerFor[DeleteTaskInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeleteTaskInput) (*mcp.CallToolResult, any, error) {
		if err := api.DeleteTask(ctx, input.TaskID); err != nil {
			return errorResult(err), nil, nil
		}
		return deletedResult("Task", input.TaskID), nil, nil
	}
}
