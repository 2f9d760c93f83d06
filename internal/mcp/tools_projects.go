package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ianaleck/harvest-mcp-server/internal/harvest"
)

func registerProjectTools(r *registry, api *harvest.API) {
	addTool(r, &mcp.Tool{
		Name:        "list_projects",
		Description: "List projects in the Harvest account. Filter by client, active state, or last update time; results are paginated.",
		Annotations: readOnlyAnnotations(),
	}, handleListProjects(api))

	addTool(r, &mcp.Tool{
		Name:        "get_project",
		Description: "Get a single project by its ID.",
		Annotations: readOnlyAnnotations(),
	}, handleGetProject(api))

	addTool(r, &mcp.Tool{
		Name:        "create_project",
		Description: "Create a new project for a client. Requires client_id, name, and is_billable; budget and billing settings are optional.",
		Annotations: writeAnnotations(),
	}, handleCreateProject(api))

	addTool(r, &mcp.Tool{
		Name:        "update_project",
		Description: "Update a project. Only the fields provided are changed.",
		Annotations: writeAnnotations(),
	}, handleUpdateProject(api))

	addTool(r, &mcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project along with its time entries and expenses.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteProject(api))

	addTool(r, &mcp.Tool{
		Name:        "list_project_task_assignments",
		Description: "List the task assignments of a project, including billing overrides per task.",
		Annotations: readOnlyAnnotations(),
	}, handleListTaskAssignments(api))

	addTool(r, &mcp.Tool{
		Name:        "list_project_user_assignments",
		Description: "List the user assignments of a project, including project managers and rate overrides.",
		Annotations: readOnlyAnnotations(),
	}, handleListUserAssignments(api))
}

// ListProjectsInput is the input for the list_projects tool.
type ListProjectsInput struct {
	IsActive     *bool  `json:"is_active,omitempty"     jsonschema:"true for active projects only, false for archived only"`
	ClientID     int64  `json:"client_id,omitempty"     jsonschema:"only return projects for this client"`
	UpdatedSince string `json:"updated_since,omitempty" jsonschema:"only return projects updated since this ISO-8601 datetime"`
	Page         int    `json:"page,omitempty"          jsonschema:"page number to fetch, starting at 1"`
	PerPage      int    `json:"per_page,omitempty"      jsonschema:"records per page, 1-2000"`
}

// GetProjectInput is the input for the get_project tool.
type GetProjectInput struct {
	ProjectID int64 `json:"project_id" jsonschema:"ID of the project to fetch"`
}

// CreateProjectInput is the input for the create_project tool.
type CreateProjectInput struct {
	ClientID                         int64    `json:"client_id"                                     jsonschema:"ID of the client the project belongs to"`
	Name                             string   `json:"name"                                          jsonschema:"project name"`
	IsBillable                       bool     `json:"is_billable"                                   jsonschema:"whether the project is billable"`
	Code                             string   `json:"code,omitempty"                                jsonschema:"project code"`
	IsActive                         *bool    `json:"is_active,omitempty"                           jsonschema:"whether the project is active, defaults to true"`
	IsFixedFee                       *bool    `json:"is_fixed_fee,omitempty"                        jsonschema:"whether the project is a fixed fee project"`
	BillBy                           string   `json:"bill_by,omitempty"                             jsonschema:"how to bill the project: Project, Tasks, People, or none"`
	Budget                           *float64 `json:"budget,omitempty"                              jsonschema:"budget in hours"`
	BudgetBy                         string   `json:"budget_by,omitempty"                           jsonschema:"how the budget is tracked: project, project_cost, task, task_fees, person, or none"`
	BudgetIsMonthly                  *bool    `json:"budget_is_monthly,omitempty"                   jsonschema:"whether the budget resets every month"`
	NotifyWhenOverBudget             *bool    `json:"notify_when_over_budget,omitempty"             jsonschema:"whether to email project managers when the budget threshold is reached"`
	OverBudgetNotificationPercentage *float64 `json:"over_budget_notification_percentage,omitempty" jsonschema:"budget percentage that triggers the over-budget email"`
	ShowBudgetToAll                  *bool    `json:"show_budget_to_all,omitempty"                  jsonschema:"whether all assigned users can see the budget"`
	CostBudget                       *float64 `json:"cost_budget,omitempty"                         jsonschema:"budget in monetary terms"`
	CostBudgetIncludeExpenses        *bool    `json:"cost_budget_include_expenses,omitempty"        jsonschema:"whether expenses count against the cost budget"`
	HourlyRate                       *float64 `json:"hourly_rate,omitempty"                         jsonschema:"hourly rate when billing by Project"`
	Fee                              *float64 `json:"fee,omitempty"                                 jsonschema:"fee for fixed fee projects"`
	Notes                            string   `json:"notes,omitempty"                               jsonschema:"project notes"`
	StartsOn                         string   `json:"starts_on,omitempty"                           jsonschema:"start date in YYYY-MM-DD format"`
	EndsOn                           string   `json:"ends_on,omitempty"                             jsonschema:"end date in YYYY-MM-DD format"`
}

// UpdateProjectInput is the input for the update_project tool.
type UpdateProjectInput struct {
	ProjectID                        int64    `json:"project_id"                                    jsonschema:"ID of the project to update"`
	ClientID                         *int64   `json:"client_id,omitempty"                           jsonschema:"move the project to this client"`
	Name                             *string  `json:"name,omitempty"                                jsonschema:"new project name"`
	IsBillable                       *bool    `json:"is_billable,omitempty"                         jsonschema:"new billable state"`
	Code                             *string  `json:"code,omitempty"                                jsonschema:"new project code"`
	IsActive                         *bool    `json:"is_active,omitempty"                           jsonschema:"new active state"`
	IsFixedFee                       *bool    `json:"is_fixed_fee,omitempty"                        jsonschema:"new fixed fee state"`
	BillBy                           *string  `json:"bill_by,omitempty"                             jsonschema:"new billing mode: Project, Tasks, People, or none"`
	Budget                           *float64 `json:"budget,omitempty"                              jsonschema:"new budget in hours"`
	BudgetBy                         *string  `json:"budget_by,omitempty"                           jsonschema:"new budget tracking mode"`
	BudgetIsMonthly                  *bool    `json:"budget_is_monthly,omitempty"                   jsonschema:"new monthly budget reset state"`
	NotifyWhenOverBudget             *bool    `json:"notify_when_over_budget,omitempty"             jsonschema:"new over-budget notification state"`
	OverBudgetNotificationPercentage *float64 `json:"over_budget_notification_percentage,omitempty" jsonschema:"new over-budget notification percentage"`
	ShowBudgetToAll                  *bool    `json:"show_budget_to_all,omitempty"                  jsonschema:"new budget visibility state"`
	CostBudget                       *float64 `json:"cost_budget,omitempty"                         jsonschema:"new cost budget"`
	CostBudgetIncludeExpenses        *bool    `json:"cost_budget_include_expenses,omitempty"        jsonschema:"new cost budget expense inclusion state"`
	HourlyRate                       *float64 `json:"hourly_rate,omitempty"                         jsonschema:"new hourly rate"`
	Fee                              *float64 `json:"fee,omitempty"                                 jsonschema:"new fixed fee"`
	Notes                            *string  `json:"notes,omitempty"                               jsonschema:"new project notes"`
	StartsOn                         *string  `json:"starts_on,omitempty"                           jsonschema:"new start date in YYYY-MM-DD format"`
	EndsOn                           *string  `json:"ends_on,omitempty"                             jsonschema:"new end date in YYYY-MM-DD format"`
}

// DeleteProjectInput is the input for the delete_project tool.
type DeleteProjectInput struct {
	ProjectID int64 `json:"project_id" jsonschema:"ID of the project to delete"`
}

// ListAssignmentsInput is the input for the project assignment listing
// tools.
type ListAssignmentsInput struct {
	ProjectID int64 `json:"project_id"         jsonschema:"ID of the project whose assignments to list"`
	Page      int   `json:"page,omitempty"     jsonschema:"page number to fetch, starting at 1"`
	PerPage   int   `json:"per_page,omitempty" jsonschema:"records per page, 1-2000"`
}

func handleListProjects(api *harvest.API) mcp.ToolHandlerFor[ListProjectsInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListProjectsInput) (*mcp.CallToolResult, any, error) {
		list, err := api.ListProjects(ctx, harvest.ProjectListParams{
			IsActive:     input.IsActive,
			ClientID:     input.ClientID,
			UpdatedSince: input.UpdatedSince,
			ListParams:   harvest.ListParams{Page: input.Page, PerPage: input.PerPage},
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

func handleGetProject(api *harvest.API) mcp.ToolHandlerFor[GetProjectInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetProjectInput) (*mcp.CallToolResult, any, error) {
		project, err := api.GetProject(ctx, input.ProjectID)
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(project), nil, nil
	}
}

func handleCreateProject(api *harvest.API) mcp.ToolHandlerFor[CreateProjectInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateProjectInput) (*mcp.CallToolResult, any, error) {
		project, err := api.CreateProject(ctx, harvest.ProjectCreate{
			ClientID:                         input.ClientID,
			Name:                             input.Name,
			IsBillable:                       input.IsBillable,
			Code:                             input.Code,
			IsActive:                         input.IsActive,
			IsFixedFee:                       input.IsFixedFee,
			BillBy:                           input.BillBy,
			Budget:                           input.Budget,
			BudgetBy:                         input.BudgetBy,
			BudgetIsMonthly:                  input.BudgetIsMonthly,
			NotifyWhenOverBudget:             input.NotifyWhenOverBudget,
			OverBudgetNotificationPercentage: input.OverBudgetNotificationPercentage,
			ShowBudgetToAll:                  input.ShowBudgetToAll,
			CostBudget:                       input.CostBudget,
			CostBudgetIncludeExpenses:        input.CostBudgetIncludeExpenses,
			HourlyRate:                       input.HourlyRate,
			Fee:                              input.Fee,
			Notes:                            input.Notes,
			StartsOn:                         input.StartsOn,
			EndsOn:                           input.EndsOn,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(project), nil, nil
	}
}

func handleUpdateProject(api *harvest.API) mcp.ToolHandlerFor[UpdateProjectInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateProjectInput) (*mcp.CallToolResult, any, error) {
		project, err := api.UpdateProject(ctx, input.ProjectID, harvest.ProjectUpdate{
			ClientID:                         input.ClientID,
			Name:                             input.Name,
			IsBillable:                       input.IsBillable,
			Code:                             input.Code,
			IsActive:                         input.IsActive,
			IsFixedFee:                       input.IsFixedFee,
			BillBy:                           input.BillBy,
			Budget:                           input.Budget,
			BudgetBy:                         input.BudgetBy,
			BudgetIsMonthly:                  input.BudgetIsMonthly,
			NotifyWhenOverBudget:             input.NotifyWhenOverBudget,
			OverBudgetNotificationPercentage: input.OverBudgetNotificationPercentage,
			ShowBudgetToAll:                  input.ShowBudgetToAll,
			CostBudget:                       input.CostBudget,
			CostBudgetIncludeExpenses:        input.CostBudgetIncludeExpenses,
			HourlyRate:                       input.HourlyRate,
			Fee:                              input.Fee,
			Notes:                            input.Notes,
			StartsOn:                         input.StartsOn,
			EndsOn:                           input.EndsOn,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(project), nil, nil
	}
}

func handleDeleteProject(api *harvest.API) mcp.ToolHandlerFor[DeleteProjectInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeleteProjectInput) (*mcp.CallToolResult, any, error) {
		if err := api.DeleteProject(ctx, input.ProjectID); err != nil {
			return errorResult(err), nil, nil
		}
		return deletedResult("Project", input.ProjectID), nil, nil
	}
}

func handleListTaskAssignments(api *harvest.API) mcp.ToolHandlerFor[ListAssignmentsInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListAssignmentsInput) (*mcp.CallToolResult, any, error) {
		list, err := api.ListTaskAssignments(ctx, input.ProjectID, harvest.ListParams{
			Page:    input.Page,
			PerPage: input.PerPage,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

func handleListUserAssignments(api *harvest.API) mcp.ToolHandlerFor[ListAssignmentsInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListAssignmentsInput) (*mcp.CallToolResult, any, error) {
		list, err := api.ListUserAssignments(ctx, input.ProjectID, harvest.ListParams{
			Page:    input.Page,
			PerPage: input.PerPage,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}
