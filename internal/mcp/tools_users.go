package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ianaleck/harvest-mcp-server/internal/harvest"
)

func registerUserTools(r *registry, api *harvest.API) {
	addTool(r, &mcp.Tool{
		Name:        "list_users",
		Description: "List users in the Harvest account. Filter by active state or last update time; results are paginated.",
		Annotations: readOnlyAnnotations(),
	}, handleListUsers(api))

	addTool(r, &mcp.Tool{
		Name:        "get_user",
		Description: "Get a single user by their ID.",
		Annotations: readOnlyAnnotations(),
	}, handleGetUser(api))

	addTool(r, &mcp.Tool{
		Name:        "get_current_user",
		Description: "Get the user the configured access token belongs to. Useful for checking credentials and discovering your own user ID.",
		Annotations: readOnlyAnnotations(),
	}, handleGetCurrentUser(api))

	addTool(r, &mcp.Tool{
		Name:        "create_user",
		Description: "Invite a new user to the account. Requires first_name, last_name, and email.",
		Annotations: writeAnnotations(),
	}, handleCreateUser(api))

	addTool(r, &mcp.Tool{
		Name:        "update_user",
		Description: "Update a user. Only the fields provided are changed.",
		Annotations: writeAnnotations(),
	}, handleUpdateUser(api))

	addTool(r, &mcp.Tool{
		Name:        "delete_user",
		Description: "Delete a user. Fails if the user has time entries or expenses; archive instead in that case.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteUser(api))
}

// ListUsersInput is the input for the list_users tool.
type ListUsersInput struct {
	IsActive     *bool  `json:"is_active,omitempty"     jsonschema:"true for active users only, false for archived only"`
	UpdatedSince string `json:"updated_since,omitempty" jsonschema:"only return users updated since this ISO-8601 datetime"`
	Page         int    `json:"page,omitempty"          jsonschema:"page number to fetch, starting at 1"`
	PerPage      int    `json:"per_page,omitempty"      jsonschema:"records per page, 1-2000"`
}

// GetUserInput is the input for the get_user tool.
type GetUserInput struct {
	UserID int64 `json:"user_id" jsonschema:"ID of the user to fetch"`
}

// GetCurrentUserInput is the input for the get_current_user tool.
type GetCurrentUserInput struct{}

// CreateUserInput is the input for the create_user tool.
type CreateUserInput struct {
	FirstName                    string   `json:"first_name"                                  jsonschema:"first name of the user"`
	LastName                     string   `json:"last_name"                                   jsonschema:"last name of the user"`
	Email                        string   `json:"email"                                       jsonschema:"email address of the user"`
	Timezone                     string   `json:"timezone,omitempty"                          jsonschema:"user timezone, defaults to the company timezone"`
	HasAccessToAllFutureProjects *bool    `json:"has_access_to_all_future_projects,omitempty" jsonschema:"whether the user is assigned to new projects automatically"`
	IsContractor                 *bool    `json:"is_contractor,omitempty"                     jsonschema:"whether the user is a contractor"`
	IsActive                     *bool    `json:"is_active,omitempty"                         jsonschema:"whether the user is active, defaults to true"`
	WeeklyCapacity               *int     `json:"weekly_capacity,omitempty"                   jsonschema:"working capacity in seconds per week"`
	DefaultHourlyRate            *float64 `json:"default_hourly_rate,omitempty"               jsonschema:"default billable rate for the user"`
	CostRate                     *float64 `json:"cost_rate,omitempty"                         jsonschema:"internal cost rate for the user"`
	Roles                        []string `json:"roles,omitempty"                             jsonschema:"role names assigned to the user"`
}

// UpdateUserInput is the input for the update_user tool.
type UpdateUserInput struct {
	UserID                       int64    `json:"user_id"                                     jsonschema:"ID of the user to update"`
	FirstName                    *string  `json:"first_name,omitempty"                        jsonschema:"new first name"`
	LastName                     *string  `json:"last_name,omitempty"                         jsonschema:"new last name"`
	Email                        *string  `json:"email,omitempty"                             jsonschema:"new email address"`
	Timezone                     *string  `json:"timezone,omitempty"                          jsonschema:"new timezone"`
	HasAccessToAllFutureProjects *bool    `json:"has_access_to_all_future_projects,omitempty" jsonschema:"new automatic project assignment state"`
	IsContractor                 *bool    `json:"is_contractor,omitempty"                     jsonschema:"new contractor state"`
	IsActive                     *bool    `json:"is_active,omitempty"                         jsonschema:"new active state"`
	WeeklyCapacity               *int     `json:"weekly_capacity,omitempty"                   jsonschema:"new working capacity in seconds per week"`
	DefaultHourlyRate            *float64 `json:"default_hourly_rate,omitempty"               jsonschema:"new default billable rate"`
	CostRate                     *float64 `json:"cost_rate,omitempty"                         jsonschema:"new internal cost rate"`
	Roles                        []string `json:"roles,omitempty"                             jsonschema:"replacement role names"`
}

// DeleteUserInput is the input for the delete_user tool.
type DeleteUserInput struct {
	UserID int64 `json:"user_id" jsonschema:"ID of the user to delete"`
}

func handleListUsers(api *harvest.API) mcp.ToolHandlerFor[ListUsersInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListUsersInput) (*mcp.CallToolResult, any, error) {
		list, err := api.ListUsers(ctx, harvest.UserListParams{
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

func handleGetUser(api *harvest.API) mcp.ToolHandlerFor[GetUserInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetUserInput) (*mcp.CallToolResult, any, error) {
		user, err := api.GetUser(ctx, input.UserID)
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(user), nil, nil
	}
}

func handleGetCurrentUser(api *harvest.API) mcp.ToolHandlerFor[GetCurrentUserInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ GetCurrentUserInput) (*mcp.CallToolResult, any, error) {
		user, err := api.GetCurrentUser(ctx)
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(user), nil, nil
	}
}

func handleCreateUser(api *harvest.API) mcp.ToolHandlerFor[CreateUserInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateUserInput) (*mcp.CallToolResult, any, error) {
		user, err := api.CreateUser(ctx, harvest.UserCreate{
			FirstName:                    input.FirstName,
			LastName:                     input.LastName,
			Email:                        input.Email,
			Timezone:                     input.Timezone,
			HasAccessToAllFutureProjects: input.HasAccessToAllFutureProjects,
			IsContractor:                 input.IsContractor,
			IsActive:                     input.IsActive,
			WeeklyCapacity:               input.WeeklyCapacity,
			DefaultHourlyRate:            input.DefaultHourlyRate,
			CostRate:                     input.CostRate,
			Roles:                        input.Roles,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(user), nil, nil
	}
}

func handleUpdateUser(api *harvest.API) mcp.ToolHandlerFor[UpdateUserInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateUserInput) (*mcp.CallToolResult, any, error) {
		user, err := api.UpdateUser(ctx, input.UserID, harvest.UserUpdate{
			FirstName:                    input.FirstName,
			LastName:                     input.LastName,
			Email:                        input.Email,
			Timezone:                     input.Timezone,
			HasAccessToAllFutureProjects: input.HasAccessToAllFutureProjects,
			IsContractor:                 input.IsContractor,
			IsActive:                     input.IsActive,
			WeeklyCapacity:               input.WeeklyCapacity,
			DefaultHourlyRate:            input.DefaultHourlyRate,
			CostRate:                     input.CostRate,
			Roles:                        input.Roles,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(user), nil, nil
	}
}

func handleDeleteUser(api *harvest.API) mcp.ToolHandlerFor[DeleteUserInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeleteUserInput) (*mcp.CallToolResult, any, error) {
		if err := api.DeleteUser(ctx, input.UserID); err != nil {
			return errorResult(err), nil, nil
		}
		return deletedResult("User", input.UserID), nil, nil
	}
}
