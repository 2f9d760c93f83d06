package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ianaleck/harvest-mcp-server/internal/harvest"
)

func registerExpenseTools(r *registry, api *harvest.API) {
	addTool(r, &mcp.Tool{
		Name:        "list_expenses",
		Description: "List expenses. Filter by user, client, project, date range, billed state, or last update time; results are paginated.",
		Annotations: readOnlyAnnotations(),
	}, handleListExpenses(api))

	addTool(r, &mcp.Tool{
		Name:        "get_expense",
		Description: "Get a single expense by its ID.",
		Annotations: readOnlyAnnotations(),
	}, handleGetExpense(api))

	addTool(r, &mcp.Tool{
		Name:        "create_expense",
		Description: "Create an expense on a project. The expense category determines whether a unit count or a total cost applies.",
		Annotations: writeAnnotations(),
	}, handleCreateExpense(api))

	addTool(r, &mcp.Tool{
		Name:        "update_expense",
		Description: "Update an expense. Only the fields provided are changed.",
		Annotations: writeAnnotations(),
	}, handleUpdateExpense(api))

	addTool(r, &mcp.Tool{
		Name:        "delete_expense",
		Description: "Delete an expense.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteExpense(api))
}

// ListExpensesInput is the input for the list_expenses tool.
type ListExpensesInput struct {
	UserID       int64  `json:"user_id,omitempty"       jsonschema:"only return expenses recorded by this user"`
	ClientID     int64  `json:"client_id,omitempty"     jsonschema:"only return expenses for this client"`
	ProjectID    int64  `json:"project_id,omitempty"    jsonschema:"only return expenses for this project"`
	IsBilled     *bool  `json:"is_billed,omitempty"     jsonschema:"true for invoiced expenses only, false for uninvoiced only"`
	UpdatedSince string `json:"updated_since,omitempty" jsonschema:"only return expenses updated since this ISO-8601 datetime"`
	From         string `json:"from,omitempty"          jsonschema:"only return expenses spent on or after this date, YYYY-MM-DD"`
	To           string `json:"to,omitempty"            jsonschema:"only return expenses spent on or before this date, YYYY-MM-DD"`
	Page         int    `json:"page,omitempty"          jsonschema:"page number to fetch, starting at 1"`
	PerPage      int    `json:"per_page,omitempty"      jsonschema:"records per page, 1-2000"`
}

// GetExpenseInput is the input for the get_expense tool.
type GetExpenseInput struct {
	ExpenseID int64 `json:"expense_id" jsonschema:"ID of the expense to fetch"`
}

// CreateExpenseInput is the input for the create_expense tool.
type CreateExpenseInput struct {
	ProjectID         int64    `json:"project_id"           jsonschema:"ID of the project the expense belongs to"`
	ExpenseCategoryID int64    `json:"expense_category_id"  jsonschema:"ID of the expense category"`
	SpentDate         string   `json:"spent_date"           jsonschema:"date of the expense, YYYY-MM-DD"`
	UserID            *int64   `json:"user_id,omitempty"    jsonschema:"record the expense for this user instead of the token owner"`
	Units             *float64 `json:"units,omitempty"      jsonschema:"unit count for unit-priced categories such as mileage"`
	TotalCost         *float64 `json:"total_cost,omitempty" jsonschema:"total amount of the expense"`
	Notes             string   `json:"notes,omitempty"      jsonschema:"notes on the expense"`
	Billable          *bool    `json:"billable,omitempty"   jsonschema:"whether the expense is billable, defaults to true"`
}

// UpdateExpenseInput is the input for the update_expense tool.
type UpdateExpenseInput struct {
	ExpenseID         int64    `json:"expense_id"                    jsonschema:"ID of the expense to update"`
	ProjectID         *int64   `json:"project_id,omitempty"          jsonschema:"move the expense to this project"`
	ExpenseCategoryID *int64   `json:"expense_category_id,omitempty" jsonschema:"move the expense to this category"`
	SpentDate         *string  `json:"spent_date,omitempty"          jsonschema:"new spent date, YYYY-MM-DD"`
	Units             *float64 `json:"units,omitempty"               jsonschema:"new unit count"`
	TotalCost         *float64 `json:"total_cost,omitempty"          jsonschema:"new total amount"`
	Notes             *string  `json:"notes,omitempty"               jsonschema:"new notes"`
	Billable          *bool    `json:"billable,omitempty"            jsonschema:"new billable state"`
}

// DeleteExpenseInput is the input for the delete_expense tool.
type DeleteExpenseInput struct {
	ExpenseID int64 `json:"expense_id" jsonschema:"ID of the expense to delete"`
}

func handleListExpenses(api *harvest.API) mcp.ToolHandlerFor[ListExpensesInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListExpensesInput) (*mcp.CallToolResult, any, error) {
		list, err := api.ListExpenses(ctx, harvest.ExpenseListParams{
			UserID:       input.UserID,
			ClientID:     input.ClientID,
			ProjectID:    input.ProjectID,
			IsBilled:     input.IsBilled,
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

func handleGetExpense(api *harvest.API) mcp.ToolHandlerFor[GetExpenseInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetExpenseInput) (*mcp.CallToolResult, any, error) {
		expense, err := api.GetExpense(ctx, input.ExpenseID)
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(expense), nil, nil
	}
}

func handleCreateExpense(api *harvest.API) mcp.ToolHandlerFor[CreateExpenseInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateExpenseInput) (*mcp.CallToolResult, any, error) {
		expense, err := api.CreateExpense(ctx, harvest.ExpenseCreate{
			ProjectID:         input.ProjectID,
			ExpenseCategoryID: input.ExpenseCategoryID,
			SpentDate:         input.SpentDate,
			UserID:            input.UserID,
			Units:             input.Units,
			TotalCost:         input.TotalCost,
			Notes:             input.Notes,
			Billable:          input.Billable,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(expense), nil, nil
	}
}

func handleUpdateExpense(api *harvest.API) mcp.ToolHandlerFor[UpdateExpenseInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateExpenseInput) (*mcp.CallToolResult, any, error) {
		expense, err := api.UpdateExpense(ctx, input.ExpenseID, harvest.ExpenseUpdate{
			ProjectID:         input.ProjectID,
			ExpenseCategoryID: input.ExpenseCategoryID,
			SpentDate:         input.SpentDate,
			Units:             input.Units,
			TotalCost:         input.TotalCost,
			Notes:             input.Notes,
			Billable:          input.Billable,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(expense), nil, nil
	}
}

func handleDeleteExpense(api *harvest.API) mcp.ToolHandlerFor[DeleteExpenseInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeleteExpenseInput) (*mcp.CallToolResult, any, error) {
		if err := api.DeleteExpense(ctx, input.ExpenseID); err != nil {
			return errorResult(err), nil, nil
		}
		return deletedResult("Expense", input.ExpenseID), nil, nil
	}
}
