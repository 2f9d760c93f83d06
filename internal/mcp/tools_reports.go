package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ianaleck/harvest-mcp-server/internal/harvest"
)

func registerReportTools(r *registry, api *harvest.API) {
	addTool(r, &mcp.Tool{
		Name:        "get_time_report",
		Description: "Get a time report grouped by clients, projects, tasks, or team. Walks every page and returns all rows; the window defaults to the trailing report period ending today.",
		Annotations: readOnlyAnnotations(),
	}, handleTimeReport(api))

	addTool(r, &mcp.Tool{
		Name:        "get_expense_report",
		Description: "Get an expense report grouped by clients, projects, categories, or team. Walks every page and returns all rows; the window defaults to the trailing report period ending today.",
		Annotations: readOnlyAnnotations(),
	}, handleExpenseReport(api))

	addTool(r, &mcp.Tool{
		Name:        "get_uninvoiced_report",
		Description: "Get uninvoiced hours, expenses, and amounts per client and project for a date window. Walks every page and returns all rows.",
		Annotations: readOnlyAnnotations(),
	}, handleUninvoicedReport(api))

	addTool(r, &mcp.Tool{
		Name:        "get_project_budget_report",
		Description: "Get budget, spend, and remaining budget per project. This report has no date window; optionally restrict it to active projects.",
		Annotations: readOnlyAnnotations(),
	}, handleProjectBudgetReport(api))
}

// TimeReportInput is the input for the get_time_report tool.
type TimeReportInput struct {
	From    string `json:"from,omitempty"     jsonschema:"start of the window, YYYY-MM-DD, defaults to the trailing report period"`
	To      string `json:"to,omitempty"       jsonschema:"end of the window, YYYY-MM-DD, defaults to today"`
	GroupBy string `json:"group_by,omitempty" jsonschema:"grouping dimension: clients, projects, tasks, or team, defaults to clients"`
}

// ExpenseReportInput is the input for the get_expense_report tool.
type ExpenseReportInput struct {
	From    string `json:"from,omitempty"     jsonschema:"start of the window, YYYY-MM-DD, defaults to the trailing report period"`
	To      string `json:"to,omitempty"       jsonschema:"end of the window, YYYY-MM-DD, defaults to today"`
	GroupBy string `json:"group_by,omitempty" jsonschema:"grouping dimension: clients, projects, categories, or team, defaults to clients"`
}

// UninvoicedReportInput is the input for the get_uninvoiced_report tool.
type UninvoicedReportInput struct {
	From string `json:"from,omitempty" jsonschema:"start of the window, YYYY-MM-DD, defaults to the trailing report period"`
	To   string `json:"to,omitempty"   jsonschema:"end of the window, YYYY-MM-DD, defaults to today"`
}

// ProjectBudgetReportInput is the input for the
// get_project_budget_report tool.
type ProjectBudgetReportInput struct {
	IsActive *bool `json:"is_active,omitempty" jsonschema:"true for active projects only, false for archived only"`
}

func handleTimeReport(api *harvest.API) mcp.ToolHandlerFor[TimeReportInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TimeReportInput) (*mcp.CallToolResult, any, error) {
		report, err := api.GetTimeReport(ctx, harvest.TimeReportParams{
			From:    input.From,
			To:      input.To,
			GroupBy: input.GroupBy,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(report), nil, nil
	}
}

func handleExpenseReport(api *harvest.API) mcp.ToolHandlerFor[ExpenseReportInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ExpenseReportInput) (*mcp.CallToolResult, any, error) {
		report, err := api.GetExpenseReport(ctx, harvest.ExpenseReportParams{
			From:    input.From,
			To:      input.To,
			GroupBy: input.GroupBy,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(report), nil, nil
	}
}

func handleUninvoicedReport(api *harvest.API) mcp.ToolHandlerFor[UninvoicedReportInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UninvoicedReportInput) (*mcp.CallToolResult, any, error) {
		report, err := api.GetUninvoicedReport(ctx, harvest.UninvoicedReportParams{
			From: input.From,
			To:   input.To,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(report), nil, nil
	}
}

func handleProjectBudgetReport(api *harvest.API) mcp.ToolHandlerFor[ProjectBudgetReportInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProjectBudgetReportInput) (*mcp.CallToolResult, any, error) {
		report, err := api.GetProjectBudgetReport(ctx, harvest.ProjectBudgetReportParams{
			IsActive: input.IsActive,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(report), nil, nil
	}
}
