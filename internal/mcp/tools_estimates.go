package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ianaleck/harvest-mcp-server/internal/harvest"
)

func registerEstimateTools(r *registry, api *harvest.API) {
	addTool(r, &mcp.Tool{
		Name:        "list_estimates",
		Description: "List estimates. Filter by client, state, issue date range, or last update time; results are paginated.",
		Annotations: readOnlyAnnotations(),
	}, handleListEstimates(api))

	addTool(r, &mcp.Tool{
		Name:        "get_estimate",
		Description: "Get a single estimate by its ID, including line items.",
		Annotations: readOnlyAnnotations(),
	}, handleGetEstimate(api))

	addTool(r, &mcp.Tool{
		Name:        "create_estimate",
		Description: "Create an estimate for a client. Line items, taxes, and a discount are optional.",
		Annotations: writeAnnotations(),
	}, handleCreateEstimate(api))

	addTool(r, &mcp.Tool{
		Name:        "update_estimate",
		Description: "Update an estimate. Only the fields provided are changed; a line_items value replaces all existing lines.",
		Annotations: writeAnnotations(),
	}, handleUpdateEstimate(api))

	addTool(r, &mcp.Tool{
		Name:        "delete_estimate",
		Description: "Delete an estimate.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteEstimate(api))
}

// ListEstimatesInput is the input for the list_estimates tool.
type ListEstimatesInput struct {
	ClientID     int64  `json:"client_id,omitempty"     jsonschema:"only return estimates for this client"`
	State        string `json:"state,omitempty"         jsonschema:"only return estimates in this state: draft, sent, accepted, or declined"`
	UpdatedSince string `json:"updated_since,omitempty" jsonschema:"only return estimates updated since this ISO-8601 datetime"`
	From         string `json:"from,omitempty"          jsonschema:"only return estimates issued on or after this date, YYYY-MM-DD"`
	To           string `json:"to,omitempty"            jsonschema:"only return estimates issued on or before this date, YYYY-MM-DD"`
	Page         int    `json:"page,omitempty"          jsonschema:"page number to fetch, starting at 1"`
	PerPage      int    `json:"per_page,omitempty"      jsonschema:"records per page, 1-2000"`
}

// GetEstimateInput is the input for the get_estimate tool.
type GetEstimateInput struct {
	EstimateID int64 `json:"estimate_id" jsonschema:"ID of the estimate to fetch"`
}

// EstimateLineItemInput is one line of an estimate create or update.
type EstimateLineItemInput struct {
	Kind        string   `json:"kind"                  jsonschema:"line item kind, such as Service or Product"`
	Description string   `json:"description,omitempty" jsonschema:"line item description"`
	Quantity    *float64 `json:"quantity,omitempty"    jsonschema:"unit count, defaults to 1"`
	UnitPrice   float64  `json:"unit_price"            jsonschema:"price per unit"`
	Taxed       *bool    `json:"taxed,omitempty"       jsonschema:"whether the first tax rate applies to this line"`
	Taxed2      *bool    `json:"taxed2,omitempty"      jsonschema:"whether the second tax rate applies to this line"`
}

// CreateEstimateInput is the input for the create_estimate tool.
type CreateEstimateInput struct {
	ClientID      int64                   `json:"client_id"                jsonschema:"ID of the client the estimate is for"`
	Subject       string                  `json:"subject,omitempty"        jsonschema:"estimate subject line"`
	Notes         string                  `json:"notes,omitempty"          jsonschema:"notes shown on the estimate"`
	Number        string                  `json:"number,omitempty"         jsonschema:"estimate number, auto-generated when omitted"`
	PurchaseOrder string                  `json:"purchase_order,omitempty" jsonschema:"purchase order number"`
	Currency      string                  `json:"currency,omitempty"       jsonschema:"3-letter currency code, defaults to the client currency"`
	IssueDate     string                  `json:"issue_date,omitempty"     jsonschema:"issue date, YYYY-MM-DD, defaults to today"`
	Tax           *float64                `json:"tax,omitempty"            jsonschema:"first tax rate percentage, 0-100"`
	Tax2          *float64                `json:"tax2,omitempty"           jsonschema:"second tax rate percentage, 0-100"`
	Discount      *float64                `json:"discount,omitempty"       jsonschema:"discount percentage, 0-100"`
	LineItems     []EstimateLineItemInput `json:"line_items,omitempty"     jsonschema:"lines quoted on the estimate"`
}

// UpdateEstimateInput is the input for the update_estimate tool.
type UpdateEstimateInput struct {
	EstimateID    int64                   `json:"estimate_id"              jsonschema:"ID of the estimate to update"`
	ClientID      *int64                  `json:"client_id,omitempty"      jsonschema:"move the estimate to this client"`
	Subject       *string                 `json:"subject,omitempty"        jsonschema:"new subject line"`
	Notes         *string                 `json:"notes,omitempty"          jsonschema:"new notes"`
	Number        *string                 `json:"number,omitempty"         jsonschema:"new estimate number"`
	PurchaseOrder *string                 `json:"purchase_order,omitempty" jsonschema:"new purchase order number"`
	Currency      *string                 `json:"currency,omitempty"       jsonschema:"new 3-letter currency code"`
	IssueDate     *string                 `json:"issue_date,omitempty"     jsonschema:"new issue date, YYYY-MM-DD"`
	Tax           *float64                `json:"tax,omitempty"            jsonschema:"new first tax rate percentage, 0-100"`
	Tax2          *float64                `json:"tax2,omitempty"           jsonschema:"new second tax rate percentage, 0-100"`
	Discount      *float64                `json:"discount,omitempty"       jsonschema:"new discount percentage, 0-100"`
	LineItems     []EstimateLineItemInput `json:"line_items,omitempty"     jsonschema:"replacement lines, existing lines are removed"`
}

// DeleteEstimateInput is the input for the delete_estimate tool.
type DeleteEstimateInput struct {
	EstimateID int64 `json:"estimate_id" jsonschema:"ID of the estimate to delete"`
}

func toEstimateLineItems(items []EstimateLineItemInput) []harvest.EstimateLineItemInput {
	if items == nil {
		return nil
	}
	out := make([]harvest.EstimateLineItemInput, 0, len(items))
	for _, item := range items {
		out = append(out, harvest.EstimateLineItemInput{
			Kind:        item.Kind,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Taxed:       item.Taxed,
			Taxed2:      item.Taxed2,
		})
	}
	return out
}

func handleListEstimates(api *harvest.API) mcp.ToolHandlerFor[ListEstimatesInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListEstimatesInput) (*mcp.CallToolResult, any, error) {
		list, err := api.ListEstimates(ctx, harvest.EstimateListParams{
			ClientID:     input.ClientID,
			State:        input.State,
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

func handleGetEstimate(api *harvest.API) mcp.ToolHandlerFor[GetEstimateInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetEstimateInput) (*mcp.CallToolResult, any, error) {
		estimate, err := api.GetEstimate(ctx, input.EstimateID)
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(estimate), nil, nil
	}
}

func handleCreateEstimate(api *harvest.API) mcp.ToolHandlerFor[CreateEstimateInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateEstimateInput) (*mcp.CallToolResult, any, error) {
		estimate, err := api.CreateEstimate(ctx, harvest.EstimateCreate{
			ClientID:      input.ClientID,
			Subject:       input.Subject,
			Notes:         input.Notes,
			Number:        input.Number,
			PurchaseOrder: input.PurchaseOrder,
			Currency:      input.Currency,
			IssueDate:     input.IssueDate,
			Tax:           input.Tax,
			Tax2:          input.Tax2,
			Discount:      input.Discount,
			LineItems:     toEstimateLineItems(input.LineItems),
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(estimate), nil, nil
	}
}

func handleUpdateEstimate(api *harvest.API) mcp.ToolHandlerFor[UpdateEstimateInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateEstimateInput) (*mcp.CallToolResult, any, error) {
		estimate, err := api.UpdateEstimate(ctx, input.EstimateID, harvest.EstimateUpdate{
			ClientID:      input.ClientID,
			Subject:       input.Subject,
			Notes:         input.Notes,
			Number:        input.Number,
			PurchaseOrder: input.PurchaseOrder,
			Currency:      input.Currency,
			IssueDate:     input.IssueDate,
			Tax:           input.Tax,
			Tax2:          input.Tax2,
			Discount:      input.Discount,
			LineItems:     toEstimateLineItems(input.LineItems),
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(estimate), nil, nil
	}
}

func handleDeleteEstimate(api *harvest.API) mcp.ToolHandlerFor[DeleteEstimateInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeleteEstimateInput) (*mcp.CallToolResult, any, error) {
		if err := api.DeleteEstimate(ctx, input.EstimateID); err != nil {
			return errorResult(err), nil, nil
		}
		return deletedResult("Estimate", input.EstimateID), nil, nil
	}
}
