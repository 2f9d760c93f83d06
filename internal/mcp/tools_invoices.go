package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ianaleck/harvest-mcp-server/internal/harvest"
)

func registerInvoiceTools(r *registry, api *harvest.API) {
	addTool(r, &mcp.Tool{
		Name:        "list_invoices",
		Description: "List invoices. Filter by client, project, state, issue date range, or last update time; results are paginated.",
		Annotations: readOnlyAnnotations(),
	}, handleListInvoices(api))

	addTool(r, &mcp.Tool{
		Name:        "get_invoice",
		Description: "Get a single invoice by its ID, including line items.",
		Annotations: readOnlyAnnotations(),
	}, handleGetInvoice(api))

	addTool(r, &mcp.Tool{
		Name:        "create_invoice",
		Description: "Create an invoice for a client. Line items, taxes, and a discount are optional.",
		Annotations: writeAnnotations(),
	}, handleCreateInvoice(api))

	addTool(r, &mcp.Tool{
		Name:        "update_invoice",
		Description: "Update an invoice. Only the fields provided are changed; a line_items value replaces all existing lines.",
		Annotations: writeAnnotations(),
	}, handleUpdateInvoice(api))

	addTool(r, &mcp.Tool{
		Name:        "delete_invoice",
		Description: "Delete an invoice.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteInvoice(api))
}

// ListInvoicesInput is the input for the list_invoices tool.
type ListInvoicesInput struct {
	ClientID     int64  `json:"client_id,omitempty"     jsonschema:"only return invoices for this client"`
	ProjectID    int64  `json:"project_id,omitempty"    jsonschema:"only return invoices with line items for this project"`
	State        string `json:"state,omitempty"         jsonschema:"only return invoices in this state: draft, open, paid, or closed"`
	UpdatedSince string `json:"updated_since,omitempty" jsonschema:"only return invoices updated since this ISO-8601 datetime"`
	From         string `json:"from,omitempty"          jsonschema:"only return invoices issued on or after this date, YYYY-MM-DD"`
	To           string `json:"to,omitempty"            jsonschema:"only return invoices issued on or before this date, YYYY-MM-DD"`
	Page         int    `json:"page,omitempty"          jsonschema:"page number to fetch, starting at 1"`
	PerPage      int    `json:"per_page,omitempty"      jsonschema:"records per page, 1-2000"`
}

// GetInvoiceInput is the input for the get_invoice tool.
type GetInvoiceInput struct {
	InvoiceID int64 `json:"invoice_id" jsonschema:"ID of the invoice to fetch"`
}

// InvoiceLineItemInput is one line of an invoice create or update.
type InvoiceLineItemInput struct {
	ProjectID   *int64   `json:"project_id,omitempty"  jsonschema:"project the line bills for"`
	Kind        string   `json:"kind"                  jsonschema:"line item kind, such as Service or Product"`
	Description string   `json:"description,omitempty" jsonschema:"line item description"`
	Quantity    *float64 `json:"quantity,omitempty"    jsonschema:"unit count, defaults to 1"`
	UnitPrice   float64  `json:"unit_price"            jsonschema:"price per unit"`
	Taxed       *bool    `json:"taxed,omitempty"       jsonschema:"whether the first tax rate applies to this line"`
	Taxed2      *bool    `json:"taxed2,omitempty"      jsonschema:"whether the second tax rate applies to this line"`
}

// CreateInvoiceInput is the input for the create_invoice tool.
type CreateInvoiceInput struct {
	ClientID      int64                  `json:"client_id"                jsonschema:"ID of the client to invoice"`
	Subject       string                 `json:"subject,omitempty"        jsonschema:"invoice subject line"`
	Notes         string                 `json:"notes,omitempty"          jsonschema:"notes shown on the invoice"`
	Number        string                 `json:"number,omitempty"         jsonschema:"invoice number, auto-generated when omitted"`
	PurchaseOrder string                 `json:"purchase_order,omitempty" jsonschema:"purchase order number"`
	Currency      string                 `json:"currency,omitempty"       jsonschema:"3-letter currency code, defaults to the client currency"`
	IssueDate     string                 `json:"issue_date,omitempty"     jsonschema:"issue date, YYYY-MM-DD, defaults to today"`
	DueDate       string                 `json:"due_date,omitempty"       jsonschema:"due date, YYYY-MM-DD, derived from payment_term when omitted"`
	PaymentTerm   string                 `json:"payment_term,omitempty"   jsonschema:"payment terms, such as upon receipt or net 30"`
	Tax           *float64               `json:"tax,omitempty"            jsonschema:"first tax rate percentage, 0-100"`
	Tax2          *float64               `json:"tax2,omitempty"           jsonschema:"second tax rate percentage, 0-100"`
	Discount      *float64               `json:"discount,omitempty"       jsonschema:"discount percentage, 0-100"`
	LineItems     []InvoiceLineItemInput `json:"line_items,omitempty"     jsonschema:"lines to bill on the invoice"`
}

// UpdateInvoiceInput is the input for the update_invoice tool.
type UpdateInvoiceInput struct {
	InvoiceID     int64                  `json:"invoice_id"               jsonschema:"ID of the invoice to update"`
	ClientID      *int64                 `json:"client_id,omitempty"      jsonschema:"move the invoice to this client"`
	Subject       *string                `json:"subject,omitempty"        jsonschema:"new subject line"`
	Notes         *string                `json:"notes,omitempty"          jsonschema:"new notes"`
	Number        *string                `json:"number,omitempty"         jsonschema:"new invoice number"`
	PurchaseOrder *string                `json:"purchase_order,omitempty" jsonschema:"new purchase order number"`
	Currency      *string                `json:"currency,omitempty"       jsonschema:"new 3-letter currency code"`
	IssueDate     *string                `json:"issue_date,omitempty"     jsonschema:"new issue date, YYYY-MM-DD"`
	DueDate       *string                `json:"due_date,omitempty"       jsonschema:"new due date, YYYY-MM-DD"`
	PaymentTerm   *string                `json:"payment_term,omitempty"   jsonschema:"new payment terms"`
	Tax           *float64               `json:"tax,omitempty"            jsonschema:"new first tax rate percentage, 0-100"`
	Tax2          *float64               `json:"tax2,omitempty"           jsonschema:"new second tax rate percentage, 0-100"`
	Discount      *float64               `json:"discount,omitempty"       jsonschema:"new discount percentage, 0-100"`
	LineItems     []InvoiceLineItemInput `json:"line_items,omitempty"     jsonschema:"replacement lines, existing lines are removed"`
}

// DeleteInvoiceInput is the input for the delete_invoice tool.
type DeleteInvoiceInput struct {
	InvoiceID int64 `json:"invoice_id" jsonschema:"ID of the invoice to delete"`
}

func toInvoiceLineItems(items []InvoiceLineItemInput) []harvest.InvoiceLineItemInput {
	if items == nil {
		return nil
	}
	out := make([]harvest.InvoiceLineItemInput, 0, len(items))
	for _, item := range items {
		out = append(out, harvest.InvoiceLineItemInput{
			ProjectID:   item.ProjectID,
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

func handleListInvoices(api *harvest.API) mcp.ToolHandlerFor[ListInvoicesInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListInvoicesInput) (*mcp.CallToolResult, any, error) {
		list, err := api.ListInvoices(ctx, harvest.InvoiceListParams{
			ClientID:     input.ClientID,
			ProjectID:    input.ProjectID,
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

func handleGetInvoice(api *harvest.API) mcp.ToolHandlerFor[GetInvoiceInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetInvoiceInput) (*mcp.CallToolResult, any, error) {
		invoice, err := api.GetInvoice(ctx, input.InvoiceID)
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(invoice), nil, nil
	}
}

func handleCreateInvoice(api *harvest.API) mcp.ToolHandlerFor[CreateInvoiceInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateInvoiceInput) (*mcp.CallToolResult, any, error) {
		invoice, err := api.CreateInvoice(ctx, harvest.InvoiceCreate{
			ClientID:      input.ClientID,
			Subject:       input.Subject,
			Notes:         input.Notes,
			Number:        input.Number,
			PurchaseOrder: input.PurchaseOrder,
			Currency:      input.Currency,
			IssueDate:     input.IssueDate,
			DueDate:       input.DueDate,
			PaymentTerm:   input.PaymentTerm,
			Tax:           input.Tax,
			Tax2:          input.Tax2,
			Discount:      input.Discount,
			LineItems:     toInvoiceLineItems(input.LineItems),
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(invoice), nil, nil
	}
}

func handleUpdateInvoice(api *harvest.API) mcp.ToolHandlerFor[UpdateInvoiceInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateInvoiceInput) (*mcp.CallToolResult, any, error) {
		invoice, err := api.UpdateInvoice(ctx, input.InvoiceID, harvest.InvoiceUpdate{
			ClientID:      input.ClientID,
			Subject:       input.Subject,
			Notes:         input.Notes,
			Number:        input.Number,
			PurchaseOrder: input.PurchaseOrder,
			Currency:      input.Currency,
			IssueDate:     input.IssueDate,
			DueDate:       input.DueDate,
			PaymentTerm:   input.PaymentTerm,
			Tax:           input.Tax,
			Tax2:          input.Tax2,
			Discount:      input.Discount,
			LineItems:     toInvoiceLineItems(input.LineItems),
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(invoice), nil, nil
	}
}

func handleDeleteInvoice(api *harvest.API) mcp.ToolHandlerFor[DeleteInvoiceInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeleteInvoiceInput) (*mcp.CallToolResult, any, error) {
		if err := api.DeleteInvoice(ctx, input.InvoiceID); err != nil {
			return errorResult(err), nil, nil
		}
		return deletedResult("Invoice", input.InvoiceID), nil, nil
	}
}
