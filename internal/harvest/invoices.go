package harvest

import (
	"context"
	"fmt"
	"net/url"
)

// Invoice is a Harvest invoice record.
type Invoice struct {
	ID                 int64             `json:"id"`
	Client             ClientRef         `json:"client"`
	LineItems          []InvoiceLineItem `json:"line_items"`
	Creator            *UserRef          `json:"creator"`
	ClientKey          string            `json:"client_key"`
	Number             string            `json:"number"`
	PurchaseOrder      string            `json:"purchase_order"`
	Amount             float64           `json:"amount"`
	DueAmount          float64           `json:"due_amount"`
	Tax                *float64          `json:"tax"`
	TaxAmount          float64           `json:"tax_amount"`
	Tax2               *float64          `json:"tax2"`
	Tax2Amount         float64           `json:"tax2_amount"`
	Discount           *float64          `json:"discount"`
	DiscountAmount     float64           `json:"discount_amount"`
	Subject            string            `json:"subject"`
	Notes              string            `json:"notes"`
	Currency           string            `json:"currency"`
	State              string            `json:"state"`
	PeriodStart        string            `json:"period_start"`
	PeriodEnd          string            `json:"period_end"`
	IssueDate          string            `json:"issue_date"`
	DueDate            string            `json:"due_date"`
	PaymentTerm        string            `json:"payment_term"`
	SentAt             string            `json:"sent_at"`
	PaidAt             string            `json:"paid_at"`
	PaidDate           string            `json:"paid_date"`
	ClosedAt           string            `json:"closed_at"`
	RecurringInvoiceID *int64            `json:"recurring_invoice_id"`
	CreatedAt          string            `json:"created_at"`
	UpdatedAt          string            `json:"updated_at"`
}

// InvoiceRef is the abbreviated invoice embedded in other records.
type InvoiceRef struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
}

// InvoiceLineItem is one line of an invoice.
type InvoiceLineItem struct {
	ID          int64       `json:"id,omitempty"`
	Project     *ProjectRef `json:"project,omitempty"`
	Kind        string      `json:"kind"`
	Description string      `json:"description"`
	Quantity    float64     `json:"quantity"`
	UnitPrice   float64     `json:"unit_price"`
	Amount      float64     `json:"amount"`
	Taxed       bool        `json:"taxed"`
	Taxed2      bool        `json:"taxed2"`
}

// InvoiceList is one page of invoices with its pagination envelope.
type InvoiceList struct {
	Invoices []Invoice `json:"invoices"`
	Pagination
}

// InvoiceListParams filter the invoice listing.
type InvoiceListParams struct {
	ClientID     int64
	ProjectID    int64
	State        string
	UpdatedSince string
	From         string
	To           string
	ListParams
}

// Validate checks the filter fields.
func (p InvoiceListParams) Validate() error {
	var probs problems
	probs.oneOf("state", p.State, "draft", "open", "paid", "closed")
	probs.datetime("updated_since", p.UpdatedSince)
	probs.date("from", p.From)
	probs.date("to", p.To)
	return probs.err()
}

func (p InvoiceListParams) query() url.Values {
	q := p.ListParams.query()
	addID(q, "client_id", p.ClientID)
	addID(q, "project_id", p.ProjectID)
	addString(q, "state", p.State)
	addString(q, "updated_since", p.UpdatedSince)
	addString(q, "from", p.From)
	addString(q, "to", p.To)
	return q
}

// InvoiceLineItemInput is one line of an invoice create or update.
type InvoiceLineItemInput struct {
	ProjectID   *int64   `json:"project_id,omitempty"`
	Kind        string   `json:"kind"`
	Description string   `json:"description,omitempty"`
	Quantity    *float64 `json:"quantity,omitempty"`
	UnitPrice   float64  `json:"unit_price"`
	Taxed       *bool    `json:"taxed,omitempty"`
	Taxed2      *bool    `json:"taxed2,omitempty"`
}

// validateLineItems collects problems for a line item slice. Paths are
// indexed so a caller can tell which line failed.
func validateLineItems(p *problems, items []InvoiceLineItemInput) {
	for i, item := range items {
		if item.Kind == "" {
			p.addf("line_items[%d].kind: is required", i)
		}
		if item.UnitPrice < 0 {
			p.addf("line_items[%d].unit_price: must be greater than or equal to 0", i)
		}
		if item.Quantity != nil && *item.Quantity < 0 {
			p.addf("line_items[%d].quantity: must be greater than or equal to 0", i)
		}
		if item.ProjectID != nil && *item.ProjectID <= 0 {
			p.addf("line_items[%d].project_id: must be a positive integer", i)
		}
	}
}

// InvoiceCreate are the fields accepted when creating an invoice.
type InvoiceCreate struct {
	ClientID      int64                  `json:"client_id"`
	Subject       string                 `json:"subject,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	Number        string                 `json:"number,omitempty"`
	PurchaseOrder string                 `json:"purchase_order,omitempty"`
	Currency      string                 `json:"currency,omitempty"`
	IssueDate     string                 `json:"issue_date,omitempty"`
	DueDate       string                 `json:"due_date,omitempty"`
	PaymentTerm   string                 `json:"payment_term,omitempty"`
	Tax           *float64               `json:"tax,omitempty"`
	Tax2          *float64               `json:"tax2,omitempty"`
	Discount      *float64               `json:"discount,omitempty"`
	LineItems     []InvoiceLineItemInput `json:"line_items,omitempty"`
}

// Validate checks the input before any request is sent.
func (in InvoiceCreate) Validate() error {
	var p problems
	p.requireID("client_id", in.ClientID)
	p.currency("currency", in.Currency)
	p.date("issue_date", in.IssueDate)
	p.date("due_date", in.DueDate)
	p.percent("tax", in.Tax)
	p.percent("tax2", in.Tax2)
	p.percent("discount", in.Discount)
	validateLineItems(&p, in.LineItems)
	return p.err()
}

// InvoiceUpdate are the fields accepted when updating an invoice.
// A line_items value replaces lines wholesale when present.
type InvoiceUpdate struct {
	ClientID      *int64                 `json:"client_id,omitempty"`
	Subject       *string                `json:"subject,omitempty"`
	Notes         *string                `json:"notes,omitempty"`
	Number        *string                `json:"number,omitempty"`
	PurchaseOrder *string                `json:"purchase_order,omitempty"`
	Currency      *string                `json:"currency,omitempty"`
	IssueDate     *string                `json:"issue_date,omitempty"`
	DueDate       *string                `json:"due_date,omitempty"`
	PaymentTerm   *string                `json:"payment_term,omitempty"`
	Tax           *float64               `json:"tax,omitempty"`
	Tax2          *float64               `json:"tax2,omitempty"`
	Discount      *float64               `json:"discount,omitempty"`
	LineItems     []InvoiceLineItemInput `json:"line_items,omitempty"`
}

// Validate checks only the fields that are present.
func (in InvoiceUpdate) Validate() error {
	var p problems
	p.optionalID("client_id", in.ClientID)
	if in.Currency != nil {
		p.currency("currency", *in.Currency)
	}
	if in.IssueDate != nil {
		p.date("issue_date", *in.IssueDate)
	}
	if in.DueDate != nil {
		p.date("due_date", *in.DueDate)
	}
	p.percent("tax", in.Tax)
	p.percent("tax2", in.Tax2)
	p.percent("discount", in.Discount)
	validateLineItems(&p, in.LineItems)
	return p.err()
}

// ListInvoices returns one page of invoices.
func (a *API) ListInvoices(ctx context.Context, params InvoiceListParams) (*InvoiceList, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	var out InvoiceList
	if err := a.get(ctx, "/invoices", params.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetInvoice fetches a single invoice by ID.
func (a *API) GetInvoice(ctx context.Context, id int64) (*Invoice, error) {
	if err := checkID("invoice_id", id); err != nil {
		return nil, err
	}
	var out Invoice
	if err := a.get(ctx, fmt.Sprintf("/invoices/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateInvoice creates an invoice and returns the stored record.
func (a *API) CreateInvoice(ctx context.Context, in InvoiceCreate) (*Invoice, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out Invoice
	if err := a.post(ctx, "/invoices", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateInvoice applies the set fields to an existing invoice.
func (a *API) UpdateInvoice(ctx context.Context, id int64, in InvoiceUpdate) (*Invoice, error) {
	if err := checkID("invoice_id", id); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out Invoice
	if err := a.patch(ctx, fmt.Sprintf("/invoices/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteInvoice removes an invoice.
func (a *API) DeleteInvoice(ctx context.Context, id int64) error {
	if err := checkID("invoice_id", id); err != nil {
		return err
	}
	return a.del(ctx, fmt.Sprintf("/invoices/%d", id))
}
