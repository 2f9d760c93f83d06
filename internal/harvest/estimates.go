package harvest

import (
	"context"
	"fmt"
	"net/url"
)

// Estimate is a Harvest estimate record.
type Estimate struct {
	ID             int64              `json:"id"`
	Client         ClientRef          `json:"client"`
	LineItems      []EstimateLineItem `json:"line_items"`
	Creator        *UserRef           `json:"creator"`
	ClientKey      string             `json:"client_key"`
	Number         string             `json:"number"`
	PurchaseOrder  string             `json:"purchase_order"`
	Amount         float64            `json:"amount"`
	Tax            *float64           `json:"tax"`
	TaxAmount      float64            `json:"tax_amount"`
	Tax2           *float64           `json:"tax2"`
	Tax2Amount     float64            `json:"tax2_amount"`
	Discount       *float64           `json:"discount"`
	DiscountAmount float64            `json:"discount_amount"`
	Subject        string             `json:"subject"`
	Notes          string             `json:"notes"`
	Currency       string             `json:"currency"`
	State          string             `json:"state"`
	IssueDate      string             `json:"issue_date"`
	SentAt         string             `json:"sent_at"`
	AcceptedAt     string             `json:"accepted_at"`
	DeclinedAt     string             `json:"declined_at"`
	CreatedAt      string             `json:"created_at"`
	UpdatedAt      string             `json:"updated_at"`
}

// EstimateLineItem is one line of an estimate.
type EstimateLineItem struct {
	ID          int64   `json:"id,omitempty"`
	Kind        string  `json:"kind"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
	Taxed       bool    `json:"taxed"`
	Taxed2      bool    `json:"taxed2"`
}

// EstimateList is one page of estimates with its pagination envelope.
type EstimateList struct {
	Estimates []Estimate `json:"estimates"`
	Pagination
}

// EstimateListParams filter the estimate listing.
type EstimateListParams struct {
	ClientID     int64
	State        string
	UpdatedSince string
	From         string
	To           string
	ListParams
}

// Validate checks the filter fields.
func (p EstimateListParams) Validate() error {
	var probs problems
	probs.oneOf("state", p.State, "draft", "sent", "accepted", "declined")
	probs.datetime("updated_since", p.UpdatedSince)
	probs.date("from", p.From)
	probs.date("to", p.To)
	return probs.err()
}

func (p EstimateListParams) query() url.Values {
	q := p.ListParams.query()
	addID(q, "client_id", p.ClientID)
	addString(q, "state", p.State)
	addString(q, "updated_since", p.UpdatedSince)
	addString(q, "from", p.From)
	addString(q, "to", p.To)
	return q
}

// EstimateLineItemInput is one line of an estimate create or update.
type EstimateLineItemInput struct {
	Kind        string   `json:"kind"`
	Description string   `json:"description,omitempty"`
	Quantity    *float64 `json:"quantity,omitempty"`
	UnitPrice   float64  `json:"unit_price"`
	Taxed       *bool    `json:"taxed,omitempty"`
	Taxed2      *bool    `json:"taxed2,omitempty"`
}

// validateEstimateLineItems collects problems for a line item slice.
func validateEstimateLineItems(p *problems, items []EstimateLineItemInput) {
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
	}
}

// EstimateCreate are the fields accepted when creating an estimate.
type EstimateCreate struct {
	ClientID      int64                   `json:"client_id"`
	Subject       string                  `json:"subject,omitempty"`
	Notes         string                  `json:"notes,omitempty"`
	Number        string                  `json:"number,omitempty"`
	PurchaseOrder string                  `json:"purchase_order,omitempty"`
	Currency      string                  `json:"currency,omitempty"`
	IssueDate     string                  `json:"issue_date,omitempty"`
	Tax           *float64                `json:"tax,omitempty"`
	Tax2          *float64                `json:"tax2,omitempty"`
	Discount      *float64                `json:"discount,omitempty"`
	LineItems     []EstimateLineItemInput `json:"line_items,omitempty"`
}

// Validate checks the input before any request is sent.
func (in EstimateCreate) Validate() error {
	var p problems
	p.requireID("client_id", in.ClientID)
	p.currency("currency", in.Currency)
	p.date("issue_date", in.IssueDate)
	p.percent("tax", in.Tax)
	p.percent("tax2", in.Tax2)
	p.percent("discount", in.Discount)
	validateEstimateLineItems(&p, in.LineItems)
	return p.err()
}

// EstimateUpdate are the fields accepted when updating an estimate.
// A line_items value replaces lines wholesale when present.
type EstimateUpdate struct {
	ClientID      *int64                  `json:"client_id,omitempty"`
	Subject       *string                 `json:"subject,omitempty"`
	Notes         *string                 `json:"notes,omitempty"`
	Number        *string                 `json:"number,omitempty"`
	PurchaseOrder *string                 `json:"purchase_order,omitempty"`
	Currency      *string                 `json:"currency,omitempty"`
	IssueDate     *string                 `json:"issue_date,omitempty"`
	Tax           *float64                `json:"tax,omitempty"`
	Tax2          *float64                `json:"tax2,omitempty"`
	Discount      *float64                `json:"discount,omitempty"`
	LineItems     []EstimateLineItemInput `json:"line_items,omitempty"`
}

// Validate checks only the fields that are present.
func (in EstimateUpdate) Validate() error {
	var p problems
	p.optionalID("client_id", in.ClientID)
	if in.Currency != nil {
		p.currency("currency", *in.Currency)
	}
	if in.IssueDate != nil {
		p.date("issue_date", *in.IssueDate)
	}
	p.percent("tax", in.Tax)
	p.percent("tax2", in.Tax2)
	p.percent("discount", in.Discount)
	validateEstimateLineItems(&p, in.LineItems)
	return p.err()
}

// ListEstimates returns one page of estimates.
func (a *API) ListEstimates(ctx context.Context, params EstimateListParams) (*EstimateList, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	var out EstimateList
	if err := a.get(ctx, "/estimates", params.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetEstimate fetches a single estimate by ID.
func (a *API) GetEstimate(ctx context.Context, id int64) (*Estimate, error) {
	if err := checkID("estimate_id", id); err != nil {
		return nil, err
	}
	var out Estimate
	if err := a.get(ctx, fmt.Sprintf("/estimates/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateEstimate creates an estimate and returns the stored record.
func (a *API) CreateEstimate(ctx context.Context, in EstimateCreate) (*Estimate, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out Estimate
	if err := a.post(ctx, "/estimates", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEstimate applies the set fields to an existing estimate.
func (a *API) UpdateEstimate(ctx context.Context, id int64, in EstimateUpdate) (*Estimate, error) {
	if err := checkID("estimate_id", id); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out Estimate
	if err := a.patch(ctx, fmt.Sprintf("/estimates/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEstimate removes an estimate.
func (a *API) DeleteEstimate(ctx context.Context, id int64) error {
	if err := checkID("estimate_id", id); err != nil {
		return err
	}
	return a.del(ctx, fmt.Sprintf("/estimates/%d", id))
}
