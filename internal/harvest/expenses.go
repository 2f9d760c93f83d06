package harvest

import (
	"context"
	"fmt"
	"net/url"
)

// Expense is a Harvest expense record.
type Expense struct {
	ID              int64              `json:"id"`
	Client          ClientRef          `json:"client"`
	Project         ProjectRef         `json:"project"`
	ExpenseCategory ExpenseCategoryRef `json:"expense_category"`
	User            UserRef            `json:"user"`
	Receipt         *Receipt           `json:"receipt"`
	Invoice         *InvoiceRef        `json:"invoice"`
	Notes           string             `json:"notes"`
	Units           *float64           `json:"units"`
	TotalCost       float64            `json:"total_cost"`
	Billable        bool               `json:"billable"`
	IsClosed        bool               `json:"is_closed"`
	IsLocked        bool               `json:"is_locked"`
	IsBilled        bool               `json:"is_billed"`
	LockedReason    string             `json:"locked_reason"`
	SpentDate       string             `json:"spent_date"`
	CreatedAt       string             `json:"created_at"`
	UpdatedAt       string             `json:"updated_at"`
}

// ExpenseCategoryRef is the category summary embedded in an expense.
type ExpenseCategoryRef struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	UnitPrice *float64 `json:"unit_price"`
	UnitName  string   `json:"unit_name,omitempty"`
}

// Receipt is an uploaded expense receipt.
type Receipt struct {
	URL         string `json:"url"`
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
	ContentType string `json:"content_type"`
}

// ExpenseList is one page of expenses with its pagination envelope.
type ExpenseList struct {
	Expenses []Expense `json:"expenses"`
	Pagination
}

// ExpenseListParams filter the expense listing.
type ExpenseListParams struct {
	UserID       int64
	ClientID     int64
	ProjectID    int64
	IsBilled     *bool
	UpdatedSince string
	From         string
	To           string
	ListParams
}

// Validate checks the filter fields.
func (p ExpenseListParams) Validate() error {
	var probs problems
	probs.datetime("updated_since", p.UpdatedSince)
	probs.date("from", p.From)
	probs.date("to", p.To)
	return probs.err()
}

func (p ExpenseListParams) query() url.Values {
	q := p.ListParams.query()
	addID(q, "user_id", p.UserID)
	addID(q, "client_id", p.ClientID)
	addID(q, "project_id", p.ProjectID)
	addBool(q, "is_billed", p.IsBilled)
	addString(q, "updated_since", p.UpdatedSince)
	addString(q, "from", p.From)
	addString(q, "to", p.To)
	return q
}

// ExpenseCreate are the fields accepted when creating an expense.
// The category determines whether a unit count or a total cost applies.
type ExpenseCreate struct {
	ProjectID         int64    `json:"project_id"`
	ExpenseCategoryID int64    `json:"expense_category_id"`
	SpentDate         string   `json:"spent_date"`
	UserID            *int64   `json:"user_id,omitempty"`
	Units             *float64 `json:"units,omitempty"`
	TotalCost         *float64 `json:"total_cost,omitempty"`
	Notes             string   `json:"notes,omitempty"`
	Billable          *bool    `json:"billable,omitempty"`
}

// Validate checks the input before any request is sent.
func (in ExpenseCreate) Validate() error {
	var p problems
	p.requireID("project_id", in.ProjectID)
	p.requireID("expense_category_id", in.ExpenseCategoryID)
	p.requireDate("spent_date", in.SpentDate)
	p.optionalID("user_id", in.UserID)
	p.money("units", in.Units)
	p.money("total_cost", in.TotalCost)
	return p.err()
}

// ExpenseUpdate are the fields accepted when updating an expense.
type ExpenseUpdate struct {
	ProjectID         *int64   `json:"project_id,omitempty"`
	ExpenseCategoryID *int64   `json:"expense_category_id,omitempty"`
	SpentDate         *string  `json:"spent_date,omitempty"`
	Units             *float64 `json:"units,omitempty"`
	TotalCost         *float64 `json:"total_cost,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
	Billable          *bool    `json:"billable,omitempty"`
}

// Validate checks only the fields that are present.
func (in ExpenseUpdate) Validate() error {
	var p problems
	p.optionalID("project_id", in.ProjectID)
	p.optionalID("expense_category_id", in.ExpenseCategoryID)
	if in.SpentDate != nil {
		p.requireDate("spent_date", *in.SpentDate)
	}
	p.money("units", in.Units)
	p.money("total_cost", in.TotalCost)
	return p.err()
}

// ListExpenses returns one page of expenses.
func (a *API) ListExpenses(ctx context.Context, params ExpenseListParams) (*ExpenseList, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	var out ExpenseList
	if err := a.get(ctx, "/expenses", params.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetExpense fetches a single expense by ID.
func (a *API) GetExpense(ctx context.Context, id int64) (*Expense, error) {
	if err := checkID("expense_id", id); err != nil {
		return nil, err
	}
	var out Expense
	if err := a.get(ctx, fmt.Sprintf("/expenses/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateExpense creates an expense and returns the stored record.
func (a *API) CreateExpense(ctx context.Context, in ExpenseCreate) (*Expense, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out Expense
	if err := a.post(ctx, "/expenses", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateExpense applies the set fields to an existing expense.
func (a *API) UpdateExpense(ctx context.Context, id int64, in ExpenseUpdate) (*Expense, error) {
	if err := checkID("expense_id", id); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out Expense
	if err := a.patch(ctx, fmt.Sprintf("/expenses/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteExpense removes an expense.
func (a *API) DeleteExpense(ctx context.Context, id int64) error {
	if err := checkID("expense_id", id); err != nil {
		return err
	}
	return a.del(ctx, fmt.Sprintf("/expenses/%d", id))
}
