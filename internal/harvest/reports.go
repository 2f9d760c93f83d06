package harvest

import (
	"context"
	"net/url"
	"strconv"
)

// Report groupings. The grouping selects the endpoint sub-path, not a
// query parameter.
const (
	GroupByClients    = "clients"
	GroupByProjects   = "projects"
	GroupByTasks      = "tasks"
	GroupByCategories = "categories"
	GroupByTeam       = "team"
)

// TimeReportRow is one grouped row of a time report. Only the columns
// of the requested grouping are populated.
type TimeReportRow struct {
	ClientID       int64   `json:"client_id,omitempty"`
	ClientName     string  `json:"client_name,omitempty"`
	ProjectID      int64   `json:"project_id,omitempty"`
	ProjectName    string  `json:"project_name,omitempty"`
	TaskID         int64   `json:"task_id,omitempty"`
	TaskName       string  `json:"task_name,omitempty"`
	UserID         int64   `json:"user_id,omitempty"`
	UserName       string  `json:"user_name,omitempty"`
	IsContractor   *bool   `json:"is_contractor,omitempty"`
	TotalHours     float64 `json:"total_hours"`
	BillableHours  float64 `json:"billable_hours"`
	Currency       string  `json:"currency"`
	BillableAmount float64 `json:"billable_amount"`
}

// TimeReport is the merged result of walking every page of a time
// report. Page structure is discarded; rows keep their page order.
type TimeReport struct {
	Results      []TimeReportRow `json:"results"`
	TotalEntries int             `json:"total_entries"`
}

// ExpenseReportRow is one grouped row of an expense report.
type ExpenseReportRow struct {
	ClientID            int64   `json:"client_id,omitempty"`
	ClientName          string  `json:"client_name,omitempty"`
	ProjectID           int64   `json:"project_id,omitempty"`
	ProjectName         string  `json:"project_name,omitempty"`
	ExpenseCategoryID   int64   `json:"expense_category_id,omitempty"`
	ExpenseCategoryName string  `json:"expense_category_name,omitempty"`
	UserID              int64   `json:"user_id,omitempty"`
	UserName            string  `json:"user_name,omitempty"`
	IsContractor        *bool   `json:"is_contractor,omitempty"`
	TotalAmount         float64 `json:"total_amount"`
	BillableAmount      float64 `json:"billable_amount"`
	Currency            string  `json:"currency"`
}

// ExpenseReport is the merged result of walking every page of an
// expense report.
type ExpenseReport struct {
	Results      []ExpenseReportRow `json:"results"`
	TotalEntries int                `json:"total_entries"`
}

// UninvoicedRow is one row of the uninvoiced amounts report.
type UninvoicedRow struct {
	ClientID           int64   `json:"client_id"`
	ClientName         string  `json:"client_name"`
	ProjectID          int64   `json:"project_id"`
	ProjectName        string  `json:"project_name"`
	Currency           string  `json:"currency"`
	TotalHours         float64 `json:"total_hours"`
	UninvoicedHours    float64 `json:"uninvoiced_hours"`
	UninvoicedExpenses float64 `json:"uninvoiced_expenses"`
	UninvoicedAmount   float64 `json:"uninvoiced_amount"`
}

// UninvoicedReport is the merged result of the uninvoiced report.
type UninvoicedReport struct {
	Results      []UninvoicedRow `json:"results"`
	TotalEntries int             `json:"total_entries"`
}

// ProjectBudgetRow is one row of the project budget report.
type ProjectBudgetRow struct {
	ClientID        int64    `json:"client_id"`
	ClientName      string   `json:"client_name"`
	ProjectID       int64    `json:"project_id"`
	ProjectName     string   `json:"project_name"`
	BudgetIsMonthly bool     `json:"budget_is_monthly"`
	BudgetBy        string   `json:"budget_by"`
	IsActive        bool     `json:"is_active"`
	Budget          *float64 `json:"budget"`
	BudgetSpent     *float64 `json:"budget_spent"`
	BudgetRemaining *float64 `json:"budget_remaining"`
}

// ProjectBudgetReport is the merged result of the project budget
// report.
type ProjectBudgetReport struct {
	Results      []ProjectBudgetRow `json:"results"`
	TotalEntries int                `json:"total_entries"`
}

// TimeReportParams select the window and grouping of a time report.
type TimeReportParams struct {
	From    string
	To      string
	GroupBy string
}

// Validate checks the window and grouping.
func (p TimeReportParams) Validate() error {
	var probs problems
	probs.date("from", p.From)
	probs.date("to", p.To)
	probs.oneOf("group_by", p.GroupBy, GroupByClients, GroupByProjects, GroupByTasks, GroupByTeam)
	return probs.err()
}

// ExpenseReportParams select the window and grouping of an expense
// report.
type ExpenseReportParams struct {
	From    string
	To      string
	GroupBy string
}

// Validate checks the window and grouping.
func (p ExpenseReportParams) Validate() error {
	var probs problems
	probs.date("from", p.From)
	probs.date("to", p.To)
	probs.oneOf("group_by", p.GroupBy, GroupByClients, GroupByProjects, GroupByCategories, GroupByTeam)
	return probs.err()
}

// UninvoicedReportParams select the window of the uninvoiced report.
type UninvoicedReportParams struct {
	From string
	To   string
}

// Validate checks the window.
func (p UninvoicedReportParams) Validate() error {
	var probs problems
	probs.date("from", p.From)
	probs.date("to", p.To)
	return probs.err()
}

// ProjectBudgetReportParams filter the project budget report.
type ProjectBudgetReportParams struct {
	IsActive *bool
}

// reportWindowBounds fills an absent from/to bound with the default
// trailing window, today minus the configured number of days through
// today on the client's clock.
func (a *API) reportWindowBounds(from, to string) (string, string) {
	now := a.now()
	if from == "" {
		from = now.AddDate(0, 0, -a.reportWindow).Format(dateLayout)
	}
	if to == "" {
		to = now.Format(dateLayout)
	}
	return from, to
}

// reportQuery builds the shared window + page parameters of a report
// request.
func reportQuery(from, to string, page int) url.Values {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	q.Set("page", strconv.Itoa(page))
	return q
}

// GetTimeReport returns the full time report for the window, grouped
// by the requested dimension, with every page merged.
func (a *API) GetTimeReport(ctx context.Context, params TimeReportParams) (*TimeReport, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	group := params.GroupBy
	if group == "" {
		group = GroupByClients
	}
	from, to := a.reportWindowBounds(params.From, params.To)

	rows, err := collectPages(ctx, func(ctx context.Context, page int) ([]TimeReportRow, Pagination, error) {
		var pg struct {
			Results []TimeReportRow `json:"results"`
			Pagination
		}
		if err := a.get(ctx, "/reports/time/"+group, reportQuery(from, to, page), &pg); err != nil {
			return nil, Pagination{}, err
		}
		return pg.Results, pg.Pagination, nil
	})
	if err != nil {
		return nil, err
	}
	return &TimeReport{Results: rows, TotalEntries: len(rows)}, nil
}

// GetExpenseReport returns the full expense report for the window,
// grouped by the requested dimension, with every page merged.
func (a *API) GetExpenseReport(ctx context.Context, params ExpenseReportParams) (*ExpenseReport, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	group := params.GroupBy
	if group == "" {
		group = GroupByClients
	}
	from, to := a.reportWindowBounds(params.From, params.To)

	rows, err := collectPages(ctx, func(ctx context.Context, page int) ([]ExpenseReportRow, Pagination, error) {
		var pg struct {
			Results []ExpenseReportRow `json:"results"`
			Pagination
		}
		if err := a.get(ctx, "/reports/expenses/"+group, reportQuery(from, to, page), &pg); err != nil {
			return nil, Pagination{}, err
		}
		return pg.Results, pg.Pagination, nil
	})
	if err != nil {
		return nil, err
	}
	return &ExpenseReport{Results: rows, TotalEntries: len(rows)}, nil
}

// GetUninvoicedReport returns uninvoiced hours and amounts per project
// for the window, with every page merged.
func (a *API) GetUninvoicedReport(ctx context.Context, params UninvoicedReportParams) (*UninvoicedReport, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	from, to := a.reportWindowBounds(params.From, params.To)

	rows, err := collectPages(ctx, func(ctx context.Context, page int) ([]UninvoicedRow, Pagination, error) {
		var pg struct {
			Results []UninvoicedRow `json:"results"`
			Pagination
		}
		if err := a.get(ctx, "/reports/uninvoiced", reportQuery(from, to, page), &pg); err != nil {
			return nil, Pagination{}, err
		}
		return pg.Results, pg.Pagination, nil
	})
	if err != nil {
		return nil, err
	}
	return &UninvoicedReport{Results: rows, TotalEntries: len(rows)}, nil
}

// GetProjectBudgetReport returns budget consumption per project, with
// every page merged. The report has no date window.
func (a *API) GetProjectBudgetReport(ctx context.Context, params ProjectBudgetReportParams) (*ProjectBudgetReport, error) {
	rows, err := collectPages(ctx, func(ctx context.Context, page int) ([]ProjectBudgetRow, Pagination, error) {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		addBool(q, "is_active", params.IsActive)
		var pg struct {
			Results []ProjectBudgetRow `json:"results"`
			Pagination
		}
		if err := a.get(ctx, "/reports/project_budget", q, &pg); err != nil {
			return nil, Pagination{}, err
		}
		return pg.Results, pg.Pagination, nil
	})
	if err != nil {
		return nil, err
	}
	return &ProjectBudgetReport{Results: rows, TotalEntries: len(rows)}, nil
}
