package harvest

import "context"

// Company holds the account-wide settings of the authenticated Harvest
// company.
type Company struct {
	BaseURI               string `json:"base_uri"`
	FullDomain            string `json:"full_domain"`
	Name                  string `json:"name"`
	IsActive              bool   `json:"is_active"`
	WeekStartDay          string `json:"week_start_day"`
	WantsTimestampTimers  bool   `json:"wants_timestamp_timers"`
	TimeFormat            string `json:"time_format"`
	DateFormat            string `json:"date_format"`
	PlanType              string `json:"plan_type"`
	Clock                 string `json:"clock"`
	CurrencyCodeDisplay   string `json:"currency_code_display"`
	CurrencySymbolDisplay string `json:"currency_symbol_display"`
	DecimalSymbol         string `json:"decimal_symbol"`
	ThousandsSeparator    string `json:"thousands_separator"`
	ColorScheme           string `json:"color_scheme"`
	WeeklyCapacity        int    `json:"weekly_capacity"`
	ExpenseFeature        bool   `json:"expense_feature"`
	InvoiceFeature        bool   `json:"invoice_feature"`
	EstimateFeature       bool   `json:"estimate_feature"`
	ApprovalFeature       bool   `json:"approval_feature"`
}

// GetCompany returns the company settings of the authenticated
// account.
func (a *API) GetCompany(ctx context.Context) (*Company, error) {
	var out Company
	if err := a.get(ctx, "/company", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
