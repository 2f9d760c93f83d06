package harvest

import (
	"fmt"
	"time"
)

// Layouts for the wire formats Harvest accepts.
// Dates are calendar dates, times of day are 24-hour wall clock values.
const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// timeEntryModeMessage is the cross-field rule for time entry creation.
// The exact wording is part of the tool contract.
const timeEntryModeMessage = "Must provide either 'hours' or both 'started_time' and 'ended_time'"

// problems accumulates validation failures in the order checks run.
type problems []string

// addf records a formatted problem.
func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Sprintf(format, args...))
}

// err returns nil when no problems were recorded, otherwise a
// ValidationError carrying all of them.
func (p problems) err() error {
	if len(p) == 0 {
		return nil
	}
	return &ValidationError{Problems: p}
}

// requireString records a problem when a required string field is empty.
func (p *problems) requireString(field, value string) {
	if value == "" {
		p.addf("%s: is required", field)
	}
}

// requireID records a problem unless id is a positive integer.
func (p *problems) requireID(field string, id int64) {
	if id <= 0 {
		p.addf("%s: must be a positive integer", field)
	}
}

// optionalID records a problem when a supplied id is not positive.
func (p *problems) optionalID(field string, id *int64) {
	if id != nil && *id <= 0 {
		p.addf("%s: must be a positive integer", field)
	}
}

// date records a problem when value is set but is not a strict
// YYYY-MM-DD calendar date.
func (p *problems) date(field, value string) {
	if value == "" {
		return
	}
	if !isStrictDate(value) {
		p.addf("%s: must be a date in YYYY-MM-DD format", field)
	}
}

// requireDate records a problem when value is missing or malformed.
func (p *problems) requireDate(field, value string) {
	if value == "" {
		p.addf("%s: is required", field)
		return
	}
	p.date(field, value)
}

// timeOfDay records a problem when value is set but is not a strict
// HH:MM 24-hour time.
func (p *problems) timeOfDay(field, value string) {
	if value == "" {
		return
	}
	if !isStrictTime(value) {
		p.addf("%s: must be a time in HH:MM 24-hour format", field)
	}
}

// datetime records a problem when value is set but is not an ISO-8601
// datetime with offset (RFC 3339).
func (p *problems) datetime(field, value string) {
	if value == "" {
		return
	}
	if _, err := time.Parse(time.RFC3339, value); err != nil {
		p.addf("%s: must be an ISO-8601 datetime", field)
	}
}

// currency records a problem when value is set but is not a three-letter
// uppercase currency code.
func (p *problems) currency(field, value string) {
	if value == "" {
		return
	}
	if !isCurrencyCode(value) {
		p.addf("%s: must be a 3-letter uppercase currency code", field)
	}
}

// hours records a problem when a supplied hour count is outside [0, 24].
func (p *problems) hours(field string, v *float64) {
	if v != nil && (*v < 0 || *v > 24) {
		p.addf("%s: must be between 0 and 24", field)
	}
}

// percent records a problem when a supplied percentage is outside [0, 100].
func (p *problems) percent(field string, v *float64) {
	if v != nil && (*v < 0 || *v > 100) {
		p.addf("%s: must be between 0 and 100", field)
	}
}

// money records a problem when a supplied monetary amount is negative.
func (p *problems) money(field string, v *float64) {
	if v != nil && *v < 0 {
		p.addf("%s: must be greater than or equal to 0", field)
	}
}

// oneOf records a problem when value is set but not one of the allowed
// choices.
func (p *problems) oneOf(field, value string, allowed ...string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	p.addf("%s: must be one of %v", field, allowed)
}

// isStrictDate reports whether s is a zero-padded YYYY-MM-DD calendar
// date. Re-formatting after parsing rejects loose forms like 2024-1-2.
func isStrictDate(s string) bool {
	t, err := time.Parse(dateLayout, s)
	return err == nil && t.Format(dateLayout) == s
}

// isStrictTime reports whether s is a zero-padded HH:MM 24-hour time.
func isStrictTime(s string) bool {
	t, err := time.Parse(timeLayout, s)
	return err == nil && t.Format(timeLayout) == s
}

// isCurrencyCode reports whether s looks like an ISO 4217 code: exactly
// three uppercase ASCII letters. Code existence is left to the API.
func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// checkID validates a path identifier before it is interpolated into a
// request path.
func checkID(field string, id int64) error {
	var p problems
	p.requireID(field, id)
	return p.err()
}
