package harvest

import "testing"

func TestIsStrictDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "valid date", value: "2026-08-24", want: true},
		{name: "leap day", value: "2024-02-29", want: true},
		{name: "missing zero padding", value: "2026-1-2", want: false},
		{name: "month out of range", value: "2026-13-01", want: false},
		{name: "day out of range", value: "2026-02-30", want: false},
		{name: "slash separators", value: "2026/08/24", want: false},
		{name: "datetime not date", value: "2026-08-24T10:00:00Z", want: false},
		{name: "empty", value: "", want: false},
		{name: "garbage", value: "not-a-date", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isStrictDate(tt.value); got != tt.want {
				t.Errorf("isStrictDate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestIsStrictTime(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "morning", value: "09:30", want: true},
		{name: "midnight", value: "00:00", want: true},
		{name: "end of day", value: "23:59", want: true},
		{name: "missing zero padding", value: "9:30", want: false},
		{name: "hour out of range", value: "24:00", want: false},
		{name: "minute out of range", value: "12:60", want: false},
		{name: "with seconds", value: "09:30:00", want: false},
		{name: "twelve hour clock", value: "9:30 AM", want: false},
		{name: "empty", value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isStrictTime(tt.value); got != tt.want {
				t.Errorf("isStrictTime(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestIsCurrencyCode(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "USD", value: "USD", want: true},
		{name: "EUR", value: "EUR", want: true},
		{name: "lowercase", value: "usd", want: false},
		{name: "mixed case", value: "Usd", want: false},
		{name: "too short", value: "US", want: false},
		{name: "too long", value: "USDT", want: false},
		{name: "digits", value: "US1", want: false},
		{name: "empty", value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isCurrencyCode(tt.value); got != tt.want {
				t.Errorf("isCurrencyCode(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestProblems_NumericRanges(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name  string
		check func(p *problems)
		want  []string
	}{
		{
			name:  "hours in range",
			check: func(p *problems) { p.hours("hours", f(8)) },
		},
		{
			name:  "hours boundary",
			check: func(p *problems) { p.hours("hours", f(24)) },
		},
		{
			name:  "hours too large",
			check: func(p *problems) { p.hours("hours", f(24.5)) },
			want:  []string{"hours: must be between 0 and 24"},
		},
		{
			name:  "hours negative",
			check: func(p *problems) { p.hours("hours", f(-1)) },
			want:  []string{"hours: must be between 0 and 24"},
		},
		{
			name:  "hours nil skipped",
			check: func(p *problems) { p.hours("hours", nil) },
		},
		{
			name:  "percent too large",
			check: func(p *problems) { p.percent("tax", f(101)) },
			want:  []string{"tax: must be between 0 and 100"},
		},
		{
			name:  "money negative",
			check: func(p *problems) { p.money("total_cost", f(-0.01)) },
			want:  []string{"total_cost: must be greater than or equal to 0"},
		},
		{
			name:  "money zero ok",
			check: func(p *problems) { p.money("total_cost", f(0)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p problems
			tt.check(&p)
			if len(p) != len(tt.want) {
				t.Fatalf("problems = %v, want %v", p, tt.want)
			}
			for i := range tt.want {
				if p[i] != tt.want[i] {
					t.Errorf("problem[%d] = %q, want %q", i, p[i], tt.want[i])
				}
			}
		})
	}
}

func TestProblems_OneOf(t *testing.T) {
	var p problems
	p.oneOf("state", "draft", "draft", "open", "paid", "closed")
	if len(p) != 0 {
		t.Errorf("valid choice recorded problems: %v", p)
	}

	p.oneOf("state", "archived", "draft", "open", "paid", "closed")
	if len(p) != 1 {
		t.Fatalf("invalid choice recorded %d problems, want 1", len(p))
	}
	want := "state: must be one of [draft open paid closed]"
	if p[0] != want {
		t.Errorf("problem = %q, want %q", p[0], want)
	}

	// Empty value means the filter is absent, not invalid.
	var q problems
	q.oneOf("state", "", "draft", "open")
	if len(q) != 0 {
		t.Errorf("empty value recorded problems: %v", q)
	}
}

func TestProblems_Datetime(t *testing.T) {
	var p problems
	p.datetime("updated_since", "2026-08-24T10:00:00Z")
	p.datetime("updated_since", "2026-08-24T10:00:00+02:00")
	if len(p) != 0 {
		t.Errorf("valid datetimes recorded problems: %v", p)
	}

	p.datetime("updated_since", "2026-08-24")
	if len(p) != 1 || p[0] != "updated_since: must be an ISO-8601 datetime" {
		t.Errorf("problems = %v, want single datetime problem", p)
	}
}

func TestCheckID(t *testing.T) {
	if err := checkID("client_id", 7); err != nil {
		t.Errorf("checkID(7) error = %v", err)
	}

	err := checkID("client_id", 0)
	if err == nil {
		t.Fatal("checkID(0) expected error")
	}
	if err.Error() != "client_id: must be a positive integer" {
		t.Errorf("checkID(0) error = %q", err.Error())
	}

	if err := checkID("client_id", -5); err == nil {
		t.Error("checkID(-5) expected error")
	}
}
