package model

import "testing"

func TestNewMonth_Bounds(t *testing.T) {
	t.Parallel()

	if _, err := NewMonth(2025, 3); err != nil {
		t.Fatalf("valid month rejected: %v", err)
	}
	if _, err := NewMonth(1999, 3); err == nil {
		t.Fatalf("expected error for year 1999")
	}
	if _, err := NewMonth(2025, 0); err == nil {
		t.Fatalf("expected error for month 0")
	}
	if _, err := NewMonth(2025, 13); err == nil {
		t.Fatalf("expected error for month 13")
	}
}

func TestMonth_LastDay(t *testing.T) {
	t.Parallel()

	cases := []struct {
		year, month, want int
	}{
		{2025, 1, 31},
		{2025, 2, 28},
		{2024, 2, 29},
		{2025, 4, 30},
		{2025, 12, 31},
	}
	for _, c := range cases {
		m := Month{Year: c.year, Month: c.month}
		if got := m.LastDay(); got != c.want {
			t.Fatalf("%04d-%02d last day want=%d got=%d", c.year, c.month, c.want, got)
		}
	}
}

func TestMonth_DaysAndKeys(t *testing.T) {
	t.Parallel()

	m := Month{Year: 2025, Month: 2}
	days := m.Days()
	if len(days) != 28 {
		t.Fatalf("unexpected day count: %d", len(days))
	}
	if days[0] != "2025-02-01" {
		t.Fatalf("unexpected first day: %s", days[0])
	}
	if m.LastDayKey() != "2025-02-28" {
		t.Fatalf("unexpected last day key: %s", m.LastDayKey())
	}
	if m.String() != "2025-02" {
		t.Fatalf("unexpected period string: %s", m.String())
	}
}

func TestMonth_Contains(t *testing.T) {
	t.Parallel()

	m := Month{Year: 2025, Month: 3}
	if !m.Contains("2025-03-15") {
		t.Fatalf("in-month day rejected")
	}
	if m.Contains("2025-02-28") {
		t.Fatalf("previous month accepted")
	}
	if m.Contains("2025-04-01") {
		t.Fatalf("next month accepted")
	}
	if m.Contains("not-a-date") {
		t.Fatalf("garbage accepted")
	}
}
