package parser

import "testing"

func TestFindExactCol(t *testing.T) {
	t.Parallel()

	headers := []string{"Email", " Cat ", "División"}
	if got := findExactCol(headers, "Cat"); got != 1 {
		t.Fatalf("trimmed match failed: %d", got)
	}
	if got := findExactCol(headers, "División"); got != 2 {
		t.Fatalf("accented match failed: %d", got)
	}
	if got := findExactCol(headers, "Division"); got != -1 {
		t.Fatalf("loose match must not happen: %d", got)
	}
}

func TestRequireCol_Missing(t *testing.T) {
	t.Parallel()

	if _, err := requireCol([]string{"A", "B"}, "Fecha", "meetings"); err == nil {
		t.Fatalf("expected error for missing column")
	}
}

func TestSplitDayHour(t *testing.T) {
	t.Parallel()

	if got := splitDay("2025-03-05T09:12:00"); got != "2025-03-05" {
		t.Fatalf("unexpected day: %q", got)
	}
	if got := splitHour("2025-03-05T09:12:00"); got != "09" {
		t.Fatalf("unexpected hour: %q", got)
	}
	if got := splitHour("2025-03-05"); got != "" {
		t.Fatalf("date without time must yield empty hour: %q", got)
	}
}

func TestNormalizeDay(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"2025-03-05", "2025-03-05"},
		{"05/03/2025", "2025-03-05"},
		{"2025/03/05", "2025-03-05"},
		{"2025-03-05T10:00:00", "2025-03-05"},
		{"garbage", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := normalizeDay(c.in); got != c.want {
			t.Fatalf("%q want=%q got=%q", c.in, c.want, got)
		}
	}
}

func TestParseFloat_Commas(t *testing.T) {
	t.Parallel()

	if got := parseFloat("1,234.5"); got != 1234.5 {
		t.Fatalf("unexpected value: %v", got)
	}
	if got := parseFloat("  "); got != 0 {
		t.Fatalf("blank must parse as 0: %v", got)
	}
}

func TestParseTrafficMB(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
	}{
		{"3 GB", 3072},
		{"12 MB", 12},
		{"512 KB", 0.5},
		{"7 TB", 0},
		{"sin datos", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := ParseTrafficMB(c.in); got != c.want {
			t.Fatalf("%q want=%v got=%v", c.in, c.want, got)
		}
	}
}

func TestParseVPNDay(t *testing.T) {
	t.Parallel()

	if got := parseVPNDay("05/03/2025"); got != "2025-03-05" {
		t.Fatalf("unexpected day: %q", got)
	}
	if got := parseVPNDay("2025-03-05"); got != "" {
		t.Fatalf("unexpected layout accepted: %q", got)
	}
}
