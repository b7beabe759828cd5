package mask

import (
	"testing"
	"time"

	"datepick/internal/dates"
)

func TestNormalize_Steps(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"1", "1"},
		{"13", "13/"},
		{"13/", "13/"},
		{"13/0", "13/0"},
		{"13/1", "13/1"},
		{"13/5", "13/05/"},
		{"13/05", "13/05/"},
		{"13/05/", "13/05/"},
		{"13/05/2", "13/05/2"},
		{"135", "13/5"},
		{"13/052", "13/05/2"},
		{"1x3", "13/"},
		{"25/12/20245", "25/12/2025"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in).View; got != tc.want {
			t.Fatalf("Normalize(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestNormalize_IdempotentOnCompleteDate(t *testing.T) {
	res := Normalize("25/12/2024")
	if res.View != "25/12/2024" {
		t.Fatalf("expected view unchanged, got %q", res.View)
	}
	if res.Committed == nil || !res.Committed.SameDay(dates.New(2024, time.December, 25)) {
		t.Fatalf("expected commit of 2024-12-25, got %v", res.Committed)
	}
	again := Normalize(res.View)
	if again.View != res.View || again.Committed == nil {
		t.Fatalf("expected second pass to be a no-op, got %+v", again)
	}
}

func TestNormalize_OnlyCompleteRealDatesCommit(t *testing.T) {
	for _, in := range []string{"13/", "13/05/", "13/05/202", "31/04/2024", "29/02/2023", "00/01/2024"} {
		if res := Normalize(in); res.Committed != nil {
			t.Fatalf("Normalize(%q): expected no commit, got %s", in, res.Committed)
		}
	}
	res := Normalize("29/02/2024")
	if res.Committed == nil || !res.Committed.SameDay(dates.New(2024, time.February, 29)) {
		t.Fatalf("expected leap day commit, got %+v", res)
	}
}

func TestNormalize_InvalidFlagDoesNotGateCommit(t *testing.T) {
	// Eight raw digits are checked in their unseparated positions, which
	// rarely form a date; the separators are still inserted afterwards and the
	// resulting buffer decides the commit.
	res := Normalize("13052024")
	if !res.Invalid {
		t.Fatalf("expected invalid flag for unseparated 8-char buffer")
	}
	if res.View != "13/05/2024" {
		t.Fatalf("expected separators inserted, got %q", res.View)
	}
	if res.Committed == nil || !res.Committed.SameDay(dates.New(2024, time.May, 13)) {
		t.Fatalf("expected commit of 2024-05-13, got %v", res.Committed)
	}

	bad := Normalize("31/02/2024")
	if !bad.Invalid || bad.Committed != nil {
		t.Fatalf("expected invalid and uncommitted for Feb 31, got %+v", bad)
	}
}

func TestNormalize_ClearsOnEmptyOrSentinel(t *testing.T) {
	for _, in := range []string{"", InvalidSentinel} {
		res := Normalize(in)
		if !res.Clear || res.View != "" || res.Committed != nil {
			t.Fatalf("Normalize(%q): expected clear result, got %+v", in, res)
		}
	}
}

func TestKeystrokes_TypingAFullDate(t *testing.T) {
	res := Keystrokes("13052024")
	if res.View != "13/05/2024" {
		t.Fatalf("expected masked view, got %q", res.View)
	}
	if res.Committed == nil || !res.Committed.SameDay(dates.New(2024, time.May, 13)) {
		t.Fatalf("expected commit of 2024-05-13, got %v", res.Committed)
	}
}

func TestKeystrokes_MonthGuard(t *testing.T) {
	if got := Keystrokes("135").View; got != "13/05/" {
		t.Fatalf("expected month guard to produce %q, got %q", "13/05/", got)
	}
	if got := Keystrokes("1305").View; got != "13/05/" {
		t.Fatalf("expected %q, got %q", "13/05/", got)
	}
}

func TestKeystrokes_Backspace(t *testing.T) {
	res := Keystrokes("13\b\b\b")
	if !res.Clear {
		t.Fatalf("expected clearing to empty, got %+v", res)
	}
	res = Replay("13/05/", "\b")
	if res.View != "13/05" || res.Committed != nil {
		t.Fatalf("expected separator deleted without reformat, got %+v", res)
	}
	res = Replay("25/12/202", "\b5")
	if res.View != "25/12/205" {
		t.Fatalf("expected %q, got %q", "25/12/205", res.View)
	}
}
