// Package mask turns keystrokes typed into a DD/MM/YYYY field into a masked
// buffer, inserting separators as the user types and committing a date only
// once the buffer is a complete, real calendar day.
package mask

import (
	"regexp"
	"strings"

	"datepick/internal/dates"
)

const (
	// Layout is the fixed display pattern of the masked field.
	Layout = "DD/MM/YYYY"

	// InvalidSentinel is what a failed formatter writes into the field. It is
	// treated like an empty buffer.
	InvalidSentinel = "Invalid date"

	width = len(Layout)
)

var letters = regexp.MustCompile(`[a-zA-Z]`)

type Result struct {
	// View is the reformatted buffer to show in the field.
	View string
	// Committed is set only when View strictly parses as Layout.
	Committed *dates.Date
	// Invalid flags a complete-looking buffer (8 or 10 chars) that does not parse.
	// It never gates Committed on its own.
	Invalid bool
	// Clear means the field was emptied and any bound value must be dropped.
	Clear bool
}

// Normalize reformats one buffer state.
func Normalize(raw string) Result {
	if raw == "" || raw == InvalidSentinel {
		return Result{Clear: true}
	}

	value := []rune(letters.ReplaceAllString(raw, ""))
	view := value
	invalid := false

	if len(value) == 2 {
		view = join(value, "/")
	}
	switch {
	case len(value) == 4 && digitAbove(value[3], 1):
		// A month can't start with 2-9; treat it as the units digit.
		view = join(value[:3], "0", string(value[3]), "/")
	case len(value) == 5:
		view = join(value, "/")
	case len(value) == 8:
		candidate := join(value[6:8], "-", value[3:5], "-", value[0:2])
		if _, err := dates.Parse(string(candidate), "YY-MM-DD", false, ""); err != nil {
			invalid = true
		}
	case len(value) == 10:
		candidate := join(value[6:10], "-", value[3:5], "-", value[0:2])
		if _, err := dates.Parse(string(candidate), "YYYY-MM-DD", false, ""); err != nil {
			invalid = true
		}
	}

	// Overlong input: keep the first 9 characters and the 11th, dropping the 10th.
	if len(view) > width {
		view = join(view[:9], view[10:11])
	}
	if len(view) >= 2 && string(sub(view, 2, 3)) != "/" {
		view = join(view[:2], "/", sub(view, 2, width))
	}
	if len(view) >= 5 && string(sub(view, 5, 6)) != "/" {
		view = join(view[:5], "/", sub(view, 5, width))
	}

	out := strings.Replace(string(view), "//", "/", 1)
	res := Result{View: out, Invalid: invalid}
	if d, err := dates.Parse(out, Layout, true, ""); err == nil {
		res.Committed = &d
	}
	return res
}

// Keystrokes replays seq one rune at a time against an initially empty field,
// normalizing after every inserted rune. '\b' deletes the last rune without
// reformatting, so separators can be erased.
func Keystrokes(seq string) Result {
	return Replay("", seq)
}

// Replay is Keystrokes starting from an existing buffer.
func Replay(buffer, seq string) Result {
	res := Result{View: buffer}
	if buffer == "" {
		res.Clear = true
	}
	for _, r := range seq {
		if r == '\b' {
			rs := []rune(res.View)
			if len(rs) > 0 {
				rs = rs[:len(rs)-1]
			}
			if len(rs) == 0 {
				res = Result{Clear: true}
				continue
			}
			res = Result{View: string(rs)}
			continue
		}
		res = Normalize(res.View + string(r))
	}
	return res
}

func digitAbove(r rune, n int) bool {
	return r >= '0' && r <= '9' && int(r-'0') > n
}

// sub mirrors a clamped substring on runes.
func sub(rs []rune, from, to int) []rune {
	if from > len(rs) {
		from = len(rs)
	}
	if to > len(rs) {
		to = len(rs)
	}
	if to < from {
		to = from
	}
	return rs[from:to]
}

func join(parts ...any) []rune {
	var out []rune
	for _, p := range parts {
		switch v := p.(type) {
		case []rune:
			out = append(out, v...)
		case string:
			out = append(out, []rune(v)...)
		}
	}
	return out
}
