package dates

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/goodsign/monday"
)

// Patterns use the token set familiar from JavaScript date libraries:
//
//	YYYY  4-digit year        YY    2-digit year
//	MMMM  month name          MMM   short month name
//	MM    2-digit month       M     month number
//	DD    2-digit day         D     day number        Do  ordinal day
//	dddd  weekday name        ddd   short weekday     dd  2-letter weekday
//	d     weekday number (Sunday=0)
//
// Text inside [brackets] is copied verbatim; any other character is a literal.
//
// Tokens are translated to Go reference layouts and rendered or parsed with
// monday, which localizes month and weekday names. Do, dd and d have no layout
// equivalent.

type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokYear4
	tokYear2
	tokMonthName
	tokMonthShort
	tokMonth2
	tokMonth
	tokDay2
	tokDay
	tokDayOrdinal
	tokWeekdayName
	tokWeekdayShort
	tokWeekdayMin
	tokWeekdayNum
)

type token struct {
	kind tokenKind
	text string
}

// Longest tokens first so "MMMM" wins over "MM".
var patternTokens = []struct {
	text string
	kind tokenKind
}{
	{"YYYY", tokYear4},
	{"MMMM", tokMonthName},
	{"dddd", tokWeekdayName},
	{"MMM", tokMonthShort},
	{"ddd", tokWeekdayShort},
	{"YY", tokYear2},
	{"MM", tokMonth2},
	{"DD", tokDay2},
	{"Do", tokDayOrdinal},
	{"dd", tokWeekdayMin},
	{"M", tokMonth},
	{"D", tokDay},
	{"d", tokWeekdayNum},
}

func tokenize(pattern string) []token {
	var out []token
	lit := strings.Builder{}
	flush := func() {
		if lit.Len() > 0 {
			out = append(out, token{kind: tokLiteral, text: lit.String()})
			lit.Reset()
		}
	}
	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			if end := strings.IndexByte(pattern[i+1:], ']'); end >= 0 {
				lit.WriteString(pattern[i+1 : i+1+end])
				i += end + 2
				continue
			}
		}
		matched := false
		for _, pt := range patternTokens {
			if strings.HasPrefix(pattern[i:], pt.text) {
				flush()
				out = append(out, token{kind: pt.kind, text: pt.text})
				i += len(pt.text)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		lit.WriteByte(pattern[i])
		i++
	}
	flush()
	return out
}

// ValidatePattern reports an error when pattern carries no date field at all.
func ValidatePattern(pattern string) error {
	for _, tok := range tokenize(pattern) {
		if tok.kind != tokLiteral {
			return nil
		}
	}
	return fmt.Errorf("date pattern %q has no date fields", pattern)
}

// goLayout maps tokens onto Go's reference layout.
var goLayout = map[tokenKind]string{
	tokYear4:        "2006",
	tokYear2:        "06",
	tokMonthName:    "January",
	tokMonthShort:   "Jan",
	tokMonth2:       "01",
	tokMonth:        "1",
	tokDay2:         "02",
	tokDay:          "2",
	tokDayOrdinal:   "2",
	tokWeekdayName:  "Monday",
	tokWeekdayShort: "Mon",
}

// Lenient parsing accepts unpadded numbers.
var lenientLayout = map[tokenKind]string{
	tokMonth2: "1",
	tokDay2:   "2",
}

// Format renders d using pattern. Month and weekday names are localized.
func Format(d Date, pattern string, locale string) string {
	if d.IsZero() {
		return ""
	}
	loc := resolveLocale(locale)
	var b strings.Builder
	for _, tok := range tokenize(pattern) {
		switch tok.kind {
		case tokLiteral:
			b.WriteString(tok.text)
		case tokDayOrdinal:
			b.WriteString(ordinal(d.Day()))
		case tokWeekdayMin:
			b.WriteString(weekdayMin(d.Weekday(), locale))
		case tokWeekdayNum:
			b.WriteString(strconv.Itoa(int(d.Weekday())))
		default:
			b.WriteString(monday.Format(d.Time(), goLayout[tok.kind], loc))
		}
	}
	return b.String()
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}

func weekdayMin(w time.Weekday, locale string) string {
	r := []rune(WeekdayShortName(w, locale))
	if len(r) > 2 {
		r = r[:2]
	}
	return string(r)
}

// ParseError is returned when a value does not match a pattern or names an
// impossible date.
type ParseError struct {
	Value   string
	Pattern string
	msg     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid date %q for pattern %s: %s", e.Value, e.Pattern, e.msg)
}

var ordinalSuffix = regexp.MustCompile(`(?i)(\d)(st|nd|rd|th)\b`)

// Parse reads value according to pattern.
//
// In strict mode every literal must match exactly, fixed-width fields must have
// their full width and no trailing input is allowed. Otherwise separators match
// any run of punctuation or space, day and month accept a single digit and
// trailing input is ignored. In both modes the result must be a real calendar
// day. The dd and d tokens cannot be parsed.
func Parse(value, pattern string, strict bool, locale string) (Date, error) {
	fail := func(msg string) (Date, error) {
		return Date{}, &ParseError{Value: value, Pattern: pattern, msg: msg}
	}
	layout, hasYear, hasOrdinal, err := parseLayout(tokenize(pattern), strict)
	if err != nil {
		return fail(err.Error())
	}
	if !hasYear {
		return fail("missing year")
	}
	in := value
	if hasOrdinal {
		if strict && !ordinalSuffix.MatchString(in) {
			return fail("expected ordinal suffix")
		}
		in = ordinalSuffix.ReplaceAllString(in, "$1")
	}
	if !strict {
		w := words(in)
		if n := len(strings.Fields(layout)); len(w) > n {
			w = w[:n]
		}
		in = strings.Join(w, " ")
	}
	t, err := monday.ParseInLocation(layout, in, time.UTC, resolveLocale(locale))
	if err != nil {
		var te *time.ParseError
		if errors.As(err, &te) && te.Message != "" {
			return fail(strings.TrimPrefix(te.Message, ": "))
		}
		return fail("does not match")
	}
	return FromTime(t), nil
}

// parseLayout builds the Go layout for toks. Lenient layouts keep only the
// words of each literal, separated by single spaces.
func parseLayout(toks []token, strict bool) (layout string, hasYear, hasOrdinal bool, err error) {
	var b strings.Builder
	for _, tok := range toks {
		switch tok.kind {
		case tokLiteral:
			if !layoutSafe(tok.text) {
				return "", false, false, fmt.Errorf("literal %q cannot be matched", tok.text)
			}
			if strict {
				b.WriteString(tok.text)
				continue
			}
			b.WriteString(" " + strings.Join(words(tok.text), " ") + " ")
		case tokWeekdayMin, tokWeekdayNum:
			return "", false, false, fmt.Errorf("token %s cannot be parsed", tok.text)
		default:
			piece := goLayout[tok.kind]
			if p, ok := lenientLayout[tok.kind]; ok && !strict {
				piece = p
			}
			hasYear = hasYear || tok.kind == tokYear4 || tok.kind == tokYear2
			hasOrdinal = hasOrdinal || tok.kind == tokDayOrdinal
			b.WriteString(piece)
		}
	}
	layout = b.String()
	if !strict {
		layout = strings.Join(strings.Fields(layout), " ")
	}
	return layout, hasYear, hasOrdinal, nil
}

// Go layouts have no escaping: a literal holding a digit or a reference word
// would be read as a field.
func layoutSafe(lit string) bool {
	if strings.ContainsAny(lit, "0123456789") || strings.HasSuffix(lit, "_") {
		return false
	}
	for _, ref := range []string{"Jan", "Mon", "MST", "PM", "pm"} {
		if strings.Contains(lit, ref) {
			return false
		}
	}
	return true
}

func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
