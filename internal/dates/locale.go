package dates

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
)

// DefaultLocale is used when a caller passes an empty or unknown locale.
const DefaultLocale = "en-US"

// resolveLocale maps "pt-BR" / "pt_br" style identifiers onto monday locales.
func resolveLocale(locale string) monday.Locale {
	locale = strings.TrimSpace(strings.ReplaceAll(locale, "-", "_"))
	if locale == "" {
		return monday.LocaleEnUS
	}
	for _, l := range monday.ListLocales() {
		if strings.EqualFold(string(l), locale) {
			return l
		}
	}
	// Bare language ("pt") falls back to the first regional variant we know.
	for _, l := range monday.ListLocales() {
		if lang, _, ok := strings.Cut(string(l), "_"); ok && strings.EqualFold(lang, locale) {
			return l
		}
	}
	return monday.LocaleEnUS
}

// SupportedLocale reports whether locale resolves to something other than the
// English fallback (or is English itself).
func SupportedLocale(locale string) bool {
	l := resolveLocale(locale)
	if l != monday.LocaleEnUS {
		return true
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(locale)), "en")
}

// Reference date used to render names: 2017-01-01 is a Sunday.
func nameRef(m time.Month, w time.Weekday) time.Time {
	if m == 0 {
		return time.Date(2017, time.January, 1+int(w), 12, 0, 0, 0, time.UTC)
	}
	return time.Date(2017, m, 1, 12, 0, 0, 0, time.UTC)
}

func MonthName(m time.Month, locale string) string {
	return monday.Format(nameRef(m, 0), "January", resolveLocale(locale))
}

func MonthShortName(m time.Month, locale string) string {
	return monday.Format(nameRef(m, 0), "Jan", resolveLocale(locale))
}

func WeekdayName(w time.Weekday, locale string) string {
	return monday.Format(nameRef(0, w), "Monday", resolveLocale(locale))
}

func WeekdayShortName(w time.Weekday, locale string) string {
	return monday.Format(nameRef(0, w), "Mon", resolveLocale(locale))
}
