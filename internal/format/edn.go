package format

import (
	"encoding/json"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// WriteEDN writes v as EDN. Values go through JSON first so struct tags decide
// field names; map keys become keywords and YYYY-MM-DD strings become
// #inst literals so EDN readers get real dates back.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}
	var sb strings.Builder
	e := ednWriter{sb: &sb, pretty: pretty}
	e.value(x, 0)
	sb.WriteByte('\n')
	_, err = io.WriteString(w, sb.String())
	return err
}

var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type ednWriter struct {
	sb     *strings.Builder
	pretty bool
}

func (e ednWriter) value(v any, depth int) {
	switch t := v.(type) {
	case nil:
		e.sb.WriteString("nil")
	case bool:
		e.sb.WriteString(strconv.FormatBool(t))
	case string:
		if isoDate.MatchString(t) {
			e.sb.WriteString("#inst ")
		}
		e.sb.WriteString(strconv.Quote(t))
	case float64:
		// Grid payloads are mostly small integers (days, months, years).
		if t == float64(int64(t)) {
			e.sb.WriteString(strconv.FormatInt(int64(t), 10))
		} else {
			e.sb.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
		}
	case []any:
		e.seq('[', ']', len(t), depth, func(i int) { e.value(t[i], depth+1) })
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		e.seq('{', '}', len(keys), depth, func(i int) {
			e.sb.WriteString(":" + strings.ReplaceAll(strings.TrimSpace(keys[i]), " ", "-") + " ")
			e.value(t[keys[i]], depth+1)
		})
	default:
		e.sb.WriteString(strconv.Quote("unsupported"))
	}
}

func (e ednWriter) seq(l, r byte, n, depth int, item func(int)) {
	e.sb.WriteByte(l)
	for i := 0; i < n; i++ {
		switch {
		case e.pretty:
			e.sb.WriteString("\n" + strings.Repeat("  ", depth+1))
		case i > 0:
			e.sb.WriteByte(' ')
		}
		item(i)
	}
	if e.pretty && n > 0 {
		e.sb.WriteString("\n" + strings.Repeat("  ", depth))
	}
	e.sb.WriteByte(r)
}
