package format

import (
	"bytes"
	"strings"
	"testing"
)

type cell struct {
	Day     int    `json:"day,omitempty"`
	Enabled bool   `json:"enabled"`
	Date    string `json:"date,omitempty"`
}

func TestWriteEDN_Compact(t *testing.T) {
	var buf bytes.Buffer
	v := map[string]any{
		"title": "December 2024",
		"days":  []cell{{}, {Day: 1, Enabled: true, Date: "2024-12-01"}},
	}
	if err := Write(&buf, v, "edn", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := `{:days [{:enabled false} {:date #inst "2024-12-01" :day 1 :enabled true}] :title "December 2024"}` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected EDN:\n got: %s\nwant: %s", got, want)
	}
}

func TestWriteEDN_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"a": []int{1, 2}, "b": nil}, true); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := strings.Join([]string{
		"{",
		"  :a [",
		"    1",
		"    2",
		"  ]",
		"  :b nil",
		"}",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("unexpected pretty EDN:\n%s", got)
	}
}

func TestWrite_JSONAndUnknown(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, cell{Day: 2, Enabled: true}, "", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := buf.String(); got != `{"day":2,"enabled":true}`+"\n" {
		t.Fatalf("unexpected JSON %q", got)
	}
	if err := Write(&buf, nil, "xml", false); err == nil {
		t.Fatalf("expected unknown format error")
	}
}
