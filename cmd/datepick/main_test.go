package main

import (
	"bytes"
	"strings"
	"testing"

	"datepick/internal/cli"

	"github.com/google/go-cmp/cmp"
)

func TestRewriteDirectFormatArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"datepick"},
			want: []string{"datepick"},
		},
		{
			name: "date first token",
			in:   []string{"datepick", "2024-12-25"},
			want: []string{"datepick", "format", "2024-12-25"},
		},
		{
			name: "date after value flag",
			in:   []string{"datepick", "--pattern", "D MMMM YYYY", "2024-12-25"},
			want: []string{"datepick", "--pattern", "D MMMM YYYY", "format", "2024-12-25"},
		},
		{
			name: "date after equals flag",
			in:   []string{"datepick", "--locale=en-US", "2024-12-25"},
			want: []string{"datepick", "--locale=en-US", "format", "2024-12-25"},
		},
		{
			name: "date after bool flag",
			in:   []string{"datepick", "--pretty", "2024-12-25"},
			want: []string{"datepick", "--pretty", "format", "2024-12-25"},
		},
		{
			name: "date after double dash",
			in:   []string{"datepick", "--", "2024-12-25"},
			want: []string{"datepick", "format", "--", "2024-12-25"},
		},
		{
			name: "subcommand untouched",
			in:   []string{"datepick", "grid", "--month", "2024-12"},
			want: []string{"datepick", "grid", "--month", "2024-12"},
		},
		{
			name: "min value is not a positional",
			in:   []string{"datepick", "--min", "2024-01-01"},
			want: []string{"datepick", "--min", "2024-01-01"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectFormatArgs(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("rewrite (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRewriteDirectFormatArgs_Executes(t *testing.T) {
	t.Setenv("DATEPICK_CONFIG_DIR", t.TempDir())
	t.Setenv("DATEPICK_FORMAT", "")

	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"datepick", "2024-12-25"}, `"2024-12-25"`},
		{[]string{"datepick", "--", "2024-12-25"}, `"2024-12-25"`},
		{[]string{"datepick", "--pattern", "D MMMM YYYY", "--locale", "en-US", "2024-12-25"}, "25 December 2024"},
		{[]string{"datepick", "--pretty", "--", "2024-12-25"}, `"2024-12-25"`},
	}
	for _, tt := range tests {
		argv := rewriteDirectFormatArgs(tt.in)
		cmd := cli.NewRootCmd()
		var out, errOut bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&errOut)
		cmd.SetArgs(argv[1:])
		if err := cmd.Execute(); err != nil {
			t.Fatalf("%q (rewritten %q): %v\nstderr:\n%s", tt.in, argv, err, errOut.String())
		}
		if !strings.Contains(out.String(), tt.want) {
			t.Fatalf("%q: expected %s in output, got:\n%s", tt.in, tt.want, out.String())
		}
	}
}
