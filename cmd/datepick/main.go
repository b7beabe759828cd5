package main

import (
	"os"
	"regexp"
	"strings"

	"datepick/internal/cli"
)

var reISODate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func rewriteDirectFormatArgs(argv []string) []string {
	// Convenience: `datepick 2024-12-25` works like `datepick format 2024-12-25`.
	//
	// Cobra treats the first non-flag token as a subcommand, so argv is rewritten
	// before parsing. Persistent flags may come first, so look for the first
	// positional token rather than argv[1].
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--format":  true,
		"--locale":  true,
		"--pattern": true,
		"--min":     true,
		"--max":     true,
		"--initial": true,
	}

	insert := func(i int) []string {
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:i]...)
		out = append(out, "format")
		return append(out, argv[i:]...)
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// Cobra stops resolving subcommands at "--", so "format" goes before it.
			if i+1 < len(argv) && reISODate.MatchString(argv[i+1]) {
				return insert(i)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			// Bool flags and --flag=value take no separate value.
			if valueFlags[a] {
				i++
			}
			continue
		}
		if reISODate.MatchString(a) {
			return insert(i)
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteDirectFormatArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
