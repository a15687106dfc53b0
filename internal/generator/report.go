package generator

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-articles/internal/links"
)

// FormatReport renders the link report for console consumption. The output
// lists every broken link with its origin entry and the nearest known
// anchors, if any.
func FormatReport(report links.Report) string {
	if report.Valid {
		return fmt.Sprintf("all %d anchor links valid", report.TotalLinks)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d of %d anchor links broken:\n", len(report.BrokenLinks), report.TotalLinks)

	for _, broken := range report.BrokenLinks {
		fmt.Fprintf(&b, "  %s -> %s", broken.FromPath, broken.FullLink)
		if broken.TargetMissing {
			fmt.Fprintf(&b, " (no entry at %s)", broken.ToPath)
		} else {
			fmt.Fprintf(&b, " (no heading %q)", broken.Anchor)
			if len(broken.Suggestions) > 0 {
				fmt.Fprintf(&b, ", did you mean %s", strings.Join(broken.Suggestions, ", "))
			}
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
