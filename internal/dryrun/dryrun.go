// Package dryrun provides dry-run mode for previewing requests without
// sending them.
package dryrun

import (
	"context"
	"fmt"
	"io"
)

type contextKey struct{}

// WithDryRun returns a context with dry-run mode enabled/disabled.
func WithDryRun(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, contextKey{}, enabled)
}

// IsEnabled returns true if dry-run mode is enabled.
func IsEnabled(ctx context.Context) bool {
	enabled, _ := ctx.Value(contextKey{}).(bool)
	return enabled
}

// Preview describes the request a command would have sent.
type Preview struct {
	Operation string // e.g. "publish video"
	Endpoint  string // e.g. "POST /api/upload"
	Fields    [][2]string
	Files     [][2]string // field name, local path
	Warnings  []string
}

// Write renders the preview.
func (p *Preview) Write(w io.Writer) {
	_, _ = fmt.Fprintf(w, "\n[DRY-RUN] Would %s via %s\n", p.Operation, p.Endpoint)
	_, _ = fmt.Fprintf(w, "───────────────────────────────────────\n")

	for _, f := range p.Fields {
		_, _ = fmt.Fprintf(w, "  %s: %s\n", f[0], f[1])
	}
	for _, f := range p.Files {
		_, _ = fmt.Fprintf(w, "  %s: @%s\n", f[0], f[1])
	}

	if len(p.Warnings) > 0 {
		_, _ = fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range p.Warnings {
			_, _ = fmt.Fprintf(w, "  ! %s\n", warning)
		}
	}

	_, _ = fmt.Fprintf(w, "───────────────────────────────────────\n")
	_, _ = fmt.Fprintln(w, "Nothing uploaded (dry-run mode)")
}
