// Package controller provides output adapters for displaying marking results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "classmark.dev/pkg/classmark/internal/model"
)

// UI defines the interface for displaying marking reports. Implementations
// can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayDocumentCount shows how many document files will be processed.
	DisplayDocumentCount(ctx context.Context, count int)

	// DisplayReports shows the per-class marking results.
	DisplayReports(ctx context.Context, reports []m.ClassReport) error
}

// NewUI selects the UI implementation: interactive terminals get the TUI,
// everything else the plain writer.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}
