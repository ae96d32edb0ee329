package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "classmark.dev/pkg/classmark/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayDocumentCount prints the number of document files found.
func (s *SimpleUI) DisplayDocumentCount(ctx context.Context, count int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Found %d class document file(s)\n", count)
}

// DisplayReports prints the per-class marking results as a table.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.ClassReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	total, marked := countMethods(reports)
	s.printf("\n%s", renderReportTable(reports, total, marked))

	return nil
}

func countMethods(reports []m.ClassReport) (int, int) {
	total := 0
	marked := 0

	for _, report := range reports {
		total += len(report.Methods)
		marked += report.MarkedCount()
	}

	return total, marked
}

func renderReportTable(reports []m.ClassReport, total, marked int) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Class", "Method", "Descriptor", "Marked", "Rule"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	for _, report := range reports {
		for _, method := range report.Methods {
			table.Append([]string{
				report.ClassName,
				method.Name,
				method.Descriptor,
				markedLabel(method.Marked),
				method.Reason,
			})
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Classes %d", len(reports)),
		fmt.Sprintf("Methods %d", total),
		"",
		fmt.Sprintf("%d", marked),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func markedLabel(marked bool) string {
	if marked {
		return "yes"
	}

	return "no"
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
