package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "classmark.dev/pkg/classmark/internal/model"
)

const (
	// ANSI color codes for unmarked rows (dark gray, faint).
	grayColor  = "\033[2;90m" // Faint + dark gray
	resetColor = "\033[0m"    // Reset
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayDocumentCount shows the number of document files found.
func (p *TUI) DisplayDocumentCount(ctx context.Context, count int) {
	if err := ctx.Err(); err != nil {
		return
	}

	fmt.Fprintf(p.output, "  found %d class document file(s)\n", count)
}

// DisplayReports shows per-class marking results, paginating when the list
// does not fit on screen.
func (p *TUI) DisplayReports(ctx context.Context, reports []m.ClassReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([]markRow, 0)
	markedTotal := 0

	for _, report := range reports {
		for _, method := range report.Methods {
			rows = append(rows, markRow{
				class:      report.ClassName,
				method:     method.Name,
				descriptor: method.Descriptor,
				marked:     method.Marked,
				rule:       method.Reason,
			})

			if method.Marked {
				markedTotal++
			}
		}
	}

	model := newMarkListModel(rows, len(reports), markedTotal)

	// Get initial terminal size
	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	// If list is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// markRow is one method entry in the viewer.
type markRow struct {
	class      string
	method     string
	descriptor string
	marked     bool
	rule       string
}

// markListModel is the Bubble Tea model for the marking report viewer.
type markListModel struct {
	rows        []markRow
	classCount  int
	markedTotal int
	height      int
	width       int
	offset      int // Current scroll offset
	quitting    bool
}

func newMarkListModel(rows []markRow, classCount, markedTotal int) markListModel {
	return markListModel{
		rows:        rows,
		classCount:  classCount,
		markedTotal: markedTotal,
	}
}

func (mlm markListModel) Init() tea.Cmd {
	return nil
}

func (mlm markListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		mlm.height = msg.Height
		mlm.width = msg.Width

		return mlm, nil

	case tea.KeyMsg:
		return mlm.handleKeyPress(msg)
	}

	return mlm, nil
}

//nolint:cyclop // Key handling requires multiple cases for UI navigation
func (mlm markListModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		mlm.quitting = true
		return mlm, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		mlm.quitting = true
		return mlm, tea.Quit

	case "down", "j":
		mlm.offset++

		if maxOffset := mlm.maxOffset(); mlm.offset > maxOffset {
			mlm.offset = maxOffset
		}

		return mlm, nil

	case "up", "k":
		mlm.offset--
		if mlm.offset < 0 {
			mlm.offset = 0
		}

		return mlm, nil

	case "g", "home":
		mlm.offset = 0

		return mlm, nil

	case "G", "end":
		mlm.offset = mlm.maxOffset()

		return mlm, nil

	case "d", "pgdown":
		mlm.offset += mlm.itemsPerPage()

		if maxOffset := mlm.maxOffset(); mlm.offset > maxOffset {
			mlm.offset = maxOffset
		}

		return mlm, nil

	case "u", "pgup":
		mlm.offset -= mlm.itemsPerPage()
		if mlm.offset < 0 {
			mlm.offset = 0
		}

		return mlm, nil
	}

	return mlm, nil
}

// itemsPerPage calculates how many rows fit on screen.
func (mlm markListModel) itemsPerPage() int {
	if mlm.height == 0 {
		return 10 // Default
	}
	// Reserve space for header, summary, totals and footer.
	reserved := 12

	available := mlm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

// maxOffset returns the maximum scroll offset.
func (mlm markListModel) maxOffset() int {
	perPage := mlm.itemsPerPage()
	if perPage <= 0 {
		return 0
	}

	maxOff := len(mlm.rows) - perPage
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

// needsPagination returns true if the list is too large to fit on screen.
func (mlm markListModel) needsPagination() bool {
	if len(mlm.rows) == 0 {
		return false
	}

	return len(mlm.rows) > mlm.itemsPerPage() && mlm.height > 0
}

func (mlm markListModel) View() string {
	var b strings.Builder

	mlm.renderHeader(&b)

	if len(mlm.rows) == 0 {
		b.WriteString("  no methods found\n")
		return b.String()
	}

	mlm.renderRows(&b)

	return b.String()
}

func (mlm markListModel) renderHeader(b *strings.Builder) {
	b.WriteString("╔════════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║              classmark - generated method marking              ║\n")
	b.WriteString("╚════════════════════════════════════════════════════════════════╝\n\n")
}

func (mlm markListModel) renderRows(b *strings.Builder) {
	totalRows := len(mlm.rows)

	b.WriteString("  marking summary:\n\n")

	itemsPerPage := mlm.itemsPerPage()
	needsPagination := totalRows > itemsPerPage && mlm.height > 0

	start := mlm.offset
	if start >= totalRows {
		start = totalRows - 1
		if start < 0 {
			start = 0
		}
	}

	end := start + itemsPerPage
	if end > totalRows {
		end = totalRows
	}

	displayRows := mlm.rows
	if needsPagination {
		displayRows = mlm.rows[start:end]
	}

	for _, row := range displayRows {
		if row.marked {
			fmt.Fprintf(b, "  %s.%s%s marked (%s)\n", row.class, row.method, row.descriptor, row.rule)
			continue
		}

		fmt.Fprintf(b, "  %s%s.%s%s%s\n", grayColor, row.class, row.method, row.descriptor, resetColor)
	}

	b.WriteString("\n")
	fmt.Fprintf(b, "  Total: %d method(s) across %d class(es)\n", totalRows, mlm.classCount)
	fmt.Fprintf(b, "  Marked as generated: %d\n", mlm.markedTotal)

	if needsPagination {
		page := start/itemsPerPage + 1
		pages := (totalRows + itemsPerPage - 1) / itemsPerPage

		fmt.Fprintf(b, "\n  page %d/%d", page, pages)
		b.WriteString("\n  ↑/↓ scroll · g/G first/last · q quit\n")
	}
}
