package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	// Column accents cycle for tables wider than three columns.
	columnStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Padding(0, 1), // cyan
		lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Padding(0, 1), // magenta
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Padding(0, 1), // green
	}

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Render writes a titled table to w.
func Render(w io.Writer, title string, headers []string, rows []Row) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return columnStyles[col%len(columnStyles)]
		})

	for _, r := range rows {
		t.Row(r...)
	}

	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, t.Render())
}

// Successf prints a bold green status line.
func Successf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Warningf prints a bold yellow status line.
func Warningf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf(format, args...)))
}

// Errorf prints a bold red status line.
func Errorf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf(format, args...)))
}
