package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/TudorHulban/stripscheduler"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - titles
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - headers
	colorDim   = lipgloss.Color("240") // Dim gray - borders
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)
	styleHead  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

// PrintError renders err the way the CLI reports failures.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+err.Error())
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHead.Padding(0, 1)
			}

			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func formatRatio(value float64) string {
	return strconv.FormatFloat(value, 'f', 4, 64)
}

func renderReport(report *stripscheduler.Report) string {
	t := newTable().
		Headers("Metric", "Value").
		Rows(
			[]string{"Algorithm", report.Algorithm.String()},
			[]string{"N", strconv.Itoa(report.StripWidth)},
			[]string{"Tasks", strconv.Itoa(report.Tasks)},
			[]string{"Levels", strconv.Itoa(report.Levels)},
			[]string{"T(S)", strconv.Itoa(report.Makespan)},
			[]string{"W", formatRatio(report.TotalWork)},
			[]string{"E", formatRatio(report.Efficiency)},
			[]string{"Idle", strconv.Itoa(report.IdleArea)},
			[]string{"Time", fmt.Sprintf("%d ms", report.Elapsed.Milliseconds())},
		)

	return styleTitle.Render("Result") + " " + styleDim.Render(report.RunID) + "\n" + t.String()
}

func renderComparison(nfdh, ffdh *stripscheduler.Report) string {
	row := func(name string, value func(*stripscheduler.Report) string) []string {
		return []string{name, value(nfdh), value(ffdh)}
	}

	t := newTable().
		Headers("Metric", nfdh.Algorithm.String(), ffdh.Algorithm.String()).
		Rows(
			row("Levels", func(r *stripscheduler.Report) string { return strconv.Itoa(r.Levels) }),
			row("T(S)", func(r *stripscheduler.Report) string { return strconv.Itoa(r.Makespan) }),
			row("W", func(r *stripscheduler.Report) string { return formatRatio(r.TotalWork) }),
			row("E", func(r *stripscheduler.Report) string { return formatRatio(r.Efficiency) }),
			row("Idle", func(r *stripscheduler.Report) string { return strconv.Itoa(r.IdleArea) }),
		)

	return styleTitle.Render("Comparison") + " " + styleDim.Render(
		fmt.Sprintf("N: %d, tasks: %d", nfdh.StripWidth, nfdh.Tasks),
	) + "\n" + t.String()
}
