// Package ui renders solver results for terminals.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Sprint color functions for building styled strings.
var (
	Bold      = color.New(color.Bold).SprintFunc()
	Dim       = color.New(color.Faint).SprintFunc()
	Cyan      = color.New(color.FgCyan).SprintFunc()
	Green     = color.New(color.FgGreen).SprintFunc()
	Red       = color.New(color.FgRed).SprintFunc()
	BoldGreen = color.New(color.Bold, color.FgGreen).SprintFunc()
	BoldRed   = color.New(color.Bold, color.FgRed).SprintFunc()
)

// Line is one row of solver output.
type Line struct {
	Name      string
	Agents    int
	Budget    int
	Best      int
	ElapsedMS int64
	Plan      []string // optional per-agent activation orders
}

// PrintResult writes one line per result: "name: best" decorated with the
// run parameters. In quiet mode only the integer is written.
func PrintResult(w io.Writer, l Line, quiet bool) {
	if quiet {
		fmt.Fprintln(w, l.Best)
		return
	}
	fmt.Fprintf(w, "%s: %s %s\n",
		Cyan(l.Name),
		BoldGreen(l.Best),
		Dim(fmt.Sprintf("(agents=%d budget=%d %dms)", l.Agents, l.Budget, l.ElapsedMS)),
	)
	for i, p := range l.Plan {
		fmt.Fprintf(w, "  %s %s\n", Dim(fmt.Sprintf("agent %d:", i+1)), p)
	}
}

// PrintError writes a styled error line.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", BoldRed("error:"), err)
}

// Route formats an activation order as "DD@28 → BB@25".
func Route(valves []string, remaining []int) string {
	parts := make([]string, len(valves))
	for i, v := range valves {
		parts[i] = fmt.Sprintf("%s@%d", Bold(v), remaining[i])
	}
	if len(parts) == 0 {
		return Dim("idle")
	}
	return strings.Join(parts, Dim(" → "))
}
