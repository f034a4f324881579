// Command feascheck runs the feasibility engine against a JSON file from
// the command line, printing a colorized report when attached to a
// terminal and a plain one otherwise.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arnavshah/roster-feasibility/internal/feasibility"
	"github.com/arnavshah/roster-feasibility/internal/wire"
)

var (
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("#fb4934")).Bold(true)
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("#fabd2f"))
	styleOK      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ec07c")).Bold(true)
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
)

func main() {
	colorEnabled := isatty.IsTerminal(os.Stdout.Fd())

	root := &cobra.Command{
		Use:   "feascheck",
		Short: "Evaluate a roster against the feasibility engine's constraint registry",
	}

	var inputPath string
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check one schedule/staff/config payload for feasibility",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(inputPath, colorEnabled)
		},
	}
	checkCmd.Flags().StringVarP(&inputPath, "file", "f", "", "path to a JSON FeasibilityCheckRequest payload")
	_ = checkCmd.MarkFlagRequired("file")

	root.AddCommand(checkCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCheck(path string, color bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var req wire.FeasibilityCheckRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	result := feasibility.Check(req.Schedule, req.Staff, req.Config, req.PreviousPeriodEnd)

	if result.Feasible {
		printLine(color, styleOK, "FEASIBLE")
	} else {
		printLine(color, styleError, "INFEASIBLE")
	}

	if len(result.Violations) == 0 {
		printLine(color, styleDim, "no violations")
		return nil
	}

	for _, v := range result.Violations {
		style := styleWarning
		if v.Severity == "error" {
			style = styleError
		}
		line := fmt.Sprintf("[%s] %s: %s", v.Severity, v.ConstraintID, v.Message)
		printLine(color, style, line)
	}

	return nil
}

func printLine(color bool, style lipgloss.Style, text string) {
	if color {
		fmt.Println(style.Render(text))
		return
	}
	fmt.Println(text)
}
