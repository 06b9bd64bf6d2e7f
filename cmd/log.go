package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/manav03panchal/habitgrid/internal/model"
	"github.com/manav03panchal/habitgrid/internal/output"
)

// Log command flags.
var logFlagLimit int

// logCmd represents the log command.
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the raw habit table",
	Long: `Print every stored day with its habit values, newest last, exactly as
it round-trips through the store.

Examples:
  habitgrid log
  habitgrid log --limit 7`,
	RunE: runLog,
}

func init() {
	logCmd.Flags().IntVarP(&logFlagLimit, "limit", "n", 0,
		"Show only the last N days (0 = all)")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	table, warnings := loadEnsureToday()
	printWarnings(warnings)

	if logFlagLimit > 0 && len(table.Rows) > logFlagLimit {
		trimmed := table.Clone()
		trimmed.Rows = trimmed.Rows[len(trimmed.Rows)-logFlagLimit:]
		table = trimmed
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.NewTableResponse(table))
	}

	ctx.CLIFormatter().PrintTable(table, terminalWidth())
	return nil
}

// terminalWidth returns the width to clamp table output to, or 0 when
// stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < len(model.DayFormat) {
		return 0
	}
	return width
}
