package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/habitgrid/internal/output"
)

// todayCmd represents the today command.
var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t"},
	Short:   "Show today's habit checklist",
	RunE:    runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	table, warnings := loadEnsureToday()
	printWarnings(warnings)

	today := ctx.Today()

	if ctx.IsJSON() {
		row := table.FindRow(today)
		return ctx.JSONFormatter().JSON(output.DayResponse{
			Status: "ok",
			Day:    output.NewRowOutput(table, row),
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title(fmt.Sprintf("Today (%s)", today))
	cli.PrintChecklist(table, today)

	if len(table.Habits) > 0 {
		done := 0
		for _, habit := range table.Habits {
			if v, _ := table.Cell(today, habit); v {
				done++
			}
		}
		cli.Println("")
		cli.Muted(fmt.Sprintf("%d of %d done", done, len(table.Habits)))
	}
	return nil
}
