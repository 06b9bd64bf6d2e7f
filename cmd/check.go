package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/habitgrid/internal/output"
	"github.com/manav03panchal/habitgrid/internal/parser"
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:     "check HABIT [WHEN]",
	Aliases: []string{"done", "x"},
	Short:   "Mark a habit complete",
	Long: `Mark a habit complete for a day (default: today).

WHEN accepts natural language; days other than today must already exist
in the store.

Examples:
  habitgrid check Exercise
  habitgrid check Exercise yesterday
  habitgrid check Exercise 2024-01-05`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(args, true)
	},
}

// uncheckCmd represents the uncheck command.
var uncheckCmd = &cobra.Command{
	Use:     "uncheck HABIT [WHEN]",
	Aliases: []string{"undo-check", "o"},
	Short:   "Mark a habit not complete",
	Long: `Mark a habit not complete for a day (default: today).

Examples:
  habitgrid uncheck Exercise
  habitgrid uncheck Exercise last monday`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(args, false)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(uncheckCmd)
}

func runToggle(args []string, value bool) error {
	habit := args[0]
	day, err := parser.ParseDay(strings.Join(args[1:], " "), ctx.Now())
	if err != nil {
		return err
	}

	table, err := loadForUpdate()
	if err != nil {
		return err
	}

	if err := table.SetCell(day, habit, value); err != nil {
		return err
	}
	if err := ctx.Store.Save(table); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.ToggleResponse{
			Status: "ok",
			Date:   day,
			Habit:  habit,
			Value:  value,
		})
	}

	cli := ctx.CLIFormatter()
	if value {
		cli.Success(habit + " done for " + day)
	} else {
		cli.Success(habit + " cleared for " + day)
	}
	return nil
}
