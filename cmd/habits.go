package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/habitgrid/internal/output"
)

// habitsCmd represents the habits command.
var habitsCmd = &cobra.Command{
	Use:     "habits",
	Aliases: []string{"ls"},
	Short:   "List tracked habits",
	RunE:    runHabits,
}

func init() {
	rootCmd.AddCommand(habitsCmd)
}

func runHabits(cmd *cobra.Command, args []string) error {
	table, warnings := loadEnsureToday()
	printWarnings(warnings)

	if ctx.IsJSON() {
		habits := table.Habits
		if habits == nil {
			habits = []string{}
		}
		return ctx.JSONFormatter().JSON(output.HabitsResponse{
			Status: "ok",
			Habits: habits,
		})
	}

	cli := ctx.CLIFormatter()
	if len(table.Habits) == 0 {
		cli.Muted("No habits added yet. Add one with 'habitgrid add <name>'.")
		return nil
	}
	for _, habit := range table.Habits {
		cli.Println(cli.HabitName(habit))
	}
	return nil
}
