package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/habitgrid/internal/output"
	"github.com/manav03panchal/habitgrid/internal/validate"
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a new habit column",
	Long: `Add a new habit to the table. Existing days are backfilled with false
and the store is saved immediately.

Examples:
  habitgrid add Exercise
  habitgrid add "Read 30 minutes"`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := validate.SanitizeHabitName(args[0])
	if err := validate.HabitName(name); err != nil {
		return err
	}

	table, err := loadForUpdate()
	if err != nil {
		return err
	}

	if err := table.AddHabit(name); err != nil {
		return err
	}
	ctx.Debugf("added habit %q, saving %d rows", name, len(table.Rows))
	if err := ctx.Store.Save(table); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.AddResponse{
			Status: "ok",
			Habit:  name,
			Habits: table.Habits,
		})
	}

	ctx.CLIFormatter().Success("Habit '" + name + "' added!")
	return nil
}
