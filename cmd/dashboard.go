package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/habitgrid/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "ui"},
	Short:   "Interactive checklist for today's habits",
	Long: `Open an interactive terminal checklist: toggle today's habits with
space, add new ones with 'a', quit with 'q'.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	return tui.Run(tui.ChecklistConfig{
		Store: ctx.Store,
		Now:   ctx.Now,
	})
}
