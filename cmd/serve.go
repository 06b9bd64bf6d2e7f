package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/habitgrid/internal/auth"
	"github.com/manav03panchal/habitgrid/internal/server"
	"github.com/manav03panchal/habitgrid/internal/validate"
)

// Serve command flags.
var serveFlagAddr string

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the password-gated web UI",
	Long: `Serve the habit tracker web UI.

The password is read from the ` + auth.PasswordEnv + ` environment
variable. The server refuses to start without it.

Examples:
  HABITGRID_PASSWORD=secret habitgrid serve
  HABITGRID_PASSWORD=secret habitgrid serve --addr 127.0.0.1:8080`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlagAddr, "addr", ":8501",
		"Listen address (host:port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := validate.Addr(serveFlagAddr); err != nil {
		return err
	}

	// Fail closed: no secret, no server.
	gate, err := auth.NewGateFromEnv()
	if err != nil {
		Die(err)
	}

	srv, err := server.New(server.Config{
		Store: ctx.Store,
		Gate:  gate,
		Now:   ctx.Now,
	})
	if err != nil {
		return err
	}

	ctx.CLIFormatter().Muted("Serving on " + serveFlagAddr +
		" (store: " + ctx.Store.Path() + ")")
	return srv.ListenAndServe(serveFlagAddr)
}
