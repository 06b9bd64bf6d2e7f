// Package cmd provides the CLI commands for Habitgrid.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/habitgrid/internal/logging"
	"github.com/manav03panchal/habitgrid/internal/model"
	"github.com/manav03panchal/habitgrid/internal/output"
	"github.com/manav03panchal/habitgrid/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "habitgrid",
	Short: "A command-line daily habit tracker",
	Long: `Habitgrid tracks your daily habits in a plain comma-delimited table:
one row per day, one boolean column per habit.

Examples:
  habitgrid add Exercise
  habitgrid check Exercise
  habitgrid uncheck Exercise yesterday
  habitgrid today
  habitgrid serve`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		if flagDebug {
			logging.InitDebug()
		}

		// Parse format flag
		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		// Parse color flag
		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		ctx = runtime.New(opts)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show today's checklist
		return runToday(cmd, args)
	},
}

// loadEnsureToday runs the load and ensure-today steps every read-only
// command starts with. Load and save problems are warnings, never fatal:
// the returned table is always usable for the rest of the cycle. When the
// load itself failed, the ensured row stays in memory only, so a broken
// file is never overwritten by a read.
func loadEnsureToday() (*model.Table, []string) {
	var warnings []string

	table, err := ctx.Store.Load()
	if err != nil {
		warnings = append(warnings, "Error loading habit data: "+err.Error())
	}
	if table.EnsureDay(ctx.Today()) && err == nil {
		if saveErr := ctx.Store.Save(table); saveErr != nil {
			warnings = append(warnings, "Error saving habit data: "+saveErr.Error())
		}
	}
	return table, warnings
}

// loadForUpdate is the load step for mutating commands. Unlike
// loadEnsureToday, a failed load is fatal here: saving the fallback empty
// table would destroy whatever is left in the broken file. The ensured
// today row is persisted by the mutation's own save.
func loadForUpdate() (*model.Table, error) {
	table, err := ctx.Store.Load()
	if err != nil {
		return nil, err
	}
	table.EnsureDay(ctx.Today())
	return table, nil
}

// printWarnings surfaces non-fatal warnings in CLI mode.
func printWarnings(warnings []string) {
	if ctx.IsJSON() {
		return
	}
	cli := ctx.CLIFormatter()
	for _, w := range warnings {
		cli.Warning(w)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("habitgrid %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().PrintError("error", err.Error(), runtime.GetSuggestion(err))
	} else {
		os.Stderr.WriteString("Error: " + runtime.FormatError(err) + "\n")
	}
	os.Exit(1)
}
