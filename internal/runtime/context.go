// Package runtime provides application runtime context for Habitgrid.
package runtime

import (
	"os"
	"time"

	"github.com/manav03panchal/habitgrid/internal/model"
	"github.com/manav03panchal/habitgrid/internal/output"
	"github.com/manav03panchal/habitgrid/internal/storage"
)

// Context holds the application runtime context.
type Context struct {
	Store     *storage.Store
	Formatter *output.Formatter

	// Now supplies the current time; injected for testability.
	Now func() time.Time

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	StorePath string
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		StorePath: storage.DefaultPath(),
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
	}
}

// New creates a new runtime context.
func New(opts Options) *Context {
	// Check for environment variable override
	if envPath := os.Getenv("HABITGRID_STORE"); envPath != "" {
		opts.StorePath = envPath
	}

	store := storage.New(storage.Options{Path: opts.StorePath})

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		Store:     store,
		Formatter: formatter,
		Now:       time.Now,
		Debug:     opts.Debug,
	}
}

// Today returns the canonical date string for the current day.
func (c *Context) Today() string {
	return model.Day(c.Now())
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// Debugf prints debug output if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}
