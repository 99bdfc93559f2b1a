// Package cli implements the spantable command-line interface.
//
// # Commands
//
//   - render: render a table definition (YAML, TOML or JSON) in any format
//   - presets: show a sample table in every built-in border preset
//
// # Logging
//
// Render warnings are logged to stderr with charmbracelet/log. --verbose
// (-v) adds debug output.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI that logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:          "spantable",
		Short:        "spantable renders tables with merged cells",
		Long:         `spantable renders table definitions with column and row spans as bordered text, Markdown, CSV, TSV or HTML.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.presetsCommand())

	return root
}
