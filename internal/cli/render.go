package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bjaus/spantable"
)

// renderOpts holds the command-line flags for the render command. Flags
// left at their zero value keep what the definition says.
type renderOpts struct {
	width       int    // target width in cells
	fit         bool   // use the terminal width
	preset      string // border preset name
	format      string // output format
	arrangement string // auto, disabled or shrink
	color       bool   // style header cells
	input       string // decoder for stdin: yaml, toml or json
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: string(spantable.Text), input: "yaml"}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a table definition",
		Long: `Render a table definition file (.yaml, .yml, .toml or .json).
With no file the definition is read from stdin; --input picks its format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := readDefinition(cmd.InOrStdin(), args, opts.input)
			if err != nil {
				return err
			}
			t, err := def.Table()
			if err != nil {
				return err
			}
			if err := opts.apply(t, cmd.OutOrStdout()); err != nil {
				return err
			}
			f, err := spantable.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			return c.write(cmd.OutOrStdout(), f, t)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "target width in cells")
	cmd.Flags().BoolVar(&opts.fit, "fit", false, "fit the table to the terminal width")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "border preset (see 'spantable presets')")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: "+formatNames())
	cmd.Flags().StringVar(&opts.arrangement, "arrangement", "", "column arrangement: auto, disabled, shrink")
	cmd.Flags().BoolVar(&opts.color, "color", false, "style header cells")
	cmd.Flags().StringVar(&opts.input, "input", opts.input, "definition format when reading stdin: yaml, toml, json")
	cmd.MarkFlagsMutuallyExclusive("width", "fit")

	return cmd
}

func readDefinition(stdin io.Reader, args []string, format string) (spantable.Definition, error) {
	if len(args) == 1 && args[0] != "-" {
		return spantable.LoadDefinition(args[0])
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return spantable.Definition{}, fmt.Errorf("read stdin: %w", err)
	}
	return spantable.ParseDefinition(data, format)
}

// apply overrides the definition with the flags that were given.
func (o *renderOpts) apply(t *spantable.Table, out io.Writer) error {
	switch {
	case o.fit:
		f, ok := out.(*os.File)
		if !ok {
			f = os.Stdout
		}
		t.SetWidthSource(spantable.TerminalWidth(f))
	case o.width > 0:
		t.SetWidth(o.width)
	}
	if o.preset != "" {
		p, err := spantable.PresetByName(o.preset)
		if err != nil {
			return err
		}
		t.SetPreset(p)
	}
	if o.arrangement != "" {
		a, ok := spantable.ParseArrangement(o.arrangement)
		if !ok {
			return fmt.Errorf("unknown arrangement %q", o.arrangement)
		}
		t.SetArrangement(a)
	}
	if o.color {
		styleHeader(t)
	}
	return nil
}

// styleHeader wraps every header cell in ANSI styling. The layout engine
// measures the escapes as zero-width.
func styleHeader(t *spantable.Table) {
	header, ok := t.Header()
	if !ok {
		return
	}
	styled := make([]spantable.Cell, len(header))
	for i, cell := range header {
		cell.Content = []string{headerStyle.Render(cell.Text())}
		styled[i] = cell
	}
	t.SetHeader(styled...)
}

func (c *CLI) write(w io.Writer, f spantable.Format, t *spantable.Table) error {
	if f != spantable.Text {
		return spantable.Write(w, f, t)
	}
	res, err := t.Render()
	if err != nil {
		return err
	}
	c.Logger.Debug("rendered table", "lines", len(res.Lines), "width", res.Width)
	c.logWarnings(res.Warnings)
	for _, line := range res.Lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatNames() string {
	names := make([]string, 0, len(spantable.Formats()))
	for _, f := range spantable.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
