package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bjaus/spantable"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

func (c *CLI) presetsCommand() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Show every built-in border preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, p := range spantable.Presets() {
				if i > 0 {
					if _, err := fmt.Fprintln(out); err != nil {
						return err
					}
				}
				if _, err := fmt.Fprintln(out, titleStyle.Render(p.Name)); err != nil {
					return err
				}
				t := sampleTable().SetPreset(p).SetWidth(width)
				if err := c.write(out, spantable.Text, t); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, "target width in cells")
	return cmd
}

// sampleTable exercises every junction kind: a colspan in the header, a
// rowspan in the body and a full-width footer row.
func sampleTable() *spantable.Table {
	return spantable.New().
		SetHeader(
			spantable.NewCell("Region").WithRowspan(2),
			spantable.NewCell("Sales").WithColspan(2).WithAlign(spantable.AlignCenter),
		).
		AddStrings("Q1", "Q2").
		AddRow(
			spantable.NewCell("North").WithRowspan(2).WithVAlign(spantable.VAlignMiddle),
			spantable.NewCell("120"),
			spantable.NewCell("135"),
		).
		AddStrings("98", "101").
		AddRow(spantable.NewCell("All figures in thousands").WithColspan(3))
}
