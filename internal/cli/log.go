package cli

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/bjaus/spantable"
)

// newLogger creates a logger with timestamps formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// logWarnings reports render warnings with their structured fields.
func (c *CLI) logWarnings(warnings []error) {
	for _, w := range warnings {
		var (
			budget *spantable.BudgetExceededWarning
			wrap   *spantable.WrapWarning
		)
		switch {
		case errors.As(w, &budget):
			c.Logger.Warn("table does not fit", "requested", budget.Requested, "actual", budget.Actual)
		case errors.As(w, &wrap):
			c.Logger.Warn("cell too narrow, wrapping per character", "row", wrap.Row, "col", wrap.Col, "width", wrap.Width)
		default:
			c.Logger.Warn(w.Error())
		}
	}
}
