package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/spantable"
)

const definition = `
header: [H1, H2, H3]
rows:
  - [{text: AB, colspan: 2}, C]
`

// execute runs the root command with args and stdin, returning stdout and
// the log output.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, log.DebugLevel)
	root := c.RootCommand("test")
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.Execute()
	return out.String(), logs.String(), err
}

func TestRenderFromStdin(t *testing.T) {
	t.Parallel()
	out, logs, err := execute(t, definition, "render")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"+----+----+----+\n"+
		"| H1 | H2 | H3 |\n"+
		"+==============+\n"+
		"| AB      | C  |\n"+
		"+---------+----+\n", out)
	assert.Contains(t, logs, "rendered table")
}

func TestRenderFlags(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		stdin string
		args  []string
		want  string
	}{
		"csv": {
			stdin: definition,
			args:  []string{"render", "--format", "csv"},
			want:  "H1,H2,H3\nAB,,C\n",
		},
		"markdown preset": {
			stdin: definition,
			args:  []string{"render", "-p", "ascii-markdown"},
			want:  "| H1 | H2 | H3 |\n|----|----|----|\n| AB      | C  |\n",
		},
		"json input": {
			stdin: `{"rows": [["a", "b"]]}`,
			args:  []string{"render", "--input", "json", "-p", "nothing"},
			want:  " a   b \n",
		},
		"width": {
			stdin: "rows: [[ab, cd]]",
			args:  []string{"render", "-w", "21"},
			want:  "+---------+---------+\n| ab      | cd      |\n+---------+---------+\n",
		},
		"disabled arrangement": {
			stdin: "rows: [[ab, cd]]",
			args:  []string{"render", "-w", "21", "--arrangement", "disabled"},
			want:  "+----+----+\n| ab | cd |\n+----+----+\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, _, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "table.toml")
	require.NoError(t, os.WriteFile(path, []byte(`rows = [["x"]]`), 0o600))

	out, _, err := execute(t, "", "render", path)
	require.NoError(t, err)
	assert.Equal(t, "+---+\n| x |\n+---+\n", out)
}

func TestRenderErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		stdin  string
		args   []string
		target error
	}{
		"unknown preset": {
			stdin:  definition,
			args:   []string{"render", "--preset", "fancy"},
			target: spantable.ErrUnknownPreset,
		},
		"unknown format": {
			stdin:  definition,
			args:   []string{"render", "--format", "xml"},
			target: spantable.ErrUnsupportedFormat,
		},
		"unknown input": {
			stdin:  definition,
			args:   []string{"render", "--input", "ini"},
			target: spantable.ErrUnsupportedFormat,
		},
		"malformed table": {
			stdin:  "rows: [[a, b], [c]]",
			args:   []string{"render"},
			target: spantable.ErrPartialRow,
		},
		"bad definition": {
			stdin:  "preset: fancy\nrows: [[a]]",
			args:   []string{"render"},
			target: spantable.ErrInvalidDefinition,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, _, err := execute(t, tt.stdin, tt.args...)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestRenderWidthAndFitExclusive(t *testing.T) {
	t.Parallel()
	_, _, err := execute(t, definition, "render", "--width", "10", "--fit")
	assert.Error(t, err)
}

func TestRenderLogsWarnings(t *testing.T) {
	t.Parallel()
	out, logs, err := execute(t, "columns: [{width: \"10..\"}]\nrows: [[a]]", "render", "-w", "5")
	require.NoError(t, err)
	assert.Equal(t, "+------------+\n| a          |\n+------------+\n", out)
	assert.Contains(t, logs, "table does not fit")
	assert.Contains(t, logs, "requested=5")
}

func TestRenderColor(t *testing.T) {
	t.Parallel()
	tbl := spantable.New().SetHeaderStrings("H1").AddStrings("a")
	styleHeader(tbl)
	header, ok := tbl.Header()
	require.True(t, ok)
	assert.Contains(t, header[0].Text(), "H1")

	lines, err := tbl.Lines()
	require.NoError(t, err)
	assert.Equal(t, "+----+", lines[0])

	// no header is a no-op
	bare := spantable.New().AddStrings("a")
	styleHeader(bare)
	_, ok = bare.Header()
	assert.False(t, ok)
}

func TestPresetsCommand(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "", "presets")
	require.NoError(t, err)
	for _, p := range spantable.Presets() {
		assert.Contains(t, out, p.Name)
	}
	assert.Contains(t, out, "All figures in thousands")
	assert.Contains(t, out, "═")
}

func TestPresetsSampleRendersEverywhere(t *testing.T) {
	t.Parallel()
	for _, p := range spantable.Presets() {
		for _, width := range []int{0, 30, 60} {
			res, err := sampleTable().SetPreset(p).SetWidth(width).Render()
			require.NoError(t, err, p.Name)
			assert.Empty(t, res.Warnings, "%s at %d", p.Name, width)
			if width > 0 {
				assert.Equal(t, width, res.Width, p.Name)
			}
		}
	}
}

func TestLogWarnings(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)
	c.logWarnings([]error{
		&spantable.BudgetExceededWarning{Requested: 10, Actual: 20},
		&spantable.WrapWarning{Row: 1, Col: 2, Width: 0},
		assert.AnError,
	})
	logs := buf.String()
	assert.Contains(t, logs, "table does not fit")
	assert.Contains(t, logs, "actual=20")
	assert.Contains(t, logs, "cell too narrow")
	assert.Contains(t, logs, assert.AnError.Error())
}

func TestLoggerLevels(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)
	c.Logger.Debug("hidden")
	assert.Zero(t, buf.Len())

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
