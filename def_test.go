package spantable_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/spantable"
)

const yamlDefinition = `
preset: utf8-full
width: 30
columns:
  - width: "5..20"
  - align: right
header: [Name, Size]
rows:
  - [alpha, 12]
  - [{text: merged, colspan: 2}]
`

const tomlDefinition = `
preset = "utf8-full"
width = 30
header = ["Name", "Size"]
rows = [["alpha", 12], [{text = "merged", colspan = 2}]]

[[columns]]
width = "5..20"

[[columns]]
align = "right"
`

const jsonDefinition = `{
  "preset": "utf8-full",
  "width": 30,
  "columns": [{"width": "5..20"}, {"align": "right"}],
  "header": ["Name", "Size"],
  "rows": [["alpha", 12], [{"text": "merged", "colspan": 2}]]
}`

var definitionLines = []string{
	"┌───────────────┬────────────┐",
	"│ Name          │       Size │",
	"╞═══════════════╪════════════╡",
	"│ alpha         │         12 │",
	"├───────────────┴────────────┤",
	"│ merged                     │",
	"└────────────────────────────┘",
}

func TestParseDefinition(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		data   string
		format string
	}{
		"yaml": {data: yamlDefinition, format: "yaml"},
		"yml":  {data: yamlDefinition, format: "YML"},
		"toml": {data: tomlDefinition, format: "toml"},
		"json": {data: jsonDefinition, format: "json"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			def, err := spantable.ParseDefinition([]byte(tt.data), tt.format)
			require.NoError(t, err)
			tbl, err := def.Table()
			require.NoError(t, err)
			lines, err := tbl.Lines()
			require.NoError(t, err)
			assert.Equal(t, definitionLines, lines)
		})
	}
}

func TestLoadDefinition(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	for ext, data := range map[string]string{"yaml": yamlDefinition, "toml": tomlDefinition, "json": jsonDefinition} {
		path := filepath.Join(dir, "table."+ext)
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		def, err := spantable.LoadDefinition(path)
		require.NoError(t, err, ext)
		assert.Equal(t, "utf8-full", def.Preset)
		assert.Equal(t, 30, def.Width)
		require.Len(t, def.Rows, 2)
		assert.Equal(t, "12", def.Rows[0][1].Text)
		assert.Equal(t, 2, def.Rows[1][0].Colspan)
	}

	_, err := spantable.LoadDefinition(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "table.xml")
	require.NoError(t, os.WriteFile(path, []byte("<table/>"), 0o600))
	_, err = spantable.LoadDefinition(path)
	assert.ErrorIs(t, err, spantable.ErrUnsupportedFormat)
}

func TestDefinitionErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"unknown preset":      "preset: fancy\nrows: [[a]]",
		"unknown arrangement": "arrangement: sideways\nrows: [[a]]",
		"bad table alignment": "align: justify\nrows: [[a]]",
		"bad column width":    "columns: [{width: wide}]\nrows: [[a]]",
		"bad percentage":      "columns: [{width: 120%}]\nrows: [[a]]",
		"bad cell alignment":  "rows: [[{text: a, valign: sideways}]]",
		"bad header cell":     "header: [{text: a, align: up}]\nrows: [[a]]",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			def, err := spantable.ParseDefinition([]byte(data), "yaml")
			require.NoError(t, err)
			_, err = def.Table()
			assert.ErrorIs(t, err, spantable.ErrInvalidDefinition)
		})
	}
}

func TestParseDefinitionSyntaxError(t *testing.T) {
	t.Parallel()
	_, err := spantable.ParseDefinition([]byte("rows: [[a"), "yaml")
	assert.ErrorIs(t, err, spantable.ErrInvalidDefinition)
	_, err = spantable.ParseDefinition([]byte(`{"rows": 3}`), "json")
	assert.ErrorIs(t, err, spantable.ErrInvalidDefinition)
}

func TestDefinitionRoundTrip(t *testing.T) {
	t.Parallel()
	tbl := spantable.New().
		SetPreset(spantable.UTF8Rounded).
		SetWidth(40).
		SetArrangement(spantable.ArrangeShrink).
		SetVerticalAlignment(spantable.VAlignMiddle).
		SetHeaderStrings("Region", "Q1", "Q2").
		AddRow(spantable.NewCell("North").WithRowspan(2), spantable.NewCell("120"), spantable.NewCell("135").WithAlign(spantable.AlignRight)).
		AddStrings("98", "101").
		AddRow(spantable.NewCell("All figures in thousands").WithColspan(3).WithPadding(spantable.Padding{Left: 2, Right: 2}))
	tbl.Column(0).SetConstraint(spantable.Between(spantable.Fixed(4), spantable.Percent(40)))
	tbl.Column(2).SetAlign(spantable.AlignCenter)

	for _, f := range []spantable.Format{spantable.JSON, spantable.YAML} {
		data, err := spantable.Marshal(f, tbl)
		require.NoError(t, err)

		def, err := spantable.ParseDefinition(data, f.String())
		require.NoError(t, err, "%s", data)
		assert.Equal(t, tbl.Definition(), def)

		back, err := def.Table()
		require.NoError(t, err)
		assert.Equal(t, tbl.String(), back.String(), "format %s", f)
	}
}

func TestDefinitionSkipsDynamicWidth(t *testing.T) {
	t.Parallel()
	tbl := spantable.New().
		SetWidthSource(spantable.WidthFunc(func() (int, bool) { return 50, true })).
		AddStrings("a")
	assert.Zero(t, tbl.Definition().Width)
	assert.Equal(t, 9, spantable.New().SetWidth(9).Definition().Width)
}
