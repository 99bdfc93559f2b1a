package spantable

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Definition is the declarative form of a Table, as read from and written
// to YAML, TOML and JSON files.
//
//	preset: utf8-full
//	width: 60
//	columns:
//	  - width: "10..30%"
//	  - align: right
//	header: [Name, Size]
//	rows:
//	  - [alpha, "12"]
//	  - [{text: merged, colspan: 2}]
type Definition struct {
	Preset      string      `json:"preset,omitempty" yaml:"preset,omitempty" toml:"preset,omitempty"`
	Width       int         `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Arrangement string      `json:"arrangement,omitempty" yaml:"arrangement,omitempty" toml:"arrangement,omitempty"`
	Align       string      `json:"align,omitempty" yaml:"align,omitempty" toml:"align,omitempty"`
	VAlign      string      `json:"valign,omitempty" yaml:"valign,omitempty" toml:"valign,omitempty"`
	Padding     *Padding    `json:"padding,omitempty" yaml:"padding,omitempty" toml:"padding,omitempty"`
	Columns     []ColumnDef `json:"columns,omitempty" yaml:"columns,omitempty" toml:"columns,omitempty"`
	Header      []CellDef   `json:"header,omitempty" yaml:"header,omitempty" toml:"header,omitempty"`
	Rows        [][]CellDef `json:"rows" yaml:"rows" toml:"rows"`
}

// ColumnDef declares one column. Width uses the ParseConstraint notation.
type ColumnDef struct {
	Width   string   `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Align   string   `json:"align,omitempty" yaml:"align,omitempty" toml:"align,omitempty"`
	VAlign  string   `json:"valign,omitempty" yaml:"valign,omitempty" toml:"valign,omitempty"`
	Padding *Padding `json:"padding,omitempty" yaml:"padding,omitempty" toml:"padding,omitempty"`
	Hidden  bool     `json:"hidden,omitempty" yaml:"hidden,omitempty" toml:"hidden,omitempty"`
}

// CellDef declares one cell. In files a cell is either a bare string or a
// mapping with these fields.
type CellDef struct {
	Text    string   `json:"text" yaml:"text" toml:"text"`
	Colspan int      `json:"colspan,omitempty" yaml:"colspan,omitempty" toml:"colspan,omitempty"`
	Rowspan int      `json:"rowspan,omitempty" yaml:"rowspan,omitempty" toml:"rowspan,omitempty"`
	Align   string   `json:"align,omitempty" yaml:"align,omitempty" toml:"align,omitempty"`
	VAlign  string   `json:"valign,omitempty" yaml:"valign,omitempty" toml:"valign,omitempty"`
	Padding *Padding `json:"padding,omitempty" yaml:"padding,omitempty" toml:"padding,omitempty"`
}

// cellFields is CellDef without its custom codecs.
type cellFields CellDef

func (c CellDef) bare() bool {
	return c.Colspan <= 1 && c.Rowspan <= 1 && c.Align == "" && c.VAlign == "" && c.Padding == nil
}

// UnmarshalYAML accepts a scalar or a mapping.
func (c *CellDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*c = CellDef{}
		if node.Tag != "!!null" {
			c.Text = node.Value
		}
		return nil
	}
	var f cellFields
	if err := node.Decode(&f); err != nil {
		return err
	}
	*c = CellDef(f)
	return nil
}

// MarshalYAML writes bare cells as plain strings.
func (c CellDef) MarshalYAML() (any, error) {
	if c.bare() {
		return c.Text, nil
	}
	return cellFields(c), nil
}

// UnmarshalJSON accepts a string, number, boolean, null or object.
func (c *CellDef) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		var f cellFields
		if err := json.Unmarshal(trimmed, &f); err != nil {
			return err
		}
		*c = CellDef(f)
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = CellDef{}
	if v != nil {
		c.Text = fmt.Sprint(v)
	}
	return nil
}

// MarshalJSON writes bare cells as plain strings.
func (c CellDef) MarshalJSON() ([]byte, error) {
	if c.bare() {
		return json.Marshal(c.Text)
	}
	return json.Marshal(cellFields(c))
}

// UnmarshalTOML accepts a string, any other scalar or an inline table.
func (c *CellDef) UnmarshalTOML(v any) error {
	m, ok := v.(map[string]any)
	if !ok {
		*c = CellDef{}
		if v != nil {
			c.Text = fmt.Sprint(v)
		}
		return nil
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return err
	}
	var f cellFields
	if _, err := toml.Decode(buf.String(), &f); err != nil {
		return err
	}
	*c = CellDef(f)
	return nil
}

// LoadDefinition reads a definition file, choosing the decoder from the
// extension: .yaml, .yml, .toml or .json.
func LoadDefinition(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, err
	}
	return ParseDefinition(data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// ParseDefinition decodes data written in format: "yaml", "yml", "toml" or
// "json".
func ParseDefinition(data []byte, format string) (Definition, error) {
	var d Definition
	var err error
	switch strings.ToLower(format) {
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &d)
	case "toml":
		_, err = toml.Decode(string(data), &d)
	case "json":
		err = json.Unmarshal(data, &d)
	default:
		return Definition{}, fmt.Errorf("%w: definition format %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return Definition{}, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return d, nil
}

// Table builds a Table from d.
func (d Definition) Table() (*Table, error) {
	t := New()
	if d.Preset != "" {
		p, err := PresetByName(d.Preset)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
		}
		t.SetPreset(p)
	}
	t.SetWidth(d.Width)

	a, ok := ParseArrangement(d.Arrangement)
	if !ok {
		return nil, fmt.Errorf("%w: arrangement %q", ErrInvalidDefinition, d.Arrangement)
	}
	t.SetArrangement(a)

	var err error
	if t.align, t.valign, err = parseAligns(d.Align, d.VAlign); err != nil {
		return nil, err
	}
	if d.Padding != nil {
		t.SetPadding(*d.Padding)
	}

	for i, cd := range d.Columns {
		col := t.Column(i)
		if col.Constraint, err = ParseConstraint(cd.Width); err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		if col.Align, col.VAlign, err = parseAligns(cd.Align, cd.VAlign); err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		col.Padding = cd.Padding
		col.Hidden = cd.Hidden
	}

	if len(d.Header) > 0 {
		cells, err := buildCells(d.Header)
		if err != nil {
			return nil, fmt.Errorf("header: %w", err)
		}
		t.SetHeader(cells...)
	}
	for r, row := range d.Rows {
		cells, err := buildCells(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r, err)
		}
		t.AddRow(cells...)
	}
	return t, nil
}

func parseAligns(align, valign string) (Alignment, VerticalAlignment, error) {
	a, ok := ParseAlignment(align)
	if !ok {
		return 0, 0, fmt.Errorf("%w: alignment %q", ErrInvalidDefinition, align)
	}
	v, ok := ParseVerticalAlignment(valign)
	if !ok {
		return 0, 0, fmt.Errorf("%w: vertical alignment %q", ErrInvalidDefinition, valign)
	}
	return a, v, nil
}

func buildCells(defs []CellDef) ([]Cell, error) {
	cells := make([]Cell, len(defs))
	for i, cd := range defs {
		a, v, err := parseAligns(cd.Align, cd.VAlign)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		cells[i] = Cell{
			Content: []string{cd.Text},
			Colspan: cd.Colspan,
			Rowspan: cd.Rowspan,
			Align:   a,
			VAlign:  v,
			Padding: cd.Padding,
		}
	}
	return cells, nil
}

// Definition exports t. Width is only recorded when it was set with
// SetWidth; dynamic width sources are not serializable.
func (t *Table) Definition() Definition {
	d := Definition{
		Preset:  t.preset.Name,
		Align:   t.align.String(),
		VAlign:  t.valign.String(),
		Padding: t.padding,
		Rows:    make([][]CellDef, len(t.rows)),
	}
	if fw, ok := t.width.(fixedWidth); ok {
		d.Width = int(fw)
	}
	if t.arrangement != ArrangeAuto {
		d.Arrangement = t.arrangement.String()
	}
	for _, col := range t.columns {
		d.Columns = append(d.Columns, ColumnDef{
			Width:   col.Constraint.String(),
			Align:   col.Align.String(),
			VAlign:  col.VAlign.String(),
			Padding: col.Padding,
			Hidden:  col.Hidden,
		})
	}
	if t.hasHeader {
		d.Header = cellDefs(t.header)
	}
	for r, row := range t.rows {
		d.Rows[r] = cellDefs(row)
	}
	return d
}

func cellDefs(cells []Cell) []CellDef {
	out := make([]CellDef, len(cells))
	for i, c := range cells {
		out[i] = CellDef{
			Text:    c.Text(),
			Colspan: c.Colspan,
			Rowspan: c.Rowspan,
			Align:   c.Align.String(),
			VAlign:  c.VAlign.String(),
			Padding: c.Padding,
		}
	}
	return out
}
