package spantable_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/spantable"
)

var errWrite = errors.New("write failed")

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errWrite }

func colspanTable() *spantable.Table {
	return spantable.New().
		SetHeaderStrings("H1", "H2", "H3").
		AddRow(spantable.NewCell("AB").WithColspan(2), spantable.NewCell("C"))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for _, f := range spantable.Formats() {
		got, err := spantable.ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := spantable.ParseFormat("table")
	require.NoError(t, err)
	assert.Equal(t, spantable.Text, got)

	_, err = spantable.ParseFormat("xml")
	assert.ErrorIs(t, err, spantable.ErrUnsupportedFormat)
}

func TestFormatsIsACopy(t *testing.T) {
	t.Parallel()
	fs := spantable.Formats()
	fs[0] = "mangled"
	assert.Equal(t, spantable.Text, spantable.Formats()[0])
}

func TestMarshal(t *testing.T) {
	t.Parallel()
	tests := map[spantable.Format]string{
		spantable.Text: "" +
			"+----+----+----+\n" +
			"| H1 | H2 | H3 |\n" +
			"+==============+\n" +
			"| AB      | C  |\n" +
			"+---------+----+\n",
		spantable.CSV: "H1,H2,H3\nAB,,C\n",
		spantable.TSV: "H1\tH2\tH3\nAB\t\tC\n",
		spantable.Markdown: "" +
			"| H1  | H2  | H3  |\n" +
			"| --- | --- | --- |\n" +
			"| AB  |     | C   |\n",
		spantable.HTML: "" +
			"<table>\n" +
			"  <thead>\n" +
			"    <tr>\n" +
			"      <th>H1</th>\n" +
			"      <th>H2</th>\n" +
			"      <th>H3</th>\n" +
			"    </tr>\n" +
			"  </thead>\n" +
			"  <tbody>\n" +
			"    <tr>\n" +
			"      <td colspan=\"2\">AB</td>\n" +
			"      <td>C</td>\n" +
			"    </tr>\n" +
			"  </tbody>\n" +
			"</table>\n",
	}
	for f, want := range tests {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()
			got, err := spantable.Marshal(f, colspanTable())
			require.NoError(t, err)
			assert.Equal(t, want, string(got))
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()
	data, err := spantable.Marshal(spantable.JSON, colspanTable())
	require.NoError(t, err)

	var def spantable.Definition
	require.NoError(t, json.Unmarshal(data, &def))
	assert.Equal(t, "ascii-full", def.Preset)
	require.Len(t, def.Header, 3)
	assert.Equal(t, "H1", def.Header[0].Text)
	assert.Equal(t, []spantable.CellDef{{Text: "AB", Colspan: 2}, {Text: "C"}}, def.Rows[0])
	assert.Contains(t, string(data), `"header": [`)
	assert.Contains(t, string(data), `"H1"`)
}

func TestMarshalYAML(t *testing.T) {
	t.Parallel()
	data, err := spantable.Marshal(spantable.YAML, colspanTable())
	require.NoError(t, err)

	var def spantable.Definition
	require.NoError(t, yaml.Unmarshal(data, &def))
	assert.Equal(t, colspanTable().Definition(), def)
	assert.Contains(t, string(data), "preset: ascii-full")
}

func TestHTMLRowspanAndEscaping(t *testing.T) {
	t.Parallel()
	tbl := spantable.New().
		AddRow(spantable.NewCell("<b>").WithRowspan(2), spantable.NewCell("a & b").WithAlign(spantable.AlignRight)).
		AddStrings("two\nlines")

	got, err := spantable.Marshal(spantable.HTML, tbl)
	require.NoError(t, err)
	assert.Equal(t, ""+
		"<table>\n"+
		"  <tbody>\n"+
		"    <tr>\n"+
		"      <td rowspan=\"2\">&lt;b&gt;</td>\n"+
		"      <td style=\"text-align: right\">a &amp; b</td>\n"+
		"    </tr>\n"+
		"    <tr>\n"+
		"      <td>two<br>lines</td>\n"+
		"    </tr>\n"+
		"  </tbody>\n"+
		"</table>\n", string(got))
}

func TestCSVQuoting(t *testing.T) {
	t.Parallel()
	got, err := spantable.Marshal(spantable.CSV, spantable.New().AddStrings(`say "hi"`, "a,b"))
	require.NoError(t, err)
	assert.Equal(t, "\"say \"\"hi\"\"\",\"a,b\"\n", string(got))

	got, err = spantable.Marshal(spantable.TSV, spantable.New().AddStrings("a\tb", "c\nd"))
	require.NoError(t, err)
	assert.Equal(t, "a b\tc d\n", string(got))
}

func TestWriteTextReturnsWarnings(t *testing.T) {
	t.Parallel()
	tbl := spantable.New().
		SetWidth(5).
		SetConstraints(spantable.MinWidth(spantable.Fixed(10))).
		AddStrings("a")

	var buf bytes.Buffer
	err := spantable.Write(&buf, spantable.Text, tbl)
	assert.ErrorIs(t, err, spantable.ErrBudgetExceeded)
	assert.Equal(t, "+------------+\n| a          |\n+------------+\n", buf.String())
}

func TestWriteErrors(t *testing.T) {
	t.Parallel()
	err := spantable.Write(&bytes.Buffer{}, spantable.Format("xml"), colspanTable())
	assert.ErrorIs(t, err, spantable.ErrUnsupportedFormat)

	_, err = spantable.Marshal(spantable.Format("xml"), colspanTable())
	assert.ErrorIs(t, err, spantable.ErrUnsupportedFormat)

	for _, f := range spantable.Formats() {
		err := spantable.Write(errWriter{}, f, colspanTable())
		assert.Error(t, err, "format %s", f)
	}
}

func TestWriteEmptyTable(t *testing.T) {
	t.Parallel()
	for _, f := range []spantable.Format{spantable.Text, spantable.CSV, spantable.TSV, spantable.Markdown} {
		got, err := spantable.Marshal(f, spantable.New())
		require.NoError(t, err)
		assert.Empty(t, got, "format %s", f)
	}
}
