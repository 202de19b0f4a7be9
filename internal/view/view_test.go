package view

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(format Format) (*Renderer, *bytes.Buffer) {
	r := NewRenderer(format, true)
	buf := new(bytes.Buffer)
	r.SetWriter(buf)
	return r, buf
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{"empty defaults to table", "", FormatTable, false},
		{"table", "table", FormatTable, false},
		{"json", "json", FormatJSON, false},
		{"yaml", "yaml", FormatYAML, false},
		{"plain", "plain", FormatPlain, false},
		{"invalid", "xml", "", true},
		{"uppercase rejected", "TABLE", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown output format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderTable(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)
	r.RenderTable([]string{"NAME", "VALUE"}, [][]string{
		{"bold", "true"},
		{"color", "red"},
	})

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[1], "bold")
	// Columns are padded to a common width.
	assert.Equal(t, strings.Index(lines[1], "true"), strings.Index(lines[2], "red"))
}

func TestRenderTable_JSON(t *testing.T) {
	r, buf := newTestRenderer(FormatJSON)
	r.RenderTable([]string{"NAME"}, [][]string{{"bold"}})

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "bold", rows[0]["name"])
}

func TestRenderTable_Plain(t *testing.T) {
	r, buf := newTestRenderer(FormatPlain)
	r.RenderTable([]string{"A", "B"}, [][]string{{"1", "2"}})
	assert.Equal(t, "1\t2\n", buf.String())
}

func TestRenderObject(t *testing.T) {
	type payload struct {
		Name string `yaml:"name" json:"name"`
	}

	r, buf := newTestRenderer(FormatYAML)
	require.NoError(t, r.RenderObject(payload{Name: "x"}))
	assert.Equal(t, "name: x\n", buf.String())

	r, buf = newTestRenderer(FormatJSON)
	require.NoError(t, r.RenderObject(payload{Name: "x"}))
	assert.JSONEq(t, `{"name": "x"}`, buf.String())

	// Table has no natural nesting; falls back to YAML.
	r, buf = newTestRenderer(FormatTable)
	require.NoError(t, r.RenderObject(payload{Name: "x"}))
	assert.Equal(t, "name: x\n", buf.String())
}

func TestRenderText(t *testing.T) {
	r, buf := newTestRenderer(FormatPlain)
	r.RenderText("hello")
	assert.Equal(t, "hello\n", buf.String())
}

func TestRenderKeyValue(t *testing.T) {
	r, buf := newTestRenderer(FormatPlain)
	r.RenderKeyValue("canonical", "<bold>x</bold>")
	assert.Equal(t, "canonical: <bold>x</bold>\n", buf.String())

	r, buf = newTestRenderer(FormatJSON)
	r.RenderKeyValue("key", "value")
	assert.JSONEq(t, `{"key": "value"}`, buf.String())
}

func TestStatusMessages(t *testing.T) {
	r, buf := newTestRenderer(FormatPlain)
	r.Success("saved")
	assert.Equal(t, "✓ saved\n", buf.String())

	r, buf = newTestRenderer(FormatPlain)
	r.Error("broken")
	assert.Equal(t, "✗ broken\n", buf.String())
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"truncate with ellipsis", "hello world", 8, "hello..."},
		{"very short max", "hello", 3, "hel"},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.maxLen))
		})
	}
}
