package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"table", "JSON", "yaml"} {
		if _, err := ParseFormat(in); err != nil {
			t.Errorf("ParseFormat(%q) error = %v", in, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("expected JSONFormatter")
	}
	if _, ok := NewFormatter(FormatYAML).(*YAMLFormatter); !ok {
		t.Error("expected YAMLFormatter")
	}
	if _, ok := NewFormatter("unknown").(*TableFormatter); !ok {
		t.Error("unknown format should default to table")
	}
}

type sample struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

func (s sample) Table() *Table {
	t := NewTable("KEY", "VALUE")
	t.AddRow(s.Key, s.Value)
	return t
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(&buf, sample{"log_level", "info"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"key": "log_level"`) {
		t.Errorf("unexpected JSON: %s", buf.String())
	}
}

func TestJSONFormatter_Compact(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{Compact: true}).Format(&buf, sample{"log_level", "info"}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), `{"key":"log_level","value":"info"}`+"\n"; got != want {
		t.Errorf("JSON = %q, want %q", got, want)
	}
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&YAMLFormatter{}).Format(&buf, sample{"log_level", "info"}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "key: log_level\nvalue: info\n"; got != want {
		t.Errorf("YAML = %q, want %q", got, want)
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, sample{"node_id_file", ""}); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %q", lines)
	}
	if !strings.HasPrefix(lines[0], "KEY") || !strings.Contains(lines[0], "VALUE") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "node_id_file") || !strings.HasSuffix(lines[1], "-") {
		t.Errorf("row = %q", lines[1])
	}
}

func TestTableFormatter_NoHeaders(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{NoHeaders: true}
	if err := f.Format(&buf, sample{"a", "b"}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "KEY") {
		t.Errorf("headers should be omitted: %q", buf.String())
	}
}

func TestTableFormatter_FallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, map[string]int{"n": 1}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"n": 1`) {
		t.Errorf("expected JSON fallback, got %q", buf.String())
	}
}
