package cli

import (
	"bytes"
	"slices"
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable("Space", "White")
	table.AddRow("srgb", "D65")
	table.AddRow("display-p3", "D65")

	want := "Space       White\n" +
		"----------  -----\n" +
		"srgb        D65\n" +
		"display-p3  D65\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
}

func TestTableAddRowNormalisesLength(t *testing.T) {
	table := NewTable("A", "B")
	table.AddRow("1")
	table.AddRow("1", "2", "3")

	if len(table.rows[0]) != 2 || table.rows[0][1] != "" {
		t.Errorf("short row = %q, want padded to 2 columns", table.rows[0])
	}
	if len(table.rows[1]) != 2 {
		t.Errorf("long row = %q, want truncated to 2 columns", table.rows[1])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("Render() with no headers = %q, want empty", got)
	}

	got := NewTable("Column1", "Column2").Render()
	if got != "Column1  Column2\n-------  -------\n" {
		t.Errorf("Render() with no rows = %q", got)
	}
}

func TestTableWideRunes(t *testing.T) {
	table := NewTable("Name", "X")
	table.AddRow("色", "a")

	lines := strings.Split(table.Render(), "\n")
	if lines[2] != "色    a" {
		t.Errorf("row = %q, want wide rune padded by cell width", lines[2])
	}
}

func TestTableWrapping(t *testing.T) {
	table := NewTable("Name", "Note")
	table.SetColumnMaxWidth(1, 9)
	table.AddRow("red", "the quick brown fox")

	want := "Name  Note\n" +
		"----  ---------\n" +
		"red   the quick\n" +
		"      brown fox\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestTableWriteTo(t *testing.T) {
	table := NewTable("A")
	table.AddRow("x")

	var buf bytes.Buffer
	n, err := table.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if int(n) != buf.Len() || buf.String() != table.Render() {
		t.Errorf("WriteTo() wrote %d bytes %q", n, buf.String())
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{name: "fits", text: "short", width: 10, want: []string{"short"}},
		{name: "no limit", text: "a long line of text", width: 0, want: []string{"a long line of text"}},
		{name: "word boundaries", text: "the quick brown fox", width: 9, want: []string{"the quick", "brown fox"}},
		{name: "long word split", text: "abcdefghij", width: 4, want: []string{"abcd", "efgh", "ij"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapText(tt.text, tt.width); !slices.Equal(got, tt.want) {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
