package statement

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestExtractCSV(t *testing.T) {
	e := NewExtractor(zerolog.Nop())

	doc := BytesDocument{
		DisplayName: "checking.csv",
		Data: []byte("Date,Description,Amount\n" +
			"01/15/2024,WALMART SUPERCENTER,45.67\n" +
			"01/16/2024,STARBUCKS,6.50\n"),
	}

	text, lines, err := e.Extract(doc)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %v", len(lines), lines)
	}
	if lines[1] != "01/15/2024 WALMART SUPERCENTER 45.67" {
		t.Errorf("row not flattened to a space-joined line: %q", lines[1])
	}
	if !strings.Contains(text, "STARBUCKS") {
		t.Errorf("text missing row content: %q", text)
	}
}

func TestExtractCSVRaggedRows(t *testing.T) {
	e := NewExtractor(zerolog.Nop())

	doc := BytesDocument{
		DisplayName: "export.csv",
		Data:        []byte("01/15/2024,COFFEE,6.50\n01/16/2024,GROCERY STORE,89.99,extra,columns\n"),
	}

	_, lines, err := e.Extract(doc)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
}

func TestExtractPlainText(t *testing.T) {
	e := NewExtractor(zerolog.Nop())

	doc := BytesDocument{
		DisplayName: "statement.txt",
		Data:        []byte("line one\nline two\n"),
	}

	_, lines, err := e.Extract(doc)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(lines) != 2 || lines[0] != "line one" {
		t.Fatalf("unexpected lines: %v", lines)
	}
}

func TestExtractEmptyDocument(t *testing.T) {
	e := NewExtractor(zerolog.Nop())

	if _, _, err := e.Extract(BytesDocument{DisplayName: "empty.txt"}); err == nil {
		t.Fatal("Extract on an empty document should fail")
	}
}

func TestExtractCorruptPDF(t *testing.T) {
	e := NewExtractor(zerolog.Nop())

	doc := BytesDocument{
		DisplayName: "broken.pdf",
		Data:        []byte("this is not a pdf at all"),
	}
	if _, _, err := e.Extract(doc); err == nil {
		t.Fatal("Extract on a corrupt PDF should fail")
	}
}
