package statement

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/dslipak/pdf"
	"github.com/extrame/xls"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// Extractor turns one document into raw text plus an ordered line list.
// PDF documents get a table-aware primary method with a plain-text fallback;
// CSV and spreadsheet documents are flattened row-by-row into lines so the
// same locator patterns apply to every format.
type Extractor struct {
	log zerolog.Logger
}

// NewExtractor creates an Extractor that logs extraction strategy decisions.
func NewExtractor(log zerolog.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract returns the full text and line list of doc. An error means the
// document is unreadable by every applicable strategy; callers skip the
// document and continue the batch.
func (e *Extractor) Extract(doc Document) (string, []string, error) {
	data, err := readAll(doc)
	if err != nil {
		return "", nil, err
	}
	if len(data) == 0 {
		return "", nil, fmt.Errorf("statement: %s is empty", doc.Name())
	}

	var lines []string
	switch ext := fileExt(doc.Name()); ext {
	case ".pdf":
		lines, err = e.extractPDF(doc.Name(), data)
	case ".csv":
		lines, err = e.extractCSV(data)
	case ".xlsx":
		lines, err = e.extractXLSX(data)
	case ".xls":
		lines, err = e.extractXLS(data)
	default:
		// Plain text, or an unknown format worth a text attempt.
		lines, err = splitLines(data), nil
	}
	if err != nil {
		return "", nil, err
	}

	text := strings.Join(lines, "\n")
	if strings.TrimSpace(text) == "" {
		return "", nil, fmt.Errorf("statement: no text extracted from %s", doc.Name())
	}
	return text, lines, nil
}

// extractPDF tries the row-aware method first, then plain text. The pdf
// library panics on some malformed files, so both attempts run recovered.
func (e *Extractor) extractPDF(name string, data []byte) ([]string, error) {
	lines, rowErr := e.extractPDFRows(data)
	if rowErr == nil && len(lines) > 0 {
		return lines, nil
	}
	if rowErr != nil {
		e.log.Warn().Str("source", name).Err(rowErr).Msg("row-aware PDF extraction failed, falling back to plain text")
	}

	lines, textErr := e.extractPDFPlainText(data)
	if textErr == nil && len(lines) > 0 {
		return lines, nil
	}
	return nil, fmt.Errorf("statement: PDF extraction failed for %s: rows: %v, text: %v", name, rowErr, textErr)
}

func (e *Extractor) extractPDFRows(data []byte) (lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf row extraction panicked: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			var words []string
			for _, text := range row.Content {
				if s := strings.TrimSpace(text.S); s != "" {
					words = append(words, s)
				}
			}
			if len(words) > 0 {
				lines = append(lines, strings.Join(words, " "))
			}
		}
	}
	return lines, nil
}

func (e *Extractor) extractPDFPlainText(data []byte) (lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf text extraction panicked: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	textReader, err := r.GetPlainText()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(textReader); err != nil {
		return nil, err
	}
	return splitLines(buf.Bytes()), nil
}

func (e *Extractor) extractCSV(data []byte) ([]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("statement: reading CSV: %w", err)
	}
	return joinRows(records), nil
}

func (e *Extractor) extractXLSX(data []byte) ([]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("statement: opening XLSX: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("statement: reading XLSX sheet %s: %w", sheet, err)
	}
	return joinRows(rows), nil
}

func (e *Extractor) extractXLS(data []byte) ([]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("statement: opening XLS: %w", err)
	}
	return joinRows(wb.ReadAllCells(10000)), nil
}

// joinRows flattens tabular rows into space-joined text lines so the
// locator's line patterns apply uniformly.
func joinRows(rows [][]string) []string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var cells []string
		for _, cell := range row {
			if c := strings.TrimSpace(cell); c != "" {
				cells = append(cells, c)
			}
		}
		if len(cells) > 0 {
			lines = append(lines, strings.Join(cells, " "))
		}
	}
	return lines
}

func splitLines(data []byte) []string {
	var lines []string
	s := bufio.NewScanner(bytes.NewReader(data))
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	return lines
}
