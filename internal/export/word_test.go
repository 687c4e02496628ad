package export

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func TestParseReportTables(t *testing.T) {
	html := `
		<table>
			<thead><tr><th>Plate</th><th>Result</th></tr></thead>
			<tbody>
				<tr><td class="test-passed">ABC123</td><td>Passed</td></tr>
				<tr><td class="test-failed">XYZ789</td><td>Failed</td></tr>
				<tr><td>DEF456</td><td>Not Tested</td></tr>
			</tbody>
		</table>`

	tables, err := parseReportTables(html)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}

	table := tables[0]
	if len(table.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(table.Rows))
	}

	header := table.Rows[0].Cells[0]
	if header.Text != "Plate" || header.Shading != headerShading || header.TextColor != headerTextColor || !header.Bold {
		t.Errorf("unexpected header cell: %+v", header)
	}

	if got := table.Rows[1].Cells[0].TextColor; got != passedTextColor {
		t.Errorf("test-passed color = %s, expected %s", got, passedTextColor)
	}
	if got := table.Rows[2].Cells[0].TextColor; got != failedTextColor {
		t.Errorf("test-failed color = %s, expected %s", got, failedTextColor)
	}
	if got := table.Rows[3].Cells[0]; got.TextColor != "" || got.Shading != "" {
		t.Errorf("plain cell should carry no color, got %+v", got)
	}
}

func TestParseReportTablesSkipsEmpty(t *testing.T) {
	html := `
		<table><tr></tr></table>
		<p>No tables here either.</p>
		<table>
			<tr><td>only row</td></tr>
			<tr></tr>
		</table>`

	tables, err := parseReportTables(html)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("expected the empty table to be dropped, got %d tables", len(tables))
	}
	if len(tables[0].Rows) != 1 {
		t.Errorf("expected the empty row to be dropped, got %d rows", len(tables[0].Rows))
	}
}

func TestParseReportTablesInlineStyles(t *testing.T) {
	html := `<table><tr><td style="background-color: #ffcc00; color: #112233">cell</td></tr></table>`

	tables, err := parseReportTables(html)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	cell := tables[0].Rows[0].Cells[0]
	if cell.Shading != "FFCC00" {
		t.Errorf("shading = %s, expected FFCC00", cell.Shading)
	}
	if cell.TextColor != "112233" {
		t.Errorf("text color = %s, expected 112233", cell.TextColor)
	}
}

func TestWordDocumentNoTables(t *testing.T) {
	if _, err := WordDocument("<p>nothing tabular</p>"); err != ErrNoTables {
		t.Errorf("expected ErrNoTables, got %v", err)
	}
}

func TestWordDocumentPackage(t *testing.T) {
	html := `<table><thead><tr><th>Office</th></tr></thead><tbody><tr><td>City Hall &amp; Annex</td></tr></tbody></table>`

	buf, err := WordDocument(html)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("output is not a zip archive: %v", err)
	}

	parts := map[string]bool{}
	var document string
	for _, file := range reader.File {
		parts[file.Name] = true
		if file.Name == "word/document.xml" {
			rc, err := file.Open()
			if err != nil {
				t.Fatalf("open document part: %v", err)
			}
			var b bytes.Buffer
			if _, err := b.ReadFrom(rc); err != nil {
				t.Fatalf("read document part: %v", err)
			}
			rc.Close()
			document = b.String()
		}
	}

	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		if !parts[name] {
			t.Errorf("missing package part %s", name)
		}
	}

	if !strings.Contains(document, `w:orient="landscape"`) {
		t.Error("document is not landscape")
	}
	if !strings.Contains(document, `<w:pgSz w:w="16838" w:h="11906"`) {
		t.Error("document is not A4 landscape size")
	}
	if !strings.Contains(document, `w:top="720"`) {
		t.Error("document does not use half inch margins")
	}
	if !strings.Contains(document, `<w:shd w:val="clear" w:fill="1F4E79"/>`) {
		t.Error("header cell shading missing")
	}
	if !strings.Contains(document, "City Hall &amp; Annex") {
		t.Error("cell text was not escaped into the document")
	}
}
