package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"strings"

	"golang.org/x/net/html"
)

// The Word exporter walks an already-rendered HTML report and rebuilds each
// <table> as a WordprocessingML table on an A4 landscape page with 0.5in
// margins. Cell colors come from a small fixed lookup: header cells get navy
// shading with white text, "test-passed" green text, "test-failed" red text,
// everything else black on white.

const (
	headerShading   = "1F4E79"
	headerTextColor = "FFFFFF"
	passedTextColor = "008000"
	failedTextColor = "C00000"
)

var ErrNoTables = errors.New("no tables found in report")

type reportCell struct {
	Text      string
	Shading   string // hex fill, empty for none
	TextColor string // hex, empty for default black
	Bold      bool
}

type reportRow struct {
	Cells []reportCell
}

type reportTable struct {
	Rows []reportRow
}

// parseReportTables extracts every table from the HTML fragment. Rows with no
// processed cells are dropped; tables left with no rows are skipped entirely
// rather than emitted empty.
func parseReportTables(htmlReport string) ([]reportTable, error) {
	doc, err := html.Parse(strings.NewReader(htmlReport))
	if err != nil {
		return nil, err
	}

	var tables []reportTable
	walkElements(doc, "table", func(tableNode *html.Node) {
		table := reportTable{}
		walkElements(tableNode, "tr", func(rowNode *html.Node) {
			row := parseRow(rowNode)
			if len(row.Cells) > 0 {
				table.Rows = append(table.Rows, row)
			}
		})
		if len(table.Rows) > 0 {
			tables = append(tables, table)
		}
	})

	return tables, nil
}

func parseRow(rowNode *html.Node) reportRow {
	inHead := hasAncestor(rowNode, "thead")
	row := reportRow{}
	for child := rowNode.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		if child.Data != "td" && child.Data != "th" {
			continue
		}
		row.Cells = append(row.Cells, parseCell(child, inHead || child.Data == "th"))
	}
	return row
}

func parseCell(cellNode *html.Node, isHeader bool) reportCell {
	cell := reportCell{Text: strings.TrimSpace(textContent(cellNode))}

	if isHeader {
		cell.Shading = headerShading
		cell.TextColor = headerTextColor
		cell.Bold = true
		return cell
	}

	classes := attrValue(cellNode, "class")
	switch {
	case strings.Contains(classes, "test-passed"):
		cell.TextColor = passedTextColor
	case strings.Contains(classes, "test-failed"):
		cell.TextColor = failedTextColor
	}

	if style := attrValue(cellNode, "style"); style != "" {
		if bg := styleProperty(style, "background-color"); bg != "" {
			cell.Shading = normalizeHexColor(bg)
		}
		if fg := styleProperty(style, "color"); fg != "" {
			cell.TextColor = normalizeHexColor(fg)
		}
	}

	return cell
}

func walkElements(node *html.Node, tag string, visit func(*html.Node)) {
	if node.Type == html.ElementNode && node.Data == tag {
		visit(node)
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		walkElements(child, tag, visit)
	}
}

func hasAncestor(node *html.Node, tag string) bool {
	for parent := node.Parent; parent != nil; parent = parent.Parent {
		if parent.Type == html.ElementNode && parent.Data == tag {
			return true
		}
	}
	return false
}

func textContent(node *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			collect(child)
		}
	}
	collect(node)
	return b.String()
}

func attrValue(node *html.Node, name string) string {
	for _, attr := range node.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

func styleProperty(style, property string) string {
	for _, declaration := range strings.Split(style, ";") {
		parts := strings.SplitN(declaration, ":", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.TrimSpace(strings.ToLower(parts[0])) == property {
			return strings.TrimSpace(parts[1])
		}
	}
	return ""
}

func normalizeHexColor(raw string) string {
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "#"))
	if len(raw) == 6 {
		return strings.ToUpper(raw)
	}
	return ""
}

// WordDocument converts the HTML report into a .docx file. Malformed tables
// are skipped; the export only fails when no table could be processed at all.
func WordDocument(htmlReport string) (*bytes.Buffer, error) {
	tables, err := parseReportTables(htmlReport)
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, ErrNoTables
	}
	return buildDocx(tables)
}

// buildDocx writes the minimal OOXML package: content types, the package
// relationship and word/document.xml with one w:tbl per report table.
func buildDocx(tables []reportTable) (*bytes.Buffer, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", documentXML(tables)},
	}

	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf, nil
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

func documentXML(tables []reportTable) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	for i, table := range tables {
		writeTableXML(&b, table)
		if i < len(tables)-1 {
			// Paragraph spacer between tables; Word requires a paragraph
			// between adjacent w:tbl elements.
			b.WriteString(`<w:p/>`)
		}
	}

	// A4 landscape with 0.5 inch (720 twips) margins.
	b.WriteString(`<w:p/><w:sectPr>`)
	b.WriteString(`<w:pgSz w:w="16838" w:h="11906" w:orient="landscape"/>`)
	b.WriteString(`<w:pgMar w:top="720" w:right="720" w:bottom="720" w:left="720" w:header="720" w:footer="720" w:gutter="0"/>`)
	b.WriteString(`</w:sectPr></w:body></w:document>`)

	return b.String()
}

func writeTableXML(b *strings.Builder, table reportTable) {
	b.WriteString(`<w:tbl><w:tblPr><w:tblW w:w="5000" w:type="pct"/>`)
	b.WriteString(`<w:tblBorders>`)
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		b.WriteString(`<w:` + side + ` w:val="single" w:sz="4" w:color="000000"/>`)
	}
	b.WriteString(`</w:tblBorders></w:tblPr>`)

	for _, row := range table.Rows {
		b.WriteString(`<w:tr>`)
		for _, cell := range row.Cells {
			writeCellXML(b, cell)
		}
		b.WriteString(`</w:tr>`)
	}

	b.WriteString(`</w:tbl>`)
}

func writeCellXML(b *strings.Builder, cell reportCell) {
	b.WriteString(`<w:tc><w:tcPr>`)
	if cell.Shading != "" {
		b.WriteString(`<w:shd w:val="clear" w:fill="` + cell.Shading + `"/>`)
	}
	b.WriteString(`</w:tcPr><w:p><w:r>`)

	if cell.TextColor != "" || cell.Bold {
		b.WriteString(`<w:rPr>`)
		if cell.Bold {
			b.WriteString(`<w:b/>`)
		}
		if cell.TextColor != "" {
			b.WriteString(`<w:color w:val="` + cell.TextColor + `"/>`)
		}
		b.WriteString(`</w:rPr>`)
	}

	b.WriteString(`<w:t xml:space="preserve">`)
	b.WriteString(escapeXML(cell.Text))
	b.WriteString(`</w:t></w:r></w:p></w:tc>`)
}

func escapeXML(text string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(text))
	return b.String()
}
