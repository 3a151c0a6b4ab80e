package docx_test

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/Dave-Ash-4297/letter/internal/docx"
	"github.com/Dave-Ash-4297/letter/pkg/document"
)

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open package: %v", err)
	}
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return string(content)
	}
	t.Fatalf("part %s not found in package", name)
	return ""
}

func letterNumbering() []document.NumberingLevel {
	return []document.NumberingLevel{
		{Format: document.NumberDecimal, Text: "%1.", LeftTwips: 0, HangingTwips: 567, Start: 1},
		{Format: document.NumberLowerLetter, Text: "(%2)", LeftTwips: 567, HangingTwips: 567, Start: 1},
		{Format: document.NumberLowerRoman, Text: "(%3)", LeftTwips: 850, HangingTwips: 567, Start: 1},
	}
}

func TestPackageContainsEveryPart(t *testing.T) {
	t.Parallel()

	b := docx.New()
	b.AddParagraph(document.ParagraphProps{}).AddRun("hello", document.RunProps{})
	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}

	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/document.xml",
		"word/styles.xml",
		"word/numbering.xml",
	} {
		readPart(t, data, name)
	}
}

func TestDocumentXMLFormattingRuns(t *testing.T) {
	t.Parallel()

	b := docx.New()
	b.SetDefaultFont("Arial", 11)

	p := b.AddParagraph(document.ParagraphProps{
		Alignment:     document.AlignJustify,
		SpaceBeforePt: 12,
		SpaceAfterPt:  6,
	})
	p.AddRun("Heading", document.RunProps{Bold: true, Underline: true})
	p.AddBreak()
	p.AddRun("second line", document.RunProps{})

	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}
	doc := readPart(t, data, "word/document.xml")

	for _, fragment := range []string{
		`<w:spacing w:before="240" w:after="120"/>`,
		`<w:jc w:val="both"/>`,
		`<w:b/>`,
		`<w:u w:val="single"/>`,
		`<w:rFonts w:ascii="Arial" w:hAnsi="Arial" w:cs="Arial"/>`,
		`<w:sz w:val="22"/>`,
		`<w:r><w:br/></w:r>`,
		`<w:t xml:space="preserve">Heading</w:t>`,
	} {
		if !strings.Contains(doc, fragment) {
			t.Fatalf("document.xml missing %s:\n%s", fragment, doc)
		}
	}
}

func TestNumberedParagraphReferencesSharedDefinition(t *testing.T) {
	t.Parallel()

	b := docx.New()
	if err := b.DefineNumbering(letterNumbering()); err != nil {
		t.Fatalf("define numbering: %v", err)
	}
	b.AddParagraph(document.ParagraphProps{Numbered: true, NumberingLevel: 1}).
		AddRun("item", document.RunProps{})

	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}

	doc := readPart(t, data, "word/document.xml")
	if !strings.Contains(doc, `<w:numPr><w:ilvl w:val="1"/><w:numId w:val="1"/></w:numPr>`) {
		t.Fatalf("numbered paragraph not attached to the shared definition:\n%s", doc)
	}

	numbering := readPart(t, data, "word/numbering.xml")
	for _, fragment := range []string{
		`<w:abstractNum w:abstractNumId="10">`,
		`<w:numFmt w:val="decimal"/>`,
		`<w:numFmt w:val="lowerLetter"/>`,
		`<w:numFmt w:val="lowerRoman"/>`,
		`<w:lvlText w:val="%1."/>`,
		`<w:lvlText w:val="(%2)"/>`,
		`<w:lvlText w:val="(%3)"/>`,
		`<w:ind w:left="0" w:hanging="567"/>`,
		`<w:ind w:left="850" w:hanging="567"/>`,
		`<w:num w:numId="1"><w:abstractNumId w:val="10"/></w:num>`,
	} {
		if !strings.Contains(numbering, fragment) {
			t.Fatalf("numbering.xml missing %s:\n%s", fragment, numbering)
		}
	}
}

func TestDefineNumberingIsSingleUse(t *testing.T) {
	t.Parallel()

	b := docx.New()
	if err := b.DefineNumbering(letterNumbering()); err != nil {
		t.Fatalf("define numbering: %v", err)
	}
	if err := b.DefineNumbering(letterNumbering()); err == nil {
		t.Fatalf("expected second definition to fail")
	}
	if err := docx.New().DefineNumbering(nil); err == nil {
		t.Fatalf("expected empty definition to fail")
	}
}

func TestIndentAndEscaping(t *testing.T) {
	t.Parallel()

	b := docx.New()
	b.AddParagraph(document.ParagraphProps{LeftIndentTwips: 709}).
		AddRun("Smith & Sons <Holdings>", document.RunProps{})

	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}
	doc := readPart(t, data, "word/document.xml")

	if !strings.Contains(doc, `<w:ind w:left="709"/>`) {
		t.Fatalf("indent missing:\n%s", doc)
	}
	if !strings.Contains(doc, "Smith &amp; Sons &lt;Holdings&gt;") {
		t.Fatalf("text not escaped:\n%s", doc)
	}
}

func TestTables(t *testing.T) {
	t.Parallel()

	b := docx.New()
	tbl, err := b.AddTable(2, 2)
	if err != nil {
		t.Fatalf("add table: %v", err)
	}
	if err := tbl.SetCell(0, 0, "Grade A"); err != nil {
		t.Fatalf("set cell: %v", err)
	}
	if err := tbl.SetCell(1, 1, "£450"); err != nil {
		t.Fatalf("set cell: %v", err)
	}
	if err := tbl.SetCell(2, 0, "out of range"); err == nil {
		t.Fatalf("expected row bounds error")
	}
	if err := tbl.SetCell(0, 2, "out of range"); err == nil {
		t.Fatalf("expected column bounds error")
	}
	if _, err := b.AddTable(0, 3); err == nil {
		t.Fatalf("expected invalid table size error")
	}

	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}
	doc := readPart(t, data, "word/document.xml")

	for _, fragment := range []string{
		`<w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/>`,
		`<w:gridCol/><w:gridCol/>`,
		`<w:t xml:space="preserve">Grade A</w:t>`,
		`<w:t xml:space="preserve">£450</w:t>`,
	} {
		if !strings.Contains(doc, fragment) {
			t.Fatalf("document.xml missing %s:\n%s", fragment, doc)
		}
	}
}

func TestStylesFixFontIdentity(t *testing.T) {
	t.Parallel()

	b := docx.New()
	b.SetDefaultFont("Arial", 11)
	b.AddParagraph(document.ParagraphProps{}).AddRun("x", document.RunProps{})

	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}
	styles := readPart(t, data, "word/styles.xml")
	for _, fragment := range []string{
		`<w:rFonts w:ascii="Arial" w:hAnsi="Arial" w:cs="Arial"/>`,
		`<w:sz w:val="22"/>`,
		`w:styleId="Normal"`,
	} {
		if !strings.Contains(styles, fragment) {
			t.Fatalf("styles.xml missing %s:\n%s", fragment, styles)
		}
	}
}
