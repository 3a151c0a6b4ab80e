package docx

import (
	"fmt"
	"strings"
)

const wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func escape(text string) string {
	return textEscaper.Replace(text)
}

// documentXML renders word/document.xml: every body block in order plus a
// closing section.
func (b *Builder) documentXML() string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, `<w:document xmlns:w="%s"><w:body>`, wordNamespace)

	for _, blk := range b.body {
		switch v := blk.(type) {
		case *paragraph:
			b.writeParagraph(&sb, v)
		case *table:
			b.writeTable(&sb, v)
		}
	}

	sb.WriteString(`<w:sectPr/></w:body></w:document>`)
	return sb.String()
}

func (b *Builder) writeParagraph(sb *strings.Builder, p *paragraph) {
	sb.WriteString(`<w:p>`)
	b.writeParagraphProps(sb, p)
	for _, r := range p.runs {
		b.writeRun(sb, r)
	}
	sb.WriteString(`</w:p>`)
}

func (b *Builder) writeParagraphProps(sb *strings.Builder, p *paragraph) {
	props := p.props
	hasSpacing := props.SpaceBeforePt > 0 || props.SpaceAfterPt > 0
	if !props.Numbered && !hasSpacing && props.LeftIndentTwips == 0 && props.Alignment == "" {
		return
	}

	sb.WriteString(`<w:pPr>`)
	if props.Numbered {
		fmt.Fprintf(sb, `<w:numPr><w:ilvl w:val="%d"/><w:numId w:val="%d"/></w:numPr>`,
			props.NumberingLevel, numInstanceID)
	}
	if hasSpacing {
		sb.WriteString(`<w:spacing`)
		if props.SpaceBeforePt > 0 {
			fmt.Fprintf(sb, ` w:before="%d"`, props.SpaceBeforePt*20)
		}
		if props.SpaceAfterPt > 0 {
			fmt.Fprintf(sb, ` w:after="%d"`, props.SpaceAfterPt*20)
		}
		sb.WriteString(`/>`)
	}
	if props.LeftIndentTwips > 0 {
		fmt.Fprintf(sb, `<w:ind w:left="%d"/>`, props.LeftIndentTwips)
	}
	if props.Alignment == "justify" {
		sb.WriteString(`<w:jc w:val="both"/>`)
	}
	sb.WriteString(`</w:pPr>`)
}

func (b *Builder) writeRun(sb *strings.Builder, r run) {
	if r.isBreak {
		sb.WriteString(`<w:r><w:br/></w:r>`)
		return
	}
	sb.WriteString(`<w:r>`)
	b.writeRunProps(sb, r)
	fmt.Fprintf(sb, `<w:t xml:space="preserve">%s</w:t>`, escape(r.text))
	sb.WriteString(`</w:r>`)
}

func (b *Builder) writeRunProps(sb *strings.Builder, r run) {
	halfPoints := b.fontSizePt * 2
	sb.WriteString(`<w:rPr>`)
	fmt.Fprintf(sb, `<w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s"/>`,
		escape(b.fontName), escape(b.fontName), escape(b.fontName))
	if r.props.Bold {
		sb.WriteString(`<w:b/>`)
	}
	if r.props.Underline {
		sb.WriteString(`<w:u w:val="single"/>`)
	}
	fmt.Fprintf(sb, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, halfPoints, halfPoints)
	sb.WriteString(`</w:rPr>`)
}

func (b *Builder) writeTable(sb *strings.Builder, t *table) {
	sb.WriteString(`<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/><w:tblBorders>`)
	for _, edge := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		fmt.Fprintf(sb, `<w:%s w:val="single" w:sz="4" w:space="0" w:color="auto"/>`, edge)
	}
	sb.WriteString(`</w:tblBorders></w:tblPr><w:tblGrid>`)
	if len(t.cells) > 0 {
		for range t.cells[0] {
			sb.WriteString(`<w:gridCol/>`)
		}
	}
	sb.WriteString(`</w:tblGrid>`)

	for _, row := range t.cells {
		sb.WriteString(`<w:tr>`)
		for _, cell := range row {
			sb.WriteString(`<w:tc><w:tcPr/><w:p>`)
			b.writeRun(sb, run{text: cell})
			sb.WriteString(`</w:p></w:tc>`)
		}
		sb.WriteString(`</w:tr>`)
	}
	sb.WriteString(`</w:tbl>`)
}

// numberingXML renders word/numbering.xml. Without a definition the part is
// an empty numbering container.
func (b *Builder) numberingXML() string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, `<w:numbering xmlns:w="%s">`, wordNamespace)

	if b.numberingSet {
		fmt.Fprintf(&sb, `<w:abstractNum w:abstractNumId="%d">`, abstractNumID)
		for i, level := range b.numbering {
			start := level.Start
			if start <= 0 {
				start = 1
			}
			fmt.Fprintf(&sb, `<w:lvl w:ilvl="%d">`, i)
			fmt.Fprintf(&sb, `<w:start w:val="%d"/>`, start)
			fmt.Fprintf(&sb, `<w:numFmt w:val="%s"/>`, level.Format)
			fmt.Fprintf(&sb, `<w:lvlText w:val="%s"/>`, escape(level.Text))
			fmt.Fprintf(&sb, `<w:pPr><w:ind w:left="%d" w:hanging="%d"/></w:pPr>`,
				level.LeftTwips, level.HangingTwips)
			sb.WriteString(`</w:lvl>`)
		}
		sb.WriteString(`</w:abstractNum>`)
		fmt.Fprintf(&sb, `<w:num w:numId="%d"><w:abstractNumId w:val="%d"/></w:num>`,
			numInstanceID, abstractNumID)
	}

	sb.WriteString(`</w:numbering>`)
	return sb.String()
}

// stylesXML renders word/styles.xml, fixing the Normal style's font identity
// for every run that does not override it.
func (b *Builder) stylesXML() string {
	font := escape(b.fontName)
	halfPoints := b.fontSizePt * 2
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="%s"><w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s"/><w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr></w:rPrDefault><w:pPrDefault/></w:docDefaults><w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style></w:styles>`,
		wordNamespace, font, font, font, halfPoints, halfPoints)
}
