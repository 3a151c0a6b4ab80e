// Package docx implements the document build capability as a WordprocessingML
// (.docx) writer. It emits the same package parts the original letters used:
// a Normal style fixing the font, one shared numbering definition, bordered
// grid tables, and paragraphs of formatted runs.
package docx

import (
	"errors"
	"fmt"

	"github.com/Dave-Ash-4297/letter/pkg/document"
)

// BuilderName is the registry name of this backend.
const BuilderName = "docx"

// Identifiers of the shared numbering definition inside numbering.xml.
const (
	abstractNumID = 10
	numInstanceID = 1
)

// Builder accumulates body content and serializes it to a .docx byte stream.
// Builders are single-use and not safe for concurrent writes.
type Builder struct {
	fontName   string
	fontSizePt int

	numbering    []document.NumberingLevel
	numberingSet bool

	body []block
}

// Ensure the implementation satisfies the public interface.
var _ document.Builder = (*Builder)(nil)

// New constructs an empty Builder with the default Arial 11pt identity.
func New() *Builder {
	return &Builder{fontName: "Arial", fontSizePt: 11}
}

// Factory adapts New to the registry factory signature.
func Factory() (document.Builder, error) {
	return New(), nil
}

// block is one ordered body entry: a paragraph or a table.
type block interface {
	isBlock()
}

type run struct {
	text    string
	props   document.RunProps
	isBreak bool
}

type paragraph struct {
	props document.ParagraphProps
	runs  []run
}

func (*paragraph) isBlock() {}

func (p *paragraph) AddRun(text string, props document.RunProps) {
	p.runs = append(p.runs, run{text: text, props: props})
}

func (p *paragraph) AddBreak() {
	p.runs = append(p.runs, run{isBreak: true})
}

type table struct {
	cells [][]string
}

func (*table) isBlock() {}

func (t *table) SetCell(row, col int, text string) error {
	if row < 0 || row >= len(t.cells) {
		return fmt.Errorf("docx: row %d out of range", row)
	}
	if col < 0 || col >= len(t.cells[row]) {
		return fmt.Errorf("docx: column %d out of range", col)
	}
	t.cells[row][col] = text
	return nil
}

// SetDefaultFont fixes the font family and size applied to every run.
func (b *Builder) SetDefaultFont(name string, sizePt int) {
	if name != "" {
		b.fontName = name
	}
	if sizePt > 0 {
		b.fontSizePt = sizePt
	}
}

// DefineNumbering installs the shared numbering definition. Calling it twice
// is a wiring defect.
func (b *Builder) DefineNumbering(levels []document.NumberingLevel) error {
	if b.numberingSet {
		return errors.New("docx: numbering already defined")
	}
	if len(levels) == 0 {
		return errors.New("docx: numbering needs at least one level")
	}
	b.numbering = append([]document.NumberingLevel(nil), levels...)
	b.numberingSet = true
	return nil
}

// AddParagraph appends a paragraph to the body.
func (b *Builder) AddParagraph(props document.ParagraphProps) document.Paragraph {
	p := &paragraph{props: props}
	b.body = append(b.body, p)
	return p
}

// AddTable appends a bordered rows×cols table of empty cells.
func (b *Builder) AddTable(rows, cols int) (document.Table, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("docx: invalid table size %dx%d", rows, cols)
	}
	cells := make([][]string, rows)
	for i := range cells {
		cells[i] = make([]string, cols)
	}
	t := &table{cells: cells}
	b.body = append(b.body, t)
	return t, nil
}

// Bytes assembles the .docx package.
func (b *Builder) Bytes() ([]byte, error) {
	return b.pack()
}
