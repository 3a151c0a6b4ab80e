// Package document defines the opaque document-build capability the assembler
// writes into: paragraphs, formatted runs, tables, and one shared numbering
// definition, serialized to a byte stream. Backends live under internal and
// register through the Registry.
package document

// Alignment selects paragraph alignment.
type Alignment string

const (
	AlignDefault Alignment = ""
	AlignJustify Alignment = "justify"
)

// NumberFormat enumerates the numbering styles of the three list levels.
type NumberFormat string

const (
	NumberDecimal     NumberFormat = "decimal"
	NumberLowerLetter NumberFormat = "lowerLetter"
	NumberLowerRoman  NumberFormat = "lowerRoman"
)

// NumberingLevel describes one level of the shared numbering definition.
// Indents are in twips (twentieths of a point).
type NumberingLevel struct {
	Format       NumberFormat
	Text         string
	LeftTwips    int
	HangingTwips int
	Start        int
}

// RunProps carries the only formatting a run may change. Font identity is
// fixed per document and owned by the builder.
type RunProps struct {
	Bold      bool
	Underline bool
}

// ParagraphProps configures a paragraph before runs are appended.
type ParagraphProps struct {
	Alignment     Alignment
	SpaceBeforePt int
	SpaceAfterPt  int

	// LeftIndentTwips applies additional left indent; zero means none.
	LeftIndentTwips int

	// Numbered attaches the paragraph to NumberingLevel of the shared
	// numbering definition.
	Numbered       bool
	NumberingLevel int
}

// Paragraph accepts formatted runs and explicit line breaks in order.
type Paragraph interface {
	AddRun(text string, props RunProps)
	AddBreak()
}

// Table is a fixed-size grid of plain-text cells.
type Table interface {
	SetCell(row, col int, text string) error
}

// Builder assembles one output document. Implementations are single-use:
// build, then serialize with Bytes.
type Builder interface {
	// SetDefaultFont fixes the font family and point size every run uses.
	SetDefaultFont(name string, sizePt int)

	// DefineNumbering installs the shared numbering definition. At most one
	// definition exists per document.
	DefineNumbering(levels []NumberingLevel) error

	// AddParagraph appends a paragraph and returns it for run writes.
	AddParagraph(props ParagraphProps) Paragraph

	// AddTable appends a bordered rows×cols table.
	AddTable(rows, cols int) (Table, error)

	// Bytes serializes the finished document.
	Bytes() ([]byte, error)
}

// Factory produces a fresh Builder per generated document so no document
// state is shared across requests.
type Factory func() (Builder, error)
