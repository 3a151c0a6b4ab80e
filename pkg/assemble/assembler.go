// Package assemble walks the parsed element sequence, applies conditional
// visibility, and writes the client-care letter and the initial advice
// summary into a document builder.
package assemble

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Dave-Ash-4297/letter/pkg/document"
	"github.com/Dave-Ash-4297/letter/pkg/markup"
	"github.com/Dave-Ash-4297/letter/pkg/placeholder"
	"github.com/Dave-Ash-4297/letter/pkg/precedent"
)

// Fixed letter typography.
const (
	fontName   = "Arial"
	fontSizePt = 11
)

// Indent and numbering geometry in twips (1 cm = 567 twips).
const (
	extraIndentTwips = 709 // 1.25 cm for [ind] paragraphs
	cmTwips          = 567
)

// numberingLevels is the shared three-level scheme every generated letter
// defines exactly once: "1." / "(a)" / "(i)".
var numberingLevels = []document.NumberingLevel{
	{Format: document.NumberDecimal, Text: "%1.", LeftTwips: 0, HangingTwips: cmTwips, Start: 1},
	{Format: document.NumberLowerLetter, Text: "(%2)", LeftTwips: cmTwips, HangingTwips: cmTwips, Start: 1},
	{Format: document.NumberLowerRoman, Text: "(%3)", LeftTwips: cmTwips + cmTwips/2, HangingTwips: cmTwips, Start: 1},
}

// Option customises an Assembler.
type Option func(*Assembler)

// WithHourlyRate sets the Grade C rate shown in the fee table.
func WithHourlyRate(rate int) Option {
	return func(a *Assembler) {
		a.hourlyRate = rate
	}
}

// WithLogger attaches a logger; defaults to a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Assembler) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// Assembler writes one document into one builder. Builders are single-use, so
// construct a fresh Assembler per output document.
type Assembler struct {
	builder      document.Builder
	placeholders placeholder.Map
	hourlyRate   int
	logger       *zap.Logger
}

// New binds a builder and placeholder map.
func New(builder document.Builder, placeholders placeholder.Map, options ...Option) *Assembler {
	a := &Assembler{
		builder:      builder,
		placeholders: placeholders,
		logger:       zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a
}

// Letter renders the element sequence under the given selections. Hidden
// elements are skipped entirely; there is no partial rendering.
func (a *Assembler) Letter(elements []precedent.Element, sel precedent.Selections) error {
	a.builder.SetDefaultFont(fontName, fontSizePt)
	if err := a.builder.DefineNumbering(numberingLevels); err != nil {
		return fmt.Errorf("assemble: define numbering: %w", err)
	}

	for _, element := range elements {
		if !element.BlockTag.Visible(sel) {
			a.logger.Debug("skipping hidden block",
				zap.String("tag", string(element.BlockTag)),
				zap.String("type", string(element.Type)))
			continue
		}

		switch element.Type {
		case precedent.ElementBlankLine:
			// Spacing comes from paragraph spacing, not empty paragraphs.
		case precedent.ElementHeading:
			a.writeHeading(element)
		case precedent.ElementFeeTable:
			if err := a.writeFeeTable(); err != nil {
				return fmt.Errorf("assemble: fee table: %w", err)
			}
		case precedent.ElementNumbered:
			a.writeListItem(0, element)
		case precedent.ElementLetter:
			a.writeListItem(1, element)
		case precedent.ElementRoman:
			a.writeListItem(2, element)
		case precedent.ElementGeneralParagraph:
			a.writeParagraph(element)
		default:
			return fmt.Errorf("assemble: unknown element type %q", element.Type)
		}
	}
	return nil
}

func (a *Assembler) writeHeading(element precedent.Element) {
	p := a.builder.AddParagraph(document.ParagraphProps{
		SpaceBeforePt: 12,
		SpaceAfterPt:  6,
	})
	a.writeRuns(p, joinContent(element))
}

func (a *Assembler) writeListItem(level int, element precedent.Element) {
	lines := make([]string, 0, len(element.ContentLines))
	for _, line := range element.ContentLines {
		lines = append(lines, stripListMarker(line))
	}
	p := a.builder.AddParagraph(document.ParagraphProps{
		Alignment:      document.AlignJustify,
		SpaceAfterPt:   6,
		Numbered:       true,
		NumberingLevel: level,
	})
	a.writeRuns(p, strings.Join(lines, "\n"))
}

func (a *Assembler) writeParagraph(element precedent.Element) {
	text := joinContent(element)
	props := document.ParagraphProps{
		Alignment:    document.AlignJustify,
		SpaceAfterPt: 12,
	}
	if strings.Contains(text, precedent.IndentToken) {
		props.LeftIndentTwips = extraIndentTwips
		text = strings.TrimSpace(strings.ReplaceAll(text, precedent.IndentToken, ""))
	}
	a.writeRuns(a.builder.AddParagraph(props), text)
}

func (a *Assembler) writeFeeTable() error {
	tbl, err := a.builder.AddTable(5, 2)
	if err != nil {
		return err
	}
	for i, row := range FeeRows(a.hourlyRate) {
		if err := tbl.SetCell(i, 0, row[0]); err != nil {
			return err
		}
		if err := tbl.SetCell(i, 1, row[1]); err != nil {
			return err
		}
	}
	a.builder.AddParagraph(document.ParagraphProps{SpaceAfterPt: 12})
	return nil
}

// writeRuns expands placeholders and inline markup into formatted runs on the
// paragraph. The renderer never changes font identity, only bold/underline.
func (a *Assembler) writeRuns(p document.Paragraph, text string) {
	for _, r := range markup.Expand(text, a.placeholders) {
		if r.Break {
			p.AddBreak()
			continue
		}
		p.AddRun(r.Text, document.RunProps{Bold: r.Bold, Underline: r.Underline})
	}
}

// joinContent merges a multi-line element into one paragraph body; embedded
// newlines later become explicit breaks.
func joinContent(element precedent.Element) string {
	lines := make([]string, 0, len(element.ContentLines))
	for _, line := range element.ContentLines {
		lines = append(lines, strings.TrimSpace(line))
	}
	return strings.Join(lines, "\n")
}

// stripListMarker removes the leading list marker; the numbering definition
// supplies the visual marker instead.
func stripListMarker(line string) string {
	trimmed := strings.TrimSpace(line)
	for _, marker := range []string{precedent.MarkerLetter, precedent.MarkerRoman, precedent.MarkerNumbered} {
		if strings.HasPrefix(trimmed, marker) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, marker))
		}
	}
	return trimmed
}
