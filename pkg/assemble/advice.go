package assemble

import (
	"fmt"

	"github.com/Dave-Ash-4297/letter/pkg/answers"
	"github.com/Dave-Ash-4297/letter/pkg/document"
)

// adviceHeading is resolved against the placeholder map like any precedent
// line, so the matter number flows in.
const adviceHeading = "Initial Advice Summary - Matter Number: {matter_number}"

// AdviceSummary renders the fixed three-row initial advice summary document.
func (a *Assembler) AdviceSummary(advice answers.InitialAdvice) error {
	a.builder.SetDefaultFont(fontName, fontSizePt)

	heading := a.builder.AddParagraph(document.ParagraphProps{SpaceAfterPt: 12})
	a.writeRuns(heading, adviceHeading)

	tbl, err := a.builder.AddTable(3, 2)
	if err != nil {
		return fmt.Errorf("assemble: advice table: %w", err)
	}
	rows := [][2]string{
		{"Date of Advice", advice.DateText()},
		{"Method of Advice", advice.Method},
		{"Advice Given", advice.Content},
	}
	for i, row := range rows {
		if err := tbl.SetCell(i, 0, row[0]); err != nil {
			return fmt.Errorf("assemble: advice table: %w", err)
		}
		if err := tbl.SetCell(i, 1, row[1]); err != nil {
			return fmt.Errorf("assemble: advice table: %w", err)
		}
	}
	return nil
}
