package precedent

import "strings"

// Grammar tokens recognised in precedent text beyond the inline formatting
// markers owned by pkg/markup.
const (
	// MarkerNumbered starts a top-level numbered list item.
	MarkerNumbered = "1."
	// MarkerLetter starts a second-level letter list item.
	MarkerLetter = "<a>"
	// MarkerRoman starts a third-level roman list item.
	MarkerRoman = "<i>"
	// FeeTableSentinel marks where the fee-grade table is inserted.
	FeeTableSentinel = "[FEE_TABLE_PLACEHOLDER]"
	// IndentToken requests extra left indent on a general paragraph. All
	// occurrences are stripped before rendering.
	IndentToken = "[ind]"
)

// ElementType classifies a parsed logical element.
type ElementType string

const (
	ElementBlankLine        ElementType = "blank_line"
	ElementHeading          ElementType = "heading"
	ElementFeeTable         ElementType = "fee_table"
	ElementNumbered         ElementType = "numbered"
	ElementLetter           ElementType = "letter"
	ElementRoman            ElementType = "roman"
	ElementGeneralParagraph ElementType = "general_paragraph"
)

// ListType tracks which list level a run of lines belongs to while parsing.
type ListType string

const (
	ListNone     ListType = ""
	ListNumbered ListType = "numbered"
	ListLetter   ListType = "letter"
	ListRoman    ListType = "roman"
)

// ElementType returns the element classification for a list type.
func (l ListType) ElementType() ElementType {
	switch l {
	case ListNumbered:
		return ElementNumbered
	case ListLetter:
		return ElementLetter
	case ListRoman:
		return ElementRoman
	default:
		return ElementGeneralParagraph
	}
}

// Level maps a list type onto its numbering level. ListNone reports -1.
func (l ListType) Level() int {
	switch l {
	case ListNumbered:
		return 0
	case ListLetter:
		return 1
	case ListRoman:
		return 2
	default:
		return -1
	}
}

// DetectListType inspects the start of a line for a list marker.
func DetectListType(line string) ListType {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, MarkerLetter):
		return ListLetter
	case strings.HasPrefix(trimmed, MarkerRoman):
		return ListRoman
	case strings.HasPrefix(trimmed, MarkerNumbered):
		return ListNumbered
	default:
		return ListNone
	}
}

// Element is one parsed unit of the precedent, in template order.
type Element struct {
	Type ElementType

	// ContentLines holds the raw text lines of the element; empty for blank
	// lines.
	ContentLines []string

	// BlockTag records the conditional block the element belongs to, or
	// BlockNone when the element renders unconditionally.
	BlockTag BlockTag

	// ListType mirrors Type for list elements and is ListNone otherwise.
	ListType ListType
}

// FirstLine returns the first content line or the empty string.
func (e Element) FirstLine() string {
	if len(e.ContentLines) == 0 {
		return ""
	}
	return e.ContentLines[0]
}
