// Package markup expands the inline formatting grammar of a precedent line
// into ordered formatting runs. It owns the four literal markers and the two
// independent bold/underline toggles; placeholder substitution happens first
// via pkg/placeholder.
package markup

import (
	"strings"

	"github.com/Dave-Ash-4297/letter/pkg/placeholder"
)

// Inline markers recognised inside a text line.
const (
	MarkerBoldOpen       = "<bd>"
	MarkerBoldClose      = "</bd>"
	MarkerUnderlineOpen  = "<ins>"
	MarkerUnderlineClose = "</ins>"
)

var markers = []string{MarkerBoldOpen, MarkerBoldClose, MarkerUnderlineOpen, MarkerUnderlineClose}

// Run is one formatting instruction: either a text segment with its toggle
// state, or an explicit line break (Break true, empty Text). Runs never change
// font identity; the document build layer owns the fixed font.
type Run struct {
	Text      string
	Bold      bool
	Underline bool
	Break     bool
}

// Expand substitutes placeholders into line and splits the result into
// formatting runs. Toggles start false; unbalanced markers simply leave a
// toggle in whatever state the last marker set. Embedded newlines inside a
// segment emit explicit break runs so multi-line content stays one paragraph.
func Expand(line string, placeholders placeholder.Map) []Run {
	return Split(placeholders.Apply(line))
}

// Split performs the marker pass only, without placeholder substitution.
func Split(text string) []Run {
	var (
		runs      []Run
		bold      bool
		underline bool
	)

	for _, part := range splitMarkers(text) {
		switch part {
		case "":
			continue
		case MarkerBoldOpen:
			bold = true
		case MarkerBoldClose:
			bold = false
		case MarkerUnderlineOpen:
			underline = true
		case MarkerUnderlineClose:
			underline = false
		default:
			for i, seg := range strings.Split(part, "\n") {
				if i > 0 {
					runs = append(runs, Run{Break: true})
				}
				runs = append(runs, Run{Text: seg, Bold: bold, Underline: underline})
			}
		}
	}
	return runs
}

// splitMarkers cuts text on the four literal markers, keeping the markers as
// their own parts.
func splitMarkers(text string) []string {
	var parts []string
	for text != "" {
		idx := -1
		which := ""
		for _, marker := range markers {
			if pos := strings.Index(text, marker); pos >= 0 && (idx < 0 || pos < idx) {
				idx = pos
				which = marker
			}
		}
		if idx < 0 {
			parts = append(parts, text)
			break
		}
		parts = append(parts, text[:idx], which)
		text = text[idx+len(which):]
	}
	return parts
}
