// Package parser turns raw precedent text into the ordered logical-element
// sequence. It is a line-by-line state machine: one open block tag, one
// active list type, and a buffer for the in-progress element.
package parser

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Dave-Ash-4297/letter/pkg/markup"
	"github.com/Dave-Ash-4297/letter/pkg/precedent"
)

// headingMarker is the underline-open marker; a marker-less first line
// containing it classifies the group as a heading.
const headingMarker = markup.MarkerUnderlineOpen

// bracketLine matches a line that is exactly one bracket tag, open or close.
// Whether the tag is a known block tag is decided separately so unknown tags
// fall through as ordinary content.
var bracketLine = regexp.MustCompile(`^\[(/?)([A-Za-z0-9_]+)\]$`)

// Parser implements precedent.Parser.
type Parser struct {
	options precedent.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ precedent.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options precedent.ParserOptions) precedent.Parser {
	return &Parser{options: options}
}

// Parse scans the document line by line and returns the elements in template
// order. Order is semantically meaningful and is never reordered.
func (p *Parser) Parse(ctx context.Context, doc precedent.Document) ([]precedent.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text := doc.Text()
	if text == "" {
		return nil, errors.New("precedent parser: document is empty")
	}

	acc := &accumulator{}
	for _, raw := range splitLines(text) {
		line := strings.TrimSpace(raw)

		if m := bracketLine.FindStringSubmatch(line); m != nil {
			tag, known := precedent.ParseBlockTag(m[2])
			if known {
				if m[1] == "/" {
					acc.closeBlock(tag)
				} else {
					acc.openBlock(tag)
				}
				continue
			}
			if p.options.StrictTags && line != precedent.FeeTableSentinel && line != precedent.IndentToken {
				return nil, fmt.Errorf("precedent parser: unknown block tag %q", m[2])
			}
			// Grammar sentinels and unknown bracket content are ordinary text.
		}

		if line == "" {
			acc.blankLine()
			continue
		}
		acc.contentLine(raw)
	}
	acc.finish()

	return acc.elements, nil
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// accumulator holds the parse state: the element list built so far, the open
// block tag, the active list type, and the buffered lines of the in-progress
// element.
type accumulator struct {
	elements []precedent.Element
	blockTag precedent.BlockTag
	listType precedent.ListType
	buffer   []string
}

// openBlock starts a conditional block. A pending untagged buffer is flushed
// untagged first so it never inherits the new tag.
func (a *accumulator) openBlock(tag precedent.BlockTag) {
	if len(a.buffer) > 0 && a.blockTag == precedent.BlockNone {
		a.flush()
	}
	a.blockTag = tag
}

// closeBlock ends a conditional block. Only a close matching the open tag
// flushes the buffer tagged; a mismatched close just clears the tag. Either
// way the active list type resets at the block boundary.
func (a *accumulator) closeBlock(tag precedent.BlockTag) {
	if len(a.buffer) > 0 && a.blockTag == tag {
		a.flush()
	}
	a.blockTag = precedent.BlockNone
	a.listType = precedent.ListNone
}

// blankLine flushes any pending element and records a standalone blank line
// carrying the open block tag, so conditional spacing collapses with its
// block.
func (a *accumulator) blankLine() {
	a.flush()
	a.elements = append(a.elements, precedent.Element{
		Type:     precedent.ElementBlankLine,
		BlockTag: a.blockTag,
	})
}

// contentLine buffers one non-blank line. A line opening a different list
// type forces a flush first: items of different levels are never merged into
// one element.
func (a *accumulator) contentLine(raw string) {
	if marker := precedent.DetectListType(raw); marker != precedent.ListNone && marker != a.listType {
		a.flush()
		a.listType = marker
	}
	a.buffer = append(a.buffer, raw)
}

func (a *accumulator) finish() {
	a.flush()
}

// flush classifies the buffered group by its first line and appends the
// element. Flush points sit exactly at classification boundaries, so one
// classification holds for the whole group. A line carrying a list marker
// classifies as that list item even when it also contains inline markup.
func (a *accumulator) flush() {
	if len(a.buffer) == 0 {
		return
	}
	lines := a.buffer
	a.buffer = nil

	first := strings.TrimSpace(lines[0])
	element := precedent.Element{ContentLines: lines, BlockTag: a.blockTag}

	switch {
	case first == "":
		element.Type = precedent.ElementBlankLine
		element.ContentLines = nil
	case precedent.DetectListType(first) != precedent.ListNone:
		marker := precedent.DetectListType(first)
		element.Type = marker.ElementType()
		element.ListType = marker
	case strings.Contains(first, headingMarker):
		element.Type = precedent.ElementHeading
	case strings.Contains(first, precedent.FeeTableSentinel):
		element.Type = precedent.ElementFeeTable
	case a.listType != precedent.ListNone:
		element.Type = a.listType.ElementType()
		element.ListType = a.listType
	default:
		element.Type = precedent.ElementGeneralParagraph
	}

	a.elements = append(a.elements, element)
}
