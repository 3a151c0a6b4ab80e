package precedent_test

import (
	"testing"

	"github.com/Dave-Ash-4297/letter/pkg/precedent"
)

func TestDetectListType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		line string
		want precedent.ListType
	}{
		{"1. top level item", precedent.ListNumbered},
		{"  1. leading whitespace", precedent.ListNumbered},
		{"<a> letter item", precedent.ListLetter},
		{"<i> roman item", precedent.ListRoman},
		{"plain prose", precedent.ListNone},
		{"10. not the literal marker", precedent.ListNone},
		{"<ins>heading</ins>", precedent.ListNone},
		{"", precedent.ListNone},
	}
	for _, tc := range cases {
		if got := precedent.DetectListType(tc.line); got != tc.want {
			t.Fatalf("DetectListType(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestListTypeLevels(t *testing.T) {
	t.Parallel()

	levels := map[precedent.ListType]int{
		precedent.ListNumbered: 0,
		precedent.ListLetter:   1,
		precedent.ListRoman:    2,
		precedent.ListNone:     -1,
	}
	for listType, want := range levels {
		if got := listType.Level(); got != want {
			t.Fatalf("%q.Level() = %d, want %d", listType, got, want)
		}
	}

	if got := precedent.ListNumbered.ElementType(); got != precedent.ElementNumbered {
		t.Fatalf("unexpected element type %q", got)
	}
	if got := precedent.ListNone.ElementType(); got != precedent.ElementGeneralParagraph {
		t.Fatalf("unexpected element type %q", got)
	}
}

func TestElementFirstLine(t *testing.T) {
	t.Parallel()

	element := precedent.Element{ContentLines: []string{"first", "second"}}
	if got := element.FirstLine(); got != "first" {
		t.Fatalf("FirstLine() = %q", got)
	}
	if got := (precedent.Element{}).FirstLine(); got != "" {
		t.Fatalf("empty element FirstLine() = %q", got)
	}
}
