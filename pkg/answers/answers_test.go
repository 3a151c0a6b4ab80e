package answers_test

import (
	"testing"
	"time"

	"github.com/Dave-Ash-4297/letter/pkg/answers"
	"github.com/Dave-Ash-4297/letter/pkg/precedent"
)

func TestCostEstimateRangeText(t *testing.T) {
	t.Parallel()

	estimate := answers.CostEstimate{UseRange: true, Lower: 737.50, Upper: 1032.50}
	// 737.50 × 1.2 = 885, rounded up to £900; 1,032.50 × 1.2 = 1,239,
	// rounded up to £1,250.
	want := "from £737.50 to £1,032.50 plus VAT which means between £900.00 to £1,250.00"
	if got := estimate.Text(); got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}

func TestCostEstimateFixedText(t *testing.T) {
	t.Parallel()

	estimate := answers.CostEstimate{Fixed: 500}
	want := "a fixed fee of £500.00 plus VAT that being £600.00"
	if got := estimate.Text(); got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}

func TestCostEstimateVATRoundsUpToNextFifty(t *testing.T) {
	t.Parallel()

	// 100 × 1.2 = 120, which rounds up to £150 rather than down.
	estimate := answers.CostEstimate{Fixed: 100}
	want := "a fixed fee of £100.00 plus VAT that being £150.00"
	if got := estimate.Text(); got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}

func TestCostEstimateEmptyWhenUnset(t *testing.T) {
	t.Parallel()

	if got := (answers.CostEstimate{}).Text(); got != "" {
		t.Fatalf("Text() = %q, want empty", got)
	}
	if got := (answers.CostEstimate{UseRange: true}).Text(); got != "" {
		t.Fatalf("Text() = %q, want empty", got)
	}
}

func TestDateFormatting(t *testing.T) {
	t.Parallel()

	a := answers.Answers{LetterDate: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)}
	if got := a.LetterDateText(); got != "02 March 2026" {
		t.Fatalf("LetterDateText() = %q", got)
	}
	if got := (answers.Answers{}).LetterDateText(); got != "" {
		t.Fatalf("zero letter date rendered %q", got)
	}

	advice := answers.InitialAdvice{Date: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)}
	if got := advice.DateText(); got != "02/03/2026" {
		t.Fatalf("DateText() = %q", got)
	}
	if got := (answers.InitialAdvice{}).DateText(); got != "" {
		t.Fatalf("zero advice date rendered %q", got)
	}
}

func TestSelections(t *testing.T) {
	t.Parallel()

	a := answers.Answers{
		ClientType:    precedent.ClientCorporate,
		ClaimAssigned: true,
		Track:         precedent.TrackMulti,
	}
	sel := a.Selections()
	if sel.ClientType != precedent.ClientCorporate || !sel.ClaimAssigned || sel.Track != precedent.TrackMulti {
		t.Fatalf("unexpected selections %+v", sel)
	}
}

func TestSanitizeTextStripsMarkup(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"<bd>bold</bd> text", "bold text"},
		{"<ins>underlined</ins>", "underlined"},
		{"a dispute with Smith & Sons", "a dispute with Smith & Sons"},
		{"  padded  ", "padded"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := answers.SanitizeText(tc.in); got != tc.want {
			t.Fatalf("SanitizeText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizedCoversUserTypedFields(t *testing.T) {
	t.Parallel()

	a := answers.Answers{
		ClientName:    "<bd>Mr. Smith</bd>",
		DisputeNature: "a dispute <ins>about land</ins>",
		InitialSteps:  "review <bd>papers</bd>",
	}
	clean := a.Sanitized()
	if clean.ClientName != "Mr. Smith" {
		t.Fatalf("ClientName = %q", clean.ClientName)
	}
	if clean.DisputeNature != "a dispute about land" {
		t.Fatalf("DisputeNature = %q", clean.DisputeNature)
	}
	if clean.InitialSteps != "review papers" {
		t.Fatalf("InitialSteps = %q", clean.InitialSteps)
	}
	// The input value is untouched.
	if a.ClientName != "<bd>Mr. Smith</bd>" {
		t.Fatalf("Sanitized mutated its receiver: %q", a.ClientName)
	}
}
