// Package answers models the per-request input set the collaborating UI
// collects: client details, track selections, free-text advice fields, and
// the costs estimate. The engine only requires presence and defaults; the
// caller owns validation.
package answers

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Dave-Ash-4297/letter/pkg/precedent"
)

// Answers carries one submission's field values.
type Answers struct {
	OurRef           string    `yaml:"our_ref"`
	YourRef          string    `yaml:"your_ref"`
	LetterDate       time.Time `yaml:"letter_date"`
	ClientName       string    `yaml:"client_name"`
	ClientSalutation string    `yaml:"client_salutation"`
	AddressLine1     string    `yaml:"address_line1"`
	AddressLine2     string    `yaml:"address_line2,omitempty"`
	Postcode         string    `yaml:"postcode"`

	ClientType    precedent.ClientType `yaml:"client_type"`
	ClaimAssigned bool                 `yaml:"claim_assigned"`
	Track         precedent.Track      `yaml:"track"`

	DisputeNature string `yaml:"dispute_nature"`
	InitialSteps  string `yaml:"initial_steps"`
	Timescales    string `yaml:"timescales"`

	HourlyRate int          `yaml:"hourly_rate"`
	Costs      CostEstimate `yaml:"costs"`

	Advice InitialAdvice `yaml:"initial_advice"`
}

// InitialAdvice captures the first-advice summary fields.
type InitialAdvice struct {
	Date    time.Time `yaml:"date"`
	Method  string    `yaml:"method"`
	Content string    `yaml:"content"`
}

// CostEstimate describes the estimated initial costs, either a range or a
// fixed fee. Amounts are in pounds excluding VAT.
type CostEstimate struct {
	UseRange bool    `yaml:"use_range"`
	Lower    float64 `yaml:"lower,omitempty"`
	Upper    float64 `yaml:"upper,omitempty"`
	Fixed    float64 `yaml:"fixed,omitempty"`
}

const vatMultiplier = 1.2

var currency = message.NewPrinter(language.BritishEnglish)

// Text renders the estimate sentence fragment inserted into the letter, with
// VAT-inclusive amounts rounded up to the next £50. Returns the empty string
// when no amounts were supplied so the resolver can fall back to its default.
func (c CostEstimate) Text() string {
	switch {
	case c.UseRange && (c.Lower > 0 || c.Upper > 0):
		return currency.Sprintf(
			"from £%.2f to £%.2f plus VAT which means between £%.2f to £%.2f",
			c.Lower, c.Upper, withVAT(c.Lower), withVAT(c.Upper))
	case !c.UseRange && c.Fixed > 0:
		return currency.Sprintf(
			"a fixed fee of £%.2f plus VAT that being £%.2f",
			c.Fixed, withVAT(c.Fixed))
	default:
		return ""
	}
}

func withVAT(amount float64) float64 {
	return math.Ceil(amount*vatMultiplier/50) * 50
}

// Selections extracts the conditional-visibility choices.
func (a Answers) Selections() precedent.Selections {
	return precedent.Selections{
		ClientType:    a.ClientType,
		ClaimAssigned: a.ClaimAssigned,
		Track:         a.Track,
	}
}

// CostsText renders the costs estimate or the empty string.
func (a Answers) CostsText() string {
	return a.Costs.Text()
}

// LetterDateText formats the letter date the way the precedent expects, e.g.
// "02 January 2026". Zero dates render empty.
func (a Answers) LetterDateText() string {
	if a.LetterDate.IsZero() {
		return ""
	}
	return a.LetterDate.Format("02 January 2006")
}

// DateText formats the advice date as dd/mm/yyyy. Zero dates render empty.
func (i InitialAdvice) DateText() string {
	if i.Date.IsZero() {
		return ""
	}
	return i.Date.Format("02/01/2006")
}

// Sanitized returns a copy with markup stripped from every user-typed text
// field, so free text can never toggle inline formatting or open a
// conditional block.
func (a Answers) Sanitized() Answers {
	fields := []*string{
		&a.OurRef, &a.YourRef,
		&a.ClientName, &a.ClientSalutation,
		&a.AddressLine1, &a.AddressLine2, &a.Postcode,
		&a.DisputeNature, &a.InitialSteps, &a.Timescales,
	}
	for _, field := range fields {
		*field = SanitizeText(*field)
	}
	return a
}
