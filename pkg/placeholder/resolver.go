// Package placeholder builds the name→value map for one generation request
// and applies it to precedent text. The map is built once per request and
// never mutated afterwards.
package placeholder

import (
	"regexp"

	"github.com/Dave-Ash-4297/letter/pkg/answers"
	"github.com/Dave-Ash-4297/letter/pkg/firm"
)

// Map holds placeholder names to replacement strings.
type Map map[string]string

// DefaultCostsText stands in for the costs estimate when none was supplied.
const DefaultCostsText = "XX,XXX"

// tokenPattern matches a {name} token. Anything not matching passes through
// untouched.
var tokenPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Resolve builds the placeholder map from the per-request answers and the
// static firm details. Firm fields are applied last and win any collision
// with per-request fields of the same name.
func Resolve(a answers.Answers, f firm.Details) Map {
	costs := a.CostsText()
	if costs == "" {
		costs = DefaultCostsText
	}

	m := Map{
		"qu1_dispute_nature":               a.DisputeNature,
		"qu2_initial_steps":                a.InitialSteps,
		"qu3_timescales":                   a.Timescales,
		"qu4_initial_costs_with_vat":       costs,
		"our_ref":                          a.OurRef,
		"your_ref":                         a.YourRef,
		"letter_date":                      a.LetterDateText(),
		"client_name_input":                a.ClientName,
		"client_salutation":                a.ClientSalutation,
		"client_address_line1":             a.AddressLine1,
		"client_address_line2_conditional": a.AddressLine2,
		"client_postcode":                  a.Postcode,
		"matter_number":                    a.OurRef,
		"name":                             f.PersonResponsibleName,
	}
	for name, value := range f.Placeholders() {
		m[name] = value
	}
	return m
}

// Apply substitutes every {name} token present in the map in one
// left-to-right pass. Unknown tokens pass through literally and substituted
// values are never re-expanded, so the operation is idempotent on text with
// no remaining tokens.
func (m Map) Apply(line string) string {
	if len(m) == 0 {
		return line
	}
	return tokenPattern.ReplaceAllStringFunc(line, func(token string) string {
		name := token[1 : len(token)-1]
		if value, ok := m[name]; ok {
			return value
		}
		return token
	})
}
