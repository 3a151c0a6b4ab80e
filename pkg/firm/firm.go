// Package firm holds the static firm details merged into every placeholder
// map. The built-in defaults can be overridden from a yaml file so the engine
// serves other offices without a rebuild.
package firm

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Details is the fixed firm data referenced by the precedent.
type Details struct {
	Name      string `yaml:"name"`
	ShortName string `yaml:"short_name"`

	PersonResponsibleName   string `yaml:"person_responsible_name"`
	PersonResponsibleTitle  string `yaml:"person_responsible_title"`
	PersonResponsiblePhone  string `yaml:"person_responsible_phone"`
	PersonResponsibleMobile string `yaml:"person_responsible_mobile"`
	PersonResponsibleEmail  string `yaml:"person_responsible_email"`
	AssistantName           string `yaml:"assistant_name"`

	SupervisorName                 string `yaml:"supervisor_name"`
	SupervisorTitle                string `yaml:"supervisor_title"`
	SupervisorContactForComplaints string `yaml:"supervisor_contact_for_complaints"`

	BankName      string `yaml:"bank_name"`
	BankAddress   string `yaml:"bank_address"`
	AccountName   string `yaml:"account_name"`
	SortCode      string `yaml:"sort_code"`
	AccountNumber string `yaml:"account_number"`

	MarketingEmail   string `yaml:"marketing_email"`
	MarketingAddress string `yaml:"marketing_address"`
}

// Default returns the built-in firm details.
func Default() Details {
	return Details{
		Name:      "Ramsdens Solicitors LLP",
		ShortName: "Ramsdens",

		PersonResponsibleName:   "Paul Pinder",
		PersonResponsibleTitle:  "Senior Associate",
		PersonResponsiblePhone:  "01484 821558",
		PersonResponsibleMobile: "07923 250815",
		PersonResponsibleEmail:  "paul.pinder@ramsdens.co.uk",
		AssistantName:           "Reece Collier",

		SupervisorName:                 "Nick Armitage",
		SupervisorTitle:                "Partner",
		SupervisorContactForComplaints: "Nick Armitage on 01484 507121",

		BankName:      "Barclays Bank PLC",
		BankAddress:   "17 Market Place, Huddersfield",
		AccountName:   "Ramsdens Solicitors LLP Client Account",
		SortCode:      "20-43-12",
		AccountNumber: "03909026",

		MarketingEmail:   "dataprotection@ramsdens.co.uk",
		MarketingAddress: "Ramsdens Solicitors LLP, Oakley House, 1 Hungerford Road, Edgerton, Huddersfield, HD3 3AL",
	}
}

// Load reads a yaml override file on top of the defaults. Fields missing from
// the file keep their default values.
func Load(path string) (Details, error) {
	details := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Details{}, fmt.Errorf("firm: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &details); err != nil {
		return Details{}, fmt.Errorf("firm: parse %s: %w", path, err)
	}
	return details, nil
}

// Placeholders exposes the details under the placeholder names the precedent
// uses. These are applied last when resolving, so they win any collision with
// per-request fields.
func (d Details) Placeholders() map[string]string {
	return map[string]string{
		"name":                              d.Name,
		"short_name":                        d.ShortName,
		"person_responsible_name":           d.PersonResponsibleName,
		"person_responsible_title":          d.PersonResponsibleTitle,
		"person_responsible_phone":          d.PersonResponsiblePhone,
		"person_responsible_mobile":         d.PersonResponsibleMobile,
		"person_responsible_email":          d.PersonResponsibleEmail,
		"assistant_name":                    d.AssistantName,
		"supervisor_name":                   d.SupervisorName,
		"supervisor_title":                  d.SupervisorTitle,
		"supervisor_contact_for_complaints": d.SupervisorContactForComplaints,
		"bank_name":                         d.BankName,
		"bank_address":                      d.BankAddress,
		"account_name":                      d.AccountName,
		"sort_code":                         d.SortCode,
		"account_number":                    d.AccountNumber,
		"marketing_email":                   d.MarketingEmail,
		"marketing_address":                 d.MarketingAddress,
	}
}
