package assemble

import "fmt"

// FeeRows returns the fixed 5×2 fee-grade table. Only the Grade C rate varies
// with the fee earner's hourly rate; the other grades are firm-wide figures.
func FeeRows(hourlyRate int) [][2]string {
	return [][2]string{
		{"Grade A", "£450 (Partners, Solicitors over 8 years)"},
		{"Grade B", "£350 (Solicitors/Legal Executives over 4 years)"},
		{"Grade C", fmt.Sprintf("£%d (Solicitors/Legal Executives under 4 years)", hourlyRate)},
		{"Grade D", "£250 (Trainees, Paralegals)"},
		{"Grade E", "£150 (Support Staff)"},
	}
}
