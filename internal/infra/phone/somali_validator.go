// Package phone validates mobile numbers against the Somali numbering plan
// and classifies login identifiers as email or phone.
package phone

import (
	"regexp"
	"strings"

	"github.com/khaledhussein957/my-websote-sub000/internal/domain/service"
)

const countryCode = "252"

// operatorPrefixes maps the two leading digits of a national number to the
// operator that owns the range.
var operatorPrefixes = map[string]string{
	"61": "Hormuud",
	"62": "Somtel",
	"63": "Telesom",
	"64": "Hormuud",
	"65": "Somtel",
	"66": "NationLink",
	"68": "SomNet",
	"69": "NationLink",
	"71": "Amtel",
	"90": "Golis",
}

// operatorDetails holds the extended metadata per operator. A prefix can be
// recognized while the operator's details are missing here; that case is
// reported distinctly from an unknown prefix.
var operatorDetails = map[string]service.PhoneOperator{
	"Hormuud":    {Name: "Hormuud", Prefix: "61", Region: "South-Central Somalia", Services: "GSM, EVC Plus"},
	"Somtel":     {Name: "Somtel", Prefix: "62", Region: "Nationwide", Services: "GSM, eDahab"},
	"Telesom":    {Name: "Telesom", Prefix: "63", Region: "Somaliland", Services: "GSM, Zaad"},
	"NationLink": {Name: "NationLink", Prefix: "66", Region: "South-Central Somalia", Services: "GSM"},
	"SomNet":     {Name: "SomNet", Prefix: "68", Region: "South-Central Somalia", Services: "GSM"},
	"Golis":      {Name: "Golis", Prefix: "90", Region: "Puntland", Services: "GSM, Sahal"},
}

var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	identifierPattern = regexp.MustCompile(`^\+?\d{10,15}$`)
	nationalPattern   = regexp.MustCompile(`^\d{9}$`)
)

type somaliValidator struct{}

// NewSomaliValidator is the constructor for the Somali numbering-plan validator.
func NewSomaliValidator() service.PhoneValidator {
	return &somaliValidator{}
}

// CheckMobile validates a Somali mobile number and resolves its operator.
// The three failure modes each carry a distinct message and the caller is
// expected to surface the message as-is.
func (v *somaliValidator) CheckMobile(number string) service.PhoneCheckResult {
	national, ok := normalizeNational(number)
	if !ok {
		return service.PhoneCheckResult{
			Valid:   false,
			Message: "invalid mobile number format",
		}
	}

	operatorName, ok := operatorPrefixes[national[:2]]
	if !ok {
		return service.PhoneCheckResult{
			Valid:   false,
			Message: "no matching mobile operator for this number",
		}
	}

	details, ok := operatorDetails[operatorName]
	if !ok {
		return service.PhoneCheckResult{
			Valid:   false,
			Message: "operator recognized but operator details are unavailable",
		}
	}

	return service.PhoneCheckResult{
		Valid:    true,
		Operator: &details,
		Message:  "valid mobile number",
	}
}

// IsLoginIdentifier reports whether the string can serve as a login key:
// a syntactically valid email or a 10-15 digit phone pattern.
func (v *somaliValidator) IsLoginIdentifier(identifier string) bool {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return false
	}

	return emailPattern.MatchString(identifier) || identifierPattern.MatchString(identifier)
}

// normalizeNational reduces the accepted input forms (+252..., 252..., 0...,
// or a bare national number) to the 9-digit national form.
func normalizeNational(number string) (string, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}

		return r
	}, strings.TrimSpace(number))

	cleaned = strings.TrimPrefix(cleaned, "+")

	switch {
	case strings.HasPrefix(cleaned, countryCode) && len(cleaned) == len(countryCode)+9:
		cleaned = cleaned[len(countryCode):]
	case strings.HasPrefix(cleaned, "0") && len(cleaned) == 10:
		cleaned = cleaned[1:]
	}

	if !nationalPattern.MatchString(cleaned) {
		return "", false
	}

	return cleaned, true
}
