package service

// PhoneOperator describes the mobile carrier a number's prefix belongs to.
type PhoneOperator struct {
	Name     string `json:"name"`
	Prefix   string `json:"prefix"`
	Region   string `json:"region"`
	Services string `json:"services"`
}

// PhoneCheckResult is the typed outcome of a phone-number check. When Valid
// is false, Message carries one of three distinct failure reasons: malformed
// format, no matching operator prefix, or operator recognized but metadata
// unavailable. Callers surface Message as-is.
type PhoneCheckResult struct {
	Valid    bool           `json:"valid"`
	Operator *PhoneOperator `json:"operator,omitempty"`
	Message  string         `json:"message"`
}

// PhoneValidator validates mobile numbers against the supported country's
// numbering plan and classifies login identifiers.
type PhoneValidator interface {
	// CheckMobile determines whether the number is structurally valid and
	// which operator prefix it matches.
	CheckMobile(number string) PhoneCheckResult

	// IsLoginIdentifier reports whether the string is acceptable as a login
	// key: a syntactically valid email or a 10-15 digit phone pattern.
	IsLoginIdentifier(identifier string) bool
}
