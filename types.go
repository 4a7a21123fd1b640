package iso20022

// ValidateOpt bundles validation options.
type ValidateOpt struct {
	// FailFast stops at the first issue in declaration order.
	FailFast bool
	// StrictChoice enforces xs:choice cardinality: an empty choice reports
	// required and more than one populated alternative reports union_ambiguous.
	StrictChoice bool
	// MaxIssues caps the number of collected issues. 0 means unlimited; when
	// the cap is hit a truncated issue is appended.
	MaxIssues int
}

// Choice marks a struct generated from an xs:choice. Exactly one field is
// expected to be populated.
type Choice interface {
	XSDChoice()
}

// Message is a top-level ISO 20022 document.
type Message interface {
	// Namespace returns the XML namespace of the Document root, for example
	// urn:iso:std:iso:20022:tech:xsd:camt.054.001.08.
	Namespace() string
	Validate(opts ...ValidateOpt) error
}

// firstOpt returns the first option; later ones are ignored.
func firstOpt(opts []ValidateOpt) ValidateOpt {
	if len(opts) == 0 {
		return ValidateOpt{}
	}
	return opts[0]
}
