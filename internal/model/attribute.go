// Package model defines the core domain types shared across the application.
package model

import "strings"

// Attribute is one of the six skill categories that XP accumulates into.
type Attribute string

// The fixed attribute vocabulary. Values match the wire/storage names used
// throughout the system, which are Portuguese.
const (
	AttributePhysical     Attribute = "FISICO"
	AttributeDiscipline   Attribute = "DISCIPLINA"
	AttributeMental       Attribute = "MENTAL"
	AttributeIntellect    Attribute = "INTELECTO"
	AttributeProductivity Attribute = "PRODUTIVIDADE"
	AttributeFinancial    Attribute = "FINANCEIRO"
)

// DefaultAttribute is where XP lands when callers pass an unrecognized
// category. Coercing instead of rejecting is long-standing product behavior;
// callers do not expect attribute errors from the ledger.
const DefaultAttribute = AttributeProductivity

// AllAttributes returns the fixed attribute vocabulary in display order.
func AllAttributes() []Attribute {
	return []Attribute{
		AttributePhysical,
		AttributeDiscipline,
		AttributeMental,
		AttributeIntellect,
		AttributeProductivity,
		AttributeFinancial,
	}
}

// IsValid reports whether a is one of the six known attributes.
func (a Attribute) IsValid() bool {
	switch a {
	case AttributePhysical, AttributeDiscipline, AttributeMental,
		AttributeIntellect, AttributeProductivity, AttributeFinancial:
		return true
	}
	return false
}

// ParseAttribute maps a raw category string to an Attribute. Unknown values
// coerce to DefaultAttribute rather than failing.
func ParseAttribute(s string) Attribute {
	a := Attribute(strings.ToUpper(strings.TrimSpace(s)))
	if a.IsValid() {
		return a
	}
	return DefaultAttribute
}
