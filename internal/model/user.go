package model

import (
	"fmt"
	"time"
)

// UserStats is the per-user gamification aggregate: cumulative XP, the six
// per-attribute XP pools, and the cached display rank derived from the total.
// All XP values are floored at zero; Rank is recomputed on every mutation and
// never edited independently.
type UserStats struct {
	CreatedAt      time.Time
	ID             string
	Name           string
	Rank           string
	CurrentXP      float64
	XPPhysical     float64
	XPDiscipline   float64
	XPMental       float64
	XPIntellect    float64
	XPProductivity float64
	XPFinancial    float64
}

// AttributeXP returns the accumulated XP for one attribute.
func (u *UserStats) AttributeXP(a Attribute) (float64, error) {
	switch a {
	case AttributePhysical:
		return u.XPPhysical, nil
	case AttributeDiscipline:
		return u.XPDiscipline, nil
	case AttributeMental:
		return u.XPMental, nil
	case AttributeIntellect:
		return u.XPIntellect, nil
	case AttributeProductivity:
		return u.XPProductivity, nil
	case AttributeFinancial:
		return u.XPFinancial, nil
	default:
		return 0, fmt.Errorf("unknown attribute: %s", a)
	}
}
