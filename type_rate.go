package cardwise

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RateUnit is the reward currency a card earns in.
type RateUnit int

const (
	Percent RateUnit = iota
	Points
	Miles
)

func (u RateUnit) String() string {
	switch u {
	case Percent:
		return "percent"
	case Points:
		return "points"
	case Miles:
		return "miles"
	default:
		panic(fmt.Sprintf("unknown rate unit %d", int(u)))
	}
}

// pointValue is the assumed redemption value of one transferable point or
// mile, in cents per dollar. A deliberate approximation so cards earning in
// different reward currencies stay comparable on a single scale.
var pointValue = decimal.NewFromFloat(1.5)

// Rate is an earning rate in a given reward unit.
type Rate struct {
	value decimal.Decimal
	unit  RateUnit
}

// PercentRate returns a cash-back rate, like 1.5 for 1.5%.
func PercentRate(v float64) Rate { return Rate{value: decimal.NewFromFloat(v), unit: Percent} }

// PointsRate returns a points-multiplier rate, like 3 for 3x points.
func PointsRate(v float64) Rate { return Rate{value: decimal.NewFromFloat(v), unit: Points} }

// MilesRate returns a miles-multiplier rate, like 2 for 2x miles.
func MilesRate(v float64) Rate { return Rate{value: decimal.NewFromFloat(v), unit: Miles} }

// IsZero reports whether the rate earns nothing.
func (r Rate) IsZero() bool { return r.value.IsZero() }

// Normalized returns the rate on the comparable cents-per-dollar scale:
// percent rates map 1:1, points and miles are multiplied by the assumed
// redemption value.
func (r Rate) Normalized() decimal.Decimal {
	switch r.unit {
	case Points, Miles:
		return r.value.Mul(pointValue)
	default:
		return r.value
	}
}

// Cmp compares two rates on the normalized scale.
func (r Rate) Cmp(s Rate) int { return r.Normalized().Cmp(s.Normalized()) }

// Label returns the display form of the rate: "3%", "4x pts", "2x mi",
// and "—" for a rate that earns nothing.
func (r Rate) Label() string {
	if r.value.IsZero() {
		return "—"
	}
	switch r.unit {
	case Percent:
		return r.value.String() + "%"
	case Points:
		return r.value.String() + "x pts"
	case Miles:
		return r.value.String() + "x mi"
	default:
		return r.value.String() + "x"
	}
}
