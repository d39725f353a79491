package models

import "math"

// Cents is an amount in minor currency units. Prices are stored this way;
// callers supply search bounds in whole units and convert with DollarsToCents.
type Cents int64

const centsPerDollar = 100

// MaxCents is the largest price properties.cost_per_night (INTEGER) can hold.
const MaxCents Cents = math.MaxInt32

// MaxDollars is the largest whole-unit amount that converts to at most MaxCents.
const MaxDollars = int64(MaxCents) / centsPerDollar

// DollarsToCents converts a whole-unit amount to minor units. The result is
// clamped to [0, MaxCents], so it never overflows or leaves the column range.
func DollarsToCents(dollars int64) Cents {
	switch {
	case dollars <= 0:
		return 0
	case dollars > MaxDollars:
		return MaxCents
	}
	return Cents(dollars * centsPerDollar)
}

// Dollars returns the amount in whole units, truncating any remainder.
func (c Cents) Dollars() int64 {
	return int64(c) / centsPerDollar
}
