package income

import "math"

const (
	// SSIUnearnedExclusion is the general income exclusion, applied to
	// unearned income first.
	SSIUnearnedExclusion = 20
	// SSIEarnedExclusion is excluded from earned income, together with any
	// unused part of the general exclusion.
	SSIEarnedExclusion = 65
)

// SSICAPIAdjusted returns countable monthly income for SSI and CAPI.
// Earned income left after exclusions counts at one half.
func SSICAPIAdjusted(earned, unearned float64) float64 {
	unearnedAdj := math.Max(0, unearned-SSIUnearnedExclusion)
	unused := math.Max(0, SSIUnearnedExclusion-unearned)
	earnedAdj := math.Max(0, earned-SSIEarnedExclusion-unused) / 2
	return unearnedAdj + earnedAdj
}

// Exempt returns amount with fraction of it excluded.
func Exempt(amount, fraction float64) float64 {
	return amount - amount*fraction
}
