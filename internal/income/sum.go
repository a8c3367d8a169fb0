package income

import "benefits-engine/internal/model"

type Category int

const (
	Wages Category = iota
	SelfEmployed
	Disability
	Unemployment
	Retirement
	Veterans
	WorkersComp
	ChildSupport
	Other
)

var (
	// Earned is income from work.
	Earned = []Category{Wages, SelfEmployed}
	// Unearned is every other category.
	Unearned = []Category{Disability, Unemployment, Retirement, Veterans, WorkersComp, ChildSupport, Other}
	All      = append(append([]Category{}, Earned...), Unearned...)
)

func Sum(entries []float64) float64 {
	var total float64
	for _, v := range entries {
		total += v
	}
	return total
}

func entries(in model.Income, c Category) []float64 {
	switch c {
	case Wages:
		return in.Wages
	case SelfEmployed:
		return in.SelfEmployed
	case Disability:
		return in.Disability
	case Unemployment:
		return in.Unemployment
	case Retirement:
		return in.Retirement
	case Veterans:
		return in.Veterans
	case WorkersComp:
		return in.WorkersComp
	case ChildSupport:
		return in.ChildSupport
	case Other:
		return in.Other
	}
	return nil
}

// MemberTotal sums one member's income in the given categories.
func MemberTotal(m model.Member, cats ...Category) float64 {
	var total float64
	for _, c := range cats {
		total += Sum(entries(m.Income, c))
	}
	return total
}

// HouseholdTotal sums the given categories over every member.
func HouseholdTotal(members []model.Member, cats ...Category) float64 {
	var total float64
	for _, m := range members {
		total += MemberTotal(m, cats...)
	}
	return total
}

// WithoutSSI returns m with its SSI/CAPI payments removed from disability
// income. Payments are only removed when present in Disability.
func WithoutSSI(m model.Member) model.Member {
	if len(m.Income.SSI) == 0 {
		return m
	}
	remaining := make([]float64, len(m.Income.Disability))
	copy(remaining, m.Income.Disability)
	for _, amount := range m.Income.SSI {
		for i, v := range remaining {
			if v == amount {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}
	m.Income.Disability = remaining
	m.Income.SSI = nil
	return m
}

// SSIPayments sums the SSI/CAPI payments received by the household.
func SSIPayments(members []model.Member) float64 {
	var total float64
	for _, m := range members {
		total += Sum(m.Income.SSI)
	}
	return total
}

func HouseholdAssets(members []model.Member) float64 {
	var total float64
	for _, m := range members {
		total += Sum(m.Assets)
	}
	return total
}
