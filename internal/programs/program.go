package programs

import (
	"math"

	"benefits-engine/internal/income"
	"benefits-engine/internal/model"
)

// Evaluator decides one program's eligibility. Evaluators are pure: they
// never modify the profile and keep no state between calls.
type Evaluator func(p *model.Profile) model.Result

// Program describes a registered evaluator.
type Program struct {
	ID       string    `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	Category Category  `json:"category" yaml:"category"`
	Evaluate Evaluator `json:"-" yaml:"-"`
}

type Category string

const (
	CategoryNutrition      Category = "nutrition"
	CategoryCash           Category = "cash"
	CategoryDisability     Category = "disability"
	CategoryUtility        Category = "utility"
	CategoryHousing        Category = "housing"
	CategoryHealth         Category = "health"
	CategoryTransit        Category = "transit"
	CategoryVeterans       Category = "veterans"
	CategoryIdentification Category = "identification"
)

func verdict(id string, eligible model.Tristate) model.Result {
	return model.Result{Program: id, Eligible: eligible}
}

// withBenefit attaches a monthly estimate, rounded to cents, to an
// eligible result. Other results are returned unchanged.
func withBenefit(r model.Result, amount float64) model.Result {
	if !r.Eligible.IsYes() {
		return r
	}
	v := math.Round(math.Max(0, amount)*100) / 100
	r.EstimatedBenefit = &v
	return r
}

// checkIncome is Unknown while income entries are incomplete.
func checkIncome(p *model.Profile, ok bool) model.Tristate {
	if !p.IncomeValid {
		return model.Unknown
	}
	return model.Bool(ok)
}

// Assets are entered alongside income, so they share its completeness flag.
func checkAssets(p *model.Profile, ok bool) model.Tristate {
	return checkIncome(p, ok)
}

// grossIncome is the household's total monthly income in every category.
func grossIncome(p *model.Profile) float64 {
	return income.HouseholdTotal(p.Members, income.All...)
}

// citizenOr passes citizens and non-citizens whose status is listed.
func citizenOr(p *model.Profile, statuses ...model.ImmigrationStatus) model.Tristate {
	if p.Citizen {
		return model.Yes
	}
	if p.ImmigrationStatus == "" {
		return model.Unknown
	}
	for _, s := range statuses {
		if p.ImmigrationStatus == s {
			return model.Yes
		}
	}
	return model.No
}

// anyMember is Yes when f holds for some member.
func anyMember(members []model.Member, f func(model.Member) model.Tristate) model.Tristate {
	out := model.No
	for _, m := range members {
		switch f(m) {
		case model.Yes:
			return model.Yes
		case model.Unknown:
			out = model.Unknown
		}
	}
	return out
}

func anyMemberFlag(members []model.Member, f func(model.Member) bool) model.Tristate {
	return anyMember(members, func(m model.Member) model.Tristate { return model.Bool(f(m)) })
}

// eligibleFor is Yes as soon as one of evals finds the profile eligible.
func eligibleFor(p *model.Profile, evals ...Evaluator) model.Tristate {
	out := model.No
	for _, e := range evals {
		switch e(p).Eligible {
		case model.Yes:
			return model.Yes
		case model.Unknown:
			out = model.Unknown
		}
	}
	return out
}

// withinTiered compares value with lower or higher depending on useHigher,
// and is Unknown only when useHigher is unanswered and the limits disagree.
func withinTiered(value, lower, higher float64, useHigher model.Tristate, strict bool) model.Tristate {
	within := func(limit float64) bool {
		if strict {
			return value < limit
		}
		return value <= limit
	}
	switch useHigher {
	case model.Yes:
		return model.Bool(within(higher))
	case model.No:
		return model.Bool(within(lower))
	}
	lo, hi := within(lower), within(higher)
	if lo == hi {
		return model.Bool(lo)
	}
	return model.Unknown
}
