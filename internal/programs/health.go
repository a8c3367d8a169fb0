package programs

import (
	"benefits-engine/internal/income"
	"benefits-engine/internal/model"
)

// MediCalIncomeLimit is 138% of the 2022 poverty guideline, annual.
var MediCalIncomeLimit = income.FromAnnual(
	[]float64{18754, 25268, 31782, 38295, 44809, 51323, 57837, 64351},
	income.PerPerson(6514),
)

// WICIncomeLimit is 185% of the poverty guideline, monthly, July 2022.
var WICIncomeLimit = income.NewMonthlyLimit(
	[]float64{2096, 2823, 3551, 4279, 5006, 5734, 6462, 7189},
	income.PerPerson(728),
)

const (
	// WICMaxChildAge is the age at which children leave WIC.
	WICMaxChildAge = 5

	NSLPMinChildAge = 5
	NSLPMaxChildAge = 18
	// NSLPIncomeFactor sets the reduced-price meal limit on the poverty level.
	NSLPIncomeFactor = 1.85
)

// MediCal covers SSI, CAPI and CalWORKS recipients automatically, everyone
// else by income.
func MediCal(p *model.Profile) model.Result {
	e := p.Existing
	if e.SSI.Me || e.CAPI.Me || e.CalWORKS.Me {
		return verdict(IDMediCal, model.Yes)
	}
	incomeOK := checkIncome(p, grossIncome(p) <= MediCalIncomeLimit.Limit(p.HouseholdSize()))
	return verdict(IDMediCal, model.Or(incomeOK, eligibleFor(p, SSI, CAPI, CalWORKS)))
}

// WIC serves pregnant and breastfeeding people and children under five.
// Unborn children count toward household size.
func WIC(p *model.Profile) model.Result {
	needs := model.Or(
		anyMemberFlag(p.Members, func(m model.Member) bool { return m.Pregnant || m.Feeding }),
		anyMember(p.Others(), func(m model.Member) model.Tristate { return m.AgeUnder(WICMaxChildAge) }),
	)
	e := p.Existing
	adjunctive := model.Or(
		model.Bool(e.MediCal.Any() || e.CalFresh.Any() || e.CalWORKS.Any()),
		eligibleFor(p, MediCal, CalFresh, CalWORKS),
	)
	size := p.HouseholdSize() + p.UnbornChildren
	incomeOK := checkIncome(p, grossIncome(p) <= WICIncomeLimit.Limit(size))
	return verdict(IDWIC, model.And(needs, model.Or(adjunctive, incomeOK)))
}

// NSLP is free or reduced-price school meals for school-age children.
func NSLP(p *model.Profile) model.Result {
	schoolAge := anyMember(p.Members, func(m model.Member) model.Tristate {
		return model.And(m.AgeAtLeast(NSLPMinChildAge), m.AgeAtMost(NSLPMaxChildAge))
	})
	e := p.Existing
	direct := model.Or(
		model.Bool(e.CalFresh.Any() || e.CalWORKS.Any() || e.CFAP.Any()),
		eligibleFor(p, CalFresh, CalWORKS),
	)
	limit := FederalPovertyLevel.Limit(p.HouseholdSize()) * NSLPIncomeFactor
	incomeOK := checkIncome(p, grossIncome(p) <= limit)
	return verdict(IDNSLP, model.And(schoolAge, model.Or(direct, incomeOK)))
}
