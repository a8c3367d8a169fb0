package programs

import "benefits-engine/internal/model"

// NoFeeIDMinEligibleAge is the age for a free senior ID card.
const NoFeeIDMinEligibleAge = 62

// NoFeeID is a free California ID for seniors and people experiencing
// homelessness.
func NoFeeID(p *model.Profile) model.Result {
	eligible := model.Or(
		p.Applicant().AgeAtLeast(NoFeeIDMinEligibleAge),
		p.Housing.Unhoused(),
	)
	return verdict(IDNoFeeID, eligible)
}

// ReducedFeeID is a reduced-fee ID for public assistance recipients.
func ReducedFeeID(p *model.Profile) model.Result {
	e := p.Existing
	if e.CalFresh.Me || e.CalWORKS.Me || e.GA.Me || e.SSI.Me || e.CAPI.Me || e.CFAP.Me {
		return verdict(IDReducedFeeID, model.Yes)
	}
	return verdict(IDReducedFeeID, eligibleFor(p, CalFresh, CalWORKS, GA, SSI, CAPI))
}
