package programs

import (
	"benefits-engine/internal/income"
	"benefits-engine/internal/model"
)

// SSI/SSP payment standards and limits, 2022.
const (
	SSIMinElderlyAge = 65
	SSIMaxResources  = 2000

	// Substantial gainful activity: monthly earnings above these disqualify
	// disabled and blind applicants.
	SSISGANonBlind = 1350
	SSISGABlind    = 2260

	SSIMaxBenefitNonBlind          = 1040.22
	SSIMaxBenefitNonBlindNoKitchen = 1133.73
	SSIMaxBenefitBlind             = 1104.52
)

// ssiUnit is the applicant and a spouse, whose assets are counted together.
func ssiUnit(p *model.Profile) []model.Member {
	unit := []model.Member{p.Applicant()}
	for _, m := range p.Others() {
		if m.Spouse {
			unit = append(unit, m)
		}
	}
	return unit
}

func sgaLimit(p *model.Profile) float64 {
	if p.Blind {
		return SSISGABlind
	}
	return SSISGANonBlind
}

// ssiCriteria holds the tests SSI and CAPI share. It returns the verdict,
// the applicant's adjusted income and the payment standard to compare it
// with.
func ssiCriteria(p *model.Profile) (model.Tristate, float64, float64) {
	app := p.Applicant()
	category := model.Or(model.Bool(app.Disabled || p.Blind), app.AgeAtLeast(SSIMinElderlyAge))

	earned := income.MemberTotal(app, income.Earned...)
	unearned := income.MemberTotal(income.WithoutSSI(app), income.Unearned...)
	adjusted := income.SSICAPIAdjusted(earned, unearned)

	sga := model.Yes
	if app.Disabled || p.Blind {
		sga = checkIncome(p, earned <= sgaLimit(p))
	}

	assets := checkAssets(p, income.HouseholdAssets(ssiUnit(p)) < SSIMaxResources)

	var within model.Tristate
	maxBenefit := float64(SSIMaxBenefitNonBlind)
	switch {
	case !p.IncomeValid:
		within = model.Unknown
	case p.Blind:
		maxBenefit = SSIMaxBenefitBlind
		within = model.Bool(adjusted < maxBenefit)
	default:
		if p.HasKitchen.IsNo() {
			maxBenefit = SSIMaxBenefitNonBlindNoKitchen
		}
		within = withinTiered(adjusted, SSIMaxBenefitNonBlind, SSIMaxBenefitNonBlindNoKitchen,
			p.HasKitchen.Not(), true)
	}

	return model.And(category, sga, assets, within), adjusted, maxBenefit
}

// SSI is Supplemental Security Income. Non-citizens who cannot receive it
// because of their status are covered by CAPI.
func SSI(p *model.Profile) model.Result {
	criteria, adjusted, maxBenefit := ssiCriteria(p)
	eligible := model.And(citizenOr(p, model.StatusPermanentResident), criteria)
	return withBenefit(verdict(IDSSI, eligible), maxBenefit-adjusted)
}

var capiStatuses = []model.ImmigrationStatus{
	model.StatusQualifiedOver5y,
	model.StatusQualifiedUnder5y,
	model.StatusPRUCOL,
}

// CAPI is the state-funded equivalent of SSI for immigrants.
func CAPI(p *model.Profile) model.Result {
	status := model.No
	if !p.Citizen {
		status = citizenOr(p, capiStatuses...)
	}
	criteria, adjusted, maxBenefit := ssiCriteria(p)
	return withBenefit(verdict(IDCAPI, model.And(status, criteria)), maxBenefit-adjusted)
}

// SSDIFullRetirementAge is when SSDI converts to retirement benefits.
const SSDIFullRetirementAge = 67

// SSDI depends on work credits, which the profile does not collect, so an
// applicant who meets every other test is Unknown unless already receiving it.
func SSDI(p *model.Profile) model.Result {
	if p.Existing.SSDI.Me {
		return verdict(IDSSDI, model.Yes)
	}
	app := p.Applicant()
	earned := income.MemberTotal(app, income.Earned...)
	eligible := model.And(
		model.Bool(app.Disabled || p.Blind),
		app.AgeUnder(SSDIFullRetirementAge),
		checkIncome(p, earned <= sgaLimit(p)),
		model.Unknown,
	)
	return verdict(IDSSDI, eligible)
}
