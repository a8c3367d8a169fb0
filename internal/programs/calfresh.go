package programs

import (
	"math"

	"benefits-engine/internal/income"
	"benefits-engine/internal/model"
)

// FederalPovertyLevel is the monthly poverty guideline used for
// federal fiscal year 2023 (October 2022).
var FederalPovertyLevel = income.NewMonthlyLimit(
	[]float64{1133, 1526, 1920, 2313, 2706, 3100, 3493, 3886},
	income.PerPerson(394),
)

const (
	// CalFreshGrossIncomeFactor is the modified categorical eligibility
	// multiplier on the poverty level.
	CalFreshGrossIncomeFactor = 2.0
	// CalFreshSelfEmployedExempt is the share of self-employment income
	// treated as business cost.
	CalFreshSelfEmployedExempt = 0.4
	// Qualified non-citizens in the five-year wait are exempt below this age.
	CalFreshShortResidencyOKBelowAge = 18

	calFreshEarnedDeduction = 0.2
	calFreshNetIncomeShare  = 0.3
	calFreshMinBenefit      = 23
	calFreshMinBenefitSize  = 2
)

var (
	calFreshMaxAllotment = income.NewMonthlyLimit(
		[]float64{281, 516, 740, 939, 1116, 1339, 1480, 1691},
		income.PerPerson(211),
	)
	calFreshStandardDeduction = income.NewMonthlyLimit(
		[]float64{193, 193, 193, 208, 244, 279},
		nil,
	)
)

func calFreshImmigration(p *model.Profile) model.Tristate {
	if p.Citizen {
		return model.Yes
	}
	switch p.ImmigrationStatus {
	case "":
		return model.Unknown
	case model.StatusPermanentResident, model.StatusQualifiedOver5y:
		return model.Yes
	case model.StatusQualifiedUnder5y:
		app := p.Applicant()
		e := p.Existing
		receiving := e.SSI.Me || e.SSDI.Me || e.CAPI.Me || e.MediCal.Me
		return model.Or(
			app.AgeUnder(CalFreshShortResidencyOKBelowAge),
			model.Bool((p.Blind || app.Disabled) && receiving),
		)
	}
	return model.No
}

// calFreshCounted returns gross earned and unearned income after the
// self-employment exemption.
func calFreshCounted(p *model.Profile) (earned, unearned float64) {
	wages := income.HouseholdTotal(p.Members, income.Wages)
	self := income.HouseholdTotal(p.Members, income.SelfEmployed)
	earned = wages + income.Exempt(self, CalFreshSelfEmployedExempt)
	unearned = income.HouseholdTotal(p.Members, income.Unearned...)
	return earned, unearned
}

func calFreshGrossLimit(size int) float64 {
	return FederalPovertyLevel.Limit(size) * CalFreshGrossIncomeFactor
}

func calFreshIncomeTest(p *model.Profile) model.Tristate {
	earned, unearned := calFreshCounted(p)
	return checkIncome(p, earned+unearned <= calFreshGrossLimit(p.HouseholdSize()))
}

// calFreshBenefit estimates the monthly allotment from net income.
func calFreshBenefit(p *model.Profile) float64 {
	size := p.HouseholdSize()
	earned, unearned := calFreshCounted(p)
	net := math.Max(0, earned*(1-calFreshEarnedDeduction)+unearned-calFreshStandardDeduction.Limit(size))
	benefit := math.Floor(math.Max(0, calFreshMaxAllotment.Limit(size)-calFreshNetIncomeShare*net))
	if size <= calFreshMinBenefitSize && benefit < calFreshMinBenefit {
		benefit = calFreshMinBenefit
	}
	return benefit
}

// CalFresh is California's SNAP. Households on CalWORKS or GA are
// categorically eligible and skip the income test.
func CalFresh(p *model.Profile) model.Result {
	categorical := model.Or(
		model.Bool(p.Existing.CalWORKS.Any() || p.Existing.GA.Any()),
		eligibleFor(p, CalWORKS, GA),
	)
	eligible := model.And(calFreshImmigration(p), model.Or(categorical, calFreshIncomeTest(p)))
	r := verdict(IDCalFresh, eligible)
	if !p.IncomeValid {
		return r
	}
	return withBenefit(r, calFreshBenefit(p))
}

var cfapStatuses = []model.ImmigrationStatus{
	model.StatusQualifiedUnder5y,
	model.StatusPRUCOL,
	model.StatusLongTerm,
}

// CFAP gives CalFresh-level benefits to lawfully present immigrants who fail
// the CalFresh status test.
func CFAP(p *model.Profile) model.Result {
	status := model.No
	if !p.Citizen {
		status = model.And(citizenOr(p, cfapStatuses...), calFreshImmigration(p).Not())
	}
	categorical := model.Bool(p.Existing.CalWORKS.Any() || p.Existing.GA.Any())
	eligible := model.And(status, model.Or(categorical, calFreshIncomeTest(p)))
	r := verdict(IDCFAP, eligible)
	if !p.IncomeValid {
		return r
	}
	return withBenefit(r, calFreshBenefit(p))
}
