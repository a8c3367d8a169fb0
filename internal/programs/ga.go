package programs

import (
	"benefits-engine/internal/income"
	"benefits-engine/internal/model"
)

// Santa Clara County General Assistance.
const (
	GAMinEligibleAge = 18
	GAMaxResources   = 500
)

// GAIncomeLimit is the maximum grant, which is also the income ceiling.
var GAIncomeLimit = income.NewMonthlyLimit([]float64{343, 562}, income.PerPerson(219))

var gaStatuses = []model.ImmigrationStatus{
	model.StatusPermanentResident,
	model.StatusQualifiedOver5y,
	model.StatusQualifiedUnder5y,
}

// GA is cash aid for adults without dependent children.
func GA(p *model.Profile) model.Result {
	limit := GAIncomeLimit.Limit(p.HouseholdSize())
	gross := grossIncome(p)
	eligible := model.And(
		p.Applicant().AgeAtLeast(GAMinEligibleAge),
		anyMemberFlag(p.Others(), func(m model.Member) bool { return m.Dependent }).Not(),
		citizenOr(p, gaStatuses...),
		checkIncome(p, gross <= limit),
		checkAssets(p, income.HouseholdAssets(p.Members) <= GAMaxResources),
	)
	return withBenefit(verdict(IDGA, eligible), limit-gross)
}
