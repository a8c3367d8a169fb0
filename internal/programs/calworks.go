package programs

import (
	"math"

	"benefits-engine/internal/income"
	"benefits-engine/internal/model"
)

const (
	CalWORKSMaxChildAge   = 18
	CalWORKSMinElderlyAge = 60

	// CalWORKSEarnedIncomeDisregard is subtracted from each employed
	// member's earnings in the applicant income test.
	CalWORKSEarnedIncomeDisregard = 450

	CalWORKSResourceLimit                  = 11150
	CalWORKSResourceLimitElderlyOrDisabled = 16727
)

// CalWORKSMBSAC is the minimum basic standard of adequate care, Region 1,
// July 2022.
var CalWORKSMBSAC = income.NewMonthlyLimit(
	[]float64{812, 1334, 1652, 1963, 2240, 2519, 2768, 3020, 3277, 3568},
	income.PerPerson(35),
)

var calWORKSStatuses = []model.ImmigrationStatus{
	model.StatusPermanentResident,
	model.StatusQualifiedOver5y,
	model.StatusQualifiedUnder5y,
}

// calWORKSCountable excludes SSI/CAPI payments and applies the earned
// income disregard per employed member.
func calWORKSCountable(p *model.Profile) float64 {
	var total float64
	for _, m := range p.Members {
		total += income.MemberTotal(income.WithoutSSI(m), income.Unearned...)
		earned := income.MemberTotal(m, income.Earned...)
		total += math.Max(0, earned-CalWORKSEarnedIncomeDisregard)
	}
	return total
}

// CalWORKS requires a needy child or a pregnancy in the household. A head
// of household who is still a minor qualifies as a young caretaker.
func CalWORKS(p *model.Profile) model.Result {
	app := p.Applicant()
	needy := model.Or(
		anyMemberFlag(p.Members, func(m model.Member) bool { return m.Pregnant }),
		anyMember(p.Others(), func(m model.Member) model.Tristate { return m.AgeAtMost(CalWORKSMaxChildAge) }),
		model.And(p.HeadOfHousehold, app.AgeAtMost(CalWORKSMaxChildAge)),
	)

	incomeOK := checkIncome(p, calWORKSCountable(p) <= CalWORKSMBSAC.Limit(p.HouseholdSize()))

	higherLimit := model.Or(
		anyMember(p.Members, func(m model.Member) model.Tristate { return m.AgeAtLeast(CalWORKSMinElderlyAge) }),
		anyMemberFlag(p.Members, func(m model.Member) bool { return m.Disabled }),
	)
	resources := model.Unknown
	if p.IncomeValid {
		resources = withinTiered(income.HouseholdAssets(p.Members),
			CalWORKSResourceLimit, CalWORKSResourceLimitElderlyOrDisabled, higherLimit, false)
	}

	eligible := model.And(citizenOr(p, calWORKSStatuses...), needy, incomeOK, resources)
	return verdict(IDCalWORKS, eligible)
}
