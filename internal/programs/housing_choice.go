package programs

import (
	"benefits-engine/internal/income"
	"benefits-engine/internal/model"
)

const HousingChoiceMinEligibleAge = 18

// hudVeryLowIncome is the Santa Clara County FY2022 very low income (50%)
// limit for households of one to eight.
var hudVeryLowIncome = []float64{59000, 67400, 75850, 84250, 91000, 97750, 104500, 111250}

// hudLargeHousehold extends the table the way HUD does: each person past
// eight adds 8% of the four-person limit to the eight-person factor of
// 132%, and the result is rounded up to the next $50.
func hudLargeHousehold(extra int) float64 {
	base := int64(hudVeryLowIncome[3])
	percent := int64(132 + 8*extra)
	limit := (base*percent + 4999) / 5000 * 50
	return float64(limit) - hudVeryLowIncome[len(hudVeryLowIncome)-1]
}

var HousingChoiceIncomeLimit = income.FromAnnual(hudVeryLowIncome, hudLargeHousehold)

var housingChoiceStatuses = []model.ImmigrationStatus{
	model.StatusPermanentResident,
	model.StatusQualifiedOver5y,
	model.StatusQualifiedUnder5y,
}

// HousingChoice is the Section 8 voucher program.
func HousingChoice(p *model.Profile) model.Result {
	eligible := model.And(
		p.Applicant().AgeAtLeast(HousingChoiceMinEligibleAge),
		citizenOr(p, housingChoiceStatuses...),
		checkIncome(p, grossIncome(p) <= HousingChoiceIncomeLimit.Limit(p.HouseholdSize())),
	)
	return verdict(IDHousingChoice, eligible)
}
