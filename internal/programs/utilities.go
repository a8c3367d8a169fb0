package programs

import (
	"benefits-engine/internal/income"
	"benefits-engine/internal/model"
)

// Annual limits for June 2022 to May 2023. CARE and LifeLine publish one
// figure for households of one or two.
var (
	CAREIncomeLimit = income.FromAnnual(
		[]float64{36620, 36620, 46060, 55500, 64940, 74380, 83820, 93260},
		income.PerPerson(9440),
	)
	FERAIncomeLimit = income.FromAnnual(
		[]float64{45775, 45775, 57575, 69375, 81175, 92975, 104775, 116575},
		income.PerPerson(11800),
	)
	LifelineIncomeLimit = income.FromAnnual(
		[]float64{28700, 28700, 33300, 40600},
		income.PerPerson(7300),
	)
)

// LIHEAPIncomeLimit is 60% of state median income, monthly, FFY 2023.
var LIHEAPIncomeLimit = income.NewMonthlyLimit(
	[]float64{2700.83, 3531.85, 4362.87, 5193.89, 6024.91, 6855.93, 7011.75, 7167.57, 7323.39, 7479.21},
	income.PerPerson(155.82),
)

// FERAMinHouseholdSize is the smallest household FERA serves.
const FERAMinHouseholdSize = 3

func careCategorical(p *model.Profile) model.Tristate {
	e := p.Existing
	enrolled := e.MediCal.Any() || e.WIC.Any() || e.NSLP.Any() || e.CalFresh.Any() ||
		e.CFAP.Any() || e.LIHEAP.Any() || e.SSI.Any() || e.CalWORKS.Any()
	if enrolled {
		return model.Yes
	}
	return eligibleFor(p, WIC, CalFresh, LIHEAP, SSI, CalWORKS)
}

// CARE discounts energy bills for low-income households that pay them.
func CARE(p *model.Profile) model.Result {
	incomeOK := checkIncome(p, grossIncome(p) <= CAREIncomeLimit.Limit(p.HouseholdSize()))
	eligible := model.And(
		p.PaysUtilities,
		p.Housing.Stable(),
		model.Or(incomeOK, careCategorical(p)),
	)
	return verdict(IDCARE, eligible)
}

// FERA covers larger households with income just above the CARE limit.
func FERA(p *model.Profile) model.Result {
	size := p.HouseholdSize()
	gross := grossIncome(p)
	eligible := model.And(
		model.Bool(size >= FERAMinHouseholdSize),
		p.PaysUtilities,
		p.Housing.Stable(),
		checkIncome(p, gross > CAREIncomeLimit.Limit(size)),
		checkIncome(p, gross <= FERAIncomeLimit.Limit(size)),
	)
	return verdict(IDFERA, eligible)
}

// Lifeline discounts phone service by income or by enrollment in another
// program.
func Lifeline(p *model.Profile) model.Result {
	e := p.Existing
	enrolled := e.MediCal.Any() || e.LIHEAP.Any() || e.SSI.Any() || e.CalFresh.Any() ||
		e.WIC.Any() || e.NSLP.Any() || e.CalWORKS.Any()
	if enrolled {
		return verdict(IDLifeline, model.Yes)
	}
	incomeOK := checkIncome(p, grossIncome(p) <= LifelineIncomeLimit.Limit(p.HouseholdSize()))
	return verdict(IDLifeline, model.Or(incomeOK, eligibleFor(p, LIHEAP, SSI, CalFresh, WIC, CalWORKS)))
}

// LIHEAP helps stably housed households with heating and cooling costs.
func LIHEAP(p *model.Profile) model.Result {
	eligible := model.And(
		p.Housing.Stable(),
		checkIncome(p, grossIncome(p) <= LIHEAPIncomeLimit.Limit(p.HouseholdSize())),
	)
	return verdict(IDLIHEAP, eligible)
}
