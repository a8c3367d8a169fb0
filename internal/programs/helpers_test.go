package programs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"benefits-engine/internal/model"
)

func age(n int) *int { return &n }

// defaultProfile is a citizen living alone who has answered every yes/no
// question with no, but has not given an age, housing or income yet.
func defaultProfile() *model.Profile {
	return &model.Profile{
		Members:         []model.Member{{}},
		Citizen:         true,
		HeadOfHousehold: model.No,
		PaysUtilities:   model.No,
		HasKitchen:      model.No,
		HomelessRisk:    model.No,
		UsesGuideDog:    model.No,
		Military: model.Military{
			Disabled:           model.No,
			ServedFullDuration: model.No,
		},
	}
}

func adult(p *model.Profile) *model.Profile {
	p.Members[0].Age = age(30)
	p.IncomeValid = true
	return p
}

func addMember(p *model.Profile, m model.Member) *model.Profile {
	p.Members = append(p.Members, m)
	return p
}

func wages(p *model.Profile, amount float64) *model.Profile {
	p.IncomeValid = true
	p.Members[0].Income.Wages = []float64{amount}
	return p
}

func calworksMadeEligible(p *model.Profile) *model.Profile {
	p.Members[0].Age = age(20)
	p.Members[0].Pregnant = true
	return wages(p, CalWORKSMBSAC.Limit(1))
}

func gaMadeEligible(p *model.Profile) *model.Profile {
	p.Members[0].Age = age(99)
	return wages(p, GAIncomeLimit.Limit(1))
}

func ssiMadeEligible(p *model.Profile) *model.Profile {
	p.Members[0].Age = age(99)
	p.IncomeValid = true
	return p
}

func capiMadeEligible(p *model.Profile) *model.Profile {
	p.Citizen = false
	p.ImmigrationStatus = model.StatusPRUCOL
	p.Members[0].Age = age(99)
	return wages(p, SSIMaxBenefitNonBlind)
}

func ihssMadeEligible(p *model.Profile) *model.Profile {
	p.Members[0].Age = age(99)
	p.Housing = model.HousingHoused
	p.Existing.MediCal.Me = true
	return p
}

func wicMadeEligible(p *model.Profile) *model.Profile {
	p.Members[0].Pregnant = true
	return wages(p, WICIncomeLimit.Limit(1))
}

func liheapMadeEligible(p *model.Profile) *model.Profile {
	p.Housing = model.HousingHoused
	return wages(p, LIHEAPIncomeLimit.Limit(1))
}

func assertEligible(t *testing.T, want model.Tristate, r model.Result, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, want.String(), r.Eligible.String(), msgAndArgs...)
}

func assertNotEligible(t *testing.T, r model.Result, msgAndArgs ...interface{}) {
	t.Helper()
	assert.NotEqual(t, model.Yes.String(), r.Eligible.String(), msgAndArgs...)
}

func assertBenefit(t *testing.T, want float64, r model.Result) {
	t.Helper()
	if assert.NotNil(t, r.EstimatedBenefit) {
		assert.InDelta(t, want, *r.EstimatedBenefit, 0.001)
	}
}
