package programs

import (
	"testing"

	"benefits-engine/internal/model"
)

func TestGA(t *testing.T) {
	assertNotEligible(t, GA(defaultProfile()))

	r := GA(gaMadeEligible(defaultProfile()))
	assertEligible(t, model.Yes, r)
	assertBenefit(t, 0, r)

	r = GA(wages(adult(defaultProfile()), 100))
	assertBenefit(t, GAIncomeLimit.Limit(1)-100, r)
}

func TestGARequirements(t *testing.T) {
	tests := []struct {
		name  string
		apply func(p *model.Profile)
		want  model.Tristate
	}{
		{"minimum age", func(p *model.Profile) { p.Members[0].Age = age(GAMinEligibleAge) }, model.Yes},
		{"under minimum age", func(p *model.Profile) { p.Members[0].Age = age(GAMinEligibleAge - 1) }, model.No},
		{"dependent in household", func(p *model.Profile) {
			addMember(p, model.Member{Age: age(25)})
			addMember(p, model.Member{Age: age(4), Dependent: true})
		}, model.No},
		{"roommate without dependents", func(p *model.Profile) {
			addMember(p, model.Member{Age: age(25)})
		}, model.Yes},
		{"income over limit", func(p *model.Profile) { wages(p, GAIncomeLimit.Limit(1)+1) }, model.No},
		{"assets at limit", func(p *model.Profile) { p.Members[0].Assets = []float64{GAMaxResources} }, model.Yes},
		{"assets over limit", func(p *model.Profile) { p.Members[0].Assets = []float64{GAMaxResources + 1} }, model.No},
		{"income incomplete", func(p *model.Profile) { p.IncomeValid = false }, model.Unknown},
		{"qualified under five years", func(p *model.Profile) {
			p.Citizen = false
			p.ImmigrationStatus = model.StatusQualifiedUnder5y
		}, model.Yes},
		{"prucol", func(p *model.Profile) {
			p.Citizen = false
			p.ImmigrationStatus = model.StatusPRUCOL
		}, model.No},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := adult(defaultProfile())
			tt.apply(p)
			assertEligible(t, tt.want, GA(p))
		})
	}
}
