package programs

import (
	"testing"

	"benefits-engine/internal/model"
)

func guideDogUser() *model.Profile {
	p := defaultProfile()
	p.Members[0].Disabled = true
	p.UsesGuideDog = model.Yes
	return p
}

func TestADSA(t *testing.T) {
	assertEligible(t, model.No, ADSA(defaultProfile()))

	p := guideDogUser()
	assertEligible(t, model.Unknown, ADSA(p), "SSI and SSDI are undetermined")

	p.Existing.SSI.Me = true
	assertEligible(t, model.Yes, ADSA(p))

	p.UsesGuideDog = model.No
	assertEligible(t, model.No, ADSA(p))
}

func TestADSARequiresDisability(t *testing.T) {
	for name, apply := range map[string]func(p *model.Profile){
		"disabled": func(p *model.Profile) { p.Members[0].Disabled = true },
		"blind":    func(p *model.Profile) { p.Blind = true },
		"deaf":     func(p *model.Profile) { p.Deaf = true },
	} {
		t.Run(name, func(t *testing.T) {
			p := defaultProfile()
			p.UsesGuideDog = model.Yes
			p.Existing.SSDI.Me = true
			assertEligible(t, model.No, ADSA(p))
			apply(p)
			assertEligible(t, model.Yes, ADSA(p))
		})
	}
}

func TestADSAExistingAssistance(t *testing.T) {
	for name, apply := range map[string]func(p *model.Profile){
		"ssi":           func(p *model.Profile) { p.Existing.SSI.Me = true },
		"ssdi":          func(p *model.Profile) { p.Existing.SSDI.Me = true },
		"ihss":          func(p *model.Profile) { p.Existing.IHSS.Me = true },
		"capi":          func(p *model.Profile) { p.Existing.CAPI.Me = true },
		"ssi eligible":  func(p *model.Profile) { ssiMadeEligible(p) },
		"capi eligible": func(p *model.Profile) { capiMadeEligible(p) },
		"ihss eligible": func(p *model.Profile) { ihssMadeEligible(p) },
	} {
		t.Run(name, func(t *testing.T) {
			p := guideDogUser()
			p.Members[0].Age = age(SSDIFullRetirementAge)
			p.IncomeValid = true
			p.Members[0].Income.Wages = []float64{5000}
			assertEligible(t, model.No, ADSA(p))
			p.Members[0].Income.Wages = nil
			apply(p)
			assertEligible(t, model.Yes, ADSA(p))
		})
	}
}

func TestIHSS(t *testing.T) {
	assertEligible(t, model.No, IHSS(defaultProfile()))
	assertEligible(t, model.Yes, IHSS(ihssMadeEligible(defaultProfile())))

	p := ihssMadeEligible(defaultProfile())
	p.Existing.MediCal.Me = false
	p.Existing.MediCal.Household = true
	assertEligible(t, model.No, IHSS(p), "applicant must be on Medi-Cal")

	p = ihssMadeEligible(defaultProfile())
	p.Housing = model.HousingShelter
	assertEligible(t, model.No, IHSS(p))

	p = ihssMadeEligible(defaultProfile())
	p.Members[0].Age = age(IHSSMinElderlyAge - 1)
	assertEligible(t, model.No, IHSS(p))

	p.Blind = true
	assertEligible(t, model.Yes, IHSS(p))
}

func TestVTAParatransit(t *testing.T) {
	assertEligible(t, model.No, VTAParatransit(defaultProfile()))

	p := defaultProfile()
	p.Members[0].Disabled = true
	assertEligible(t, model.Yes, VTAParatransit(p))
}

func TestUplift(t *testing.T) {
	assertEligible(t, model.Unknown, Uplift(defaultProfile()))

	p := defaultProfile()
	p.Housing = model.HousingHoused
	assertEligible(t, model.No, Uplift(p))

	p.HomelessRisk = model.Yes
	assertEligible(t, model.Yes, Uplift(p))

	for _, h := range []model.HousingSituation{
		model.HousingVehicle, model.HousingTransitional, model.HousingHotel,
		model.HousingShelter, model.HousingNoStablePlace,
	} {
		p := defaultProfile()
		p.Housing = h
		assertEligible(t, model.Yes, Uplift(p), string(h))
	}
}
