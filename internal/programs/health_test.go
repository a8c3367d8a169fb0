package programs

import (
	"testing"

	"benefits-engine/internal/model"
)

func TestMediCal(t *testing.T) {
	assertEligible(t, model.Unknown, MediCal(defaultProfile()))

	limit := 18754.0 / 12
	assertEligible(t, model.Yes, MediCal(wages(adult(defaultProfile()), limit)))
	assertEligible(t, model.No, MediCal(wages(adult(defaultProfile()), limit+1)))

	for name, apply := range map[string]func(p *model.Profile){
		"ssi":      func(p *model.Profile) { p.Existing.SSI.Me = true },
		"capi":     func(p *model.Profile) { p.Existing.CAPI.Me = true },
		"calworks": func(p *model.Profile) { p.Existing.CalWORKS.Me = true },
	} {
		t.Run(name, func(t *testing.T) {
			p := wages(adult(defaultProfile()), 10000)
			apply(p)
			assertEligible(t, model.Yes, MediCal(p))
		})
	}

	p := wages(defaultProfile(), 10000)
	p.Members[0].Age = age(80)
	p.Members[0].Income.Wages = nil
	p.Members[0].Income.Retirement = []float64{2000}
	p.HasKitchen = model.No
	assertEligible(t, model.No, MediCal(p))
}

func wicApplicant(amount float64) *model.Profile {
	p := wages(defaultProfile(), amount)
	p.Citizen = false
	p.ImmigrationStatus = model.StatusNone
	p.Members[0].Age = age(25)
	p.Members[0].Pregnant = true
	return p
}

func TestWIC(t *testing.T) {
	assertEligible(t, model.No, WIC(defaultProfile()))
	assertEligible(t, model.Yes, WIC(wicMadeEligible(defaultProfile())))

	limit := WICIncomeLimit.Limit(1)
	assertEligible(t, model.Yes, WIC(wicApplicant(limit)))
	assertEligible(t, model.No, WIC(wicApplicant(limit+1)))

	p := wicApplicant(2500)
	p.UnbornChildren = 1
	assertEligible(t, model.Yes, WIC(p), "unborn children count toward household size")

	p = wicApplicant(5000)
	p.Existing.CalFresh.Household = true
	assertEligible(t, model.Yes, WIC(p))

	p = wicApplicant(0)
	p.IncomeValid = false
	assertEligible(t, model.Unknown, WIC(p))
}

func TestWICChildren(t *testing.T) {
	p := addMember(adult(defaultProfile()), model.Member{Age: age(WICMaxChildAge - 1)})
	assertEligible(t, model.Yes, WIC(p))

	p = addMember(adult(defaultProfile()), model.Member{Age: age(WICMaxChildAge)})
	assertEligible(t, model.No, WIC(p))

	p = addMember(adult(defaultProfile()), model.Member{Age: age(30), Feeding: true})
	assertEligible(t, model.Yes, WIC(p))
}

func TestNSLP(t *testing.T) {
	family := func(amount float64) *model.Profile {
		return wages(addMember(adult(defaultProfile()), model.Member{Age: age(10)}), amount)
	}

	assertEligible(t, model.Yes, NSLP(family(2800)))
	assertEligible(t, model.No, NSLP(family(3100)))

	p := family(10000)
	p.Existing.CFAP.Household = true
	assertEligible(t, model.Yes, NSLP(p))

	assertEligible(t, model.No, NSLP(adult(defaultProfile())), "no school-age child")

	p = addMember(adult(defaultProfile()), model.Member{Age: age(NSLPMaxChildAge + 1)})
	assertEligible(t, model.No, NSLP(p))
}
