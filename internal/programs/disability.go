package programs

import "benefits-engine/internal/model"

const IHSSMinElderlyAge = 65

// ADSA pays for the care of a guide, signal or service dog.
func ADSA(p *model.Profile) model.Result {
	app := p.Applicant()
	e := p.Existing
	receiving := model.Or(
		model.Bool(e.SSI.Me || e.SSDI.Me || e.IHSS.Me || e.CAPI.Me),
		eligibleFor(p, SSI, CAPI, IHSS, SSDI),
	)
	eligible := model.And(
		model.Bool(app.Disabled || p.Blind || p.Deaf),
		p.UsesGuideDog,
		receiving,
	)
	return verdict(IDADSA, eligible)
}

// IHSS is in-home care for Medi-Cal members who live at home.
func IHSS(p *model.Profile) model.Result {
	app := p.Applicant()
	eligible := model.And(
		model.Bool(p.Existing.MediCal.Me),
		p.Housing.Stable(),
		model.Or(model.Bool(app.Disabled || p.Blind), app.AgeAtLeast(IHSSMinElderlyAge)),
	)
	return verdict(IDIHSS, eligible)
}

// VTAParatransit serves riders whose disability prevents using fixed-route
// transit.
func VTAParatransit(p *model.Profile) model.Result {
	return verdict(IDVTAParatransit, model.Bool(p.Applicant().Disabled))
}

// Uplift gives transit passes to people who are homeless or at risk.
func Uplift(p *model.Profile) model.Result {
	return verdict(IDUplift, model.Or(p.Housing.Unhoused(), p.HomelessRisk))
}
