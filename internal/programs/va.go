package programs

import (
	"time"

	"benefits-engine/internal/income"
	"benefits-engine/internal/model"
)

var vaDisqualifyingDischarge = map[model.DischargeStatus]bool{
	model.DischargeOtherThanHonor: true,
	model.DischargeBadConduct:     true,
	model.DischargeDishonorable:   true,
}

func vaDischargeOK(m model.Military) model.Tristate {
	if m.Discharge == "" {
		return model.Unknown
	}
	return model.Bool(!vaDisqualifyingDischarge[m.Discharge])
}

// Reserve and National Guard service alone does not qualify.
var vaDisabilityDutyTypes = map[model.DutyType]bool{
	model.DutyActive:           true,
	model.DutyActiveTraining:   true,
	model.DutyInactiveTraining: true,
}

// VADisability is compensation for a disability connected to service.
func VADisability(p *model.Profile) model.Result {
	qualifyingDuty := false
	for _, d := range p.Military.DutyPeriods {
		if vaDisabilityDutyTypes[d.Type] {
			qualifyingDuty = true
			break
		}
	}
	eligible := model.And(
		model.Bool(p.Veteran),
		model.Bool(qualifyingDuty),
		model.Bool(p.Applicant().Disabled),
		p.Military.Disabled,
		vaDischargeOK(p.Military),
	)
	return verdict(IDVADisability, eligible)
}

const (
	VAPensionMinAge = 65
	// VAPensionNetWorthLimit applies to assets plus annual income, December 2022.
	VAPensionNetWorthLimit = 150538

	vaMinActiveDays     = 90
	vaMinActiveDaysLate = 730
)

// VAPensionMAPR is the maximum annual pension rate by household: the
// veteran alone, with one dependent, then per additional dependent.
var VAPensionMAPR = income.FromAnnual([]float64{16037, 21001}, income.PerPerson(2743))

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Service that began after these dates needs 24 months or the full period
// the member was called to.
var (
	vaEnlistedCutoff = date(1980, time.September, 8)
	vaOfficerCutoff  = date(1981, time.October, 17)
)

type wartimePeriod struct {
	start, end time.Time // zero end: still open
}

var wartimePeriods = []wartimePeriod{
	{date(1941, time.December, 7), date(1946, time.December, 31)},
	{date(1950, time.June, 27), date(1955, time.January, 31)},
	{date(1964, time.August, 5), date(1975, time.May, 7)},
	{date(1990, time.August, 2), time.Time{}},
}

func duringWartime(d model.DutyPeriod) bool {
	for _, w := range wartimePeriods {
		if d.End.Before(w.start) {
			continue
		}
		if !w.end.IsZero() && d.Start.After(w.end) {
			continue
		}
		return true
	}
	return false
}

// vaPensionService checks for active duty with at least one day in wartime
// and enough time served.
func vaPensionService(m model.Military) model.Tristate {
	cutoff := vaEnlistedCutoff
	if m.Officer {
		cutoff = vaOfficerCutoff
	}

	var days int
	var wartime, early, undated bool
	for _, d := range m.DutyPeriods {
		if d.Type != model.DutyActive {
			continue
		}
		if d.Start.IsZero() || d.End.IsZero() || d.End.Before(d.Start) {
			undated = true
			continue
		}
		days += int(d.End.Sub(d.Start).Hours()/24) + 1
		wartime = wartime || duringWartime(d)
		early = early || d.Start.Before(cutoff)
	}

	var length model.Tristate
	if early {
		length = model.Bool(days >= vaMinActiveDays)
	} else {
		length = model.Or(model.Bool(days >= vaMinActiveDaysLate), m.ServedFullDuration)
	}
	service := model.And(model.Bool(wartime), length)
	if undated && service != model.Yes {
		return model.Unknown
	}
	return service
}

// VAPension supports wartime veterans who are older or disabled and have
// limited income and net worth.
func VAPension(p *model.Profile) model.Result {
	dependents := 0
	for _, m := range p.Others() {
		if m.Spouse || m.Dependent {
			dependents++
		}
	}
	mapr := VAPensionMAPR.Limit(1 + dependents)
	gross := grossIncome(p)
	netWorth := income.HouseholdAssets(p.Members) + gross*income.MonthsPerYear

	app := p.Applicant()
	eligible := model.And(
		model.Bool(p.Veteran),
		vaDischargeOK(p.Military),
		vaPensionService(p.Military),
		model.Or(app.AgeAtLeast(VAPensionMinAge), model.Bool(app.Disabled)),
		checkIncome(p, gross <= mapr),
		checkAssets(p, netWorth <= VAPensionNetWorthLimit),
	)
	return withBenefit(verdict(IDVAPension, eligible), mapr-gross)
}
