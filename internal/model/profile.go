package model

import (
	"time"

	"github.com/rotisserie/eris"
)

type HousingSituation string

const (
	HousingHoused         HousingSituation = "housed"
	HousingVehicle        HousingSituation = "vehicle"
	HousingTransitional   HousingSituation = "transitional"
	HousingHotel          HousingSituation = "hotel"
	HousingShelter        HousingSituation = "shelter"
	HousingUnlistedStable HousingSituation = "unlisted-stable-place"
	HousingNoStablePlace  HousingSituation = "no-stable-place"
)

var housingSituations = map[HousingSituation]bool{
	HousingHoused: true, HousingVehicle: true, HousingTransitional: true, HousingHotel: true,
	HousingShelter: true, HousingUnlistedStable: true, HousingNoStablePlace: true,
}

// Valid reports whether h is a known situation or unanswered.
func (h HousingSituation) Valid() bool { return h == "" || housingSituations[h] }

// Stable is Yes for housed and unlisted-stable-place, Unknown when unanswered.
func (h HousingSituation) Stable() Tristate {
	if h == "" {
		return Unknown
	}
	return Bool(h == HousingHoused || h == HousingUnlistedStable)
}

// Unhoused is Yes for vehicle, transitional, hotel, shelter and no-stable-place.
func (h HousingSituation) Unhoused() Tristate {
	return h.Stable().Not()
}

type ImmigrationStatus string

const (
	StatusPermanentResident ImmigrationStatus = "permanent_resident"
	StatusQualifiedOver5y   ImmigrationStatus = "qualified_noncitizen_gt5y"
	StatusQualifiedUnder5y  ImmigrationStatus = "qualified_noncitizen_le5y"
	StatusPRUCOL            ImmigrationStatus = "prucol"
	StatusLongTerm          ImmigrationStatus = "long_term"
	StatusTemporary         ImmigrationStatus = "live_temporarily"
	StatusNone              ImmigrationStatus = "none_describe"
)

var immigrationStatuses = map[ImmigrationStatus]bool{
	StatusPermanentResident: true, StatusQualifiedOver5y: true, StatusQualifiedUnder5y: true,
	StatusPRUCOL: true, StatusLongTerm: true, StatusTemporary: true, StatusNone: true,
}

func (s ImmigrationStatus) Valid() bool { return s == "" || immigrationStatuses[s] }

type DischargeStatus string

const (
	DischargeHonorable       DischargeStatus = "honorable"
	DischargeGeneral         DischargeStatus = "general"
	DischargeOtherThanHonor  DischargeStatus = "oth"
	DischargeBadConduct      DischargeStatus = "bad-conduct"
	DischargeDishonorable    DischargeStatus = "dishonorable"
	DischargeUncharacterized DischargeStatus = "uncharacterized"
)

var dischargeStatuses = map[DischargeStatus]bool{
	DischargeHonorable: true, DischargeGeneral: true, DischargeOtherThanHonor: true,
	DischargeBadConduct: true, DischargeDishonorable: true, DischargeUncharacterized: true,
}

func (d DischargeStatus) Valid() bool { return d == "" || dischargeStatuses[d] }

type DutyType string

const (
	DutyActive           DutyType = "active-duty"
	DutyActiveTraining   DutyType = "active-training"
	DutyInactiveTraining DutyType = "inactive-training"
	DutyReserve          DutyType = "reserve-duty"
	DutyGuard            DutyType = "guard-duty"
)

var dutyTypes = map[DutyType]bool{
	DutyActive: true, DutyActiveTraining: true, DutyInactiveTraining: true,
	DutyReserve: true, DutyGuard: true,
}

func (d DutyType) Valid() bool { return dutyTypes[d] }

// DutyPeriod is one period of military service. Zero dates are unknown.
type DutyPeriod struct {
	Type  DutyType
	Start time.Time
	End   time.Time
}

type Military struct {
	Disabled           Tristate // disability connected to military service
	Discharge          DischargeStatus
	ServedFullDuration Tristate
	Officer            bool
	DutyPeriods        []DutyPeriod
}

// Income holds one member's monthly income entries by category.
type Income struct {
	Wages        []float64
	SelfEmployed []float64
	Disability   []float64
	Unemployment []float64
	Retirement   []float64
	Veterans     []float64
	WorkersComp  []float64
	ChildSupport []float64
	Other        []float64

	// SSI lists the Disability entries that are SSI or CAPI payments.
	SSI []float64
}

// Member is one household member. Members[0] of a Profile is the applicant.
type Member struct {
	Age       *int
	Disabled  bool
	Pregnant  bool
	Feeding   bool
	Spouse    bool
	Dependent bool
	Income    Income
	Assets    []float64
}

// AgeAtLeast is Unknown when the age was not given.
func (m Member) AgeAtLeast(n int) Tristate {
	if m.Age == nil {
		return Unknown
	}
	return Bool(*m.Age >= n)
}

func (m Member) AgeAtMost(n int) Tristate {
	if m.Age == nil {
		return Unknown
	}
	return Bool(*m.Age <= n)
}

func (m Member) AgeUnder(n int) Tristate {
	return m.AgeAtLeast(n).Not()
}

// Enrollment records whether the applicant or someone else in the
// household already receives a program.
type Enrollment struct {
	Me        bool
	Household bool
}

func (e Enrollment) Any() bool { return e.Me || e.Household }

type Assistance struct {
	SSI       Enrollment
	SSDI      Enrollment
	CalWORKS  Enrollment
	CalFresh  Enrollment
	CFAP      Enrollment
	MediCal   Enrollment
	IHSS      Enrollment
	CAPI      Enrollment
	LIHEAP    Enrollment
	WIC       Enrollment
	NSLP      Enrollment
	GA        Enrollment
	VAPension Enrollment
}

// Profile is the applicant's answers, assembled once per evaluation and
// never modified by evaluators.
type Profile struct {
	Members []Member

	Citizen           bool
	ImmigrationStatus ImmigrationStatus
	Blind             bool
	Deaf              bool
	Veteran           bool
	HeadOfHousehold   Tristate
	UnbornChildren    int

	Housing       HousingSituation
	PaysUtilities Tristate
	HasKitchen    Tristate
	HomelessRisk  Tristate
	UsesGuideDog  Tristate

	Military Military

	// IncomeValid is false until income and asset entries are complete.
	// Empty entries with IncomeValid set mean no income.
	IncomeValid bool

	Existing Assistance
}

func (p *Profile) Applicant() Member {
	if len(p.Members) == 0 {
		return Member{}
	}
	return p.Members[0]
}

// Others returns every member except the applicant.
func (p *Profile) Others() []Member {
	if len(p.Members) < 2 {
		return nil
	}
	return p.Members[1:]
}

func (p *Profile) HouseholdSize() int {
	if len(p.Members) == 0 {
		return 1
	}
	return len(p.Members)
}

// Validate checks the invariants a Profile built in Go might break.
func (p *Profile) Validate() error {
	if len(p.Members) == 0 {
		return eris.New("profile: at least the applicant is required")
	}
	if !p.Housing.Valid() {
		return eris.Errorf("profile: unknown housing situation %q", p.Housing)
	}
	if !p.ImmigrationStatus.Valid() {
		return eris.Errorf("profile: unknown immigration status %q", p.ImmigrationStatus)
	}
	if !p.Military.Discharge.Valid() {
		return eris.Errorf("profile: unknown discharge status %q", p.Military.Discharge)
	}
	for i, d := range p.Military.DutyPeriods {
		if !d.Type.Valid() {
			return eris.Errorf("profile: duty period %d has unknown type %q", i, d.Type)
		}
	}
	if p.UnbornChildren < 0 {
		return eris.New("profile: unborn children cannot be negative")
	}
	for i, m := range p.Members {
		if m.Age != nil && *m.Age < 0 {
			return eris.Errorf("profile: member %d has a negative age", i)
		}
	}
	return nil
}
