package profile

import (
	"math"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"benefits-engine/internal/model"
)

// Input is the form-shaped applicant answers as the screener collects
// them: applicant fields at the top level, other household members as
// parallel arrays, income and assets as one inner list per member.
type Input struct {
	Age               Number         `json:"age"`
	NotCitizen        bool           `json:"notCitizen"`
	ImmigrationStatus string         `json:"immigrationStatus"`
	Disabled          bool           `json:"disabled"`
	Blind             bool           `json:"blind"`
	Deaf              bool           `json:"deaf"`
	Veteran           bool           `json:"veteran"`
	Pregnant          bool           `json:"pregnant"`
	Feeding           bool           `json:"feeding"`
	HeadOfHousehold   model.Tristate `json:"headOfHousehold"`

	HouseholdAges       []Number `json:"householdAges"`
	HouseholdDisabled   []bool   `json:"householdDisabled"`
	HouseholdPregnant   []bool   `json:"householdPregnant"`
	HouseholdFeeding    []bool   `json:"householdFeeding"`
	HouseholdSpouse     []bool   `json:"householdSpouse"`
	HouseholdDependents []bool   `json:"householdDependents"`
	HouseholdSize       int      `json:"householdSize"`
	UnbornChildren      Number   `json:"unbornChildren"`

	HousingSituation string         `json:"housingSituation"`
	PaysUtilities    model.Tristate `json:"paysUtilities"`
	HasKitchen       model.Tristate `json:"hasKitchen"`
	HomelessRisk     model.Tristate `json:"homelessRisk"`

	UsesGuideDog       model.Tristate `json:"usesGuideDog"`
	MilitaryDisabled   model.Tristate `json:"militaryDisabled"`
	DischargeStatus    string         `json:"dischargeStatus"`
	ServedFullDuration model.Tristate `json:"servedFullDuration"`
	Enlisted           bool           `json:"enlisted"`
	Officer            bool           `json:"officer"`
	DutyPeriods        []DutyPeriod   `json:"dutyPeriods"`

	Income    IncomeInput `json:"income"`
	Assets    [][]float64 `json:"assets"`
	SSIIncome []float64   `json:"ssiIncome"`

	ExistingAssistance
}

type DutyPeriod struct {
	Type  string `json:"type"`
	Start Date   `json:"start"`
	End   Date   `json:"end"`
}

// IncomeInput holds monthly amounts per category, one inner list per
// household member starting with the applicant.
type IncomeInput struct {
	Valid        bool        `json:"valid"`
	Wages        [][]float64 `json:"wages"`
	SelfEmployed [][]float64 `json:"selfEmployed"`
	Disability   [][]float64 `json:"disability"`
	Unemployment [][]float64 `json:"unemployment"`
	Retirement   [][]float64 `json:"retirement"`
	Veterans     [][]float64 `json:"veterans"`
	WorkersComp  [][]float64 `json:"workersComp"`
	ChildSupport [][]float64 `json:"childSupport"`
	Other        [][]float64 `json:"other"`
}

type ExistingAssistance struct {
	SSIMe              bool `json:"existingSsiMe"`
	SSIHousehold       bool `json:"existingSsiHousehold"`
	SSDIMe             bool `json:"existingSsdiMe"`
	SSDIHousehold      bool `json:"existingSsdiHousehold"`
	CalWORKSMe         bool `json:"existingCalworksMe"`
	CalWORKSHousehold  bool `json:"existingCalworksHousehold"`
	CalFreshMe         bool `json:"existingCalfreshMe"`
	CalFreshHousehold  bool `json:"existingCalfreshHousehold"`
	CFAPMe             bool `json:"existingCfapMe"`
	CFAPHousehold      bool `json:"existingCfapHousehold"`
	MediCalMe          bool `json:"existingMedicalMe"`
	MediCalHousehold   bool `json:"existingMedicalHousehold"`
	IHSSMe             bool `json:"existingIhssMe"`
	IHSSHousehold      bool `json:"existingIhssHousehold"`
	CAPIMe             bool `json:"existingCapiMe"`
	CAPIHousehold      bool `json:"existingCapiHousehold"`
	LIHEAPMe           bool `json:"existingLiheapMe"`
	LIHEAPHousehold    bool `json:"existingLiheapHousehold"`
	WICMe              bool `json:"existingWicMe"`
	WICHousehold       bool `json:"existingWicHousehold"`
	NSLPMe             bool `json:"existingNslpMe"`
	NSLPHousehold      bool `json:"existingNslpHousehold"`
	GAMe               bool `json:"existingGaMe"`
	GAHousehold        bool `json:"existingGaHousehold"`
	VAPensionMe        bool `json:"existingVaPensionMe"`
	VAPensionHousehold bool `json:"existingVaPensionHousehold"`
}

func (e ExistingAssistance) assistance() model.Assistance {
	return model.Assistance{
		SSI:       model.Enrollment{Me: e.SSIMe, Household: e.SSIHousehold},
		SSDI:      model.Enrollment{Me: e.SSDIMe, Household: e.SSDIHousehold},
		CalWORKS:  model.Enrollment{Me: e.CalWORKSMe, Household: e.CalWORKSHousehold},
		CalFresh:  model.Enrollment{Me: e.CalFreshMe, Household: e.CalFreshHousehold},
		CFAP:      model.Enrollment{Me: e.CFAPMe, Household: e.CFAPHousehold},
		MediCal:   model.Enrollment{Me: e.MediCalMe, Household: e.MediCalHousehold},
		IHSS:      model.Enrollment{Me: e.IHSSMe, Household: e.IHSSHousehold},
		CAPI:      model.Enrollment{Me: e.CAPIMe, Household: e.CAPIHousehold},
		LIHEAP:    model.Enrollment{Me: e.LIHEAPMe, Household: e.LIHEAPHousehold},
		WIC:       model.Enrollment{Me: e.WICMe, Household: e.WICHousehold},
		NSLP:      model.Enrollment{Me: e.NSLPMe, Household: e.NSLPHousehold},
		GA:        model.Enrollment{Me: e.GAMe, Household: e.GAHousehold},
		VAPension: model.Enrollment{Me: e.VAPensionMe, Household: e.VAPensionHousehold},
	}
}

// Number is a whole-number answer that arrives as a JSON number, a numeric
// string, an empty string or null. Text that does not parse is kept so the
// builder can report it.
type Number struct {
	Value   *int
	Invalid string
}

// Int returns a Number holding n.
func Int(n int) Number { return Number{Value: &n} }

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	if string(data) == "null" {
		return nil
	}
	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		n.Value = &v
		return nil
	}
	// "42.0" is still a whole number.
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) && math.Abs(f) < math.MaxInt32 {
		v := int(f)
		n.Value = &v
		return nil
	}
	n.Invalid = s
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(*n.Value)), nil
}

// Date is a calendar date in YYYY-MM-DD form. Empty strings and null leave
// it zero.
type Date struct {
	Time    time.Time
	Invalid string
}

// parseDate parses "YYYY-MM-DD" without layout parsing.
func parseDate(s string) (time.Time, bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return time.Time{}, false
	}
	for i, c := range []byte(s) {
		if i != 4 && i != 7 && (c < '0' || c > '9') {
			return time.Time{}, false
		}
	}
	y := int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
	m := time.Month(int(s[5]-'0')*10 + int(s[6]-'0'))
	d := int(s[8]-'0')*10 + int(s[9]-'0')
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	// time.Date normalises 2023-02-30 into March.
	if t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

func (d *Date) UnmarshalJSON(data []byte) error {
	*d = Date{}
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, ok := parseDate(s); ok {
		d.Time = t
		return nil
	}
	d.Invalid = s
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format(time.DateOnly) + `"`), nil
}
