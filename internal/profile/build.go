package profile

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rotisserie/eris"

	"benefits-engine/internal/model"
)

// Issue codes reported in a ValidationError.
const (
	CodeSchema         = "schema"
	CodeLengthMismatch = "length_mismatch"
	CodeInvalidNumber  = "invalid_number"
	CodeInvalidDate    = "invalid_date"
	CodeInvalidValue   = "invalid_value"
	CodeNegative       = "negative"
	CodeUnmatchedSSI   = "unmatched_ssi"
)

// Bounds on household answers.
const (
	MaxHouseholdSize  = 100
	MaxUnbornChildren = 20
)

// Issue is one contract violation in the submitted answers.
type Issue struct {
	Field   string `json:"field" yaml:"field"`
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// ValidationError lists every contract violation found in an input.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "profile: invalid input"
	}
	first := e.Issues[0]
	msg := fmt.Sprintf("profile: %s: %s", first.Field, first.Message)
	if n := len(e.Issues) - 1; n > 0 {
		msg += fmt.Sprintf(" (and %d more)", n)
	}
	return msg
}

// Decode validates data against the input schema and builds the profile.
// Contract violations are returned as a *ValidationError.
func Decode(data []byte) (*model.Profile, error) {
	issues, err := validateSchema(data)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, eris.Wrap(err, "profile: decode input")
	}
	return in.Build()
}

type builder struct {
	issues []Issue
}

func (b *builder) add(field, code, format string, args ...interface{}) {
	b.issues = append(b.issues, Issue{Field: field, Code: code, Message: fmt.Sprintf(format, args...)})
}

// age resolves an age answer, reporting unparseable or negative values.
func (b *builder) age(field string, n Number) *int {
	if n.Invalid != "" {
		b.add(field, CodeInvalidNumber, "%q is not a whole number", n.Invalid)
		return nil
	}
	if n.Value != nil && *n.Value < 0 {
		b.add(field, CodeNegative, "must not be negative")
		return nil
	}
	return n.Value
}

// flags checks a household flag list. A missing or empty list means every
// flag is false.
func (b *builder) flags(field string, values []bool, others int) []bool {
	if len(values) == 0 {
		return make([]bool, others)
	}
	if len(values) != others {
		b.add(field, CodeLengthMismatch, "has %d entries, household has %d other members", len(values), others)
		return make([]bool, others)
	}
	return values
}

// perMember checks a per-member amount list. An empty list, or a single
// empty entry, means nothing was entered.
func (b *builder) perMember(field string, values [][]float64, size int) [][]float64 {
	out := make([][]float64, size)
	if len(values) == 0 || (len(values) == 1 && len(values[0]) == 0) {
		return out
	}
	if len(values) != size {
		b.add(field, CodeLengthMismatch, "has %d entries, household has %d members", len(values), size)
		return out
	}
	for i, amounts := range values {
		for j, v := range amounts {
			if v < 0 {
				b.add(fmt.Sprintf("%s.%d.%d", field, i, j), CodeNegative, "must not be negative")
			}
		}
	}
	copy(out, values)
	return out
}

// Build converts the form-shaped input into a profile. Every contract
// violation is collected before returning.
func (in *Input) Build() (*model.Profile, error) {
	b := &builder{}

	size := in.HouseholdSize
	if size == 0 {
		size = 1 + len(in.HouseholdAges)
	}
	if size < 1 {
		b.add("householdSize", CodeInvalidValue, "must be at least 1")
		size = 1
	}
	if size > MaxHouseholdSize {
		b.add("householdSize", CodeInvalidValue, "must be at most %d", MaxHouseholdSize)
		return nil, &ValidationError{Issues: b.issues}
	}
	others := size - 1

	ages := make([]*int, others)
	switch {
	case len(in.HouseholdAges) == 0:
	case len(in.HouseholdAges) != others:
		b.add("householdAges", CodeLengthMismatch, "has %d entries, household has %d other members",
			len(in.HouseholdAges), others)
	default:
		for i, n := range in.HouseholdAges {
			ages[i] = b.age(fmt.Sprintf("householdAges.%d", i), n)
		}
	}
	disabled := b.flags("householdDisabled", in.HouseholdDisabled, others)
	pregnant := b.flags("householdPregnant", in.HouseholdPregnant, others)
	feeding := b.flags("householdFeeding", in.HouseholdFeeding, others)
	spouse := b.flags("householdSpouse", in.HouseholdSpouse, others)
	dependents := b.flags("householdDependents", in.HouseholdDependents, others)

	inc := in.Income
	wages := b.perMember("income.wages", inc.Wages, size)
	selfEmployed := b.perMember("income.selfEmployed", inc.SelfEmployed, size)
	disability := b.perMember("income.disability", inc.Disability, size)
	unemployment := b.perMember("income.unemployment", inc.Unemployment, size)
	retirement := b.perMember("income.retirement", inc.Retirement, size)
	veterans := b.perMember("income.veterans", inc.Veterans, size)
	workersComp := b.perMember("income.workersComp", inc.WorkersComp, size)
	childSupport := b.perMember("income.childSupport", inc.ChildSupport, size)
	other := b.perMember("income.other", inc.Other, size)
	assets := b.perMember("assets", in.Assets, size)

	members := make([]model.Member, size)
	members[0] = model.Member{
		Age:      b.age("age", in.Age),
		Disabled: in.Disabled,
		Pregnant: in.Pregnant,
		Feeding:  in.Feeding,
	}
	for i := 1; i < size; i++ {
		members[i] = model.Member{
			Age:       ages[i-1],
			Disabled:  disabled[i-1],
			Pregnant:  pregnant[i-1],
			Feeding:   feeding[i-1],
			Spouse:    spouse[i-1],
			Dependent: dependents[i-1],
		}
	}
	for i := range members {
		members[i].Income = model.Income{
			Wages:        wages[i],
			SelfEmployed: selfEmployed[i],
			Disability:   disability[i],
			Unemployment: unemployment[i],
			Retirement:   retirement[i],
			Veterans:     veterans[i],
			WorkersComp:  workersComp[i],
			ChildSupport: childSupport[i],
			Other:        other[i],
		}
		members[i].Assets = assets[i]
	}
	b.attachSSI(members, in.SSIIncome)

	unborn := 0
	if v := b.age("unbornChildren", in.UnbornChildren); v != nil {
		if *v > MaxUnbornChildren {
			b.add("unbornChildren", CodeInvalidValue, "must be at most %d", MaxUnbornChildren)
		} else {
			unborn = *v
		}
	}

	p := &model.Profile{
		Members:           members,
		Citizen:           !in.NotCitizen,
		ImmigrationStatus: model.ImmigrationStatus(in.ImmigrationStatus),
		Blind:             in.Blind,
		Deaf:              in.Deaf,
		Veteran:           in.Veteran,
		HeadOfHousehold:   in.HeadOfHousehold,
		UnbornChildren:    unborn,
		Housing:           model.HousingSituation(in.HousingSituation),
		PaysUtilities:     in.PaysUtilities,
		HasKitchen:        in.HasKitchen,
		HomelessRisk:      in.HomelessRisk,
		UsesGuideDog:      in.UsesGuideDog,
		Military: model.Military{
			Disabled:           in.MilitaryDisabled,
			Discharge:          model.DischargeStatus(in.DischargeStatus),
			ServedFullDuration: in.ServedFullDuration,
			Officer:            in.Officer,
			DutyPeriods:        b.dutyPeriods(in.DutyPeriods),
		},
		IncomeValid: inc.Valid,
		Existing:    in.ExistingAssistance.assistance(),
	}

	if !p.ImmigrationStatus.Valid() {
		b.add("immigrationStatus", CodeInvalidValue, "unknown immigration status %q", p.ImmigrationStatus)
	}
	if !p.Housing.Valid() {
		b.add("housingSituation", CodeInvalidValue, "unknown housing situation %q", p.Housing)
	}
	if !p.Military.Discharge.Valid() {
		b.add("dischargeStatus", CodeInvalidValue, "unknown discharge status %q", p.Military.Discharge)
	}

	if len(b.issues) > 0 {
		return nil, &ValidationError{Issues: b.issues}
	}
	return p, nil
}

func (b *builder) dutyPeriods(in []DutyPeriod) []model.DutyPeriod {
	if len(in) == 0 {
		return nil
	}
	out := make([]model.DutyPeriod, 0, len(in))
	for i, d := range in {
		field := fmt.Sprintf("dutyPeriods.%d", i)
		t := model.DutyType(strings.TrimSpace(d.Type))
		if !t.Valid() {
			b.add(field+".type", CodeInvalidValue, "unknown duty type %q", d.Type)
		}
		if d.Start.Invalid != "" {
			b.add(field+".start", CodeInvalidDate, "%q is not a YYYY-MM-DD date", d.Start.Invalid)
		}
		if d.End.Invalid != "" {
			b.add(field+".end", CodeInvalidDate, "%q is not a YYYY-MM-DD date", d.End.Invalid)
		}
		if !d.Start.Time.IsZero() && !d.End.Time.IsZero() && d.End.Time.Before(d.Start.Time) {
			b.add(field, CodeInvalidValue, "ends before it starts")
		}
		out = append(out, model.DutyPeriod{Type: t, Start: d.Start.Time, End: d.End.Time})
	}
	return out
}

// attachSSI marks each SSI/CAPI amount on the first member with an equal
// disability entry that no earlier amount has claimed.
func (b *builder) attachSSI(members []model.Member, amounts []float64) {
	claimed := make([][]bool, len(members))
	for i, m := range members {
		claimed[i] = make([]bool, len(m.Income.Disability))
	}
	for k, amount := range amounts {
		if !claim(members, claimed, amount) {
			b.add(fmt.Sprintf("ssiIncome.%d", k), CodeUnmatchedSSI,
				"%v does not match any member's disability income", amount)
		}
	}
}

func claim(members []model.Member, claimed [][]bool, amount float64) bool {
	for i := range members {
		for j, v := range members[i].Income.Disability {
			if v == amount && !claimed[i][j] {
				claimed[i][j] = true
				members[i].Income.SSI = append(members[i].Income.SSI, amount)
				return true
			}
		}
	}
	return false
}
