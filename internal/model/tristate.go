package model

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Tristate is a yes/no value that may also be unknown. It is used both for
// unanswered questions in a profile and for eligibility verdicts.
// The zero value is Unknown.
type Tristate int8

const (
	Unknown Tristate = iota
	Yes
	No
)

// Bool converts a determined boolean into a Tristate.
func Bool(b bool) Tristate {
	if b {
		return Yes
	}
	return No
}

func (t Tristate) IsYes() bool     { return t == Yes }
func (t Tristate) IsNo() bool      { return t == No }
func (t Tristate) IsUnknown() bool { return t == Unknown }

func (t Tristate) Not() Tristate {
	switch t {
	case Yes:
		return No
	case No:
		return Yes
	}
	return Unknown
}

// And is Kleene conjunction: any No wins, then any Unknown.
func And(ts ...Tristate) Tristate {
	out := Yes
	for _, t := range ts {
		switch t {
		case No:
			return No
		case Unknown:
			out = Unknown
		}
	}
	return out
}

// Or is Kleene disjunction: any Yes wins, then any Unknown.
func Or(ts ...Tristate) Tristate {
	out := No
	for _, t := range ts {
		switch t {
		case Yes:
			return Yes
		case Unknown:
			out = Unknown
		}
	}
	return out
}

func (t Tristate) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	}
	return "unknown"
}

// Ptr returns the value as a *bool, nil when unknown.
func (t Tristate) Ptr() *bool {
	if t == Unknown {
		return nil
	}
	b := t == Yes
	return &b
}

// FromPtr is the inverse of Ptr.
func FromPtr(b *bool) Tristate {
	if b == nil {
		return Unknown
	}
	return Bool(*b)
}

func (t Tristate) MarshalJSON() ([]byte, error) {
	switch t {
	case Yes:
		return []byte("true"), nil
	case No:
		return []byte("false"), nil
	}
	return []byte("null"), nil
}

func (t *Tristate) UnmarshalJSON(data []byte) error {
	var b *bool
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("tristate: expected true, false or null, got %s", data)
	}
	*t = FromPtr(b)
	return nil
}

func (t Tristate) MarshalYAML() (interface{}, error) {
	return t.Ptr(), nil
}
