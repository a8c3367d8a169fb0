package profile

import (
	"github.com/rotisserie/eris"
	"github.com/xeipuuv/gojsonschema"
)

// inputSchema pins the shape of the screener form. Value checks that need
// the whole document (array lengths against householdSize, SSI matching)
// happen in Build.
const inputSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "definitions": {
    "flag": {"type": ["boolean", "null"]},
    "flags": {"type": ["array", "null"], "maxItems": 99, "items": {"type": "boolean"}},
    "number": {"type": ["integer", "string", "null"]},
    "date": {"type": ["string", "null"]},
    "amounts": {"type": ["array", "null"], "maxItems": 100, "items": {"type": "number", "minimum": 0}},
    "perMember": {"type": ["array", "null"], "maxItems": 100, "items": {"$ref": "#/definitions/amounts"}}
  },
  "properties": {
    "age": {"$ref": "#/definitions/number"},
    "notCitizen": {"$ref": "#/definitions/flag"},
    "immigrationStatus": {
      "enum": ["", null, "permanent_resident", "qualified_noncitizen_gt5y", "qualified_noncitizen_le5y",
               "prucol", "long_term", "live_temporarily", "none_describe"]
    },
    "disabled": {"$ref": "#/definitions/flag"},
    "blind": {"$ref": "#/definitions/flag"},
    "deaf": {"$ref": "#/definitions/flag"},
    "veteran": {"$ref": "#/definitions/flag"},
    "pregnant": {"$ref": "#/definitions/flag"},
    "feeding": {"$ref": "#/definitions/flag"},
    "headOfHousehold": {"$ref": "#/definitions/flag"},

    "householdAges": {"type": ["array", "null"], "maxItems": 99, "items": {"$ref": "#/definitions/number"}},
    "householdDisabled": {"$ref": "#/definitions/flags"},
    "householdPregnant": {"$ref": "#/definitions/flags"},
    "householdFeeding": {"$ref": "#/definitions/flags"},
    "householdSpouse": {"$ref": "#/definitions/flags"},
    "householdDependents": {"$ref": "#/definitions/flags"},
    "householdSize": {"type": "integer", "minimum": 1, "maximum": 100},
    "unbornChildren": {"type": ["integer", "string", "null"], "maximum": 20},

    "housingSituation": {
      "enum": ["", null, "housed", "vehicle", "transitional", "hotel", "shelter",
               "unlisted-stable-place", "no-stable-place"]
    },
    "paysUtilities": {"$ref": "#/definitions/flag"},
    "hasKitchen": {"$ref": "#/definitions/flag"},
    "homelessRisk": {"$ref": "#/definitions/flag"},

    "usesGuideDog": {"$ref": "#/definitions/flag"},
    "militaryDisabled": {"$ref": "#/definitions/flag"},
    "dischargeStatus": {
      "enum": ["", null, "honorable", "general", "oth", "bad-conduct", "dishonorable", "uncharacterized"]
    },
    "servedFullDuration": {"$ref": "#/definitions/flag"},
    "enlisted": {"$ref": "#/definitions/flag"},
    "officer": {"$ref": "#/definitions/flag"},
    "dutyPeriods": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["type"],
        "additionalProperties": false,
        "properties": {
          "type": {"enum": ["active-duty", "active-training", "inactive-training", "reserve-duty", "guard-duty"]},
          "start": {"$ref": "#/definitions/date"},
          "end": {"$ref": "#/definitions/date"}
        }
      }
    },

    "income": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "valid": {"$ref": "#/definitions/flag"},
        "wages": {"$ref": "#/definitions/perMember"},
        "selfEmployed": {"$ref": "#/definitions/perMember"},
        "disability": {"$ref": "#/definitions/perMember"},
        "unemployment": {"$ref": "#/definitions/perMember"},
        "retirement": {"$ref": "#/definitions/perMember"},
        "veterans": {"$ref": "#/definitions/perMember"},
        "workersComp": {"$ref": "#/definitions/perMember"},
        "childSupport": {"$ref": "#/definitions/perMember"},
        "other": {"$ref": "#/definitions/perMember"}
      }
    },
    "assets": {"$ref": "#/definitions/perMember"},
    "ssiIncome": {"$ref": "#/definitions/amounts"}
  },
  "patternProperties": {
    "^existing(Ssi|Ssdi|Calworks|Calfresh|Cfap|Medical|Ihss|Capi|Liheap|Wic|Nslp|Ga|VaPension)(Me|Household)$": {
      "$ref": "#/definitions/flag"
    }
  },
  "additionalProperties": false
}`

var compiledSchema *gojsonschema.Schema

func init() {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(inputSchema))
	if err != nil {
		panic(eris.Wrap(err, "profile: compile input schema"))
	}
	compiledSchema = s
}

// validateSchema returns one issue per schema violation.
func validateSchema(data []byte) ([]Issue, error) {
	result, err := compiledSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, eris.Wrap(err, "profile: read input")
	}
	if result.Valid() {
		return nil, nil
	}
	issues := make([]Issue, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, Issue{
			Field:   desc.Field(),
			Code:    CodeSchema,
			Message: desc.Description(),
		})
	}
	return issues, nil
}
