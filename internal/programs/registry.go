package programs

import "sort"

const (
	IDADSA           = "adsa"
	IDCalFresh       = "calfresh"
	IDCalWORKS       = "calworks"
	IDCAPI           = "capi"
	IDCARE           = "care"
	IDCFAP           = "cfap"
	IDFERA           = "fera"
	IDGA             = "ga"
	IDHousingChoice  = "housingChoice"
	IDIHSS           = "ihss"
	IDLifeline       = "lifeline"
	IDLIHEAP         = "liheap"
	IDMediCal        = "medical"
	IDNoFeeID        = "noFeeId"
	IDNSLP           = "nslp"
	IDReducedFeeID   = "reducedFeeId"
	IDSSDI           = "ssdi"
	IDSSI            = "ssi"
	IDUplift         = "uplift"
	IDVADisability   = "vaDisability"
	IDVAPension      = "vaPension"
	IDVTAParatransit = "vtaParatransit"
	IDWIC            = "wic"
)

var registry = map[string]Program{
	IDADSA:           {ID: IDADSA, Name: "Assistance Dog Special Allowance", Category: CategoryDisability, Evaluate: ADSA},
	IDCalFresh:       {ID: IDCalFresh, Name: "CalFresh", Category: CategoryNutrition, Evaluate: CalFresh},
	IDCalWORKS:       {ID: IDCalWORKS, Name: "CalWORKs", Category: CategoryCash, Evaluate: CalWORKS},
	IDCAPI:           {ID: IDCAPI, Name: "Cash Assistance Program for Immigrants", Category: CategoryCash, Evaluate: CAPI},
	IDCARE:           {ID: IDCARE, Name: "California Alternate Rates for Energy", Category: CategoryUtility, Evaluate: CARE},
	IDCFAP:           {ID: IDCFAP, Name: "California Food Assistance Program", Category: CategoryNutrition, Evaluate: CFAP},
	IDFERA:           {ID: IDFERA, Name: "Family Electric Rate Assistance", Category: CategoryUtility, Evaluate: FERA},
	IDGA:             {ID: IDGA, Name: "General Assistance", Category: CategoryCash, Evaluate: GA},
	IDHousingChoice:  {ID: IDHousingChoice, Name: "Housing Choice Voucher", Category: CategoryHousing, Evaluate: HousingChoice},
	IDIHSS:           {ID: IDIHSS, Name: "In-Home Supportive Services", Category: CategoryDisability, Evaluate: IHSS},
	IDLifeline:       {ID: IDLifeline, Name: "California LifeLine", Category: CategoryUtility, Evaluate: Lifeline},
	IDLIHEAP:         {ID: IDLIHEAP, Name: "Low Income Home Energy Assistance Program", Category: CategoryUtility, Evaluate: LIHEAP},
	IDMediCal:        {ID: IDMediCal, Name: "Medi-Cal", Category: CategoryHealth, Evaluate: MediCal},
	IDNoFeeID:        {ID: IDNoFeeID, Name: "No Fee ID Card", Category: CategoryIdentification, Evaluate: NoFeeID},
	IDNSLP:           {ID: IDNSLP, Name: "National School Lunch Program", Category: CategoryNutrition, Evaluate: NSLP},
	IDReducedFeeID:   {ID: IDReducedFeeID, Name: "Reduced Fee ID Card", Category: CategoryIdentification, Evaluate: ReducedFeeID},
	IDSSDI:           {ID: IDSSDI, Name: "Social Security Disability Insurance", Category: CategoryDisability, Evaluate: SSDI},
	IDSSI:            {ID: IDSSI, Name: "Supplemental Security Income", Category: CategoryCash, Evaluate: SSI},
	IDUplift:         {ID: IDUplift, Name: "VTA UPLIFT", Category: CategoryTransit, Evaluate: Uplift},
	IDVADisability:   {ID: IDVADisability, Name: "VA Disability Compensation", Category: CategoryVeterans, Evaluate: VADisability},
	IDVAPension:      {ID: IDVAPension, Name: "VA Pension", Category: CategoryVeterans, Evaluate: VAPension},
	IDVTAParatransit: {ID: IDVTAParatransit, Name: "VTA Paratransit", Category: CategoryTransit, Evaluate: VTAParatransit},
	IDWIC:            {ID: IDWIC, Name: "WIC", Category: CategoryNutrition, Evaluate: WIC},
}

var ids = func() []string {
	out := make([]string, 0, len(registry))
	for id := range registry {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}()

func Get(id string) (Program, bool) {
	p, ok := registry[id]
	return p, ok
}

// IDs returns every program ID in sorted order.
func IDs() []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// All returns every program, ordered by ID.
func All() []Program {
	out := make([]Program, 0, len(ids))
	for _, id := range ids {
		out = append(out, registry[id])
	}
	return out
}
