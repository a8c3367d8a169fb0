package income

// Extrapolation returns the total increment to add to the last tabulated
// limit for a household extra people larger than the table covers.
type Extrapolation func(extra int) float64

// PerPerson adds a fixed amount for every person beyond the table.
func PerPerson(amount float64) Extrapolation {
	return func(extra int) float64 { return amount * float64(extra) }
}

// MonthsPerYear divides annual tables into monthly limits.
const MonthsPerYear = 12

// MonthlyLimit is an income limit table indexed by household size.
// Values and the extrapolation are kept in the period they were published
// in and divided by divisor on lookup, so annual figures are never rounded
// before being extended.
type MonthlyLimit struct {
	values  []float64
	divisor float64
	extra   Extrapolation
}

// NewMonthlyLimit builds a table from monthly limits for household sizes
// 1..len(monthly).
func NewMonthlyLimit(monthly []float64, extra Extrapolation) MonthlyLimit {
	return Scaled(monthly, 1, extra)
}

// FromAnnual builds a monthly table from annual limits. extra is stated in
// annual terms.
func FromAnnual(annual []float64, extra Extrapolation) MonthlyLimit {
	return Scaled(annual, MonthsPerYear, extra)
}

// Scaled builds a table whose values and extrapolation are divided by
// divisor on lookup.
func Scaled(values []float64, divisor float64, extra Extrapolation) MonthlyLimit {
	if len(values) == 0 {
		panic("income: limit table needs at least one value")
	}
	if divisor <= 0 {
		panic("income: limit divisor must be positive")
	}
	if extra == nil {
		extra = PerPerson(0)
	}
	v := make([]float64, len(values))
	copy(v, values)
	return MonthlyLimit{values: v, divisor: divisor, extra: extra}
}

// Limit returns the monthly limit for a household of size people.
// Sizes below 1 are treated as 1.
func (l MonthlyLimit) Limit(size int) float64 {
	if size < 1 {
		size = 1
	}
	if size <= len(l.values) {
		return l.values[size-1] / l.divisor
	}
	last := l.values[len(l.values)-1]
	return (last + l.extra(size-len(l.values))) / l.divisor
}

// Len is the number of tabulated household sizes.
func (l MonthlyLimit) Len() int { return len(l.values) }
