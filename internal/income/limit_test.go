package income

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyLimitWithinTable(t *testing.T) {
	l := NewMonthlyLimit([]float64{1000, 2000, 3000}, PerPerson(1))

	assert.Equal(t, 1000.0, l.Limit(1))
	assert.Equal(t, 2000.0, l.Limit(2))
	assert.Equal(t, 3000.0, l.Limit(3))
	assert.Equal(t, 3, l.Len())
}

func TestMonthlyLimitExtrapolates(t *testing.T) {
	tests := []struct {
		name  string
		extra Extrapolation
		size  int
		want  float64
	}{
		{"constant one extra", PerPerson(1), 4, 3001},
		{"constant three extra", PerPerson(1), 6, 3003},
		{"function one extra", func(n int) float64 { return 2 * float64(n) }, 4, 3002},
		{"function three extra", func(n int) float64 { return 2 * float64(n) }, 6, 3006},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewMonthlyLimit([]float64{1000, 2000, 3000}, tt.extra)
			assert.Equal(t, tt.want, l.Limit(tt.size))
		})
	}
}

func TestFromAnnual(t *testing.T) {
	annual := []float64{12000, 24000, 36000}

	l := FromAnnual(annual, PerPerson(12))
	assert.Equal(t, 1000.0, l.Limit(1))
	assert.Equal(t, 3000.0, l.Limit(3))
	assert.Equal(t, 3001.0, l.Limit(4))
	assert.Equal(t, 3003.0, l.Limit(6))

	fn := FromAnnual(annual, func(n int) float64 { return 12 * 2 * float64(n) })
	assert.Equal(t, 3002.0, fn.Limit(4))
	assert.Equal(t, 3006.0, fn.Limit(6))
}

func TestFromAnnualDividesOnce(t *testing.T) {
	l := FromAnnual([]float64{58975}, PerPerson(1025))
	assert.Equal(t, 60000.0/12, l.Limit(2))
	assert.Equal(t, 58975.0/12, l.Limit(1))
}

func TestMonthlyLimitSmallSizes(t *testing.T) {
	l := NewMonthlyLimit([]float64{500, 900}, nil)
	assert.Equal(t, 500.0, l.Limit(0))
	assert.Equal(t, 900.0, l.Limit(5))
}

func TestScaledRejectsBadTables(t *testing.T) {
	assert.Panics(t, func() { NewMonthlyLimit(nil, nil) })
	assert.Panics(t, func() { Scaled([]float64{1}, 0, nil) })
}

func TestMonthlyLimitCopiesValues(t *testing.T) {
	values := []float64{100, 200}
	l := NewMonthlyLimit(values, nil)
	values[0] = math.MaxFloat64
	assert.Equal(t, 100.0, l.Limit(1))
}
