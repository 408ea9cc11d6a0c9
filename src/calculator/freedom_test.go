package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var simStart = time.Date(2026, time.March, 15, 9, 30, 0, 0, time.UTC)

func TestFreedomDate_Basic(t *testing.T) {
	// $100/mo at 12% needs $10,000; saving $1,000/mo with 1% monthly reinvestment
	// gets there in the tenth month.
	result := FreedomDateFrom(simStart, 100, 12, 1000)

	assert.True(t, result.Reached)
	assert.Equal(t, 10, result.Months)
	assert.Equal(t, time.Date(2027, time.January, 15, 0, 0, 0, 0, time.UTC), result.Date)
	assert.GreaterOrEqual(t, result.MonthlyIncome, 100.0)
	assert.InDelta(t, MonthlyIncome(result.Capital, 12), result.MonthlyIncome, 1e-9)

	years, months := Elapsed(civilDate(simStart), result.Date)
	assert.Equal(t, 0, years)
	assert.True(t, months >= 9 && months <= 10)
}

func TestFreedomDate_UsesToday(t *testing.T) {
	before := civilDate(time.Now())
	result := FreedomDate(100, 12, 1000)
	after := civilDate(time.Now())

	assert.Equal(t, 10, result.Months)
	assert.Contains(t, []time.Time{
		FreedomDateFrom(before, 100, 12, 1000).Date,
		FreedomDateFrom(after, 100, 12, 1000).Date,
	}, result.Date)
}

func TestFreedomDate_MonthEndStaysClamped(t *testing.T) {
	start := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)

	result := FreedomDateFrom(start, 20, 12, 1000)

	assert.True(t, result.Reached)
	assert.Equal(t, 2, result.Months)
	// Jan 31 -> Feb 28 -> Mar 28, not Mar 31.
	assert.Equal(t, time.Date(2026, time.March, 28, 0, 0, 0, 0, time.UTC), result.Date)

	years, months := Elapsed(start, result.Date)
	assert.Equal(t, [2]int{0, 1}, [2]int{years, months})
}

func TestFreedomDate_LeapYearClamp(t *testing.T) {
	start := time.Date(2028, time.January, 30, 0, 0, 0, 0, time.UTC)

	// $10/mo at 12% needs $1,000, reached in the first month.
	result := FreedomDateFrom(start, 10, 12, 1000)

	assert.Equal(t, 1, result.Months)
	assert.Equal(t, time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC), result.Date)
}

func TestFreedomDate_Impossible(t *testing.T) {
	result := FreedomDateFrom(simStart, 1_000_000, 5.0, 1.0)

	assert.False(t, result.Reached)
	assert.Equal(t, MaxSimulationMonths, result.Months)
	assert.Equal(t, time.Date(2126, time.March, 15, 0, 0, 0, 0, time.UTC), result.Date)

	years, _ := Elapsed(civilDate(simStart), result.Date)
	assert.GreaterOrEqual(t, years, 99)
}

func TestFreedomDate_ZeroContributionHitsCap(t *testing.T) {
	result := FreedomDateFrom(simStart, 50, 4, 0)
	assert.False(t, result.Reached)
	assert.Equal(t, MaxSimulationMonths, result.Months)
	assert.Equal(t, 0.0, result.Capital)

	negative := FreedomDateFrom(simStart, 50, 4, -200)
	assert.Equal(t, result, negative)
}

func TestFreedomDate_Degenerate(t *testing.T) {
	today := civilDate(simStart)

	tests := []struct {
		name        string
		target      float64
		yield       float64
		wantReached bool
	}{
		{"zero target", 0, 5, true},
		{"negative target", -10, 5, true},
		{"zero yield", 100, 0, false},
		{"negative yield", 100, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FreedomDateFrom(simStart, tt.target, tt.yield, 1000)
			assert.Equal(t, today, result.Date)
			assert.Equal(t, 0, result.Months)
			assert.Equal(t, tt.wantReached, result.Reached)
		})
	}
}

func TestFreedomDate_NeverExceedsCap(t *testing.T) {
	for _, target := range []float64{1, 1e3, 1e6, 1e12} {
		for _, y := range []float64{0.01, 1, 8} {
			result := FreedomDateFrom(simStart, target, y, 10)
			assert.LessOrEqual(t, result.Months, MaxSimulationMonths)
			assert.False(t, result.Date.After(AddMonths(civilDate(simStart), MaxSimulationMonths)))
		}
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		from time.Time
		n    int
		want time.Time
	}{
		{time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), 1, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)},
		{time.Date(2028, 1, 31, 0, 0, 0, 0, time.UTC), 1, time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC)},
		{time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), 2, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)},
		{time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC), 3, time.Date(2027, 2, 28, 0, 0, 0, 0, time.UTC)},
		{time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), 0, time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AddMonths(tt.from, tt.n), "from %s +%d", tt.from.Format(time.DateOnly), tt.n)
	}
}

func TestElapsed(t *testing.T) {
	from := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	years, months := Elapsed(from, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, [2]int{0, 0}, [2]int{years, months})

	years, months = Elapsed(from, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, [2]int{0, 2}, [2]int{years, months})

	years, months = Elapsed(from, time.Date(2028, 7, 30, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, [2]int{2, 5}, [2]int{years, months})

	years, months = Elapsed(from, from)
	assert.Equal(t, [2]int{0, 0}, [2]int{years, months})

	years, months = Elapsed(from, from.AddDate(0, 0, -3))
	assert.Equal(t, [2]int{0, 0}, [2]int{years, months})
}
