package calculator

import "math"

// CheckpointYears are the horizons shown in the DRIP and time-machine tables.
var CheckpointYears = []int{1, 3, 5, 10}

// DripProjection is the state of a fully reinvested position at one checkpoint.
type DripProjection struct {
	Year                   int     `json:"year"`
	EstimatedCapital       float64 `json:"estimated_capital"`
	EstimatedMonthlyIncome float64 `json:"estimated_monthly_income"`
}

// SimulateDrip compounds startingCapital annually at a fixed yield, reinvesting every
// dividend, and reports capital and monthly income at each of CheckpointYears.
func SimulateDrip(startingCapital, yieldPercent float64) []DripProjection {
	if startingCapital < 0 {
		startingCapital = 0
	}
	annualRate := 0.0
	if yieldPercent > 0 {
		annualRate = yieldPercent / 100
	}

	projections := make([]DripProjection, 0, len(CheckpointYears))
	for _, year := range CheckpointYears {
		capital := startingCapital * math.Pow(1+annualRate, float64(year))
		projections = append(projections, DripProjection{
			Year:                   year,
			EstimatedCapital:       capital,
			EstimatedMonthlyIncome: capital * annualRate / monthsPerYear,
		})
	}
	return projections
}

// TimeMachineEntry is HypotheticalCapital evaluated at one checkpoint.
type TimeMachineEntry struct {
	Year            int     `json:"year"`
	FutureYield     float64 `json:"future_yield"`
	RequiredCapital float64 `json:"required_capital"`
	// Savings is how much less capital is needed than buying the target income today.
	Savings float64 `json:"savings"`
}

// TimeMachine evaluates HypotheticalCapital at each of CheckpointYears.
// Returns nil when currentYield is not positive.
func TimeMachine(monthlyTarget, currentYield, growthRate float64) []TimeMachineEntry {
	if currentYield <= 0 {
		return nil
	}
	today := RequiredInvestment(monthlyTarget, currentYield)

	entries := make([]TimeMachineEntry, 0, len(CheckpointYears))
	for _, year := range CheckpointYears {
		capital := HypotheticalCapital(monthlyTarget, currentYield, growthRate, year)
		entries = append(entries, TimeMachineEntry{
			Year:            year,
			FutureYield:     currentYield * math.Pow(1+growthRate/100, float64(year)),
			RequiredCapital: capital,
			Savings:         math.Max(today-capital, 0),
		})
	}
	return entries
}
