package calculator

import "time"

// MaxSimulationMonths bounds the freedom-date simulation at 100 years.
const MaxSimulationMonths = 100 * monthsPerYear

// FreedomResult is the outcome of a freedom-date simulation.
type FreedomResult struct {
	Date time.Time
	// Months is the number of simulated months between the start date and Date.
	Months int
	// Reached is false when the simulation stopped at MaxSimulationMonths or the
	// yield made the target unreachable.
	Reached bool
	// Capital and MonthlyIncome are the accumulated position when the loop stopped.
	Capital       float64
	MonthlyIncome float64
}

// FreedomDate runs FreedomDateFrom starting today.
func FreedomDate(targetMonthlyIncome, annualYield, monthlyContribution float64) FreedomResult {
	return FreedomDateFrom(time.Now(), targetMonthlyIncome, annualYield, monthlyContribution)
}

// FreedomDateFrom simulates monthly contributions with full dividend reinvestment at a
// constant yield until the monthly dividend reaches targetMonthlyIncome.
func FreedomDateFrom(start time.Time, targetMonthlyIncome, annualYield, monthlyContribution float64) FreedomResult {
	today := civilDate(start)
	if targetMonthlyIncome <= 0 {
		return FreedomResult{Date: today, Reached: true}
	}
	if annualYield <= 0 {
		return FreedomResult{Date: today}
	}
	if monthlyContribution < 0 {
		monthlyContribution = 0
	}

	monthlyRate := annualYield / 100 / monthsPerYear

	var (
		investedCapital      float64
		currentMonthlyIncome float64
		months               int
	)
	date := today
	for currentMonthlyIncome < targetMonthlyIncome && months < MaxSimulationMonths {
		investedCapital += monthlyContribution
		dividend := investedCapital * monthlyRate
		investedCapital += dividend
		currentMonthlyIncome = investedCapital * monthlyRate
		// Stepped one month at a time: once clamped (31 Jan -> 28 Feb) the day stays clamped.
		date = AddMonths(date, 1)
		months++
	}

	return FreedomResult{
		Date:          date,
		Months:        months,
		Reached:       currentMonthlyIncome >= targetMonthlyIncome,
		Capital:       investedCapital,
		MonthlyIncome: currentMonthlyIncome,
	}
}

// AddMonths moves t forward by n calendar months, clamping the day to the
// last day of the resulting month (31 Jan + 1 month is 28 or 29 Feb).
func AddMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, n, 0)
	day := t.Day()
	if last := daysIn(first.Year(), first.Month(), t.Location()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Elapsed splits the distance between two civil dates into whole years and
// remaining months. A month counts only once to's day of month reaches from's,
// so 31 Jan to 28 Feb is zero months.
func Elapsed(from, to time.Time) (years, months int) {
	total := (to.Year()-from.Year())*monthsPerYear + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		total--
	}
	if total < 0 {
		return 0, 0
	}
	return total / monthsPerYear, total % monthsPerYear
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
