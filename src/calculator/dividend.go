// src/calculator/dividend.go
package calculator

import "math"

// DefaultTaxRate is the dividend income tax withheld at source (15.4%).
const DefaultTaxRate = 0.154

const monthsPerYear = 12

// RequiredInvestment returns the capital needed to receive monthlyAmount per month
// at the given annual yield (in percent). A non-positive yield means there is no
// usable yield data and the result is 0.
func RequiredInvestment(monthlyAmount, yieldPercent float64) float64 {
	if yieldPercent <= 0 || monthlyAmount <= 0 {
		return 0
	}
	annualAmount := monthlyAmount * monthsPerYear
	return annualAmount / (yieldPercent / 100)
}

// RequiredInvestmentForNetIncome grosses up a post-tax monthly target using
// DefaultTaxRate before capitalizing it.
func RequiredInvestmentForNetIncome(netMonthlyAmount, yieldPercent float64) float64 {
	return RequiredInvestmentForNetIncomeAt(netMonthlyAmount, yieldPercent, DefaultTaxRate)
}

// RequiredInvestmentForNetIncomeAt is RequiredInvestmentForNetIncome with an explicit tax rate
// expressed as a fraction (0.154 for 15.4%).
func RequiredInvestmentForNetIncomeAt(netMonthlyAmount, yieldPercent, taxRate float64) float64 {
	if yieldPercent <= 0 {
		return 0
	}
	netFraction := 1 - taxRate
	if netFraction <= 0 {
		return 0
	}
	grossMonthlyAmount := netMonthlyAmount / netFraction
	return RequiredInvestment(grossMonthlyAmount, yieldPercent)
}

// MonthlyIncome returns the gross monthly dividend paid by capital at yieldPercent.
func MonthlyIncome(capital, yieldPercent float64) float64 {
	if yieldPercent <= 0 || capital <= 0 {
		return 0
	}
	return capital * (yieldPercent / 100) / monthsPerYear
}

// NetMonthlyIncome applies taxRate to MonthlyIncome.
func NetMonthlyIncome(capital, yieldPercent, taxRate float64) float64 {
	net := MonthlyIncome(capital, yieldPercent) * (1 - taxRate)
	if net < 0 {
		return 0
	}
	return net
}

// HypotheticalCapital answers: if dividends grow growthRate percent a year, how much
// capital bought today pays monthlyTarget after the given number of years?
// The capital basis stays fixed while the yield on cost compounds.
func HypotheticalCapital(monthlyTarget, currentYield, growthRate float64, years int) float64 {
	if currentYield <= 0 {
		return 0
	}
	if years < 0 {
		years = 0
	}
	futureYield := currentYield * math.Pow(1+growthRate/100, float64(years))
	return RequiredInvestment(monthlyTarget, futureYield)
}
