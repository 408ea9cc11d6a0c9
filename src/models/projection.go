package models

import "github.com/username/dividendgoal/src/calculator"

// CalculationMode tells the renderer which question a plan answers.
type CalculationMode string

const (
	ModeTarget CalculationMode = "TARGET" // capital needed for a monthly amount
	ModeIncome CalculationMode = "INCOME" // income produced by a capital
)

// DividendPlan is the full calculator output for one stock.
type DividendPlan struct {
	Mode                     CalculationMode               `json:"calculation_mode"`
	Stock                    Stock                         `json:"stock"`
	MonthlyAmount            float64                       `json:"monthly_amount"`
	AnnualAmount             float64                       `json:"annual_amount"`
	Capital                  float64                       `json:"capital"`
	FormattedCapital         string                        `json:"formatted_capital"`
	RequiredInvestmentForNet float64                       `json:"required_investment_for_net,omitempty"`
	NetMonthlyIncome         float64                       `json:"net_monthly_income"`
	TaxRate                  float64                       `json:"tax_rate"`
	HasYieldData             bool                          `json:"has_yield_data"`
	DripProjections          []calculator.DripProjection   `json:"drip_projections"`
	TimeMachine              []calculator.TimeMachineEntry `json:"time_machine,omitempty"`
	LifestyleMeaning         string                        `json:"lifestyle_meaning"`
}

// RequiredInvestmentResult answers "how much capital for this monthly amount?".
type RequiredInvestmentResult struct {
	MonthlyAmount      float64 `json:"monthly_amount"`
	Yield              float64 `json:"yield"`
	Net                bool    `json:"net"`
	TaxRate            float64 `json:"tax_rate"`
	RequiredInvestment float64 `json:"required_investment"`
	FormattedCapital   string  `json:"formatted_capital"`
}

// IncomeResult answers "how much income does this capital produce?".
type IncomeResult struct {
	Capital          float64 `json:"capital"`
	Yield            float64 `json:"yield"`
	MonthlyIncome    float64 `json:"monthly_income"`
	AnnualIncome     float64 `json:"annual_income"`
	NetMonthlyIncome float64 `json:"net_monthly_income"`
}

// FreedomDateRequest is the JSON body of the freedom-date calculator.
type FreedomDateRequest struct {
	TargetIncome        float64 `json:"targetIncome"`
	Yield               float64 `json:"yield"`
	MonthlyContribution float64 `json:"monthlyContribution"`
}

// FreedomDateResponse reports when the target income is reached.
type FreedomDateResponse struct {
	// FreedomDate is formatted YYYY-MM-DD.
	FreedomDate   string  `json:"freedomDate"`
	Years         int     `json:"years"`
	Months        int     `json:"months"`
	TotalMonths   int     `json:"totalMonths"`
	Reached       bool    `json:"reached"`
	FormattedDate string  `json:"formattedDate"`
	FinalCapital  float64 `json:"finalCapital"`
	MonthlyIncome float64 `json:"monthlyIncome"`
}
