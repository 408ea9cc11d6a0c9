package models

import "github.com/username/dividendgoal/src/calculator"

// LifestyleItem is a recurring monthly expense a dividend stream could cover.
type LifestyleItem struct {
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`
	Category string  `json:"category"`
	Popular  bool    `json:"popular"`
}

// LifestylePlan answers "how much of this stock pays for this item?".
type LifestylePlan struct {
	Item               LifestyleItem `json:"item"`
	Stock              Stock         `json:"stock"`
	MonthlyCost        float64       `json:"monthly_cost"`
	RequiredInvestment float64       `json:"required_investment"`
	FormattedCapital   string        `json:"formatted_capital"`
	// DataAvailable is false when the stock has no yield; the projections are then omitted.
	DataAvailable    bool                          `json:"data_available"`
	LifestyleMeaning string                        `json:"lifestyle_meaning,omitempty"`
	DripProjections  []calculator.DripProjection   `json:"drip_projections,omitempty"`
	TimeMachine      []calculator.TimeMachineEntry `json:"time_machine,omitempty"`
}

// StockComparison puts two catalog stocks side by side. Winner fields hold the
// winning ticker and are empty on a tie.
type StockComparison struct {
	First        Stock  `json:"first"`
	Second       Stock  `json:"second"`
	YieldWinner  string `json:"yield_winner,omitempty"`
	GrowthWinner string `json:"growth_winner,omitempty"`
	// Capital each stock needs to pay the reference monthly amount.
	ReferenceMonthlyAmount float64 `json:"reference_monthly_amount"`
	FirstCapital           float64 `json:"first_capital"`
	SecondCapital          float64 `json:"second_capital"`
}
