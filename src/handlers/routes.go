package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the calculator, stock and lifestyle endpoints under /api.
func RegisterRoutes(r chi.Router, calc *CalculatorHandler, stocks *StockHandler, lifestyle *LifestyleHandler) {
	r.Route("/api", func(r chi.Router) {
		r.Route("/calculator", func(r chi.Router) {
			r.Post("/freedom-date", calc.HandleFreedomDate)
			r.Get("/required-investment", calc.HandleRequiredInvestment)
			r.Get("/monthly-income", calc.HandleMonthlyIncome)
			r.Get("/drip", calc.HandleDrip)
			r.Get("/time-machine", calc.HandleTimeMachine)
		})

		r.Get("/stocks", stocks.HandleListStocks)
		r.Get("/stocks/missing", stocks.HandleGetMissingTickers)
		r.Get("/how-much-dividend/{amount}-per-month/{ticker}", stocks.HandleDividendPlan)
		r.Get("/how-much-income/{capital}/{ticker}", stocks.HandleIncomePlan)
		r.Get("/compare/{pair}", stocks.HandleCompare)

		r.Get("/lifestyle", lifestyle.HandleListItems)
		r.Get("/lifestyle/{page}", lifestyle.HandleLifestylePlan)
	})
}
