// src/services/interfaces.go
package services

import (
	"errors"
	"time"

	"github.com/username/dividendgoal/src/calculator"
	"github.com/username/dividendgoal/src/models"
)

// Define common service errors
var (
	ErrStockNotFound         = errors.New("stock not found")
	ErrCatalogNotReady       = errors.New("stock catalog could not be loaded")
	ErrLifestyleItemNotFound = errors.New("lifestyle item not found")
)

const (
	DefaultCacheExpiration = 10 * time.Minute
	CacheCleanupInterval   = 20 * time.Minute

	// ComparisonMonthlyAmount is the monthly income stock comparisons are priced at.
	ComparisonMonthlyAmount = 1000.0
)

// StockService serves the static dividend stock catalog.
type StockService interface {
	GetAllStocks() []models.Stock
	// FindByTicker matches case-insensitively and returns ErrStockNotFound for unknown tickers.
	FindByTicker(ticker string) (models.Stock, error)
	AvailableTickers() []string
	LogMissingTicker(ticker string)
	MissingTickerSummary() []models.MissingTicker
}

// CalculatorService exposes the projection engine to the web layer. Results are
// memoized per input and must be treated as read-only by callers.
type CalculatorService interface {
	TaxRate() float64
	RequiredInvestment(monthlyAmount, yieldPercent float64, net bool) models.RequiredInvestmentResult
	Income(capital, yieldPercent float64) models.IncomeResult
	Drip(capital, yieldPercent float64) []calculator.DripProjection
	TimeMachine(monthlyTarget, yieldPercent, growthRate float64) []calculator.TimeMachineEntry
	DividendPlan(stock models.Stock, monthlyAmount float64) *models.DividendPlan
	IncomePlan(stock models.Stock, capital float64) *models.DividendPlan
	FreedomDate(req models.FreedomDateRequest) models.FreedomDateResponse
	LifestylePlan(item models.LifestyleItem, stock models.Stock) *models.LifestylePlan
	Compare(first, second models.Stock) models.StockComparison
}

// LifestyleService serves the catalog of everyday expenses.
type LifestyleService interface {
	GetAllItems() []models.LifestyleItem
	GetPopularItems() []models.LifestyleItem
	// FindBySlug matches case-insensitively and returns ErrLifestyleItemNotFound for unknown slugs.
	FindBySlug(slug string) (models.LifestyleItem, error)
}
