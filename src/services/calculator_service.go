// src/services/calculator_service.go
package services

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/dividendgoal/src/calculator"
	"github.com/username/dividendgoal/src/logger"
	"github.com/username/dividendgoal/src/models"
	"github.com/username/dividendgoal/src/utils"
)

// CalculatorOptions configures NewCalculatorService. Zero values fall back to defaults.
type CalculatorOptions struct {
	// TaxRate is a fraction in [0, 1). Nil or out-of-range selects calculator.DefaultTaxRate;
	// 0 is a valid tax-free rate.
	TaxRate         *float64
	DefaultGrowth   float64
	CacheExpiration time.Duration
	CacheCleanup    time.Duration
	// Now overrides the clock used by the freedom-date simulation.
	Now func() time.Time
}

type calculatorServiceImpl struct {
	taxRate       float64
	defaultGrowth float64
	resultCache   *cache.Cache
	now           func() time.Time
}

// NewCalculatorService creates a CalculatorService backed by a memo cache.
func NewCalculatorService(opts CalculatorOptions) CalculatorService {
	taxRate := calculator.DefaultTaxRate
	if opts.TaxRate != nil && *opts.TaxRate >= 0 && *opts.TaxRate < 1 {
		taxRate = *opts.TaxRate
	}
	if opts.CacheExpiration <= 0 {
		opts.CacheExpiration = DefaultCacheExpiration
	}
	if opts.CacheCleanup <= 0 {
		opts.CacheCleanup = CacheCleanupInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &calculatorServiceImpl{
		taxRate:       taxRate,
		defaultGrowth: opts.DefaultGrowth,
		resultCache:   cache.New(opts.CacheExpiration, opts.CacheCleanup),
		now:           opts.Now,
	}
}

func (s *calculatorServiceImpl) TaxRate() float64 {
	return s.taxRate
}

// memo returns the cached value for key or computes and stores it.
func memo[T any](c *cache.Cache, key string, compute func() T) T {
	if v, found := c.Get(key); found {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	v := compute()
	c.Set(key, v, cache.DefaultExpiration)
	return v
}

func (s *calculatorServiceImpl) RequiredInvestment(monthlyAmount, yieldPercent float64, net bool) models.RequiredInvestmentResult {
	key := fmt.Sprintf("required-%g-%g-%t", monthlyAmount, yieldPercent, net)
	return memo(s.resultCache, key, func() models.RequiredInvestmentResult {
		capital := calculator.RequiredInvestment(monthlyAmount, yieldPercent)
		if net {
			capital = calculator.RequiredInvestmentForNetIncomeAt(monthlyAmount, yieldPercent, s.taxRate)
		}
		return models.RequiredInvestmentResult{
			MonthlyAmount:      monthlyAmount,
			Yield:              yieldPercent,
			Net:                net,
			TaxRate:            s.taxRate,
			RequiredInvestment: capital,
			FormattedCapital:   utils.FormatDollars(capital),
		}
	})
}

func (s *calculatorServiceImpl) Income(capital, yieldPercent float64) models.IncomeResult {
	key := fmt.Sprintf("income-%g-%g", capital, yieldPercent)
	return memo(s.resultCache, key, func() models.IncomeResult {
		monthly := calculator.MonthlyIncome(capital, yieldPercent)
		return models.IncomeResult{
			Capital:          capital,
			Yield:            yieldPercent,
			MonthlyIncome:    monthly,
			AnnualIncome:     monthly * 12,
			NetMonthlyIncome: calculator.NetMonthlyIncome(capital, yieldPercent, s.taxRate),
		}
	})
}

func (s *calculatorServiceImpl) Drip(capital, yieldPercent float64) []calculator.DripProjection {
	key := fmt.Sprintf("drip-%g-%g", capital, yieldPercent)
	return memo(s.resultCache, key, func() []calculator.DripProjection {
		return calculator.SimulateDrip(capital, yieldPercent)
	})
}

func (s *calculatorServiceImpl) TimeMachine(monthlyTarget, yieldPercent, growthRate float64) []calculator.TimeMachineEntry {
	key := fmt.Sprintf("timemachine-%g-%g-%g", monthlyTarget, yieldPercent, growthRate)
	return memo(s.resultCache, key, func() []calculator.TimeMachineEntry {
		return calculator.TimeMachine(monthlyTarget, yieldPercent, growthRate)
	})
}

func (s *calculatorServiceImpl) growthFor(stock models.Stock) float64 {
	if stock.GrowthRate > 0 {
		return stock.GrowthRate
	}
	return s.defaultGrowth
}

// DividendPlan answers how much capital in stock pays monthlyAmount.
func (s *calculatorServiceImpl) DividendPlan(stock models.Stock, monthlyAmount float64) *models.DividendPlan {
	required := s.RequiredInvestment(monthlyAmount, stock.Yield, false)
	net := s.RequiredInvestment(monthlyAmount, stock.Yield, true)
	income := s.Income(required.RequiredInvestment, stock.Yield)

	logger.L.Debug("Built dividend plan", "ticker", stock.Ticker, "monthlyAmount", monthlyAmount, "capital", required.RequiredInvestment)

	return &models.DividendPlan{
		Mode:                     models.ModeTarget,
		Stock:                    stock,
		MonthlyAmount:            monthlyAmount,
		AnnualAmount:             monthlyAmount * 12,
		Capital:                  required.RequiredInvestment,
		FormattedCapital:         required.FormattedCapital,
		RequiredInvestmentForNet: net.RequiredInvestment,
		NetMonthlyIncome:         income.NetMonthlyIncome,
		TaxRate:                  s.taxRate,
		HasYieldData:             stock.HasYield(),
		DripProjections:          s.Drip(required.RequiredInvestment, stock.Yield),
		TimeMachine:              s.TimeMachine(monthlyAmount, stock.Yield, s.growthFor(stock)),
		LifestyleMeaning:         DescribeLifestyle(monthlyAmount),
	}
}

// IncomePlan answers how much income capital in stock pays.
func (s *calculatorServiceImpl) IncomePlan(stock models.Stock, capital float64) *models.DividendPlan {
	income := s.Income(capital, stock.Yield)

	return &models.DividendPlan{
		Mode:             models.ModeIncome,
		Stock:            stock,
		MonthlyAmount:    income.MonthlyIncome,
		AnnualAmount:     income.AnnualIncome,
		Capital:          capital,
		FormattedCapital: utils.FormatDollars(capital),
		NetMonthlyIncome: income.NetMonthlyIncome,
		TaxRate:          s.taxRate,
		HasYieldData:     stock.HasYield(),
		DripProjections:  s.Drip(capital, stock.Yield),
		LifestyleMeaning: DescribeLifestyle(income.MonthlyIncome),
	}
}

// LifestylePlan prices item in stock. Projections are only attached when the
// stock has yield data, and the time machine only when it has a known growth rate.
func (s *calculatorServiceImpl) LifestylePlan(item models.LifestyleItem, stock models.Stock) *models.LifestylePlan {
	required := s.RequiredInvestment(item.Cost, stock.Yield, false)

	plan := &models.LifestylePlan{
		Item:               item,
		Stock:              stock,
		MonthlyCost:        item.Cost,
		RequiredInvestment: required.RequiredInvestment,
		FormattedCapital:   required.FormattedCapital,
		DataAvailable:      stock.HasYield(),
	}
	if !plan.DataAvailable {
		return plan
	}

	plan.LifestyleMeaning = DescribeLifestyle(item.Cost)
	plan.DripProjections = s.Drip(required.RequiredInvestment, stock.Yield)
	if stock.GrowthRate > 0 {
		plan.TimeMachine = s.TimeMachine(item.Cost, stock.Yield, stock.GrowthRate)
	}
	return plan
}

// Compare puts two stocks side by side and prices both at ComparisonMonthlyAmount.
func (s *calculatorServiceImpl) Compare(first, second models.Stock) models.StockComparison {
	return models.StockComparison{
		First:                  first,
		Second:                 second,
		YieldWinner:            winner(first, second, first.Yield, second.Yield),
		GrowthWinner:           winner(first, second, first.GrowthRate, second.GrowthRate),
		ReferenceMonthlyAmount: ComparisonMonthlyAmount,
		FirstCapital:           s.RequiredInvestment(ComparisonMonthlyAmount, first.Yield, false).RequiredInvestment,
		SecondCapital:          s.RequiredInvestment(ComparisonMonthlyAmount, second.Yield, false).RequiredInvestment,
	}
}

func winner(first, second models.Stock, a, b float64) string {
	switch {
	case a > b:
		return first.Ticker
	case b > a:
		return second.Ticker
	default:
		return ""
	}
}

// FreedomDate runs the freedom-date simulation from today. The cache key includes
// the date so cached answers roll over at midnight.
func (s *calculatorServiceImpl) FreedomDate(req models.FreedomDateRequest) models.FreedomDateResponse {
	now := s.now()
	key := fmt.Sprintf("freedom-%s-%g-%g-%g", now.Format(time.DateOnly), req.TargetIncome, req.Yield, req.MonthlyContribution)
	return memo(s.resultCache, key, func() models.FreedomDateResponse {
		result := calculator.FreedomDateFrom(now, req.TargetIncome, req.Yield, req.MonthlyContribution)
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		years, months := calculator.Elapsed(start, result.Date)

		if !result.Reached {
			logger.L.Info("Freedom date not reached within simulation cap",
				"targetIncome", req.TargetIncome, "yield", req.Yield, "months", result.Months)
		}

		return models.FreedomDateResponse{
			FreedomDate:   result.Date.Format(time.DateOnly),
			Years:         years,
			Months:        months,
			TotalMonths:   result.Months,
			Reached:       result.Reached,
			FormattedDate: utils.FormatMonthYear(result.Date),
			FinalCapital:  result.Capital,
			MonthlyIncome: result.MonthlyIncome,
		}
	})
}
