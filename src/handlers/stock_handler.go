package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/username/dividendgoal/src/logger"
	"github.com/username/dividendgoal/src/models"
	"github.com/username/dividendgoal/src/security/validation"
	"github.com/username/dividendgoal/src/services"
	"github.com/username/dividendgoal/src/utils"
)

const comparisonSeparator = "-vs-"

type StockHandler struct {
	stockService      services.StockService
	calculatorService services.CalculatorService
}

func NewStockHandler(stockService services.StockService, calculatorService services.CalculatorService) *StockHandler {
	return &StockHandler{stockService: stockService, calculatorService: calculatorService}
}

func (h *StockHandler) HandleListStocks(w http.ResponseWriter, r *http.Request) {
	utils.SendJSON(w, h.stockService.GetAllStocks())
}

func (h *StockHandler) HandleGetMissingTickers(w http.ResponseWriter, r *http.Request) {
	utils.SendJSON(w, h.stockService.MissingTickerSummary())
}

// HandleDividendPlan answers /how-much-dividend/{amount}-per-month/{ticker}.
func (h *StockHandler) HandleDividendPlan(w http.ResponseWriter, r *http.Request) {
	monthlyAmount, err := validation.ParseAmountSegment(chi.URLParam(r, "amount"))
	if err != nil {
		utils.SendJSONError(w, "Invalid amount", http.StatusBadRequest)
		return
	}
	stock, ok := findStock(w, r, h.stockService, chi.URLParam(r, "ticker"))
	if !ok {
		return
	}

	logger.FromContext(r.Context()).Info("Handling DividendPlan", "ticker", stock.Ticker, "monthlyAmount", monthlyAmount)
	utils.SendJSON(w, h.calculatorService.DividendPlan(stock, monthlyAmount))
}

// HandleIncomePlan answers /how-much-income/{capital}/{ticker}.
func (h *StockHandler) HandleIncomePlan(w http.ResponseWriter, r *http.Request) {
	capital, err := validation.ParseAmountSegment(chi.URLParam(r, "capital"))
	if err != nil {
		utils.SendJSONError(w, "Invalid amount", http.StatusBadRequest)
		return
	}
	stock, ok := findStock(w, r, h.stockService, chi.URLParam(r, "ticker"))
	if !ok {
		return
	}

	logger.FromContext(r.Context()).Info("Handling IncomePlan", "ticker", stock.Ticker, "capital", capital)
	utils.SendJSON(w, h.calculatorService.IncomePlan(stock, capital))
}

// HandleCompare answers /compare/{first}-vs-{second}. Comparing a stock with
// itself redirects to its dividend plan.
func (h *StockHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	firstRaw, secondRaw, found := strings.Cut(chi.URLParam(r, "pair"), comparisonSeparator)
	if !found {
		utils.SendJSONError(w, "Comparison must look like {ticker}-vs-{ticker}", http.StatusBadRequest)
		return
	}
	first, ok := findStock(w, r, h.stockService, firstRaw)
	if !ok {
		return
	}
	second, ok := findStock(w, r, h.stockService, secondRaw)
	if !ok {
		return
	}

	if first.Ticker == second.Ticker {
		target := fmt.Sprintf("/api/how-much-dividend/%.0f-per-month/%s", services.ComparisonMonthlyAmount, url.PathEscape(first.Ticker))
		http.Redirect(w, r, target, http.StatusFound)
		return
	}

	logger.FromContext(r.Context()).Info("Handling Compare", "first", first.Ticker, "second", second.Ticker)
	utils.SendJSON(w, h.calculatorService.Compare(first, second))
}

// findStock resolves a raw ticker path segment, writing the error response when
// it is invalid or unknown. Unknown tickers are counted.
func findStock(w http.ResponseWriter, r *http.Request, stocks services.StockService, raw string) (models.Stock, bool) {
	ticker, err := validation.NormalizeTicker(raw)
	if err != nil {
		utils.SendJSONError(w, "Invalid ticker", http.StatusBadRequest)
		return models.Stock{}, false
	}

	stock, err := stocks.FindByTicker(ticker)
	if errors.Is(err, services.ErrStockNotFound) {
		stocks.LogMissingTicker(ticker)
		utils.SendJSONError(w, "Ticker not found", http.StatusNotFound)
		return models.Stock{}, false
	}
	if err != nil {
		logger.FromContext(r.Context()).Error("Error looking up ticker", "ticker", ticker, "error", err)
		utils.SendJSONError(w, "Error looking up ticker", http.StatusInternalServerError)
		return models.Stock{}, false
	}
	return stock, true
}
