package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/username/dividendgoal/src/logger"
	"github.com/username/dividendgoal/src/security/validation"
	"github.com/username/dividendgoal/src/services"
	"github.com/username/dividendgoal/src/utils"
)

const (
	lifestylePagePrefix = "cost-of-"
	lifestylePageSuffix = "-dividend"
)

type LifestyleHandler struct {
	lifestyleService  services.LifestyleService
	stockService      services.StockService
	calculatorService services.CalculatorService
}

func NewLifestyleHandler(lifestyleService services.LifestyleService, stockService services.StockService, calculatorService services.CalculatorService) *LifestyleHandler {
	return &LifestyleHandler{
		lifestyleService:  lifestyleService,
		stockService:      stockService,
		calculatorService: calculatorService,
	}
}

// HandleListItems returns the lifestyle catalog; ?popular=true keeps only popular items.
func (h *LifestyleHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	popular, _ := strconv.ParseBool(r.URL.Query().Get("popular"))
	if popular {
		utils.SendJSON(w, h.lifestyleService.GetPopularItems())
		return
	}
	utils.SendJSON(w, h.lifestyleService.GetAllItems())
}

// HandleLifestylePlan answers /lifestyle/cost-of-{item}-vs-{ticker}-dividend.
func (h *LifestyleHandler) HandleLifestylePlan(w http.ResponseWriter, r *http.Request) {
	rawSlug, rawTicker, ok := splitLifestylePage(chi.URLParam(r, "page"))
	if !ok {
		utils.SendJSONError(w, "Page must look like cost-of-{item}-vs-{ticker}-dividend", http.StatusBadRequest)
		return
	}

	slug, err := validation.NormalizeSlug(rawSlug)
	if err != nil {
		utils.SendJSONError(w, "Invalid item", http.StatusBadRequest)
		return
	}
	item, err := h.lifestyleService.FindBySlug(slug)
	if errors.Is(err, services.ErrLifestyleItemNotFound) {
		utils.SendJSONError(w, "Item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.FromContext(r.Context()).Error("Error looking up lifestyle item", "slug", slug, "error", err)
		utils.SendJSONError(w, "Error looking up item", http.StatusInternalServerError)
		return
	}

	stock, ok := findStock(w, r, h.stockService, rawTicker)
	if !ok {
		return
	}

	logger.FromContext(r.Context()).Info("Handling LifestylePlan", "item", item.Slug, "ticker", stock.Ticker)
	utils.SendJSON(w, h.calculatorService.LifestylePlan(item, stock))
}

// splitLifestylePage splits "cost-of-netflix-premium-vs-ko-dividend" into
// ("netflix-premium", "ko"). Slugs may contain hyphens, so the last "-vs-" wins.
func splitLifestylePage(page string) (slug, ticker string, ok bool) {
	inner, hasPrefix := strings.CutPrefix(page, lifestylePagePrefix)
	inner, hasSuffix := strings.CutSuffix(inner, lifestylePageSuffix)
	if !hasPrefix || !hasSuffix {
		return "", "", false
	}
	i := strings.LastIndex(inner, comparisonSeparator)
	if i <= 0 || i+len(comparisonSeparator) == len(inner) {
		return "", "", false
	}
	return inner[:i], inner[i+len(comparisonSeparator):], true
}
