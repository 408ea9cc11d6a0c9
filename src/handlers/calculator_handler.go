package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/username/dividendgoal/src/calculator"
	"github.com/username/dividendgoal/src/logger"
	"github.com/username/dividendgoal/src/models"
	"github.com/username/dividendgoal/src/security/validation"
	"github.com/username/dividendgoal/src/services"
	"github.com/username/dividendgoal/src/utils"
)

const maxRequestBodyBytes = 1 << 14

type CalculatorHandler struct {
	calculatorService services.CalculatorService
}

func NewCalculatorHandler(service services.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{calculatorService: service}
}

// HandleFreedomDate answers POST /api/calculator/freedom-date. Missing fields default to 0.
func (h *CalculatorHandler) HandleFreedomDate(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())

	var req models.FreedomDateRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		ctxLogger.Warn("Invalid freedom-date payload", "error", err)
		utils.SendJSONError(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if err := errors.Join(
		validation.ValidateAmount(req.TargetIncome, "targetIncome"),
		validation.ValidatePercent(req.Yield, "yield"),
		validation.ValidateAmount(req.MonthlyContribution, "monthlyContribution"),
	); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctxLogger.Info("Handling FreedomDate", "targetIncome", req.TargetIncome, "yield", req.Yield, "monthlyContribution", req.MonthlyContribution)
	utils.SendJSON(w, h.calculatorService.FreedomDate(req))
}

// HandleRequiredInvestment answers GET /api/calculator/required-investment?monthly=&yield=&net=.
func (h *CalculatorHandler) HandleRequiredInvestment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	monthly, err := validation.ValidateFloatString(q.Get("monthly"), "monthly", false, 0, validation.MaxAmount)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	yield, err := validation.ValidateFloatString(q.Get("yield"), "yield", true, -validation.MaxYieldPercent, validation.MaxYieldPercent)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	net := q.Get("net") == "true" || q.Get("net") == "1"

	utils.SendJSON(w, h.calculatorService.RequiredInvestment(monthly, yield, net))
}

// HandleMonthlyIncome answers GET /api/calculator/monthly-income?capital=&yield=.
func (h *CalculatorHandler) HandleMonthlyIncome(w http.ResponseWriter, r *http.Request) {
	capital, yield, ok := parseCapitalAndYield(w, r)
	if !ok {
		return
	}
	utils.SendJSON(w, h.calculatorService.Income(capital, yield))
}

// HandleDrip answers GET /api/calculator/drip?capital=&yield=.
func (h *CalculatorHandler) HandleDrip(w http.ResponseWriter, r *http.Request) {
	capital, yield, ok := parseCapitalAndYield(w, r)
	if !ok {
		return
	}
	utils.SendJSON(w, h.calculatorService.Drip(capital, yield))
}

// HandleTimeMachine answers GET /api/calculator/time-machine?monthly=&yield=&growth=.
func (h *CalculatorHandler) HandleTimeMachine(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	monthly, err := validation.ValidateFloatString(q.Get("monthly"), "monthly", false, 0, validation.MaxAmount)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	yield, err := validation.ValidateFloatString(q.Get("yield"), "yield", true, -validation.MaxYieldPercent, validation.MaxYieldPercent)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	growth, err := validation.ValidateFloatString(q.Get("growth"), "growth", false, 0, validation.MaxYieldPercent)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries := h.calculatorService.TimeMachine(monthly, yield, growth)
	if entries == nil {
		entries = []calculator.TimeMachineEntry{}
	}
	utils.SendJSON(w, entries)
}

func parseCapitalAndYield(w http.ResponseWriter, r *http.Request) (capital, yield float64, ok bool) {
	q := r.URL.Query()
	var err error
	capital, err = validation.ValidateFloatString(q.Get("capital"), "capital", false, 0, validation.MaxAmount)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return 0, 0, false
	}
	yield, err = validation.ValidateFloatString(q.Get("yield"), "yield", true, -validation.MaxYieldPercent, validation.MaxYieldPercent)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return 0, 0, false
	}
	return capital, yield, true
}
