// src/services/stock_service.go
package services

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/username/dividendgoal/src/logger"
	"github.com/username/dividendgoal/src/models"
	"github.com/username/dividendgoal/src/security/validation"
)

type stockServiceImpl struct {
	stocks   []models.Stock
	byTicker map[string]int
	// missing counts lookups of unknown tickers; entries never expire.
	missing *cache.Cache
}

// NewStockService loads the catalog from path. A missing or malformed file is
// logged and leaves the catalog empty so the generic calculators keep working.
func NewStockService(path string) StockService {
	s := newEmptyStockService()
	f, err := os.Open(path)
	if err != nil {
		logger.L.Error("Failed to open stock catalog", "path", path, "error", err)
		return s
	}
	defer f.Close()

	if err := s.load(f); err != nil {
		logger.L.Error("Failed to load stock catalog", "path", path, "error", err)
		return s
	}
	logger.L.Info("Loaded stock catalog", "path", path, "stocks", len(s.stocks))
	return s
}

// NewStockServiceFromReader builds the catalog from JSON read from r.
func NewStockServiceFromReader(r io.Reader) (StockService, error) {
	s := newEmptyStockService()
	if err := s.load(r); err != nil {
		return nil, err
	}
	return s, nil
}

func newEmptyStockService() *stockServiceImpl {
	return &stockServiceImpl{
		stocks:   []models.Stock{},
		byTicker: map[string]int{},
		missing:  cache.New(cache.NoExpiration, 0),
	}
}

func (s *stockServiceImpl) load(r io.Reader) error {
	var raw []models.Stock
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrCatalogNotReady, err)
	}

	stocks := make([]models.Stock, 0, len(raw))
	byTicker := make(map[string]int, len(raw))
	for _, st := range raw {
		ticker, err := validation.NormalizeTicker(st.Ticker)
		if err != nil {
			logger.L.Warn("Skipping catalog entry with invalid ticker", "ticker", st.Ticker, "error", err)
			continue
		}
		if _, dup := byTicker[ticker]; dup {
			logger.L.Warn("Skipping duplicate catalog entry", "ticker", ticker)
			continue
		}
		st.Ticker = ticker
		st.Name = validation.CleanCatalogText(st.Name, validation.MaxStockNameLength)
		st.Description = validation.CleanCatalogText(st.Description, validation.MaxDescriptionLength)
		st.Sector = validation.CleanCatalogText(st.Sector, validation.MaxStockNameLength)
		if st.Yield < 0 {
			st.Yield = 0
		}

		byTicker[ticker] = len(stocks)
		stocks = append(stocks, st)
	}

	s.stocks = stocks
	s.byTicker = byTicker
	return nil
}

func (s *stockServiceImpl) GetAllStocks() []models.Stock {
	return s.stocks
}

func (s *stockServiceImpl) FindByTicker(ticker string) (models.Stock, error) {
	key := strings.ToUpper(strings.TrimSpace(ticker))
	if idx, ok := s.byTicker[key]; ok {
		return s.stocks[idx], nil
	}
	return models.Stock{}, fmt.Errorf("%w: %s", ErrStockNotFound, key)
}

func (s *stockServiceImpl) AvailableTickers() []string {
	tickers := make([]string, 0, len(s.stocks))
	for _, st := range s.stocks {
		tickers = append(tickers, st.Ticker)
	}
	return tickers
}

func (s *stockServiceImpl) LogMissingTicker(ticker string) {
	key := strings.ToUpper(strings.TrimSpace(ticker))
	if key == "" {
		return
	}
	if err := s.missing.Add(key, 1, cache.NoExpiration); err != nil {
		if _, err := s.missing.IncrementInt(key, 1); err != nil {
			logger.L.Error("Failed to count missing ticker", "ticker", key, "error", err)
			return
		}
	}
	logger.L.Warn("MISSING_TICKER_LOGGED", "ticker", key)
}

func (s *stockServiceImpl) MissingTickerSummary() []models.MissingTicker {
	items := s.missing.Items()
	summary := make([]models.MissingTicker, 0, len(items))
	for ticker, item := range items {
		count, _ := item.Object.(int)
		summary = append(summary, models.MissingTicker{Ticker: ticker, Count: count})
	}
	sort.Slice(summary, func(i, j int) bool { return summary[i].Ticker < summary[j].Ticker })
	return summary
}
