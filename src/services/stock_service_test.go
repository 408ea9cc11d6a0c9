package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/dividendgoal/src/models"
)

const catalogJSON = `[
  {"ticker": "ko", "name": "The Coca-Cola Company", "yield": 3.1, "description": "<b>Beverages</b> &amp; more", "sector": "Consumer Staples", "growth_rate": 4.5},
  {"ticker": "O", "name": "Realty Income", "yield": 5.6, "description": "Monthly dividend REIT", "sector": "Real Estate"},
  {"ticker": " ", "name": "Blank", "yield": 1},
  {"ticker": "KO", "name": "Duplicate", "yield": 9},
  {"ticker": "NOYLD", "name": "No Yield Corp", "yield": -2}
]`

func newTestCatalog(t *testing.T) StockService {
	t.Helper()
	svc, err := NewStockServiceFromReader(strings.NewReader(catalogJSON))
	require.NoError(t, err)
	return svc
}

func TestStockService_Load(t *testing.T) {
	svc := newTestCatalog(t)

	assert.Equal(t, []string{"KO", "O", "NOYLD"}, svc.AvailableTickers())

	stocks := svc.GetAllStocks()
	require.Len(t, stocks, 3)
	assert.Equal(t, "Beverages & more", stocks[0].Description)
	assert.Equal(t, "The Coca-Cola Company", stocks[0].Name)
	assert.Equal(t, 4.5, stocks[0].GrowthRate)
	assert.Equal(t, 0.0, stocks[2].Yield)
	assert.False(t, stocks[2].HasYield())
}

func TestStockService_FindByTicker(t *testing.T) {
	svc := newTestCatalog(t)

	stock, err := svc.FindByTicker("  o ")
	require.NoError(t, err)
	assert.Equal(t, "Realty Income", stock.Name)

	_, err = svc.FindByTicker("MSFT")
	assert.ErrorIs(t, err, ErrStockNotFound)
}

func TestStockService_MissingTickers(t *testing.T) {
	svc := newTestCatalog(t)

	svc.LogMissingTicker("msft")
	svc.LogMissingTicker(" MSFT")
	svc.LogMissingTicker("aapl")
	svc.LogMissingTicker("  ")

	assert.Equal(t, []models.MissingTicker{
		{Ticker: "AAPL", Count: 1},
		{Ticker: "MSFT", Count: 2},
	}, svc.MissingTickerSummary())
}

func TestStockService_MalformedJSON(t *testing.T) {
	_, err := NewStockServiceFromReader(strings.NewReader(`{"ticker": "KO"}`))
	assert.ErrorIs(t, err, ErrCatalogNotReady)
}

func TestNewStockService_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stocks.json")
	require.NoError(t, os.WriteFile(path, []byte(catalogJSON), 0o600))

	svc := NewStockService(path)
	assert.Len(t, svc.GetAllStocks(), 3)
}

func TestNewStockService_MissingFileLeavesEmptyCatalog(t *testing.T) {
	svc := NewStockService(filepath.Join(t.TempDir(), "absent.json"))
	assert.Empty(t, svc.GetAllStocks())
	assert.Empty(t, svc.AvailableTickers())

	_, err := svc.FindByTicker("KO")
	assert.ErrorIs(t, err, ErrStockNotFound)
}
