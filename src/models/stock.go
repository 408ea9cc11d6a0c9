package models

// Stock is one entry of the static dividend stock catalog (stocks.json).
type Stock struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
	// Yield is the trailing dividend yield in percent.
	Yield       float64 `json:"yield"`
	Description string  `json:"description"`
	Sector      string  `json:"sector"`
	// GrowthRate is the annual dividend growth in percent; 0 when unknown.
	GrowthRate float64 `json:"growth_rate,omitempty"`
}

// HasYield reports whether the stock carries usable yield data.
func (s Stock) HasYield() bool {
	return s.Yield > 0
}

// MissingTicker is how often an unknown ticker was requested.
type MissingTicker struct {
	Ticker string `json:"ticker"`
	Count  int    `json:"count"`
}
