package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDollars(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{240000, "240,000"},
		{283687.943262, "283,687.94"},
		{1234.5, "1,234.5"},
		{0.999, "1"},
		{12.05, "12.05"},
		{0, "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDollars(tt.in), "%v", tt.in)
	}
}

func TestFormatMonthYear(t *testing.T) {
	assert.Equal(t, "MAY 2028", FormatMonthYear(time.Date(2028, time.May, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "JANUARY 2127", FormatMonthYear(time.Date(2127, time.January, 31, 0, 0, 0, 0, time.UTC)))
}

func TestSendJSONError(t *testing.T) {
	rec := httptest.NewRecorder()
	SendJSONError(rec, "Invalid amount", http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Invalid amount"}`, rec.Body.String())
}

func TestSendJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	SendJSON(rec, map[string]float64{"monthly_income": 1000})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"monthly_income":1000}`, rec.Body.String())
}
