// src/security/validation/field_validator.go
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/username/dividendgoal/src/logger"
)

var ErrValidationFailed = fmt.Errorf("validation failed")

const (
	MaxTickerLength      = 12
	MaxSlugLength        = 64
	MaxStockNameLength   = 255
	MaxDescriptionLength = 2048

	// MaxAmount bounds every monetary input accepted from a request.
	MaxAmount = 1e12
	// MaxYieldPercent bounds yield and growth percentages.
	MaxYieldPercent = 1000
)

var (
	tickerRegex        = regexp.MustCompile(`^[A-Z0-9][A-Z0-9.\-]*$`)
	slugRegex          = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	amountSegmentRegex = regexp.MustCompile(`[^0-9.]`)
)

// --- String Validators ---

// ValidateStringNotEmpty checks if a string is not empty after trimming.
func ValidateStringNotEmpty(s, fieldName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s cannot be empty", ErrValidationFailed, fieldName)
	}
	return nil
}

// ValidateStringMaxLength checks if a string's UTF-8 character count is within max bounds.
func ValidateStringMaxLength(s string, maxLength int, fieldName string) error {
	if utf8.RuneCountInString(s) > maxLength {
		return fmt.Errorf("%w: %s exceeds maximum length of %d characters", ErrValidationFailed, fieldName, maxLength)
	}
	return nil
}

// NormalizeTicker trims and upper-cases a ticker and checks its format.
func NormalizeTicker(s string) (string, error) {
	ticker := strings.ToUpper(strings.TrimSpace(s))
	if err := ValidateStringNotEmpty(ticker, "ticker"); err != nil {
		return "", err
	}
	if err := ValidateStringMaxLength(ticker, MaxTickerLength, "ticker"); err != nil {
		return "", err
	}
	if !tickerRegex.MatchString(ticker) {
		return "", fmt.Errorf("%w: ticker ('%s') must contain only letters, digits, dots and hyphens", ErrValidationFailed, s)
	}
	return ticker, nil
}

// NormalizeSlug trims and lower-cases a URL slug such as "netflix-premium".
func NormalizeSlug(s string) (string, error) {
	slug := strings.ToLower(strings.TrimSpace(s))
	if err := ValidateStringNotEmpty(slug, "slug"); err != nil {
		return "", err
	}
	if err := ValidateStringMaxLength(slug, MaxSlugLength, "slug"); err != nil {
		return "", err
	}
	if !slugRegex.MatchString(slug) {
		return "", fmt.Errorf("%w: slug ('%s') must be lowercase words joined by hyphens", ErrValidationFailed, s)
	}
	return slug, nil
}

// --- Numeric Validators ---

// ParseAmountSegment reads an amount embedded in a URL path segment such as
// "1,000" or "$2500". Every character other than digits and '.' is dropped and
// the result must be positive.
func ParseAmountSegment(segment string) (float64, error) {
	cleaned := amountSegmentRegex.ReplaceAllString(segment, "")
	if cleaned == "" {
		return 0, fmt.Errorf("%w: amount ('%s') contains no digits", ErrValidationFailed, segment)
	}
	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount ('%s') is not a valid number: %v", ErrValidationFailed, segment, err)
	}
	if val <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", ErrValidationFailed)
	}
	if val > MaxAmount {
		return 0, fmt.Errorf("%w: amount exceeds %.0f", ErrValidationFailed, float64(MaxAmount))
	}
	return val, nil
}

// ValidateFloatString parses a string to float and checks if it's within a range.
// An empty string yields 0 without error; callers decide whether the field is required.
func ValidateFloatString(s, fieldName string, allowNegative bool, minVal, maxVal float64) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, nil
	}

	val, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, fmt.Errorf("%w: %s ('%s') is not a valid number", ErrValidationFailed, fieldName, s)
	}
	if !allowNegative && val < 0 {
		logger.L.Warn("Negative value not allowed for field", "field", fieldName, "value", val)
		return 0, fmt.Errorf("%w: %s cannot be negative", ErrValidationFailed, fieldName)
	}
	if val < minVal || val > maxVal {
		logger.L.Warn("Float value out of range", "field", fieldName, "value", val, "min", minVal, "max", maxVal)
		return 0, fmt.Errorf("%w: %s must be between %.2f and %.2f, got %.2f", ErrValidationFailed, fieldName, minVal, maxVal, val)
	}
	return val, nil
}

// ValidateAmount checks a decoded monetary value.
func ValidateAmount(val float64, fieldName string) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%w: %s is not a valid number", ErrValidationFailed, fieldName)
	}
	if val < 0 || val > MaxAmount {
		return fmt.Errorf("%w: %s must be between 0 and %.0f", ErrValidationFailed, fieldName, float64(MaxAmount))
	}
	return nil
}

// ValidatePercent checks a decoded yield or growth percentage.
func ValidatePercent(val float64, fieldName string) error {
	if math.IsNaN(val) || math.IsInf(val, 0) || val < -MaxYieldPercent || val > MaxYieldPercent {
		return fmt.Errorf("%w: %s must be between %d and %d", ErrValidationFailed, fieldName, -MaxYieldPercent, MaxYieldPercent)
	}
	return nil
}
