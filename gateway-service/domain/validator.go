package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// supportedCurrencies is the fixed set of currencies the gateway accepts
var supportedCurrencies = map[string]struct{}{
	"USD": {},
	"GBP": {},
	"EUR": {},
}

const supportedCurrencyList = "USD, GBP, EUR"

var (
	digitsOnlyPattern = regexp.MustCompile(`^[0-9]+$`)
	cvvPattern        = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// RequestValidator checks a payment request against the gateway's acceptance
// rules. Rules are evaluated in a fixed order and the first failure wins, so
// rejection reasons are reproducible for the same input.
type RequestValidator struct {
	now func() time.Time
}

// NewRequestValidator creates a validator using the system clock
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{now: time.Now}
}

// NewRequestValidatorWithClock creates a validator with an injected clock,
// used to pin "current month" in tests
func NewRequestValidatorWithClock(now func() time.Time) *RequestValidator {
	return &RequestValidator{now: now}
}

// Validate returns the first failing rule's rejection reason, or the empty
// string when the request passes every rule. It has no side effects.
func (v *RequestValidator) Validate(request *PaymentRequest) string {
	if request == nil {
		return "Payment request is required"
	}

	if reason := v.validateCardNumber(request.CardNumber); reason != "" {
		return reason
	}

	if reason := v.validateExpiryMonth(request.ExpiryMonth); reason != "" {
		return reason
	}

	if reason := v.validateExpiryDate(request.ExpiryMonth, request.ExpiryYear); reason != "" {
		return reason
	}

	if reason := v.validateCurrency(request.Currency); reason != "" {
		return reason
	}

	if reason := v.validateAmount(request.Amount); reason != "" {
		return reason
	}

	return v.validateCVV(request.CVV)
}

func (v *RequestValidator) validateCardNumber(cardNumber string) string {
	trimmed := strings.TrimSpace(cardNumber)
	if trimmed == "" {
		return "Card number is required but was empty"
	}

	length := len(trimmed)
	if length < 14 || length > 19 {
		return fmt.Sprintf("Card number length is invalid: %d characters (must be between 14-19 digits)", length)
	}

	if !digitsOnlyPattern.MatchString(trimmed) {
		// Only the last four digits ever appear in a reason
		return fmt.Sprintf("Card number format is invalid: ****%s (must contain only numeric digits)", trimmed[length-4:])
	}

	return ""
}

func (v *RequestValidator) validateExpiryMonth(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("Expiry month is invalid: %d (must be between 1-12)", month)
	}
	return ""
}

// validateExpiryDate requires the expiry to be strictly after the current
// month: an expiry of the current month/year is already unusable.
func (v *RequestValidator) validateExpiryDate(month, year int) string {
	now := v.now()
	currentYear := now.Year()
	currentMonth := int(now.Month())

	if year < currentYear {
		return fmt.Sprintf("Expiry year %d is in the past (current year: %d)", year, currentYear)
	}
	if year == currentYear && month <= currentMonth {
		return fmt.Sprintf("Expiry date is not in the future: %02d/%04d (current date: %02d/%04d)",
			month, year, currentMonth, currentYear)
	}
	return ""
}

func (v *RequestValidator) validateCurrency(currency string) string {
	if strings.TrimSpace(currency) == "" {
		return "Currency is required but was empty"
	}

	code := strings.ToUpper(strings.TrimSpace(currency))
	if len(code) != 3 {
		return fmt.Sprintf("Currency length is invalid: %d characters (must be exactly 3 characters)", len(code))
	}

	if _, ok := supportedCurrencies[code]; !ok {
		return fmt.Sprintf("Currency is not supported: %s (supported currencies are: %s)", code, supportedCurrencyList)
	}
	return ""
}

func (v *RequestValidator) validateAmount(amount int64) string {
	if amount <= 0 {
		return fmt.Sprintf("Amount is invalid: %d (must be a positive integer)", amount)
	}
	return ""
}

func (v *RequestValidator) validateCVV(cvv string) string {
	if cvv == "" {
		return "CVV is required but was empty"
	}

	if !cvvPattern.MatchString(strings.TrimSpace(cvv)) {
		return "CVV format is invalid (must contain 3-4 numeric digits)"
	}
	return ""
}
