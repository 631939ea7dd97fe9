package usecase

import (
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	msgRequired       = "This field is required."
	msgBlank          = "This field may not be blank."
	msgNegativePrice  = "Price cannot be negative."
	msgNoProducts     = "Order must contain at least one product."
	msgDateFormat     = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	msgInvalidDate    = "Enter a valid date."
	dateLayout        = "2006-01-02"
	listSeparatorsSet = " \t\r\n,"
)

// 文字列フィールド（前後の空白は落とす）
func validateText(fe FieldErrors, field string, v *string, maxLen int, partial bool) string {
	if v == nil {
		if !partial {
			fe.Add(field, msgRequired)
		}
		return ""
	}

	s := strings.TrimSpace(*v)
	if s == "" {
		fe.Add(field, msgBlank)
		return ""
	}
	if utf8.RuneCountInString(s) > maxLen {
		fe.Add(field, fmt.Sprintf("Ensure this field has no more than %d characters.", maxLen))
	}
	return s
}

// 桁数チェック（全体maxDigits桁・小数places桁）
func validateDecimal(fe FieldErrors, field string, v decimal.Decimal, maxDigits int, places int) bool {
	digits := len(new(big.Int).Abs(v.Coefficient()).String())
	exp := int(v.Exponent())

	var total, decimals int
	switch {
	case exp >= 0:
		total = digits + exp
	case digits > -exp:
		total = digits
		decimals = -exp
	default:
		total = -exp
		decimals = -exp
	}
	whole := total - decimals

	switch {
	case total > maxDigits:
		fe.Add(field, fmt.Sprintf("Ensure that there are no more than %d digits in total.", maxDigits))
	case decimals > places:
		fe.Add(field, fmt.Sprintf("Ensure that there are no more than %d decimal places.", places))
	case whole > maxDigits-places:
		fe.Add(field, fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", maxDigits-places))
	default:
		return true
	}
	return false
}

// YYYY-MM-DD をUTCの0時で
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.UTC)
}

// "a b,c" -> [a b c]
func splitTerms(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(listSeparatorsSet, r)
	})
}
