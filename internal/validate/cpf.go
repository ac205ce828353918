package validate

import (
	"regexp"
	"strings"
)

// CPFPattern matches the masked display form 000.000.000-00.
var CPFPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

var nonDigits = regexp.MustCompile(`\D`)

// FormatCPF masks a raw digit string into 000.000.000-00, truncating
// anything past eleven digits. Partial input is masked as far as it goes.
func FormatCPF(value string) string {
	digits := nonDigits.ReplaceAllString(value, "")
	if len(digits) > 11 {
		digits = digits[:11]
	}
	var b strings.Builder
	for i, d := range digits {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteRune(d)
	}
	return b.String()
}

// ValidCPF checks the CPF check digits. It accepts masked or raw input.
func ValidCPF(cpf string) bool {
	digits := nonDigits.ReplaceAllString(cpf, "")
	if len(digits) != 11 {
		return false
	}

	// sequences like 111.111.111-11 pass the digit math but are invalid
	allSame := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	if int(digits[9]-'0') != checkDigit(digits[:9], 10) {
		return false
	}
	return int(digits[10]-'0') == checkDigit(digits[:10], 11)
}

func checkDigit(digits string, weight int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (weight - i)
	}
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}
