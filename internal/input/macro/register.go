package macro

import "unicode"

// Register ranges.
const (
	MinLetterRegister = 'a'
	MaxLetterRegister = 'z'
	MinDigitRegister  = '0'
	MaxDigitRegister  = '9'
)

// IsValidRegister reports whether r names a register (a-z, 0-9).
func IsValidRegister(r rune) bool {
	return (r >= MinLetterRegister && r <= MaxLetterRegister) ||
		(r >= MinDigitRegister && r <= MaxDigitRegister)
}

// IsAppendRegister reports whether r is an upper-case letter, which records
// onto the end of its lower-case register.
func IsAppendRegister(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// NormalizeRegister returns the register r refers to, or 0 when r names
// none.
func NormalizeRegister(r rune) rune {
	if IsAppendRegister(r) {
		return unicode.ToLower(r)
	}
	if IsValidRegister(r) {
		return r
	}
	return 0
}
