package resolver

// MaxCount is the largest count a resolver accumulates.
const MaxCount = 999999999

// CountState tracks count prefix accumulation.
type CountState struct {
	// Value is the accumulated count value.
	Value int

	// Active indicates if a count is being accumulated.
	Active bool

	digits []rune
}

// Reset clears the count state.
func (c *CountState) Reset() {
	c.Value = 0
	c.Active = false
	c.digits = c.digits[:0]
}

// AccumulateDigit adds a digit to the count.
// Returns true if the digit was accepted.
// Only accepts ASCII digits 0-9.
func (c *CountState) AccumulateDigit(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}

	digit := int(r - '0')

	// '0' at the start is not a count, it's a motion
	if !c.Active && digit == 0 {
		return false
	}

	c.Active = true
	c.digits = append(c.digits, r)

	// Guard against integer overflow
	if c.Value > (MaxCount-digit)/10 {
		c.Value = MaxCount
		return true
	}

	c.Value = c.Value*10 + digit
	return true
}

// String returns the digits typed so far.
func (c *CountState) String() string {
	return string(c.digits)
}

// IsCountStart returns true if the character could start a count.
// Note: '0' cannot start a count (it's a motion to line start).
func IsCountStart(r rune) bool {
	return r >= '1' && r <= '9'
}
