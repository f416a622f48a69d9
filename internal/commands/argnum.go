package commands

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidPosition indicates the argument is missing or is not a
// plain positive decimal number.
var ErrInvalidPosition = errors.New("invalid task number")

// ParsePosition parses the first whitespace-delimited token of args as
// a 1-based task position. The token must consist solely of decimal
// digits: no sign, no decimal point, nothing else.
func ParsePosition(args string) (int, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return 0, ErrInvalidPosition
	}
	tok := fields[0]
	if !isAllDigits(tok) {
		return 0, ErrInvalidPosition
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, ErrInvalidPosition
	}
	return n, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
