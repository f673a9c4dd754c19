package version

import (
	"fmt"
	"strconv"
	"strings"
)

// WmicPreamble is what WMIC prints before the value when queried with
// "get Version /value". The doubled carriage returns are what the tool
// really emits, the match must be byte exact.
const WmicPreamble = "\r\r\n\r\r\nVersion="

// ParseError is returned when the input doesn't match the expected grammar.
type ParseError struct {
	// Expected is the literal or structure that failed to match
	Expected string

	// Remaining is the input left at the position of the failure
	Remaining string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %q, remaining input %q", e.Expected, e.Remaining)
}

// Parse reads a bare 4-part version from the beginning of s, such as
// "89.0.4389.23". Text after the fourth number is returned untouched.
func Parse(s string) (Version, string, error) {
	var parts [4]int
	rest := s

	for i := range parts {
		if i > 0 {
			var err error
			rest, err = literal(rest, ".")
			if err != nil {
				return Version{}, s, err
			}
		}

		var err error
		parts[i], rest, err = decimal(rest)
		if err != nil {
			return Version{}, s, err
		}
	}

	return New(parts[0], parts[1], parts[2], parts[3]), rest, nil
}

// ParseWith reads a version preceded by a product label, such as
// "ChromeDriver 89.0.4389.23 (...)" or "Google Chrome 109.0.5414.87".
// Zero or more blanks are allowed between the label and the number.
func ParseWith(s, label string) (Version, string, error) {
	rest, err := literal(s, label)
	if err != nil {
		return Version{}, s, err
	}

	rest = strings.TrimLeft(rest, " \t")

	return Parse(rest)
}

// ParseWmic reads a version out of the output of
// `wmic datafile where name="..." get Version /value`.
func ParseWmic(s string) (Version, string, error) {
	rest, err := literal(s, WmicPreamble)
	if err != nil {
		return Version{}, s, err
	}

	return Parse(rest)
}

func literal(s, lit string) (string, error) {
	if !strings.HasPrefix(s, lit) {
		return s, &ParseError{Expected: lit, Remaining: s}
	}
	return s[len(lit):], nil
}

func decimal(s string) (int, string, error) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == 0 {
		return 0, s, &ParseError{Expected: "decimal digits", Remaining: s}
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, s, &ParseError{Expected: "decimal digits", Remaining: s}
	}

	return n, s[end:], nil
}
