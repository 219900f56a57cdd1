// Package validate holds the field-format checks shared by the booking and
// contact forms.
package validate

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,16}$`)
)

func Email(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// Phone accepts international numbers: an optional leading + followed by
// 10-16 digits, after stripping spaces, hyphens and parentheses.
func Phone(s string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(s)
	return phonePattern.MatchString(cleaned)
}

// Name requires at least two characters after trimming.
func Name(s string) bool {
	return len(strings.TrimSpace(s)) >= 2
}
