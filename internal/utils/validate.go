package utils

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var phoneRe = regexp.MustCompile(`^[+]?\d{7,15}$`)

// ValidPhone ignores whitespace, so "+996 555 12 34 56" is accepted.
func ValidPhone(s string) bool {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return phoneRe.MatchString(cleaned)
}

func TooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}
