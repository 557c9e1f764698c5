package model

import (
	"regexp"
	"strings"
)

var wordSeparators = regexp.MustCompile(`[_\-\s]+`)

// DefaultLabeler turns a field name into the label shown next to its control.
// Separators (underscore, dash, whitespace) and camelCase or letter/digit
// boundaries all start a new word, and every word is title-cased, so
// "firstName" and "first_name" both become "First Name".
func DefaultLabeler(name string) string {
	if name == "" {
		return ""
	}

	var segments []string
	for _, word := range wordSeparators.Split(name, -1) {
		for _, part := range camelParts(word) {
			segments = append(segments, titleCase(part))
		}
	}
	return strings.Join(segments, " ")
}

// camelParts splits a single word at lower-to-upper and letter/digit
// transitions.
func camelParts(word string) []string {
	if word == "" {
		return nil
	}

	var parts []string
	start := 0
	runes := []rune(word)
	for i := 1; i < len(runes); i++ {
		if startsNewPart(runes[i-1], runes[i]) {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	return append(parts, string(runes[start:]))
}

func startsNewPart(prev, cur rune) bool {
	switch {
	case isLower(prev) && isUpper(cur):
		return true
	case isLetter(prev) && isDigit(cur):
		return true
	case isDigit(prev) && isLetter(cur):
		return true
	default:
		return false
	}
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

func titleCase(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
