package collator

import (
	"strings"
	"unicode"
)

// defaultNameOverrides maps lower-cased repository slugs to hand-written display names
var defaultNameOverrides = map[string]string{
	"website":       "About this Website",
	"atel-lookup":   "ATel Lookup",
	"mnk-tictactoe": "MNK Tic-Tac-Toe",
	"liftsim":       "Lift Simulator",
}

// NameFormatter turns repository slugs into display names
type NameFormatter struct {
	overrides map[string]string
}

// NewNameFormatter creates a formatter with the built-in overrides plus extra.
// Entries in extra replace built-in ones with the same slug.
func NewNameFormatter(extra map[string]string) *NameFormatter {
	overrides := make(map[string]string, len(defaultNameOverrides)+len(extra))
	for slug, name := range defaultNameOverrides {
		overrides[slug] = name
	}
	for slug, name := range extra {
		overrides[strings.ToLower(slug)] = name
	}
	return &NameFormatter{overrides: overrides}
}

// Format returns the override for slug if there is one, otherwise its start-cased form.
func (f *NameFormatter) Format(slug string) string {
	if name, ok := f.overrides[strings.ToLower(slug)]; ok {
		return name
	}
	return StartCase(slug)
}

// FormatName formats slug using the built-in overrides only.
func FormatName(slug string) string {
	return NewNameFormatter(nil).Format(slug)
}

// StartCase splits s into words and upper-cases the first letter of each:
// "my-cool-app" becomes "My Cool App", "MNKTicTacToe" becomes "MNK Tic Tac Toe".
func StartCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = upperFirst(w)
	}
	return strings.Join(words, " ")
}

func splitWords(s string) []string {
	runes := []rune(s)
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(current) > 0 && isBoundary(current[len(current)-1], r, runes, i) {
			flush()
		}
		current = append(current, r)
	}
	flush()

	return words
}

// isBoundary reports whether a new word starts at runes[i], given the previous rune of the word
func isBoundary(prev, r rune, runes []rune, i int) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(r):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(r):
		// last capital of an acronym run starts the next word: "MNKTic" -> "MNK", "Tic"
		return i+1 < len(runes) && unicode.IsLower(runes[i+1])
	case unicode.IsLetter(prev) && unicode.IsDigit(r):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(r):
		return true
	}
	return false
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
