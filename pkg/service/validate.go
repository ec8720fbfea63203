package service

import (
	"strings"
	"unicode/utf8"
)

// MaxNameLength is the longest full name accepted, in characters
const MaxNameLength = 100

// ValidateName rejects blank names and names over MaxNameLength characters.
// The name is stored exactly as given.
func ValidateName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return invalid("full name cannot be empty")
	}
	if n := utf8.RuneCountInString(fullName); n > MaxNameLength {
		return invalid("full name too long (%d characters, max %d)", n, MaxNameLength)
	}
	return nil
}

// ValidateSeason rejects seasons below 1
func ValidateSeason(season int) error {
	if season < 1 {
		return invalid("season must be positive, got %d", season)
	}
	return nil
}

// Delimiters of the flat recipe input fields
const (
	IngredientSeparator  = ","
	InstructionSeparator = ";"
)

// splitTrim splits s on sep, trims every piece and drops empty pieces.
// Order is preserved; an empty or all-blank input yields an empty slice.
func splitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseIngredients splits a comma separated ingredient list
func ParseIngredients(s string) []string {
	return splitTrim(s, IngredientSeparator)
}

// ParseInstructions splits a semicolon separated list of steps
func ParseInstructions(s string) []string {
	return splitTrim(s, InstructionSeparator)
}
