package lang

import (
	"fmt"
	"strings"
)

// Gender selects the grammatical pronoun forms of a living or object.
type Gender int

const (
	Neuter Gender = iota
	Female
	Male
)

// String returns the single-letter gender code used in world definitions.
func (g Gender) String() string {
	switch g {
	case Female:
		return "f"
	case Male:
		return "m"
	}
	return "n"
}

// Subjective returns "he", "she" or "it".
func (g Gender) Subjective() string {
	switch g {
	case Female:
		return "she"
	case Male:
		return "he"
	}
	return "it"
}

// Objective returns "him", "her" or "it".
func (g Gender) Objective() string {
	switch g {
	case Female:
		return "her"
	case Male:
		return "him"
	}
	return "it"
}

// Possessive returns "his", "her" or "its".
func (g Gender) Possessive() string {
	switch g {
	case Female:
		return "her"
	case Male:
		return "his"
	}
	return "its"
}

// ParseGender accepts "f"/"m"/"n" and the full words, in any case.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f", "female":
		return Female, nil
	case "m", "male":
		return Male, nil
	case "n", "neuter":
		return Neuter, nil
	}
	return Neuter, fmt.Errorf("lang: invalid gender %q", s)
}

// ValidateGender lowercases and validates a gender word ("F" -> "f",
// "Female" -> "female").
func ValidateGender(s string) (string, error) {
	if _, err := ParseGender(s); err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(s)), nil
}

// ValidateGenderMF is ValidateGender but rejects the neuter forms.
func ValidateGenderMF(s string) (string, error) {
	g, err := ParseGender(s)
	if err != nil {
		return "", err
	}
	if g == Neuter {
		return "", fmt.Errorf("lang: gender %q not allowed here", s)
	}
	return strings.ToLower(strings.TrimSpace(s)), nil
}
