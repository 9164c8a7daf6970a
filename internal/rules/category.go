package rules

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category classifies a finding by the kind of problem it signals.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver per json.Unmarshaler interface
type Category int

const (
	// CategoryConvention marks a violated coding convention.
	CategoryConvention Category = iota
	// CategoryRefactor marks code that works but should be restructured.
	CategoryRefactor
	// CategoryWarning marks code that is likely wrong.
	CategoryWarning
	// CategoryError marks code the robot controller would reject.
	CategoryError
	// CategoryFatal marks a problem that stopped the check itself.
	CategoryFatal
)

// Categories lists every category in ascending severity.
var Categories = []Category{
	CategoryConvention,
	CategoryRefactor,
	CategoryWarning,
	CategoryError,
	CategoryFatal,
}

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryConvention:
		return "convention"
	case CategoryRefactor:
		return "refactor"
	case CategoryWarning:
		return "warning"
	case CategoryError:
		return "error"
	case CategoryFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON implements json.Unmarshaler.
// Pointer receiver required by json.Unmarshaler interface.
func (c *Category) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseCategory(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory parses a category string into a Category value.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "convention":
		return CategoryConvention, nil
	case "refactor":
		return CategoryRefactor, nil
	case "warning", "warn":
		return CategoryWarning, nil
	case "error":
		return CategoryError, nil
	case "fatal":
		return CategoryFatal, nil
	default:
		return CategoryConvention, fmt.Errorf("unknown category: %q", s)
	}
}

// IsAtLeast returns true if c is at least as severe as threshold.
func (c Category) IsAtLeast(threshold Category) bool {
	return c >= threshold
}
