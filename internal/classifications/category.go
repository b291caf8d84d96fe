// Package classifications implements the classifier and synthesizer for
// pasted text. Classification is substring matching over a fixed vocabulary;
// synthesis produces a pre-authored Document for the detected category after
// a fixed artificial delay.
package classifications

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Category is the kind of document pasted text resembles.
type Category string

// Known categories.
const (
	TermsOfService Category = "terms_of_service"
	Generic        Category = "generic"
)

var categories = []Category{TermsOfService, Generic}

// termsMarkers are matched as plain substrings, not words: "terms (" inside
// any longer phrase still counts.
var termsMarkers = []string{
	"terms of service",
	"terms (",
	"interpretation and definitions",
}

// Classify decides which category raw text resembles. Matching is case and
// surrounding-whitespace insensitive.
func Classify(raw string) Category {
	text := normalize(raw)
	for _, m := range termsMarkers {
		if strings.Contains(text, m) {
			return TermsOfService
		}
	}
	return Generic
}

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !slices.Contains(categories, c) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// UnmarshalJSON rejects unknown category names.
func (c *Category) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseCategory(raw)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
