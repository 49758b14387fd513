// Package normalization maps loosely written config strings onto typed enums.
package normalization

import (
	"sort"
	"strings"

	ferrors "git.home.luguber.info/inful/stylebuilder/internal/foundation/errors"
)

// Normalizer converts strings to an enum type. Lookup ignores case and
// surrounding whitespace.
type Normalizer[T comparable] struct {
	field        string
	validValues  map[string]T
	defaultValue T
	validKeys    []string // Cached for error messages
}

// NewNormalizer creates a normalizer for the config field named field.
func NewNormalizer[T comparable](field string, values map[string]T, defaultValue T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	validKeys := make([]string, 0, len(values))
	for k, v := range values {
		key := clean(k)
		normalized[key] = v
		validKeys = append(validKeys, key)
	}
	sort.Strings(validKeys)
	return &Normalizer[T]{
		field:        field,
		validValues:  normalized,
		defaultValue: defaultValue,
		validKeys:    validKeys,
	}
}

// Normalize returns the matching value, or the default for unknown input.
func (n *Normalizer[T]) Normalize(raw string) T {
	if value, ok := n.validValues[clean(raw)]; ok {
		return value
	}
	return n.defaultValue
}

// NormalizeStrict returns the default for blank input and a validation error
// for anything unrecognized.
func (n *Normalizer[T]) NormalizeStrict(raw string) (T, error) {
	if clean(raw) == "" {
		return n.defaultValue, nil
	}
	if value, ok := n.validValues[clean(raw)]; ok {
		return value, nil
	}
	var zero T
	return zero, ferrors.ValidationError("invalid "+n.field).
		WithContext("value", raw).
		WithContext("valid", strings.Join(n.validKeys, "|")).
		Build()
}

// ValidKeys returns all accepted spellings, sorted.
func (n *Normalizer[T]) ValidKeys() []string {
	out := make([]string, len(n.validKeys))
	copy(out, n.validKeys)
	return out
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
