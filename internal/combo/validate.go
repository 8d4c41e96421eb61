package combo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrValidation is the parent of every authoring error.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyName indicates a set name that is empty after trimming.
	ErrEmptyName = fmt.Errorf("%w: combination name cannot be empty", ErrValidation)

	// ErrMissingCatalogItem indicates an item without a catalog reference.
	ErrMissingCatalogItem = fmt.Errorf("%w: item has no catalog reference", ErrValidation)

	// ErrInvalidQuantity indicates a quantity below one.
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be a positive integer", ErrValidation)

	// ErrInvalidOffset indicates an offset that is not a finite number.
	ErrInvalidOffset = fmt.Errorf("%w: offset must be a number", ErrValidation)
)

// Validate checks a set before it is stored.
func Validate(s Set) error {
	if NormalizeName(s.Name) == "" {
		return ErrEmptyName
	}
	for i, item := range s.Items {
		if err := ValidateItem(item); err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	return nil
}

// ValidateItem checks a single item.
func ValidateItem(item Item) error {
	if strings.TrimSpace(item.CatalogItemID) == "" {
		return ErrMissingCatalogItem
	}
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if !finite(item.OffsetX) || !finite(item.OffsetY) {
		return ErrInvalidOffset
	}
	return nil
}

// ParseQuantity parses user text as a positive integer quantity.
func ParseQuantity(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 {
		return 0, ErrInvalidQuantity
	}
	return n, nil
}

// ParseOffset parses user text as an offset. Only invariant
// formatting is accepted ("1.5", "-2", "3e2").
func ParseOffset(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || !finite(v) {
		return 0, ErrInvalidOffset
	}
	return v, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
