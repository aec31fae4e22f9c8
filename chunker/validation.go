package chunker

import "fmt"

// validateMaxSize rejects non-positive size budgets.
func validateMaxSize(maxSize int) error {
	if maxSize <= 0 {
		return fmt.Errorf("%w: max size must be positive, got %d", ErrInvalidConfig, maxSize)
	}
	return nil
}

// validateOverlap rejects overlaps that are negative or that would prevent
// the sliding window from advancing.
func validateOverlap(overlap, maxSize int) error {
	if overlap < 0 {
		return fmt.Errorf("%w: overlap cannot be negative, got %d", ErrInvalidConfig, overlap)
	}
	if overlap >= maxSize {
		return fmt.Errorf("%w: overlap (%d) must be less than max size (%d)", ErrInvalidConfig, overlap, maxSize)
	}
	return nil
}
