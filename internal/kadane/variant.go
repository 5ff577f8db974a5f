package kadane

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/kadanebench/internal/errors"
)

// Variant selects one of the two scan implementations.
type Variant int

const (
	Standard Variant = iota
	Optimized
)

// Variants lists every variant in benchmark order.
func Variants() []Variant { return []Variant{Standard, Optimized} }

// Name is the label used in benchmark results and CSV rows.
func (v Variant) Name() string {
	switch v {
	case Standard:
		return "Standard"
	case Optimized:
		return "Optimized"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

func (v Variant) String() string { return v.Name() }

// Find runs the selected implementation.
func (v Variant) Find(seq []int32) (Result, error) {
	if v == Optimized {
		return FindMaxSubarrayOptimized(seq)
	}
	return FindMaxSubarray(seq)
}

// ParseVariant accepts a variant name case-insensitively.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "":
		return Standard, nil
	case "optimized", "optimised":
		return Optimized, nil
	default:
		return Standard, errors.InvalidInput(fmt.Sprintf("unknown variant %q (want standard or optimized)", s), nil)
	}
}
