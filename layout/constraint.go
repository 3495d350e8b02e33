// Package layout divides a rectangular area among ordered sizing
// constraints and positions the results along a primary axis. The
// solver is a pure function over value types: no state, no errors, safe
// for concurrent use on independent inputs.
package layout

import "fmt"

// Kind identifies how a constraint sizes its region.
type Kind int

// Constraint kinds, in allocation precedence order.
const (
	KindLength Kind = iota
	KindMin
	KindMax
	KindPercentage
	KindRatio
	KindFill
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLength:
		return "length"
	case KindMin:
		return "min"
	case KindMax:
		return "max"
	case KindPercentage:
		return "percentage"
	case KindRatio:
		return "ratio"
	case KindFill:
		return "fill"
	default:
		return "unknown"
	}
}

// Constraint is one sizing rule for one child region. Construct values
// with the Kind-named functions; all numeric input is clamped to its
// valid range at construction, never rejected.
type Constraint struct {
	Kind  Kind
	Value int
	// Denominator is used by Ratio constraints only.
	Denominator int
}

// Length creates a constraint requesting exactly n cells.
func Length(n int) Constraint {
	return Constraint{Kind: KindLength, Value: max(n, 0)}
}

// Min creates a constraint requesting at least n cells, shrinkable
// before Length requests when the area overflows.
func Min(n int) Constraint {
	return Constraint{Kind: KindMin, Value: max(n, 0)}
}

// Max creates a constraint capped at n cells. It shares leftover space
// with Fill constraints and is clipped to n afterward.
func Max(n int) Constraint {
	return Constraint{Kind: KindMax, Value: max(n, 0)}
}

// Percentage creates a constraint requesting p percent of the area's
// primary extent, p clamped to [0, 100].
func Percentage(p int) Constraint {
	return Constraint{Kind: KindPercentage, Value: min(max(p, 0), 100)}
}

// Ratio creates a constraint weighted num/den against the other Ratio
// constraints. The numerator clamps to >= 0 and the denominator to >= 1.
func Ratio(num, den int) Constraint {
	return Constraint{Kind: KindRatio, Value: max(num, 0), Denominator: max(den, 1)}
}

// Fill creates a constraint taking an equal share of whatever space is
// left after all other constraints. The order value distinguishes fills
// for callers; it does not weight the split.
func Fill(order int) Constraint {
	return Constraint{Kind: KindFill, Value: max(order, 0)}
}

// String returns a compact representation of the constraint.
func (c Constraint) String() string {
	if c.Kind == KindRatio {
		return fmt.Sprintf("ratio(%d/%d)", c.Value, c.Denominator)
	}
	return fmt.Sprintf("%s(%d)", c.Kind, c.Value)
}
