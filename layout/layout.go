package layout

import (
	"github.com/dshills/termgrid/geometry"
)

// Direction selects the axis along which space is distributed.
type Direction int

// Layout directions.
const (
	Horizontal Direction = iota
	Vertical
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Alignment positions children along the primary axis when the
// constraints do not consume the whole area.
type Alignment int

// Alignment modes.
const (
	// Start packs children at the area start with no gaps.
	Start Alignment = iota
	// End packs children against the area end.
	End
	// Center packs children around the area midpoint.
	Center
	// SpaceBetween puts equal gaps strictly between children.
	SpaceBetween
	// SpaceAround puts a half gap at each edge and full gaps between.
	SpaceAround
	// SpaceEvenly puts equal gaps before, between, and after children.
	SpaceEvenly
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case End:
		return "end"
	case Center:
		return "center"
	case SpaceBetween:
		return "space-between"
	case SpaceAround:
		return "space-around"
	case SpaceEvenly:
		return "space-evenly"
	default:
		return "start"
	}
}

// Layout describes how to split an area: a direction, ordered
// constraints, and optional margin, padding, and alignment. Layout is a
// value type; the With methods return modified copies.
type Layout struct {
	direction   Direction
	constraints []Constraint
	margin      geometry.Margin
	padding     geometry.Padding
	alignment   Alignment
}

// New creates a layout splitting along the given direction.
func New(direction Direction, constraints ...Constraint) Layout {
	return Layout{direction: direction, constraints: constraints}
}

// WithMargin returns a copy that shrinks the area by m before splitting.
func (l Layout) WithMargin(m geometry.Margin) Layout {
	l.margin = m
	return l
}

// WithPadding returns a copy that shrinks the area by p after the
// margin.
func (l Layout) WithPadding(p geometry.Padding) Layout {
	l.padding = p
	return l
}

// WithAlignment returns a copy using the given alignment mode.
func (l Layout) WithAlignment(a Alignment) Layout {
	l.alignment = a
	return l
}

// Split divides the area among the layout's constraints and returns one
// rectangle per constraint, in constraint order.
func (l Layout) Split(area geometry.Rect) []geometry.Rect {
	return Distribute(area, l.constraints, l.direction, l.margin, l.padding, l.alignment)
}

// Distribute divides area among constraints along direction and returns
// one rectangle per constraint, in order. Allocation precedence is
// Length, Min, Percentage, Ratio, then Fill, with Max caps enforced at
// the end; the alignment mode places the children in whatever space
// remains. Every returned rectangle spans the full cross-axis extent of
// the margin- and padding-shrunk area.
func Distribute(area geometry.Rect, constraints []Constraint, direction Direction,
	margin geometry.Margin, padding geometry.Padding, alignment Alignment) []geometry.Rect {

	n := len(constraints)
	if n == 0 {
		return nil
	}

	inner := padding.Apply(margin.Apply(area))
	primary := inner.Width
	if direction == Vertical {
		primary = inner.Height
	}

	alloc := allocate(constraints, primary)

	total := 0
	for _, a := range alloc {
		total += a
	}
	lead, gaps := alignmentGaps(alignment, primary-total, n)

	out := make([]geometry.Rect, n)
	pos := inner.X + lead
	if direction == Vertical {
		pos = inner.Y + lead
	}
	for i := range constraints {
		if direction == Horizontal {
			out[i] = geometry.Rect{X: pos, Y: inner.Y, Width: alloc[i], Height: inner.Height}
		} else {
			out[i] = geometry.Rect{X: inner.X, Y: pos, Width: inner.Width, Height: alloc[i]}
		}
		pos += alloc[i]
		if i < n-1 {
			pos += gaps[i]
		}
	}
	return out
}

// allocate runs the sizing passes and returns the primary-axis extent
// for each constraint.
func allocate(constraints []Constraint, primary int) []int {
	alloc := make([]int, len(constraints))
	used := 0

	// Fixed lengths, clamped so cumulative usage never exceeds the area.
	for i, c := range constraints {
		if c.Kind == KindLength {
			alloc[i] = min(c.Value, primary-used)
			used += alloc[i]
		}
	}
	lengthSum := used

	// Min demand that no longer fits shrinks before Length does: an
	// explicit Length is the stronger promise.
	minTargets := make([]int, len(constraints))
	minDemand := 0
	for i, c := range constraints {
		if c.Kind == KindMin {
			minTargets[i] = c.Value
			minDemand += c.Value
		}
	}
	if lengthSum+minDemand > primary {
		excess := lengthSum + minDemand - primary
		if minDemand > 0 {
			for i, c := range constraints {
				if c.Kind == KindMin {
					cut := excess * c.Value / minDemand
					minTargets[i] = max(minTargets[i]-cut, 0)
				}
			}
		}
		shrunkDemand := 0
		for _, t := range minTargets {
			shrunkDemand += t
		}
		if lengthSum+shrunkDemand > primary && lengthSum > 0 {
			excess = lengthSum + shrunkDemand - primary
			for i, c := range constraints {
				if c.Kind == KindLength {
					cut := excess * alloc[i] / lengthSum
					alloc[i] = max(alloc[i]-cut, 0)
				}
			}
			used = 0
			for i, c := range constraints {
				if c.Kind == KindLength {
					used += alloc[i]
				}
			}
		}
	}

	// Min top-up, index order, bounded by what is left.
	for i, c := range constraints {
		if c.Kind == KindMin {
			give := min(minTargets[i], primary-used)
			alloc[i] = give
			used += give
		}
	}

	// Percentages are relative to the whole padded extent, capped by
	// what is left.
	for i, c := range constraints {
		if c.Kind == KindPercentage {
			want := (primary*c.Value + 50) / 100
			give := min(want, primary-used)
			alloc[i] = give
			used += give
		}
	}

	// Ratios share the remaining space by normalized weight.
	var weightSum float64
	for _, c := range constraints {
		if c.Kind == KindRatio {
			weightSum += float64(c.Value) / float64(c.Denominator)
		}
	}
	if weightSum > 0 {
		remaining := primary - used
		given := 0
		for i, c := range constraints {
			if c.Kind == KindRatio {
				w := float64(c.Value) / float64(c.Denominator)
				give := int(float64(remaining) * w / weightSum)
				alloc[i] = give
				given += give
			}
		}
		used += given
		// Flooring remainder, one unit at a time, earliest index first.
		leftover := remaining - given
		for i, c := range constraints {
			if leftover <= 0 {
				break
			}
			if c.Kind == KindRatio {
				alloc[i]++
				used++
				leftover--
			}
		}
	}

	// Fill pass. Max constraints take part in the split so the cap
	// enforcement below has an allocation to clip.
	var fillIdx []int
	for i, c := range constraints {
		if c.Kind == KindFill || c.Kind == KindMax {
			fillIdx = append(fillIdx, i)
		}
	}
	if len(fillIdx) > 0 {
		remaining := primary - used
		share := remaining / len(fillIdx)
		extra := remaining % len(fillIdx)
		for k, i := range fillIdx {
			alloc[i] = share
			if k < extra {
				alloc[i]++
			}
			used += alloc[i]
		}
	}

	// Max enforcement. Reclaimed space goes back to Fill constraints;
	// with no Fill present it is simply dropped.
	reclaimed := 0
	for i, c := range constraints {
		if c.Kind == KindMax && alloc[i] > c.Value {
			reclaimed += alloc[i] - c.Value
			alloc[i] = c.Value
		}
	}
	if reclaimed > 0 {
		var fills []int
		for i, c := range constraints {
			if c.Kind == KindFill {
				fills = append(fills, i)
			}
		}
		if len(fills) > 0 {
			share := reclaimed / len(fills)
			extra := reclaimed % len(fills)
			for k, i := range fills {
				alloc[i] += share
				if k < extra {
					alloc[i]++
				}
			}
		}
	}

	return alloc
}

// alignmentGaps returns the leading offset and the n-1 gaps between
// children for the given free space.
func alignmentGaps(alignment Alignment, free, n int) (lead int, gaps []int) {
	gaps = make([]int, max(n-1, 0))
	if free <= 0 {
		return 0, gaps
	}

	switch alignment {
	case End:
		lead = free
	case Center:
		lead = free / 2
	case SpaceBetween:
		if n > 1 {
			gap := free / (n - 1)
			rem := free % (n - 1)
			for j := range gaps {
				gaps[j] = gap
				if j < rem {
					gaps[j]++
				}
			}
		}
	case SpaceAround:
		full := free / n
		half := full / 2
		for j := range gaps {
			gaps[j] = full
		}
		// Whatever integer division lost lands on the leading edge.
		lead = half + (free - (2*half + (n-1)*full))
	case SpaceEvenly:
		gap := free / (n + 1)
		rem := free % (n + 1)
		lead = gap
		if rem > 0 {
			lead++
			rem--
		}
		for j := range gaps {
			gaps[j] = gap
			if rem > 0 {
				gaps[j]++
				rem--
			}
		}
	}
	return lead, gaps
}
