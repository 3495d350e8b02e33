package layout

import (
	"testing"

	"github.com/dshills/termgrid/geometry"
)

// area creates a Rect at the origin with the given size.
func area(w, h int) geometry.Rect {
	return geometry.Rect{X: 0, Y: 0, Width: w, Height: h}
}

// assertRectsEqual fails the test if got and want differ.
func assertRectsEqual(t *testing.T, label string, got, want []geometry.Rect) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: len(got)=%d, want %d\ngot:  %v\nwant: %v", label, len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s[%d]: got %v, want %v", label, i, got[i], want[i])
		}
	}
}

func TestSingleFillTakesEntireArea(t *testing.T) {
	rects := New(Horizontal, Fill(0)).Split(area(100, 50))
	assertRectsEqual(t, "single fill", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 100, Height: 50},
	})
}

func TestLengthPlusFill(t *testing.T) {
	rects := New(Horizontal, Length(10), Fill(0)).Split(area(20, 1))
	assertRectsEqual(t, "length+fill", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 10, Height: 1},
		{X: 10, Y: 0, Width: 10, Height: 1},
	})
}

func TestLengthClampedToArea(t *testing.T) {
	rects := New(Horizontal, Length(30)).Split(area(10, 1))
	assertRectsEqual(t, "oversized length", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 10, Height: 1},
	})
}

func TestLengthsClampCumulatively(t *testing.T) {
	rects := New(Horizontal, Length(7), Length(7)).Split(area(10, 1))
	assertRectsEqual(t, "two lengths over area", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 7, Height: 1},
		{X: 7, Y: 0, Width: 3, Height: 1},
	})
}

func TestPercentageOfArea(t *testing.T) {
	rects := New(Horizontal, Percentage(50)).Split(area(10, 1))
	assertRectsEqual(t, "half", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 5, Height: 1},
	})
}

func TestPercentageRoundsHalfUp(t *testing.T) {
	rects := New(Horizontal, Percentage(50)).Split(area(11, 1))
	// 5.5 rounds up to 6.
	if rects[0].Width != 6 {
		t.Errorf("expected width 6, got %d", rects[0].Width)
	}
}

func TestPercentagesCappedByRemaining(t *testing.T) {
	rects := New(Horizontal, Percentage(50), Percentage(50)).Split(area(11, 1))
	assertRectsEqual(t, "pct 50+50 of 11", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 6, Height: 1},
		{X: 6, Y: 0, Width: 5, Height: 1},
	})
}

func TestRatioEqualSplit(t *testing.T) {
	rects := New(Horizontal, Ratio(1, 2), Ratio(1, 2)).Split(area(10, 1))
	assertRectsEqual(t, "two halves", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 5, Height: 1},
		{X: 5, Y: 0, Width: 5, Height: 1},
	})
}

func TestRatiosConsumeAllRemaining(t *testing.T) {
	// Thirds of 10 floor to 3 each; the leftover unit goes to the
	// earliest ratio.
	rects := New(Horizontal, Ratio(1, 3), Ratio(1, 3), Ratio(1, 3)).Split(area(10, 1))
	assertRectsEqual(t, "thirds of 10", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 4, Height: 1},
		{X: 4, Y: 0, Width: 3, Height: 1},
		{X: 7, Y: 0, Width: 3, Height: 1},
	})
}

func TestRatiosShareSpaceAfterLength(t *testing.T) {
	rects := New(Horizontal, Length(4), Ratio(1, 2), Ratio(1, 2)).Split(area(10, 1))
	assertRectsEqual(t, "length then ratios", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 4, Height: 1},
		{X: 4, Y: 0, Width: 3, Height: 1},
		{X: 7, Y: 0, Width: 3, Height: 1},
	})
}

func TestRatioWeightsUnequal(t *testing.T) {
	rects := New(Horizontal, Ratio(2, 3), Ratio(1, 3)).Split(area(90, 1))
	assertRectsEqual(t, "2:1 ratio", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 60, Height: 1},
		{X: 60, Y: 0, Width: 30, Height: 1},
	})
}

func TestFillRemainderFavorsEarlierFills(t *testing.T) {
	rects := New(Horizontal, Fill(0), Fill(1), Fill(2)).Split(area(10, 1))
	assertRectsEqual(t, "three fills of 10", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 4, Height: 1},
		{X: 4, Y: 0, Width: 3, Height: 1},
		{X: 7, Y: 0, Width: 3, Height: 1},
	})
}

func TestMaxClippedAndSpaceReclaimedByFill(t *testing.T) {
	rects := New(Horizontal, Max(30), Fill(0)).Split(area(100, 1))
	assertRectsEqual(t, "max+fill", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 30, Height: 1},
		{X: 30, Y: 0, Width: 70, Height: 1},
	})
}

func TestMaxUnderCapKeepsEqualShare(t *testing.T) {
	rects := New(Horizontal, Max(80), Fill(0)).Split(area(100, 1))
	assertRectsEqual(t, "max under cap", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 50, Height: 1},
		{X: 50, Y: 0, Width: 50, Height: 1},
	})
}

func TestMaxWithoutFillDropsSurplus(t *testing.T) {
	rects := New(Horizontal, Max(30)).Split(area(100, 1))
	assertRectsEqual(t, "lone max", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 30, Height: 1},
	})
}

func TestMinShrinksBeforeLength(t *testing.T) {
	rects := New(Horizontal, Length(8), Min(10)).Split(area(10, 1))
	assertRectsEqual(t, "length wins over min", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 8, Height: 1},
		{X: 8, Y: 0, Width: 2, Height: 1},
	})
}

func TestMinSqueezedToNothing(t *testing.T) {
	rects := New(Horizontal, Length(12), Min(5)).Split(area(10, 1))
	assertRectsEqual(t, "min squeezed out", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 10, Height: 1},
		{X: 10, Y: 0, Width: 0, Height: 1},
	})
}

func TestMinsOverflowShrinkProportionally(t *testing.T) {
	rects := New(Horizontal, Min(5), Min(5), Min(5)).Split(area(10, 1))
	assertRectsEqual(t, "three mins of 10", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 4, Height: 1},
		{X: 4, Y: 0, Width: 4, Height: 1},
		{X: 8, Y: 0, Width: 2, Height: 1},
	})
}

func TestMinKeepsSizeWhenSpaceAllows(t *testing.T) {
	rects := New(Horizontal, Min(3), Fill(0)).Split(area(10, 1))
	assertRectsEqual(t, "min+fill", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 3, Height: 1},
		{X: 3, Y: 0, Width: 7, Height: 1},
	})
}

func TestAllocationsNeverExceedArea(t *testing.T) {
	tests := []struct {
		name        string
		constraints []Constraint
		width       int
	}{
		{"lengths overflow", []Constraint{Length(9), Length(9)}, 10},
		{"mins overflow", []Constraint{Min(9), Min(9), Min(9)}, 10},
		{"mixed overflow", []Constraint{Length(6), Min(6), Percentage(60)}, 10},
		{"percentages overflow", []Constraint{Percentage(70), Percentage(70)}, 10},
		{"everything", []Constraint{Length(3), Min(2), Max(4), Percentage(25), Ratio(1, 2), Fill(0)}, 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rects := New(Horizontal, tt.constraints...).Split(area(tt.width, 1))
			sum := 0
			for i, r := range rects {
				if r.Width < 0 {
					t.Errorf("rect %d has negative width %d", i, r.Width)
				}
				sum += r.Width
			}
			if sum > tt.width {
				t.Errorf("allocations total %d, exceeds area width %d", sum, tt.width)
			}
		})
	}
}

func TestFillConsumesExactlyTheArea(t *testing.T) {
	rects := New(Horizontal, Length(3), Fill(0), Fill(1)).Split(area(17, 1))
	sum := 0
	for _, r := range rects {
		sum += r.Width
	}
	if sum != 17 {
		t.Errorf("expected widths to total 17, got %d", sum)
	}
}

func TestAlignmentModes(t *testing.T) {
	tests := []struct {
		name      string
		alignment Alignment
		wantX     []int
	}{
		{"start", Start, []int{0, 2}},
		{"end", End, []int{6, 8}},
		{"center", Center, []int{3, 5}},
		{"space-between", SpaceBetween, []int{0, 8}},
		{"space-around", SpaceAround, []int{2, 7}},
		{"space-evenly", SpaceEvenly, []int{2, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rects := New(Horizontal, Length(2), Length(2)).
				WithAlignment(tt.alignment).
				Split(area(10, 1))
			for i, r := range rects {
				if r.X != tt.wantX[i] {
					t.Errorf("rect %d: expected x=%d, got %d", i, tt.wantX[i], r.X)
				}
				if r.Width != 2 {
					t.Errorf("rect %d: expected width 2, got %d", i, r.Width)
				}
			}
		})
	}
}

func TestSpaceBetweenRemainderWidensEarlierGaps(t *testing.T) {
	rects := New(Horizontal, Length(2), Length(2), Length(2)).
		WithAlignment(SpaceBetween).
		Split(area(11, 1))
	assertRectsEqual(t, "space-between remainder", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 2, Height: 1},
		{X: 5, Y: 0, Width: 2, Height: 1},
		{X: 9, Y: 0, Width: 2, Height: 1},
	})
}

func TestSpaceEvenlyRemainderWidensLeadingGap(t *testing.T) {
	rects := New(Horizontal, Length(2), Length(2)).
		WithAlignment(SpaceEvenly).
		Split(area(11, 1))
	assertRectsEqual(t, "space-evenly remainder", rects, []geometry.Rect{
		{X: 3, Y: 0, Width: 2, Height: 1},
		{X: 7, Y: 0, Width: 2, Height: 1},
	})
}

func TestSpaceBetweenSingleChildStaysAtStart(t *testing.T) {
	rects := New(Horizontal, Length(2)).
		WithAlignment(SpaceBetween).
		Split(area(10, 1))
	if rects[0].X != 0 {
		t.Errorf("expected x=0, got %d", rects[0].X)
	}
}

func TestSpaceAroundSingleChild(t *testing.T) {
	// Free space 8 splits 4 ahead, 4 behind.
	rects := New(Horizontal, Length(2)).
		WithAlignment(SpaceAround).
		Split(area(10, 1))
	if rects[0].X != 4 {
		t.Errorf("expected x=4, got %d", rects[0].X)
	}
}

func TestAlignmentIrrelevantWhenAreaFull(t *testing.T) {
	rects := New(Horizontal, Fill(0)).
		WithAlignment(End).
		Split(area(10, 1))
	assertRectsEqual(t, "full area end-aligned", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 10, Height: 1},
	})
}

func TestVerticalSplit(t *testing.T) {
	rects := New(Vertical, Length(3), Fill(0)).Split(area(10, 20))
	assertRectsEqual(t, "vertical", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 10, Height: 3},
		{X: 0, Y: 3, Width: 10, Height: 17},
	})
}

func TestVerticalEndAlignment(t *testing.T) {
	rects := New(Vertical, Length(2), Length(2)).
		WithAlignment(End).
		Split(area(5, 10))
	assertRectsEqual(t, "vertical end", rects, []geometry.Rect{
		{X: 0, Y: 6, Width: 5, Height: 2},
		{X: 0, Y: 8, Width: 5, Height: 2},
	})
}

func TestMarginAndPaddingShrinkTheArea(t *testing.T) {
	rects := New(Horizontal, Fill(0)).
		WithMargin(geometry.UniformMargin(1)).
		WithPadding(geometry.UniformPadding(1)).
		Split(area(20, 10))
	assertRectsEqual(t, "margin+padding", rects, []geometry.Rect{
		{X: 2, Y: 2, Width: 16, Height: 6},
	})
}

func TestOffsetAreaOffsetsChildren(t *testing.T) {
	rects := New(Horizontal, Length(4), Fill(0)).
		Split(geometry.Rect{X: 5, Y: 3, Width: 10, Height: 4})
	assertRectsEqual(t, "offset area", rects, []geometry.Rect{
		{X: 5, Y: 3, Width: 4, Height: 4},
		{X: 9, Y: 3, Width: 6, Height: 4},
	})
}

func TestChildrenSpanFullCrossAxis(t *testing.T) {
	inner := geometry.UniformMargin(2).Apply(area(30, 12))
	rects := New(Horizontal, Length(5), Fill(0)).
		WithMargin(geometry.UniformMargin(2)).
		Split(area(30, 12))
	for i, r := range rects {
		if r.Y != inner.Y || r.Height != inner.Height {
			t.Errorf("rect %d: expected y=%d height=%d, got y=%d height=%d",
				i, inner.Y, inner.Height, r.Y, r.Height)
		}
	}
}

func TestEmptyConstraintsReturnNil(t *testing.T) {
	if rects := New(Horizontal).Split(area(10, 10)); rects != nil {
		t.Errorf("expected nil, got %v", rects)
	}
}

func TestZeroAreaYieldsZeroWidths(t *testing.T) {
	rects := New(Horizontal, Length(5), Fill(0)).Split(area(0, 0))
	assertRectsEqual(t, "zero area", rects, []geometry.Rect{
		{X: 0, Y: 0, Width: 0, Height: 0},
		{X: 0, Y: 0, Width: 0, Height: 0},
	})
}

func TestSplitMatchesDistribute(t *testing.T) {
	a := area(40, 8)
	m := geometry.UniformMargin(1)
	p := geometry.UniformPadding(1)
	cs := []Constraint{Length(6), Ratio(1, 2), Fill(0)}

	fromSplit := New(Horizontal, cs...).
		WithMargin(m).
		WithPadding(p).
		WithAlignment(Center).
		Split(a)
	fromDistribute := Distribute(a, cs, Horizontal, m, p, Center)
	assertRectsEqual(t, "split vs distribute", fromSplit, fromDistribute)
}

func TestDirectionString(t *testing.T) {
	if got := Horizontal.String(); got != "horizontal" {
		t.Errorf("expected %q, got %q", "horizontal", got)
	}
	if got := Vertical.String(); got != "vertical" {
		t.Errorf("expected %q, got %q", "vertical", got)
	}
}

func TestAlignmentString(t *testing.T) {
	tests := []struct {
		a    Alignment
		want string
	}{
		{Start, "start"},
		{End, "end"},
		{Center, "center"},
		{SpaceBetween, "space-between"},
		{SpaceAround, "space-around"},
		{SpaceEvenly, "space-evenly"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
