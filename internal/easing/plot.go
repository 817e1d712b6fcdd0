package easing

import (
	"math"
	"strings"
)

// Plot draws the curve as rows of text, top row first. The vertical range
// always covers [0,1] and grows to fit overshoot. The dashed diagonal is
// the linear reference.
func (c Curve) Plot(width, height int) []string {
	if width < 2 || height < 2 {
		return nil
	}
	lo, hi := 0.0, 1.0
	ys := make([]float64, width)
	for i := range width {
		y := c.Sample(float64(i) / float64(width-1))
		ys[i] = y
		lo, hi = math.Min(lo, y), math.Max(hi, y)
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}
	row := func(y float64) int {
		r := int(math.Round((hi - y) / (hi - lo) * float64(height-1)))
		return max(0, min(height-1, r))
	}
	for i := range width {
		grid[row(float64(i)/float64(width-1))][i] = '·'
	}
	for i, y := range ys {
		grid[row(y)][i] = '●'
	}

	out := make([]string, height)
	for r := range grid {
		out[r] = string(grid[r])
	}
	return out
}

// Track returns the column of a box moving across width cells at time
// fraction t, for the replay animation.
func (c Curve) Track(width int, t float64) int {
	if width <= 1 {
		return 0
	}
	pos := int(math.Round(c.Sample(t) * float64(width-1)))
	return max(0, min(width-1, pos))
}
