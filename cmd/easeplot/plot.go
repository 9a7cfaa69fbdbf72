package main

import (
	"math"

	"github.com/phanxgames/tween"
)

// Plot range. Wider than [0, 1] so back and elastic overshoot stays visible.
const (
	plotMin = -0.25
	plotMax = 1.25
)

// point is one plotted cell, in plot-local coordinates with y growing down.
type point struct {
	X, Y int
}

// plot lays out a curve on a w×h grid.
type plot struct {
	w, h int
}

// row maps a curve value to a grid row, clamped to the grid.
func (p plot) row(v float64) int {
	if math.IsNaN(v) {
		return p.h - 1
	}
	f := (plotMax - v) / (plotMax - plotMin)
	r := int(math.Round(f * float64(p.h-1)))
	return min(max(r, 0), p.h-1)
}

// col maps progress in [0, 1] to a grid column, clamped to the grid.
func (p plot) col(t float64) int {
	c := int(math.Round(t * float64(p.w-1)))
	return min(max(c, 0), p.w-1)
}

// curve samples fn once per column.
func (p plot) curve(fn tween.Func) []point {
	if p.w < 2 || p.h < 2 {
		return nil
	}
	pts := make([]point, p.w)
	for x := range pts {
		t := float64(x) / float64(p.w-1)
		pts[x] = point{X: x, Y: p.row(fn(t))}
	}
	return pts
}

// guides returns the rows of the 0 and 1 reference lines.
func (p plot) guides() (zero, one int) {
	return p.row(0), p.row(1)
}
