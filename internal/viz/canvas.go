// Package viz renders the particle pool to the terminal: a braille canvas,
// a depth-sorted compositor and the color themes.
package viz

import "strings"

// Braille patterns: 2x4 dots per cell, unicode offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille drawing surface. Each character cell carries 2x4
// sub-pixels plus the brightest intensity drawn into it, so overlapping
// particles keep the strongest one's shade.
type Canvas struct {
	Width, Height int
	grid          []rune
	level         []uint8
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, grid: make([]rune, w*h), level: make([]uint8, w*h)}
	c.Clear()
	return c
}

// Clear resets all cells without reallocating.
func (c *Canvas) Clear() {
	for i := range c.grid {
		c.grid[i] = 0x2800
		c.level[i] = 0
	}
}

// Set lights the sub-pixel at (x, y) with the given intensity (1..3).
// Sub-pixel space is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int, intensity uint8) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	i := row*c.Width + col
	c.grid[i] |= rune(pixelMap[y%4][x%2])
	if intensity > c.level[i] {
		c.level[i] = intensity
	}
}

// VLine draws a vertical run of sub-pixels, used for motion streaks.
func (c *Canvas) VLine(x, y0, y1 int, intensity uint8) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		c.Set(x, y, intensity)
	}
}

// Render assembles the canvas into styled terminal lines. Cells are grouped
// into runs of equal intensity so styling cost stays proportional to shade
// changes, not cells.
func (c *Canvas) Render(t Theme) string {
	var sb strings.Builder
	for row := 0; row < c.Height; row++ {
		runStart := 0
		runLevel := c.level[row*c.Width]
		flush := func(end int) {
			if end <= runStart {
				return
			}
			seg := string(c.grid[row*c.Width+runStart : row*c.Width+end])
			sb.WriteString(t.DotStyle(runLevel).Render(seg))
		}
		for col := 1; col < c.Width; col++ {
			if lv := c.level[row*c.Width+col]; lv != runLevel {
				flush(col)
				runStart, runLevel = col, lv
			}
		}
		flush(c.Width)
		if row < c.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
