package maze

import (
	"strings"
)

const (
	cellTopClosed  = "---+"
	cellTopOpen    = "   +"
	cellBodyClosed = "   |"
	cellBodyOpen   = "    "
)

// Grid is a fixed-size rectangle of cells stored in row-major order, with row
// 0 at the bottom of the maze.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid allocates a grid of fully walled cells. A zero or negative
// dimension yields an empty grid; generating over it carves nothing.
func NewGrid(width, height int) *Grid {
	width, height = max(width, 0), max(height, 0)
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// inBounds checks whether (x, y) addresses a cell of the grid.
func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cell returns a copy of the cell at (x, y). The second result is false when
// the coordinates fall outside the grid.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	c := g.cellAt(x, y)
	if c == nil {
		return Cell{}, false
	}
	return *c, true
}

// cellAt returns a pointer to the cell at (x, y), or nil when out of range.
func (g *Grid) cellAt(x, y int) *Cell {
	if !g.inBounds(x, y) {
		return nil
	}
	return &g.cells[y*g.width+x]
}

// carve opens the wall between (x, y) and its neighbor in direction d,
// setting the mirrored flag on both cells. It reports false and leaves the
// grid untouched if either cell is outside the grid.
func (g *Grid) carve(x, y int, d Direction) bool {
	from := g.cellAt(x, y)
	dx, dy := d.offset()
	to := g.cellAt(x+dx, y+dy)
	if from == nil || to == nil {
		return false
	}
	from.open(d)
	to.open(d.Opposite())
	return true
}

// Passages counts the opened walls, each mirrored pair counted once.
func (g *Grid) Passages() int {
	count := 0
	for _, c := range g.cells {
		if c.Right {
			count++
		}
		if c.Top {
			count++
		}
	}
	return count
}

// String renders the grid as a text diagram, top row first. Each cell is four
// characters wide and two lines tall; the bottom border is always closed.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.height*2 + 1) * (g.width*4 + 2))

	for row := 0; row < g.height; row++ {
		y := g.height - 1 - row

		b.WriteString("+")
		for x := 0; x < g.width; x++ {
			if g.cellAt(x, y).Top {
				b.WriteString(cellTopOpen)
			} else {
				b.WriteString(cellTopClosed)
			}
		}

		b.WriteString("\n|")
		for x := 0; x < g.width; x++ {
			if g.cellAt(x, y).Right {
				b.WriteString(cellBodyOpen)
			} else {
				b.WriteString(cellBodyClosed)
			}
		}
		b.WriteString("\n")
	}

	if g.height > 0 {
		b.WriteString("+" + strings.Repeat(cellTopClosed, g.width) + "\n")
	}

	return b.String()
}
