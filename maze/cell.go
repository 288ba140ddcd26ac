package maze

// Direction names one of the four cardinal neighbors of a cell.
type Direction uint8

const (
	Left Direction = iota
	Right
	Top
	Bottom
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	}
	return "Unknown"
}

// Opposite returns the direction pointing back from the neighbor.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Top:
		return Bottom
	default:
		return Top
	}
}

// offset returns the coordinate delta toward the neighbor. Row 0 is the
// bottom row, so Top increases y.
func (d Direction) offset() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Top:
		return 0, 1
	default:
		return 0, -1
	}
}

// Cell represents a single cell in a maze grid.
// Each flag is true when there is an opening toward that neighbor; the zero
// value is a fully walled cell.
type Cell struct {
	Left   bool // Left indicates an opening toward the cell at x-1.
	Right  bool // Right indicates an opening toward the cell at x+1.
	Top    bool // Top indicates an opening toward the cell at y+1.
	Bottom bool // Bottom indicates an opening toward the cell at y-1.
}

// IsOpen reports whether the cell has an opening in the given direction.
func (c Cell) IsOpen(d Direction) bool {
	switch d {
	case Left:
		return c.Left
	case Right:
		return c.Right
	case Top:
		return c.Top
	case Bottom:
		return c.Bottom
	}
	return false
}

func (c *Cell) open(d Direction) {
	switch d {
	case Left:
		c.Left = true
	case Right:
		c.Right = true
	case Top:
		c.Top = true
	case Bottom:
		c.Bottom = true
	}
}
