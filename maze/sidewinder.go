package maze

// SideWinderName is the display name of the sidewinder generator.
const SideWinderName = "SideWinder"

// SideWinder is a maze carved by the sidewinder algorithm.
type SideWinder struct {
	grid *Grid
	seed int64
}

// NewSideWinder carves a width x height maze with the sidewinder algorithm.
//
// Each row is walked left to right while collecting a run of cells. A coin
// flip either extends the run to the right or closes it by opening upward
// from one of its cells, chosen uniformly. The last cell of a row always
// closes the run, and the top row becomes one open corridor.
func NewSideWinder(width, height int, opts ...Option) *SideWinder {
	grid := NewGrid(width, height)
	rng, seed := newRand(opts)

	var run []int
	for y := 0; y < grid.height; y++ {
		for x := 0; x < grid.width; x++ {
			run = append(run, x)
			head := rng.Intn(2) == 0
			if y < grid.height-1 && (head || x == grid.width-1) {
				grid.carve(run[rng.Intn(len(run))], y, Top)
				run = run[:0]
			}
			if x < grid.width-1 && (!head || y == grid.height-1) {
				grid.carve(x, y, Right)
			}
		}
	}

	return &SideWinder{grid: grid, seed: seed}
}

// Algorithm returns SideWinderName.
func (m *SideWinder) Algorithm() string {
	return SideWinderName
}

// Seed returns the random seed the maze was carved with.
func (m *SideWinder) Seed() int64 {
	return m.seed
}

// Grid returns the carved grid.
func (m *SideWinder) Grid() *Grid {
	return m.grid
}

func (m *SideWinder) String() string {
	return display(SideWinderName, m.grid)
}
