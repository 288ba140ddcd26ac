package maze

// BinaryTreeName is the display name of the binary-tree generator.
const BinaryTreeName = "BinaryTree"

// BinaryTree is a maze carved by the binary-tree algorithm: every cell opens
// either upward or to the right, picked by a coin flip.
type BinaryTree struct {
	grid *Grid
	seed int64
}

// NewBinaryTree carves a width x height maze with the binary-tree algorithm.
//
// Cells on the top row are forced right and cells in the rightmost column are
// forced up; the top-right corner gets no new opening.
func NewBinaryTree(width, height int, opts ...Option) *BinaryTree {
	grid := NewGrid(width, height)
	rng, seed := newRand(opts)

	for y := 0; y < grid.height; y++ {
		for x := 0; x < grid.width; x++ {
			head := rng.Intn(2) == 0
			if y < grid.height-1 && (head || x == grid.width-1) {
				grid.carve(x, y, Top)
			}
			if x < grid.width-1 && (!head || y == grid.height-1) {
				grid.carve(x, y, Right)
			}
		}
	}

	return &BinaryTree{grid: grid, seed: seed}
}

// Algorithm returns BinaryTreeName.
func (m *BinaryTree) Algorithm() string {
	return BinaryTreeName
}

// Seed returns the random seed the maze was carved with.
func (m *BinaryTree) Seed() int64 {
	return m.seed
}

// Grid returns the carved grid.
func (m *BinaryTree) Grid() *Grid {
	return m.grid
}

func (m *BinaryTree) String() string {
	return display(BinaryTreeName, m.grid)
}
