/*
Package maze generates rectangular mazes and renders them as text diagrams.

A maze is a Grid of cells, each tracking an opening toward each of its four
neighbors. Generators start from a fully walled grid and carve passages with a
randomized rule, producing a perfect maze: every cell is reachable from every
other by exactly one path.

Two generators are provided, BinaryTree and SideWinder. Both render through
fmt.Stringer as "<Algorithm> <width>x<height> Maze:" followed by the grid.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown maze algorithm")
)

// Maze is a finished, read-only maze produced by one of the generators.
type Maze interface {
	fmt.Stringer
	// Algorithm returns the name of the generator that carved the maze.
	Algorithm() string
	// Seed returns the random seed the maze was carved with.
	Seed() int64
	// Grid exposes the carved grid through its read-only accessors.
	Grid() *Grid
}

// Constructor creates a maze of the given dimensions.
type Constructor func(width, height int, opts ...Option) Maze

// algorithms maps each generator's name to its constructor.
var algorithms = map[string]Constructor{
	BinaryTreeName: func(width, height int, opts ...Option) Maze {
		return NewBinaryTree(width, height, opts...)
	},
	SideWinderName: func(width, height int, opts ...Option) Maze {
		return NewSideWinder(width, height, opts...)
	},
}

// AlgorithmNames returns the registered generator names in sorted order.
func AlgorithmNames() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Create builds a maze with the named generator.
func Create(algorithm string, width, height int, opts ...Option) (Maze, error) {
	ctor, ok := algorithms[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
	return ctor(width, height, opts...), nil
}

// Option configures a single generation.
type Option func(*options)

type options struct {
	seed    int64
	hasSeed bool
}

// WithSeed makes generation reproducible: the same seed and dimensions always
// carve the same maze.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.hasSeed = true
	}
}

// newRand applies opts and returns the random source for one generation,
// along with the seed it was built from.
func newRand(opts []Option) (*rand.Rand, int64) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if !o.hasSeed {
		o.seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(o.seed)), o.seed
}

// display formats the printable form shared by every generator.
func display(name string, g *Grid) string {
	return fmt.Sprintf("%s %dx%d Maze:\n%s", name, g.Width(), g.Height(), g)
}
