package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus-life/rules"
)

// ErrInvalidDimensions is returned by NewGrid when either dimension is not positive.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// Grid is a width×height toroidal Life board stored row-major
type Grid struct {
	width      int
	height     int
	generation int
	cells      []bool
	next       []bool // spare buffer written by Advance, swapped with cells
	rng        *rand.Rand
}

// Option configures a Grid at construction
type Option func(*Grid)

// WithSeed makes Randomize deterministic for the given seed
func WithSeed(seed int64) Option {
	return func(g *Grid) {
		g.rng = rand.New(rand.NewPCG(uint64(seed), 0))
	}
}

// NewGrid creates an all-dead grid at generation 0
func NewGrid(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d", width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
		next:   make([]bool, width*height),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g, nil
}

// Width returns the number of columns
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows
func (g *Grid) Height() int { return g.height }

// CellCount returns width*height
func (g *Grid) CellCount() int { return len(g.cells) }

// Generation returns the number of completed Advance calls
func (g *Grid) Generation() int { return g.generation }

// Cell reports whether the cell at index is alive. Out-of-range indices read as dead.
func (g *Grid) Cell(index int) bool {
	if index < 0 || index >= len(g.cells) {
		return false
	}
	return g.cells[index]
}

// Randomize sets every cell alive or dead with equal probability. Generation is untouched.
func (g *Grid) Randomize() {
	for i := range g.cells {
		g.cells[i] = g.rng.IntN(2) == 1
	}
}

// ToggleCell flips the cell at index; indices outside [0, CellCount) are ignored
func (g *Grid) ToggleCell(index int) {
	if index < 0 || index >= len(g.cells) {
		return
	}
	g.cells[index] = !g.cells[index]
}

// IsAlive reports whether any cell is alive
func (g *Grid) IsAlive() bool {
	for _, alive := range g.cells {
		if alive {
			return true
		}
	}
	return false
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// neighborCount counts living cells among the 8 toroidal neighbors of index
func (g *Grid) neighborCount(index int) (count int) {
	for _, n := range Neighbors(index, g.width, g.height) {
		if g.cells[n] {
			count++
		}
	}
	return
}

// Advance computes the next generation from the current cells and swaps it in.
// Every neighbor read sees the pre-tick state.
func (g *Grid) Advance() {
	for i, alive := range g.cells {
		g.next[i] = rules.ApplyConwayRules(g.neighborCount(i), alive)
	}
	g.cells, g.next = g.next, g.cells
	g.generation++
}

// Hash returns an MD5 digest of the current cell state
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
