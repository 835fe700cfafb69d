package model

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func mustGrid(t *testing.T, w, h int, opts ...Option) *Grid {
	t.Helper()
	g, err := NewGrid(w, h, opts...)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", w, h, err)
	}
	return g
}

func aliveSet(g *Grid) map[int]bool {
	out := map[int]bool{}
	for i := 0; i < g.CellCount(); i++ {
		if g.Cell(i) {
			out[i] = true
		}
	}
	return out
}

func TestNewGridRejectsZeroDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}} {
		g, err := NewGrid(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewGrid(%d, %d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
		if g != nil {
			t.Errorf("NewGrid(%d, %d) returned a grid", dims[0], dims[1])
		}
	}
}

func TestNewGridStartsDead(t *testing.T) {
	g := mustGrid(t, 7, 3)
	if g.CellCount() != 21 || g.Width() != 7 || g.Height() != 3 {
		t.Fatalf("unexpected shape %dx%d (%d cells)", g.Width(), g.Height(), g.CellCount())
	}
	if g.IsAlive() || g.Generation() != 0 {
		t.Fatalf("new grid alive=%v generation=%d", g.IsAlive(), g.Generation())
	}
}

func TestToggleCell(t *testing.T) {
	g := mustGrid(t, 4, 4)
	g.ToggleCell(15)
	if !g.Cell(15) || !g.IsAlive() {
		t.Fatal("toggle of last cell did not bring it alive")
	}
	g.ToggleCell(15)
	if g.Cell(15) || g.IsAlive() {
		t.Fatal("second toggle did not kill the cell")
	}
}

func TestToggleCellOutOfRangeIsNoop(t *testing.T) {
	g := mustGrid(t, 6, 6, WithSeed(7))
	g.Randomize()
	before := g.Hash()
	for _, idx := range []int{g.CellCount(), g.CellCount() + 100, -1} {
		g.ToggleCell(idx)
	}
	if g.Hash() != before {
		t.Fatal("out-of-range toggle changed the grid")
	}
}

func TestAdvanceGenerationCounter(t *testing.T) {
	g := mustGrid(t, 5, 5, WithSeed(1))
	g.Randomize()
	if g.Generation() != 0 {
		t.Fatalf("Randomize changed generation to %d", g.Generation())
	}
	for want := 1; want <= 10; want++ {
		g.Advance()
		if g.Generation() != want {
			t.Fatalf("generation = %d, want %d", g.Generation(), want)
		}
	}
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	g := mustGrid(t, 8, 6)
	for range 20 {
		g.Advance()
		if g.IsAlive() {
			t.Fatalf("empty grid came alive at generation %d", g.Generation())
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	g := mustGrid(t, 5, 5)
	block := []int{6, 7, 11, 12}
	for _, i := range block {
		g.ToggleCell(i)
	}
	g.Advance()

	got := aliveSet(g)
	if len(got) != len(block) {
		t.Fatalf("alive cells = %v, want %v", got, block)
	}
	for _, i := range block {
		if !got[i] {
			t.Fatalf("block cell %d died", i)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := mustGrid(t, 5, 5)
	vertical := []int{7, 12, 17}
	for _, i := range vertical {
		g.ToggleCell(i)
	}

	g.Advance()
	got := aliveSet(g)
	for _, i := range []int{11, 12, 13} {
		if !got[i] {
			t.Fatalf("after one step cell %d should be alive, got %v", i, got)
		}
	}
	if len(got) != 3 {
		t.Fatalf("after one step alive cells = %v", got)
	}

	g.Advance()
	got = aliveSet(g)
	for _, i := range vertical {
		if !got[i] {
			t.Fatalf("after two steps cell %d should be alive, got %v", i, got)
		}
	}
	if len(got) != 3 {
		t.Fatalf("after two steps alive cells = %v", got)
	}
}

func TestGliderWrapsAroundTorus(t *testing.T) {
	g := mustGrid(t, 8, 8)
	for _, xy := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		g.ToggleCell(xy[1]*8 + xy[0])
	}
	start := g.Hash()

	// A glider moves one cell diagonally every 4 generations
	for range 4 * 8 {
		g.Advance()
		if g.CountLivingCells() != 5 {
			t.Fatalf("glider has %d cells at generation %d", g.CountLivingCells(), g.Generation())
		}
	}
	if g.Hash() != start {
		t.Fatal("glider did not return to its starting position after crossing the torus")
	}
}

func TestNeighborCountBounds(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := mustGrid(t, 9, 4, WithSeed(seed))
		g.Randomize()
		for i := 0; i < g.CellCount(); i++ {
			if n := g.neighborCount(i); n < 0 || n > 8 {
				t.Fatalf("seed %d index %d: neighbor count %d", seed, i, n)
			}
		}
	}

	full := mustGrid(t, 4, 4)
	for i := 0; i < full.CellCount(); i++ {
		full.ToggleCell(i)
	}
	for i := 0; i < full.CellCount(); i++ {
		if n := full.neighborCount(i); n != 8 {
			t.Fatalf("full grid index %d: neighbor count %d, want 8", i, n)
		}
	}
}

func TestRandomizeIsUnbiased(t *testing.T) {
	const trials = 100
	g := mustGrid(t, 40, 25, WithSeed(42))

	var (
		alive  int
		hashes = map[string]bool{}
	)
	for range trials {
		g.Randomize()
		alive += g.CountLivingCells()
		hashes[g.Hash()] = true
	}

	fraction := float64(alive) / float64(trials*g.CellCount())
	if math.Abs(fraction-0.5) > 0.02 {
		t.Errorf("alive fraction = %.4f, want close to 0.5", fraction)
	}
	if len(hashes) != trials {
		t.Errorf("got %d distinct configurations out of %d", len(hashes), trials)
	}
}

func TestWithSeedIsDeterministic(t *testing.T) {
	a := mustGrid(t, 10, 10, WithSeed(99))
	b := mustGrid(t, 10, 10, WithSeed(99))
	a.Randomize()
	b.Randomize()
	if a.Hash() != b.Hash() {
		t.Fatal("same seed produced different boards")
	}
}

func TestCellOutOfRangeReadsDead(t *testing.T) {
	g := mustGrid(t, 2, 2)
	for i := 0; i < 4; i++ {
		g.ToggleCell(i)
	}
	if g.Cell(-1) || g.Cell(4) {
		t.Fatal("out-of-range Cell reported alive")
	}
}
