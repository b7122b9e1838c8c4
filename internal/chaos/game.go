package chaos

import (
	"math/rand/v2"
)

// Source supplies uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSeededSource returns a deterministic PCG-backed source.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSeed draws a fresh seed from the runtime's entropy.
func NewSeed() uint64 { return rand.Uint64() }

// NewRandomSource returns a source seeded from the runtime's entropy.
func NewRandomSource() Source {
	return NewSeededSource(NewSeed())
}

// Game is one chaos-game walk over a fixed triangle.
type Game struct {
	corners Corners
	width   int
	height  int
	src     Source
}

func NewGame(corners Corners, width, height int, src Source) *Game {
	return &Game{corners: corners, width: width, height: height, src: src}
}

// Corners returns the triangle the game walks toward.
func (g *Game) Corners() Corners { return g.corners }

// Run emits exactly n points to visit: the random start point first, then n-1
// midpoints toward uniformly chosen corners. It stops at the first visit error.
func (g *Game) Run(n int, visit func(Point) error) error {
	if n <= 0 {
		return nil
	}
	p := Point{X: g.src.IntN(g.width), Y: g.src.IntN(g.height)}
	if err := visit(p); err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		corner := g.corners[g.src.IntN(len(g.corners))]
		p = Midpoint(p, corner)
		if err := visit(p); err != nil {
			return err
		}
	}
	return nil
}

// Points collects the n points a Run would emit.
func (g *Game) Points(n int) []Point {
	if n <= 0 {
		return nil
	}
	out := make([]Point, 0, n)
	_ = g.Run(n, func(p Point) error {
		out = append(out, p)
		return nil
	})
	return out
}
