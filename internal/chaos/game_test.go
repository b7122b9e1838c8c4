package chaos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws and records the bounds it was asked for.
type scriptedSource struct {
	draws  []int
	bounds []int
}

func (s *scriptedSource) IntN(n int) int {
	s.bounds = append(s.bounds, n)
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v
}

func TestRunFixture(t *testing.T) {
	corners, err := NewCorners(10, 10)
	require.NoError(t, err)
	src := &scriptedSource{draws: []int{3, 7, 2, 0, 1, 1}}

	got := NewGame(corners, 10, 10, src).Points(5)

	assert.Equal(t, []Point{{3, 7}, {4, 3}, {2, 6}, {6, 8}, {8, 9}}, got)
	assert.Equal(t, []int{10, 10, 3, 3, 3, 3}, src.bounds, "start x, start y, then one corner per step")
}

func TestRunSinglePointIsStart(t *testing.T) {
	corners, err := NewCorners(10, 10)
	require.NoError(t, err)
	src := &scriptedSource{draws: []int{6, 2}}

	got := NewGame(corners, 10, 10, src).Points(1)

	assert.Equal(t, []Point{{6, 2}}, got)
	assert.Empty(t, src.draws)
}

func TestRunNonPositive(t *testing.T) {
	corners, err := NewCorners(4, 4)
	require.NoError(t, err)
	g := NewGame(corners, 4, 4, &scriptedSource{})
	assert.Nil(t, g.Points(0))
	assert.Nil(t, g.Points(-3))
}

func TestRunStaysInBounds(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 9}, {9, 1}, {2, 3}, {10, 10}, {317, 89}, {1024, 1024}}
	for _, size := range sizes {
		w, h := size[0], size[1]
		corners, err := NewCorners(w, h)
		require.NoError(t, err)
		for seed := uint64(0); seed < 8; seed++ {
			g := NewGame(corners, w, h, NewSeededSource(seed))
			for _, p := range g.Points(5000) {
				if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
					t.Fatalf("%dx%d seed %d: point %v out of bounds", w, h, seed, p)
				}
			}
		}
	}
}

func TestRunDeterministicWithSeed(t *testing.T) {
	corners, err := NewCorners(10, 10)
	require.NoError(t, err)

	a := NewGame(corners, 10, 10, NewSeededSource(42)).Points(5)
	b := NewGame(corners, 10, 10, NewSeededSource(42)).Points(5)

	assert.Len(t, a, 5)
	assert.Equal(t, a, b)
}

func TestRunStopsOnVisitError(t *testing.T) {
	corners, err := NewCorners(10, 10)
	require.NoError(t, err)
	g := NewGame(corners, 10, 10, NewSeededSource(1))

	stop := assert.AnError
	visited := 0
	err = g.Run(100, func(Point) error {
		visited++
		if visited == 3 {
			return stop
		}
		return nil
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, visited)
}

func TestCornerChoiceIsRoughlyUniform(t *testing.T) {
	src := NewSeededSource(7)
	counts := [3]int{}
	const draws = 30000
	for i := 0; i < draws; i++ {
		counts[src.IntN(3)]++
	}
	for i, c := range counts {
		assert.InDelta(t, draws/3, c, draws*0.03, "corner %d", i)
	}
}
