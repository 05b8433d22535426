package render_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)

	return s
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		x, y int
		want grid.Position
	}{
		{0, 0, grid.Position{Row: 0, Col: 0}},
		{1, 0, grid.Position{Row: 0, Col: 0}},
		{2, 0, grid.Position{Row: 0, Col: 1}},
		{9, 4, grid.Position{Row: 4, Col: 4}},
		{-1, 3, grid.Position{Row: 3, Col: -1}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, render.CellAt(tc.x, tc.y), "CellAt(%d,%d)", tc.x, tc.y)
	}
}

func TestCellAt_OriginRoundTrip(t *testing.T) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			p := grid.Position{Row: r, Col: c}
			x, y := render.Origin(p)
			assert.Equal(t, p, render.CellAt(x, y))
			assert.Equal(t, p, render.CellAt(x+render.CellWidth-1, y))
		}
	}
}

func TestStyle_DistinctPerState(t *testing.T) {
	states := []grid.State{grid.Empty, grid.Start, grid.End, grid.Barrier, grid.Frontier, grid.Visited, grid.Path}
	seen := map[tcell.Color]grid.State{}
	for _, st := range states {
		_, bg, _ := render.Style(st).Decompose()
		prev, dup := seen[bg]
		assert.False(t, dup, "%s shares its background with %s", st, prev)
		seen[bg] = st
	}
	assert.Equal(t, render.Style(grid.Empty), render.Style(grid.State(99)))
	assert.Equal(t, '?', render.Glyph(grid.State(-1)))
}

func TestDraw(t *testing.T) {
	g, err := grid.Parse(
		"S.#",
		"..E",
	)
	require.NoError(t, err)
	s := newScreen(t, 10, 4)

	render.Draw(s, g)
	s.Show()

	mainc, _, style, _ := s.GetContent(0, 0)
	assert.Equal(t, 'S', mainc)
	assert.Equal(t, render.Style(grid.Start), style)

	_, _, style, _ = s.GetContent(5, 0)
	assert.Equal(t, render.Style(grid.Barrier), style, "second column of the barrier cell")

	mainc, _, style, _ = s.GetContent(4, 1)
	assert.Equal(t, 'E', mainc)
	assert.Equal(t, render.Style(grid.End), style)

	_, _, style, _ = s.GetContent(6, 0)
	assert.NotEqual(t, render.Style(grid.Empty), style, "nothing drawn right of the grid")
}

func TestDrawCell_FollowsMarks(t *testing.T) {
	g, err := grid.Parse("S..E")
	require.NoError(t, err)
	s := newScreen(t, 8, 1)

	c := g.Cell(0, 1)
	require.True(t, c.Mark(grid.Visited))
	render.DrawCell(s, c)
	s.Show()

	_, _, style, _ := s.GetContent(2, 0)
	assert.Equal(t, render.Style(grid.Visited), style)
}

func TestDrawText(t *testing.T) {
	s := newScreen(t, 12, 2)
	render.DrawText(s, 1, 1, "ready", render.StyleStatus)
	s.Show()

	for i, want := range "ready" {
		mainc, _, style, _ := s.GetContent(1+i, 1)
		assert.Equal(t, want, mainc)
		assert.Equal(t, render.StyleStatus, style)
	}
}
