package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardStateZeroed(t *testing.T) {
	s := NewBoardState()
	grid := s.Grid()

	require.Len(t, grid, BoardSize)
	for y, row := range grid {
		require.Len(t, row, BoardSize, "row %d", y)
		for x, v := range row {
			assert.Zero(t, v, "cell (%d,%d)", x, y)
		}
	}
	assert.True(t, grid.Empty())
	assert.Equal(t, BoardModule, s.Name())
	assert.Equal(t, []string{BoardField}, s.Names())
}

func TestBoardStatesIndependent(t *testing.T) {
	a := NewBoardState()
	b := NewBoardState()

	a.Observe().Update(func(g Board) Board {
		g[1][2] = 8
		return g
	})

	assert.Equal(t, 8, a.Grid()[1][2])
	assert.Zero(t, b.Grid()[1][2])
	assert.True(t, b.Grid().Empty())
}

func TestGridReturnsCopy(t *testing.T) {
	s := NewBoardState()
	g := s.Grid()
	g[0][0] = 2

	assert.Zero(t, s.Grid()[0][0])
}

func TestBoardString(t *testing.T) {
	var b Board
	b[0][3] = 2
	b[3][0] = 1024

	want := "0 0 0 2\n0 0 0 0\n0 0 0 0\n1024 0 0 0"
	assert.Equal(t, want, b.String())
}

func TestRegisterDuplicate(t *testing.T) {
	m := NewModule("test")
	Register(m, "score", 0)

	_, err := TryRegister(m, "score", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateField))

	assert.Panics(t, func() { Register(m, "score", 2) })
}

func TestModuleSnapshot(t *testing.T) {
	m := NewModule("game")
	score := Register(m, "score", 0)
	Register(m, "title", "2048")

	score.Set(12)

	assert.Equal(t, map[string]any{"score": 12, "title": "2048"}, m.Snapshot())

	v, ok := m.Field("score")
	assert.True(t, ok)
	assert.Equal(t, 12, v)

	_, ok = m.Field("missing")
	assert.False(t, ok)
}

func TestNewRootRejectsInvalid(t *testing.T) {
	_, err := NewRoot(map[string]*Module{"": NewModule("x")})
	assert.ErrorIs(t, err, ErrInvalidModule)

	_, err = NewRoot(map[string]*Module{"board": nil})
	assert.ErrorIs(t, err, ErrInvalidModule)
}

func TestRootState(t *testing.T) {
	app := NewApp()

	assert.Equal(t, []string{BoardModule}, app.Modules())

	m, ok := app.Module(BoardModule)
	require.True(t, ok)
	assert.Same(t, app.Board.Module, m)

	state := app.State()
	require.Contains(t, state, BoardModule)
	assert.Equal(t, Board{}, state[BoardModule][BoardField])
}

func TestRootSubscribe(t *testing.T) {
	app := NewApp()

	var changes []Change
	cancel := app.Subscribe(func(c Change) { changes = append(changes, c) })

	var next Board
	next[0][0] = 2
	app.Board.Observe().Set(next)

	require.Len(t, changes, 1)
	assert.Equal(t, BoardModule, changes[0].Module)
	assert.Equal(t, BoardField, changes[0].Field)
	assert.Equal(t, next, changes[0].Value)

	cancel()
	cancel()
	app.Board.Observe().Set(Board{})
	assert.Len(t, changes, 1)
}

func TestRootMultipleModules(t *testing.T) {
	board := NewBoardState()
	meta := NewModule("meta")
	moves := Register(meta, "moves", 0)

	root, err := NewRoot(map[string]*Module{
		"board": board.Module,
		"meta":  meta,
	})
	require.NoError(t, err)

	var got []string
	root.Subscribe(func(c Change) { got = append(got, c.Module+"."+c.Field) })

	moves.Set(1)
	board.Observe().Set(Board{})

	assert.Equal(t, []string{"meta.moves", "board.board"}, got)
	assert.Equal(t, []string{"board", "meta"}, root.Modules())
}
