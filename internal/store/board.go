package store

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-swipe/internal/observe"
)

// BoardSize is the width and height of the puzzle board.
const BoardSize = 4

// Board is the puzzle grid. It is an array, so copies never share cells.
type Board [BoardSize][BoardSize]int

// Empty reports whether every cell is zero.
func (b Board) Empty() bool {
	return b == Board{}
}

// String renders the board as rows of space-separated numbers.
func (b Board) String() string {
	var sb strings.Builder
	for y, row := range b {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}

// Module and field names used by the application root.
const (
	BoardModule = "board"
	BoardField  = "board"
)

// BoardState is the module holding the board grid.
// Game logic mutates the grid through Observe().Set or Update.
type BoardState struct {
	*Module
	board *observe.Value[Board]
}

// NewBoardState returns a fresh module with a zeroed 4x4 board.
func NewBoardState() *BoardState {
	m := NewModule(BoardModule)
	return &BoardState{
		Module: m,
		board:  Register(m, BoardField, Board{}),
	}
}

// Grid returns a copy of the current board.
func (s *BoardState) Grid() Board {
	return s.board.Get()
}

// Observe returns the observable board.
func (s *BoardState) Observe() *observe.Value[Board] {
	return s.board
}

// App is the application root: the store plus typed access to its modules.
type App struct {
	*Root
	Board *BoardState
}

// NewApp builds the application root with a single board module.
func NewApp() *App {
	board := NewBoardState()
	root, err := NewRoot(map[string]*Module{
		BoardModule: board.Module,
	})
	if err != nil {
		// Only reachable with a nil module or empty name.
		panic(err)
	}
	return &App{Root: root, Board: board}
}
