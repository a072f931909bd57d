package tictactoe

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAction = errors.New("invalid action")
	ErrNotTerminal   = errors.New("board is not terminal")

	// WinLines lists rows, then columns, then the two diagonals.
	WinLines = [8][Size]Action{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}
)

// Outcome is derived from a board and never stored on it.
type Outcome uint8

const (
	InProgress Outcome = iota
	FirstWins
	SecondWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return "first_wins"
	case SecondWins:
		return "second_wins"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// InitialState returns the empty board.
func InitialState() Board {
	return Board{}
}

func occupiedCount(board Board) int {
	count := 0
	for _, row := range board {
		for _, cell := range row {
			if !cell.IsEmpty() {
				count++
			}
		}
	}

	return count
}

// CurrentPlayer returns the mark to move. It is derived from the number of
// occupied cells; false means the board is full.
func CurrentPlayer(board Board) (Mark, bool) {
	count := occupiedCount(board)
	if count == Size*Size {
		return 0, false
	}

	if count%2 == 0 {
		return First, true
	}

	return Second, true
}

// LegalActions returns every empty cell in row-major order.
func LegalActions(board Board) []Action {
	actions := make([]Action, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if board[row][col].IsEmpty() {
				actions = append(actions, Action{Row: row, Col: col})
			}
		}
	}

	return actions
}

// Apply returns a copy of board with the current player's mark placed at
// action. The input board is not modified.
func Apply(board Board, action Action) (Board, error) {
	if !action.inRange() {
		return board, fmt.Errorf("%w: %s is out of range", ErrInvalidAction, action)
	}

	if !board[action.Row][action.Col].IsEmpty() {
		return board, fmt.Errorf("%w: cell %s is occupied", ErrInvalidAction, action)
	}

	// an empty cell exists, so someone is to move
	player, _ := CurrentPlayer(board)

	next := board
	next[action.Row][action.Col] = Occupied(player)

	return next, nil
}

// Winner returns the mark of the first complete line found, false if none.
func Winner(board Board) (Mark, bool) {
	for _, line := range WinLines {
		a := board[line[0].Row][line[0].Col]
		b := board[line[1].Row][line[1].Col]
		c := board[line[2].Row][line[2].Col]

		if !a.IsEmpty() && a == b && b == c {
			return a.mark, true
		}
	}

	return 0, false
}

func (b Board) hasLine(mark Mark) bool {
	for _, line := range WinLines {
		owned := true
		for _, action := range line {
			if b[action.Row][action.Col] != Occupied(mark) {
				owned = false
				break
			}
		}

		if owned {
			return true
		}
	}

	return false
}

// IsTerminal reports whether the game on board has ended.
func IsTerminal(board Board) bool {
	if occupiedCount(board) == Size*Size {
		return true
	}

	_, won := Winner(board)

	return won
}

// Utility scores a terminal board from the first player's perspective:
// 1 for a First win, -1 for a Second win and 0 for a draw.
func Utility(board Board) (int, error) {
	if !IsTerminal(board) {
		return 0, ErrNotTerminal
	}

	return score(board), nil
}

func score(board Board) int {
	switch mark, _ := Winner(board); mark {
	case First:
		return 1
	case Second:
		return -1
	default:
		return 0
	}
}

func OutcomeOf(board Board) Outcome {
	if mark, won := Winner(board); won {
		if mark == First {
			return FirstWins
		}
		return SecondWins
	}

	if occupiedCount(board) == Size*Size {
		return Draw
	}

	return InProgress
}
