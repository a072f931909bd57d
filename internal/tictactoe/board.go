package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

const Size = 3

const (
	symbolX     = 'X'
	symbolO     = 'O'
	symbolEmpty = '.'
)

var ErrInvalidBoard = errors.New("invalid board")

// Mark is one of the two players' symbols.
type Mark uint8

const (
	First Mark = iota + 1
	Second
)

func (m Mark) String() string {
	switch m {
	case First:
		return "X"
	case Second:
		return "O"
	default:
		return "?"
	}
}

// Opponent returns the other mark.
func (m Mark) Opponent() Mark {
	if m == First {
		return Second
	}
	return First
}

// Cell is either empty or occupied by a mark. The zero value is an empty cell.
type Cell struct {
	mark Mark
}

var Empty = Cell{}

func Occupied(m Mark) Cell {
	return Cell{mark: m}
}

func (c Cell) IsEmpty() bool {
	return c.mark == 0
}

// Mark returns the occupying mark, false if the cell is empty.
func (c Cell) Mark() (Mark, bool) {
	return c.mark, c.mark != 0
}

func (c Cell) symbol() byte {
	switch c.mark {
	case First:
		return symbolX
	case Second:
		return symbolO
	default:
		return symbolEmpty
	}
}

// Action references a cell by row and column.
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (a Action) String() string {
	return fmt.Sprintf("(%d,%d)", a.Row, a.Col)
}

func (a Action) inRange() bool {
	return a.Row >= 0 && a.Row < Size && a.Col >= 0 && a.Col < Size
}

// Board is a row-major 3x3 grid. It is a value: copies never share cells.
type Board [Size][Size]Cell

// String encodes the board as 9 symbols, row-major: X, O or '.' for empty.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(Size * Size)

	for _, row := range b {
		for _, cell := range row {
			sb.WriteByte(cell.symbol())
		}
	}

	return sb.String()
}

func (b Board) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Board) UnmarshalText(text []byte) error {
	parsed, err := ParseBoard(string(text))
	if err != nil {
		return err
	}

	*b = parsed

	return nil
}

// ParseBoard decodes the 9-symbol form produced by Board.String. The result
// must be reachable by alternating play from the initial state.
func ParseBoard(s string) (Board, error) {
	var board Board

	if len(s) != Size*Size {
		return board, fmt.Errorf("%w: expected %d symbols, got %d", ErrInvalidBoard, Size*Size, len(s))
	}

	for i := 0; i < len(s); i++ {
		var cell Cell
		switch s[i] {
		case symbolX:
			cell = Occupied(First)
		case symbolO:
			cell = Occupied(Second)
		case symbolEmpty:
			cell = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected symbol %q at %d", ErrInvalidBoard, s[i], i)
		}
		board[i/Size][i%Size] = cell
	}

	if err := board.validate(); err != nil {
		return Board{}, err
	}

	return board, nil
}

func (b Board) validate() error {
	var first, second int
	for _, row := range b {
		for _, cell := range row {
			switch mark, _ := cell.Mark(); mark {
			case First:
				first++
			case Second:
				second++
			}
		}
	}

	if diff := first - second; diff < 0 || diff > 1 {
		return fmt.Errorf("%w: %d X marks against %d O marks", ErrInvalidBoard, first, second)
	}

	if b.hasLine(First) && b.hasLine(Second) {
		return fmt.Errorf("%w: both players have a winning line", ErrInvalidBoard)
	}

	return nil
}
