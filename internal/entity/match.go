package entity

import (
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	PlayerEngine = "engine"
	PlayerHuman  = "human"
)

// Match is the persisted history of one game played over the core.
type Match struct {
	ID      string             `json:"id"`
	PlayerX string             `json:"player_x"`
	PlayerO string             `json:"player_o"`
	Board   tictactoe.Board    `json:"board"`
	Moves   []tictactoe.Action `json:"moves"`
	Outcome string             `json:"outcome"`
}

func NewMatch(id, playerX, playerO string) *Match {
	board := tictactoe.InitialState()

	return &Match{
		ID:      id,
		PlayerX: playerX,
		PlayerO: playerO,
		Board:   board,
		Moves:   []tictactoe.Action{},
		Outcome: tictactoe.OutcomeOf(board).String(),
	}
}

// Play applies action to the match board and records it.
func (that *Match) Play(action tictactoe.Action) error {
	next, err := tictactoe.Apply(that.Board, action)
	if err != nil {
		return err
	}

	that.Board = next
	that.Moves = append(that.Moves, action)
	that.Outcome = tictactoe.OutcomeOf(next).String()

	return nil
}

func (that *Match) IsFinished() bool {
	return tictactoe.IsTerminal(that.Board)
}

// PlayerToMove returns who plays the next mark, empty once the match is over.
func (that *Match) PlayerToMove() string {
	if that.IsFinished() {
		return ""
	}

	mark, _ := tictactoe.CurrentPlayer(that.Board)
	if mark == tictactoe.First {
		return that.PlayerX
	}

	return that.PlayerO
}
