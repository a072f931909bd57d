package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Board {
	t.Helper()

	board, err := ParseBoard(s)
	require.NoError(t, err)

	return board
}

func TestInitialState(t *testing.T) {
	// Given: the initial board
	board := InitialState()

	// When: querying it
	player, ok := CurrentPlayer(board)
	_, won := Winner(board)

	// Then: X moves first on an open board with nine actions
	require.True(t, ok)
	assert.Equal(t, First, player)
	assert.Len(t, LegalActions(board), 9)
	assert.False(t, IsTerminal(board))
	assert.False(t, won)
	assert.Equal(t, InProgress, OutcomeOf(board))
	assert.Equal(t, ".........", board.String())
}

func TestCurrentPlayer(t *testing.T) {
	t.Run("Alternates along a sequence of moves", func(t *testing.T) {
		// Given: the initial board
		board := InitialState()
		expected := First

		for _, action := range []Action{{1, 1}, {0, 0}, {2, 2}, {0, 2}, {0, 1}, {2, 1}, {1, 0}, {1, 2}, {2, 0}} {
			// When: a move is applied
			player, ok := CurrentPlayer(board)
			require.True(t, ok)

			// Then: the player to move strictly alternates
			assert.Equal(t, expected, player)

			var err error
			board, err = Apply(board, action)
			require.NoError(t, err)

			expected = expected.Opponent()
		}
	})

	t.Run("Returns false on a full board", func(t *testing.T) {
		// Given: a full board
		board := mustParse(t, "XOXXOOOXX")

		// When: asking whose turn it is
		_, ok := CurrentPlayer(board)

		// Then: nobody is to move
		assert.False(t, ok)
	})
}

func TestApply(t *testing.T) {
	t.Run("Changes exactly one cell and leaves the input untouched", func(t *testing.T) {
		// Given: a board in progress
		board := mustParse(t, "XO.......")
		snapshot := board

		for _, action := range LegalActions(board) {
			// When: applying a legal action
			next, err := Apply(board, action)
			require.NoError(t, err)

			// Then: only the targeted cell differs and holds the mover's mark
			diff := 0
			for row := 0; row < Size; row++ {
				for col := 0; col < Size; col++ {
					if next[row][col] != board[row][col] {
						diff++
						assert.Equal(t, Action{row, col}, action)
						assert.Equal(t, Occupied(First), next[row][col])
					}
				}
			}
			assert.Equal(t, 1, diff)
			assert.Equal(t, snapshot, board)
		}
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		// Given: a board where (0,0) is taken
		board := mustParse(t, "X........")

		// When: placing a mark on it
		_, err := Apply(board, Action{Row: 0, Col: 0})

		// Then: ErrInvalidAction is returned
		require.ErrorIs(t, err, ErrInvalidAction)
	})

	t.Run("Error on out of range coordinates", func(t *testing.T) {
		board := InitialState()

		for _, action := range []Action{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}} {
			_, err := Apply(board, action)
			assert.ErrorIs(t, err, ErrInvalidAction, "action %s", action)
		}
	})
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name  string
		board string
		mark  Mark
		won   bool
	}{
		{name: "row X", board: "XXXOO....", mark: First, won: true},
		{name: "column O", board: "XOX.OX.O.", mark: Second, won: true},
		{name: "anti diagonal O", board: "XXOXO.O..", mark: Second, won: true},
		{name: "main diagonal X among mixed cells", board: "XOOOXXOXX", mark: First, won: true},
		{name: "no winner", board: "XO.X.O...", won: false},
		{name: "draw", board: "XOXXOOOXX", won: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board
			board := mustParse(t, tt.board)

			// When: looking for a winner
			mark, won := Winner(board)

			// Then: the expected mark is found
			assert.Equal(t, tt.won, won)
			if tt.won {
				assert.Equal(t, tt.mark, mark)
			}
		})
	}
}

func TestIsTerminalAndUtility(t *testing.T) {
	t.Run("Drawn board", func(t *testing.T) {
		// Given: a full board without a line
		board := mustParse(t, "XOXXOOOXX")

		// When: evaluating it
		value, err := Utility(board)

		// Then: it is terminal, a draw and has no best move
		require.NoError(t, err)
		assert.True(t, IsTerminal(board))
		assert.Equal(t, 0, value)
		assert.Equal(t, Draw, OutcomeOf(board))
		assert.Empty(t, LegalActions(board))

		_, ok := BestMove(board)
		assert.False(t, ok)
	})

	t.Run("Won boards score from X's perspective", func(t *testing.T) {
		xWins := mustParse(t, "XXXOO....")
		oWins := mustParse(t, "XXOXO.O..")

		value, err := Utility(xWins)
		require.NoError(t, err)
		assert.Equal(t, 1, value)
		assert.Equal(t, FirstWins, OutcomeOf(xWins))

		value, err = Utility(oWins)
		require.NoError(t, err)
		assert.Equal(t, -1, value)
		assert.Equal(t, SecondWins, OutcomeOf(oWins))
	})

	t.Run("Won board with empty cells is terminal", func(t *testing.T) {
		board := mustParse(t, "XXXOO....")

		assert.True(t, IsTerminal(board))
		assert.NotEmpty(t, LegalActions(board))
	})

	t.Run("Error on non terminal board", func(t *testing.T) {
		// Given: a board in progress
		board := mustParse(t, "X...O....")

		// When: asking for its utility
		_, err := Utility(board)

		// Then: ErrNotTerminal is returned
		require.ErrorIs(t, err, ErrNotTerminal)
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		board := mustParse(t, "XO.X.O...")

		assert.Equal(t, "XO.X.O...", board.String())
		assert.Equal(t, Occupied(Second), board[0][1])
		assert.Equal(t, Empty, board[0][2])
	})

	tests := []struct {
		name  string
		board string
	}{
		{name: "too short", board: "XO"},
		{name: "unknown symbol", board: "XO.Z....."},
		{name: "O moved first", board: "O........"},
		{name: "X moved twice", board: "XX......."},
		{name: "both players won", board: "XXXOOO..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBoard(tt.board)
			assert.ErrorIs(t, err, ErrInvalidBoard)
		})
	}
}
