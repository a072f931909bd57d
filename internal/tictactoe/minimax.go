package tictactoe

// BestMove returns the optimal action for the player to move, false if the
// board is terminal. Among equally scored actions the first one in row-major
// order wins.
func BestMove(board Board) (Action, bool) {
	if IsTerminal(board) {
		return Action{}, false
	}

	player, _ := CurrentPlayer(board)
	maximizing := player == First

	var (
		best      Action
		bestScore int
		found     bool
	)

	for _, action := range LegalActions(board) {
		// the opponent answers, so the child is scored from their side
		value := minimax(mustApply(board, action), !maximizing)

		if !found || improves(value, bestScore, maximizing) {
			best, bestScore, found = action, value, true
		}
	}

	return best, found
}

// EvaluateForMaximizer is the value of board when First is to choose.
func EvaluateForMaximizer(board Board) int {
	return minimax(board, true)
}

// EvaluateForMinimizer is the value of board when Second is to choose.
func EvaluateForMinimizer(board Board) int {
	return minimax(board, false)
}

func minimax(board Board, maximizing bool) int {
	if IsTerminal(board) {
		return score(board)
	}

	var (
		value int
		seen  bool
	)

	for _, action := range LegalActions(board) {
		child := minimax(mustApply(board, action), !maximizing)

		if !seen || improves(child, value, maximizing) {
			value, seen = child, true
		}
	}

	return value
}

func improves(candidate, incumbent int, maximizing bool) bool {
	if maximizing {
		return candidate > incumbent
	}
	return candidate < incumbent
}

// mustApply is only called with actions taken from LegalActions(board).
func mustApply(board Board, action Action) Board {
	next, err := Apply(board, action)
	if err != nil {
		panic(err)
	}

	return next
}
