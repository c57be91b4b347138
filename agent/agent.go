package agent

import (
	"littlego/experiments/metrics"
	"littlego/game"
)

type Agent interface {
	// FindMove returns the move to play in state and performance metrics (if collected) from the search
	FindMove(state game.State) (game.Coordinate, metrics.SearchMetric)
}

// DepthForMove is the search depth used for the given number of moves already
// played: shallow in the opening, deeper mid-game, and no further than the
// move limit near the end.
func DepthForMove(moves int) int {
	depth := 5
	switch {
	case moves <= 6:
		depth = 4
	case moves >= 12 && moves <= 19:
		depth = 5
	case moves >= 20:
		depth = 24 - moves
	}
	return max(depth, 1)
}
