package engine

import (
	"littlego/experiments/metrics"
	"littlego/game"
)

type Engine interface {
	// Run plays a game till both players pass in a row or the move limit is reached
	Run() (winner game.Color, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// NextMoveCount derives the number of moves played before the current turn
// from the two boards handed to the player and the count stored after its
// previous turn. Both players move between two consecutive turns.
func NextMoveCount(previous, current game.Board, stored int) int {
	switch {
	case current.IsEmpty() && previous.IsEmpty():
		return 0
	case previous.IsEmpty():
		return 1
	default:
		return stored + 2
	}
}
