package agent

import (
	"littlego/experiments/metrics"
	"littlego/game"
	"littlego/searcher"
)

type alphaBetaAgent struct {
	search *searcher.AlphaBeta
	depth  int
}

// NewAlphaBetaAgent returns an agent searching to a fixed depth, or following
// DepthForMove when depth is 0.
func NewAlphaBetaAgent(search *searcher.AlphaBeta, depth int) Agent {
	if depth < 0 {
		panic("depth cannot be negative")
	}
	return alphaBetaAgent{search: search, depth: depth}
}

func (a alphaBetaAgent) FindMove(state game.State) (game.Coordinate, metrics.SearchMetric) {
	depth := a.depth
	if depth == 0 {
		depth = DepthForMove(state.Moves)
	}
	return a.search.Search(&state.Current, &state.Previous, state.ToMove, depth)
}
