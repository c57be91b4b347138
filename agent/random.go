package agent

import (
	"littlego/experiments/metrics"
	"littlego/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent playing uniformly among the legal
// moves and pass. The same seed replays the same choices.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.State) (game.Coordinate, metrics.SearchMetric) {
	moves := append(state.LegalMoves(), game.PassCandidate)
	return moves[a.rng.Intn(len(moves))].Move, metrics.SearchMetric{}
}
