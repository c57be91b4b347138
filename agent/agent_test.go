package agent

import (
	"littlego/experiments/metrics"
	"littlego/game"
	"littlego/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDepthForMove(t *testing.T) {
	expected := map[int]int{
		0: 4, 1: 4, 6: 4,
		7: 5, 11: 5,
		12: 5, 19: 5,
		20: 4, 21: 3, 23: 1,
		24: 1, 30: 1, // Never below 1
	}
	for moves, depth := range expected {
		require.Equal(t, depth, DepthForMove(moves), "moves=%d", moves)
	}
}

func TestAlphaBetaAgent(t *testing.T) {
	t.Run("fixed depth", func(t *testing.T) {
		a := NewAlphaBetaAgent(searcher.NewAlphaBeta(), 1)

		move, metric := a.FindMove(game.NewState())

		require.Equal(t, game.Coordinate{Row: 0, Col: 0}, move)
		require.Equal(t, 1, metric.Depth)
		require.Equal(t, 7.5, metric.Value)
	})

	t.Run("depth policy follows the move count", func(t *testing.T) {
		a := NewAlphaBetaAgent(searcher.NewAlphaBeta(searcher.WithMetrics(metrics.NewCollector())), 0)
		state := game.NewState()
		state.Moves = 23

		_, metric := a.FindMove(state)

		require.Equal(t, 1, metric.Depth)
		require.Equal(t, 27, metric.Nodes)
	})

	t.Run("negative depth panics", func(t *testing.T) {
		require.Panics(t, func() { NewAlphaBetaAgent(searcher.NewAlphaBeta(), -1) })
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("same seed replays the same moves", func(t *testing.T) {
		a1, a2 := NewRandomAgent(42), NewRandomAgent(42)
		state := game.NewState()

		for i := 0; i < 10; i++ {
			m1, _ := a1.FindMove(state)
			m2, _ := a2.FindMove(state)
			require.Equal(t, m1, m2)
		}
	})

	t.Run("only plays legal moves", func(t *testing.T) {
		a := NewRandomAgent(7)
		board, err := game.ParseBoard([]string{"01110", "11111", "11011", "11111", "01110"})
		require.NoError(t, err)
		state := game.State{Current: board, Previous: board, ToMove: game.White}

		for i := 0; i < 20; i++ {
			move, _ := a.FindMove(state)
			require.Equal(t, game.Pass, move, "White has no legal placement")
		}
	})
}
