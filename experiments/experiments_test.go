package experiments

import (
	"context"
	"littlego/experiments/metrics"
	"littlego/record"
	"littlego/store"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	outDir, sgfDir := t.TempDir(), t.TempDir()
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	search := metrics.AgentConfig{ID: 1, Kind: "alphabeta", Depth: 1}
	baseline := metrics.AgentConfig{ID: 0, Kind: "random", Seed: 3}
	configs := []metrics.AgentConfig{search, baseline}

	records, err := Run("smoke", configs, [][]metrics.AgentConfig{{search, baseline}}, 2,
		WithOutputDir(outDir), WithSGF(sgfDir), WithStore(s))
	require.NoError(t, err)

	t.Run("colors alternate", func(t *testing.T) {
		require.Len(t, records, 2)
		require.Equal(t, 1, records[0].Black)
		require.Equal(t, 0, records[0].White)
		require.Equal(t, 0, records[1].Black)
		require.Equal(t, 1, records[1].White)
	})

	t.Run("csv records are written", func(t *testing.T) {
		for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			files, err := filepath.Glob(filepath.Join(outDir, "smoke", "*", name))
			require.NoError(t, err)
			require.Len(t, files, 1, name)
		}
	})

	t.Run("games are saved as sgf", func(t *testing.T) {
		g, err := record.Load(filepath.Join(sgfDir, "smoke-002.sgf"))
		require.NoError(t, err)
		require.Equal(t, "random", g.Black)
		require.Equal(t, "alphabeta depth=1", g.White)
		require.Len(t, g.Moves, records[1].TotalMoves)
		require.Equal(t, record.Result(records[1].BlackScore, records[1].WhiteScore), g.Result)
	})

	t.Run("games are archived in the store", func(t *testing.T) {
		matches, err := s.Matches(context.Background(), "smoke")
		require.NoError(t, err)
		require.Len(t, matches, 2)

		for _, m := range matches {
			moves, err := s.Moves(context.Background(), m.ID)
			require.NoError(t, err)
			require.Len(t, moves, m.TotalMoves)
		}
	})

	t.Run("tally counts every game once", func(t *testing.T) {
		wins := Tally(records)
		require.Equal(t, 2, wins[0]+wins[1])
	})
}

func TestTally(t *testing.T) {
	records := []metrics.GameRecord{
		{Black: 1, White: 2, GameMetric: metrics.GameMetric{Winner: "black"}},
		{Black: 2, White: 1, GameMetric: metrics.GameMetric{Winner: "black"}},
		{Black: 1, White: 2, GameMetric: metrics.GameMetric{Winner: "white"}},
	}
	require.Equal(t, map[int]int{1: 1, 2: 2}, Tally(records))
}

func TestAgentName(t *testing.T) {
	require.Equal(t, "alphabeta depth=3", agentName(metrics.AgentConfig{Kind: "alphabeta", Depth: 3}))
	require.Equal(t, "alphabeta depth=policy", agentName(metrics.AgentConfig{Kind: "alphabeta"}))
	require.Equal(t, "random", agentName(metrics.AgentConfig{Kind: "random", Seed: 9}))
}

func TestNewAgentPanicsOnUnknownKind(t *testing.T) {
	require.Panics(t, func() { newAgent(metrics.AgentConfig{Kind: "mcts"}, 1) })
}
