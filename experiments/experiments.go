package experiments

import (
	"context"
	"fmt"
	"littlego/agent"
	"littlego/engine"
	"littlego/experiments/metrics"
	"littlego/game"
	"littlego/record"
	"littlego/searcher"
	"littlego/store"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const NumGames = 10 // Per match up

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "alphabeta", Depth: 1},
	{ID: 2, Kind: "alphabeta", Depth: 2},
	{ID: 3, Kind: "alphabeta", Depth: 3},
	{ID: 4, Kind: "alphabeta"}, // Move-count depth policy
}

type Option func(r *runner)

type runner struct {
	outDir string
	sgfDir string
	store  *store.Store
}

// WithOutputDir writes the CSV records under dir instead of "results".
func WithOutputDir(dir string) Option {
	return func(r *runner) {
		if dir != "" {
			r.outDir = dir
		}
	}
}

// WithSGF saves every game as an SGF file in dir.
func WithSGF(dir string) Option {
	return func(r *runner) {
		r.sgfDir = dir
	}
}

// WithStore archives every game in s.
func WithStore(s *store.Store) Option {
	return func(r *runner) {
		r.store = s
	}
}

// RunDepthExperiment pairs each search depth against a seeded random baseline.
func RunDepthExperiment(games int, options ...Option) ([]metrics.GameRecord, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: "random", Seed: 1}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline})
	}
	return Run("depth", append(depthConfigs, baseline), matchUps, games, options...)
}

// RunPolicyExperiment pairs the move-count depth policy against each fixed depth.
func RunPolicyExperiment(games int, options ...Option) ([]metrics.GameRecord, error) {
	policy := depthConfigs[len(depthConfigs)-1]
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs[:len(depthConfigs)-1] {
		matchUps = append(matchUps, []metrics.AgentConfig{policy, config})
	}
	return Run("policy", depthConfigs, matchUps, games, options...)
}

// Run plays games for every match up, alternating colors between games, and
// stores the results.
func Run(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, games int, options ...Option) ([]metrics.GameRecord, error) {
	r := &runner{outDir: "results"}
	for _, option := range options {
		option(r)
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < games; i++ {
			black, white := config1, config2
			if i%2 == 1 {
				black, white = config2, config1
			}
			count++

			e := engine.NewLocalEngine(newAgent(black, count), newAgent(white, count))
			winner, gameMetric, moveMetrics, err := e.Run()
			if err != nil {
				return gameRecords, fmt.Errorf("game %d: %w", count, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			if err := r.archive(name, count, black, white, e, gameMetric, moveMetrics); err != nil {
				return gameRecords, err
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	if err := r.write(name, configs, gameRecords, moveRecords); err != nil {
		return gameRecords, err
	}
	return gameRecords, nil
}

func (r *runner) write(name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(r.outDir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// archive saves a finished game as SGF and in the match store, when configured.
func (r *runner) archive(name string, id int, black, white metrics.AgentConfig, e *engine.LocalEngine, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric) error {
	if r.sgfDir != "" {
		g := record.Game{
			Black:  agentName(black),
			White:  agentName(white),
			Moves:  e.Moves,
			Result: record.Result(gameMetric.BlackScore, gameMetric.WhiteScore),
		}
		path := filepath.Join(r.sgfDir, fmt.Sprintf("%s-%03d.sgf", name, id))
		if err := record.Save(path, g); err != nil {
			return err
		}
	}

	if r.store != nil {
		match := store.Match{
			Experiment: name,
			BlackAgent: black.ID,
			WhiteAgent: white.ID,
			Winner:     gameMetric.Winner,
			BlackScore: gameMetric.BlackScore,
			WhiteScore: gameMetric.WhiteScore,
			TotalMoves: gameMetric.TotalMoves,
			StartedAt:  gameMetric.StartTime,
			EndedAt:    gameMetric.EndTime,
		}
		for i, mm := range moveMetrics {
			move := e.Moves[i]
			match.Moves = append(match.Moves, store.Move{
				Step:  mm.Step,
				Color: mm.Player,
				Row:   move.Row,
				Col:   move.Col,
				Depth: mm.Depth,
				Nodes: mm.Nodes,
				Value: mm.Value,
			})
		}
		if _, err := r.store.SaveMatch(context.Background(), match); err != nil {
			return fmt.Errorf("failed to archive game %d: %w", id, err)
		}
	}
	return nil
}

func newAgent(config metrics.AgentConfig, gameID int) agent.Agent {
	switch config.Kind {
	case "alphabeta":
		search := searcher.NewAlphaBeta(searcher.WithMetrics(metrics.NewCollector()))
		return agent.NewAlphaBetaAgent(search, config.Depth)
	case "random":
		// Vary the baseline between games while keeping runs reproducible
		return agent.NewRandomAgent(config.Seed + uint64(gameID))
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}

func agentName(config metrics.AgentConfig) string {
	parts := []string{config.Kind}
	if config.Kind == "alphabeta" {
		depth := "policy"
		if config.Depth > 0 {
			depth = strconv.Itoa(config.Depth)
		}
		parts = append(parts, "depth="+depth)
	}
	return strings.Join(parts, " ")
}

// Tally counts the games won by each agent.
func Tally(records []metrics.GameRecord) map[int]int {
	wins := map[int]int{}
	for _, gr := range records {
		if gr.Winner == game.Black.String() {
			wins[gr.Black]++
		} else {
			wins[gr.White]++
		}
	}
	return wins
}
