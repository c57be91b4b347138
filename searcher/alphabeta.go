package searcher

import (
	"fmt"
	"littlego/experiments/metrics"
	"littlego/game"
	"math"

	"github.com/rs/zerolog"
)

type Option func(ab *AlphaBeta)

// AlphaBeta is a depth-limited minimax search with alpha-beta pruning.
type AlphaBeta struct {
	evaluate game.Evaluate
	metrics  metrics.Collector
	logger   zerolog.Logger
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(ab *AlphaBeta) {
		if collector != nil {
			ab.metrics = collector
		}
	}
}

// WithLogger traces the value of every root candidate at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(ab *AlphaBeta) {
		ab.logger = logger
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		evaluate: game.Score,
		metrics:  metrics.NewDummyCollector(),
		logger:   zerolog.Nop(),
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

// FindMove returns the move chosen for color and its minimax value. previous is
// the position before the opponent's last move; it is only read, for the ko rule.
func (ab *AlphaBeta) FindMove(current, previous *game.Board, color game.Color, depth int) (game.Coordinate, float64) {
	move, metric := ab.Search(current, previous, color, depth)
	return move, metric.Value
}

// Search is FindMove that also reports search metrics.
func (ab *AlphaBeta) Search(current, previous *game.Board, color game.Color, depth int) (game.Coordinate, metrics.SearchMetric) {
	if depth < 1 {
		panic(game.ContractViolation{Op: "AlphaBeta.Search", Detail: fmt.Sprintf("depth %d is below 1", depth)})
	}

	s := &search{
		AlphaBeta: ab,
		board:     *current,
		root:      color,
		depth:     depth,
		move:      game.Pass,
	}
	ab.metrics.Start(depth)
	value := s.alphaBeta(depth, previous, color, math.Inf(-1), math.Inf(1))
	metric := ab.metrics.Complete(value)
	metric.Depth = depth
	metric.Value = value
	return s.move, metric
}

// search holds the state of one FindMove call. The board is mutated in place:
// every move applied while exploring is undone before the next sibling is tried.
type search struct {
	*AlphaBeta
	board game.Board
	root  game.Color
	depth int
	move  game.Coordinate
}

func (s *search) alphaBeta(depth int, previous *game.Board, color game.Color, alpha, beta float64) float64 {
	s.metrics.AddNode()
	if depth == 0 {
		s.metrics.AddLeaf()
		return s.evaluate(&s.board, s.root)
	}

	candidates := s.board.LegalMoves(s.board.EmptyCells(), color, previous)
	candidates = append(candidates, game.PassCandidate)
	// Children check ko against the position before their parent's move
	snapshot := s.board

	if color == s.root {
		best := math.Inf(-1)
		for _, c := range candidates {
			s.board.Apply(c, color)
			value := s.alphaBeta(depth-1, &snapshot, color.Opponent(), alpha, beta)
			s.board.Undo(c, color)

			if depth == s.depth {
				s.logger.Debug().Str("move", c.Move.String()).Float64("value", value).Msg("root candidate")
			}
			if value > best {
				if depth == s.depth {
					s.move = c.Move
				}
				best = value
			}
			alpha = max(alpha, best)
			if beta <= alpha {
				s.metrics.AddCutoff()
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, c := range candidates {
		s.board.Apply(c, color)
		value := s.alphaBeta(depth-1, &snapshot, color.Opponent(), alpha, beta)
		s.board.Undo(c, color)

		best = min(best, value)
		beta = min(beta, best)
		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}
	return best
}
