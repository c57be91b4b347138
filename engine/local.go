package engine

import (
	"fmt"
	"littlego/agent"
	"littlego/experiments/metrics"
	"littlego/game"
	"time"

	"github.com/rs/zerolog/log"
)

// LocalEngine plays a game between two in-process agents, Black moving first.
type LocalEngine struct {
	State  game.State
	Agents map[game.Color]agent.Agent
	Moves  []game.Coordinate // Move list in play order, passes included
}

func NewLocalEngine(black, white agent.Agent) *LocalEngine {
	if black == nil || white == nil {
		panic("need two agents")
	}
	return &LocalEngine{
		State:  game.NewState(),
		Agents: map[game.Color]agent.Agent{game.Black: black, game.White: white},
	}
}

// Run executes the entire game loop until the game is over.
func (e *LocalEngine) Run() (game.Color, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.ToMove.String(),
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Debug().Msgf("%s is starting", e.State.ToMove)

	for !e.State.Over() {
		player := e.State.ToMove
		move, searchMetric := e.Agents[player].FindMove(e.State)

		next, err := e.State.Play(move)
		if err != nil {
			return 0, gameMetric, moveMetrics, fmt.Errorf("move %d: %w", e.State.Moves+1, err)
		}
		e.State = next
		e.Moves = append(e.Moves, move)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         e.State.Moves,
			Player:       player.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("move %d: %s plays %s", e.State.Moves, player, move)
	}

	winner := e.State.Winner()
	gameMetric.Winner = winner.String()
	gameMetric.BlackScore, gameMetric.WhiteScore = e.State.Result()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.State.Moves
	return winner, gameMetric, moveMetrics, nil
}
