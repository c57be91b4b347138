package game

import (
	"fmt"
	"littlego/meta"
)

// State is a position in a game: the board, the board before the last move
// (the ko snapshot), and whose turn it is.
type State struct {
	Current  Board
	Previous Board
	ToMove   Color
	Moves    int // Moves played so far, passes included
	Passes   int // Consecutive passes ending the move list
}

// NewState returns the starting position: an empty board with Black to move.
func NewState() State {
	return State{ToMove: Black}
}

// LegalMoves lists the stone placements available to the player to move, in
// row-major order. Passing is always legal and is not included.
func (s *State) LegalMoves() []Candidate {
	return s.Current.LegalMoves(s.Current.EmptyCells(), s.ToMove, &s.Previous)
}

// Play returns the state after the player to move plays move.
func (s State) Play(move Coordinate) (State, error) {
	next := s
	next.Previous = s.Current
	next.ToMove = s.ToMove.Opponent()
	next.Moves++

	if move.IsPass() {
		next.Passes++
		return next, nil
	}
	if !move.InBounds() || s.Current.At(move) != Empty {
		return s, fmt.Errorf("%w: %v for %v", ErrIllegalMove, move, s.ToMove)
	}
	legal := s.Current.LegalMoves([]Coordinate{move}, s.ToMove, &s.Previous)
	if len(legal) == 0 {
		return s, fmt.Errorf("%w: %v for %v", ErrIllegalMove, move, s.ToMove)
	}
	next.Current.Apply(legal[0], s.ToMove)
	next.Passes = 0
	return next, nil
}

// Over reports whether both players passed in a row or the move limit is reached.
func (s *State) Over() bool {
	return s.Passes >= 2 || s.Moves >= meta.MaxMoves
}

// Result counts stones on the board, with komi added for White.
func (s *State) Result() (black, white float64) {
	return float64(s.Current.Count(Black)), float64(s.Current.Count(White)) + meta.Komi
}

// Winner is the color with the higher result. Komi makes ties impossible.
func (s *State) Winner() Color {
	black, white := s.Result()
	if black > white {
		return Black
	}
	return White
}
