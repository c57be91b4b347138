package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatePlay(t *testing.T) {
	t.Run("placing a stone", func(t *testing.T) {
		s := NewState()

		next, err := s.Play(Coordinate{Row: 2, Col: 2})

		require.NoError(t, err)
		require.Equal(t, BlackStone, next.Current.At(Coordinate{Row: 2, Col: 2}))
		require.True(t, next.Previous.IsEmpty(), "Previous should be the board before the move")
		require.Equal(t, White, next.ToMove)
		require.Equal(t, 1, next.Moves)
		require.True(t, s.Current.IsEmpty(), "Play should not modify the receiver")
	})

	t.Run("capturing removes stones", func(t *testing.T) {
		s := State{Current: mustParse(t, "20000", "10000", "00000", "00000", "00000"), ToMove: Black}

		next, err := s.Play(Coordinate{Row: 0, Col: 1})

		require.NoError(t, err)
		require.Equal(t, Empty, next.Current.At(Coordinate{Row: 0, Col: 0}))
		require.Equal(t, 2, next.Current.Count(Black))
	})

	t.Run("illegal moves are errors", func(t *testing.T) {
		s := State{Current: mustParse(t, koCurrent...), Previous: mustParse(t, koPrevious...), ToMove: Black}

		_, err := s.Play(Coordinate{Row: 1, Col: 2})
		require.ErrorIs(t, err, ErrIllegalMove, "Ko retake")

		_, err = s.Play(Coordinate{Row: 0, Col: 1})
		require.ErrorIs(t, err, ErrIllegalMove, "Occupied point")

		_, err = s.Play(Coordinate{Row: 7, Col: 1})
		require.ErrorIs(t, err, ErrIllegalMove, "Off the board")
	})

	t.Run("two passes end the game", func(t *testing.T) {
		s := NewState()
		s, err := s.Play(Pass)
		require.NoError(t, err)
		require.False(t, s.Over())

		s, err = s.Play(Pass)
		require.NoError(t, err)
		require.True(t, s.Over())
		require.Equal(t, 2, s.Passes)
	})

	t.Run("a stone resets the pass count", func(t *testing.T) {
		s := NewState()
		s, _ = s.Play(Pass)
		s, err := s.Play(Coordinate{Row: 0, Col: 0})

		require.NoError(t, err)
		require.Equal(t, 0, s.Passes)
	})
}

func TestStateResult(t *testing.T) {
	t.Run("komi wins an empty board for White", func(t *testing.T) {
		s := NewState()

		black, white := s.Result()
		require.Equal(t, 0.0, black)
		require.Equal(t, 2.5, white)
		require.Equal(t, White, s.Winner())
	})

	t.Run("more stones beat komi", func(t *testing.T) {
		s := State{Current: mustParse(t, "11100", "11000", "00000", "00200", "00000")}

		require.Equal(t, Black, s.Winner())
	})

	t.Run("move limit ends the game", func(t *testing.T) {
		s := State{Moves: 24}

		require.True(t, s.Over())
	})
}
