package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	// Black stone at 1,2 sits inside White's mouth; White then captures it by playing 1,1.
	koPrevious = []string{
		"01200",
		"10120",
		"01200",
		"00000",
		"00000",
	}
	koCurrent = []string{
		"01200",
		"12020",
		"01200",
		"00000",
		"00000",
	}
	// Every empty point is a single-point eye of one large black group.
	blackEyes = []string{
		"01110",
		"11111",
		"11011",
		"11111",
		"01110",
	}
)

func TestLegalMoves(t *testing.T) {
	t.Run("every point of the empty board is legal", func(t *testing.T) {
		b := NewBoard()
		previous := NewBoard()

		legal := b.LegalMoves(b.EmptyCells(), Black, &previous)

		require.Len(t, legal, 25)
		for i, c := range legal {
			require.Equal(t, Coordinate{Row: i / 5, Col: i % 5}, c.Move, "Candidates should keep their input order")
			require.Empty(t, c.Captured)
		}
	})

	t.Run("suicide is rejected", func(t *testing.T) {
		b := mustParse(t,
			"02000",
			"20000",
			"00000",
			"00000",
			"00000",
		)

		legal := b.LegalMoves([]Coordinate{{0, 0}, {2, 2}}, Black, nil)

		require.Equal(t, []Candidate{{Move: Coordinate{2, 2}, Captured: []Coordinate{}}}, legal)
	})

	t.Run("move without liberties that captures is not suicide", func(t *testing.T) {
		b := mustParse(t,
			"20000",
			"10000",
			"00000",
			"00000",
			"00000",
		)

		legal := b.LegalMoves([]Coordinate{{0, 1}}, Black, nil)

		require.Len(t, legal, 1)
		require.Equal(t, []Coordinate{{0, 0}}, legal[0].Captured)
	})

	t.Run("retaking a ko is rejected", func(t *testing.T) {
		previous := mustParse(t, koPrevious...)
		b := mustParse(t, koCurrent...)
		retake := Coordinate{Row: 1, Col: 2}

		withoutKo := b.LegalMoves([]Coordinate{retake}, Black, nil)
		require.Len(t, withoutKo, 1, "The retake captures and is otherwise legal")
		require.Equal(t, []Coordinate{{1, 1}}, withoutKo[0].Captured)

		withKo := b.LegalMoves([]Coordinate{retake}, Black, &previous)
		require.Empty(t, withKo, "The retake recreates the previous position")
	})

	t.Run("filling opponent eyes leaves no legal move", func(t *testing.T) {
		b := mustParse(t, blackEyes...)

		require.Empty(t, b.LegalMoves(b.EmptyCells(), White, nil))
		require.Len(t, b.LegalMoves(b.EmptyCells(), Black, nil), 5, "Black can still fill its own eyes")
	})

	t.Run("occupied candidate panics", func(t *testing.T) {
		b := mustParse(t, koCurrent...)

		require.Panics(t, func() {
			b.LegalMoves([]Coordinate{{0, 1}}, White, nil)
		})
	})

	t.Run("corrupt board panics", func(t *testing.T) {
		b := NewBoard()
		b.cells[2][2] = Cell(9)

		require.Panics(t, func() {
			b.LegalMoves([]Coordinate{{0, 0}}, White, nil)
		})
	})
}

func TestLegalMovesLeaveBoardUnchanged(t *testing.T) {
	boards := map[string][]string{
		"ko":    koCurrent,
		"eyes":  blackEyes,
		"mixed": {"12100", "21210", "02120", "10212", "01020"},
	}
	for name, rows := range boards {
		t.Run(name, func(t *testing.T) {
			b := mustParse(t, rows...)
			previous := mustParse(t, koPrevious...)
			before := b

			for _, color := range []Color{Black, White} {
				b.LegalMoves(b.EmptyCells(), color, &previous)
				require.Equal(t, before, b)
			}
		})
	}
}

func TestApplyUndo(t *testing.T) {
	previous := mustParse(t, koPrevious...)
	b := mustParse(t, koCurrent...)
	before := b

	legal := b.LegalMoves(b.EmptyCells(), White, &previous)
	for _, c := range legal {
		b.Apply(c, White)
		require.Equal(t, WhiteStone, b.At(c.Move))
		for _, captured := range c.Captured {
			require.Equal(t, Empty, b.At(captured))
		}
		b.Undo(c, White)
		require.Equal(t, before, b)
	}

	b.Apply(PassCandidate, Black)
	require.Equal(t, before, b, "Passing should leave the board unchanged")
}
