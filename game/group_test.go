package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCapturedGroups(t *testing.T) {
	t.Run("single stone without liberties is captured", func(t *testing.T) {
		b := mustParse(t,
			"02000",
			"21200",
			"02000",
			"00000",
			"00000",
		)

		require.Equal(t, []Coordinate{{1, 1}}, b.CapturedGroups(Black))
		require.Empty(t, b.CapturedGroups(White), "Surrounding stones still have liberties")
	})

	t.Run("group without liberties is captured as a unit", func(t *testing.T) {
		b := mustParse(t,
			"02200",
			"21120",
			"02200",
			"00000",
			"00000",
		)

		require.Equal(t, []Coordinate{{1, 1}, {1, 2}}, b.CapturedGroups(Black))
	})

	t.Run("group with one liberty is never captured", func(t *testing.T) {
		b := mustParse(t,
			"02200",
			"21100",
			"02200",
			"00000",
			"00000",
		)

		require.Empty(t, b.CapturedGroups(Black))
	})

	t.Run("dead groups are listed in discovery order", func(t *testing.T) {
		b := mustParse(t,
			"12000",
			"20000",
			"00000",
			"00002",
			"00021",
		)

		require.Equal(t, []Coordinate{{0, 0}, {4, 4}}, b.CapturedGroups(Black))
	})

	t.Run("stones within a group follow depth-first visitation order", func(t *testing.T) {
		b := mustParse(t,
			"11200",
			"12000",
			"20000",
			"00000",
			"00000",
		)

		require.Equal(t, []Coordinate{{0, 0}, {1, 0}, {0, 1}}, b.CapturedGroups(Black))
	})

	t.Run("repeated calls return identical results", func(t *testing.T) {
		b := mustParse(t,
			"12000",
			"21200",
			"02000",
			"00000",
			"00021",
		)

		first := b.CapturedGroups(Black)
		second := b.CapturedGroups(Black)
		require.Equal(t, first, second)
		require.Equal(t, []Coordinate{{0, 0}, {1, 1}}, first)
	})
}

func TestGroups(t *testing.T) {
	b := mustParse(t,
		"11000",
		"00000",
		"00111",
		"00100",
		"20000",
	)

	groups := b.Groups(Black)
	require.Len(t, groups, 2)
	require.Equal(t, []Coordinate{{0, 0}, {0, 1}}, groups[0].Stones)
	require.True(t, groups[0].Alive)
	require.ElementsMatch(t, []Coordinate{{2, 2}, {2, 3}, {2, 4}, {3, 2}}, groups[1].Stones)

	white := b.Groups(White)
	require.Len(t, white, 1)
	require.True(t, white[0].Alive)
}
