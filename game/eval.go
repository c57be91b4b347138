package game

import (
	"littlego/meta"

	"golang.org/x/exp/constraints"
)

// Evaluate scores a board from the perspective of a color. Higher is better for
// that color.
type Evaluate func(b *Board, color Color) float64

// Evaluation is the breakdown of the heuristic score, each term already taken
// from the perspective of the evaluated color.
type Evaluation struct {
	Liberty float64 // Own minus opponent liberty points, clamped to [-4, 4]
	Pattern float64 // Own minus opponent 2x2 shape value
	Stones  float64 // Own minus opponent stones
	Edge    float64 // Opponent minus own stones on the border
	Komi    float64
}

// Total combines the terms with their tuned weights.
func (e Evaluation) Total() float64 {
	return e.Liberty - 4*e.Pattern + 10*e.Stones + e.Edge + e.Komi
}

// Score is the heuristic value of the position for color.
func (b *Board) Score(color Color) float64 {
	return b.Breakdown(color).Total()
}

// Score adapts (*Board).Score to the Evaluate signature.
func Score(b *Board, color Color) float64 {
	return b.Score(color)
}

// Breakdown computes each term of Score separately.
func (b *Board) Breakdown(color Color) Evaluation {
	b.validate("Board.Score")

	liberties := b.libertyPoints()
	stones := map[Color]float64{Black: float64(b.Count(Black)), White: float64(b.Count(White))}
	edges := b.edgeStones()
	patterns := map[Color]float64{Black: b.patternValue(Black), White: b.patternValue(White)}

	opponent := color.Opponent()
	komi := meta.Komi
	if color == Black {
		komi = -komi
	}
	return Evaluation{
		Liberty: clamp(liberties[color]-liberties[opponent], -4, 4),
		Pattern: patterns[color] - patterns[opponent],
		Stones:  stones[color] - stones[opponent],
		Edge:    edges[opponent] - edges[color],
		Komi:    komi,
	}
}

// libertyPoints counts, per color, the empty points adjacent to at least one
// stone of that color.
func (b *Board) libertyPoints() map[Color]float64 {
	counts := map[Color]float64{}
	for i := range b.cells {
		for j := range b.cells[i] {
			if b.cells[i][j] != Empty {
				continue
			}
			touches := map[Color]bool{}
			for _, n := range (Coordinate{Row: i, Col: j}).neighbors() {
				if color, ok := b.cells[n.Row][n.Col].Color(); ok {
					touches[color] = true
				}
			}
			for color := range touches {
				counts[color]++
			}
		}
	}
	return counts
}

func (b *Board) edgeStones() map[Color]float64 {
	counts := map[Color]float64{}
	for i := range b.cells {
		for j := range b.cells[i] {
			c := Coordinate{Row: i, Col: j}
			if color, ok := b.cells[i][j].Color(); ok && c.OnEdge() {
				counts[color]++
			}
		}
	}
	return counts
}

// patternValue slides a 2x2 window over the board and counts, for color:
// a lone stone among three empty points, three stones around one empty point,
// and the two diagonal-only shapes. The diagonal shapes weigh double.
func (b *Board) patternValue(color Color) float64 {
	own := color.Cell()
	var lone, triple, diagonal float64
	for i := 0; i < meta.BoardSize-1; i++ {
		for j := 0; j < meta.BoardSize-1; j++ {
			topLeft, topRight := b.cells[i][j], b.cells[i][j+1]
			bottomLeft, bottomRight := b.cells[i+1][j], b.cells[i+1][j+1]

			empty, mine := 0, 0
			for _, cell := range [4]Cell{topLeft, topRight, bottomLeft, bottomRight} {
				switch cell {
				case Empty:
					empty++
				case own:
					mine++
				}
			}
			if mine == 1 && empty == 3 {
				lone++
			} else if mine == 3 && empty == 1 {
				triple++
			}

			if topLeft == own && topRight == Empty && bottomLeft == Empty && bottomRight == own {
				diagonal++
			}
			if topLeft == Empty && topRight == own && bottomLeft == own && bottomRight == Empty {
				diagonal++
			}
		}
	}
	return (lone - triple + 2*diagonal) / 4
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
