package game

import "fmt"

// Color identifies the side a stone or player belongs to.
type Color int

const (
	Black Color = iota + 1
	White
)

func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

// Cell returns the cell value occupied by a stone of color c.
func (c Color) Cell() Cell {
	switch c {
	case Black:
		return BlackStone
	case White:
		return WhiteStone
	default:
		panic(ContractViolation{Op: "Color.Cell", Detail: fmt.Sprintf("invalid color %d", int(c))})
	}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return fmt.Sprintf("color(%d)", int(c))
	}
}

// ParseColor decodes the '1' (black) / '2' (white) encoding used by input.txt.
func ParseColor(s string) (Color, error) {
	switch s {
	case "1":
		return Black, nil
	case "2":
		return White, nil
	}
	return 0, fmt.Errorf("%w: invalid color %q", ErrMalformedBoard, s)
}

// Cell is the content of a single board point.
type Cell uint8

const (
	Empty Cell = iota
	BlackStone
	WhiteStone
)

func (c Cell) valid() bool {
	return c <= WhiteStone
}

// Color returns the color of the stone on the cell; ok is false for empty cells.
func (c Cell) Color() (color Color, ok bool) {
	switch c {
	case BlackStone:
		return Black, true
	case WhiteStone:
		return White, true
	}
	return 0, false
}
