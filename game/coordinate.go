package game

import (
	"fmt"
	"littlego/meta"
)

// Coordinate is a board location, addressed by row then column.
type Coordinate struct {
	Row int
	Col int
}

// Pass is the sentinel move that places no stone.
var Pass = Coordinate{Row: -1, Col: -1}

func (c Coordinate) IsPass() bool {
	return c == Pass
}

// InBounds reports whether c addresses a cell of the board.
func (c Coordinate) InBounds() bool {
	return c.Row >= 0 && c.Row < meta.BoardSize && c.Col >= 0 && c.Col < meta.BoardSize
}

// Less orders coordinates lexicographically, row first.
func (c Coordinate) Less(other Coordinate) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// OnEdge reports whether c lies on the border of the board.
func (c Coordinate) OnEdge() bool {
	return c.Row == 0 || c.Col == 0 || c.Row == meta.BoardSize-1 || c.Col == meta.BoardSize-1
}

// String renders the coordinate the way output.txt expects it.
func (c Coordinate) String() string {
	if c.IsPass() {
		return "PASS"
	}
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// neighbors lists the up to four orthogonally adjacent coordinates of c.
func (c Coordinate) neighbors() []Coordinate {
	adjacent := make([]Coordinate, 0, 4)
	for _, d := range directions {
		n := Coordinate{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if n.InBounds() {
			adjacent = append(adjacent, n)
		}
	}
	return adjacent
}

var directions = []Coordinate{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
