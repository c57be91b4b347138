package game

import (
	"fmt"
	"littlego/meta"
	"strings"
)

// Board is the grid of cells. It is a plain value: copying a Board snapshots it
// and two boards holding the same stones compare equal with ==.
type Board struct {
	cells [meta.BoardSize][meta.BoardSize]Cell
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

func (b *Board) At(c Coordinate) Cell {
	if !c.InBounds() {
		panic(ContractViolation{Op: "Board.At", Detail: fmt.Sprintf("coordinate %v out of bounds", c)})
	}
	return b.cells[c.Row][c.Col]
}

func (b *Board) Set(c Coordinate, cell Cell) {
	if !c.InBounds() {
		panic(ContractViolation{Op: "Board.Set", Detail: fmt.Sprintf("coordinate %v out of bounds", c)})
	}
	if !cell.valid() {
		panic(ContractViolation{Op: "Board.Set", Detail: fmt.Sprintf("invalid cell value %d", cell)})
	}
	b.cells[c.Row][c.Col] = cell
}

func (b *Board) setAll(coordinates []Coordinate, cell Cell) {
	for _, c := range coordinates {
		b.Set(c, cell)
	}
}

func (b *Board) IsEmpty() bool {
	return b.PieceCount() == 0
}

func (b *Board) Equal(other *Board) bool {
	return b.cells == other.cells
}

// PieceCount returns the number of stones of either color.
func (b *Board) PieceCount() int {
	return b.Count(Black) + b.Count(White)
}

// Count returns the number of stones of the given color.
func (b *Board) Count(color Color) int {
	target := color.Cell()
	n := 0
	for i := range b.cells {
		for j := range b.cells[i] {
			if b.cells[i][j] == target {
				n++
			}
		}
	}
	return n
}

// EmptyCells lists the empty points in row-major order.
func (b *Board) EmptyCells() []Coordinate {
	points := []Coordinate{}
	for i := range b.cells {
		for j := range b.cells[i] {
			if b.cells[i][j] == Empty {
				points = append(points, Coordinate{Row: i, Col: j})
			}
		}
	}
	return points
}

// validate panics if the board holds a value outside the Cell enumeration.
func (b *Board) validate(op string) {
	for i := range b.cells {
		for j := range b.cells[i] {
			if !b.cells[i][j].valid() {
				panic(ContractViolation{Op: op, Detail: fmt.Sprintf("invalid cell value %d at %d,%d", b.cells[i][j], i, j)})
			}
		}
	}
}

// String renders the board as rows of '0' (empty), '1' (black) and '2' (white).
func (b *Board) String() string {
	var sb strings.Builder
	for i := range b.cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := range b.cells[i] {
			sb.WriteByte('0' + byte(b.cells[i][j]))
		}
	}
	return sb.String()
}

// ParseBoard decodes rows in the encoding produced by String.
func ParseBoard(rows []string) (Board, error) {
	var b Board
	if len(rows) != meta.BoardSize {
		return b, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedBoard, meta.BoardSize, len(rows))
	}
	for i, row := range rows {
		row = strings.TrimRight(row, "\r")
		if len(row) != meta.BoardSize {
			return b, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedBoard, i, len(row), meta.BoardSize)
		}
		for j := 0; j < len(row); j++ {
			cell := Cell(row[j] - '0')
			if row[j] < '0' || !cell.valid() {
				return b, fmt.Errorf("%w: invalid cell %q at %d,%d", ErrMalformedBoard, row[j], i, j)
			}
			b.cells[i][j] = cell
		}
	}
	return b, nil
}
