package game

import "fmt"

// Candidate is a legal move together with the opponent stones it captures.
// The capture list is only meaningful for the board it was computed on.
type Candidate struct {
	Move     Coordinate
	Captured []Coordinate
}

// PassCandidate is the always-legal move that leaves the board unchanged.
var PassCandidate = Candidate{Move: Pass}

// LegalMoves filters candidates (which must be empty points) down to the moves
// toMove may legally play. Each candidate is simulated: opponent groups left
// without liberties are removed, suicides are rejected, and so are moves that
// recreate previous (the ko rule). A nil previous disables the ko check.
//
// The simulation is always undone; the board is unchanged when LegalMoves returns.
func (b *Board) LegalMoves(candidates []Coordinate, toMove Color, previous *Board) []Candidate {
	b.validate("Board.LegalMoves")
	if previous != nil {
		previous.validate("Board.LegalMoves")
	}

	stone := toMove.Cell()
	opponent := toMove.Opponent()
	legal := []Candidate{}
	for _, c := range candidates {
		if b.At(c) != Empty {
			panic(ContractViolation{Op: "Board.LegalMoves", Detail: fmt.Sprintf("candidate %v is occupied", c)})
		}

		b.Set(c, stone)
		captured := b.CapturedGroups(opponent)
		b.setAll(captured, Empty)

		suicide := len(b.CapturedGroups(toMove)) > 0
		ko := previous != nil && b.Equal(previous)
		if !suicide && !ko {
			legal = append(legal, Candidate{Move: c, Captured: captured})
		}

		b.setAll(captured, opponent.Cell())
		b.Set(c, Empty)
	}
	return legal
}

// Apply plays a candidate computed by LegalMoves on this board.
func (b *Board) Apply(c Candidate, color Color) {
	if c.Move.IsPass() {
		return
	}
	b.Set(c.Move, color.Cell())
	b.setAll(c.Captured, Empty)
}

// Undo reverts Apply.
func (b *Board) Undo(c Candidate, color Color) {
	if c.Move.IsPass() {
		return
	}
	b.setAll(c.Captured, color.Opponent().Cell())
	b.Set(c.Move, Empty)
}
