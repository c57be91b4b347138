package game

import "littlego/meta"

// Group is a maximal set of 4-connected stones of one color.
type Group struct {
	Stones []Coordinate // In flood-fill visitation order
	Alive  bool         // Whether any stone touches an empty point
}

// Groups finds every group of the given color, in row-major order of discovery.
// Each call starts from a fresh visited grid, so repeated calls on an unchanged
// board return identical results.
func (b *Board) Groups(color Color) []Group {
	target := color.Cell()
	var visited [meta.BoardSize][meta.BoardSize]bool
	groups := []Group{}
	for i := range b.cells {
		for j := range b.cells[i] {
			if visited[i][j] || b.cells[i][j] != target {
				continue
			}
			groups = append(groups, b.floodFill(Coordinate{Row: i, Col: j}, target, &visited))
		}
	}
	return groups
}

// floodFill walks the group containing start with an explicit stack. Neighbors
// are pushed in reverse so stones are visited in depth-first preorder.
func (b *Board) floodFill(start Coordinate, target Cell, visited *[meta.BoardSize][meta.BoardSize]bool) Group {
	group := Group{}
	stack := []Coordinate{start}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[c.Row][c.Col] {
			continue
		}
		visited[c.Row][c.Col] = true
		group.Stones = append(group.Stones, c)

		adjacent := c.neighbors()
		for k := len(adjacent) - 1; k >= 0; k-- {
			n := adjacent[k]
			switch b.cells[n.Row][n.Col] {
			case target:
				if !visited[n.Row][n.Col] {
					stack = append(stack, n)
				}
			case Empty:
				group.Alive = true
			}
		}
	}
	return group
}

// CapturedGroups returns every stone of the given color that belongs to a group
// without liberties.
func (b *Board) CapturedGroups(color Color) []Coordinate {
	captured := []Coordinate{}
	for _, g := range b.Groups(color) {
		if !g.Alive {
			captured = append(captured, g.Stones...)
		}
	}
	return captured
}
