// Package record stores played games as SGF files.
package record

import (
	"fmt"
	"littlego/game"
	"littlego/meta"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rooklift/sgf"
)

// Game is the record of a finished game. Black moves first.
type Game struct {
	Black  string // Player names
	White  string
	Moves  []game.Coordinate
	Result string
}

// Result formats a final count the way SGF's RE property does, e.g. "W+2.5".
func Result(black, white float64) string {
	if black > white {
		return "B+" + strconv.FormatFloat(black-white, 'f', -1, 64)
	}
	return "W+" + strconv.FormatFloat(white-black, 'f', -1, 64)
}

// Tree builds the SGF main line for the game.
func (g Game) Tree() *sgf.Node {
	root := sgf.NewNode(nil)
	root.SetValue("GM", "1")
	root.SetValue("FF", "4")
	root.SetValue("SZ", strconv.Itoa(meta.BoardSize))
	root.SetValue("KM", strconv.FormatFloat(meta.Komi, 'f', -1, 64))
	root.SetValue("PB", g.Black)
	root.SetValue("PW", g.White)
	if g.Result != "" {
		root.SetValue("RE", g.Result)
	}

	node := root
	color := game.Black
	for _, move := range g.Moves {
		node = sgf.NewNode(node)
		node.SetValue(colorKey(color), encodePoint(move))
		color = color.Opponent()
	}
	return root
}

func Save(path string, g Game) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create sgf directory: %w", err)
	}
	if err := g.Tree().Save(path); err != nil {
		return fmt.Errorf("failed to save sgf: %w", err)
	}
	return nil
}

// Load reads the main line of an SGF file written by Save.
func Load(path string) (Game, error) {
	root, err := sgf.Load(path)
	if err != nil {
		return Game{}, fmt.Errorf("failed to load sgf: %w", err)
	}

	g := Game{}
	g.Black, _ = root.GetValue("PB")
	g.White, _ = root.GetValue("PW")
	g.Result, _ = root.GetValue("RE")

	node := root
	for len(node.Children()) > 0 {
		node = node.Children()[0]
		for _, color := range []game.Color{game.Black, game.White} {
			value, ok := node.GetValue(colorKey(color))
			if !ok {
				continue
			}
			move, err := decodePoint(value)
			if err != nil {
				return Game{}, err
			}
			g.Moves = append(g.Moves, move)
		}
	}
	return g, nil
}

func colorKey(color game.Color) string {
	if color == game.Black {
		return "B"
	}
	return "W"
}

// encodePoint maps a coordinate to SGF's column-then-row letter pair; a pass is
// the empty value.
func encodePoint(c game.Coordinate) string {
	if c.IsPass() {
		return ""
	}
	return string([]byte{byte('a' + c.Col), byte('a' + c.Row)})
}

func decodePoint(s string) (game.Coordinate, error) {
	if s == "" || s == "tt" {
		return game.Pass, nil
	}
	if len(s) != 2 {
		return game.Pass, fmt.Errorf("invalid sgf point %q", s)
	}
	c := game.Coordinate{Row: int(s[1] - 'a'), Col: int(s[0] - 'a')}
	if !c.InBounds() {
		return game.Pass, fmt.Errorf("sgf point %q is off the board", s)
	}
	return c, nil
}
