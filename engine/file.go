package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"littlego/agent"
	"littlego/game"
	"littlego/meta"
	"littlego/player"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	InputFile  = "input.txt"
	OutputFile = "output.txt"
	MovesFile  = "moves.txt"
)

// FileController plays a single turn through files in Dir: it reads the color
// to play and both boards from input.txt, keeps the move count in moves.txt,
// and writes the chosen move to output.txt.
type FileController struct {
	Dir string
}

func NewFileController(dir string) *FileController {
	return &FileController{Dir: dir}
}

// Run plays one turn with the given agent and returns the written move.
func (fc *FileController) Run(a agent.Agent) (game.Coordinate, error) {
	me, previous, current, err := fc.ReadInput()
	if err != nil {
		return game.Pass, err
	}
	moves, err := fc.UpdateMoveCount(previous, current)
	if err != nil {
		return game.Pass, err
	}

	state := game.State{Current: current, Previous: previous, ToMove: me.Color, Moves: moves}
	move, metric := a.FindMove(state)
	log.Info().Msgf("%s plays %s after %d moves (depth=%d, value=%.2f, nodes=%d)",
		me, move, moves, metric.Depth, metric.Value, metric.Nodes)

	if err := fc.WriteOutput(move); err != nil {
		return move, err
	}
	return move, nil
}

// ReadInput parses input.txt: a color line ('1' black, '2' white), then five
// rows of the previous board and five rows of the current board.
func (fc *FileController) ReadInput() (me player.Player, previous, current game.Board, err error) {
	f, err := os.Open(filepath.Join(fc.Dir, InputFile))
	if err != nil {
		return me, previous, current, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	lines := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return me, previous, current, fmt.Errorf("failed to read input file: %w", err)
	}
	if len(lines) != 1+2*meta.BoardSize {
		return me, previous, current, fmt.Errorf("%w: input has %d lines, expected %d", game.ErrMalformedBoard, len(lines), 1+2*meta.BoardSize)
	}

	color, err := game.ParseColor(lines[0])
	if err != nil {
		return me, previous, current, err
	}
	me = player.New(color)
	if previous, err = game.ParseBoard(lines[1 : 1+meta.BoardSize]); err != nil {
		return me, previous, current, fmt.Errorf("failed to parse previous board: %w", err)
	}
	if current, err = game.ParseBoard(lines[1+meta.BoardSize:]); err != nil {
		return me, previous, current, fmt.Errorf("failed to parse current board: %w", err)
	}
	return me, previous, current, nil
}

// UpdateMoveCount computes the moves played before this turn and stores it.
func (fc *FileController) UpdateMoveCount(previous, current game.Board) (int, error) {
	stored := 0
	if !previous.IsEmpty() {
		var err error
		stored, err = fc.readMoveCount()
		if errors.Is(err, fs.ErrNotExist) {
			// Both players have moved since previous was non-empty
			stored = max(current.PieceCount()-2, 0)
			log.Warn().Msgf("no %s found, estimating %d moves from the board", MovesFile, stored+2)
		} else if err != nil {
			return 0, err
		}
	}

	moves := NextMoveCount(previous, current, stored)
	path := filepath.Join(fc.Dir, MovesFile)
	if err := os.WriteFile(path, []byte(strconv.Itoa(moves)), 0644); err != nil {
		return 0, fmt.Errorf("failed to write move count: %w", err)
	}
	return moves, nil
}

func (fc *FileController) readMoveCount() (int, error) {
	data, err := os.ReadFile(filepath.Join(fc.Dir, MovesFile))
	if err != nil {
		return 0, fmt.Errorf("failed to read move count: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to parse move count: %w", err)
	}
	return n, nil
}

// WriteOutput writes the move as "row,col" or "PASS".
func (fc *FileController) WriteOutput(move game.Coordinate) error {
	path := filepath.Join(fc.Dir, OutputFile)
	if err := os.WriteFile(path, []byte(move.String()), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
