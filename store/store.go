// Package store archives finished matches in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS matches (
	id TEXT PRIMARY KEY,
	experiment TEXT,
	black_agent INTEGER,
	white_agent INTEGER,
	winner TEXT,
	black_score REAL,
	white_score REAL,
	total_moves INTEGER,
	started_at DATETIME,
	ended_at DATETIME
);
CREATE TABLE IF NOT EXISTS moves (
	match_id TEXT REFERENCES matches(id),
	step INTEGER,
	color TEXT,
	move_row INTEGER,
	move_col INTEGER,
	depth INTEGER,
	nodes INTEGER,
	value REAL,
	PRIMARY KEY (match_id, step)
);
`

type Match struct {
	ID         string
	Experiment string
	BlackAgent int // metrics.AgentConfig.ID
	WhiteAgent int
	Winner     string
	BlackScore float64
	WhiteScore float64
	TotalMoves int
	StartedAt  time.Time
	EndedAt    time.Time
	Moves      []Move
}

type Move struct {
	Step  int
	Color string
	Row   int // -1 for a pass
	Col   int
	Depth int
	Nodes int
	Value float64
}

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path. ":memory:" keeps it in memory.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Every connection to ":memory:" would get its own empty database
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveMatch stores a match with its moves and returns its id, generating one
// when m.ID is empty.
func (s *Store) SaveMatch(ctx context.Context, m Match) (string, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
	INSERT INTO matches (id, experiment, black_agent, white_agent, winner, black_score, white_score, total_moves, started_at, ended_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Experiment, m.BlackAgent, m.WhiteAgent, m.Winner, m.BlackScore, m.WhiteScore, m.TotalMoves, m.StartedAt, m.EndedAt)
	if err != nil {
		return "", fmt.Errorf("failed to insert match: %w", err)
	}

	for _, mv := range m.Moves {
		_, err = tx.ExecContext(ctx, `
		INSERT INTO moves (match_id, step, color, move_row, move_col, depth, nodes, value)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID, mv.Step, mv.Color, mv.Row, mv.Col, mv.Depth, mv.Nodes, mv.Value)
		if err != nil {
			return "", fmt.Errorf("failed to insert move %d: %w", mv.Step, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit match: %w", err)
	}
	return m.ID, nil
}

// Matches lists the matches of an experiment in the order they started. Moves are not loaded.
func (s *Store) Matches(ctx context.Context, experiment string) ([]Match, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, experiment, black_agent, white_agent, winner, black_score, white_score, total_moves, started_at, ended_at
	FROM matches WHERE experiment = ? ORDER BY started_at, id`, experiment)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := []Match{}
	for rows.Next() {
		var m Match
		err := rows.Scan(&m.ID, &m.Experiment, &m.BlackAgent, &m.WhiteAgent, &m.Winner,
			&m.BlackScore, &m.WhiteScore, &m.TotalMoves, &m.StartedAt, &m.EndedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate matches: %w", err)
	}
	return matches, nil
}

// Moves returns the moves of a match in play order.
func (s *Store) Moves(ctx context.Context, matchID string) ([]Move, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT step, color, move_row, move_col, depth, nodes, value
	FROM moves WHERE match_id = ? ORDER BY step`, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query moves: %w", err)
	}
	defer rows.Close()

	moves := []Move{}
	for rows.Next() {
		var mv Move
		if err := rows.Scan(&mv.Step, &mv.Color, &mv.Row, &mv.Col, &mv.Depth, &mv.Nodes, &mv.Value); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, mv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate moves: %w", err)
	}
	return moves, nil
}
