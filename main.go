package main

import (
	"flag"
	"fmt"
	"littlego/agent"
	"littlego/engine"
	"littlego/experiments"
	"littlego/experiments/metrics"
	"littlego/searcher"
	"littlego/store"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: little-go <command> [flags]

commands:
  play        choose a move from input.txt and write it to output.txt (default)
  experiment  play agents against each other and record the results`

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	command, args := "play", os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command, args = args[0], args[1:]
	}

	var err error
	switch command {
	case "play":
		err = runPlay(args)
	case "experiment":
		err = runExperiment(args)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", command)
	}
}

func runPlay(args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	dir := fs.String("dir", ".", "Directory holding input.txt, moves.txt and output.txt")
	depth := fs.Int("depth", 0, "Fixed search depth (0 follows the move-count depth policy)")
	debug := fs.Bool("debug", false, "Log the value of every root move")
	fs.Parse(args)

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	search := searcher.NewAlphaBeta(
		searcher.WithMetrics(metrics.NewCollector()),
		searcher.WithLogger(log.Logger),
	)
	_, err := engine.NewFileController(*dir).Run(agent.NewAlphaBetaAgent(search, *depth))
	return err
}

func runExperiment(args []string) error {
	fs := flag.NewFlagSet("experiment", flag.ExitOnError)
	name := fs.String("name", "depth", "Experiment to run: depth or policy")
	games := fs.Int("games", experiments.NumGames, "Games per match up")
	out := fs.String("out", "results", "Directory for CSV records")
	sgfDir := fs.String("sgf", "", "Directory for SGF game records (disabled when empty)")
	dbPath := fs.String("db", "", "SQLite database archiving every game (disabled when empty)")
	debug := fs.Bool("debug", false, "Log every move")
	fs.Parse(args)

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	options := []experiments.Option{experiments.WithOutputDir(*out), experiments.WithSGF(*sgfDir)}
	if *dbPath != "" {
		s, err := store.Open(*dbPath)
		if err != nil {
			return err
		}
		defer s.Close()
		options = append(options, experiments.WithStore(s))
	}

	var records []metrics.GameRecord
	var err error
	switch *name {
	case "depth":
		records, err = experiments.RunDepthExperiment(*games, options...)
	case "policy":
		records, err = experiments.RunPolicyExperiment(*games, options...)
	default:
		return fmt.Errorf("unknown experiment %q", *name)
	}
	if err != nil {
		return err
	}

	for id, wins := range experiments.Tally(records) {
		log.Info().Msgf("agent %d won %d games", id, wins)
	}
	return nil
}
