// Package simulation plays many independent War games and aggregates their
// results.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/luca-patrignani/war/application"
	"github.com/luca-patrignani/war/domain/deck"
	"github.com/luca-patrignani/war/domain/war"
)

// Options configures a batch.
type Options struct {
	Games     int
	Seed      int64
	Workers   int // defaults to runtime.NumCPU()
	MaxRounds int // per game, zero means no limit
	Rules     war.Rules
	Logger    *slog.Logger
}

// GameResult is the outcome of one simulated game.
type GameResult struct {
	SimID     int
	Seed      int64
	Result    application.Result
	Stalemate bool
}

// Stats aggregates a batch.
type Stats struct {
	Games       int
	Player1Wins int
	Player2Wins int
	Draws       int
	Stalemates  int
	Forfeits    int
	TotalRounds int
	TotalWars   int
	LongestGame int
}

// AvgRounds is the mean number of rounds per game.
func (s Stats) AvgRounds() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalRounds) / float64(s.Games)
}

// Add folds one game into the totals.
func (s *Stats) Add(g GameResult) {
	s.Games++
	s.TotalRounds += g.Result.Rounds
	s.TotalWars += g.Result.Wars
	if g.Result.Rounds > s.LongestGame {
		s.LongestGame = g.Result.Rounds
	}
	if g.Result.Forfeit {
		s.Forfeits++
	}
	switch {
	case g.Stalemate:
		s.Stalemates++
	case g.Result.Winner == war.Player1:
		s.Player1Wins++
	case g.Result.Winner == war.Player2:
		s.Player2Wins++
	default:
		s.Draws++
	}
}

// Run plays opts.Games games concurrently. Game seeds are derived from
// opts.Seed, so the Stats do not depend on the number of workers.
func Run(ctx context.Context, opts Options) (Stats, error) {
	results, err := RunGames(ctx, opts)
	if err != nil {
		return Stats{}, err
	}
	var stats Stats
	for _, r := range results {
		stats.Add(r)
	}
	return stats, nil
}

// RunGames plays the batch and returns each game's result, indexed by SimID.
func RunGames(ctx context.Context, opts Options) ([]GameResult, error) {
	if opts.Games < 0 {
		return nil, fmt.Errorf("negative game count %d", opts.Games)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Seeds are drawn up front so each game's seed depends only on its SimID.
	rng := rand.New(rand.NewSource(opts.Seed))
	seeds := make([]int64, opts.Games)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	results := make([]GameResult, opts.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		g.Go(func() error {
			r, err := RunSingleGame(ctx, seed, opts.Rules, opts.MaxRounds)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i, seed, err)
			}
			r.SimID = i
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Info("simulation finished", "games", opts.Games, "workers", workers)
	return results, nil
}

// RunSingleGame plays one headless game. Hitting maxRounds is reported as a
// stalemate rather than an error.
func RunSingleGame(ctx context.Context, seed int64, rules war.Rules, maxRounds int) (GameResult, error) {
	var opts []war.Option
	if rules != (war.Rules{}) {
		opts = append(opts, war.WithRules(rules))
	}
	state, err := war.NewGame(deck.SeededShuffle(seed), opts...)
	if err != nil {
		return GameResult{}, err
	}

	res, err := application.NewGameOrchestrator(state, nil,
		application.WithMaxRounds(maxRounds),
		application.WithLogger(discardLogger),
	).Run(ctx)
	switch {
	case errors.Is(err, application.ErrRoundLimit):
		return GameResult{Seed: seed, Result: res, Stalemate: true}, nil
	case err != nil:
		return GameResult{}, err
	}
	return GameResult{Seed: seed, Result: res}, nil
}

var discardLogger = slog.New(slog.DiscardHandler)
