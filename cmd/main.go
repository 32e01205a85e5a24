package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/war/application"
	"github.com/luca-patrignani/war/config"
	"github.com/luca-patrignani/war/domain/deck"
	"github.com/luca-patrignani/war/domain/war"
	"github.com/luca-patrignani/war/simulation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	args := os.Args[1:]
	run := play
	if len(args) > 0 && args[0] == "sim" {
		run, args = simulate, args[1:]
	}
	if err := run(ctx, cfg, args); err != nil {
		stop()
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

// newLogger routes slog through the pterm logger.
func newLogger(level slog.Level) *slog.Logger {
	ptermLevel := pterm.LogLevelInfo
	switch {
	case level <= slog.LevelDebug:
		ptermLevel = pterm.LogLevelDebug
	case level >= slog.LevelError:
		ptermLevel = pterm.LogLevelError
	case level >= slog.LevelWarn:
		ptermLevel = pterm.LogLevelWarn
	}
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel))
	return slog.New(handler)
}

// bindFlags registers the flags shared by both commands, defaulting to cfg.
func bindFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "shuffle seed, 0 for a random deal")
	fs.BoolVar(&cfg.Crypto, "crypto", cfg.Crypto, "shuffle with the kyber random stream")
	fs.StringVar(&cfg.Forfeit, "forfeit", cfg.Forfeit, "what happens to a player short of war cards: discard or opponent")
	fs.IntVar(&cfg.WarStake, "stake", cfg.WarStake, "face-down cards staked per war")
	fs.IntVar(&cfg.MaxRounds, "max-rounds", cfg.MaxRounds, "stop a game after this many rounds, 0 for no limit")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
}

func shuffleFor(cfg config.Config) deck.ShuffleFunc {
	switch {
	case cfg.Crypto:
		return deck.CryptoShuffle()
	case cfg.Seed != 0:
		return deck.SeededShuffle(cfg.Seed)
	}
	return deck.DefaultShuffle
}

func play(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("war", flag.ContinueOnError)
	bindFlags(fs, &cfg)
	fs.BoolVar(&cfg.Manual, "manual", cfg.Manual, "wait for enter before each round")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	logger := newLogger(cfg.Level())

	rules, err := cfg.Rules()
	if err != nil {
		return err
	}
	state, err := war.NewGame(shuffleFor(cfg), war.WithRules(rules))
	if err != nil {
		return fmt.Errorf("deal: %w", err)
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("W", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ar", pterm.FgDarkGray.ToStyle()),
	).Render()

	presenter := terminalPresenter{manual: cfg.Manual}
	o := application.NewGameOrchestrator(state, presenter,
		application.WithLogger(logger),
		application.WithMaxRounds(cfg.MaxRounds),
	)
	if _, err := o.Run(ctx); err != nil && !errors.Is(err, application.ErrRoundLimit) {
		return err
	}
	if err := o.Ledger().Verify(); err != nil {
		return fmt.Errorf("verify round history: %w", err)
	}
	return nil
}

func simulate(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("war sim", flag.ContinueOnError)
	bindFlags(fs, &cfg)
	fs.IntVar(&cfg.Games, "games", cfg.Games, "number of games to play")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent games, 0 for one per CPU")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	logger := newLogger(cfg.Level())

	rules, err := cfg.Rules()
	if err != nil {
		return err
	}

	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Playing %d games...", cfg.Games))
	stats, err := simulation.Run(ctx, simulation.Options{
		Games:     cfg.Games,
		Seed:      cfg.Seed,
		Workers:   cfg.Workers,
		MaxRounds: cfg.MaxRounds,
		Rules:     rules,
		Logger:    logger,
	})
	if err != nil {
		spinner.Fail()
		return err
	}
	spinner.Success()

	return pterm.DefaultTable.WithHasHeader().WithData(statsTable(stats)).Render()
}

func statsTable(s simulation.Stats) pterm.TableData {
	return pterm.TableData{
		{"Games", "Player 1", "Player 2", "Draws", "Stalemates", "Forfeits", "Wars", "Avg rounds", "Longest"},
		{
			fmt.Sprint(s.Games),
			fmt.Sprint(s.Player1Wins),
			fmt.Sprint(s.Player2Wins),
			fmt.Sprint(s.Draws),
			fmt.Sprint(s.Stalemates),
			fmt.Sprint(s.Forfeits),
			fmt.Sprint(s.TotalWars),
			fmt.Sprintf("%.1f", s.AvgRounds()),
			fmt.Sprint(s.LongestGame),
		},
	}
}
