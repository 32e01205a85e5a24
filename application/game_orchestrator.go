// Package application drives a War game from deal to finish, keeping the
// engine, the round ledger and the front end apart.
package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/luca-patrignani/war/domain/war"
	"github.com/luca-patrignani/war/ledger"
)

// ErrRoundLimit is returned by Run when the game is still going after the
// configured number of rounds.
var ErrRoundLimit = errors.New("round limit reached")

// Presenter renders the game. Await is called before every round and is the
// place to pause for a key press; returning an error stops the game.
type Presenter interface {
	Dealt(s war.State)
	Await(ctx context.Context) error
	Round(n int, out war.RoundOutcome, s war.State)
	GameOver(r Result)
}

// Result summarises a finished (or interrupted) game.
type Result struct {
	Winner       war.Player `json:"winner"`
	Rounds       int        `json:"rounds"`
	Wars         int        `json:"wars"`
	Forfeit      bool       `json:"forfeit"`
	Player1Cards int        `json:"player1_cards"`
	Player2Cards int        `json:"player2_cards"`
	Head         string     `json:"head"` // ledger head hash
	Over         bool       `json:"over"`
}

// Draw reports whether the game ended with both decks empty.
func (r Result) Draw() bool {
	return r.Over && r.Winner == war.NoPlayer
}

// GameOrchestrator owns the State of one game.
type GameOrchestrator struct {
	state     war.State
	presenter Presenter
	ledger    *ledger.Ledger
	logger    *slog.Logger
	maxRounds int
}

type orchestratorOption func(*GameOrchestrator)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) orchestratorOption {
	return func(o *GameOrchestrator) {
		o.logger = l
	}
}

// WithMaxRounds stops the game after n rounds. Zero means no limit.
func WithMaxRounds(n int) orchestratorOption {
	return func(o *GameOrchestrator) {
		o.maxRounds = n
	}
}

// WithLedger records rounds into l instead of a fresh ledger.
func WithLedger(l *ledger.Ledger) orchestratorOption {
	return func(o *GameOrchestrator) {
		o.ledger = l
	}
}

// NewGameOrchestrator prepares a game starting from state. A nil presenter
// plays headless.
func NewGameOrchestrator(state war.State, p Presenter, opts ...orchestratorOption) *GameOrchestrator {
	if p == nil {
		p = nopPresenter{}
	}
	o := &GameOrchestrator{
		state:     state,
		presenter: p,
		ledger:    ledger.NewLedger(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// State returns the current game state.
func (o *GameOrchestrator) State() war.State {
	return o.state
}

// Ledger returns the round history.
func (o *GameOrchestrator) Ledger() *ledger.Ledger {
	return o.ledger
}

// Run plays rounds until a deck is empty, the context is cancelled, the
// presenter fails or the round limit is hit. The partial Result is returned
// alongside any error.
func (o *GameOrchestrator) Run(ctx context.Context) (Result, error) {
	var res Result
	o.presenter.Dealt(o.state)
	o.logger.Debug("cards dealt", "player1", len(o.state.Player1), "player2", len(o.state.Player2))

	for !o.state.IsOver() {
		if o.maxRounds > 0 && res.Rounds >= o.maxRounds {
			o.logger.Warn("round limit reached", "rounds", res.Rounds)
			res = o.finish(res)
			o.presenter.GameOver(res)
			return res, ErrRoundLimit
		}
		if err := ctx.Err(); err != nil {
			return o.finish(res), err
		}
		if err := o.presenter.Await(ctx); err != nil {
			return o.finish(res), fmt.Errorf("await next round: %w", err)
		}

		next, out, err := war.PlayRound(o.state)
		if err != nil {
			return o.finish(res), fmt.Errorf("round %d: %w", res.Rounds+1, err)
		}
		o.state = next
		res.Rounds++
		res.Wars += out.Wars
		res.Forfeit = res.Forfeit || out.Forfeit()

		p1, p2 := next.Cards()
		if _, err := o.ledger.Append(res.Rounds, out, p1, p2); err != nil {
			return o.finish(res), fmt.Errorf("record round %d: %w", res.Rounds, err)
		}
		o.logger.Debug("round played",
			"round", res.Rounds,
			"winner", out.Winner.String(),
			"wars", out.Wars,
			"cards_won", out.CardsWon,
			"player1", p1,
			"player2", p2,
		)
		o.presenter.Round(res.Rounds, out, next)
	}

	res = o.finish(res)
	o.logger.Info("game over", "winner", res.Winner.String(), "rounds", res.Rounds, "wars", res.Wars, "head", res.Head)
	o.presenter.GameOver(res)
	return res, nil
}

func (o *GameOrchestrator) finish(res Result) Result {
	res.Over = o.state.IsOver()
	res.Winner = o.state.Winner()
	res.Player1Cards, res.Player2Cards = o.state.Cards()
	res.Head = o.ledger.Head()
	return res
}

type nopPresenter struct{}

func (nopPresenter) Dealt(war.State)                        {}
func (nopPresenter) Await(context.Context) error            { return nil }
func (nopPresenter) Round(int, war.RoundOutcome, war.State) {}
func (nopPresenter) GameOver(Result)                        {}
