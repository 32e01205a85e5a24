package war

import "github.com/luca-patrignani/war/domain/deck"

// Player identifies one of the two seats.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	}
	return "nobody"
}

// Opponent returns the other seat. NoPlayer has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return NoPlayer
}

// Reason tells how a round was decided.
type Reason string

const (
	ReasonHigherCard              Reason = "higher_card"
	ReasonInsufficientCardsForWar Reason = "insufficient_cards_for_war"
)

// Comparison is one face-up showdown. A round holds one per war plus one.
type Comparison struct {
	Player1 Card `json:"player1"`
	Player2 Card `json:"player2"`
}

// Tie reports whether both cards share a rank.
func (c Comparison) Tie() bool {
	return c.Player1.Rank() == c.Player2.Rank()
}

// RoundOutcome describes a resolved call to PlayRound.
//
// Winner is NoPlayer only when a forfeit leaves both decks empty. CardsWon
// counts the cards appended to the winner's deck and Discarded the cards a
// forfeit removed from play. Comparisons holds every face-up pair in order.
type RoundOutcome struct {
	Winner      Player       `json:"winner"`
	Reason      Reason       `json:"reason"`
	War         bool         `json:"war"`
	Wars        int          `json:"wars"`
	CardsWon    int          `json:"cards_won"`
	Forfeiter   Player       `json:"forfeiter"`
	Discarded   int          `json:"discarded"`
	Comparisons []Comparison `json:"comparisons"`
}

// NetGain returns how many of the won cards came from the opponent.
func (o RoundOutcome) NetGain() int {
	return o.CardsWon / 2
}

// Forfeit reports whether the round ended because a player could not
// fund a war.
func (o RoundOutcome) Forfeit() bool {
	return o.Reason == ReasonInsufficientCardsForWar
}

// State is the complete state of a game. The zero value is a finished game
// with no cards.
type State struct {
	Player1 []Card `json:"player1"`
	Player2 []Card `json:"player2"`
	Pot     []Card `json:"pot"`
	InWar   bool   `json:"in_war"`
	Rules   Rules  `json:"rules"`
}

// Option configures NewGame.
type Option func(*State)

// WithRules replaces DefaultRules.
func WithRules(r Rules) Option {
	return func(s *State) {
		s.Rules = r
	}
}

// ShuffleFunc is re-exported so callers of NewGame need a single import
// for the common case.
type ShuffleFunc = deck.ShuffleFunc
