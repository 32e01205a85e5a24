// Package war implements the rules of the two-player card game War.
//
// # Core Types
//
// Card: a value in [0, NumCards). Its rank is the value modulo CardsInSuit
// and its suit is the value divided by CardsInSuit.
//
// State: both players' decks, the pot of cards in dispute and the war flag.
// State is a plain value owned by the caller.
//
// RoundOutcome: what happened during one call to PlayRound, including every
// face-up comparison, so that a front end can render the round.
//
// # Game Flow
//
// NewGame shuffles a full deck through the injected shuffle and deals half to
// each player. PlayRound resolves one top-level comparison, looping through
// as many wars as the ties require, and returns the next State. The game is
// over when either deck is empty; Winner then reports the player left with
// cards, or NoPlayer when both decks ran out together.
//
// The package performs no I/O.
package war
