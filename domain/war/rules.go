package war

import (
	"errors"
	"fmt"
	"strings"
)

// NumWarCards is the default number of face-down cards each player stakes
// in a war.
const NumWarCards = 3

// ErrInvalidRules is returned for a Rules value the engine cannot play.
var ErrInvalidRules = errors.New("invalid rules")

// ForfeitPolicy decides what happens to the cards of a player who cannot
// fund a war.
type ForfeitPolicy string

const (
	// ForfeitDiscard removes the short player's deck and the pot from play.
	ForfeitDiscard ForfeitPolicy = "discard"
	// ForfeitToOpponent gives the pot and the short player's deck to the
	// opponent.
	ForfeitToOpponent ForfeitPolicy = "opponent"
)

// ParseForfeitPolicy accepts the policy names, case-insensitively.
func ParseForfeitPolicy(s string) (ForfeitPolicy, error) {
	switch p := ForfeitPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case ForfeitDiscard, ForfeitToOpponent:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown forfeit policy %q", ErrInvalidRules, s)
}

// Rules are the tunable parts of the game.
type Rules struct {
	WarStake int           `json:"war_stake"` // face-down cards per player per war
	Forfeit  ForfeitPolicy `json:"forfeit"`
}

// DefaultRules returns a three card stake with discarded forfeits.
func DefaultRules() Rules {
	return Rules{WarStake: NumWarCards, Forfeit: ForfeitDiscard}
}

// Validate checks that r can be played.
func (r Rules) Validate() error {
	if r.WarStake < 1 {
		return fmt.Errorf("%w: war stake must be positive, got %d", ErrInvalidRules, r.WarStake)
	}
	if _, err := ParseForfeitPolicy(string(r.Forfeit)); err != nil {
		return err
	}
	return nil
}

// cardsForWar is how many cards a player must hold, after the tied card
// is played, to take part in a war.
func (r Rules) cardsForWar() int {
	return r.WarStake + 1
}

// orDefault fills a zero Rules value.
func (r Rules) orDefault() Rules {
	if r == (Rules{}) {
		return DefaultRules()
	}
	return r
}
