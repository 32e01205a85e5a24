package war

import (
	"errors"
	"fmt"
	"slices"

	"github.com/luca-patrignani/war/domain/deck"
)

var (
	// ErrGameAlreadyOver is returned by PlayRound when a deck is empty.
	ErrGameAlreadyOver = errors.New("game already over")
	// ErrInvalidShuffle is returned by NewGame when the shuffle does not
	// return a permutation of the deck.
	ErrInvalidShuffle = errors.New("shuffle did not return a permutation of the deck")
)

// NewGame shuffles a full deck and deals the first half to Player1 and the
// second half to Player2. A nil shuffle uses deck.DefaultShuffle.
func NewGame(shuffle ShuffleFunc, opts ...Option) (State, error) {
	s := State{Rules: DefaultRules()}
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.Rules.Validate(); err != nil {
		return State{}, err
	}
	if shuffle == nil {
		shuffle = deck.DefaultShuffle
	}

	shuffled := shuffle(deck.Ordered(NumCards))
	if !deck.IsPermutation(shuffled, NumCards) {
		return State{}, ErrInvalidShuffle
	}

	half := len(shuffled) / 2
	s.Player1 = make([]Card, 0, NumCards)
	s.Player2 = make([]Card, 0, NumCards)
	for _, v := range shuffled[:half] {
		s.Player1 = append(s.Player1, Card(v))
	}
	for _, v := range shuffled[half:] {
		s.Player2 = append(s.Player2, Card(v))
	}
	return s, nil
}

// IsOver reports whether either deck is empty.
func (s State) IsOver() bool {
	return len(s.Player1) == 0 || len(s.Player2) == 0
}

// Winner returns the player still holding cards once the game is over.
// It returns NoPlayer while the game is running and when both decks are
// empty.
func (s State) Winner() Player {
	switch {
	case !s.IsOver():
		return NoPlayer
	case len(s.Player1) > 0:
		return Player1
	case len(s.Player2) > 0:
		return Player2
	}
	return NoPlayer
}

// Cards returns the number of cards each player holds.
func (s State) Cards() (int, int) {
	return len(s.Player1), len(s.Player2)
}

// PlayRound resolves one top-level comparison and every war it triggers.
// The given State is not modified; the returned State has an empty pot.
func PlayRound(s State) (State, RoundOutcome, error) {
	if s.IsOver() {
		return s, RoundOutcome{}, ErrGameAlreadyOver
	}
	rules := s.Rules.orDefault()
	if err := rules.Validate(); err != nil {
		return s, RoundOutcome{}, err
	}

	next := s.clone()
	next.Rules = rules
	var out RoundOutcome

	for {
		c1, c2 := next.Player1[0], next.Player2[0]
		next.Player1 = next.Player1[1:]
		next.Player2 = next.Player2[1:]
		next.Pot = append(next.Pot, c1, c2)
		out.Comparisons = append(out.Comparisons, Comparison{Player1: c1, Player2: c2})

		switch r1, r2 := c1.Rank(), c2.Rank(); {
		case r1 > r2:
			next.award(Player1, &out)
			return next, out, nil
		case r1 < r2:
			next.award(Player2, &out)
			return next, out, nil
		}

		next.InWar = true
		out.War = true
		out.Wars++

		if short := next.shortOfWarCards(); short != NoPlayer {
			next.forfeit(short, &out)
			return next, out, nil
		}
		next.stake()
	}
}

// clone copies the decks so the caller's State keeps its own slices.
func (s State) clone() State {
	c := s
	c.Player1 = slices.Clone(s.Player1)
	c.Player2 = slices.Clone(s.Player2)
	c.Pot = slices.Clone(s.Pot)
	return c
}

func (s *State) deck(p Player) *[]Card {
	if p == Player1 {
		return &s.Player1
	}
	return &s.Player2
}

// award moves the pot, in order, to the bottom of the winner's deck.
func (s *State) award(winner Player, out *RoundOutcome) {
	d := s.deck(winner)
	*d = append(*d, s.Pot...)

	out.Winner = winner
	out.Reason = ReasonHigherCard
	out.CardsWon = len(s.Pot)

	s.Pot = nil
	s.InWar = false
}

// shortOfWarCards returns the first player, Player1 checked first, who
// cannot stake a war.
func (s *State) shortOfWarCards() Player {
	need := s.Rules.cardsForWar()
	if len(s.Player1) < need {
		return Player1
	}
	if len(s.Player2) < need {
		return Player2
	}
	return NoPlayer
}

// stake moves the face-down cards into the pot, alternating players.
func (s *State) stake() {
	n := s.Rules.WarStake
	for i := 0; i < n; i++ {
		s.Pot = append(s.Pot, s.Player1[i], s.Player2[i])
	}
	s.Player1 = s.Player1[n:]
	s.Player2 = s.Player2[n:]
}

// forfeit ends the round for a player who cannot fund the war.
func (s *State) forfeit(short Player, out *RoundOutcome) {
	loser := s.deck(short)
	opponent := short.Opponent()

	out.Reason = ReasonInsufficientCardsForWar
	out.Forfeiter = short

	switch s.Rules.Forfeit {
	case ForfeitToOpponent:
		d := s.deck(opponent)
		*d = append(*d, s.Pot...)
		*d = append(*d, *loser...)
		out.CardsWon = len(s.Pot) + len(*loser)
	default:
		out.Discarded = len(s.Pot) + len(*loser)
	}

	*loser = nil
	s.Pot = nil
	s.InWar = false

	if len(*s.deck(opponent)) > 0 {
		out.Winner = opponent
	}
}

// String is a short summary, e.g. "26/26".
func (s State) String() string {
	return fmt.Sprintf("%d/%d", len(s.Player1), len(s.Player2))
}
