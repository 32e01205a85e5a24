package war

import (
	"fmt"
	"strconv"
)

// Deck layout constants.
const (
	NumCards      = 52
	NumSuits      = 4
	CardsInSuit   = NumCards / NumSuits
	CardNumOffset = 2 // rank 0 is displayed as a 2
)

// Suit of a card, 0-3.
type Suit uint8

const (
	Club    Suit = 0 // ♣
	Heart   Suit = 1 // ♥
	Spade   Suit = 2 // ♠
	Diamond Suit = 3 // ♦
)

// Rank of a card, 0-12. Ranks below Jack are the numeric cards 2-10.
type Rank uint8

const (
	Jack  Rank = 9
	Queen Rank = 10
	King  Rank = 11
	Ace   Rank = 12
)

// Card is a playing card encoded as an integer in [0, NumCards).
type Card int

// NewCard creates a Card from its suit and rank.
//
// Returns an error if suit or rank is out of range.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit >= NumSuits || rank >= CardsInSuit {
		return 0, fmt.Errorf("invalid card %d, %d", suit, rank)
	}
	return Card(int(suit)*CardsInSuit + int(rank)), nil
}

// Valid reports whether c is inside the deck.
func (c Card) Valid() bool {
	return c >= 0 && c < NumCards
}

// Rank returns the face value used for comparisons.
func (c Card) Rank() Rank {
	return Rank(int(c) % CardsInSuit)
}

// Suit returns the suit of the card. It never affects a comparison.
func (c Card) Suit() Suit {
	return Suit(int(c) / CardsInSuit)
}

// String returns e.g. "jack of clubs".
func (c Card) String() string {
	if !c.Valid() {
		return "card(" + strconv.Itoa(int(c)) + ")"
	}
	return c.Rank().String() + " of " + c.Suit().String()
}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "jack"
	case Queen:
		return "queen"
	case King:
		return "king"
	case Ace:
		return "ace"
	}
	return strconv.Itoa(int(r) + CardNumOffset)
}

func (s Suit) String() string {
	switch s {
	case Club:
		return "clubs"
	case Heart:
		return "hearts"
	case Spade:
		return "spades"
	case Diamond:
		return "diamonds"
	}
	return "?"
}
