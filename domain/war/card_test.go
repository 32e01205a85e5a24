package war

import "testing"

func TestCardRankAndSuit(t *testing.T) {
	tests := []struct {
		card Card
		rank Rank
		suit Suit
		name string
	}{
		{0, 0, Club, "2 of clubs"},
		{8, 8, Club, "10 of clubs"},
		{9, Jack, Club, "jack of clubs"},
		{22, Jack, Heart, "jack of hearts"},
		{36, Queen, Spade, "queen of spades"},
		{50, King, Diamond, "king of diamonds"},
		{51, Ace, Diamond, "ace of diamonds"},
	}
	for _, tt := range tests {
		if got := tt.card.Rank(); got != tt.rank {
			t.Errorf("card %d: expected rank %d, got %d", tt.card, tt.rank, got)
		}
		if got := tt.card.Suit(); got != tt.suit {
			t.Errorf("card %d: expected suit %d, got %d", tt.card, tt.suit, got)
		}
		if got := tt.card.String(); got != tt.name {
			t.Errorf("card %d: expected %q, got %q", tt.card, tt.name, got)
		}
	}
}

func TestNewCard(t *testing.T) {
	c, err := NewCard(Diamond, Ace)
	if err != nil {
		t.Fatal(err)
	}
	if c != 51 {
		t.Fatalf("expected 51, got %d", c)
	}
	if _, err := NewCard(4, 0); err == nil {
		t.Fatal("expected error for suit 4")
	}
	if _, err := NewCard(Club, 13); err == nil {
		t.Fatal("expected error for rank 13")
	}
}

func TestAllCardsRoundTrip(t *testing.T) {
	for v := 0; v < NumCards; v++ {
		c := Card(v)
		back, err := NewCard(c.Suit(), c.Rank())
		if err != nil {
			t.Fatal(err)
		}
		if back != c {
			t.Fatalf("expected %d, got %d", c, back)
		}
	}
}

func TestInvalidCardString(t *testing.T) {
	if s := Card(52).String(); s != "card(52)" {
		t.Fatalf("expected card(52), got %s", s)
	}
}
