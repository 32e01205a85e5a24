package main

import (
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/war/application"
	"github.com/luca-patrignani/war/domain/war"
	"github.com/luca-patrignani/war/simulation"
)

func init() {
	pterm.DisableColor()
}

func TestCardGlyph(t *testing.T) {
	tests := map[war.Card]string{
		0:  "2♣",
		9:  "J♣",
		22: "J♥",
		34: "10♠",
		51: "A♦",
	}
	for card, want := range tests {
		if got := cardGlyph(card); got != want {
			t.Errorf("card %d: expected %s, got %s", card, want, got)
		}
	}
}

func TestRoundTextPlainWin(t *testing.T) {
	out := war.RoundOutcome{
		Winner:      war.Player1,
		Reason:      war.ReasonHigherCard,
		CardsWon:    2,
		Comparisons: []war.Comparison{{Player1: 51, Player2: 0}},
	}
	s := war.State{Player1: make([]war.Card, 27), Player2: make([]war.Card, 25)}
	text := roundText(1, out, s)

	for _, want := range []string{
		"Player 1 has ace of diamonds",
		"Player 2 has 2 of clubs",
		"wins this round and gains 1 card(s).",
		"Player 1 has 27 cards.",
		"Player 2 has 25 cards.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in:\n%s", want, text)
		}
	}
	if strings.Contains(text, "War!") {
		t.Error("a plain round must not announce a war")
	}
}

func TestRoundTextWar(t *testing.T) {
	out := war.RoundOutcome{
		Winner:      war.Player2,
		Reason:      war.ReasonHigherCard,
		War:         true,
		Wars:        1,
		CardsWon:    10,
		Comparisons: []war.Comparison{{Player1: 9, Player2: 22}, {Player1: 0, Player2: 51}},
	}
	text := roundText(3, out, war.State{})
	if !strings.Contains(text, "War!") || !strings.Contains(text, "wins the war and gains 5 card(s).") {
		t.Fatalf("unexpected war text:\n%s", text)
	}
}

func TestRoundTextForfeit(t *testing.T) {
	out := war.RoundOutcome{
		Winner:      war.Player1,
		Reason:      war.ReasonInsufficientCardsForWar,
		War:         true,
		Wars:        1,
		Forfeiter:   war.Player2,
		Discarded:   4,
		Comparisons: []war.Comparison{{Player1: 9, Player2: 22}},
	}
	text := roundText(7, out, war.State{})
	if !strings.Contains(text, "Player 2 does not have enough cards for war.") {
		t.Fatalf("expected forfeit notice in:\n%s", text)
	}
	if strings.Contains(text, "gains") {
		t.Fatal("a forfeit must not report a round win")
	}
}

func TestResultPanel(t *testing.T) {
	tests := []struct {
		res  application.Result
		want string
	}{
		{application.Result{Over: true, Winner: war.Player2, Rounds: 10, Head: "abcdef0123456789"}, "Player 2 Wins!"},
		{application.Result{Over: true, Winner: war.NoPlayer}, "draw"},
		{application.Result{Over: false, Rounds: 100}, "No winner after 100 rounds"},
	}
	for _, tt := range tests {
		if got := getResultPanel(tt.res); !strings.Contains(got, tt.want) {
			t.Errorf("expected %q in:\n%s", tt.want, got)
		}
	}
}

func TestStatsTable(t *testing.T) {
	data := statsTable(simulation.Stats{Games: 4, Player1Wins: 3, Player2Wins: 1, TotalRounds: 10})
	if len(data) != 2 || data[1][0] != "4" || data[1][7] != "2.5" {
		t.Fatalf("unexpected table %v", data)
	}
}
