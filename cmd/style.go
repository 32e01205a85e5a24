package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/war/application"
	"github.com/luca-patrignani/war/domain/war"
)

// terminalPresenter renders a game on the terminal with pterm.
type terminalPresenter struct {
	manual bool
}

func (p terminalPresenter) Dealt(s war.State) {
	p1, p2 := s.Cards()
	pterm.Info.Printfln("Cards dealt: %s has %d cards, %s has %d cards", war.Player1, p1, war.Player2, p2)
	pterm.Println()
}

func (p terminalPresenter) Await(ctx context.Context) error {
	if !p.manual {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := pterm.DefaultInteractiveTextInput.WithDefaultText("Press enter to draw next cards").Show()
	return err
}

func (p terminalPresenter) Round(n int, out war.RoundOutcome, s war.State) {
	pterm.Print(roundText(n, out, s))
}

func (p terminalPresenter) GameOver(r application.Result) {
	pterm.Println()
	pterm.Println(getResultPanel(r))
}

// roundText is everything printed for one round.
func roundText(n int, out war.RoundOutcome, s war.State) string {
	text := pterm.DefaultSection.Sprintf("Round %d", n)
	for i, c := range out.Comparisons {
		text += cardLine(war.Player1, c.Player1)
		text += cardLine(war.Player2, c.Player2)
		if c.Tie() {
			text += pterm.Warning.Sprintln("War!")
			if i == len(out.Comparisons)-1 && out.Forfeit() {
				text += pterm.Error.Sprintfln("%s does not have enough cards for war.", out.Forfeiter)
			}
		}
	}
	if !out.Forfeit() {
		text += winnerLine(out)
	}
	p1, p2 := s.Cards()
	text += pterm.Sprintfln("%s has %d cards.", war.Player1, p1)
	text += pterm.Sprintfln("%s has %d cards.", war.Player2, p2)
	return text
}

func cardLine(p war.Player, c war.Card) string {
	return pterm.Sprintfln("%s has %s  %s", p, c, cardGlyph(c))
}

func winnerLine(out war.RoundOutcome) string {
	verb := "wins this round"
	if out.War {
		verb = "wins the war"
	}
	return pterm.Sprintfln("%s %s and gains %d card(s).", pterm.LightCyan(out.Winner.String()), verb, out.NetGain())
}

// cardGlyph returns a short coloured label such as "J♣".
func cardGlyph(c war.Card) string {
	var suit string
	switch c.Suit() {
	case war.Club:
		suit = pterm.Black("♣")
	case war.Heart:
		suit = pterm.LightRed("♥")
	case war.Spade:
		suit = pterm.Black("♠")
	case war.Diamond:
		suit = pterm.LightRed("♦")
	default:
		suit = "?"
	}

	var rank string
	switch r := c.Rank(); r {
	case war.Jack:
		rank = "J"
	case war.Queen:
		rank = "Q"
	case war.King:
		rank = "K"
	case war.Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(int(r) + war.CardNumOffset)
	}
	return rank + suit
}

func getResultPanel(r application.Result) string {
	title := pterm.LightGreen("|GAME OVER|")
	var headline string
	switch {
	case !r.Over:
		title = pterm.LightYellow("|STALEMATE|")
		headline = fmt.Sprintf("No winner after %d rounds", r.Rounds)
	case r.Draw():
		headline = "Both players ran out of cards. It's a draw!"
	default:
		headline = r.Winner.String() + " Wins!"
	}
	body := pterm.Sprintfln("%s\n\nRounds: %d\nWars: %d\n%s: %d cards\n%s: %d cards\nLedger head: %s",
		pterm.LightCyan(headline), r.Rounds, r.Wars,
		war.Player1, r.Player1Cards, war.Player2, r.Player2Cards, shortHash(r.Head))
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(title).WithTitleTopCenter().Sprint(body)
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
