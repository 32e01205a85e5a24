package ledger

import "github.com/luca-patrignani/war/domain/war"

// Block is one recorded round.
type Block struct {
	Index    int              `json:"index"`
	PrevHash string           `json:"prev_hash"`
	Hash     string           `json:"hash"`
	Round    int              `json:"round"`
	Outcome  war.RoundOutcome `json:"outcome"`
	Metadata Metadata         `json:"metadata"`
}

// Metadata is the table after the round was applied.
type Metadata struct {
	Player1Cards int `json:"player1_cards"`
	Player2Cards int `json:"player2_cards"`
}
