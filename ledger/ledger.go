package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/luca-patrignani/war/domain/war"
)

// genesisPrevHash marks the first block of every ledger.
const genesisPrevHash = "0"

// ErrNotFound is returned when a block index is out of range.
var ErrNotFound = errors.New("block not found")

// Ledger is a hash-chained history of rounds. It is safe for concurrent use.
type Ledger struct {
	mu     sync.RWMutex
	blocks []Block
}

// NewLedger creates a ledger holding only the genesis block.
func NewLedger() *Ledger {
	genesis := Block{
		Index:    0,
		PrevHash: genesisPrevHash,
		Metadata: Metadata{Player1Cards: war.NumCards / 2, Player2Cards: war.NumCards / 2},
	}
	genesis.Hash = calculateHash(genesis)
	return &Ledger{blocks: []Block{genesis}}
}

// Append records a resolved round together with the deck sizes after it.
// The new block is validated against the latest one before it is stored.
func (l *Ledger) Append(round int, outcome war.RoundOutcome, p1Cards, p2Cards int) (Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	latest := l.blocks[len(l.blocks)-1]
	b := Block{
		Index:    latest.Index + 1,
		PrevHash: latest.Hash,
		Round:    round,
		Outcome:  outcome,
		Metadata: Metadata{Player1Cards: p1Cards, Player2Cards: p2Cards},
	}
	b.Hash = calculateHash(b)

	if err := validateBlock(b, latest); err != nil {
		return Block{}, fmt.Errorf("invalid block: %w", err)
	}
	l.blocks = append(l.blocks, b)
	return b, nil
}

// Latest returns the most recent block.
func (l *Ledger) Latest() Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.blocks[len(l.blocks)-1]
}

// Head returns the hash of the most recent block.
func (l *Ledger) Head() string {
	return l.Latest().Hash
}

// Get returns the block at index.
func (l *Ledger) Get(index int) (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.blocks) {
		return Block{}, fmt.Errorf("%w: index %d", ErrNotFound, index)
	}
	return l.blocks[index], nil
}

// Len returns the number of blocks, genesis included.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.blocks)
}

// Blocks returns a copy of the chain.
func (l *Ledger) Blocks() []Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Block, len(l.blocks))
	copy(out, l.blocks)
	return out
}

// Verify walks the whole chain and checks genesis, index continuity, hash
// linkage and every block's own hash.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return fmt.Errorf("empty ledger")
	}
	genesis := l.blocks[0]
	if genesis.Index != 0 || genesis.PrevHash != genesisPrevHash || genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("invalid genesis block")
	}

	for i := 1; i < len(l.blocks); i++ {
		if err := validateBlock(l.blocks[i], l.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

// validateBlock checks current against the block before it.
func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("invalid hash: expected %s, got %s", expected, current.Hash)
	}
	return nil
}

// calculateHash is the SHA256 of the block's index, previous hash, round,
// outcome and metadata. The Hash field itself is excluded.
func calculateHash(b Block) string {
	outcomeBytes, _ := json.Marshal(b.Outcome)
	metaBytes, _ := json.Marshal(b.Metadata)

	data := fmt.Sprintf("%d|%s|%d|%s|%s",
		b.Index,
		b.PrevHash,
		b.Round,
		string(outcomeBytes),
		string(metaBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
