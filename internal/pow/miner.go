package pow

import (
	"context"
	"errors"
	"math"

	"github.com/HNP-Christopher-Rohde/hnp-example-blockchain-with-miner/internal/model"
	"go.uber.org/zap"
)

// ErrSearchExhausted means the whole 64-bit nonce space was scanned without a
// hash meeting the difficulty. Unreachable for any realistic difficulty.
var ErrSearchExhausted = errors.New("nonce space exhausted without a valid hash")

// progressInterval is the attempt cadence for progress logs and context checks.
const progressInterval = 100

// Miner performs the CPU-bound nonce search.
type Miner struct {
	logger *zap.Logger
}

// NewMiner constructs a Miner.
func NewMiner(logger *zap.Logger) *Miner {
	return &Miner{logger: logger.Named("miner")}
}

// Mine builds the successor of previous carrying data and searches for a nonce
// whose hash meets the difficulty. The timestamp is captured once at
// construction; the nonce is the only field that changes during the search.
// The search runs on its own goroutine so the caller can keep serving I/O and
// is abandoned when ctx is canceled.
func (m *Miner) Mine(ctx context.Context, previous *model.Block, data model.Payload, difficulty uint32) (*model.Block, error) {
	candidate := model.New(previous.Index+1, data, previous.Hash)

	type result struct {
		block *model.Block
		err   error
	}
	done := make(chan result, 1)
	go func() {
		block, err := m.search(ctx, candidate, difficulty)
		done <- result{block: block, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.block, r.err
	}
}

func (m *Miner) search(ctx context.Context, candidate *model.Block, difficulty uint32) (*model.Block, error) {
	var attempts uint64
	for {
		ok, err := MeetsDifficulty(candidate.Hash, difficulty)
		if err != nil {
			return nil, err
		}
		if ok {
			return candidate, nil
		}
		if candidate.Nonce == math.MaxUint64 {
			return nil, ErrSearchExhausted
		}
		candidate.Nonce++
		candidate.Hash = candidate.CalculateHash()

		attempts++
		if attempts%progressInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			m.logger.Debug("mining",
				zap.Uint64("attempt", attempts),
				zap.String("hash", candidate.Hash),
			)
		}
	}
}
