// Package model defines the block record exchanged with the coordinator.
package model

import (
	"encoding/hex"
	"strconv"
	"time"

	"github.com/HNP-Christopher-Rohde/hnp-example-blockchain-with-miner/pkg/hashing"
)

// Block is one link of the chain. Index, Timestamp, Data and PreviousHash are
// fixed at construction; Nonce is varied by the miner and Hash must always
// equal CalculateHash over the current fields.
type Block struct {
	Index        uint64  `json:"index"`
	Timestamp    uint64  `json:"timestamp"`
	Data         Payload `json:"data"`
	PreviousHash string  `json:"previous_hash"`
	Hash         string  `json:"hash"`
	Nonce        uint64  `json:"nonce"`
}

// New builds a block at the current Unix time with nonce 0 and a consistent hash.
func New(index uint64, data Payload, previousHash string) *Block {
	return NewAt(index, data, previousHash, uint64(time.Now().Unix()))
}

// NewAt is New with an explicit timestamp, for callers that control the clock.
func NewAt(index uint64, data Payload, previousHash string, timestamp uint64) *Block {
	b := &Block{
		Index:        index,
		Timestamp:    timestamp,
		Data:         data,
		PreviousHash: previousHash,
		Nonce:        0,
	}
	b.Hash = b.CalculateHash()
	return b
}

// CalculateHash returns the SHA-256 hex digest of the canonical preimage:
// decimal index, decimal timestamp, lowercase hex of data, previous hash,
// decimal nonce, concatenated without separators. The coordinator recomputes
// this exact byte string to validate submissions.
func (b *Block) CalculateHash() string {
	preimage := strconv.AppendUint(nil, b.Index, 10)
	preimage = strconv.AppendUint(preimage, b.Timestamp, 10)
	preimage = append(preimage, hex.EncodeToString(b.Data)...)
	preimage = append(preimage, b.PreviousHash...)
	preimage = strconv.AppendUint(preimage, b.Nonce, 10)
	return hashing.SumHex(preimage)
}
