package service

import (
	"context"
	"time"

	"github.com/HNP-Christopher-Rohde/hnp-example-blockchain-with-miner/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Coordinator is the client side of the coordination protocol.
	Coordinator interface {
		Difficulty(ctx context.Context) (uint32, error)
		LastBlock(ctx context.Context) (*model.Block, error)
		SubmitBlock(ctx context.Context, block *model.Block) error
	}

	// ProofOfWork searches for a valid successor of the given block.
	ProofOfWork interface {
		Mine(ctx context.Context, previous *model.Block, data model.Payload, difficulty uint32) (*model.Block, error)
	}

	// MinerMetrics observes the phases of one mining cycle.
	MinerMetrics interface {
		ObserveFetchDifficulty(err error, started time.Time)
		ObserveFetchTip(err error, started time.Time)
		ObserveMine(err error, attempts uint64, started time.Time)
		ObserveSubmit(err error, started time.Time)
	}
)
