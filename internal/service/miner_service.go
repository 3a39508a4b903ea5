// Package service drives the mining loop against the coordinator.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/HNP-Christopher-Rohde/hnp-example-blockchain-with-miner/internal/clock"
	"github.com/HNP-Christopher-Rohde/hnp-example-blockchain-with-miner/internal/coordinator"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const defaultBackoffDuration = 5 * time.Second

// MinerService repeats one mining cycle until its context is canceled:
// fetch difficulty, fetch tip, mine a successor, submit it, sleep.
type MinerService struct {
	logger          *zap.Logger
	coordinator     Coordinator
	miner           ProofOfWork
	metrics         MinerMetrics
	limiter         ratelimit.Limiter
	sleep           func(context.Context, time.Duration) error
	payload         []byte
	sleepDuration   time.Duration
	backoffDuration time.Duration
}

// NewMinerService builds a MinerService with dependencies. The limiter caps
// cycle frequency; pass ratelimit.NewUnlimited() to disable pacing.
func NewMinerService(
	coord Coordinator,
	miner ProofOfWork,
	metrics MinerMetrics,
	limiter ratelimit.Limiter,
	payload []byte,
	sleepDuration time.Duration,
	logger *zap.Logger,
) (*MinerService, error) {
	if metrics == nil {
		return nil, errors.New("miner metrics is required")
	}
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}

	return &MinerService{
		logger:          logger.Named("minerService"),
		coordinator:     coord,
		miner:           miner,
		metrics:         metrics,
		limiter:         limiter,
		sleep:           clock.SleepWithContext,
		payload:         payload,
		sleepDuration:   sleepDuration,
		backoffDuration: defaultBackoffDuration,
	}, nil
}

// Run starts the mining loop until the context is canceled. A failed cycle is
// logged and retried after a backoff; a rejected submission is not a failure.
func (s *MinerService) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("mining cycle failed, backing off",
				zap.Error(err), zap.Duration("backoff", s.backoffDuration))
			if sleepErr := s.sleep(ctx, s.backoffDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *MinerService) run(ctx context.Context) error {
	s.limiter.Take()

	started := time.Now()
	difficulty, err := s.coordinator.Difficulty(ctx)
	s.metrics.ObserveFetchDifficulty(err, started)
	if err != nil {
		return err
	}
	s.logger.Info("current difficulty", zap.Uint32("difficulty", difficulty))

	started = time.Now()
	tip, err := s.coordinator.LastBlock(ctx)
	s.metrics.ObserveFetchTip(err, started)
	if err != nil {
		return err
	}

	started = time.Now()
	block, err := s.miner.Mine(ctx, tip, s.payload, difficulty)
	if err != nil {
		s.metrics.ObserveMine(err, 0, started)
		return err
	}
	s.metrics.ObserveMine(nil, block.Nonce, started)
	s.logger.Info("mined block",
		zap.Uint64("index", block.Index),
		zap.Uint64("nonce", block.Nonce),
		zap.String("hash", block.Hash),
		zap.Duration("took", time.Since(started)),
	)

	started = time.Now()
	err = s.coordinator.SubmitBlock(ctx, block)
	s.metrics.ObserveSubmit(err, started)
	var rejected *coordinator.SubmissionError
	switch {
	case errors.As(err, &rejected):
		// Usually a stale parent: another miner extended the tip first.
		// The next cycle refetches the tip and recovers.
		s.logger.Warn("block rejected by coordinator",
			zap.Int("status", rejected.StatusCode), zap.String("body", rejected.Body))
	case err != nil:
		return err
	default:
		s.logger.Info("block accepted", zap.Uint64("index", block.Index))
	}

	return s.sleep(ctx, s.sleepDuration)
}
