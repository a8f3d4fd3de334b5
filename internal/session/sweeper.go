package session

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper periodically removes expired sessions from a Store
type Sweeper struct {
	store  *Store
	cron   *cron.Cron
	logger *zap.Logger
}

// NewSweeper creates a sweeper running on the given cron schedule (e.g. "@every 1m")
func NewSweeper(store *Store, schedule string, logger *zap.Logger) (*Sweeper, error) {
	s := &Sweeper{
		store:  store,
		cron:   cron.New(),
		logger: logger,
	}
	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start starts the sweeper in its own goroutine
func (s *Sweeper) Start() {
	s.cron.Start()
	s.logger.Info("Session sweeper started")
}

// Stop stops the sweeper and waits for a running sweep to finish
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Session sweeper stopped")
}

func (s *Sweeper) sweep() {
	removed := s.store.Sweep()
	if removed > 0 {
		s.logger.Info("expired sessions removed",
			zap.Int("removed", removed),
			zap.Int("live", s.store.Len()),
		)
	}
}
