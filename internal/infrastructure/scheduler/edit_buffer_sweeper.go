package scheduler

import (
	"log"
	"time"

	"wedding_admin/internal/usecase/interfaces"

	"github.com/robfig/cron/v3"
)

// EditBufferSweeper drops edit sessions that were left idle for longer than ttl.
type EditBufferSweeper struct {
	buffer interfaces.IEditBuffer
	ttl    time.Duration
	now    func() time.Time
	cron   *cron.Cron
}

func NewEditBufferSweeper(buffer interfaces.IEditBuffer, ttl time.Duration) *EditBufferSweeper {
	return &EditBufferSweeper{
		buffer: buffer,
		ttl:    ttl,
		now:    time.Now,
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
	}
}

// Start schedules the sweep with a standard cron spec (descriptors such as
// "@every 10m" are accepted) and starts the scheduler in the background.
func (s *EditBufferSweeper) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, func() { s.Sweep() }); err != nil {
		return err
	}
	log.Printf("[ledger][sweeper] started schedule=%q ttl=%s", spec, s.ttl)
	s.cron.Start()
	return nil
}

// Stop waits for a running sweep to finish.
func (s *EditBufferSweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *EditBufferSweeper) Sweep() int {
	cutoff := s.now().Add(-s.ttl)
	n := s.buffer.SweepIdle(cutoff)
	if n > 0 {
		log.Printf("[ledger][sweeper] dropped idle edits count=%d cutoff=%s", n, cutoff.Format(time.RFC3339))
	}
	return n
}
