package internal

import (
	"context"
	"time"

	"github.com/markusressel/plant2go/internal/events"
	"github.com/markusressel/plant2go/internal/ui"
)

// CycleMonitor drives the cycles of a plant at a fixed interval
type CycleMonitor struct {
	plant    *Plant
	interval time.Duration
	// cycles limits the number of cycles, 0 means unlimited
	cycles int
}

func NewCycleMonitor(plant *Plant, interval time.Duration, cycles int) *CycleMonitor {
	return &CycleMonitor{
		plant:    plant,
		interval: interval,
		cycles:   cycles,
	}
}

// Run starts the supervisor and runs cycles until ctx is done or the cycle limit is reached.
// The supervisor is stopped again before Run returns.
func (m *CycleMonitor) Run(ctx context.Context) error {
	s := m.plant.Supervisor
	if err := s.Start(); err != nil {
		return err
	}
	defer func() {
		if err := s.Stop(); err != nil {
			ui.Warning("Unable to stop supervisor: %v", err)
		}
		m.plant.Store.Publish(s.Snapshot())
	}()

	tick := time.NewTicker(m.interval)
	defer tick.Stop()

	count := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
			if err := m.plant.RunCycle(); err != nil {
				return err
			}
			count++
			if m.cycles > 0 && count >= m.cycles {
				ui.Info("Finished %d cycles", count)
				return nil
			}
		}
	}
}

// FlushMonitor periodically writes new event records to a sink
type FlushMonitor struct {
	log      *events.Log
	sink     events.Sink
	interval time.Duration
}

func NewFlushMonitor(log *events.Log, sink events.Sink, interval time.Duration) *FlushMonitor {
	return &FlushMonitor{
		log:      log,
		sink:     sink,
		interval: interval,
	}
}

// Run flushes until ctx is done. Failed flushes are retried on the next tick.
func (m *FlushMonitor) Run(ctx context.Context) error {
	tick := time.NewTicker(m.interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
			if err := m.log.Flush(ctx, m.sink); err != nil {
				ui.Warning("Unable to flush events: %v", err)
			}
		}
	}
}
