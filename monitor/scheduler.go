package monitor

import (
	"context"
	"fmt"
	"log"
	"sync"

	"reddit-monitor/utils"

	"github.com/robfig/cron/v3"
)

// Scheduler runs scan cycles on a fixed interval, one at a time.
type Scheduler struct {
	cron    *cron.Cron
	monitor *Monitor

	// inProgress serializes cycles: the interval and the startup scan must
	// never run concurrently, or a batch could be notified twice.
	inProgress sync.Mutex
}

// StartScheduler schedules scan cycles on a fixed hour interval and, if
// configured, kicks off an immediate scan.
func StartScheduler(m *Monitor, intervalHours int) (*Scheduler, error) {
	log.Println("Initializing scheduler...")
	s := &Scheduler{cron: cron.New(), monitor: m}
	_, err := s.cron.AddFunc(fmt.Sprintf("@every %dh", intervalHours), s.runCycle)
	if err != nil {
		return nil, fmt.Errorf("could not set up cron job: %w", err)
	}
	s.cron.Start()
	log.Printf("Scan scheduled to run every %d hours.", intervalHours)

	if m.cfg.ScanAtStartup {
		go func() {
			log.Println("Performing initial scan on startup...")
			s.runCycle()
		}()
	} else {
		log.Println("Skipping initial scan on startup as per configuration.")
	}
	return s, nil
}

// Stop stops the interval timer. A cycle already in flight finishes.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("Scheduler stopped.")
}

// runCycle runs one cycle unless the previous one is still in flight. A
// failed cycle is logged and dropped; the next interval starts fresh.
func (s *Scheduler) runCycle() {
	if !s.inProgress.TryLock() {
		log.Println("Previous scan still in progress, skipping this cycle.")
		return
	}
	defer s.inProgress.Unlock()

	if err := s.monitor.Run(context.Background()); err != nil {
		log.Printf("Scan cycle failed: %v", err)
		utils.Error("Monitor", "Scan", err.Error())
	}
}
