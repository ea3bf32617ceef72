package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/sundial-app/sundial/internal/store"
	"github.com/sundial-app/sundial/internal/suncal"
)

// Scheduler keeps the configured home place's sun calendar fresh, the
// way the original app reloads its default city. Results land in the
// primary store slot; a user-triggered lookup that started later
// always wins over a slow scheduled refresh.
type Scheduler struct {
	scheduler  *gocron.Scheduler
	service    *suncal.Service
	mem        *store.MemoryStore
	homePlace  string
	pastDays   int
	futureDays int
	interval   time.Duration
}

// New creates a new Scheduler.
func New(service *suncal.Service, mem *store.MemoryStore, homePlace string, pastDays, futureDays int, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler:  s,
		service:    service,
		mem:        mem,
		homePlace:  homePlace,
		pastDays:   pastDays,
		futureDays: futureDays,
		interval:   interval,
	}
}

// Start schedules the periodic refresh and starts the underlying
// scheduler. The first refresh runs immediately.
func (s *Scheduler) Start() error {
	if s.homePlace == "" {
		log.Println("scheduler: no home place configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 360
	}

	_, err := s.scheduler.Every(minutes).Minutes().StartImmediately().Do(func() {
		log.Printf("scheduler: refreshing sun calendar for %s", s.homePlace)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		seq := s.mem.NextSeq()
		view, err := s.service.Lookup(ctx, s.homePlace, s.pastDays, s.futureDays)
		if err != nil {
			log.Printf("scheduler: refresh failed for %s: %v", s.homePlace, err)
			return
		}

		if !s.mem.Save(store.SlotPrimary, seq, view) {
			log.Printf("scheduler: discarded stale refresh for %s", s.homePlace)
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
