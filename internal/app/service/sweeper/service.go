package sweeper

import (
	"context"
	"runtime"
	"time"

	"meetpay/internal/app/logger"
	"meetpay/internal/app/model"
	"meetpay/internal/app/service/settlement"
	"meetpay/internal/app/storage"
)

// staleStatuses are the states a meet can expire from.
var staleStatuses = []model.MeetStatus{
	model.MeetStatusRequest,
	model.MeetStatusAccepted,
	model.MeetStatusPaid,
}

type Job func() error

// Service periodically cancels meets still unsettled once their date is more
// than the horizon in the past. Cancellations carry no author, so the engine
// classifies them as system-initiated and notifies both parties.
type Service struct {
	logger logger.Logger
	meets  storage.MeetRepository
	engine *settlement.Engine

	jobs   chan Job
	stopCh chan struct{}

	interval time.Duration
	horizon  time.Duration
	loc      *time.Location
}

func (s *Service) LoggerComponent() string {
	return "Sweeper.Service"
}

func New(meets storage.MeetRepository, engine *settlement.Engine, interval, horizon time.Duration, timezone string) (*Service, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}

	s := &Service{
		logger:   logger.Global().WithComponent("Sweeper.Service"),
		meets:    meets,
		engine:   engine,
		jobs:     make(chan Job),
		stopCh:   make(chan struct{}),
		interval: interval,
		horizon:  horizon,
		loc:      loc,
	}
	s.Start(runtime.GOMAXPROCS(0))

	return s, nil
}

func (s *Service) Start(numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go func(workerID int, l logger.Logger) {
			for {
				select {
				case <-s.stopCh:
					return
				case job := <-s.jobs:
					ll := l.With().Int("worker_id", workerID).Logger()
					if err := job(); err != nil {
						ll.Error().Err(err).Msg("Job failed")
						continue
					}
					ll.Debug().Msg("Job done")
				}
			}
		}(i, s.logger)
	}

	go func(l logger.Logger) {
		t := time.NewTimer(s.interval)
		for {
			select {
			case <-s.stopCh:
				t.Stop()
				return
			case <-t.C:
				l.Info().Msg("Sweeping stale meets")
				if err := s.sweep(); err != nil {
					l.Error().Err(err).Msg("Sweep failed")
				}
				t.Reset(s.interval)
			}
		}
	}(s.logger)
}

func (s *Service) Stop() {
	s.logger.Debug().Msg("Service shutdown")
	close(s.stopCh)
}

// Run enqueues a job for the worker pool.
func (s *Service) Run(job Job) {
	s.jobs <- job
}

// sweep enqueues a cancellation for every meet still unsettled inside the
// horizon.
func (s *Service) sweep() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	ctx = s.logger.WithContext(ctx)

	cutoff := staleCutoff(time.Now(), s.loc, s.horizon)

	meets, err := s.meets.AllStaleBefore(ctx, cutoff, staleStatuses)
	if err != nil {
		return err
	}

	s.logger.Info().Int("count", len(meets)).Msg("Stale meets found")

	for _, m := range meets {
		m := m
		s.Run(s.CancelMeet(m))
	}

	return nil
}

// staleCutoff is the horizon before the current day's boundary in loc, so a
// sweep expires whole calendar days at a time regardless of when inside the
// day it runs.
func staleCutoff(now time.Time, loc *time.Location, horizon time.Duration) time.Time {
	day := now.In(loc)
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	return midnight.Add(-horizon)
}

// CancelMeet expires one meet: the status write first, then the (previous,
// current) pair through the settlement engine, exactly like an external
// cancellation would arrive.
func (s *Service) CancelMeet(prev *model.Meet) Job {
	timeout := time.Second * 30
	return func() error {
		l := s.logger.With().Str("meet_id", prev.ID.String()).Logger()
		l.Debug().Msg("Cancelling stale meet")

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		ctx = l.WithContext(ctx)

		if err := s.meets.UpdateStatus(ctx, prev.ID, model.MeetStatusCancelled); err != nil {
			return err
		}

		cur := *prev
		cur.Status = model.MeetStatusCancelled

		return s.engine.MeetUpdated(ctx, prev, &cur)
	}
}
