package monitoring

import (
	"time"

	"github.com/fitlog/fitlog-be/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// StatsLogger periodically logs aggregate tracker activity (user and
// exercise counts) on a cron schedule.
type StatsLogger struct {
	service  services.TrackerServiceProvider
	schedule cron.Schedule
	done     chan bool
}

// NewStatsLogger creates a new StatsLogger. spec is a standard cron
// expression or descriptor (e.g. "@every 15m").
func NewStatsLogger(service services.TrackerServiceProvider, spec string) (*StatsLogger, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, err
	}
	return &StatsLogger{
		service:  service,
		schedule: schedule,
		done:     make(chan bool),
	}, nil
}

// Run starts the periodic logging. It blocks until Stop is called.
func (sl *StatsLogger) Run() {
	log.Info().Msg("Starting background stats logger...")

	// Log once immediately on start
	sl.logStats()

	for {
		next := sl.schedule.Next(time.Now())
		select {
		case <-sl.done:
			log.Info().Msg("Stopping background stats logger.")
			return
		case <-time.After(time.Until(next)):
			sl.logStats()
		}
	}
}

// Stop signals the logger to shut down.
func (sl *StatsLogger) Stop() {
	close(sl.done)
}

func (sl *StatsLogger) logStats() {
	stats, err := sl.service.Stats()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to collect tracker stats")
		return
	}
	log.Info().
		Int("users", stats.Users).
		Int("exercises", stats.Exercises).
		Msg("Tracker activity")
}
