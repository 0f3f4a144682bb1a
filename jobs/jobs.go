package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const rosterTimeout = 2 * time.Minute

type RosterPublisher interface {
	Publish(ctx context.Context) (int, error)
}

// StartDailyScheduler publishes the ward roster on schedule, by default every day
// at 00:05. The returned cron is already running.
func StartDailyScheduler(publisher RosterPublisher, schedule string) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		log.Info().Msg("Running daily ward roster scheduler...")
		RunTodayRoster(context.Background(), publisher)
	})
	if err != nil {
		log.Error().Err(err).Str("schedule", schedule).Msg("Error adding roster job")
		return nil, err
	}

	c.Start()
	return c, nil
}

func RunTodayRoster(ctx context.Context, publisher RosterPublisher) {
	ctx, cancel := context.WithTimeout(ctx, rosterTimeout)
	defer cancel()

	saved, err := publisher.Publish(ctx)
	if err != nil {
		log.Error().Err(err).Int("saved", saved).Msg("Error publishing ward roster")
		return
	}
	log.Info().Int("wards", saved).Msg("Ward roster published")
}
