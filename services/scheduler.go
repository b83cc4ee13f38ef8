package services

import (
	"time"

	"domino-admin-system/models"

	"github.com/go-co-op/gocron/v2"
	log "github.com/sirupsen/logrus"
)

// StartLifecycleScheduler runs the periodic maintenance jobs: moving
// tournaments along their scheduled → active → completed lifecycle and
// flipping events in and out of their active window.
func (s *TournamentService) StartLifecycleScheduler(seasons *SeasonService) {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			now := time.Now()

			var due []models.Tournament
			err := s.DB.Where("status = ? AND start_time <= ?", models.TournamentScheduled, now).
				Find(&due).Error
			if err != nil {
				log.WithError(err).Error("scheduler: failed to load due tournaments")
				return
			}
			for _, t := range due {
				if _, err := s.UpdateStatus(t.ID, models.TournamentActive); err != nil {
					log.WithError(err).WithField("tournament", t.Name).Error("scheduler: failed to start tournament")
				} else {
					log.WithField("tournament", t.Name).Info("scheduler: tournament started")
				}
			}

			var over []models.Tournament
			err = s.DB.Where("status = ? AND end_time IS NOT NULL AND end_time <= ?", models.TournamentActive, now).
				Find(&over).Error
			if err != nil {
				log.WithError(err).Error("scheduler: failed to load finished tournaments")
				return
			}
			for _, t := range over {
				if _, err := s.UpdateStatus(t.ID, models.TournamentCompleted); err != nil {
					log.WithError(err).WithField("tournament", t.Name).Error("scheduler: failed to complete tournament")
				} else {
					log.WithField("tournament", t.Name).Info("scheduler: tournament completed")
				}
			}
		}),
	)

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			now := time.Now()

			res := seasons.DB.Model(&models.Event{}).
				Where("is_active = ? AND start_time <= ? AND end_time > ?", false, now, now).
				Update("is_active", true)
			if res.Error != nil {
				log.WithError(res.Error).Error("scheduler: failed to activate events")
			} else if res.RowsAffected > 0 {
				log.WithField("count", res.RowsAffected).Info("scheduler: events activated")
			}

			res = seasons.DB.Model(&models.Event{}).
				Where("is_active = ? AND end_time <= ?", true, now).
				Update("is_active", false)
			if res.Error != nil {
				log.WithError(res.Error).Error("scheduler: failed to deactivate events")
			} else if res.RowsAffected > 0 {
				log.WithField("count", res.RowsAffected).Info("scheduler: events deactivated")
			}
		}),
	)
}
