// Package scheduler déclenche le job de progression quotidien à heure fixe.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MassBabyGeek/HabitQuest-backend/internal/job"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/logger"
	"github.com/go-co-op/gocron"
)

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	dailyJob  *job.DailyProgressJob
}

// New creates a new scheduler instance. loc est le fuseau dans lequel l'heure
// de déclenchement est interprétée (le même que le jour canonique du job).
func New(dailyJob *job.DailyProgressJob, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(loc),
		dailyJob:  dailyJob,
	}
}

// Start planifie le job quotidien à l'heure donnée (0-23) et lance le scheduler
// en arrière-plan. Le job lui-même est idempotent par utilisateur : un
// re-déclenchement manuel le même jour ne compte rien deux fois.
func (s *Scheduler) Start(hour int) error {
	at := fmt.Sprintf("%02d:00", hour)

	_, err := s.scheduler.Every(1).Day().At(at).Do(s.runDailyProgress)
	if err != nil {
		return fmt.Errorf("could not schedule daily progress job: %w", err)
	}

	s.scheduler.StartAsync()
	logger.Info("Daily progress job scheduled at %s", at)

	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) runDailyProgress() {
	report, err := s.dailyJob.Run(context.Background())
	if err != nil {
		// Échec global : rien n'a été traité, le run de demain reprendra tout
		logger.Error("Scheduled daily progress run failed: %v", err)
		return
	}
	logger.Success("Scheduled run: %s", report.Summary())
}
