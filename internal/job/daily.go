// Package job contient le job quotidien qui convertit les tâches complétées
// de la journée en points (récompense ou pénalité) pour chaque utilisateur.
// Il doit tourner en fin de journée : le jour traité est celui de l'invocation.
package job

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MassBabyGeek/HabitQuest-backend/internal/logger"
	"golang.org/x/sync/errgroup"
)

const (
	// TasksPerDay nombre de tâches quotidiennes (fixe, la feuille en contient 5)
	TasksPerDay = 5
	// PointsPerTask points gagnés par tâche complétée
	PointsPerTask = 4
	// FullDayBonus bonus pour une journée 5/5
	FullDayBonus = 10
	// PenaltyStep pénalité de base par jour manqué consécutif
	PenaltyStep = 5
	// PenaltyCap pénalité maximale par jour
	PenaltyCap = 20

	// DefaultConcurrency limite du nombre d'utilisateurs traités en parallèle
	DefaultConcurrency = 8
)

// UserProgress est la ligne de progression d'un utilisateur telle que lue et
// écrite par le job (table users_meta).
type UserProgress struct {
	UserID      string
	TotalPoints int
	Streak      int
	// LastDate dernier jour traité (YYYY-MM-DD), "" si jamais traité
	LastDate string
}

// Store regroupe les opérations de persistance dont le job a besoin.
type Store interface {
	ListUsers(ctx context.Context) ([]UserProgress, error)
	CompletedCount(ctx context.Context, userID, date string) (int, error)
	UpdateProgress(ctx context.Context, up UserProgress) error
	AppendHistory(ctx context.Context, userID, date string, completed, points int) error
}

// Report est le résumé d'une exécution du job.
type Report struct {
	Date      string   `json:"date"`
	Processed int      `json:"processed"`
	Skipped   int      `json:"skipped"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

// Summary retourne le message lisible renvoyé au scheduler
func (r Report) Summary() string {
	msg := fmt.Sprintf("daily progress %s: %d processed, %d skipped, %d failed",
		r.Date, r.Processed, r.Skipped, r.Failed)
	if len(r.Errors) > 0 {
		msg += " (" + strings.Join(r.Errors, "; ") + ")"
	}
	return msg
}

// DailyProgressJob applique une fois par jour les points/pénalités à tous les
// utilisateurs. Sans état entre deux exécutions : tout est relu depuis le store.
type DailyProgressJob struct {
	store       Store
	loc         *time.Location
	concurrency int
}

// NewDailyProgressJob crée le job. loc détermine le jour calendaire canonique
// (UTC par défaut) ; concurrency <= 0 retombe sur DefaultConcurrency.
func NewDailyProgressJob(store Store, loc *time.Location, concurrency int) *DailyProgressJob {
	if loc == nil {
		loc = time.UTC
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &DailyProgressJob{store: store, loc: loc, concurrency: concurrency}
}

// Run exécute le job pour la date du jour (dérivée de l'heure d'invocation).
func (j *DailyProgressJob) Run(ctx context.Context) (Report, error) {
	return j.RunForDate(ctx, time.Now().In(j.loc).Format("2006-01-02"))
}

// RunForDate exécute le job pour une date donnée (YYYY-MM-DD).
//
// Chaque utilisateur est une unité de travail indépendante : une erreur de
// lecture ou d'écriture sur un utilisateur est collectée dans le rapport sans
// interrompre les autres. Seul l'échec du listing initial est fatal.
func (j *DailyProgressJob) RunForDate(ctx context.Context, today string) (Report, error) {
	report := Report{Date: today}

	users, err := j.store.ListUsers(ctx)
	if err != nil {
		return report, fmt.Errorf("could not list users: %w", err)
	}
	if len(users) == 0 {
		logger.Info("No users found to process")
		return report, nil
	}

	logger.Info("Processing %d users for %s...", len(users), today)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(j.concurrency)

	for _, user := range users {
		user := user

		// Garde d'idempotence : déjà traité aujourd'hui
		if user.LastDate == today {
			report.Skipped++
			continue
		}

		g.Go(func() error {
			if err := j.processUser(gctx, user, today); err != nil {
				logger.Error("User %s: %v", user.UserID, err)
				mu.Lock()
				report.Failed++
				report.Errors = append(report.Errors, fmt.Sprintf("user %s: %v", user.UserID, err))
				mu.Unlock()
				return nil // l'utilisateur sera retenté au prochain run
			}
			mu.Lock()
			report.Processed++
			mu.Unlock()
			return nil
		})
	}

	g.Wait()

	if report.Failed > 0 {
		logger.Warning("Daily progress done with %d failure(s): %s", report.Failed, report.Summary())
	} else {
		logger.Success("Daily progress done: %s", report.Summary())
	}

	return report, nil
}

// processUser applique la séquence lecture -> calcul -> écriture pour un
// utilisateur. L'historique est inséré avant la mise à jour du total, comme la
// fonction d'origine : si l'update échoue, last_date reste inchangé et
// l'utilisateur est retraité au run suivant.
func (j *DailyProgressJob) processUser(ctx context.Context, user UserProgress, today string) error {
	completed, err := j.store.CompletedCount(ctx, user.UserID, today)
	if err != nil {
		return fmt.Errorf("completed count: %w", err)
	}

	newTotal, newStreak, awarded := applyDay(user.TotalPoints, user.Streak, completed)

	if completed == 0 {
		logger.Info("User %s missed the day (streak %d -> %d), total %d -> %d",
			user.UserID, user.Streak, newStreak, user.TotalPoints, newTotal)
	} else {
		logger.Info("User %s completed %d task(s), earning %d points", user.UserID, completed, awarded)
	}

	if err := j.store.AppendHistory(ctx, user.UserID, today, completed, awarded); err != nil {
		return fmt.Errorf("append history: %w", err)
	}

	return j.store.UpdateProgress(ctx, UserProgress{
		UserID:      user.UserID,
		TotalPoints: newTotal,
		Streak:      newStreak,
		LastDate:    today,
	})
}

// applyDay calcule le nouvel état (total, streak, points attribués) à partir du
// nombre de tâches complétées dans la journée.
func applyDay(total, streak, completed int) (newTotal, newStreak, awarded int) {
	if completed == 0 {
		penalty := (streak + 1) * PenaltyStep
		if penalty > PenaltyCap {
			penalty = PenaltyCap
		}
		newTotal = total - penalty
		if newTotal < 0 {
			newTotal = 0 // le total ne descend jamais sous zéro
		}
		return newTotal, streak + 1, 0
	}

	awarded = completed * PointsPerTask
	if completed == TasksPerDay {
		awarded += FullDayBonus
	}
	return total + awarded, 0, awarded
}
