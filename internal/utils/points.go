package utils

import (
	"context"
	"fmt"

	"github.com/MassBabyGeek/HabitQuest-backend/internal/database"
	model "github.com/MassBabyGeek/HabitQuest-backend/internal/models"
)

// AwardPoints incrémente atomiquement le total de points d'un utilisateur.
// L'incrément se fait côté base (pas de lecture-puis-écriture) et le total
// reste plancher à zéro pour les deltas négatifs.
func AwardPoints(ctx context.Context, userID string, delta int) error {
	_, err := database.DB.Exec(ctx,
		`UPDATE users_meta SET total_pts = GREATEST(0, total_pts + $1) WHERE user_id = $2`,
		delta, userID,
	)
	if err != nil {
		return fmt.Errorf("impossible d'incrémenter les points: %w", err)
	}
	return nil
}

// GetUserMeta récupère la ligne de progression d'un utilisateur
func GetUserMeta(ctx context.Context, userID string) (*model.UserMeta, error) {
	var meta model.UserMeta
	err := database.DB.QueryRow(ctx,
		`SELECT user_id, total_pts, streak, COALESCE(last_date,''),
		        weekly_challenge_completions, COALESCE(weekly_challenge_reset_date,'')
		 FROM users_meta WHERE user_id=$1`,
		userID,
	).Scan(&meta.UserID, &meta.TotalPoints, &meta.Streak, &meta.LastDate,
		&meta.WeeklyCompletions, &meta.WeeklyResetDate)
	if err != nil {
		return nil, fmt.Errorf("users_meta introuvable: %w", err)
	}
	return &meta, nil
}
