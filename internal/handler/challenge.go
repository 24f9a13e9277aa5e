package handler

import (
	"context"
	"net/http"

	"github.com/MassBabyGeek/HabitQuest-backend/internal/database"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/middleware"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/utils"
)

// WeeklyChallengePoints points attribués pour le challenge hebdomadaire
const WeeklyChallengePoints = 25

// CompleteWeeklyChallenge marque le challenge de la semaine comme complété
// (une fois par semaine par utilisateur) et crédite les points atomiquement.
func CompleteWeeklyChallenge(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx := context.Background()
	weekStart := canonicalWeekStart()

	// Le reset date vaut le lundi de la semaine déjà validée : si elle correspond
	// à la semaine courante, le challenge a déjà été complété
	res, err := database.DB.Exec(ctx,
		`UPDATE users_meta
		 SET weekly_challenge_completions = weekly_challenge_completions + 1,
		     weekly_challenge_reset_date = $2,
		     total_pts = total_pts + $3
		 WHERE user_id = $1
		   AND (weekly_challenge_reset_date IS NULL OR weekly_challenge_reset_date <> $2)`,
		user.ID, weekStart, WeeklyChallengePoints,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not complete weekly challenge: "+err.Error())
		return
	}

	if res.RowsAffected() == 0 {
		utils.Error(w, http.StatusConflict, "weekly challenge already completed this week")
		return
	}

	meta, err := utils.GetUserMeta(ctx, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load user meta: "+err.Error())
		return
	}

	utils.Success(w, map[string]interface{}{
		"pointsAwarded": WeeklyChallengePoints,
		"meta":          meta,
	})
}
