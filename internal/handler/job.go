package handler

import (
	"context"
	"net/http"

	"github.com/MassBabyGeek/HabitQuest-backend/internal/utils"
)

// RunDailyProgress déclenche le job quotidien à la demande (même chemin que le
// déclenchement planifié). Répéter l'appel dans la journée est sans effet :
// chaque utilisateur déjà traité est ignoré.
func RunDailyProgress(w http.ResponseWriter, r *http.Request) {
	if DailyJob == nil {
		utils.Error(w, http.StatusServiceUnavailable, "daily job is not configured")
		return
	}

	report, err := DailyJob.Run(context.Background())
	if err != nil {
		// Échec global (listing impossible) : le scheduler doit voir un non-2xx
		utils.Error(w, http.StatusInternalServerError, "daily progress run failed: "+err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Data:    report,
		Message: report.Summary(),
	})
}
