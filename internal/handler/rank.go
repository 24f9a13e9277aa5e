package handler

import (
	"context"
	"net/http"

	"github.com/MassBabyGeek/HabitQuest-backend/internal/rank"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/utils"
	"github.com/gorilla/mux"
)

// GetRanks retourne la table statique des rangs (badges et seuils du frontend)
func GetRanks(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, rank.Tiers())
}

// GetUserRank calcule le rang courant d'un utilisateur à partir de son total stocké
func GetUserRank(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	meta, err := utils.GetUserMeta(context.Background(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "user not found")
		return
	}

	// La table ne définit rien sous zéro : on borne avant l'appel
	points := meta.TotalPoints
	if points < 0 {
		points = 0
	}

	utils.Success(w, map[string]interface{}{
		"points": meta.TotalPoints,
		"streak": meta.Streak,
		"rank":   rank.ForPoints(points),
	})
}
