package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MassBabyGeek/HabitQuest-backend/internal/database"
	model "github.com/MassBabyGeek/HabitQuest-backend/internal/models"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/rank"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/scanner"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/utils"
)

// GetLeaderboard récupère le classement général par points
func GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 && l <= 200 {
		limit = l
	}

	ctx := context.Background()

	rows, err := database.DB.Query(ctx, `
		WITH ranked_users AS (
			SELECT
				m.user_id,
				m.total_pts,
				m.badges,
				ROW_NUMBER() OVER (ORDER BY m.total_pts DESC) as position
			FROM users_meta m
		)
		SELECT
			ru.user_id,
			u.username,
			u.avatar,
			ru.position,
			ru.total_pts,
			ru.badges
		FROM ranked_users ru
		INNER JOIN users u ON ru.user_id = u.id
		WHERE u.deleted_at IS NULL
		ORDER BY ru.position
		LIMIT $1
	`, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query leaderboard: "+err.Error())
		return
	}
	defer rows.Close()

	var entries []model.LeaderboardEntry
	for rows.Next() {
		e, err := scanner.ScanLeaderboardEntry(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan leaderboard row: "+err.Error())
			return
		}
		// Le tier affiché à côté du pseudo est dérivé du total, jamais stocké
		e.Tier = rank.ForPoints(e.Points).Current.Name
		entries = append(entries, *e)
	}

	utils.Success(w, entries)
}
