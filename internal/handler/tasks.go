package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MassBabyGeek/HabitQuest-backend/internal/database"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/job"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/middleware"
	model "github.com/MassBabyGeek/HabitQuest-backend/internal/models"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/scanner"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/utils"
	"github.com/gorilla/mux"
)

// GetTodayTasks retourne la feuille de tâches du jour (5 tâches + challenge hebdo)
func GetTodayTasks(w http.ResponseWriter, r *http.Request) {
	today := canonicalDay()

	var sheet model.TaskSheet
	var t1, t2, t3, t4, t5, weekly string

	err := database.DB.QueryRow(context.Background(),
		`SELECT date, task1, task2, task3, task4, task5, COALESCE(weekly_challenge,'')
		 FROM tasks WHERE date=$1`,
		today,
	).Scan(&sheet.Date, &t1, &t2, &t3, &t4, &t5, &weekly)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "no task sheet for "+today)
		return
	}

	sheet.Tasks = []string{t1, t2, t3, t4, t5}
	sheet.WeeklyChallenge = weekly

	utils.Success(w, sheet)
}

// ToggleTask coche/décoche une tâche du jour pour l'utilisateur authentifié.
// N'écrit aucun point : seul le job quotidien attribue les points.
func ToggleTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := strconv.Atoi(mux.Vars(r)["taskId"])
	if err != nil || taskID < 1 || taskID > job.TasksPerDay {
		utils.Error(w, http.StatusBadRequest, "taskId must be between 1 and 5")
		return
	}

	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var payload struct {
		IsChecked bool `json:"isChecked"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	today := canonicalDay()
	ctx := context.Background()

	// Upsert : une ligne par (user, task, jour)
	row := database.DB.QueryRow(ctx,
		`INSERT INTO task_progress(user_id, task_id, date, is_checked, updated_at)
		 VALUES($1, $2, $3, $4, NOW())
		 ON CONFLICT (user_id, task_id, date)
		 DO UPDATE SET is_checked=$4, updated_at=NOW()
		 RETURNING id, user_id, task_id, date, is_checked, updated_at`,
		user.ID, taskID, today, payload.IsChecked,
	)

	progress, err := scanner.ScanTaskProgress(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save task progress: "+err.Error())
		return
	}

	utils.Success(w, progress)
}

// GetUserTasks retourne l'état des cases d'un utilisateur pour un jour donné (défaut: aujourd'hui)
func GetUserTasks(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	date := r.URL.Query().Get("date")
	if date == "" {
		date = canonicalDay()
	}

	rows, err := database.DB.Query(context.Background(),
		`SELECT id, user_id, task_id, date, is_checked, updated_at
		 FROM task_progress WHERE user_id=$1 AND date=$2
		 ORDER BY task_id`,
		id, date,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query task progress: "+err.Error())
		return
	}
	defer rows.Close()

	var list []model.TaskProgress
	for rows.Next() {
		p, err := scanner.ScanTaskProgress(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan task progress: "+err.Error())
			return
		}
		list = append(list, *p)
	}

	utils.Success(w, list)
}

// GetUserHistory retourne les lignes d'historique écrites par le job (les plus récentes d'abord)
func GetUserHistory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	limit := 30
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 && l <= 365 {
		limit = l
	}

	rows, err := database.DB.Query(context.Background(),
		`SELECT user_id, date, completed, points, created_at
		 FROM progress WHERE user_id=$1
		 ORDER BY date DESC LIMIT $2`,
		id, limit,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query history: "+err.Error())
		return
	}
	defer rows.Close()

	var entries []model.ProgressEntry
	for rows.Next() {
		var e model.ProgressEntry
		if err := rows.Scan(&e.UserID, &e.Date, &e.CompletedCount, &e.PointsAwarded, &e.CreatedAt); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan history row: "+err.Error())
			return
		}
		entries = append(entries, e)
	}

	utils.Success(w, entries)
}
