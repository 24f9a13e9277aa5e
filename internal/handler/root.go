package handler

import (
	"net/http"

	"github.com/MassBabyGeek/HabitQuest-backend/internal/utils"
)

// RootHandler expose un index minimal des routes de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, map[string]interface{}{
		"name":    "HabitQuest API",
		"version": "1.0",
		"endpoints": map[string]string{
			"auth":        "POST /auth/signup, /auth/login, /auth/logout",
			"users":       "GET /users, GET/PUT /users/{id}, POST /users/{id}/avatar",
			"ranks":       "GET /ranks, GET /users/{id}/rank",
			"tasks":       "GET /tasks/today, POST /tasks/{taskId}/toggle, GET /users/{id}/tasks",
			"challenge":   "POST /challenges/weekly/complete",
			"leaderboard": "GET /leaderboard",
			"history":     "GET /users/{id}/history",
			"chat":        "GET/POST /chat/messages",
			"jobs":        "POST /jobs/daily-progress",
		},
	})
}
