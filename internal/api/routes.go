package api

import (
	"net/http"

	"github.com/MassBabyGeek/HabitQuest-backend/internal/handler"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/middleware"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.OptionalAuth)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)
	authenticatedRoutes.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/signup", handler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)

	// Users
	r.HandleFunc("/users", handler.GetUsers).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", handler.GetUser).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/users/{id}", handler.UpdateUser).Methods(http.MethodPut, http.MethodPatch)
	authenticatedRoutes.HandleFunc("/users/{id}/avatar", handler.UploadAvatar).Methods(http.MethodPost)

	// Ranks
	r.HandleFunc("/ranks", handler.GetRanks).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}/rank", handler.GetUserRank).Methods(http.MethodGet)

	// Daily tasks
	r.HandleFunc("/tasks/today", handler.GetTodayTasks).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/tasks/{taskId}/toggle", handler.ToggleTask).Methods(http.MethodPost)
	r.HandleFunc("/users/{id}/tasks", handler.GetUserTasks).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}/history", handler.GetUserHistory).Methods(http.MethodGet)

	// Weekly challenge
	authenticatedRoutes.HandleFunc("/challenges/weekly/complete", handler.CompleteWeeklyChallenge).Methods(http.MethodPost)

	// Leaderboard
	r.HandleFunc("/leaderboard", handler.GetLeaderboard).Methods(http.MethodGet)

	// Community chat
	r.HandleFunc("/chat/messages", handler.GetChatMessages).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/chat/messages", handler.PostChatMessage).Methods(http.MethodPost)

	// Jobs (déclenchement manuel, même effet que le cron ; réservé aux
	// sessions valides, comme la fonction d'origine derrière son bearer token)
	authenticatedRoutes.HandleFunc("/jobs/daily-progress", handler.RunDailyProgress).Methods(http.MethodPost)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
