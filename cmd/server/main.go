package main

import (
	"net/http"
	"os"
	"time"

	"github.com/MassBabyGeek/HabitQuest-backend/internal/api"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/config"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/database"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/handler"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/job"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/logger"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/middleware"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/scheduler"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Success("Connected to PostgreSQL")

	// Cloudinary (optionnel : l'upload d'avatar renvoie 503 si non configuré)
	if cld, err := services.NewCloudinaryService(cfg); err != nil {
		logger.Warning("Cloudinary disabled: %v", err)
	} else {
		handler.Cloudinary = cld
	}

	// Daily progress job + scheduler
	loc, err := time.LoadLocation(cfg.JobTimezone)
	if err != nil {
		logger.Error("Invalid JOB_TIMEZONE %q: %v", cfg.JobTimezone, err)
		os.Exit(1)
	}

	dailyJob := job.NewDailyProgressJob(job.NewPostgresStore(db), loc, cfg.JobConcurrency)
	handler.DailyJob = dailyJob
	// Un seul jour canonique : les handlers datent les cases cochées dans le
	// même fuseau que le job qui les compte
	handler.Location = loc

	sched := scheduler.New(dailyJob, loc)
	if err := sched.Start(cfg.JobHour); err != nil {
		logger.Error("Could not start scheduler: %v", err)
		os.Exit(1)
	}
	defer sched.Stop()

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	h := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
