package handler

import (
	"net/http"
	"time"

	"github.com/MassBabyGeek/HabitQuest-backend/internal/job"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/services"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/utils"
)

// Dépendances partagées par les handlers, injectées au démarrage
var (
	// Cloudinary service d'upload des avatars (nil si non configuré)
	Cloudinary *services.CloudinaryService
	// DailyJob job de progression quotidien, déclenchable via POST /jobs/daily-progress
	DailyJob *job.DailyProgressJob
	// Location fuseau du jour calendaire canonique. Obligatoirement le même que
	// celui du job : les cases cochées et le comptage du job doivent tomber sur
	// la même date.
	Location = time.UTC
)

// canonicalDay retourne le jour calendaire courant vu par toute l'application
func canonicalDay() string {
	return utils.Today(Location)
}

// canonicalWeekStart retourne le lundi de la semaine courante dans le même fuseau
func canonicalWeekStart() string {
	return utils.StartOfWeek(Location)
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
