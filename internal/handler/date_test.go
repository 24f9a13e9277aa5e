package handler

import (
	"testing"
	"time"

	"github.com/MassBabyGeek/HabitQuest-backend/internal/utils"
)

// Les cases cochées et le comptage du job doivent partager le même jour
// calendaire : canonicalDay suit le fuseau injecté, pas UTC en dur.
func TestCanonicalDay_FollowsConfiguredLocation(t *testing.T) {
	defer func() { Location = time.UTC }()

	// Deux fuseaux extrêmes : à tout instant, au moins l'un des deux est sur
	// une autre date qu'UTC
	east := time.FixedZone("UTC+13", 13*3600)
	west := time.FixedZone("UTC-12", -12*3600)

	for _, loc := range []*time.Location{time.UTC, east, west} {
		Location = loc
		if got, want := canonicalDay(), utils.Today(loc); got != want {
			t.Errorf("Location %s: canonicalDay=%s, want %s", loc, got, want)
		}
	}

	if utils.Today(east) == utils.Today(west) {
		t.Error("Sanity: UTC+13 and UTC-12 should never share a calendar day")
	}
}

func TestCanonicalWeekStart_FollowsConfiguredLocation(t *testing.T) {
	defer func() { Location = time.UTC }()

	berlin := time.FixedZone("UTC+2", 2*3600)
	Location = berlin

	if got, want := canonicalWeekStart(), utils.StartOfWeek(berlin); got != want {
		t.Errorf("canonicalWeekStart=%s, want %s", got, want)
	}
}
