package job_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MassBabyGeek/HabitQuest-backend/internal/job"
)

type historyRow struct {
	Date      string
	Completed int
	Points    int
}

// mockStore garde tout en mémoire ; un mutex le protège car le job traite les
// utilisateurs en parallèle
type mockStore struct {
	mu        sync.Mutex
	users     map[string]job.UserProgress
	completed map[string]int // userID -> tâches cochées du jour
	history   map[string][]historyRow

	listErr    error
	countErrs  map[string]error
	updateErrs map[string]error
}

func newMockStore() *mockStore {
	return &mockStore{
		users:      make(map[string]job.UserProgress),
		completed:  make(map[string]int),
		history:    make(map[string][]historyRow),
		countErrs:  make(map[string]error),
		updateErrs: make(map[string]error),
	}
}

func (m *mockStore) ListUsers(ctx context.Context) ([]job.UserProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []job.UserProgress
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockStore) CompletedCount(ctx context.Context, userID, date string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.countErrs[userID]; err != nil {
		return 0, err
	}
	return m.completed[userID], nil
}

func (m *mockStore) UpdateProgress(ctx context.Context, up job.UserProgress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.updateErrs[up.UserID]; err != nil {
		return err
	}
	m.users[up.UserID] = up
	return nil
}

func (m *mockStore) AppendHistory(ctx context.Context, userID, date string, completed, points int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history[userID] = append(m.history[userID], historyRow{Date: date, Completed: completed, Points: points})
	return nil
}

func newJob(store job.Store) *job.DailyProgressJob {
	return job.NewDailyProgressJob(store, time.UTC, 4)
}

const today = "2026-08-28"

func TestRun_FullDayRewardWithBonus(t *testing.T) {
	store := newMockStore()
	store.users["u1"] = job.UserProgress{UserID: "u1", TotalPoints: 145, Streak: 2}
	store.completed["u1"] = 5

	report, err := newJob(store).RunForDate(context.Background(), today)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if report.Processed != 1 {
		t.Errorf("Expected 1 processed, got %d", report.Processed)
	}

	u := store.users["u1"]
	if u.TotalPoints != 175 {
		t.Errorf("Full day: expected 145+5*4+10=175 points, got %d", u.TotalPoints)
	}
	if u.Streak != 0 {
		t.Errorf("Full day: expected streak reset to 0, got %d", u.Streak)
	}
	if u.LastDate != today {
		t.Errorf("Expected lastDate=%s, got %s", today, u.LastDate)
	}

	h := store.history["u1"]
	if len(h) != 1 || h[0].Completed != 5 || h[0].Points != 30 {
		t.Errorf("Expected one history row {5, 30}, got %+v", h)
	}
}

func TestRun_PartialRewardNoBonus(t *testing.T) {
	store := newMockStore()
	store.users["u1"] = job.UserProgress{UserID: "u1", TotalPoints: 100, Streak: 4}
	store.completed["u1"] = 3

	if _, err := newJob(store).RunForDate(context.Background(), today); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	u := store.users["u1"]
	if u.TotalPoints != 112 {
		t.Errorf("3 tasks: expected 100+3*4=112 points, got %d", u.TotalPoints)
	}
	if u.Streak != 0 {
		t.Errorf("3 tasks: expected streak reset, got %d", u.Streak)
	}
}

func TestRun_PenaltyFirstMiss(t *testing.T) {
	store := newMockStore()
	store.users["u1"] = job.UserProgress{UserID: "u1", TotalPoints: 50, Streak: 0}

	if _, err := newJob(store).RunForDate(context.Background(), today); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	u := store.users["u1"]
	if u.TotalPoints != 45 {
		t.Errorf("First miss: expected penalty 5 (50->45), got total %d", u.TotalPoints)
	}
	if u.Streak != 1 {
		t.Errorf("First miss: expected streak 1, got %d", u.Streak)
	}

	h := store.history["u1"]
	if len(h) != 1 || h[0].Points != 0 {
		t.Errorf("Penalty day must record 0 points awarded, got %+v", h)
	}
}

func TestRun_PenaltyCappedAtTwenty(t *testing.T) {
	store := newMockStore()
	store.users["u1"] = job.UserProgress{UserID: "u1", TotalPoints: 300, Streak: 3}

	if _, err := newJob(store).RunForDate(context.Background(), today); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	u := store.users["u1"]
	if u.TotalPoints != 280 {
		t.Errorf("Streak 3: expected penalty min(20, 4*5)=20 (300->280), got %d", u.TotalPoints)
	}
	if u.Streak != 4 {
		t.Errorf("Expected streak 4, got %d", u.Streak)
	}
}

func TestRun_TotalNeverGoesNegative(t *testing.T) {
	store := newMockStore()
	store.users["u1"] = job.UserProgress{UserID: "u1", TotalPoints: 3, Streak: 0}

	if _, err := newJob(store).RunForDate(context.Background(), today); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := store.users["u1"].TotalPoints; got != 0 {
		t.Errorf("Expected total floored at 0 (3-5), got %d", got)
	}
}

func TestRun_SecondRunSameDayIsNoop(t *testing.T) {
	store := newMockStore()
	store.users["u1"] = job.UserProgress{UserID: "u1", TotalPoints: 10, Streak: 0}
	store.completed["u1"] = 2

	j := newJob(store)
	if _, err := j.RunForDate(context.Background(), today); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	afterFirst := store.users["u1"]

	report, err := j.RunForDate(context.Background(), today)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if report.Skipped != 1 || report.Processed != 0 {
		t.Errorf("Second run: expected 1 skipped / 0 processed, got %d / %d",
			report.Skipped, report.Processed)
	}
	if store.users["u1"] != afterFirst {
		t.Errorf("Second run must not change state: %+v vs %+v", store.users["u1"], afterFirst)
	}
	if len(store.history["u1"]) != 1 {
		t.Errorf("Second run must not append history, got %d rows", len(store.history["u1"]))
	}
}

func TestRun_PerUserErrorDoesNotAbortOthers(t *testing.T) {
	store := newMockStore()
	store.users["bad"] = job.UserProgress{UserID: "bad", TotalPoints: 10}
	store.users["good"] = job.UserProgress{UserID: "good", TotalPoints: 10}
	store.completed["good"] = 5
	store.countErrs["bad"] = errors.New("connection reset")

	report, err := newJob(store).RunForDate(context.Background(), today)
	if err != nil {
		t.Fatalf("Per-user error must not fail the run: %v", err)
	}

	if report.Processed != 1 || report.Failed != 1 {
		t.Errorf("Expected 1 processed / 1 failed, got %d / %d", report.Processed, report.Failed)
	}
	if store.users["good"].TotalPoints != 40 {
		t.Errorf("Healthy user must still be processed, got %d points", store.users["good"].TotalPoints)
	}
	// L'utilisateur en échec reste non traité et sera repris au prochain run
	if store.users["bad"].LastDate == today {
		t.Errorf("Failed user must stay unprocessed")
	}
}

func TestRun_FailedUpdateLeavesUserRetriable(t *testing.T) {
	store := newMockStore()
	store.users["u1"] = job.UserProgress{UserID: "u1", TotalPoints: 10}
	store.completed["u1"] = 1
	store.updateErrs["u1"] = errors.New("write timeout")

	report, err := newJob(store).RunForDate(context.Background(), today)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if report.Failed != 1 {
		t.Errorf("Expected 1 failed, got %d", report.Failed)
	}

	// last_date inchangé => garde d'idempotence inactive, retraité ensuite
	delete(store.updateErrs, "u1")
	report, err = newJob(store).RunForDate(context.Background(), today)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if report.Processed != 1 {
		t.Errorf("Retry run: expected user processed, got %+v", report)
	}
	if store.users["u1"].TotalPoints != 14 {
		t.Errorf("Retry run: expected 10+4=14 points, got %d", store.users["u1"].TotalPoints)
	}
}

func TestRun_ListUsersFailureIsFatal(t *testing.T) {
	store := newMockStore()
	store.listErr = errors.New("database offline")

	if _, err := newJob(store).RunForDate(context.Background(), today); err == nil {
		t.Fatal("Expected a fatal error when the user list cannot be fetched")
	}
}

func TestRun_ManyUsersAllProcessed(t *testing.T) {
	store := newMockStore()
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		store.users[id] = job.UserProgress{UserID: id, TotalPoints: 20}
		store.completed[id] = 2
	}

	report, err := newJob(store).RunForDate(context.Background(), today)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if report.Processed != 7 {
		t.Errorf("Expected 7 processed, got %d", report.Processed)
	}
	for id, u := range store.users {
		if u.TotalPoints != 28 {
			t.Errorf("User %s: expected 28 points, got %d", id, u.TotalPoints)
		}
	}
}
