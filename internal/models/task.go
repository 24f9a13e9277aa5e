package model

import (
	"time"
)

// TaskSheet est la feuille de tâches d'une journée (5 tâches + challenge hebdo optionnel)
type TaskSheet struct {
	Date            string   `json:"date"` // YYYY-MM-DD
	Tasks           []string `json:"tasks"`
	WeeklyChallenge string   `json:"weeklyChallenge,omitempty"`
}

// TaskProgress est l'état d'une case à cocher pour un utilisateur, une tâche, un jour
type TaskProgress struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"userId"`
	TaskID    int       `json:"taskId"` // 1..5
	Date      string    `json:"date"`
	IsChecked bool      `json:"isChecked"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// ProgressEntry est une ligne d'historique écrite par le job quotidien (append-only)
type ProgressEntry struct {
	UserID         string    `json:"userId"`
	Date           string    `json:"date"`
	CompletedCount int       `json:"completedCount"`
	PointsAwarded  int       `json:"pointsAwarded"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}
