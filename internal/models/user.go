package model

import (
	"time"
)

// DateFields contient les champs d'audit standard pour toutes les entités
type DateFields struct {
	CreatedAt time.Time  `json:"createdAt,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt,omitempty"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

type UserProfile struct {
	ID       string    `json:"id,omitempty"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Avatar   string    `json:"avatar,omitempty"`
	Bio      string    `json:"bio,omitempty"`
	Country  string    `json:"country,omitempty"`
	JoinDate time.Time `json:"joinDate,omitempty"`
	DateFields
}

// UserMeta porte l'état de progression mis à jour par le job quotidien
type UserMeta struct {
	UserID string `json:"userId"`
	// Total de points cumulés, jamais négatif
	TotalPoints int `json:"totalPoints"`
	// Jours consécutifs sans aucune tâche complétée (streak de pénalité)
	Streak int `json:"streak"`
	// Dernier jour traité par le job, format YYYY-MM-DD ("" si jamais traité)
	LastDate string `json:"lastDate,omitempty"`
	// Complétions du challenge hebdomadaire
	WeeklyCompletions int    `json:"weeklyCompletions"`
	WeeklyResetDate   string `json:"weeklyResetDate,omitempty"`
}
