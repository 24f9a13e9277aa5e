package scanner

import (
	"database/sql"

	model "github.com/MassBabyGeek/HabitQuest-backend/internal/models"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/utils"
	"github.com/lib/pq"
)

// rowScanner couvre pgx.Row et pgx.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanUserProfile scanne une ligne SQL vers un UserProfile
// Utilise les types sql.Null* et les convertit automatiquement
func ScanUserProfile(s rowScanner) (*model.UserProfile, error) {
	var user model.UserProfile
	var avatar, bio, country sql.NullString
	var deletedAt sql.NullTime

	err := s.Scan(
		&user.ID, &user.Username, &user.Email, &avatar, &bio, &country,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}

	// Conversions
	user.Avatar = utils.NullStringToString(avatar)
	user.Bio = utils.NullStringToString(bio)
	user.Country = utils.NullStringToString(country)
	user.DeletedAt = utils.NullTimeToPointer(deletedAt)

	return &user, nil
}

// ScanLeaderboardEntry scanne une ligne du classement, badges en text[] via pq.Array
func ScanLeaderboardEntry(s rowScanner) (*model.LeaderboardEntry, error) {
	var e model.LeaderboardEntry
	var avatar sql.NullString

	err := s.Scan(
		&e.UserID, &e.Username, &avatar, &e.Position, &e.Points, pq.Array(&e.Badges),
	)
	if err != nil {
		return nil, err
	}

	e.Avatar = utils.NullStringToString(avatar)

	return &e, nil
}

// ScanChatMessage scanne une ligne SQL vers un ChatMessage
func ScanChatMessage(s rowScanner) (*model.ChatMessage, error) {
	var m model.ChatMessage
	var avatar sql.NullString

	err := s.Scan(&m.ID, &m.UserID, &m.Username, &avatar, &m.Content, &m.CreatedAt)
	if err != nil {
		return nil, err
	}

	m.Avatar = utils.NullStringToString(avatar)

	return &m, nil
}

// ScanTaskProgress scanne une ligne SQL vers un TaskProgress
func ScanTaskProgress(s rowScanner) (*model.TaskProgress, error) {
	var p model.TaskProgress

	err := s.Scan(&p.ID, &p.UserID, &p.TaskID, &p.Date, &p.IsChecked, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &p, nil
}
