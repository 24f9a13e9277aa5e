package job

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implémente Store au-dessus du pool pgx partagé.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ListUsers(ctx context.Context) ([]UserProgress, error) {
	rows, err := s.db.Query(ctx,
		`SELECT user_id, total_pts, streak, COALESCE(last_date, '')
		 FROM users_meta`)
	if err != nil {
		return nil, fmt.Errorf("could not query users_meta: %w", err)
	}
	defer rows.Close()

	var users []UserProgress
	for rows.Next() {
		var u UserProgress
		if err := rows.Scan(&u.UserID, &u.TotalPoints, &u.Streak, &u.LastDate); err != nil {
			return nil, fmt.Errorf("could not scan users_meta row: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *PostgresStore) CompletedCount(ctx context.Context, userID, date string) (int, error) {
	var count int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM task_progress
		 WHERE user_id=$1 AND date=$2 AND is_checked=true`,
		userID, date,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("could not count completed tasks: %w", err)
	}
	return count, nil
}

func (s *PostgresStore) UpdateProgress(ctx context.Context, up UserProgress) error {
	_, err := s.db.Exec(ctx,
		`UPDATE users_meta SET total_pts=$2, streak=$3, last_date=$4
		 WHERE user_id=$1`,
		up.UserID, up.TotalPoints, up.Streak, up.LastDate,
	)
	if err != nil {
		return fmt.Errorf("could not update users_meta: %w", err)
	}
	return nil
}

func (s *PostgresStore) AppendHistory(ctx context.Context, userID, date string, completed, points int) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO progress(user_id, date, completed, points)
		 VALUES($1, $2, $3, $4)`,
		userID, date, completed, points,
	)
	if err != nil {
		return fmt.Errorf("could not insert progress row: %w", err)
	}
	return nil
}
