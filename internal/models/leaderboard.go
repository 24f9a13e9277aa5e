package model

type LeaderboardEntry struct {
	UserID   string   `json:"userId"`
	Username string   `json:"username"`
	Avatar   string   `json:"avatar,omitempty"`
	Position int      `json:"position"`
	Points   int      `json:"points"`
	Tier     string   `json:"tier"`
	Badges   []string `json:"badges,omitempty"`
}
