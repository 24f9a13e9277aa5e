package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/MassBabyGeek/HabitQuest-backend/internal/database"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/middleware"
	model "github.com/MassBabyGeek/HabitQuest-backend/internal/models"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/scanner"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/utils"
	"github.com/google/uuid"
)

// MaxMessageLength longueur maximale d'un message du chat communautaire
const MaxMessageLength = 500

// GetChatMessages retourne les derniers messages (ordre chronologique)
func GetChatMessages(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 && l <= 200 {
		limit = l
	}

	rows, err := database.DB.Query(context.Background(), `
		SELECT m.id, m.user_id, u.username, u.avatar, m.content, m.created_at
		FROM (
			SELECT id, user_id, content, created_at
			FROM messages
			ORDER BY created_at DESC
			LIMIT $1
		) m
		INNER JOIN users u ON m.user_id = u.id
		ORDER BY m.created_at ASC
	`, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query messages: "+err.Error())
		return
	}
	defer rows.Close()

	var messages []model.ChatMessage
	for rows.Next() {
		m, err := scanner.ScanChatMessage(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan message row: "+err.Error())
			return
		}
		messages = append(messages, *m)
	}

	utils.Success(w, messages)
}

// PostChatMessage publie un message dans le chat communautaire
func PostChatMessage(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var payload struct {
		Content string `json:"content"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	content := strings.TrimSpace(payload.Content)
	if content == "" {
		utils.Error(w, http.StatusBadRequest, "message content is empty")
		return
	}
	if len(content) > MaxMessageLength {
		utils.Error(w, http.StatusBadRequest, "message too long")
		return
	}

	msg := model.ChatMessage{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Username: user.Username,
		Avatar:   user.Avatar,
		Content:  content,
	}

	err := database.DB.QueryRow(context.Background(),
		`INSERT INTO messages(id, user_id, content, created_at)
		 VALUES($1, $2, $3, NOW())
		 RETURNING created_at`,
		msg.ID, msg.UserID, msg.Content,
	).Scan(&msg.CreatedAt)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save message: "+err.Error())
		return
	}

	utils.Success(w, msg)
}
