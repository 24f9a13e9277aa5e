package handler

import (
	"context"
	"net/http"

	"github.com/MassBabyGeek/HabitQuest-backend/internal/database"
	model "github.com/MassBabyGeek/HabitQuest-backend/internal/models"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := context.Background()
	var user model.UserProfile
	var hashedPassword string

	err := database.DB.QueryRow(ctx,
		`SELECT id, username, email, COALESCE(avatar,''), COALESCE(bio,''), COALESCE(country,''),
		 join_date, created_at, updated_at, password_hash
		 FROM users WHERE email=$1 AND deleted_at IS NULL`,
		req.Email,
	).Scan(&user.ID, &user.Username, &user.Email, &user.Avatar, &user.Bio, &user.Country,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt, &hashedPassword)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	ip, userAgent := utils.ExtractIPAndUserAgent(r)
	token, err := utils.CreateSession(ctx, user.ID, ip, userAgent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session: "+err.Error())
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

func Logout(w http.ResponseWriter, r *http.Request) {
	token, err := utils.GetToken(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "missing token")
		return
	}

	if err := utils.InvalidateSession(context.Background(), token); err != nil {
		utils.Error(w, http.StatusNotFound, "session not found or already logged out")
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}

func Signup(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if payload.Username == "" || payload.Email == "" || payload.Password == "" {
		utils.Error(w, http.StatusBadRequest, "username, email and password are required")
		return
	}

	ctx := context.Background()
	hashed, _ := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)

	var user model.UserProfile
	err := database.DB.QueryRow(ctx,
		`INSERT INTO users(username, email, password_hash, join_date, created_at, updated_at)
		 VALUES($1, $2, $3, NOW(), NOW(), NOW())
		 RETURNING id, username, email, join_date, created_at, updated_at`,
		payload.Username, payload.Email, string(hashed),
	).Scan(&user.ID, &user.Username, &user.Email, &user.JoinDate, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create user: "+err.Error())
		return
	}

	// Ligne de progression initiale : 0 point, streak 0, jamais traitée par le job
	_, err = database.DB.Exec(ctx,
		`INSERT INTO users_meta(user_id, total_pts, streak, weekly_challenge_completions)
		 VALUES($1, 0, 0, 0)`,
		user.ID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create user meta: "+err.Error())
		return
	}

	ip, userAgent := utils.ExtractIPAndUserAgent(r)
	token, err := utils.CreateSession(ctx, user.ID, ip, userAgent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session: "+err.Error())
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}
