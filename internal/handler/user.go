package handler

import (
	"context"
	"net/http"

	"github.com/MassBabyGeek/HabitQuest-backend/internal/database"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/middleware"
	model "github.com/MassBabyGeek/HabitQuest-backend/internal/models"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/scanner"
	"github.com/MassBabyGeek/HabitQuest-backend/internal/utils"
	"github.com/gorilla/mux"
)

const userColumns = `id, username, email, avatar, bio, country, join_date, created_at, updated_at, deleted_at`

func GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()
	rows, err := database.DB.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE deleted_at IS NULL ORDER BY join_date`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query users: "+err.Error())
		return
	}
	defer rows.Close()

	var users []model.UserProfile
	for rows.Next() {
		u, err := scanner.ScanUserProfile(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan user row: "+err.Error())
			return
		}
		users = append(users, *u)
	}

	utils.Success(w, users)
}

func GetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ctx := context.Background()

	row := database.DB.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1 AND deleted_at IS NULL`, id)

	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "user not found")
		return
	}

	// Joindre la progression pour l'écran profil
	meta, err := utils.GetUserMeta(ctx, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load user meta: "+err.Error())
		return
	}

	utils.Success(w, map[string]interface{}{
		"user": user,
		"meta": meta,
	})
}

func UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	current, ok := middleware.GetUserFromContext(r.Context())
	if !ok || current.ID != id {
		utils.Error(w, http.StatusForbidden, "cannot update another user's profile")
		return
	}

	var payload struct {
		Username string `json:"username"`
		Bio      string `json:"bio"`
		Country  string `json:"country"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := context.Background()
	row := database.DB.QueryRow(ctx,
		`UPDATE users SET username=$2, bio=$3, country=$4, updated_at=NOW()
		 WHERE id=$1 AND deleted_at IS NULL
		 RETURNING `+userColumns,
		id, payload.Username, payload.Bio, payload.Country,
	)

	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update user: "+err.Error())
		return
	}

	utils.Success(w, user)
}

// UploadAvatar reçoit un multipart, pousse l'image sur Cloudinary et stocke l'URL
func UploadAvatar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	current, ok := middleware.GetUserFromContext(r.Context())
	if !ok || current.ID != id {
		utils.Error(w, http.StatusForbidden, "cannot update another user's avatar")
		return
	}

	if Cloudinary == nil {
		utils.Error(w, http.StatusServiceUnavailable, "avatar upload is not configured")
		return
	}

	// 5 Mo max
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("avatar")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "missing avatar file")
		return
	}
	defer file.Close()

	ctx := context.Background()
	url, err := Cloudinary.UploadAvatar(ctx, file, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not upload avatar: "+err.Error())
		return
	}

	_, err = database.DB.Exec(ctx,
		`UPDATE users SET avatar=$2, updated_at=NOW() WHERE id=$1 AND deleted_at IS NULL`,
		id, url,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save avatar url: "+err.Error())
		return
	}

	utils.Success(w, map[string]string{"avatar": url})
}
