package userservice

import "database/sql"

type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type userModel struct {
	db *sql.DB
}

type UserService struct {
	m *userModel
}
