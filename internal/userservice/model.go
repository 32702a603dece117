package userservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sushihentaime/newshub/internal/common"
)

func newUserModel(db *sql.DB) *userModel {
	return &userModel{db: db}
}

func (m *userModel) getUsers(ctx context.Context) ([]User, error) {
	query := `
		SELECT username, name, avatar_url
		FROM users`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, common.ClassifySQLError(err)
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (m *userModel) getUserByUsername(ctx context.Context, username string) (*User, error) {
	query := `
		SELECT username, name, avatar_url
		FROM users
		WHERE username = $1`

	var u User
	err := m.db.QueryRowContext(ctx, query, username).Scan(&u.Username, &u.Name, &u.AvatarURL)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.NotFound(fmt.Sprintf("No user found with username: %s", username))
		default:
			return nil, common.ClassifySQLError(err)
		}
	}

	return &u, nil
}
