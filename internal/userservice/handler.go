package userservice

import (
	"context"
	"database/sql"
)

func NewUserService(db *sql.DB) *UserService {
	return &UserService{m: newUserModel(db)}
}

// GetUsers returns every user.
func (s *UserService) GetUsers(ctx context.Context) ([]User, error) {
	return s.m.getUsers(ctx)
}

// GetUserByUsername returns one user. Usernames containing characters outside
// the allowed set are rejected before the lookup.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	return s.m.getUserByUsername(ctx, username)
}
