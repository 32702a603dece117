package userservice

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushihentaime/newshub/internal/common"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "plain", username: "butter_bridge", wantErr: false},
		{name: "digits", username: "user123", wantErr: false},
		{name: "hyphen rejected", username: "butter-bridge", wantErr: true},
		{name: "spaces rejected", username: "butter bridge", wantErr: true},
		{name: "sql metacharacters rejected", username: "x'; DROP TABLE users;--", wantErr: true},
		{name: "empty rejected", username: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUsername(tt.username)
			if tt.wantErr {
				var domainErr common.DomainError
				require.True(t, errors.As(err, &domainErr))
				assert.Equal(t, http.StatusBadRequest, domainErr.Status)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUserService(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	s := NewUserService(db)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO users (username, name, avatar_url) VALUES
		('butter_bridge', 'jonny', 'https://example.com/jonny.jpg'),
		('lurker', 'do_nothing', 'https://example.com/lurker.jpg')`)
	require.NoError(t, err)

	t.Run("lists every user", func(t *testing.T) {
		users, err := s.GetUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("fetches a user by username", func(t *testing.T) {
		user, err := s.GetUserByUsername(ctx, "butter_bridge")
		require.NoError(t, err)

		assert.Equal(t, "butter_bridge", user.Username)
		assert.Equal(t, "jonny", user.Name)
	})

	t.Run("unknown username is a 404", func(t *testing.T) {
		_, err := s.GetUserByUsername(ctx, "nobody")

		var domainErr common.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, http.StatusNotFound, domainErr.Status)
	})

	t.Run("special characters are rejected before the lookup", func(t *testing.T) {
		_, err := s.GetUserByUsername(ctx, "not;a;user")

		var domainErr common.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, http.StatusBadRequest, domainErr.Status)
	})
}
