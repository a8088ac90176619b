package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/models"
	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/security"
)

// fakeUsersRepo keeps users in a map, enough to drive the service.
type fakeUsersRepo struct {
	users     map[string]string // username -> password hash
	createErr error
	getErr    error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: map[string]string{}}
}

func (f *fakeUsersRepo) CreateUser(ctx context.Context, username, passwordHash string) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[username]; ok {
		return models.ErrDuplicateUsername
	}
	f.users[username] = passwordHash
	return nil
}

func (f *fakeUsersRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	hash, ok := f.users[username]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &models.User{Username: username, PasswordHash: hash}, nil
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := newFakeUsersRepo()
	svc := NewService(repo)

	require.NoError(t, svc.Register(context.Background(), "alice", "pw1"))

	hash := repo.users["alice"]
	assert.NotEqual(t, "pw1", hash)
	assert.True(t, security.CheckPassword(hash, "pw1"))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := newFakeUsersRepo()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))
	first := repo.users["alice"]

	err := svc.Register(ctx, "alice", "pw2")
	require.ErrorIs(t, err, models.ErrDuplicateUsername)
	assert.Equal(t, first, repo.users["alice"], "original credential must be unchanged")
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUsersRepo()
	svc := NewService(repo)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "alice", "pw1"))

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"correct credentials", "alice", "pw1", nil},
		{"wrong password", "alice", "pw2", models.ErrInvalidCredentials},
		{"one character off", "alice", "pw1 ", models.ErrInvalidCredentials},
		{"unknown username", "mallory", "pw1", models.ErrInvalidCredentials},
		{"empty password", "alice", "", models.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Authenticate(ctx, tt.username, tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthenticate_RepositoryFailurePassesThrough(t *testing.T) {
	repo := newFakeUsersRepo()
	repo.getErr = errors.New("connection lost")
	svc := NewService(repo)

	err := svc.Authenticate(context.Background(), "alice", "pw1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrInvalidCredentials)
}
