package service

import (
	"testing"

	"github.com/lshigami/Lapras/internal/dto"
	"github.com/lshigami/Lapras/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) UserService {
	return NewUserService(repository.NewUserRepository(newTestDB(t)))
}

func TestCreateUserDuplicateRejected(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Create(dto.CreateUserRequest{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = svc.Create(dto.CreateUserRequest{Username: "alice", Email: "other@example.com"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Create(dto.CreateUserRequest{Username: "other", Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateUserPartial(t *testing.T) {
	svc := newUserService(t)

	created, err := svc.Create(dto.CreateUserRequest{Username: "bob", Email: "bob@example.com"})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, dto.UpdateUserRequest{Email: ptr("bob2@example.com")})
	require.NoError(t, err)
	assert.Equal(t, "bob", updated.Username)
	assert.Equal(t, "bob2@example.com", updated.Email)
}

func TestUpdateUserUniquenessRechecked(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Create(dto.CreateUserRequest{Username: "carol", Email: "carol@example.com"})
	require.NoError(t, err)
	dave, err := svc.Create(dto.CreateUserRequest{Username: "dave", Email: "dave@example.com"})
	require.NoError(t, err)

	_, err = svc.Update(dave.ID, dto.UpdateUserRequest{Username: ptr("carol")})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDeleteUserNotFound(t *testing.T) {
	svc := newUserService(t)
	assert.ErrorIs(t, svc.Delete(99), ErrNotFound)
}
