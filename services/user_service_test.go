package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigmaquiz/models"
)

func TestListUsers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := newTestAuthService(db).RegisterAdmin(validRegisterRequest())
	require.NoError(t, err)

	users, err := svc.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestGetUserNotFound(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	_, err := svc.GetUser(uuid.NewString())
	assert.Equal(t, ErrUserNotFound, err)

	_, err = svc.GetUser("not-a-uuid")
	assert.Equal(t, ErrUserNotFound, err)
}

func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, err := newTestAuthService(db).RegisterAdmin(validRegisterRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(user.ID.String()))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)

	assert.Equal(t, ErrUserNotFound, svc.DeleteUser(user.ID.String()))
}
