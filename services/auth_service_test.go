package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sigmaquiz/models"
)

func newTestAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(db, "test-secret", time.Hour)
}

func validRegisterRequest() *RegisterAdminRequest {
	return &RegisterAdminRequest{
		FirstName: "delight",
		LastName:  "jose",
		Email:     "delightjose@mail.com",
		Password:  "delightjoseph",
		Roles:     []string{models.RoleSuperAdmin},
	}
}

func TestRegisterAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	user, err := svc.RegisterAdmin(validRegisterRequest())
	require.NoError(t, err)

	assert.Equal(t, "delightjose@mail.com", user.Email)
	assert.Equal(t, []string{models.RoleSuperAdmin}, []string(user.Roles))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("delightjoseph")))
}

func TestRegisterAdminDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	_, err := svc.RegisterAdmin(validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.RegisterAdmin(validRegisterRequest())
	apiErr := asAPIError(t, err)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "Bad Request", apiErr.Code)
	assert.Equal(t, "Key (email)=(delightjose@mail.com) already exists.", apiErr.Message)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterAdminShortPassword(t *testing.T) {
	svc := newTestAuthService(setupTestDB(t))

	req := validRegisterRequest()
	req.Password = "123"

	_, err := svc.RegisterAdmin(req)
	apiErr := asAPIError(t, err)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "Short Password", apiErr.Code)
	assert.Equal(t, "Password must be minimum of eight(8) characters", apiErr.Message)
}

func TestRegisterAdminRejectsOtherRoles(t *testing.T) {
	svc := newTestAuthService(setupTestDB(t))

	for _, roles := range [][]string{
		{models.RoleAdhoc},
		{models.RoleQuizMaster},
		{models.RoleAdhoc, models.RoleSuperAdmin},
	} {
		req := validRegisterRequest()
		req.Roles = roles

		_, err := svc.RegisterAdmin(req)
		apiErr := asAPIError(t, err)
		assert.Equal(t, 403, apiErr.Status)
		assert.Equal(t, "Forbidden: super-admin Only", apiErr.Message)
	}
}

func TestRegisterAdminRejectsUnknownRoleTag(t *testing.T) {
	svc := newTestAuthService(setupTestDB(t))

	req := validRegisterRequest()
	req.Roles = []string{"captain"}

	_, err := svc.RegisterAdmin(req)
	apiErr := asAPIError(t, err)
	assert.Equal(t, 400, apiErr.Status)
	assert.Contains(t, apiErr.Message, "Invalid role(s)")
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	created, err := svc.RegisterAdmin(validRegisterRequest())
	require.NoError(t, err)

	token, user, err := svc.Login(&LoginRequest{Email: created.Email, Password: "delightjoseph"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	// The issued token resolves back to the account.
	resolved, err := svc.UserFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resolved.ID)
}

func TestLoginBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	created, err := svc.RegisterAdmin(validRegisterRequest())
	require.NoError(t, err)

	_, _, err = svc.Login(&LoginRequest{Email: created.Email, Password: "wrong-password"})
	apiErr := asAPIError(t, err)
	assert.Equal(t, 401, apiErr.Status)

	_, _, err = svc.Login(&LoginRequest{Email: "nobody@mail.com", Password: "delightjoseph"})
	apiErr = asAPIError(t, err)
	assert.Equal(t, 401, apiErr.Status)
}

func TestUserFromTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(setupTestDB(t))

	_, err := svc.UserFromToken("not-a-token")
	assert.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	user, err := svc.RegisterAdmin(validRegisterRequest())
	require.NoError(t, err)

	// Wrong old password.
	err = svc.ChangePassword(user.ID, &ChangePasswordRequest{
		OldPassword: "wrong-password",
		NewPassword: "newpassword123",
	})
	apiErr := asAPIError(t, err)
	assert.Equal(t, 400, apiErr.Status)

	// New password too short.
	err = svc.ChangePassword(user.ID, &ChangePasswordRequest{
		OldPassword: "delightjoseph",
		NewPassword: "short",
	})
	apiErr = asAPIError(t, err)
	assert.Equal(t, "Short Password", apiErr.Code)

	// Success; the new credential logs in.
	err = svc.ChangePassword(user.ID, &ChangePasswordRequest{
		OldPassword: "delightjoseph",
		NewPassword: "newpassword123",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(&LoginRequest{Email: user.Email, Password: "newpassword123"})
	assert.NoError(t, err)
}
