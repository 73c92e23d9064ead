package usecase

import (
	"context"
	"testing"
	"time"

	"rental-booking/internal/dto/request"
	"rental-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()

	repo := newTestRepo(t)
	return NewAuthService(repo, utils.AdminConfig{
		Username:        "admin",
		Password:        "correct-horse",
		SessionTTLHours: 1,
	}, zap.NewNop())
}

func TestLoginBootstrapsProfileAndIssuesToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, &request.LoginRequest{
		Username: "admin",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "admin", login.Username)
	assert.True(t, login.ExpiresAt.After(time.Now()))

	username, ok := svc.ValidateSession(ctx, login.Token)
	require.True(t, ok)
	assert.Equal(t, "admin", username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, &request.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")

	_, err = svc.Login(ctx, &request.LoginRequest{
		Username: "someone-else",
		Password: "correct-horse",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, &request.LoginRequest{
		Username: "admin",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.Token))

	_, ok := svc.ValidateSession(ctx, login.Token)
	assert.False(t, ok)

	err = svc.Logout(ctx, login.Token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateSessionRejectsUnknownToken(t *testing.T) {
	svc := newAuthService(t)

	_, ok := svc.ValidateSession(context.Background(), "not-a-real-token")
	assert.False(t, ok)
}

func TestProfileHidesPasswordAndRecordsLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, &request.LoginRequest{
		Username: "admin",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", profile.Username)
	assert.NotNil(t, profile.LastLogin)
}

func TestUpdateProfileChangesPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, &request.LoginRequest{
		Username: "admin",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	newPassword := "battery-staple"
	name := "Site Admin"
	_, err = svc.UpdateProfile(ctx, &request.UpdateProfileRequest{
		Name:     &name,
		Password: &newPassword,
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &request.LoginRequest{
		Username: "admin",
		Password: "correct-horse",
	})
	require.Error(t, err, "the old password stops working")

	login, err := svc.Login(ctx, &request.LoginRequest{
		Username: "admin",
		Password: newPassword,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	profile, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Site Admin", profile.Name)
}

func TestUpdateProfileRejectsShortPassword(t *testing.T) {
	svc := newAuthService(t)

	short := "abc"
	_, err := svc.UpdateProfile(context.Background(), &request.UpdateProfileRequest{
		Password: &short,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
