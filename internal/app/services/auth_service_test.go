package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placementhub/internal/app/models/dto"
	"placementhub/internal/pkg/apperrors"
)

func TestRegisterAndLogin(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	registered, err := svcs.AuthService.Register(ctx, &dto.RegisterRequest{
		Name:     "Priya Sharma",
		Email:    "Priya@Test.edu",
		Password: "Password123!",
		Role:     "STUDENT",
	})
	require.NoError(t, err)
	assert.Equal(t, "STUDENT", registered.User.RoleType)
	assert.Equal(t, "priya@test.edu", registered.User.Email)
	assert.NotEmpty(t, registered.Token.AccessToken)
	assert.NotEmpty(t, registered.Token.RefreshToken)

	loggedIn, err := svcs.AuthService.Login(ctx, &dto.LoginRequest{
		Email:    "priya@test.edu",
		Password: "Password123!",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	req := &dto.RegisterRequest{
		Name:     "Priya",
		Email:    "priya@test.edu",
		Password: "Password123!",
		Role:     "STUDENT",
	}
	_, err := svcs.AuthService.Register(ctx, req)
	require.NoError(t, err)

	_, err = svcs.AuthService.Register(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svcs, _ := newTestServices(t)

	_, err := svcs.AuthService.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Priya",
		Email:    "priya@test.edu",
		Password: "Password123!",
		Role:     "ADMIN",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestLoginWrongPassword(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svcs.AuthService.Register(ctx, &dto.RegisterRequest{
		Name:     "Priya",
		Email:    "priya@test.edu",
		Password: "Password123!",
		Role:     "STUDENT",
	})
	require.NoError(t, err)

	_, err = svcs.AuthService.Login(ctx, &dto.LoginRequest{
		Email:    "priya@test.edu",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshTokenRotates(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	registered, err := svcs.AuthService.Register(ctx, &dto.RegisterRequest{
		Name:     "Priya",
		Email:    "priya@test.edu",
		Password: "Password123!",
		Role:     "STUDENT",
	})
	require.NoError(t, err)

	refreshed, err := svcs.AuthService.RefreshToken(ctx, registered.Token.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, registered.Token.RefreshToken, refreshed.RefreshToken)

	// The old token was consumed on rotation.
	_, err = svcs.AuthService.RefreshToken(ctx, registered.Token.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestRefreshTokenUnknown(t *testing.T) {
	svcs, _ := newTestServices(t)

	_, err := svcs.AuthService.RefreshToken(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}
