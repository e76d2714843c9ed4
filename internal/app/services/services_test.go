package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"placementhub/internal/app/models"
	"placementhub/internal/app/repositories"
	"placementhub/internal/app/repositories/memory"
	"placementhub/internal/notify"
	"placementhub/internal/pkg/auth"
)

func newTestServices(t *testing.T) (*Services, *repositories.Repositories) {
	t.Helper()

	repos := memory.NewRepositories()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
	notifier := notify.NewNotifier(notify.SMTPConfig{}, zerolog.Nop())
	return NewServices(repos, jwtService, notifier, zerolog.Nop()), repos
}

func createUser(t *testing.T, repos *repositories.Repositories, name, email string, role models.RoleType) *models.User {
	t.Helper()

	hashed, err := auth.HashPassword("Password123!")
	require.NoError(t, err)

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		RoleType: role,
	}
	require.NoError(t, repos.UserRepository.Create(context.Background(), user))
	return user
}

func createProfile(t *testing.T, repos *repositories.Repositories, userID int64, branch string, cgpa float64, backlogs int, skills []string) {
	t.Helper()

	require.NoError(t, repos.ProfileRepository.Upsert(context.Background(), &models.StudentProfile{
		UserID:          userID,
		Branch:          branch,
		CGPA:            cgpa,
		CurrentBacklogs: backlogs,
		Skills:          skills,
	}))
}

func floatPtr(v float64) *float64 {
	return &v
}

func createDrive(t *testing.T, repos *repositories.Repositories, company string, minCgpa float64, maxBacklogs int, branches []string) *models.Drive {
	t.Helper()

	drive := &models.Drive{
		CompanyName:     company,
		RoleTitle:       "Engineer",
		MinCGPA:         minCgpa,
		MaxBacklogs:     maxBacklogs,
		AllowedBranches: branches,
		CreatedBy:       1,
		Status:          models.DriveStatusActive,
	}
	require.NoError(t, repos.DriveRepository.Create(context.Background(), drive))
	return drive
}
