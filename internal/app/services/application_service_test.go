package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placementhub/internal/app/models"
	"placementhub/internal/app/models/dto"
	"placementhub/internal/pkg/apperrors"
)

func TestApplyCreatesApplication(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	student := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)
	drive := createDrive(t, repos, "Acme", 6.0, 1, nil)

	app, err := svcs.ApplicationService.Apply(ctx, student.ID, &dto.ApplyRequest{DriveID: drive.ID})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApplied, app.Status)
	assert.Equal(t, drive.ID, app.DriveID)
	assert.False(t, app.AppliedAt.IsZero())
}

func TestApplyUnknownDrive(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	student := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)

	_, err := svcs.ApplicationService.Apply(ctx, student.ID, &dto.ApplyRequest{DriveID: 999})
	assert.ErrorIs(t, err, apperrors.ErrDriveNotFound)
}

func TestApplyTwiceConflicts(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	student := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)
	drive := createDrive(t, repos, "Acme", 6.0, 1, nil)

	_, err := svcs.ApplicationService.Apply(ctx, student.ID, &dto.ApplyRequest{DriveID: drive.ID})
	require.NoError(t, err)

	_, err = svcs.ApplicationService.Apply(ctx, student.ID, &dto.ApplyRequest{DriveID: drive.ID})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)

	apps, err := repos.ApplicationRepository.GetByStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

func TestGetMyApplicationsIncludesDriveSummary(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	student := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)
	drive := createDrive(t, repos, "Acme", 6.0, 1, nil)

	_, err := svcs.ApplicationService.Apply(ctx, student.ID, &dto.ApplyRequest{DriveID: drive.ID})
	require.NoError(t, err)

	responses, err := svcs.ApplicationService.GetMyApplications(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	require.NotNil(t, responses[0].Drive)
	assert.Equal(t, "Acme", responses[0].Drive.CompanyName)
}

func TestGetMyApplicationsMissingDriveYieldsNullSummary(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	student := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)

	// Insert directly so the application points at a drive that no longer exists.
	require.NoError(t, repos.ApplicationRepository.Create(ctx, &models.Application{
		DriveID:   42,
		StudentID: student.ID,
		Status:    models.ApplicationStatusApplied,
	}))

	responses, err := svcs.ApplicationService.GetMyApplications(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Nil(t, responses[0].Drive)
}
