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

func TestCreateDriveValidation(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	tpo := createUser(t, repos, "TPO", "tpo@test.edu", models.RoleTPO)

	_, err := svcs.DriveService.CreateDrive(ctx, tpo.ID, &dto.CreateDriveRequest{RoleTitle: "Engineer"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// minCgpa absent is a validation error, not an implicit 0.
	_, err = svcs.DriveService.CreateDrive(ctx, tpo.ID, &dto.CreateDriveRequest{
		CompanyName: "Acme", RoleTitle: "Engineer",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svcs.DriveService.CreateDrive(ctx, tpo.ID, &dto.CreateDriveRequest{
		CompanyName: "Acme", MinCGPA: floatPtr(11),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svcs.DriveService.CreateDrive(ctx, tpo.ID, &dto.CreateDriveRequest{
		CompanyName: "Acme", MinCGPA: floatPtr(7), MaxBacklogs: -1,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateDriveDefaultsToActive(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	tpo := createUser(t, repos, "TPO", "tpo@test.edu", models.RoleTPO)

	drive, err := svcs.DriveService.CreateDrive(ctx, tpo.ID, &dto.CreateDriveRequest{
		CompanyName: "Acme",
		RoleTitle:   "Backend Engineer",
		MinCGPA:     floatPtr(7.0),
	})
	require.NoError(t, err)
	assert.Equal(t, models.DriveStatusActive, drive.Status)
	assert.Equal(t, tpo.ID, drive.CreatedBy)
}

func TestGetEligibleDrivesWithoutProfile(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	student := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)
	createDrive(t, repos, "Acme", 0, 0, nil)

	resp, err := svcs.DriveService.GetEligibleDrives(ctx, student.ID)
	require.NoError(t, err)
	assert.Empty(t, resp.Drives)
	assert.NotEmpty(t, resp.Message)
}

func TestGetEligibleDrivesAnnotatesApplications(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	student := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)
	createProfile(t, repos, student.ID, "CS", 8.0, 0, []string{"go"})

	applied := createDrive(t, repos, "Acme", 7.0, 0, []string{"CS"})
	fresh := createDrive(t, repos, "Globex", 7.0, 0, []string{"CS"})
	createDrive(t, repos, "Initech", 9.5, 0, []string{"CS"}) // too strict

	_, err := svcs.ApplicationService.Apply(ctx, student.ID, &dto.ApplyRequest{DriveID: applied.ID})
	require.NoError(t, err)

	resp, err := svcs.DriveService.GetEligibleDrives(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, resp.Drives, 2)

	byID := map[int64]dto.EligibleDrive{}
	for _, d := range resp.Drives {
		byID[d.ID] = d
	}
	assert.True(t, byID[applied.ID].HasApplied)
	assert.Equal(t, "APPLIED", byID[applied.ID].ApplicationStatus)
	assert.False(t, byID[fresh.ID].HasApplied)
	assert.Empty(t, byID[fresh.ID].ApplicationStatus)
}

func TestGetEligibleDrivesSkipsClosedDrives(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	student := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)
	createProfile(t, repos, student.ID, "CS", 8.0, 0, nil)

	drive := createDrive(t, repos, "Acme", 7.0, 0, []string{"CS"})
	require.NoError(t, repos.DriveRepository.UpdateStatus(ctx, drive.ID, models.DriveStatusClosed))

	resp, err := svcs.DriveService.GetEligibleDrives(ctx, student.ID)
	require.NoError(t, err)
	assert.Empty(t, resp.Drives)
}

func TestGetEligibleStudents(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	eligible := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)
	createProfile(t, repos, eligible.ID, "CS", 8.2, 0, nil)

	wrongBranch := createUser(t, repos, "Arjun", "arjun@test.edu", models.RoleStudent)
	createProfile(t, repos, wrongBranch.ID, "IT", 9.0, 0, nil)

	lowCgpa := createUser(t, repos, "Neha", "neha@test.edu", models.RoleStudent)
	createProfile(t, repos, lowCgpa.ID, "CS", 6.9, 0, nil)

	drive := createDrive(t, repos, "Acme", 7.0, 0, []string{"CS"})

	resp, err := svcs.DriveService.GetEligibleStudents(ctx, drive.ID)
	require.NoError(t, err)
	assert.Equal(t, drive.ID, resp.DriveID)
	assert.Equal(t, "Acme", resp.CompanyName)
	require.Equal(t, 1, resp.EligibleCount)
	assert.Equal(t, "Priya", resp.EligibleStudents[0].Name)
	assert.Equal(t, "priya@test.edu", resp.EligibleStudents[0].Email)
}

func TestGetEligibleStudentsUnknownDrive(t *testing.T) {
	svcs, _ := newTestServices(t)

	_, err := svcs.DriveService.GetEligibleStudents(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrDriveNotFound)
}
