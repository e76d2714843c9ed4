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

func TestPostJobValidation(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	alumni := createUser(t, repos, "Rahul", "rahul@test.edu", models.RoleAlumni)

	_, err := svcs.ReferralService.PostJob(ctx, alumni.ID, &dto.CreateJobRequest{JobTitle: "SRE"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svcs.ReferralService.PostJob(ctx, alumni.ID, &dto.CreateJobRequest{CompanyName: "Globex"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestPostJobDefaultsToActive(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	alumni := createUser(t, repos, "Rahul", "rahul@test.edu", models.RoleAlumni)

	job, err := svcs.ReferralService.PostJob(ctx, alumni.ID, &dto.CreateJobRequest{
		CompanyName: "Globex",
		JobTitle:    "SRE",
	})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusActive, job.Status)
	assert.Equal(t, alumni.ID, job.AlumniUserID)
}

func TestGetActiveJobsIncludesPosterName(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	alumni := createUser(t, repos, "Rahul", "rahul@test.edu", models.RoleAlumni)

	active, err := svcs.ReferralService.PostJob(ctx, alumni.ID, &dto.CreateJobRequest{
		CompanyName: "Globex", JobTitle: "SRE",
	})
	require.NoError(t, err)

	closed, err := svcs.ReferralService.PostJob(ctx, alumni.ID, &dto.CreateJobRequest{
		CompanyName: "Initech", JobTitle: "Consultant",
	})
	require.NoError(t, err)
	_, err = svcs.ReferralService.SetJobStatus(ctx, alumni.ID, closed.ID, models.JobStatusClosed)
	require.NoError(t, err)

	jobs, err := svcs.ReferralService.GetActiveJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, active.ID, jobs[0].ID)
	assert.Equal(t, "Rahul", jobs[0].PostedBy)
}

func TestGetMyJobsReturnsAllStatuses(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	alumni := createUser(t, repos, "Rahul", "rahul@test.edu", models.RoleAlumni)
	other := createUser(t, repos, "Sana", "sana@test.edu", models.RoleAlumni)

	job, err := svcs.ReferralService.PostJob(ctx, alumni.ID, &dto.CreateJobRequest{
		CompanyName: "Globex", JobTitle: "SRE",
	})
	require.NoError(t, err)
	_, err = svcs.ReferralService.SetJobStatus(ctx, alumni.ID, job.ID, models.JobStatusClosed)
	require.NoError(t, err)

	_, err = svcs.ReferralService.PostJob(ctx, other.ID, &dto.CreateJobRequest{
		CompanyName: "Initech", JobTitle: "Consultant",
	})
	require.NoError(t, err)

	mine, err := svcs.ReferralService.GetMyJobs(ctx, alumni.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "CLOSED", mine[0].Status)
}

func TestSetJobStatusOwnership(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	owner := createUser(t, repos, "Rahul", "rahul@test.edu", models.RoleAlumni)
	stranger := createUser(t, repos, "Sana", "sana@test.edu", models.RoleAlumni)

	job, err := svcs.ReferralService.PostJob(ctx, owner.ID, &dto.CreateJobRequest{
		CompanyName: "Globex", JobTitle: "SRE",
	})
	require.NoError(t, err)

	_, err = svcs.ReferralService.SetJobStatus(ctx, stranger.ID, job.ID, models.JobStatusClosed)
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)

	_, err = svcs.ReferralService.SetJobStatus(ctx, owner.ID, 999, models.JobStatusClosed)
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)

	updated, err := svcs.ReferralService.SetJobStatus(ctx, owner.ID, job.ID, models.JobStatusClosed)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusClosed, updated.Status)
}
