package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placementhub/internal/app/models"
	"placementhub/internal/app/models/dto"
)

func TestGetProfileLazilyCreates(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	student := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)

	profile, err := svcs.ProfileService.GetProfile(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, profile.UserID)
	assert.Empty(t, profile.Branch)
	assert.Zero(t, profile.CGPA)

	// The lazily created profile persists.
	stored, err := repos.ProfileRepository.GetByUserID(ctx, student.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestUpdateProfileAppliesFields(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	student := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)

	cgpa := 8.4
	backlogs := 1
	updated, err := svcs.ProfileService.UpdateProfile(ctx, student.ID, &dto.UpdateProfileRequest{
		Branch:          "CS",
		CGPA:            &cgpa,
		CurrentBacklogs: &backlogs,
		Skills:          []string{"go", "sql"},
	})
	require.NoError(t, err)
	assert.Equal(t, "CS", updated.Branch)
	assert.Equal(t, 8.4, updated.CGPA)
	assert.Equal(t, 1, updated.CurrentBacklogs)
	assert.Equal(t, []string{"go", "sql"}, updated.Skills)

	// Partial update leaves untouched fields alone.
	updated, err = svcs.ProfileService.UpdateProfile(ctx, student.ID, &dto.UpdateProfileRequest{
		Branch: "IT",
	})
	require.NoError(t, err)
	assert.Equal(t, "IT", updated.Branch)
	assert.Equal(t, 8.4, updated.CGPA)
	assert.Equal(t, []string{"go", "sql"}, updated.Skills)
}

func TestProfileSkillMatchingIsCaseInsensitive(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	student := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)
	_, err := svcs.ProfileService.UpdateProfile(ctx, student.ID, &dto.UpdateProfileRequest{
		Skills: []string{"Docker"},
	})
	require.NoError(t, err)

	profile, err := svcs.ProfileService.GetProfile(ctx, student.ID)
	require.NoError(t, err)
	assert.True(t, profile.HasSkill("docker"))
	assert.True(t, profile.HasSkill("DOCKER"))
	assert.False(t, profile.HasSkill("kubernetes"))
}
