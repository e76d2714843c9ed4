package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placementhub/internal/app/models"
)

func TestGetStatsCountsPlacedStudentsOnce(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	student := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)
	createProfile(t, repos, student.ID, "CS", 8.0, 0, nil)

	other := createUser(t, repos, "Arjun", "arjun@test.edu", models.RoleStudent)
	createProfile(t, repos, other.ID, "CS", 7.0, 0, nil)

	driveA := createDrive(t, repos, "Acme", 0, 5, nil)
	driveB := createDrive(t, repos, "Globex", 0, 5, nil)

	appA := &models.Application{DriveID: driveA.ID, StudentID: student.ID, Status: models.ApplicationStatusApplied}
	require.NoError(t, repos.ApplicationRepository.Create(ctx, appA))
	appB := &models.Application{DriveID: driveB.ID, StudentID: student.ID, Status: models.ApplicationStatusApplied}
	require.NoError(t, repos.ApplicationRepository.Create(ctx, appB))

	// Same student selected in two drives; branch counts them once.
	require.NoError(t, repos.ApplicationRepository.UpdateStatus(ctx, appA.ID, models.ApplicationStatusSelected))
	require.NoError(t, repos.ApplicationRepository.UpdateStatus(ctx, appB.ID, models.ApplicationStatusSelected))

	stats, err := svcs.AnalyticsService.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalStudents)
	assert.Equal(t, 2, stats.TotalDrives)
	assert.Equal(t, 2, stats.TotalApplications)
	assert.Equal(t, 2, stats.SelectedCount)

	cs := stats.BranchStats["CS"]
	assert.Equal(t, 2, cs.Total)
	assert.Equal(t, 1, cs.Placed)
	assert.LessOrEqual(t, cs.Placed, cs.Total)
}

func TestGetStatsEmptyPlatform(t *testing.T) {
	svcs, _ := newTestServices(t)

	stats, err := svcs.AnalyticsService.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalStudents)
	assert.Equal(t, 0.0, stats.PlacementRate)
}

func TestGetStatsDefaultsBranchToUnknown(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	student := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)
	createProfile(t, repos, student.ID, "", 8.0, 0, nil)

	stats, err := svcs.AnalyticsService.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.BranchStats["Unknown"].Total)
}

func TestGetSkillGapRecommendations(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	me := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)
	createProfile(t, repos, me.ID, "CS", 8.0, 0, []string{"Go"})

	placed := createUser(t, repos, "Arjun", "arjun@test.edu", models.RoleStudent)
	createProfile(t, repos, placed.ID, "CS", 8.5, 0, []string{"go", "docker", "sql"})

	drive := createDrive(t, repos, "Acme", 0, 5, nil)
	app := &models.Application{DriveID: drive.ID, StudentID: placed.ID, Status: models.ApplicationStatusApplied}
	require.NoError(t, repos.ApplicationRepository.Create(ctx, app))
	require.NoError(t, repos.ApplicationRepository.UpdateStatus(ctx, app.ID, models.ApplicationStatusSelected))

	resp, err := svcs.AnalyticsService.GetSkillGap(ctx, me.ID)
	require.NoError(t, err)

	skills := make([]string, 0, len(resp.Recommendations))
	for _, rec := range resp.Recommendations {
		skills = append(skills, rec.Skill)
		assert.GreaterOrEqual(t, rec.Percentage, 0.0)
		assert.LessOrEqual(t, rec.Percentage, 100.0)
		assert.NotEmpty(t, rec.Recommendation)
	}
	// "go" is owned (case-insensitively) and must never be recommended.
	assert.NotContains(t, skills, "go")
	assert.Contains(t, skills, "docker")
	assert.Contains(t, skills, "sql")
	assert.LessOrEqual(t, len(resp.Recommendations), 5)
}

func TestGetSkillGapWithoutProfile(t *testing.T) {
	svcs, repos := newTestServices(t)

	student := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)

	resp, err := svcs.AnalyticsService.GetSkillGap(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Empty(t, resp.Recommendations)
}

func TestGetSkillGapTopFiveByFrequency(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	me := createUser(t, repos, "Priya", "priya@test.edu", models.RoleStudent)
	createProfile(t, repos, me.ID, "CS", 8.0, 0, nil)

	drive := createDrive(t, repos, "Acme", 0, 5, nil)
	skillSets := [][]string{
		{"docker", "sql", "kubernetes", "rust", "java", "python", "react"},
		{"docker", "sql", "kubernetes", "rust", "java", "python"},
		{"docker", "sql"},
	}
	for i, skills := range skillSets {
		user := createUser(t, repos, "Student", "placed"+string(rune('a'+i))+"@test.edu", models.RoleStudent)
		createProfile(t, repos, user.ID, "CS", 8.0, 0, skills)
		app := &models.Application{DriveID: drive.ID, StudentID: user.ID, Status: models.ApplicationStatusApplied}
		require.NoError(t, repos.ApplicationRepository.Create(ctx, app))
		require.NoError(t, repos.ApplicationRepository.UpdateStatus(ctx, app.ID, models.ApplicationStatusSelected))
	}

	resp, err := svcs.AnalyticsService.GetSkillGap(ctx, me.ID)
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 5)

	// docker and sql appear in all three placed profiles.
	assert.Equal(t, "docker", resp.Recommendations[0].Skill)
	assert.Equal(t, 3, resp.Recommendations[0].Frequency)
	assert.Equal(t, 100.0, resp.Recommendations[0].Percentage)
	assert.Equal(t, "sql", resp.Recommendations[1].Skill)

	for i := 1; i < len(resp.Recommendations); i++ {
		assert.GreaterOrEqual(t,
			resp.Recommendations[i-1].Frequency,
			resp.Recommendations[i].Frequency)
	}
}
