package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"placementhub/internal/app/models"
)

func TestIsEligible(t *testing.T) {
	drive := &models.Drive{
		MinCGPA:         7.0,
		MaxBacklogs:     0,
		AllowedBranches: []string{"CS"},
	}

	tests := []struct {
		name    string
		profile models.StudentProfile
		want    bool
	}{
		{"matching profile", models.StudentProfile{Branch: "CS", CGPA: 7.5, CurrentBacklogs: 0}, true},
		{"cgpa exactly at minimum", models.StudentProfile{Branch: "CS", CGPA: 7.0, CurrentBacklogs: 0}, true},
		{"cgpa below minimum", models.StudentProfile{Branch: "CS", CGPA: 6.9, CurrentBacklogs: 0}, false},
		{"wrong branch", models.StudentProfile{Branch: "IT", CGPA: 7.5, CurrentBacklogs: 0}, false},
		{"backlogs over limit", models.StudentProfile{Branch: "CS", CGPA: 7.5, CurrentBacklogs: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEligible(&tt.profile, drive))
		})
	}
}

func TestIsEligibleEmptyBranchListAllowsAll(t *testing.T) {
	drive := &models.Drive{MinCGPA: 6.0, MaxBacklogs: 2}

	profile := &models.StudentProfile{Branch: "MECH", CGPA: 6.5, CurrentBacklogs: 2}
	assert.True(t, IsEligible(profile, drive))

	profile.CurrentBacklogs = 3
	assert.False(t, IsEligible(profile, drive))
}
