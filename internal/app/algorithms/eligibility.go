package algorithms

import (
	"placementhub/internal/app/models"
)

// IsEligible reports whether a student profile satisfies a drive's
// eligibility criteria: CGPA at or above the drive minimum, backlogs at or
// below the drive maximum, and branch accepted by the drive (an empty
// allowed-branch list accepts every branch).
func IsEligible(profile *models.StudentProfile, drive *models.Drive) bool {
	if profile.CGPA < drive.MinCGPA {
		return false
	}
	if profile.CurrentBacklogs > drive.MaxBacklogs {
		return false
	}
	return drive.AllowsBranch(profile.Branch)
}
