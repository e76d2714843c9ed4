package dto

// BranchStat aggregates placement figures for a single branch
type BranchStat struct {
	Total  int `json:"total" example:"40"`
	Placed int `json:"placed" example:"22"`
}

// StatsResponse summarizes placement activity across the platform
type StatsResponse struct {
	TotalStudents     int                   `json:"totalStudents" example:"120"`
	TotalDrives       int                   `json:"totalDrives" example:"14"`
	TotalApplications int                   `json:"totalApplications" example:"310"`
	SelectedCount     int                   `json:"selectedCount" example:"48"`
	PlacementRate     float64               `json:"placementRate" example:"40.0"`
	BranchStats       map[string]BranchStat `json:"branchStats"`
}

// SkillRecommendation suggests a skill the student is missing
type SkillRecommendation struct {
	Skill          string  `json:"skill" example:"docker"`
	Frequency      int     `json:"frequency" example:"31"`
	Percentage     float64 `json:"percentage" example:"25.8"`
	Recommendation string  `json:"recommendation" example:"docker appears in 25.8% of student profiles. Consider adding it to stay competitive."`
}

// SkillGapResponse lists the most common skills missing from the caller's profile
type SkillGapResponse struct {
	Recommendations []SkillRecommendation `json:"recommendations"`
}
