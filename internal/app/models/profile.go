package models

import "strings"

// Education is a single entry in a student's education history
type Education struct {
	Degree      string  `json:"degree" db:"degree"`
	Institution string  `json:"institution" db:"institution"`
	Year        int     `json:"year" db:"year"`
	Percentage  float64 `json:"percentage" db:"percentage"`
}

// PersonalInfo holds the student's public contact links and address
type PersonalInfo struct {
	LinkedIn string `json:"linkedin" db:"linkedin"`
	GitHub   string `json:"github" db:"github"`
	Address  string `json:"address" db:"address"`
}

// StudentProfile defines the eligibility profile, one per STUDENT user.
// It is created lazily on first profile read or write and never deleted.
type StudentProfile struct {
	UserID          int64        `json:"userId" db:"user_id"`
	Branch          string       `json:"branch" db:"branch" example:"CS"`
	CGPA            float64      `json:"cgpa" db:"cgpa" example:"7.5"`          // In [0,10]
	CurrentBacklogs int          `json:"currentBacklogs" db:"current_backlogs"` // >= 0
	Skills          []string     `json:"skills" db:"skills"`                    // Matched case-insensitively
	Experience      string       `json:"experience" db:"experience"`
	Projects        string       `json:"projects" db:"projects"`
	Education       []Education  `json:"education" db:"education"`
	PersonalInfo    PersonalInfo `json:"personalInfo" db:"personal_info"`
}

// HasSkill reports whether the profile lists the given skill, ignoring case.
func (p *StudentProfile) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}
