package models

// FAQ defines one entry of the static question corpus used by the bot
// matcher. The corpus is seeded once and read-only at runtime.
type FAQ struct {
	ID       int64    `json:"id" db:"id"`
	Question string   `json:"question" db:"question"`
	Answer   string   `json:"answer" db:"answer"`
	Tags     []string `json:"tags" db:"tags"`
	Category string   `json:"category" db:"category"`
}
