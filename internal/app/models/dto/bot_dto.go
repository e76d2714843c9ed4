package dto

// AskRequest represents a question posed to the FAQ assistant
type AskRequest struct {
	Question string `json:"question" binding:"required" example:"What is the minimum CGPA for placements?"`
}

// RelatedFAQ is a question/answer pair surfaced alongside the primary answer
type RelatedFAQ struct {
	Question string `json:"question" example:"How is CGPA eligibility checked?"`
	Answer   string `json:"answer"`
}

// AskResponse carries the assistant's answer and related entries
type AskResponse struct {
	Answer      string       `json:"answer"`
	RelatedFAQs []RelatedFAQ `json:"relatedFAQs"`
}
