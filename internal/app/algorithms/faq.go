package algorithms

import (
	"sort"
	"strings"

	"placementhub/internal/app/models"
)

// ScoredFAQ pairs an FAQ with its relevance score for a question.
type ScoredFAQ struct {
	FAQ   *models.FAQ
	Score int
}

// ScoreFAQ computes the relevance score of a single FAQ against a question
// that has already been lower-cased: +2 for every tag appearing as a
// substring of the question, +1 for every whitespace-delimited question
// token appearing as a substring of the FAQ's own question text.
func ScoreFAQ(faq *models.FAQ, loweredQuestion string) int {
	score := 0
	for _, tag := range faq.Tags {
		if strings.Contains(loweredQuestion, strings.ToLower(tag)) {
			score += 2
		}
	}
	loweredFAQ := strings.ToLower(faq.Question)
	for _, token := range strings.Fields(loweredQuestion) {
		if strings.Contains(loweredFAQ, token) {
			score++
		}
	}
	return score
}

// RankFAQs scores every FAQ against the question and returns them ordered
// by descending score. The sort is stable so that ties keep the original
// corpus order, which makes results deterministic.
func RankFAQs(corpus []*models.FAQ, question string) []ScoredFAQ {
	lowered := strings.ToLower(question)
	ranked := make([]ScoredFAQ, 0, len(corpus))
	for _, faq := range corpus {
		ranked = append(ranked, ScoredFAQ{FAQ: faq, Score: ScoreFAQ(faq, lowered)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
