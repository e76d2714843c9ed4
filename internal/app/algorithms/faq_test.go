package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placementhub/internal/app/models"
)

func testCorpus() []*models.FAQ {
	return []*models.FAQ{
		{ID: 1, Question: "What CGPA is required for placement drives?", Answer: "Each drive sets its own minimum CGPA.", Tags: []string{"cgpa", "eligibility"}, Category: "eligibility"},
		{ID: 2, Question: "How do I book a mentorship slot?", Answer: "Open the mentorship page and pick an available slot.", Tags: []string{"mentorship", "slot"}, Category: "mentorship"},
		{ID: 3, Question: "Can I apply to a drive twice?", Answer: "No, one application per drive.", Tags: []string{"apply", "drive"}, Category: "applications"},
		{ID: 4, Question: "How are alumni referrals shared?", Answer: "Alumni post referrals on the job board.", Tags: []string{"referral", "alumni"}, Category: "referrals"},
	}
}

func TestRankFAQsCGPAQuestionWinsOnTag(t *testing.T) {
	ranked := RankFAQs(testCorpus(), "What CGPA do I need for eligibility?")

	require.NotEmpty(t, ranked)
	top := ranked[0]
	assert.Equal(t, int64(1), top.FAQ.ID)
	assert.Greater(t, top.Score, 0)
	// "cgpa" and "eligibility" tags both match: at least +4 from tags alone.
	assert.GreaterOrEqual(t, top.Score, 4)
}

func TestRankFAQsStableOnTies(t *testing.T) {
	corpus := testCorpus()
	ranked := RankFAQs(corpus, "zzzz qqqq")

	// All scores are zero; corpus order must be preserved.
	require.Len(t, ranked, len(corpus))
	for i, scored := range ranked {
		assert.Equal(t, corpus[i].ID, scored.FAQ.ID)
		assert.Zero(t, scored.Score)
	}
}

func TestScoreFAQTokenAndTagScoring(t *testing.T) {
	faq := &models.FAQ{
		Question: "How do I book a mentorship slot?",
		Tags:     []string{"mentorship"},
	}

	// Tag substring: +2. Tokens "mentorship" and "slot" appear in the FAQ
	// question text: +1 each.
	score := ScoreFAQ(faq, "mentorship slot")
	assert.Equal(t, 4, score)

	assert.Zero(t, ScoreFAQ(faq, "unrelated words"))
}
