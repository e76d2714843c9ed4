package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placementhub/internal/pkg/apperrors"
	"placementhub/internal/seed"
)

func seededBot(t *testing.T) *Services {
	t.Helper()

	svcs, repos := newTestServices(t)
	require.NoError(t, repos.FAQRepository.Seed(context.Background(), seed.DefaultFAQs()))
	return svcs
}

func TestSeededCorpusGetsSequentialIDs(t *testing.T) {
	_, repos := newTestServices(t)
	ctx := context.Background()

	require.NoError(t, repos.FAQRepository.Seed(ctx, seed.DefaultFAQs()))

	faqs, err := repos.FAQRepository.GetAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, faqs)
	for i, faq := range faqs {
		assert.Equal(t, int64(i+1), faq.ID)
	}
}

func TestAskMatchesCGPAQuestion(t *testing.T) {
	svcs := seededBot(t)

	resp, err := svcs.BotService.Ask(context.Background(), "What is the minimum CGPA for placements?")
	require.NoError(t, err)
	assert.Contains(t, resp.Answer, "CGPA")
	assert.LessOrEqual(t, len(resp.RelatedFAQs), 3)
}

func TestAskNonsenseFallsBack(t *testing.T) {
	svcs := seededBot(t)

	resp, err := svcs.BotService.Ask(context.Background(), "xyzzy qwfp zxcv")
	require.NoError(t, err)
	assert.Contains(t, resp.Answer, "could not find")
	assert.Len(t, resp.RelatedFAQs, 3)

	// Fallback surfaces the first corpus entries in order.
	corpus := seed.DefaultFAQs()
	for i, related := range resp.RelatedFAQs {
		assert.Equal(t, corpus[i].Question, related.Question)
	}
}

func TestAskEmptyQuestion(t *testing.T) {
	svcs := seededBot(t)

	_, err := svcs.BotService.Ask(context.Background(), "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAskReturnsRanksTwoToFourAsRelated(t *testing.T) {
	svcs := seededBot(t)

	resp, err := svcs.BotService.Ask(context.Background(), "How do I book a mentorship slot with an alumnus?")
	require.NoError(t, err)
	assert.Contains(t, resp.Answer, "mentorship")
	for _, related := range resp.RelatedFAQs {
		assert.NotEqual(t, resp.Answer, related.Answer)
	}
}
