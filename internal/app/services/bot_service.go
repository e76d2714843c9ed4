package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"placementhub/internal/app/algorithms"
	"placementhub/internal/app/models/dto"
	"placementhub/internal/app/repositories"
	"placementhub/internal/pkg/apperrors"
)

// Fallback returned when no FAQ scores above zero for the question.
const botFallbackAnswer = "I could not find a matching answer. Please contact the placement cell, or browse the related questions below."

// BotService answers questions against the FAQ corpus
type BotService interface {
	Ask(ctx context.Context, question string) (*dto.AskResponse, error)
}

type botService struct {
	faqRepo repositories.FAQRepository
	logger  zerolog.Logger
}

// NewBotService creates a new FAQ bot service
func NewBotService(faqRepo repositories.FAQRepository, logger zerolog.Logger) BotService {
	return &botService{
		faqRepo: faqRepo,
		logger:  logger.With().Str("service", "bot").Logger(),
	}
}

func (s *botService) Ask(ctx context.Context, question string) (*dto.AskResponse, error) {
	if strings.TrimSpace(question) == "" {
		return nil, apperrors.NewValidationError("question is required")
	}

	corpus, err := s.faqRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	ranked := algorithms.RankFAQs(corpus, question)

	if len(ranked) == 0 || ranked[0].Score == 0 {
		related := make([]dto.RelatedFAQ, 0, 3)
		for i := 0; i < len(corpus) && i < 3; i++ {
			related = append(related, dto.RelatedFAQ{
				Question: corpus[i].Question,
				Answer:   corpus[i].Answer,
			})
		}
		return &dto.AskResponse{Answer: botFallbackAnswer, RelatedFAQs: related}, nil
	}

	related := make([]dto.RelatedFAQ, 0, 3)
	for i := 1; i < len(ranked) && i < 4; i++ {
		related = append(related, dto.RelatedFAQ{
			Question: ranked[i].FAQ.Question,
			Answer:   ranked[i].FAQ.Answer,
		})
	}
	return &dto.AskResponse{Answer: ranked[0].FAQ.Answer, RelatedFAQs: related}, nil
}
