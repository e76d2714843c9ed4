package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"placementhub/internal/app/models"
	"placementhub/internal/app/repositories"
	"placementhub/internal/pkg/apperrors"
	"placementhub/internal/pkg/auth"
)

// Default placement-cell account created on first boot.
const (
	defaultTPOEmail    = "tpo@placementhub.local"
	defaultTPOPassword = "ChangeMe123!"
)

// CreateDefaultData creates the default TPO account and the FAQ corpus if
// they don't exist.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (TPO account, FAQ corpus)...")
	var finalErr error

	existing, err := repos.UserRepository.GetByEmail(ctx, defaultTPOEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error looking up default TPO account")
		finalErr = errors.Join(finalErr, err)
	} else if existing == nil {
		hashed, err := auth.HashPassword(defaultTPOPassword)
		if err != nil {
			return errors.Join(finalErr, err)
		}
		tpo := &models.User{
			Name:     "Placement Cell",
			Email:    defaultTPOEmail,
			Password: hashed,
			RoleType: models.RoleTPO,
		}
		if err := repos.UserRepository.Create(ctx, tpo); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Error().Err(err).Msg("Error creating default TPO account")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Str("email", defaultTPOEmail).Msg("Default TPO account created")
		}
	}

	if err := repos.FAQRepository.Seed(ctx, DefaultFAQs()); err != nil {
		lgr.Error().Err(err).Msg("Error seeding FAQ corpus")
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

// DefaultFAQs returns the static FAQ corpus answered by the assistant.
func DefaultFAQs() []*models.FAQ {
	return []*models.FAQ{
		{
			Question: "What is the minimum CGPA required for placements?",
			Answer:   "Each drive sets its own minimum CGPA. Most companies ask for at least 6.0; check the eligibility criteria on the drive listing.",
			Tags:     []string{"cgpa", "eligibility"},
			Category: "eligibility",
		},
		{
			Question: "Can I apply to a drive if I have active backlogs?",
			Answer:   "Only if the drive's backlog limit allows it. A drive with maxBacklogs 0 rejects any student with an active backlog.",
			Tags:     []string{"backlogs", "eligibility"},
			Category: "eligibility",
		},
		{
			Question: "How do I update my resume and skills?",
			Answer:   "Open your profile page and edit the skills, projects and experience sections. Eligibility is re-evaluated from the saved profile.",
			Tags:     []string{"profile", "skills", "resume"},
			Category: "profile",
		},
		{
			Question: "How do I book a mentorship session with an alumnus?",
			Answer:   "Browse the available mentorship slots and book one with free capacity. Each slot can only be booked once per student.",
			Tags:     []string{"mentorship", "booking", "slot"},
			Category: "mentorship",
		},
		{
			Question: "Where can I see referral jobs posted by alumni?",
			Answer:   "The referral board lists every active opening posted by alumni, including the application link.",
			Tags:     []string{"referral", "jobs", "alumni"},
			Category: "referrals",
		},
		{
			Question: "What happens after I apply to a drive?",
			Answer:   "Your application starts as APPLIED. The placement cell moves it through INTERVIEW_SCHEDULED, SELECTED or REJECTED as the company progresses.",
			Tags:     []string{"application", "status", "interview"},
			Category: "applications",
		},
	}
}
