package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"placementhub/internal/app/models"
)

// FAQRepository handles database operations for the FAQ corpus
type FAQRepository struct {
	db *pgxpool.Pool
}

// NewFAQRepository creates a new FAQ repository
func NewFAQRepository(db *pgxpool.Pool) *FAQRepository {
	return &FAQRepository{
		db: db,
	}
}

// GetAll retrieves the corpus in id order
func (r *FAQRepository) GetAll(ctx context.Context) ([]*models.FAQ, error) {
	query := `
		SELECT id, question, answer, tags, category
		FROM faqs
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving FAQs: %w", err)
	}
	defer rows.Close()

	var faqs []*models.FAQ
	for rows.Next() {
		var faq models.FAQ
		if err := rows.Scan(
			&faq.ID,
			&faq.Question,
			&faq.Answer,
			&faq.Tags,
			&faq.Category,
		); err != nil {
			return nil, err
		}
		faqs = append(faqs, &faq)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return faqs, nil
}

// Seed loads the corpus once; entries already present are left alone
func (r *FAQRepository) Seed(ctx context.Context, faqs []*models.FAQ) error {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM faqs`).Scan(&count); err != nil {
		return fmt.Errorf("error counting FAQs: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, faq := range faqs {
		_, err := r.db.Exec(ctx, `
			INSERT INTO faqs (question, answer, tags, category)
			VALUES ($1, $2, $3, $4)`,
			faq.Question, faq.Answer, faq.Tags, faq.Category,
		)
		if err != nil {
			return fmt.Errorf("error seeding FAQ: %w", err)
		}
	}

	return nil
}
