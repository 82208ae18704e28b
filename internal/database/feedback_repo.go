package database

import (
	"fmt"
	"time"

	"github.com/diegoclair/athlete-weekly-bot/internal/domain/contract"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/entity"
	"github.com/google/uuid"
)

type feedbackRepo struct {
	db dbConn
}

func newFeedbackRepo(db dbConn) contract.FeedbackRepo {
	return &feedbackRepo{db: db}
}

func (r *feedbackRepo) Create(feedback *entity.Feedback) error {
	query := `
		INSERT INTO feedback (id, user_id, user_name, source, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if feedback.ID == "" {
		feedback.ID = uuid.NewString()
	}
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(query,
		feedback.ID,
		feedback.UserID,
		feedback.UserName,
		feedback.Source,
		feedback.Message,
		feedback.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}

	return nil
}

func (r *feedbackRepo) ListRecent(limit int) ([]*entity.Feedback, error) {
	query := `
		SELECT id, user_id, user_name, source, message, created_at
		FROM feedback
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	var items []*entity.Feedback
	for rows.Next() {
		item := &entity.Feedback{}
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.UserName,
			&item.Source,
			&item.Message,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *feedbackRepo) Count() (int64, error) {
	var count int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM feedback`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count feedback: %w", err)
	}
	return count, nil
}
