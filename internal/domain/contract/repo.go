package contract

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo_mock.go -package=mocks

import (
	"context"

	"github.com/diegoclair/athlete-weekly-bot/internal/domain/entity"
)

// DataManager aggregates all SQLite repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Audit() AuditRepo
	Feedback() FeedbackRepo
}

// AuditRepo defines the contract for the audit log repository
type AuditRepo interface {
	Create(entry *entity.AuditEntry) error
	ListRecent(limit int) ([]*entity.AuditEntry, error)
}

// FeedbackRepo defines the contract for the feedback repository
type FeedbackRepo interface {
	Create(feedback *entity.Feedback) error
	ListRecent(limit int) ([]*entity.Feedback, error)
	Count() (int64, error)
}
