package service

import (
	"github.com/goblog-dev/goblog/internal/domain"
	"github.com/goblog-dev/goblog/internal/logger"
	"github.com/goblog-dev/goblog/internal/metrics"
)

type AccountService interface {
	Delete(id domain.UserId) (domain.DeletionSummary, error)
}

// Account orchestrates the one multi-entity mutation in the system: the
// all-or-nothing removal of a user and everything they authored.
type Account struct {
	storage AccountStorage
}

type AccountStorage interface {
	DeleteUserCascade(id domain.UserId) (domain.DeletionSummary, error)
}

func NewAccount(storage AccountStorage) *Account {
	return &Account{storage}
}

// Delete removes the user and all their posts and comments atomically.
// A storage error means nothing was applied; the caller may treat the
// store as unchanged.
func (a *Account) Delete(id domain.UserId) (domain.DeletionSummary, error) {
	summary, err := a.storage.DeleteUserCascade(id)
	if err != nil {
		return domain.DeletionSummary{}, err
	}

	metrics.RecordAccountDeletion(summary.PostsDeleted, summary.CommentsDeleted)
	logger.Log.Info("account deleted",
		"user_id", summary.Id,
		"posts_deleted", summary.PostsDeleted,
		"comments_deleted", summary.CommentsDeleted,
	)
	return summary, nil
}
