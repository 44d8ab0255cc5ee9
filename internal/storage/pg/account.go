package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/goblog-dev/goblog/internal/domain"
	internal_errors "github.com/goblog-dev/goblog/internal/errors"
)

// DeleteUserCascade removes a user together with every post and comment
// they authored, as one transaction. Either all three deletes commit and
// become visible together, or the store is left untouched.
//
// Comments are deleted strictly by author. A comment by a surviving user
// on one of the deleted posts keeps its dangling post_id; that is the
// intended cascade shape, not a cleanup omission.
func (s *Storage) DeleteUserCascade(id domain.UserId) (domain.DeletionSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var summary domain.DeletionSummary
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		summary, err = s.deleteUserCascade(tx, id)
		return err
	})
	if err != nil {
		return domain.DeletionSummary{}, err
	}
	return summary, nil
}

func (s *Storage) deleteUserCascade(tx *sql.Tx, id domain.UserId) (domain.DeletionSummary, error) {
	// Lock the user row first so two concurrent deletions serialize:
	// the loser observes the row as gone and reports not-found instead
	// of a second, double-counted success.
	var summary domain.DeletionSummary
	err := tx.QueryRow("SELECT id, name FROM users WHERE id = $1 FOR UPDATE", id).
		Scan(&summary.Id, &summary.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DeletionSummary{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		return domain.DeletionSummary{}, fmt.Errorf("failed to lock user for deletion: %w", err)
	}

	// Comments authored by the user go first, then their posts, then the
	// user row, keeping the author foreign keys satisfied at every step.
	res, err := tx.Exec("DELETE FROM comments WHERE author_id = $1", id)
	if err != nil {
		return domain.DeletionSummary{}, fmt.Errorf("failed to delete comments: %w", err)
	}
	if summary.CommentsDeleted, err = res.RowsAffected(); err != nil {
		return domain.DeletionSummary{}, fmt.Errorf("failed to count deleted comments: %w", err)
	}

	res, err = tx.Exec("DELETE FROM posts WHERE author_id = $1", id)
	if err != nil {
		return domain.DeletionSummary{}, fmt.Errorf("failed to delete posts: %w", err)
	}
	if summary.PostsDeleted, err = res.RowsAffected(); err != nil {
		return domain.DeletionSummary{}, fmt.Errorf("failed to count deleted posts: %w", err)
	}

	res, err = tx.Exec("DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return domain.DeletionSummary{}, fmt.Errorf("failed to delete user: %w", err)
	}
	rowsDeleted, err := res.RowsAffected()
	if err != nil {
		return domain.DeletionSummary{}, fmt.Errorf("failed to check user deletion: %w", err)
	}
	if rowsDeleted == 0 {
		return domain.DeletionSummary{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
	}

	return summary, nil
}
