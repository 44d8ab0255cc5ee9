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

// =========================================================================
// Public methods
// =========================================================================

// SaveComment inserts a comment. The post must exist at creation time;
// it is allowed to disappear later (author-only cascade).
func (s *Storage) SaveComment(comment domain.Comment) (domain.Comment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var saved domain.Comment
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		saved, err = s.saveComment(tx, comment)
		return err
	})
	return saved, err
}

func (s *Storage) Comment(id domain.CommentId) (domain.Comment, error) {
	return s.comment(s.db, id)
}

// CommentsByPost lists a post's comments oldest-first with authors attached.
func (s *Storage) CommentsByPost(postId domain.PostId) ([]domain.Comment, error) {
	return s.commentsByPost(s.db, postId)
}

func (s *Storage) DeleteComment(id domain.CommentId) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deleteComment(tx, id)
	})
}

// =========================================================================
// Internal methods
// =========================================================================

func (s *Storage) saveComment(q Querier, comment domain.Comment) (domain.Comment, error) {
	var postExists bool
	if err := q.QueryRow("SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)", comment.PostId).Scan(&postExists); err != nil {
		return domain.Comment{}, fmt.Errorf("failed to check post existence: %w", err)
	}
	if !postExists {
		return domain.Comment{}, &internal_errors.ErrorWithStatusCode{Message: "Post not found", StatusCode: http.StatusBadRequest}
	}

	err := q.QueryRow(`
        INSERT INTO comments(content, post_id, author_id)
        VALUES($1, $2, $3)
        RETURNING id, created_at`,
		comment.Content, comment.PostId, comment.AuthorId,
	).Scan(&comment.Id, &comment.CreatedAt)
	if err != nil {
		if mapped := mapConstraintError(err, "", "Author not found"); mapped != err {
			return domain.Comment{}, mapped
		}
		return domain.Comment{}, fmt.Errorf("failed to insert comment: %w", err)
	}

	author, err := s.userById(q, comment.AuthorId)
	if err != nil {
		return domain.Comment{}, err
	}
	comment.Author = &domain.UserSummary{Id: author.Id, Name: author.Name, Email: author.Email}
	return comment, nil
}

func (s *Storage) comment(q Querier, id domain.CommentId) (domain.Comment, error) {
	var comment domain.Comment
	var author domain.UserSummary
	err := q.QueryRow(`
        SELECT c.id, c.content, c.post_id, c.author_id, c.created_at,
               u.id, u.name, u.email
        FROM comments c JOIN users u ON u.id = c.author_id
        WHERE c.id = $1`,
		id,
	).Scan(
		&comment.Id, &comment.Content, &comment.PostId, &comment.AuthorId, &comment.CreatedAt,
		&author.Id, &author.Name, &author.Email,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Comment{}, &internal_errors.ErrorWithStatusCode{Message: "Comment not found", StatusCode: http.StatusNotFound}
		}
		return domain.Comment{}, fmt.Errorf("failed to query comment: %w", err)
	}
	comment.Author = &author
	return comment, nil
}

func (s *Storage) commentsByPost(q Querier, postId domain.PostId) ([]domain.Comment, error) {
	rows, err := q.Query(`
        SELECT c.id, c.content, c.post_id, c.author_id, c.created_at,
               u.id, u.name, u.email
        FROM comments c JOIN users u ON u.id = c.author_id
        WHERE c.post_id = $1
        ORDER BY c.created_at`,
		postId)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		var author domain.UserSummary
		err := rows.Scan(
			&comment.Id, &comment.Content, &comment.PostId, &comment.AuthorId, &comment.CreatedAt,
			&author.Id, &author.Name, &author.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comment.Author = &author
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comment rows: %w", err)
	}
	return comments, nil
}

func (s *Storage) deleteComment(q Querier, id domain.CommentId) error {
	result, err := q.Exec("DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	rowsDeleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for comment deletion: %w", err)
	}
	if rowsDeleted == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "Comment not found", StatusCode: http.StatusNotFound}
	}
	return nil
}
