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

// SavePost inserts a post. A missing author trips the foreign key and is
// reported as a 400.
func (s *Storage) SavePost(post domain.Post) (domain.Post, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var saved domain.Post
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		saved, err = s.savePost(tx, post)
		return err
	})
	return saved, err
}

func (s *Storage) Post(id domain.PostId) (domain.Post, error) {
	return s.post(s.db, id)
}

// Posts lists all posts newest-first with their author attached.
func (s *Storage) Posts() ([]domain.Post, error) {
	return s.posts(s.db)
}

func (s *Storage) UpdatePost(id domain.PostId, title, content string, published bool) (domain.Post, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var updated domain.Post
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		updated, err = s.updatePost(tx, id, title, content, published)
		return err
	})
	return updated, err
}

func (s *Storage) DeletePost(id domain.PostId) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deletePost(tx, id)
	})
}

// =========================================================================
// Internal methods
// =========================================================================

const postColumns = `
    p.id, p.title, COALESCE(p.content, ''), p.published, p.author_id,
    p.created_at, p.updated_at, u.id, u.name, u.email`

func scanPost(scan func(dest ...interface{}) error) (domain.Post, error) {
	var post domain.Post
	var author domain.UserSummary
	err := scan(
		&post.Id, &post.Title, &post.Content, &post.Published, &post.AuthorId,
		&post.CreatedAt, &post.UpdatedAt, &author.Id, &author.Name, &author.Email,
	)
	if err != nil {
		return domain.Post{}, err
	}
	post.Author = &author
	return post, nil
}

func (s *Storage) savePost(q Querier, post domain.Post) (domain.Post, error) {
	content := sql.NullString{String: post.Content, Valid: post.Content != ""}

	var id domain.PostId
	err := q.QueryRow(`
        INSERT INTO posts(title, content, published, author_id)
        VALUES($1, $2, $3, $4)
        RETURNING id`,
		post.Title, content, post.Published, post.AuthorId,
	).Scan(&id)
	if err != nil {
		if mapped := mapConstraintError(err, "", "Author not found"); mapped != err {
			return domain.Post{}, mapped
		}
		return domain.Post{}, fmt.Errorf("failed to insert post: %w", err)
	}
	return s.post(q, id)
}

func (s *Storage) post(q Querier, id domain.PostId) (domain.Post, error) {
	row := q.QueryRow(`
        SELECT `+postColumns+`
        FROM posts p JOIN users u ON u.id = p.author_id
        WHERE p.id = $1`,
		id)
	post, err := scanPost(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, &internal_errors.ErrorWithStatusCode{Message: "Post not found", StatusCode: http.StatusNotFound}
		}
		return domain.Post{}, fmt.Errorf("failed to query post: %w", err)
	}
	return post, nil
}

func (s *Storage) posts(q Querier) ([]domain.Post, error) {
	rows, err := q.Query(`
        SELECT ` + postColumns + `
        FROM posts p JOIN users u ON u.id = p.author_id
        ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		post, err := scanPost(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate post rows: %w", err)
	}
	return posts, nil
}

func (s *Storage) updatePost(q Querier, id domain.PostId, title, content string, published bool) (domain.Post, error) {
	contentVal := sql.NullString{String: content, Valid: content != ""}

	result, err := q.Exec(`
        UPDATE posts SET title = $1, content = $2, published = $3, updated_at = now()
        WHERE id = $4`,
		title, contentVal, published, id)
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to update post: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to check affected rows for post update: %w", err)
	}
	if rowsAffected == 0 {
		return domain.Post{}, &internal_errors.ErrorWithStatusCode{Message: "Post not found", StatusCode: http.StatusNotFound}
	}
	return s.post(q, id)
}

func (s *Storage) deletePost(q Querier, id domain.PostId) error {
	result, err := q.Exec("DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	rowsDeleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for post deletion: %w", err)
	}
	if rowsDeleted == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "Post not found", StatusCode: http.StatusNotFound}
	}
	return nil
}
