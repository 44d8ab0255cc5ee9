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
// Public methods (satisfy the service storage interfaces)
// =========================================================================

// SaveUser inserts a new user and returns it with the generated id.
// A duplicate email aborts the insert with a 400.
func (s *Storage) SaveUser(user domain.User) (domain.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var saved domain.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		saved, err = s.saveUser(tx, user)
		return err
	})
	return saved, err
}

// UserByEmail fetches a user by exact email match, hash included.
// Only the auth service may call this; everything else works by id.
func (s *Storage) UserByEmail(email domain.Email) (domain.User, error) {
	return s.userByEmail(s.db, email)
}

// UserById fetches a user with their post summaries attached.
func (s *Storage) UserById(id domain.UserId) (domain.User, error) {
	user, err := s.userById(s.db, id)
	if err != nil {
		return domain.User{}, err
	}
	posts, err := s.postSummaries(s.db, id)
	if err != nil {
		return domain.User{}, err
	}
	user.Posts = posts
	return user, nil
}

// Users lists every user with their post summaries attached.
func (s *Storage) Users() ([]domain.User, error) {
	users, err := s.users(s.db)
	if err != nil {
		return nil, err
	}
	for i := range users {
		posts, err := s.postSummaries(s.db, users[i].Id)
		if err != nil {
			return nil, err
		}
		users[i].Posts = posts
	}
	return users, nil
}

// UpdateUser overwrites email and name, and the password hash when
// newHash is non-nil. Returns the updated row.
func (s *Storage) UpdateUser(id domain.UserId, email domain.Email, name string, newHash *string) (domain.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var updated domain.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		updated, err = s.updateUser(tx, id, email, name, newHash)
		return err
	})
	return updated, err
}

// =========================================================================
// Internal methods (core database logic, transaction-agnostic)
// =========================================================================

func (s *Storage) saveUser(q Querier, user domain.User) (domain.User, error) {
	passHash := sql.NullString{String: user.PassHash, Valid: user.PassHash != ""}

	var saved domain.User
	err := q.QueryRow(`
        INSERT INTO users(email, name, password_hash)
        VALUES($1, $2, $3)
        RETURNING id, email, name, created_at`,
		user.Email, user.Name, passHash,
	).Scan(&saved.Id, &saved.Email, &saved.Name, &saved.CreatedAt)
	if err != nil {
		if mapped := mapConstraintError(err, "Email must be unique", ""); mapped != err {
			return domain.User{}, mapped
		}
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return saved, nil
}

func (s *Storage) userByEmail(q Querier, email domain.Email) (domain.User, error) {
	var user domain.User
	var passHash sql.NullString
	err := q.QueryRow(`
        SELECT id, email, name, password_hash, created_at
        FROM users WHERE email = $1`,
		email,
	).Scan(&user.Id, &user.Email, &user.Name, &passHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		return domain.User{}, fmt.Errorf("failed to query user by email: %w", err)
	}
	user.PassHash = passHash.String
	return user, nil
}

func (s *Storage) userById(q Querier, id domain.UserId) (domain.User, error) {
	var user domain.User
	err := q.QueryRow(`
        SELECT id, email, name, created_at
        FROM users WHERE id = $1`,
		id,
	).Scan(&user.Id, &user.Email, &user.Name, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

func (s *Storage) users(q Querier) ([]domain.User, error) {
	rows, err := q.Query(`
        SELECT id, email, name, created_at
        FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.Id, &user.Email, &user.Name, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}
	return users, nil
}

func (s *Storage) postSummaries(q Querier, authorId domain.UserId) ([]domain.PostSummary, error) {
	rows, err := q.Query(`
        SELECT id, title, published, created_at
        FROM posts WHERE author_id = $1 ORDER BY created_at DESC`,
		authorId)
	if err != nil {
		return nil, fmt.Errorf("failed to query post summaries: %w", err)
	}
	defer rows.Close()

	var posts []domain.PostSummary
	for rows.Next() {
		var post domain.PostSummary
		if err := rows.Scan(&post.Id, &post.Title, &post.Published, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post summary row: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate post summary rows: %w", err)
	}
	return posts, nil
}

func (s *Storage) updateUser(q Querier, id domain.UserId, email domain.Email, name string, newHash *string) (domain.User, error) {
	var updated domain.User
	var err error
	if newHash != nil {
		err = q.QueryRow(`
            UPDATE users SET email = $1, name = $2, password_hash = $3
            WHERE id = $4
            RETURNING id, email, name, created_at`,
			email, name, *newHash, id,
		).Scan(&updated.Id, &updated.Email, &updated.Name, &updated.CreatedAt)
	} else {
		err = q.QueryRow(`
            UPDATE users SET email = $1, name = $2
            WHERE id = $3
            RETURNING id, email, name, created_at`,
			email, name, id,
		).Scan(&updated.Id, &updated.Email, &updated.Name, &updated.CreatedAt)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		if mapped := mapConstraintError(err, "Email must be unique", ""); mapped != err {
			return domain.User{}, mapped
		}
		return domain.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	return updated, nil
}
