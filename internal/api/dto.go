package api

import "github.com/goblog-dev/goblog/internal/domain"

// Request DTOs

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password,omitempty"`
}

type UpdateUserRequest struct {
	Email    string `json:"email" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreatePostRequest struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content,omitempty"`
	Published bool   `json:"published,omitempty"`
	AuthorId  int64  `json:"authorId" validate:"required"`
}

type UpdatePostRequest struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content,omitempty"`
	Published bool   `json:"published,omitempty"`
}

type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required"`
	PostId   int64  `json:"postId" validate:"required"`
	AuthorId int64  `json:"authorId" validate:"required"`
}

// Response DTOs

type UserListResponse struct {
	Users []domain.User `json:"users"`
}

type PostListResponse struct {
	Posts []domain.Post `json:"posts"`
}

// PostResponse carries the stored markdown plus its rendered, sanitized
// HTML for detail views.
type PostResponse struct {
	domain.Post
	ContentHtml string `json:"contentHtml,omitempty"`
}

type CommentListResponse struct {
	Comments []domain.Comment `json:"comments"`
}
