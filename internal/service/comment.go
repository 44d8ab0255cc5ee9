package service

import (
	"net/http"
	"strings"

	"github.com/goblog-dev/goblog/internal/domain"
	"github.com/goblog-dev/goblog/internal/errors"
)

type CommentService interface {
	Create(data CommentData) (domain.Comment, error)
	Get(id domain.CommentId) (domain.Comment, error)
	ListByPost(postId domain.PostId) ([]domain.Comment, error)
	Delete(id domain.CommentId) error
}

type CommentData struct {
	Content  string
	PostId   domain.PostId
	AuthorId domain.UserId
}

type Comment struct {
	storage CommentStorage
}

type CommentStorage interface {
	SaveComment(comment domain.Comment) (domain.Comment, error)
	Comment(id domain.CommentId) (domain.Comment, error)
	CommentsByPost(postId domain.PostId) ([]domain.Comment, error)
	DeleteComment(id domain.CommentId) error
}

func NewComment(storage CommentStorage) *Comment {
	return &Comment{storage}
}

func (c *Comment) Create(data CommentData) (domain.Comment, error) {
	if strings.TrimSpace(data.Content) == "" {
		return domain.Comment{}, &errors.ErrorWithStatusCode{Message: "Content must not be empty", StatusCode: http.StatusBadRequest}
	}
	return c.storage.SaveComment(domain.Comment{
		Content:  data.Content,
		PostId:   data.PostId,
		AuthorId: data.AuthorId,
	})
}

func (c *Comment) Get(id domain.CommentId) (domain.Comment, error) {
	return c.storage.Comment(id)
}

func (c *Comment) ListByPost(postId domain.PostId) ([]domain.Comment, error) {
	return c.storage.CommentsByPost(postId)
}

func (c *Comment) Delete(id domain.CommentId) error {
	return c.storage.DeleteComment(id)
}
