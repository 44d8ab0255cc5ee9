package service

import (
	"net/http"
	"strings"

	"github.com/goblog-dev/goblog/internal/domain"
	"github.com/goblog-dev/goblog/internal/errors"
)

type PostService interface {
	Create(data PostData) (domain.Post, error)
	Get(id domain.PostId) (domain.Post, error)
	List() ([]domain.Post, error)
	Update(id domain.PostId, data PostData) (domain.Post, error)
	Delete(id domain.PostId) error
}

type PostData struct {
	Title     string
	Content   string
	Published bool
	AuthorId  domain.UserId
}

type Post struct {
	storage PostStorage
}

type PostStorage interface {
	SavePost(post domain.Post) (domain.Post, error)
	Post(id domain.PostId) (domain.Post, error)
	Posts() ([]domain.Post, error)
	UpdatePost(id domain.PostId, title, content string, published bool) (domain.Post, error)
	DeletePost(id domain.PostId) error
}

func NewPost(storage PostStorage) *Post {
	return &Post{storage}
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &errors.ErrorWithStatusCode{Message: "Title must not be empty", StatusCode: http.StatusBadRequest}
	}
	return nil
}

func (p *Post) Create(data PostData) (domain.Post, error) {
	if err := validateTitle(data.Title); err != nil {
		return domain.Post{}, err
	}
	return p.storage.SavePost(domain.Post{
		Title:     data.Title,
		Content:   data.Content,
		Published: data.Published,
		AuthorId:  data.AuthorId,
	})
}

func (p *Post) Get(id domain.PostId) (domain.Post, error) {
	return p.storage.Post(id)
}

func (p *Post) List() ([]domain.Post, error) {
	return p.storage.Posts()
}

func (p *Post) Update(id domain.PostId, data PostData) (domain.Post, error) {
	if err := validateTitle(data.Title); err != nil {
		return domain.Post{}, err
	}
	return p.storage.UpdatePost(id, data.Title, data.Content, data.Published)
}

func (p *Post) Delete(id domain.PostId) error {
	return p.storage.DeletePost(id)
}
