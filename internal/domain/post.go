package domain

import "time"

type Post struct {
	Id        PostId       `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content,omitempty"`
	Published bool         `json:"published"`
	AuthorId  UserId       `json:"authorId"`
	Author    *UserSummary `json:"author,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// PostSummary is the compact shape embedded in user responses.
type PostSummary struct {
	Id        PostId    `json:"id"`
	Title     string    `json:"title"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserSummary is the author shape embedded in post and comment responses.
type UserSummary struct {
	Id    UserId `json:"id"`
	Name  string `json:"name"`
	Email Email  `json:"email"`
}
