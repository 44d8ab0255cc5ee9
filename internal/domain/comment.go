package domain

import "time"

// Comment references its post by id only. The post may already be gone:
// comments are cascaded by author, never by post.
type Comment struct {
	Id        CommentId    `json:"id"`
	Content   string       `json:"content"`
	PostId    PostId       `json:"postId"`
	AuthorId  UserId       `json:"authorId"`
	Author    *UserSummary `json:"author,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}
