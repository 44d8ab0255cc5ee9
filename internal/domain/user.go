package domain

import "time"

// User is the account entity. PassHash never leaves the process: it is
// excluded from JSON marshaling and stripped by the service layer before
// a user is handed to any caller.
type User struct {
	Id        UserId        `json:"id"`
	Email     Email         `json:"email"`
	Name      string        `json:"name"`
	PassHash  string        `json:"-"`
	CreatedAt time.Time     `json:"createdAt"`
	Posts     []PostSummary `json:"posts,omitempty"`
}

// WithoutPassword returns a copy safe to serialize.
func (u User) WithoutPassword() User {
	u.PassHash = ""
	return u
}

// DeletionSummary reports what an account deletion removed. Counts are
// taken inside the deleting transaction, so they reflect exactly the rows
// that were destroyed.
type DeletionSummary struct {
	Id              UserId `json:"id"`
	Name            string `json:"name"`
	PostsDeleted    int64  `json:"postsDeleted"`
	CommentsDeleted int64  `json:"commentsDeleted"`
}
