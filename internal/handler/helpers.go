package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/goblog-dev/goblog/internal/domain"
	"github.com/goblog-dev/goblog/internal/errors"
	mw "github.com/goblog-dev/goblog/internal/middleware"
)

// parseIdParam parses a positive integer id from a URL parameter. A
// non-numeric value is a validation error (400), distinct from a
// well-formed id that matches nothing (404).
func parseIdParam(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil || val <= 0 {
		return 0, &errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("invalid %s: must be a positive integer", paramName),
			StatusCode: http.StatusBadRequest,
		}
	}
	return val, nil
}

func errForbidden() error {
	return &errors.ErrorWithStatusCode{Message: "Forbidden", StatusCode: http.StatusForbidden}
}

// authorizeActor rejects a request whose session identity differs from
// the author it acts for. Requests without a session pass through: the
// cookie is optional and the anonymous contract stays intact.
func authorizeActor(r *http.Request, authorId domain.UserId) error {
	actor := mw.GetUserFromContext(r)
	if actor != nil && actor.Id != authorId {
		return errForbidden()
	}
	return nil
}

// authorizePostActor checks a post mutation against the session identity.
// Only runs a lookup when a session is present.
func (h *Handler) authorizePostActor(r *http.Request, id domain.PostId) error {
	actor := mw.GetUserFromContext(r)
	if actor == nil {
		return nil
	}
	post, err := h.post.Get(id)
	if err != nil {
		return err
	}
	if post.AuthorId != actor.Id {
		return errForbidden()
	}
	return nil
}

func (h *Handler) authorizeCommentActor(r *http.Request, id domain.CommentId) error {
	actor := mw.GetUserFromContext(r)
	if actor == nil {
		return nil
	}
	comment, err := h.comment.Get(id)
	if err != nil {
		return err
	}
	if comment.AuthorId != actor.Id {
		return errForbidden()
	}
	return nil
}
