package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goblog-dev/goblog/internal/api"
	"github.com/goblog-dev/goblog/internal/service"
	"github.com/goblog-dev/goblog/internal/utils"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var body api.CreateCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := authorizeActor(r, body.AuthorId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	comment, err := h.comment.Create(service.CommentData{
		Content:  body.Content,
		PostId:   body.PostId,
		AuthorId: body.AuthorId,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, comment)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(chi.URLParam(r, "id"), "comment id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.authorizeCommentActor(r, id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.comment.Delete(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
