package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goblog-dev/goblog/internal/api"
	"github.com/goblog-dev/goblog/internal/service"
	"github.com/goblog-dev/goblog/internal/utils"
)

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var body api.CreatePostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := authorizeActor(r, body.AuthorId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.post.Create(service.PostData{
		Title:     body.Title,
		Content:   body.Content,
		Published: body.Published,
		AuthorId:  body.AuthorId,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, post)
}

func (h *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.post.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.PostListResponse{Posts: posts})
}

// GetPost returns the post plus its content rendered to sanitized HTML.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(chi.URLParam(r, "id"), "post id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.post.Get(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.PostResponse{Post: post, ContentHtml: h.md.Render(post.Content)})
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(chi.URLParam(r, "id"), "post id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.authorizePostActor(r, id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.UpdatePostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.post.Update(id, service.PostData{
		Title:     body.Title,
		Content:   body.Content,
		Published: body.Published,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, post)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(chi.URLParam(r, "id"), "post id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.authorizePostActor(r, id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.post.Delete(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) GetPostComments(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(chi.URLParam(r, "id"), "post id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	comments, err := h.comment.ListByPost(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.CommentListResponse{Comments: comments})
}
