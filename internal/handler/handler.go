package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/goblog-dev/goblog/internal/config"
	"github.com/goblog-dev/goblog/internal/jwt"
	"github.com/goblog-dev/goblog/internal/logger"
	"github.com/goblog-dev/goblog/internal/markdown"
	"github.com/goblog-dev/goblog/internal/service"
)

// Pinger is the slice of the storage the health endpoint needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth    service.AuthService
	user    service.UserService
	account service.AccountService
	post    service.PostService
	comment service.CommentService
	md      *markdown.Renderer
	cfg     *config.Config
	jwt     jwt.JwtService
	pinger  Pinger
}

func New(
	auth service.AuthService,
	user service.UserService,
	account service.AccountService,
	post service.PostService,
	comment service.CommentService,
	md *markdown.Renderer,
	cfg *config.Config,
	jwtService jwt.JwtService,
	pinger Pinger,
) *Handler {
	return &Handler{auth, user, account, post, comment, md, cfg, jwtService, pinger}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	writeJSONStatus(w, http.StatusOK, v)
}

// writeJSONStatus marshals before writing headers so an encoding failure
// can still produce a clean 500 instead of a half-written body.
func writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to marshal response", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
