package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goblog-dev/goblog/internal/config"
	"github.com/goblog-dev/goblog/internal/domain"
	"github.com/goblog-dev/goblog/internal/jwt"
	"github.com/goblog-dev/goblog/internal/markdown"
	"github.com/goblog-dev/goblog/internal/middleware"
	"github.com/goblog-dev/goblog/internal/service"
	"github.com/stretchr/testify/assert"
)

// =========================================================================
// Mocks for every service the handler depends on
// =========================================================================

type MockAuthService struct {
	authenticateFunc func(email domain.Email, password domain.Password) (domain.User, error)
}

func (m *MockAuthService) Authenticate(email domain.Email, password domain.Password) (domain.User, error) {
	if m.authenticateFunc != nil {
		return m.authenticateFunc(email, password)
	}
	return domain.User{}, nil
}

type MockUserService struct {
	createFunc func(data service.UserData) (domain.User, error)
	getFunc    func(id domain.UserId) (domain.User, error)
	listFunc   func() ([]domain.User, error)
	updateFunc func(id domain.UserId, data service.UserData) (domain.User, error)
}

func (m *MockUserService) Create(data service.UserData) (domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(data)
	}
	return domain.User{}, nil
}

func (m *MockUserService) Get(id domain.UserId) (domain.User, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return domain.User{}, nil
}

func (m *MockUserService) List() ([]domain.User, error) {
	if m.listFunc != nil {
		return m.listFunc()
	}
	return nil, nil
}

func (m *MockUserService) Update(id domain.UserId, data service.UserData) (domain.User, error) {
	if m.updateFunc != nil {
		return m.updateFunc(id, data)
	}
	return domain.User{}, nil
}

type MockAccountService struct {
	deleteFunc func(id domain.UserId) (domain.DeletionSummary, error)
}

func (m *MockAccountService) Delete(id domain.UserId) (domain.DeletionSummary, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return domain.DeletionSummary{}, nil
}

type MockPostService struct {
	createFunc func(data service.PostData) (domain.Post, error)
	getFunc    func(id domain.PostId) (domain.Post, error)
	listFunc   func() ([]domain.Post, error)
	updateFunc func(id domain.PostId, data service.PostData) (domain.Post, error)
	deleteFunc func(id domain.PostId) error
}

func (m *MockPostService) Create(data service.PostData) (domain.Post, error) {
	if m.createFunc != nil {
		return m.createFunc(data)
	}
	return domain.Post{}, nil
}

func (m *MockPostService) Get(id domain.PostId) (domain.Post, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return domain.Post{}, nil
}

func (m *MockPostService) List() ([]domain.Post, error) {
	if m.listFunc != nil {
		return m.listFunc()
	}
	return nil, nil
}

func (m *MockPostService) Update(id domain.PostId, data service.PostData) (domain.Post, error) {
	if m.updateFunc != nil {
		return m.updateFunc(id, data)
	}
	return domain.Post{}, nil
}

func (m *MockPostService) Delete(id domain.PostId) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

type MockCommentService struct {
	createFunc     func(data service.CommentData) (domain.Comment, error)
	getFunc        func(id domain.CommentId) (domain.Comment, error)
	listByPostFunc func(postId domain.PostId) ([]domain.Comment, error)
	deleteFunc     func(id domain.CommentId) error
}

func (m *MockCommentService) Create(data service.CommentData) (domain.Comment, error) {
	if m.createFunc != nil {
		return m.createFunc(data)
	}
	return domain.Comment{}, nil
}

func (m *MockCommentService) Get(id domain.CommentId) (domain.Comment, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return domain.Comment{}, nil
}

func (m *MockCommentService) ListByPost(postId domain.PostId) ([]domain.Comment, error) {
	if m.listByPostFunc != nil {
		return m.listByPostFunc(postId)
	}
	return nil, nil
}

func (m *MockCommentService) Delete(id domain.CommentId) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

type MockPinger struct {
	pingFunc func(ctx context.Context) error
}

func (m *MockPinger) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

// =========================================================================
// Harness
// =========================================================================

type testDeps struct {
	auth    *MockAuthService
	user    *MockUserService
	account *MockAccountService
	post    *MockPostService
	comment *MockCommentService
	pinger  *MockPinger
}

func newTestHandler(t *testing.T) (*Handler, *testDeps) {
	t.Helper()
	deps := &testDeps{
		auth:    &MockAuthService{},
		user:    &MockUserService{},
		account: &MockAccountService{},
		post:    &MockPostService{},
		comment: &MockCommentService{},
		pinger:  &MockPinger{},
	}
	cfg := &config.Config{Public: config.Public{JwtTTL: time.Hour}}
	h := New(deps.auth, deps.user, deps.account, deps.post, deps.comment,
		markdown.New(), cfg, jwt.New("test-key", time.Hour), deps.pinger)
	return h, deps
}

func createRequest(t *testing.T, method, url string, body []byte) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, url, bytes.NewBuffer(body))
}

// asUser attaches a session identity the way OptionalAuth would.
func asUser(req *http.Request, id domain.UserId) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserClaimsKey, &domain.User{Id: id})
	return req.WithContext(ctx)
}

func TestWriteJSON(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		rr := httptest.NewRecorder()
		writeJSON(rr, map[string]string{"message": "hello"})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"message":"hello"}`, rr.Body.String())
	})

	t.Run("unencodable value yields clean 500", func(t *testing.T) {
		rr := httptest.NewRecorder()
		writeJSON(rr, make(chan int))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
