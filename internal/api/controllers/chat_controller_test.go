package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"pathfinders/internal/models/response_models"
	"pathfinders/pkg/middleware"
	"pathfinders/pkg/utils"
)

type stubAccountService struct {
	premium bool
}

func (s *stubAccountService) SendOtp(_ context.Context, _, _ string) error { return nil }

func (s *stubAccountService) VerifyOtp(_ context.Context, _, _ string) (*response_models.AccountLoginResponse, error) {
	return nil, utils.ErrInvalidOtp
}

func (s *stubAccountService) Me(_ context.Context, profileID string) (*response_models.AccountResponse, error) {
	return &response_models.AccountResponse{ID: profileID, IsPremium: s.premium}, nil
}

func (s *stubAccountService) Logout(_ context.Context, _ string) error        { return nil }
func (s *stubAccountService) UnlockPremium(_ context.Context, _ string) error { return nil }

type stubChatService struct {
	tokens []string
	err    error
}

func (s *stubChatService) Stream(_ context.Context, _ string, onToken func(string) error) error {
	if s.err != nil {
		return s.err
	}
	for _, token := range s.tokens {
		if err := onToken(token); err != nil {
			return err
		}
	}
	return nil
}

func chatRouter(chat *stubChatService, account *stubAccountService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewChatController(chat, account)
	r.POST("/api/chat", middleware.JWTAuthMiddleware(), controller.Chat)
	return r
}

func chatRequest(t *testing.T, token string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"How do I get better at debugging?"}`))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestChatRequiresAuthentication(t *testing.T) {
	r := chatRouter(&stubChatService{}, &stubAccountService{premium: true})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, chatRequest(t, ""))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, chatRequest(t, "not-a-token"))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChatRequiresPremium(t *testing.T) {
	r := chatRouter(&stubChatService{tokens: []string{"hi"}}, &stubAccountService{premium: false})

	token, err := utils.CreateToken(uuid.New(), "user")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, chatRequest(t, token))
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestChatStreamsPlainText(t *testing.T) {
	r := chatRouter(&stubChatService{tokens: []string{"Start ", "with ", "the debugger."}}, &stubAccountService{premium: true})

	token, err := utils.CreateToken(uuid.New(), "user")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, chatRequest(t, token))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	require.Equal(t, "Start with the debugger.", w.Body.String())
}

func TestChatUnavailableWithoutBackend(t *testing.T) {
	r := chatRouter(&stubChatService{err: utils.ErrAINotConfigured}, &stubAccountService{premium: true})

	token, err := utils.CreateToken(uuid.New(), "user")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, chatRequest(t, token))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}
