package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/homehandshake/publish-api/internal/domain/user"
	"github.com/homehandshake/publish-api/internal/infrastructure/auth"
	"github.com/homehandshake/publish-api/internal/interfaces/httpserver/handlers"
)

// MockUserService is a mock implementation of user.Service for testing.
type MockUserService struct {
	ProfileKeyFunc func(ctx context.Context, userID string) (string, error)
	ActivateFunc   func(ctx context.Context, userID string) error
	SetActiveFunc  func(ctx context.Context, userID string, active bool) error
	StatusFunc     func(ctx context.Context, userID string) (*user.Status, error)
}

func (m *MockUserService) ProfileKey(ctx context.Context, userID string) (string, error) {
	if m.ProfileKeyFunc != nil {
		return m.ProfileKeyFunc(ctx, userID)
	}
	return "", nil
}

func (m *MockUserService) Activate(ctx context.Context, userID string) error {
	if m.ActivateFunc != nil {
		return m.ActivateFunc(ctx, userID)
	}
	return nil
}

func (m *MockUserService) SetActive(ctx context.Context, userID string, active bool) error {
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(ctx, userID, active)
	}
	return nil
}

func (m *MockUserService) Status(ctx context.Context, userID string) (*user.Status, error) {
	if m.StatusFunc != nil {
		return m.StatusFunc(ctx, userID)
	}
	return &user.Status{}, nil
}

func newUserEngine(service user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		if id := c.GetHeader("X-User-Id"); id != "" {
			c.Set(auth.ContextUserID, id)
		}
		c.Next()
	})
	handler := handlers.NewUserHandler(service, zerolog.Nop())
	engine.POST("/v1/user/activate", handler.Activate)
	engine.GET("/v1/user/status", handler.Status)
	engine.POST("/v1/user/status", handler.SetStatus)
	return engine
}

func TestUserHandler_Activate(t *testing.T) {
	var activated string
	service := &MockUserService{
		ActivateFunc: func(_ context.Context, userID string) error {
			activated = userID
			return nil
		},
	}
	engine := newUserEngine(service)

	w := performRequest(engine, http.MethodPost, "/v1/user/activate", "user-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if activated != "user-1" {
		t.Errorf("activated = %q, want user-1", activated)
	}
}

func TestUserHandler_Status(t *testing.T) {
	service := &MockUserService{
		StatusFunc: func(_ context.Context, userID string) (*user.Status, error) {
			return &user.Status{UserID: userID, ProfileKeySet: true, AccountActive: true}, nil
		},
	}
	engine := newUserEngine(service)

	w := performRequest(engine, http.MethodGet, "/v1/user/status", "user-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var status user.Status
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !status.ProfileKeySet || !status.AccountActive {
		t.Errorf("status = %+v, want both flags set", status)
	}
}

func TestUserHandler_SetStatus(t *testing.T) {
	t.Run("sets the flag", func(t *testing.T) {
		var gotActive bool
		service := &MockUserService{
			SetActiveFunc: func(_ context.Context, _ string, active bool) error {
				gotActive = active
				return nil
			},
		}
		engine := newUserEngine(service)

		w := performRequest(engine, http.MethodPost, "/v1/user/status", "user-1", map[string]any{"activeAccount": true})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		if !gotActive {
			t.Error("active = false, want true")
		}
	})

	t.Run("missing flag is 400", func(t *testing.T) {
		engine := newUserEngine(&MockUserService{})
		w := performRequest(engine, http.MethodPost, "/v1/user/status", "user-1", map[string]any{})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("no identity is 401", func(t *testing.T) {
		engine := newUserEngine(&MockUserService{})
		w := performRequest(engine, http.MethodPost, "/v1/user/status", "", map[string]any{"activeAccount": true})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}
