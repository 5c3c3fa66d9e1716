package admin

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	service "cinemax/src/modules/admin/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockGate struct {
	mock.Mock
}

func (m *MockGate) Login(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *MockGate) Check(ctx context.Context, token string) bool {
	args := m.Called(ctx, token)
	return args.Bool(0)
}

func (m *MockGate) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func setupAdminRouter(gate AdminGate) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ac := NewAdminController(gate)
	router.POST("/admin/login", ac.Login)
	router.POST("/admin/logout", ac.Logout)
	router.GET("/admin/session", ac.Session)
	router.DELETE("/protected", RequireAdmin(gate), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestLoginReturnsToken(t *testing.T) {
	gate := new(MockGate)
	gate.On("Login", mock.Anything, "s3cret").Return("tok123", nil)
	router := setupAdminRouter(gate)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/login", bytes.NewBufferString(`{"password":"s3cret"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tok123")
	gate.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	gate := new(MockGate)
	gate.On("Login", mock.Anything, "wrong").Return("", service.ErrInvalidPassword)
	router := setupAdminRouter(gate)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/login", bytes.NewBufferString(`{"password":"wrong"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRateLimited(t *testing.T) {
	gate := new(MockGate)
	gate.On("Login", mock.Anything, "s3cret").Return("", service.ErrRateLimited)
	router := setupAdminRouter(gate)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/login", bytes.NewBufferString(`{"password":"s3cret"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestLoginMissingPassword(t *testing.T) {
	gate := new(MockGate)
	router := setupAdminRouter(gate)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/login", bytes.NewBufferString(`{}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	gate.AssertNotCalled(t, "Login")
}

func TestRequireAdminRefusesWithoutToken(t *testing.T) {
	gate := new(MockGate)
	gate.On("Check", mock.Anything, "").Return(false)
	router := setupAdminRouter(gate)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminPassesWithLiveToken(t *testing.T) {
	gate := new(MockGate)
	gate.On("Check", mock.Anything, "tok123").Return(true)
	router := setupAdminRouter(gate)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/protected", nil)
	req.Header.Set("Authorization", "Bearer tok123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionStatus(t *testing.T) {
	gate := new(MockGate)
	gate.On("Check", mock.Anything, "tok123").Return(true)
	router := setupAdminRouter(gate)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/session", nil)
	req.Header.Set("Authorization", "Bearer tok123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
}

func TestLogout(t *testing.T) {
	gate := new(MockGate)
	gate.On("Logout", mock.Anything, "tok123").Return(nil)
	router := setupAdminRouter(gate)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/logout", nil)
	req.Header.Set("Authorization", "Bearer tok123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
	gate.AssertExpectations(t)
}
