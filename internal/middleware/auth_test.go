package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navigator_backend/internal/auth"
	"navigator_backend/internal/models"
	"navigator_backend/internal/repositories"
)

type stubUserRepo struct {
	users map[uint]*models.User
}

func (r *stubUserRepo) FindByID(id uint) (*models.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
func (r *stubUserRepo) Create(*models.User) error                  { return nil }
func (r *stubUserRepo) Update(*models.User) error                  { return nil }
func (r *stubUserRepo) UpdateLastLogin(uint, time.Time) error      { return nil }
func (r *stubUserRepo) UpdateRole(uint, models.UserRole) error     { return nil }
func (r *stubUserRepo) FindByOrganization(uint) ([]models.User, error) {
	return nil, nil
}

func orgPtr(v uint) *uint { return &v }

func newAuthTestRouter(t *testing.T, users map[uint]*models.User) (*gin.Engine, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenService("test-secret", time.Hour)
	mw := NewAuthMiddleware(tokens, &stubUserRepo{users: users})

	r := gin.New()
	authed := r.Group("/", mw.RequireAuth())
	authed.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": GetUserID(c)})
	})
	authed.GET("/admin", mw.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	authed.GET("/org/:userId", mw.RequireSameOrganization("userId"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, tokens
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingToken(t *testing.T) {
	r, _ := newAuthTestRouter(t, nil)

	w := doGet(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Authorization token required"}`, w.Body.String())

	// A malformed scheme counts as missing, not invalid.
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	r, _ := newAuthTestRouter(t, nil)

	w := doGet(r, "/me", "not-a-real-token")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Invalid or expired token"}`, w.Body.String())
}

func TestRequireAuthValidToken(t *testing.T) {
	r, tokens := newAuthTestRouter(t, nil)

	token, err := tokens.Issue(42, "user@example.com", "user")
	require.NoError(t, err)

	w := doGet(r, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":42}`, w.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	r, tokens := newAuthTestRouter(t, nil)

	userToken, err := tokens.Issue(1, "user@example.com", "user")
	require.NoError(t, err)
	adminToken, err := tokens.Issue(2, "admin@example.com", "admin")
	require.NoError(t, err)

	w := doGet(r, "/admin", userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doGet(r, "/admin", adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireSameOrganization(t *testing.T) {
	users := map[uint]*models.User{
		1: {BaseModel: models.BaseModel{ID: 1}, OrganizationID: orgPtr(10)},
		2: {BaseModel: models.BaseModel{ID: 2}, OrganizationID: orgPtr(10)},
		3: {BaseModel: models.BaseModel{ID: 3}, OrganizationID: orgPtr(20)},
		4: {BaseModel: models.BaseModel{ID: 4}},
	}
	r, tokens := newAuthTestRouter(t, users)

	token, err := tokens.Issue(1, "a@example.com", "user")
	require.NoError(t, err)

	// Same organization passes.
	w := doGet(r, "/org/2", token)
	assert.Equal(t, http.StatusOK, w.Code)

	// Different organization is rejected.
	w = doGet(r, "/org/3", token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// A caller without an organization is rejected outright.
	lonerToken, err := tokens.Issue(4, "d@example.com", "user")
	require.NoError(t, err)
	w = doGet(r, "/org/1", lonerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
