//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"mine-dine/internal/domain/user"
	"mine-dine/internal/handler/middleware"
	"mine-dine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubTokenValidator struct {
	userID uuid.UUID
	role   user.Role
	err    error
}

func (s *stubTokenValidator) ValidateToken(string) (uuid.UUID, user.Role, error) {
	if s.err != nil {
		return uuid.Nil, "", s.err
	}
	return s.userID, s.role, nil
}

func newAuthRouter(validator *stubTokenValidator, minRole user.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	auth := middleware.NewAuthMiddleware(validator)

	group := router.Group("/protected", auth.RequireAuth())
	group.GET("", func(c *gin.Context) { c.Status(http.StatusOK) })
	group.GET("/elevated", auth.RequireRoleAtLeast(minRole), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	t.Run("valid bearer token passes", func(t *testing.T) {
		router := newAuthRouter(&stubTokenValidator{userID: uuid.New(), role: user.RoleGuest}, user.RoleStaff)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "token")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		router := newAuthRouter(&stubTokenValidator{}, user.RoleStaff)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		router := newAuthRouter(&stubTokenValidator{err: errors.New("expired")}, user.RoleStaff)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	cases := []struct {
		name       string
		role       user.Role
		minRole    user.Role
		expectCode int
	}{
		{"guest cannot reach staff surface", user.RoleGuest, user.RoleStaff, http.StatusForbidden},
		{"host cannot reach staff surface", user.RoleHost, user.RoleStaff, http.StatusForbidden},
		{"staff reaches staff surface", user.RoleStaff, user.RoleStaff, http.StatusOK},
		{"moderator outranks host", user.RoleModerator, user.RoleHost, http.StatusOK},
		{"host reaches host surface", user.RoleHost, user.RoleHost, http.StatusOK},
		{"guest cannot reach host surface", user.RoleGuest, user.RoleHost, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newAuthRouter(&stubTokenValidator{userID: uuid.New(), role: tc.role}, tc.minRole)
			rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected/elevated", nil, "token")
			assert.Equal(t, tc.expectCode, rec.Code)
		})
	}
}
