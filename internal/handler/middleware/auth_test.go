//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkspot/internal/domain/user"
	"parkspot/internal/handler/middleware"
	"parkspot/internal/pkg/jwt"
	"parkspot/internal/usecase"
	"parkspot/tests/common/httptest"
)

func newAuthRouter(t *testing.T, svc *jwt.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/whoami", mw.RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		require.True(t, ok)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "role": role})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("middleware-secret", time.Hour)
	router := newAuthRouter(t, svc)

	valid, _, err := svc.GenerateToken(5, user.RoleUser)
	require.NoError(t, err)

	t.Run("有効なBearerトークン", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, "GET", "/whoami", nil, valid)

		var body struct {
			UserID int64  `json:"user_id"`
			Role   string `json:"role"`
		}
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, int64(5), body.UserID)
		assert.Equal(t, "user", body.Role)
	})

	t.Run("ヘッダーなし", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, "GET", "/whoami", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Token required")
	})

	headerCases := []struct {
		name   string
		header string
		msg    string
	}{
		{name: "Bearerなし", header: valid, msg: "Token required"},
		{name: "Basic認証", header: "Basic dXNlcjpwYXNz", msg: "Token required"},
		{name: "トークン空", header: "Bearer ", msg: "Token required"},
		{name: "base64のuserId:timestamp", header: "Bearer MTo2MDAwMDAwMDA=", msg: "Invalid token"},
		{name: "小文字bearer", header: "bearer " + valid, msg: ""},
	}
	for _, tc := range headerCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.PerformRequestWithHeaders(t, router, "GET", "/whoami", nil,
				map[string]string{"Authorization": tc.header})
			if tc.msg == "" {
				assert.Equal(t, http.StatusOK, rec.Code)
				return
			}
			httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, tc.msg)
		})
	}

	t.Run("別の鍵で署名されたトークン", func(t *testing.T) {
		other, _, err := jwt.NewService("another-secret", time.Hour).GenerateToken(5, user.RoleUser)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, "GET", "/whoami", nil, other)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid token")
	})
}
