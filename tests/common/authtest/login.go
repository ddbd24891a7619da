//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"parkspot/internal/handler/dto/request"
	"parkspot/internal/handler/dto/response"
	"parkspot/tests/common/dbtest"
	"parkspot/tests/common/httptest"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp response.LoginResponse
	httptest.DecodeResponseBody(t, w.Body, &resp)
	require.NotEmpty(t, resp.Token, "token missing from login response")

	return resp.Token
}

// CreateAndLogin returns the new user's id and a bearer token obtained through /login.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) (int64, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, email, role)
	return id, LoginUser(t, router, email, dbtest.DefaultPassword)
}
