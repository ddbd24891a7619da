package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "parkspot/internal/handler/dto/request"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/handler/httperr"
	"parkspot/internal/handler/middleware"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"
)

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.UserQueries
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q}
}

// @Summary Register
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	userID, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		case errs.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, errs.Cause(err).Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Registration failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisterResponse{
		Message: "User registered successfully",
		UserID:  userID,
	})
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errs.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := resdto.FromLoginResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Token required", nil)
		return
	}

	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errs.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := resdto.FromAuthorizedUser(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
