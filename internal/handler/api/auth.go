package api

import (
	"errors"
	"net/http"

	reqdto "mealvoucher/internal/handler/dto/request"
	resdto "mealvoucher/internal/handler/dto/response"
	"mealvoucher/internal/handler/httperr"
	"mealvoucher/internal/pkg/errs"
	"mealvoucher/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
}

func NewAuthHandler(authCommands commands.AuthCommands) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
	}
}

// @Summary Terminal login
// @Description Authenticate a cafeteria terminal and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.TerminalLoginRequest true "Terminal credentials"
// @Success 200 {object} resdto.TerminalLoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.TerminalLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Name, req.Secret)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid terminal credentials", nil)
		case errors.Is(err, errs.ErrTerminalInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Terminal is deactivated", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}
