package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/apperrors"
	portssvc "github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/ports/services"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/dto"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles registration and login.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{
		userService:  us,
		tokenService: ts,
	}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// register godoc
// @Summary Register new user
// @Description Creates a new user account. Name and email are stored lower-cased.
// @Tags user
// @Accept json
// @Produce json
// @Param register body dto.RegisterUserRequest true "User Registration Info"
// @Success 200 {object} dto.RegisterResponse
// @Failure 400 {object} dto.StatusResponse
// @Failure 403 {object} dto.StatusResponse "User already exist"
// @Failure 500 {object} dto.StatusResponse
// @Router /api/user/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for register", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.StatusResponse{Status: false, Message: err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusForbidden, dto.StatusResponse{Status: false, Message: "User already exist"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.StatusResponse{Status: false, Message: err.Error()})
		default:
			logger.Error("Failed to register user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.StatusResponse{Status: false, Message: "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.RegisterResponse{
		Status:  true,
		Message: "Successfully register!",
		Data:    dto.ToUserResponse(user),
	})
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token with a user summary.
// @Tags user
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.StatusResponse
// @Failure 401 {object} dto.StatusResponse
// @Failure 429 {object} map[string]string
// @Failure 500 {object} dto.StatusResponse
// @Router /api/user/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{Status: false, Message: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, dto.StatusResponse{Status: false, Message: "Invalid Credentails"})
			return
		}
		logger.Error("Failed to authenticate user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.StatusResponse{Status: false, Message: "Failed to login"})
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.StatusResponse{Status: false, Message: "Failed to generate token"})
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Status:  true,
		Message: "Sucessfully Login",
		Token:   token,
		User:    dto.ToLoginUser(user),
	})
}
