package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/8180e/personal-finance-dashboard/internal/cqrs"
	"github.com/8180e/personal-finance-dashboard/internal/middleware"
	"github.com/8180e/personal-finance-dashboard/internal/models"
)

// UserServicer defines the user operations used by AuthHandler.
type UserServicer interface {
	Register(cqrs.RegisterUserCommand) (models.PublicUser, error)
	Authenticate(cqrs.AuthenticateCommand) (models.PublicUser, error)
}

// TokenIssuer signs identity tokens for authenticated users.
type TokenIssuer interface {
	Issue(models.PublicUser) (string, error)
}

// AuthHandler handles signup and signin.
type AuthHandler struct {
	users  UserServicer
	tokens TokenIssuer
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

func NewAuthHandler(users UserServicer, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	user, err := h.users.Register(cqrs.RegisterUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		middleware.RespondWithDomainError(c, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token})
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	user, err := h.users.Authenticate(cqrs.AuthenticateCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		middleware.RespondWithDomainError(c, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token})
}
