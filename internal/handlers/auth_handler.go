package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/odutech/internal/config"
	userdomain "github.com/BruksfildServices01/odutech/internal/domain/user"
	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/middleware"
	"github.com/BruksfildServices01/odutech/internal/models"
	ucUser "github.com/BruksfildServices01/odutech/internal/usecase/user"
	"github.com/BruksfildServices01/odutech/internal/validators"
)

type AuthHandler struct {
	accounts *ucUser.Accounts
	config   *config.Config

	// trocável nos testes para não depender de DNS
	emailDomainOK func(email string) bool
}

func NewAuthHandler(accounts *ucUser.Accounts, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		accounts:      accounts,
		config:        cfg,
		emailDomainOK: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=80"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !h.emailDomainOK(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), userdomain.Credentials{
		Username: req.Username,
		Email:    email,
		Password: req.Password,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_user")
		return
	}

	h.respondWithToken(c, http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	user, err := h.accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ucUser.ErrInvalidCredentials) {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
			return
		}
		httperr.FromError(c, err, "login_failed")
		return
	}

	h.respondWithToken(c, http.StatusOK, user)
}

// --------- JWT ---------

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user *models.User) {
	token, err := middleware.IssueToken(h.config, user.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar o token.")
		return
	}

	c.JSON(status, authResponse{User: user, Token: token})
}
