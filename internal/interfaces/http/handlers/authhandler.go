package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faena-hq/faena/internal/application/auth/usecases"
	"github.com/faena-hq/faena/internal/shared/logger"
	"github.com/faena-hq/faena/internal/shared/utils"
)

type AuthHandler struct {
	loginUC      *usecases.LoginUseCase
	createUserUC *usecases.CreateUserUseCase
	bcryptCost   int
	logger       logger.Interface
}

func NewAuthHandler(
	loginUC *usecases.LoginUseCase,
	createUserUC *usecases.CreateUserUseCase,
	bcryptCost int,
) *AuthHandler {
	return &AuthHandler{
		loginUC:      loginUC,
		createUserUC: createUserUC,
		bcryptCost:   bcryptCost,
		logger:       logger.NewLogger(),
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=ADMIN PROJECT_MANAGER VIEWER"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateUserCommand{
		Email:      req.Email,
		Password:   req.Password,
		FullName:   req.FullName,
		Role:       req.Role,
		BcryptCost: h.bcryptCost,
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}
