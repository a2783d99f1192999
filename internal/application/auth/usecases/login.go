package usecases

import (
	"context"
	"strings"

	"github.com/faena-hq/faena/internal/domain/user"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

// TokenService issues and validates access tokens.
type TokenService interface {
	GenerateToken(userID uint, email string, role string) (string, int64, error)
	ValidateToken(token string) (*TokenClaims, error)
}

// TokenClaims is the validated identity carried by an access token.
type TokenClaims struct {
	UserID uint
	Email  string
	Role   string
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	UserID      uint   `json:"user_id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
}

type LoginUseCase struct {
	userRepo     user.Repository
	tokenService TokenService
	logger       logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, tokenService TokenService, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, tokenService: tokenService, logger: logger}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	account, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil || account == nil {
		// same response as a bad password, so the endpoint does not leak
		// which emails exist
		uc.logger.Warnw("login failed: unknown email", "email", email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if !account.IsActive() {
		uc.logger.Warnw("login refused: inactive user", "user_id", account.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if !account.VerifyPassword(cmd.Password) {
		uc.logger.Warnw("login failed: bad password", "user_id", account.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresIn, err := uc.tokenService.GenerateToken(account.ID(), account.Email(), string(account.Role()))
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err, "user_id", account.ID())
		return nil, errors.NewInternalError("failed to generate token")
	}

	uc.logger.Infow("user logged in", "user_id", account.ID(), "role", account.Role())
	return &LoginResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		UserID:      account.ID(),
		Email:       account.Email(),
		FullName:    account.FullName(),
		Role:        string(account.Role()),
	}, nil
}
