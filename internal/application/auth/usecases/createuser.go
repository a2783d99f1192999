package usecases

import (
	"context"
	"fmt"

	"github.com/faena-hq/faena/internal/domain/user"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type CreateUserCommand struct {
	Email      string
	Password   string
	FullName   string
	Role       string
	BcryptCost int
}

type CreateUserResult struct {
	UserID uint
	Email  string
	Role   string
}

type CreateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	if existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email); err == nil && existing != nil {
		return nil, errors.NewConflictError("a user with this email already exists")
	}

	account, err := user.NewUser(cmd.Email, cmd.Password, cmd.FullName, user.Role(cmd.Role), cmd.BcryptCost)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, account); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a user with this email already exists")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user created", "user_id", account.ID(), "role", account.Role())
	return &CreateUserResult{
		UserID: account.ID(),
		Email:  account.Email(),
		Role:   string(account.Role()),
	}, nil
}
