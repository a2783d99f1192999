package user

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	authusecases "github.com/faena-hq/faena/internal/application/auth/usecases"
	"github.com/faena-hq/faena/internal/infrastructure/config"
	"github.com/faena-hq/faena/internal/infrastructure/database"
	"github.com/faena-hq/faena/internal/infrastructure/repository"
	"github.com/faena-hq/faena/internal/shared/logger"
)

var (
	env      string
	email    string
	password string
	fullName string
	role     string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an application user",
		Long:  `Create an application user with the given role. Intended for bootstrapping the first administrator.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&email, "email", "", "User email (required)")
	cmd.Flags().StringVar(&password, "password", "", "User password (required)")
	cmd.Flags().StringVar(&fullName, "full-name", "", "User full name (required)")
	cmd.Flags().StringVar(&role, "role", "VIEWER", "User role (ADMIN, PROJECT_MANAGER, VIEWER)")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("full-name")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log := logger.NewLogger()
	createUserUC := authusecases.NewCreateUserUseCase(repository.NewUserRepository(database.Get(), log), log)

	result, err := createUserUC.Execute(context.Background(), authusecases.CreateUserCommand{
		Email:      email,
		Password:   password,
		FullName:   fullName,
		Role:       role,
		BcryptCost: cfg.Auth.Password.BcryptCost,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	log.Infow("user created", "user_id", result.UserID, "email", result.Email, "role", result.Role)
	return nil
}
