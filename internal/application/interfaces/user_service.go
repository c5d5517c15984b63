package interfaces

import (
	"context"

	"learnit-service/internal/application/command"
	"learnit-service/internal/application/query"
)

// UserService errors are *common.Error values.
type UserService interface {
	CreateUser(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error)
	LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	GetProfile(ctx context.Context, userID string) (*query.UserQueryResult, error)
}
