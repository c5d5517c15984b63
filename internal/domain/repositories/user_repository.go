package repositories

import (
	"context"
	"errors"

	"learnit-service/internal/domain/entities"
)

// ErrDuplicateUsername is returned by Create when the unique index on
// username rejects the insert.
var ErrDuplicateUsername = errors.New("username already exists")

// UserRepository finders return (nil, nil) when no record matches.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindById(ctx context.Context, id string) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}
