package interfaces

import (
	"context"
	"time"

	"learnit-service/internal/domain/entities"
)

// TokenIssuer signs access tokens embedding the subject identifier.
type TokenIssuer interface {
	GenerateToken(userID string) (string, error)
}

// ProfileCache returns (nil, nil) on a miss.
type ProfileCache interface {
	GetProfile(ctx context.Context, userID string) (*entities.User, error)
	SetProfile(ctx context.Context, user *entities.User, ttl time.Duration) error
}

type PostEventPublisher interface {
	PublishPostEvent(ctx context.Context, event entities.PostEvent) error
}
