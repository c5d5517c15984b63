package repositories

import (
	"context"

	"learnit-service/internal/domain/entities"
)

// PostRepository scopes every mutation by owner. A post owned by someone
// else is reported exactly like a missing one: (nil, nil) for updates,
// false for deletes. Finders return (nil, nil) when nothing matches.
type PostRepository interface {
	Create(ctx context.Context, post *entities.ValidatedPost) (*entities.Post, error)
	// FindByOwner returns the owner's posts with Owner expanded.
	FindByOwner(ctx context.Context, userID string) ([]*entities.Post, error)
	// FindById returns the post with Owner expanded, whoever owns it.
	FindById(ctx context.Context, id string) (*entities.Post, error)
	// UpdateOwned atomically applies changes where {id, user_id} match and
	// returns the new state.
	UpdateOwned(ctx context.Context, id, userID string, changes *entities.PostChanges) (*entities.Post, error)
	// DeleteOwned atomically removes the post where {id, user_id} match.
	DeleteOwned(ctx context.Context, id, userID string) (bool, error)
}
