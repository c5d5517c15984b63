package interfaces

import (
	"context"

	"learnit-service/internal/application/command"
	"learnit-service/internal/application/query"
)

// PostService errors are *common.Error values. Listing and every mutation
// are scoped to the owner passed in by the caller; GetPost is not.
type PostService interface {
	ListPosts(ctx context.Context, userID string) (*query.PostQueryListResult, error)
	GetPost(ctx context.Context, id string) (*query.PostQueryResult, error)
	CreatePost(ctx context.Context, createCommand *command.CreatePostCommand) (*command.CreatePostCommandResult, error)
	UpdatePost(ctx context.Context, updateCommand *command.UpdatePostCommand) (*command.UpdatePostCommandResult, error)
	DeletePost(ctx context.Context, deleteCommand *command.DeletePostCommand) (*command.DeletePostCommandResult, error)
}
