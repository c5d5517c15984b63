package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"learnit-service/internal/application/command"
	"learnit-service/internal/application/common"
	"learnit-service/internal/application/interfaces"
	"learnit-service/internal/application/mapper"
	"learnit-service/internal/application/query"
	"learnit-service/internal/domain/entities"
	"learnit-service/internal/domain/repositories"
)

type PostService struct {
	postRepo repositories.PostRepository
	events   interfaces.PostEventPublisher
	log      logrus.FieldLogger
}

func NewPostService(
	postRepo repositories.PostRepository,
	events interfaces.PostEventPublisher,
	log logrus.FieldLogger,
) interfaces.PostService {
	return &PostService{
		postRepo: postRepo,
		events:   events,
		log:      log,
	}
}

func (s *PostService) ListPosts(ctx context.Context, userID string) (*query.PostQueryListResult, error) {
	posts, err := s.postRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, common.Internal(err)
	}
	return &query.PostQueryListResult{Result: mapper.NewPostResultsFromEntities(posts)}, nil
}

func (s *PostService) GetPost(ctx context.Context, id string) (*query.PostQueryResult, error) {
	post, err := s.postRepo.FindById(ctx, id)
	if err != nil {
		return nil, common.Internal(err)
	}
	if post == nil {
		return nil, common.NotOwned()
	}
	return &query.PostQueryResult{Result: mapper.NewPostResultFromEntity(post)}, nil
}

func (s *PostService) CreatePost(ctx context.Context, createCommand *command.CreatePostCommand) (*command.CreatePostCommandResult, error) {
	if createCommand.Title == "" {
		return nil, common.Validation(common.MsgTitleRequired)
	}

	newPost := entities.NewPost(
		createCommand.UserId,
		createCommand.Title,
		createCommand.Description,
		createCommand.Url,
		createCommand.Status,
	)
	validatedPost, err := entities.NewValidatedPost(newPost)
	if err != nil {
		if errors.Is(err, entities.ErrMissingTitle) {
			return nil, common.Validation(common.MsgTitleRequired)
		}
		return nil, common.Internal(err)
	}

	createdPost, err := s.postRepo.Create(ctx, validatedPost)
	if err != nil {
		return nil, common.Internal(err)
	}

	s.publish(ctx, entities.NewPostEvent(entities.PostCreated, createdPost))
	return &command.CreatePostCommandResult{Result: mapper.NewPostResultFromEntity(createdPost)}, nil
}

func (s *PostService) UpdatePost(ctx context.Context, updateCommand *command.UpdatePostCommand) (*command.UpdatePostCommandResult, error) {
	changes, err := entities.NewPostChanges(
		updateCommand.Title,
		updateCommand.Description,
		updateCommand.Url,
		updateCommand.Status,
	)
	if err != nil {
		return nil, common.Validation(common.MsgTitleRequired)
	}

	updatedPost, err := s.postRepo.UpdateOwned(ctx, updateCommand.Id, updateCommand.UserId, changes)
	if err != nil {
		return nil, common.Internal(err)
	}
	if updatedPost == nil {
		return nil, common.NotOwned()
	}

	s.publish(ctx, entities.NewPostEvent(entities.PostUpdated, updatedPost))
	return &command.UpdatePostCommandResult{Result: mapper.NewPostResultFromEntity(updatedPost)}, nil
}

func (s *PostService) DeletePost(ctx context.Context, deleteCommand *command.DeletePostCommand) (*command.DeletePostCommandResult, error) {
	deleted, err := s.postRepo.DeleteOwned(ctx, deleteCommand.Id, deleteCommand.UserId)
	if err != nil {
		return nil, common.Internal(err)
	}
	if !deleted {
		return nil, common.NotOwned()
	}

	s.publish(ctx, entities.NewPostEvent(entities.PostDeleted, &entities.Post{
		Id:     deleteCommand.Id,
		UserId: deleteCommand.UserId,
	}))
	return &command.DeletePostCommandResult{PostId: deleteCommand.Id}, nil
}

// publish is best effort; the mutation is already committed.
func (s *PostService) publish(ctx context.Context, event entities.PostEvent) {
	if err := s.events.PublishPostEvent(ctx, event); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"event":   event.Type,
			"post_id": event.PostId,
		}).Warn("failed to publish post event")
	}
}
