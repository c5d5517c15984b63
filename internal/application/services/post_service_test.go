package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"learnit-service/internal/application/command"
	"learnit-service/internal/application/common"
	"learnit-service/internal/domain/entities"
)

func newPostFixture() (*mockPostRepository, *mockPublisher, *PostService) {
	repo := &mockPostRepository{}
	pub := &mockPublisher{}
	return repo, pub, NewPostService(repo, pub, discardLogger()).(*PostService)
}

func eventOfType(eventType entities.PostEventType, postID string) interface{} {
	return mock.MatchedBy(func(e entities.PostEvent) bool {
		return e.Type == eventType && e.PostId == postID
	})
}

func TestListPosts(t *testing.T) {
	repo, _, svc := newPostFixture()
	repo.On("FindByOwner", mock.Anything, "u1").Return([]*entities.Post{
		{Id: "p1", Title: "a", UserId: "u1", Owner: &entities.Owner{Id: "u1", Username: "alice"}},
		{Id: "p2", Title: "b", UserId: "u1", Owner: &entities.Owner{Id: "u1", Username: "alice"}},
	}, nil)

	result, err := svc.ListPosts(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, result.Result, 2)
	assert.Equal(t, &common.OwnerResult{Id: "u1", Username: "alice"}, result.Result[0].User)
}

func TestListPosts_Empty(t *testing.T) {
	repo, _, svc := newPostFixture()
	repo.On("FindByOwner", mock.Anything, "u1").Return([]*entities.Post{}, nil)

	result, err := svc.ListPosts(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, result.Result)
	assert.Empty(t, result.Result)
}

func TestGetPost_Missing(t *testing.T) {
	repo, _, svc := newPostFixture()
	repo.On("FindById", mock.Anything, "p1").Return(nil, nil)

	_, err := svc.GetPost(context.Background(), "p1")
	assertAppError(t, err, common.KindNotOwned, common.MsgPostNotOwned)
}

func TestGetPost_AnyOwner(t *testing.T) {
	repo, _, svc := newPostFixture()
	repo.On("FindById", mock.Anything, "p1").Return(&entities.Post{
		Id: "p1", Title: "T", UserId: "u1", Owner: &entities.Owner{Id: "u1", Username: "alice"},
	}, nil)

	result, err := svc.GetPost(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "T", result.Result.Title)
	assert.Equal(t, &common.OwnerResult{Id: "u1", Username: "alice"}, result.Result.User)
}

func TestGetPost_RepositoryFailure(t *testing.T) {
	repo, _, svc := newPostFixture()
	repo.On("FindById", mock.Anything, "p1").Return(nil, errors.New("connection reset"))

	_, err := svc.GetPost(context.Background(), "p1")
	assertAppError(t, err, common.KindInternal, common.MsgInternal)
}

func TestCreatePost(t *testing.T) {
	t.Run("title required", func(t *testing.T) {
		repo, _, svc := newPostFixture()
		_, err := svc.CreatePost(context.Background(), &command.CreatePostCommand{UserId: "u1"})
		assertAppError(t, err, common.KindValidation, common.MsgTitleRequired)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("defaults applied and event published", func(t *testing.T) {
		repo, pub, svc := newPostFixture()
		repo.On("Create", mock.Anything, mock.MatchedBy(func(p *entities.ValidatedPost) bool {
			return p.Url == "https://example.com" && p.Status == entities.DefaultPostStatus && p.UserId == "u1"
		})).Return(&entities.Post{Id: "p1", Title: "T", Url: "https://example.com", Status: entities.DefaultPostStatus, UserId: "u1"}, nil)
		pub.On("PublishPostEvent", mock.Anything, eventOfType(entities.PostCreated, "p1")).Return(nil)

		result, err := svc.CreatePost(context.Background(), &command.CreatePostCommand{UserId: "u1", Title: "T", Url: "example.com"})
		require.NoError(t, err)
		assert.Equal(t, "p1", result.Result.Id)
		assert.Equal(t, "u1", result.Result.User)
		repo.AssertExpectations(t)
		pub.AssertExpectations(t)
	})

	t.Run("publish failure does not fail the write", func(t *testing.T) {
		repo, pub, svc := newPostFixture()
		repo.On("Create", mock.Anything, mock.Anything).Return(&entities.Post{Id: "p1", Title: "T", UserId: "u1"}, nil)
		pub.On("PublishPostEvent", mock.Anything, mock.Anything).Return(errors.New("nats down"))

		_, err := svc.CreatePost(context.Background(), &command.CreatePostCommand{UserId: "u1", Title: "T"})
		assert.NoError(t, err)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo, _, svc := newPostFixture()
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("disk full"))

		_, err := svc.CreatePost(context.Background(), &command.CreatePostCommand{UserId: "u1", Title: "T"})
		assertAppError(t, err, common.KindInternal, common.MsgInternal)
	})
}

func TestUpdatePost(t *testing.T) {
	t.Run("title required", func(t *testing.T) {
		_, _, svc := newPostFixture()
		_, err := svc.UpdatePost(context.Background(), &command.UpdatePostCommand{Id: "p1", UserId: "u1"})
		assertAppError(t, err, common.KindValidation, common.MsgTitleRequired)
	})

	t.Run("not owned", func(t *testing.T) {
		repo, pub, svc := newPostFixture()
		repo.On("UpdateOwned", mock.Anything, "p1", "u2", mock.Anything).Return(nil, nil)

		_, err := svc.UpdatePost(context.Background(), &command.UpdatePostCommand{Id: "p1", UserId: "u2", Title: "T"})
		assertAppError(t, err, common.KindNotOwned, common.MsgPostNotOwned)
		pub.AssertNotCalled(t, "PublishPostEvent", mock.Anything, mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		repo, pub, svc := newPostFixture()
		url := "go.dev"
		repo.On("UpdateOwned", mock.Anything, "p1", "u1", mock.MatchedBy(func(c *entities.PostChanges) bool {
			return c.Url != nil && *c.Url == "https://go.dev" && c.Status == entities.DefaultPostStatus
		})).Return(&entities.Post{Id: "p1", Title: "T2", Url: "https://go.dev", UserId: "u1"}, nil)
		pub.On("PublishPostEvent", mock.Anything, eventOfType(entities.PostUpdated, "p1")).Return(nil)

		result, err := svc.UpdatePost(context.Background(), &command.UpdatePostCommand{Id: "p1", UserId: "u1", Title: "T2", Url: &url})
		require.NoError(t, err)
		assert.Equal(t, "T2", result.Result.Title)
		pub.AssertExpectations(t)
	})
}

func TestDeletePost(t *testing.T) {
	t.Run("not owned", func(t *testing.T) {
		repo, pub, svc := newPostFixture()
		repo.On("DeleteOwned", mock.Anything, "p1", "u2").Return(false, nil)

		_, err := svc.DeletePost(context.Background(), &command.DeletePostCommand{Id: "p1", UserId: "u2"})
		assertAppError(t, err, common.KindNotOwned, common.MsgPostNotOwned)
		pub.AssertNotCalled(t, "PublishPostEvent", mock.Anything, mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		repo, pub, svc := newPostFixture()
		repo.On("DeleteOwned", mock.Anything, "p1", "u1").Return(true, nil)
		pub.On("PublishPostEvent", mock.Anything, eventOfType(entities.PostDeleted, "p1")).Return(nil)

		result, err := svc.DeletePost(context.Background(), &command.DeletePostCommand{Id: "p1", UserId: "u1"})
		require.NoError(t, err)
		assert.Equal(t, "p1", result.PostId)
		pub.AssertExpectations(t)
	})
}
