package services

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"learnit-service/internal/domain/entities"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	args := m.Called(ctx, user)
	created, _ := args.Get(0).(*entities.User)
	return created, args.Error(1)
}

func (m *mockUserRepository) FindById(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Create(ctx context.Context, post *entities.ValidatedPost) (*entities.Post, error) {
	args := m.Called(ctx, post)
	created, _ := args.Get(0).(*entities.Post)
	return created, args.Error(1)
}

func (m *mockPostRepository) FindByOwner(ctx context.Context, userID string) ([]*entities.Post, error) {
	args := m.Called(ctx, userID)
	posts, _ := args.Get(0).([]*entities.Post)
	return posts, args.Error(1)
}

func (m *mockPostRepository) FindById(ctx context.Context, id string) (*entities.Post, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*entities.Post)
	return post, args.Error(1)
}

func (m *mockPostRepository) UpdateOwned(ctx context.Context, id, userID string, changes *entities.PostChanges) (*entities.Post, error) {
	args := m.Called(ctx, id, userID, changes)
	post, _ := args.Get(0).(*entities.Post)
	return post, args.Error(1)
}

func (m *mockPostRepository) DeleteOwned(ctx context.Context, id, userID string) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) GenerateToken(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

type mockProfileCache struct {
	mock.Mock
}

func (m *mockProfileCache) GetProfile(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (m *mockProfileCache) SetProfile(ctx context.Context, user *entities.User, ttl time.Duration) error {
	return m.Called(ctx, user, ttl).Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishPostEvent(ctx context.Context, event entities.PostEvent) error {
	return m.Called(ctx, event).Error(0)
}

func discardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
