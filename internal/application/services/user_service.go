package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"learnit-service/internal/application/command"
	"learnit-service/internal/application/common"
	"learnit-service/internal/application/interfaces"
	"learnit-service/internal/application/mapper"
	"learnit-service/internal/application/query"
	"learnit-service/internal/domain/entities"
	"learnit-service/internal/domain/repositories"
)

const profileCacheTTL = 24 * time.Hour

type UserService struct {
	userRepo     repositories.UserRepository
	tokens       interfaces.TokenIssuer
	profileCache interfaces.ProfileCache
	log          logrus.FieldLogger
}

func NewUserService(
	userRepo repositories.UserRepository,
	tokens interfaces.TokenIssuer,
	profileCache interfaces.ProfileCache,
	log logrus.FieldLogger,
) interfaces.UserService {
	return &UserService{
		userRepo:     userRepo,
		tokens:       tokens,
		profileCache: profileCache,
		log:          log,
	}
}

func (s *UserService) CreateUser(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error) {
	if createCommand.Username == "" || createCommand.Password == "" {
		return nil, common.Validation(common.MsgMissingCredentials)
	}

	// Check if user already exists
	existingUser, err := s.userRepo.FindByUsername(ctx, createCommand.Username)
	if err != nil {
		return nil, common.Internal(err)
	}
	if existingUser != nil {
		return nil, common.Validation(common.MsgUsernameTaken)
	}

	newUser := entities.NewUser(createCommand.Username, createCommand.Password)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, common.Validation(common.MsgMissingCredentials)
	}
	if err := validatedUser.HashPassword(); err != nil {
		return nil, common.Internal(err)
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		// Lost a race against a concurrent registration
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			return nil, common.Validation(common.MsgUsernameTaken)
		}
		return nil, common.Internal(err)
	}

	token, err := s.tokens.GenerateToken(createdUser.Id)
	if err != nil {
		return nil, common.Internal(err)
	}

	s.log.WithField("user_id", createdUser.Id).Info("user registered")
	return &command.CreateUserCommandResult{AccessToken: token}, nil
}

func (s *UserService) LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if loginCommand.Username == "" || loginCommand.Password == "" {
		return nil, common.Validation(common.MsgMissingCredentials)
	}

	user, err := s.userRepo.FindByUsername(ctx, loginCommand.Username)
	if err != nil {
		return nil, common.Internal(err)
	}
	if user == nil {
		return nil, common.Validation(common.MsgBadLogin)
	}

	if err := user.CheckPassword(loginCommand.Password); err != nil {
		if errors.Is(err, entities.ErrPasswordMismatch) {
			return nil, common.Validation(common.MsgBadLogin)
		}
		return nil, common.Internal(err)
	}

	token, err := s.tokens.GenerateToken(user.Id)
	if err != nil {
		return nil, common.Internal(err)
	}

	return &command.LoginUserCommandResult{AccessToken: token}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*query.UserQueryResult, error) {
	// First, try the cache
	cachedUser, err := s.profileCache.GetProfile(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("profile cache read failed")
	}
	if cachedUser != nil {
		return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(cachedUser)}, nil
	}

	user, err := s.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, common.Internal(err)
	}
	if user == nil {
		return nil, common.NotFound(common.MsgUserNotFound)
	}

	if err := s.profileCache.SetProfile(ctx, user, profileCacheTTL); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("profile cache write failed")
	}

	return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(user)}, nil
}
