package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"learnit-service/internal/domain/entities"
	"learnit-service/internal/domain/repositories"
)

var errNoMatch = errors.New("no post matched")

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) repositories.PostRepository {
	return &PostRepository{db: db}
}

// withOwner expands the owner reference to its id and username.
func withOwner(tx *gorm.DB) *gorm.DB {
	return tx.Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "username")
	})
}

func (r *PostRepository) Create(ctx context.Context, post *entities.ValidatedPost) (*entities.Post, error) {
	postEntity := post.GetPost()

	postModel := PostModel{
		Id:          uuid.NewString(),
		CreatedAt:   postEntity.CreatedAt,
		UpdatedAt:   postEntity.UpdatedAt,
		Title:       postEntity.Title,
		Description: postEntity.Description,
		Url:         postEntity.Url,
		Status:      postEntity.Status,
		UserId:      postEntity.UserId,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&postModel).Error; err != nil {
		return nil, err
	}

	return r.mapToEntity(&postModel), nil
}

func (r *PostRepository) FindByOwner(ctx context.Context, userID string) ([]*entities.Post, error) {
	var postModels []PostModel
	err := withOwner(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entities.Post, 0, len(postModels))
	for i := range postModels {
		posts = append(posts, r.mapToEntity(&postModels[i]))
	}
	return posts, nil
}

func (r *PostRepository) FindById(ctx context.Context, id string) (*entities.Post, error) {
	var postModel PostModel
	err := withOwner(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&postModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&postModel), nil
}

func (r *PostRepository) UpdateOwned(ctx context.Context, id, userID string, changes *entities.PostChanges) (*entities.Post, error) {
	updates := map[string]interface{}{
		"title":       changes.Title,
		"description": changes.Description,
		"status":      changes.Status,
		"updated_at":  time.Now(),
	}
	if changes.Url != nil {
		updates["url"] = *changes.Url
	}

	var postModel PostModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&PostModel{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errNoMatch
		}

		// Read back the updated post inside the same transaction
		return withOwner(tx).Where("id = ?", id).First(&postModel).Error
	})
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&postModel), nil
}

func (r *PostRepository) DeleteOwned(ctx context.Context, id, userID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&PostModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PostRepository) mapToEntity(postModel *PostModel) *entities.Post {
	post := &entities.Post{
		Id:          postModel.Id,
		CreatedAt:   postModel.CreatedAt,
		UpdatedAt:   postModel.UpdatedAt,
		Title:       postModel.Title,
		Description: postModel.Description,
		Url:         postModel.Url,
		Status:      postModel.Status,
		UserId:      postModel.UserId,
	}
	if postModel.User != nil {
		post.Owner = &entities.Owner{Id: postModel.User.Id, Username: postModel.User.Username}
	}
	return post
}
