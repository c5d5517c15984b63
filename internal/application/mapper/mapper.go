package mapper

import (
	"learnit-service/internal/application/common"
	"learnit-service/internal/domain/entities"
)

// NewUserResultFromEntity never copies the password.
func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:        user.Id,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func NewPostResultFromEntity(post *entities.Post) *common.PostResult {
	result := &common.PostResult{
		Id:          post.Id,
		Title:       post.Title,
		Description: post.Description,
		Url:         post.Url,
		Status:      post.Status,
		User:        post.UserId,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
	if post.Owner != nil {
		result.User = &common.OwnerResult{
			Id:       post.Owner.Id,
			Username: post.Owner.Username,
		}
	}
	return result
}

func NewPostResultsFromEntities(posts []*entities.Post) []*common.PostResult {
	results := make([]*common.PostResult, 0, len(posts))
	for _, post := range posts {
		results = append(results, NewPostResultFromEntity(post))
	}
	return results
}
