package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"learnit-service/internal/domain/entities"
)

type userDocument struct {
	Id        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Password  string             `bson:"password,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty"`
}

type postDocument struct {
	Id          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Url         string             `bson:"url"`
	Status      string             `bson:"status"`
	User        primitive.ObjectID `bson:"user"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`

	// Owner is filled by the $lookup stage and never written.
	Owner []userDocument `bson:"owner,omitempty"`
}

// objectID parses a hex id. ok is false for anything that cannot be an
// ObjectID, which callers treat as "no such record".
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

func (d *userDocument) toEntity() *entities.User {
	return &entities.User{
		Id:        d.Id.Hex(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		Username:  d.Username,
		Password:  d.Password,
	}
}

func (d *postDocument) toEntity() *entities.Post {
	post := &entities.Post{
		Id:          d.Id.Hex(),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		Title:       d.Title,
		Description: d.Description,
		Url:         d.Url,
		Status:      d.Status,
		UserId:      d.User.Hex(),
	}
	if len(d.Owner) > 0 {
		post.Owner = &entities.Owner{Id: d.Owner[0].Id.Hex(), Username: d.Owner[0].Username}
	}
	return post
}
