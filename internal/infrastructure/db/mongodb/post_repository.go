package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"learnit-service/internal/domain/entities"
	"learnit-service/internal/domain/repositories"
)

type PostRepository struct {
	posts *mongo.Collection
	users *mongo.Collection
}

func NewPostRepository(db *mongo.Database) repositories.PostRepository {
	return &PostRepository{
		posts: db.Collection(postsCollection),
		users: db.Collection(usersCollection),
	}
}

// ownedFilter is the compound condition every update and delete goes through.
func ownedFilter(id, userID string) (bson.M, bool) {
	oid, ok := objectID(id)
	if !ok {
		return nil, false
	}
	uid, ok := objectID(userID)
	if !ok {
		return nil, false
	}
	return bson.M{"_id": oid, "user": uid}, true
}

// expandOwner matches posts and joins the owner, keeping only its username.
func expandOwner(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: usersCollection},
			{Key: "localField", Value: "user"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "owner.password", Value: 0},
			{Key: "owner.createdAt", Value: 0},
			{Key: "owner.updatedAt", Value: 0},
		}}},
	}
}

func (r *PostRepository) Create(ctx context.Context, post *entities.ValidatedPost) (*entities.Post, error) {
	postEntity := post.GetPost()

	uid, ok := objectID(postEntity.UserId)
	if !ok {
		return nil, errors.New("owner id is not an object id")
	}

	doc := postDocument{
		Id:          primitive.NewObjectID(),
		Title:       postEntity.Title,
		Description: postEntity.Description,
		Url:         postEntity.Url,
		Status:      postEntity.Status,
		User:        uid,
		CreatedAt:   postEntity.CreatedAt,
		UpdatedAt:   postEntity.UpdatedAt,
	}

	if _, err := r.posts.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *PostRepository) FindByOwner(ctx context.Context, userID string) ([]*entities.Post, error) {
	uid, ok := objectID(userID)
	if !ok {
		return []*entities.Post{}, nil
	}

	docs, err := r.aggregate(ctx, bson.M{"user": uid})
	if err != nil {
		return nil, err
	}

	posts := make([]*entities.Post, 0, len(docs))
	for i := range docs {
		posts = append(posts, docs[i].toEntity())
	}
	return posts, nil
}

func (r *PostRepository) FindById(ctx context.Context, id string) (*entities.Post, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}

	docs, err := r.aggregate(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0].toEntity(), nil
}

func (r *PostRepository) UpdateOwned(ctx context.Context, id, userID string, changes *entities.PostChanges) (*entities.Post, error) {
	filter, ok := ownedFilter(id, userID)
	if !ok {
		return nil, nil
	}

	set := bson.M{
		"title":       changes.Title,
		"description": changes.Description,
		"status":      changes.Status,
		"updatedAt":   time.Now(),
	}
	if changes.Url != nil {
		set["url"] = *changes.Url
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc postDocument
	err := r.posts.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	var owner userDocument
	projection := options.FindOne().SetProjection(bson.M{"username": 1})
	err = r.users.FindOne(ctx, bson.M{"_id": doc.User}, projection).Decode(&owner)
	switch {
	case err == nil:
		doc.Owner = []userDocument{owner}
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, err
	}

	return doc.toEntity(), nil
}

func (r *PostRepository) DeleteOwned(ctx context.Context, id, userID string) (bool, error) {
	filter, ok := ownedFilter(id, userID)
	if !ok {
		return false, nil
	}

	err := r.posts.FindOneAndDelete(ctx, filter).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *PostRepository) aggregate(ctx context.Context, match bson.M) ([]postDocument, error) {
	cursor, err := r.posts.Aggregate(ctx, expandOwner(match))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []postDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
