package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"jailoo/internal/domain/model"
)

type PostRetriever struct {
	db *Database
}

func NewPostRetriever(db *Database) *PostRetriever {
	return &PostRetriever{db: db}
}

func (r *PostRetriever) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(PostCollection)

	var post model.Post
	if err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&post); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *PostRetriever) GetByVideoFile(ctx context.Context, object string) (*model.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(PostCollection)

	var post model.Post
	if err := coll.FindOne(ctx, bson.M{"video_file": object}).Decode(&post); err != nil {
		return nil, err
	}

	return &post, nil
}
