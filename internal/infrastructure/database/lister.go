package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jailoo/internal/domain/model"
)

type PostLister struct {
	db *Database
}

func NewPostLister(db *Database) *PostLister {
	return &PostLister{db: db}
}

// GetAll returns every post ordered by id. Both views re-fetch full
// snapshots, so there is no pagination or incremental read here.
func (l *PostLister) GetAll(ctx context.Context, desc bool) ([]model.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(PostCollection)

	order := 1
	if desc {
		order = -1
	}

	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: order}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []model.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}
