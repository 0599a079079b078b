package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PostRemover struct {
	db *Database
}

func NewPostRemover(db *Database) *PostRemover {
	return &PostRemover{db: db}
}

func (r *PostRemover) RemoveByID(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(PostCollection)
	res, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
