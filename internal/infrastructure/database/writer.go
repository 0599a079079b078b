package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jailoo/internal/domain/model"
)

type PostWriter struct {
	db *Database
}

func NewPostWriter(db *Database) *PostWriter {
	return &PostWriter{db: db}
}

// NextID returns the next value of the post id sequence. Ids are allocated
// atomically and never reused, even after deletes.
func (w *PostWriter) NextID(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(CounterCollection)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := coll.FindOneAndUpdate(ctx,
		bson.M{"_id": PostCollection},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}

	return counter.Seq, nil
}

func (w *PostWriter) Write(ctx context.Context, post *model.Post) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(PostCollection)

	_, err := coll.InsertOne(ctx, post)

	return err
}
