package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"jailoo/internal/domain/model"
)

type PostUpdater struct {
	db *Database
}

func NewPostUpdater(db *Database) *PostUpdater {
	return &PostUpdater{db: db}
}

// UpdateFields replaces the text/metadata fields of a post. The video_file
// pointer is never part of this update.
func (u *PostUpdater) UpdateFields(ctx context.Context, post *model.Post) error {
	ctx, cancel := context.WithTimeout(ctx, u.db.QueryTimeout)
	defer cancel()

	coll := u.db.Client.Database(u.db.DBName).Collection(PostCollection)

	res, err := coll.UpdateOne(ctx, bson.M{"id": post.ID}, bson.M{"$set": bson.M{
		"title":      post.Title,
		"content":    post.Content,
		"fact":       post.Fact,
		"region":     post.Region,
		"season":     post.Season,
		"map_region": post.MapRegion,
		"map_url":    post.MapURL,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}

func (u *PostUpdater) SetVideoFile(ctx context.Context, id int64, object string) error {
	ctx, cancel := context.WithTimeout(ctx, u.db.QueryTimeout)
	defer cancel()

	coll := u.db.Client.Database(u.db.DBName).Collection(PostCollection)

	res, err := coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"video_file": object,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
