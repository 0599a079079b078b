package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	PostCollection    = "posts"
	CounterCollection = "counters"
)

type Config struct {
	URI               string
	DBName            string `yaml:"db_name"`
	ConnectionTimeout int64  `yaml:"connection_timeout_in_ms"`
	QueryTimeout      int64  `yaml:"query_timeout_in_ms"`
}

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty: true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initPostCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initPostCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": PostCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"id", "created_at", "title", "content", "fact", "region", "season", "map_region"},
			"properties": bson.M{
				"id":         bson.M{"bsonType": "long"},
				"created_at": bson.M{"bsonType": "date"},
				"title":      bson.M{"bsonType": "string"},
				"content":    bson.M{"bsonType": "string"},
				"fact":       bson.M{"bsonType": "string"},
				"region": bson.M{
					"enum": []string{"chui", "talas", "naryn", "issyk-kul", "jalal-abad", "osh", "batken"},
				},
				"season": bson.M{
					"enum": []string{"winter", "spring", "summer", "autumn"},
				},
				"map_region": bson.M{
					"enum": []string{"chui", "talas", "naryn", "issyk-kul", "jalal-abad", "osh", "batken"},
				},
				"map_url":    bson.M{"bsonType": []string{"string", "null"}},
				"video_file": bson.M{"bsonType": []string{"string", "null"}},
			},
		},
	})

	err = db.Client.Database(db.DBName).CreateCollection(ctx, PostCollection, collOpts)
	if err != nil {
		return err
	}
	coll := db.Client.Database(db.DBName).Collection(PostCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
