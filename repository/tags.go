package repository

import (
	"context"
	"os"

	"notewell/model"
	"notewell/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TagsRepo struct {
	MongoCollection *mongo.Collection
}

func GetTagsRepo(client *mongo.Client) *TagsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("TAGS_COLLECTION", "tags")
	return &TagsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *TagsRepo) CreateTag(ctx context.Context, tag *model.Tag) error {
	timer := utils.TrackDBOperation("insert", "tags")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, tag)
	if err != nil {
		utils.TrackError("database", "tag_creation_failed")
		return err
	}
	return nil
}

func (r *TagsRepo) GetTag(ctx context.Context, tagID, userID string) (*model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	var tag model.Tag
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": tagID, "user_id": userID}).Decode(&tag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

func (r *TagsRepo) GetUserTags(ctx context.Context, userID string) ([]*model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "tag_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var tags []*model.Tag
	if err = cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// FindByName does a case-insensitive, owner-scoped name lookup using
// the same collation as the unique index backing it.
func (r *TagsRepo) FindByName(ctx context.Context, userID, name string) (*model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	opts := options.FindOne().SetCollation(caseInsensitive)
	var tag model.Tag
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"user_id": userID, "name": name}, opts).Decode(&tag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

// CountExisting reports how many of the given tag ids the owner holds.
func (r *TagsRepo) CountExisting(ctx context.Context, userID string, tagIDs []string) (int64, error) {
	timer := utils.TrackDBOperation("count", "tags")
	defer timer.ObserveDuration()

	return r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"_id":     bson.M{"$in": tagIDs},
	})
}

func (r *TagsRepo) UpdateTag(ctx context.Context, tagID, userID string, fields bson.M) error {
	timer := utils.TrackDBOperation("update", "tags")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": tagID, "user_id": userID},
		bson.M{"$set": fields})
	if err != nil {
		utils.TrackError("database", "tag_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TagsRepo) DeleteTag(ctx context.Context, tagID, userID string) error {
	timer := utils.TrackDBOperation("delete", "tags")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": tagID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "tag_delete_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
