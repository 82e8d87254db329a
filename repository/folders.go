package repository

import (
	"context"
	"os"
	"time"

	"notewell/model"
	"notewell/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FoldersRepo struct {
	MongoCollection *mongo.Collection
}

func GetFoldersRepo(client *mongo.Client) *FoldersRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("FOLDERS_COLLECTION", "folders")
	return &FoldersRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *FoldersRepo) CreateFolder(ctx context.Context, folder *model.Folder) error {
	timer := utils.TrackDBOperation("insert", "folders")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, folder)
	if err != nil {
		utils.TrackError("database", "folder_creation_failed")
		return err
	}
	return nil
}

func (r *FoldersRepo) GetFolder(ctx context.Context, folderID, userID string) (*model.Folder, error) {
	timer := utils.TrackDBOperation("find", "folders")
	defer timer.ObserveDuration()

	var folder model.Folder
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": folderID, "user_id": userID}).Decode(&folder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &folder, nil
}

func (r *FoldersRepo) GetUserFolders(ctx context.Context, userID string) ([]*model.Folder, error) {
	timer := utils.TrackDBOperation("find", "folders")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{
		{Key: "parent_id", Value: 1},
		{Key: "order", Value: 1},
	})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "folder_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var folders []*model.Folder
	if err = cursor.All(ctx, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// FindByName is the case-insensitive (owner, parent, name) pre-check
// backed by the unique index with the same collation.
func (r *FoldersRepo) FindByName(ctx context.Context, userID, parentID, name string) (*model.Folder, error) {
	timer := utils.TrackDBOperation("find", "folders")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID, "name": name}
	if parentID == "" {
		filter["parent_id"] = bson.M{"$in": []interface{}{nil, ""}}
	} else {
		filter["parent_id"] = parentID
	}

	opts := options.FindOne().SetCollation(caseInsensitive)
	var folder model.Folder
	err := r.MongoCollection.FindOne(ctx, filter, opts).Decode(&folder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &folder, nil
}

// NextSiblingOrder returns max(sibling order)+1, or 0 for the first
// folder under a parent.
func (r *FoldersRepo) NextSiblingOrder(ctx context.Context, userID, parentID string) (int, error) {
	timer := utils.TrackDBOperation("find", "folders")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	if parentID == "" {
		filter["parent_id"] = bson.M{"$in": []interface{}{nil, ""}}
	} else {
		filter["parent_id"] = parentID
	}

	opts := options.FindOne().SetSort(bson.D{{Key: "order", Value: -1}})
	var top model.Folder
	err := r.MongoCollection.FindOne(ctx, filter, opts).Decode(&top)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, err
	}
	return top.Order + 1, nil
}

// HasChildren reports whether any folder references this one as parent.
func (r *FoldersRepo) HasChildren(ctx context.Context, userID, folderID string) (bool, error) {
	timer := utils.TrackDBOperation("count", "folders")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx,
		bson.M{"user_id": userID, "parent_id": folderID},
		options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FoldersRepo) UpdateFolder(ctx context.Context, folderID, userID string, fields bson.M) error {
	timer := utils.TrackDBOperation("update", "folders")
	defer timer.ObserveDuration()

	fields["updated_at"] = time.Now()
	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": folderID, "user_id": userID},
		bson.M{"$set": fields})
	if err != nil {
		utils.TrackError("database", "folder_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *FoldersRepo) DeleteFolder(ctx context.Context, folderID, userID string) error {
	timer := utils.TrackDBOperation("delete", "folders")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": folderID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "folder_delete_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
