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

type SharesRepo struct {
	MongoCollection *mongo.Collection
}

func GetSharesRepo(client *mongo.Client) *SharesRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("SHARES_COLLECTION", "shares")
	return &SharesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *SharesRepo) CreateShare(ctx context.Context, share *model.SharedNote) error {
	timer := utils.TrackDBOperation("insert", "shares")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, share)
	if err != nil {
		utils.TrackError("database", "share_creation_failed")
		return err
	}
	return nil
}

// UpsertUserShare creates or refreshes the share for a (note, recipient)
// pair; re-sharing updates permission and expiry instead of erroring.
func (r *SharesRepo) UpsertUserShare(ctx context.Context, share *model.SharedNote) error {
	timer := utils.TrackDBOperation("upsert", "shares")
	defer timer.ObserveDuration()

	now := time.Now()
	set := bson.M{
		"permission": share.Permission,
		"updated_at": now,
	}
	if share.ExpiresAt != nil {
		set["expires_at"] = *share.ExpiresAt
	}
	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"_id":         share.ID,
			"note_id":     share.NoteID,
			"user_id":     share.UserID,
			"shared_with": share.SharedWith,
			"views":       0,
			"created_at":  now,
		},
	}
	if share.ExpiresAt == nil {
		update["$unset"] = bson.M{"expires_at": ""}
	}

	_, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"note_id": share.NoteID, "shared_with": share.SharedWith},
		update, options.Update().SetUpsert(true))
	if err != nil {
		utils.TrackError("database", "share_upsert_failed")
	}
	return err
}

func (r *SharesRepo) GetShare(ctx context.Context, shareID, userID string) (*model.SharedNote, error) {
	timer := utils.TrackDBOperation("find", "shares")
	defer timer.ObserveDuration()

	var share model.SharedNote
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": shareID, "user_id": userID}).Decode(&share)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &share, nil
}

// GetByToken resolves a public link share. Token fetches are
// unauthenticated; expiry is the caller's concern.
func (r *SharesRepo) GetByToken(ctx context.Context, token string) (*model.SharedNote, error) {
	timer := utils.TrackDBOperation("find", "shares")
	defer timer.ObserveDuration()

	var share model.SharedNote
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"share_token": token}).Decode(&share)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &share, nil
}

func (r *SharesRepo) GetSentShares(ctx context.Context, userID string) ([]*model.SharedNote, error) {
	return r.findShares(ctx, bson.M{"user_id": userID})
}

func (r *SharesRepo) GetReceivedShares(ctx context.Context, userID string) ([]*model.SharedNote, error) {
	return r.findShares(ctx, bson.M{"shared_with": userID})
}

func (r *SharesRepo) findShares(ctx context.Context, filter bson.M) ([]*model.SharedNote, error) {
	timer := utils.TrackDBOperation("find", "shares")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "share_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var shares []*model.SharedNote
	if err = cursor.All(ctx, &shares); err != nil {
		return nil, err
	}
	return shares, nil
}

// IncrementViews counts a successful public fetch. Repeated fetches
// all count; there is no deduplication.
func (r *SharesRepo) IncrementViews(ctx context.Context, shareID string) error {
	timer := utils.TrackDBOperation("update", "shares")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": shareID},
		bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		utils.TrackError("database", "share_view_failed")
	}
	return err
}

// PatchShare applies a $set of fields and, optionally, a $unset of
// field names in one owner-scoped update.
func (r *SharesRepo) PatchShare(ctx context.Context, shareID, userID string, fields bson.M, unset []string) error {
	timer := utils.TrackDBOperation("update", "shares")
	defer timer.ObserveDuration()

	fields["updated_at"] = time.Now()
	update := bson.M{"$set": fields}
	if len(unset) > 0 {
		u := bson.M{}
		for _, name := range unset {
			u[name] = ""
		}
		update["$unset"] = u
	}

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": shareID, "user_id": userID}, update)
	if err != nil {
		utils.TrackError("database", "share_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SharesRepo) DeleteShare(ctx context.Context, shareID, userID string) error {
	timer := utils.TrackDBOperation("delete", "shares")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": shareID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "share_delete_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteSharesForNote drops every share of a note, used when the note
// is permanently deleted.
func (r *SharesRepo) DeleteSharesForNote(ctx context.Context, noteID string) error {
	timer := utils.TrackDBOperation("delete", "shares")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteMany(ctx, bson.M{"note_id": noteID})
	return err
}
