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

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client) *NotesRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("NOTES_COLLECTION", "notes")
	return &NotesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateNote inserts a new note
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, note)
	if err != nil {
		utils.TrackError("database", "note_creation_failed")
		return err
	}
	return nil
}

// GetNote retrieves a single owner-scoped note, trashed or not.
// Returns ErrNotFound when no matching note exists.
func (r *NotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": noteID, "user_id": userID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "note_lookup_failed")
		return nil, err
	}
	return &note, nil
}

// FindNotes runs a normalized note query and returns the matching page
// plus the total match count.
func (r *NotesRepo) FindNotes(ctx context.Context, query NoteQuery) ([]*model.Note, int64, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	filter := query.Filter()

	total, err := r.MongoCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.TrackError("database", "note_count_failed")
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(query.Sort()).
		SetSkip(query.Skip()).
		SetLimit(int64(query.PageSize))

	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "note_fetch_failed")
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var notes []*model.Note
	if err = cursor.All(ctx, &notes); err != nil {
		utils.TrackError("database", "note_decode_failed")
		return nil, 0, err
	}
	return notes, total, nil
}

// UpdateNoteFields applies a partial $set to an owner-scoped note.
// onlyActive restricts the match to non-trashed notes.
func (r *NotesRepo) UpdateNoteFields(ctx context.Context, noteID, userID string, fields bson.M, onlyActive bool) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": noteID, "user_id": userID}
	if onlyActive {
		filter["is_trashed"] = false
	}
	fields["updated_at"] = time.Now()

	result, err := r.MongoCollection.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		utils.TrackError("database", "note_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDelete marks a note trashed. Matching an already-trashed note is
// a no-op success so the operation stays idempotent.
func (r *NotesRepo) SoftDelete(ctx context.Context, noteID, userID string) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": noteID, "user_id": userID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return err
	}
	if note.IsTrashed {
		return nil
	}

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"is_trashed":   true,
		"trashed_at":   now,
		"was_archived": note.IsArchived,
		"is_archived":  false,
		"updated_at":   now,
	}}

	_, err = r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": noteID, "user_id": userID, "is_trashed": false}, update)
	if err != nil {
		utils.TrackError("database", "note_trash_failed")
	}
	return err
}

// Restore brings a trashed note back. The note returns to the archived
// state when it was archived at the moment it was trashed.
func (r *NotesRepo) Restore(ctx context.Context, noteID, userID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": noteID, "user_id": userID, "is_trashed": true}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"is_trashed":  false,
			"is_archived": note.WasArchived,
			"updated_at":  time.Now(),
		},
		"$unset": bson.M{
			"trashed_at":   "",
			"was_archived": "",
		},
	}
	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": noteID, "user_id": userID, "is_trashed": true}, update)
	if err != nil {
		utils.TrackError("database", "note_restore_failed")
		return nil, err
	}
	if result.MatchedCount == 0 {
		// Lost a race with a purge or another restore.
		return nil, ErrNotFound
	}

	note.IsTrashed = false
	note.IsArchived = note.WasArchived
	note.WasArchived = false
	note.TrashedAt = nil
	return &note, nil
}

// HardDelete permanently removes a note regardless of lifecycle state.
func (r *NotesRepo) HardDelete(ctx context.Context, noteID, userID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": noteID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "note_delete_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementViewCount bumps view_count and stamps last_viewed_at without
// touching updated_at or the derived content fields.
func (r *NotesRepo) IncrementViewCount(ctx context.Context, noteID, userID string) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": noteID, "user_id": userID},
		bson.M{
			"$inc": bson.M{"view_count": 1},
			"$set": bson.M{"last_viewed_at": time.Now()},
		})
	if err != nil {
		utils.TrackError("database", "note_view_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// PurgeExpiredTrash deletes every trashed note, across all owners,
// whose trashed_at predates the cutoff at the moment of this query.
// Safe to run repeatedly; a restore that commits before the sweep's
// query clears trashed_at and drops the note out of the result set.
func (r *NotesRepo) PurgeExpiredTrash(ctx context.Context, cutoff time.Time) (int64, error) {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(ctx, bson.M{
		"is_trashed": true,
		"trashed_at": bson.M{"$lt": cutoff},
	})
	if err != nil {
		utils.TrackError("database", "trash_purge_failed")
		return 0, err
	}
	return result.DeletedCount, nil
}

// EmptyTrash permanently deletes all trashed notes owned by a user.
func (r *NotesRepo) EmptyTrash(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(ctx, bson.M{
		"user_id":    userID,
		"is_trashed": true,
	})
	if err != nil {
		utils.TrackError("database", "empty_trash_failed")
		return 0, err
	}
	return result.DeletedCount, nil
}

// PullTagFromNotes removes a tag id from every note of the owner that
// holds it. Notes without the tag are unaffected.
func (r *NotesRepo) PullTagFromNotes(ctx context.Context, userID, tagID string) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"user_id": userID, "tags": tagID},
		bson.M{"$pull": bson.M{"tags": tagID}})
	if err != nil {
		utils.TrackError("database", "tag_pull_failed")
	}
	return err
}

// ReassignFolder moves every note in fromFolder either into toFolder or,
// when toFolder is empty, out of any folder.
func (r *NotesRepo) ReassignFolder(ctx context.Context, userID, fromFolder, toFolder string) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID, "folder_id": fromFolder}
	var update bson.M
	if toFolder == "" {
		update = bson.M{"$unset": bson.M{"folder_id": ""}}
	} else {
		update = bson.M{"$set": bson.M{"folder_id": toFolder}}
	}

	_, err := r.MongoCollection.UpdateMany(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "folder_reassign_failed")
	}
	return err
}

// CountNotesInFolder counts the owner's notes referencing a folder.
func (r *NotesRepo) CountNotesInFolder(ctx context.Context, userID, folderID string) (int64, error) {
	timer := utils.TrackDBOperation("count", "notes")
	defer timer.ObserveDuration()

	return r.MongoCollection.CountDocuments(ctx,
		bson.M{"user_id": userID, "folder_id": folderID})
}
