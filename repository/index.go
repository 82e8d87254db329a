package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// caseInsensitive is the collation used for per-owner name uniqueness.
// Strength 2 compares base characters and accents but not case.
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

// SetupIndexes creates the collection indexes at startup. Unique
// indexes are the correctness backstop for the check-then-act name and
// share uniqueness pre-checks in the usecase layer.
func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	noteIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_trashed", Value: 1},
				{Key: "is_archived", Value: 1},
				{Key: "updated_at", Value: -1},
			},
			Options: options.Index().SetName("user_notes_browse"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_pinned", Value: -1},
				{Key: "updated_at", Value: -1},
			},
			Options: options.Index().SetName("user_notes_pinned_order"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "tags", Value: 1},
			},
			Options: options.Index().SetName("user_note_tags"),
		},
		{
			Keys: bson.D{
				{Key: "is_trashed", Value: 1},
				{Key: "trashed_at", Value: 1},
			},
			Options: options.Index().SetName("trash_purge_sweep"),
		},
	}

	tagIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "name", Value: 1},
			},
			Options: options.Index().
				SetName("user_tag_name_unique").
				SetUnique(true).
				SetCollation(caseInsensitive),
		},
	}

	folderIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "parent_id", Value: 1},
				{Key: "name", Value: 1},
			},
			Options: options.Index().
				SetName("user_folder_name_unique").
				SetUnique(true).
				SetCollation(caseInsensitive),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "parent_id", Value: 1},
				{Key: "order", Value: 1},
			},
			Options: options.Index().SetName("user_folder_siblings"),
		},
	}

	shareIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "note_id", Value: 1},
				{Key: "shared_with", Value: 1},
			},
			Options: options.Index().
				SetName("note_recipient_unique").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"shared_with": bson.M{"$exists": true},
				}),
		},
		{
			Keys: bson.D{{Key: "share_token", Value: 1}},
			Options: options.Index().
				SetName("share_token_unique").
				SetUnique(true).
				SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "shared_with", Value: 1}},
			Options: options.Index().SetName("received_shares"),
		},
	}

	reminderIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "status", Value: 1},
				{Key: "due_at", Value: 1},
			},
			Options: options.Index().SetName("user_reminder_schedule"),
		},
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("email_unique").
				SetUnique(true).
				SetCollation(caseInsensitive),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("user_id_index").SetUnique(true),
		},
	}

	sessionIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_active", Value: 1},
			},
			Options: options.Index().SetName("user_active_sessions"),
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetName("session_ttl").SetExpireAfterSeconds(0),
		},
	}

	for coll, indexes := range map[string][]mongo.IndexModel{
		"notes":     noteIndexes,
		"tags":      tagIndexes,
		"folders":   folderIndexes,
		"shares":    shareIndexes,
		"reminders": reminderIndexes,
		"users":     userIndexes,
		"sessions":  sessionIndexes,
	} {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", coll, err)
		}
	}

	log.Println("Successfully created all indexes")
	return nil
}
