package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"notewell/model"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newTestNotesRepo connects to the database named by MONGO_TEST_URI and
// hands back a repo over a collection unique to this test run. Skipped
// entirely when no test database is configured.
func newTestNotesRepo(t *testing.T) *NotesRepo {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set; skipping Mongo-backed tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("failed to connect to test Mongo: %v", err)
	}

	coll := client.Database("notewell_test").
		Collection(fmt.Sprintf("notes_%d", time.Now().UnixNano()))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		coll.Drop(ctx)
		client.Disconnect(ctx)
	})

	return &NotesRepo{MongoCollection: coll}
}

func testNote(id, userID string) *model.Note {
	now := time.Now()
	return &model.Note{
		ID:          id,
		UserID:      userID,
		Title:       "Shopping",
		Content:     "milk eggs bread",
		ContentType: model.ContentTypePlain,
		WordCount:   3,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestNotesRepoSoftDeleteIdempotent(t *testing.T) {
	repo := newTestNotesRepo(t)
	ctx := context.Background()

	if err := repo.CreateNote(ctx, testNote("n1", "u1")); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	if err := repo.SoftDelete(ctx, "n1", "u1"); err != nil {
		t.Fatalf("first SoftDelete failed: %v", err)
	}
	if err := repo.SoftDelete(ctx, "n1", "u1"); err != nil {
		t.Fatalf("second SoftDelete should be a no-op success, got: %v", err)
	}

	note, err := repo.GetNote(ctx, "n1", "u1")
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if !note.IsTrashed || note.TrashedAt == nil {
		t.Errorf("note not trashed: %+v", note)
	}
}

func TestNotesRepoRestoreReturnsArchivedState(t *testing.T) {
	repo := newTestNotesRepo(t)
	ctx := context.Background()

	note := testNote("n1", "u1")
	note.IsArchived = true
	if err := repo.CreateNote(ctx, note); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	if err := repo.SoftDelete(ctx, "n1", "u1"); err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}

	restored, err := repo.Restore(ctx, "n1", "u1")
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if restored.IsTrashed {
		t.Error("restored note still trashed")
	}
	if !restored.IsArchived {
		t.Error("note archived before trashing should restore to archived")
	}
	if restored.TrashedAt != nil {
		t.Error("restore should clear trashed_at")
	}

	if _, err := repo.Restore(ctx, "n1", "u1"); err != ErrNotFound {
		t.Errorf("restoring a non-trashed note should report ErrNotFound, got %v", err)
	}
}

func TestNotesRepoPurgeHonorsCutoff(t *testing.T) {
	repo := newTestNotesRepo(t)
	ctx := context.Background()

	fresh := testNote("fresh", "u1")
	stale := testNote("stale", "u1")
	for _, n := range []*model.Note{fresh, stale} {
		if err := repo.CreateNote(ctx, n); err != nil {
			t.Fatalf("CreateNote failed: %v", err)
		}
		if err := repo.SoftDelete(ctx, n.ID, "u1"); err != nil {
			t.Fatalf("SoftDelete failed: %v", err)
		}
	}

	// Age one note past the cutoff.
	old := time.Now().AddDate(0, 0, -40)
	_, err := repo.MongoCollection.UpdateOne(ctx,
		map[string]interface{}{"_id": "stale"},
		map[string]interface{}{"$set": map[string]interface{}{"trashed_at": old}})
	if err != nil {
		t.Fatalf("failed to backdate note: %v", err)
	}

	cutoff := time.Now().AddDate(0, 0, -30)
	deleted, err := repo.PurgeExpiredTrash(ctx, cutoff)
	if err != nil {
		t.Fatalf("PurgeExpiredTrash failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}

	if _, err := repo.GetNote(ctx, "stale", "u1"); err != ErrNotFound {
		t.Error("stale note should be gone")
	}
	if _, err := repo.GetNote(ctx, "fresh", "u1"); err != nil {
		t.Errorf("fresh note should survive: %v", err)
	}

	// Repeat run deletes nothing further.
	deleted, err = repo.PurgeExpiredTrash(ctx, cutoff)
	if err != nil {
		t.Fatalf("second purge failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("second purge deleted %d, want 0", deleted)
	}
}

func TestNotesRepoHardDeleteIrreversible(t *testing.T) {
	repo := newTestNotesRepo(t)
	ctx := context.Background()

	if err := repo.CreateNote(ctx, testNote("n1", "u1")); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	if err := repo.HardDelete(ctx, "n1", "u1"); err != nil {
		t.Fatalf("HardDelete failed: %v", err)
	}

	if _, err := repo.GetNote(ctx, "n1", "u1"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after hard delete, got %v", err)
	}
	if err := repo.HardDelete(ctx, "n1", "u1"); err != ErrNotFound {
		t.Errorf("repeated hard delete should report ErrNotFound, got %v", err)
	}
}

func TestNotesRepoOwnershipScoping(t *testing.T) {
	repo := newTestNotesRepo(t)
	ctx := context.Background()

	if err := repo.CreateNote(ctx, testNote("n1", "owner-a")); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	if _, err := repo.GetNote(ctx, "n1", "owner-b"); err != ErrNotFound {
		t.Errorf("cross-owner read should fail with ErrNotFound, got %v", err)
	}
	if err := repo.HardDelete(ctx, "n1", "owner-b"); err != ErrNotFound {
		t.Errorf("cross-owner delete should fail with ErrNotFound, got %v", err)
	}
}
