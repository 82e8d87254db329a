package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"notewell/model"
	"notewell/repository"
	"notewell/utils"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	MaxTitleLength     = 200
	MaxContentLength   = 50000
	TrashRetentionDays = 30
)

type NotesService struct {
	NotesRepo   *repository.NotesRepo
	TagsRepo    *repository.TagsRepo
	FoldersRepo *repository.FoldersRepo
	SharesRepo  *repository.SharesRepo
}

// NoteDetail bundles a note with its tag and folder summaries.
type NoteDetail struct {
	Note   *model.Note
	Tags   []*model.Tag
	Folder *model.Folder
}

// NotesPage is one page of a note listing.
type NotesPage struct {
	Notes       []*model.Note
	TotalCount  int64
	PageCount   int
	CurrentPage int
}

type CreateNoteInput struct {
	Title       string
	Content     string
	ContentType model.ContentType
	Color       string
	Tags        []string
	FolderID    string
}

// UpdateNoteInput carries partial update semantics: nil means "leave
// the stored value untouched", a pointer to the zero value clears it.
type UpdateNoteInput struct {
	Title       *string
	Content     *string
	ContentType *model.ContentType
	Color       *string
	Tags        *[]string
	FolderID    *string
	Order       *float64
}

// CountWords counts the whitespace-delimited non-empty tokens of the
// content.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// CountCharacters counts the characters (runes) of the raw content.
func CountCharacters(content string) int {
	return utf8.RuneCountInString(content)
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return utils.ValidationError("note title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return utils.ValidationError("note title exceeds maximum length")
	}
	return nil
}

func validateContent(content string) error {
	if content == "" {
		return utils.ValidationError("note content is required")
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return utils.ValidationError("note content exceeds maximum length")
	}
	return nil
}

// validateReferences checks that every tag id and the folder id resolve
// to records owned by the same owner.
func (svc *NotesService) validateReferences(ctx context.Context, userID string, tags []string, folderID string) error {
	if len(tags) > 0 {
		count, err := svc.TagsRepo.CountExisting(ctx, userID, tags)
		if err != nil {
			return utils.InternalErrorf("failed to verify tags", err)
		}
		if count != int64(len(dedupe(tags))) {
			return utils.ValidationError("one or more tags do not exist")
		}
	}
	if folderID != "" {
		if _, err := svc.FoldersRepo.GetFolder(ctx, folderID, userID); err != nil {
			if err == repository.ErrNotFound {
				return utils.ValidationError("folder does not exist")
			}
			return utils.InternalErrorf("failed to verify folder", err)
		}
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

func (svc *NotesService) CreateNote(ctx context.Context, userID string, input CreateNoteInput) (*NoteDetail, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := validateTitle(input.Title); err != nil {
		return nil, err
	}
	if err := validateContent(input.Content); err != nil {
		return nil, err
	}
	if input.ContentType == "" {
		input.ContentType = model.ContentTypePlain
	}
	if !input.ContentType.Valid() {
		return nil, utils.ValidationError("invalid content type")
	}
	if !utils.ValidHexColor(input.Color) {
		return nil, utils.ValidationError("color must be a hex string like #rrggbb")
	}
	input.Tags = dedupe(input.Tags)
	if err := svc.validateReferences(ctx, userID, input.Tags, input.FolderID); err != nil {
		return nil, err
	}

	now := time.Now()
	note := &model.Note{
		ID:             utils.GenerateID(),
		UserID:         userID,
		Title:          input.Title,
		Content:        input.Content,
		ContentType:    input.ContentType,
		FolderID:       input.FolderID,
		Tags:           input.Tags,
		Color:          input.Color,
		WordCount:      CountWords(input.Content),
		CharacterCount: CountCharacters(input.Content),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := svc.NotesRepo.CreateNote(ctx, note); err != nil {
		return nil, utils.InternalErrorf("failed to create note", err)
	}
	utils.TrackNoteOperation("create")

	return svc.resolveDetail(ctx, note)
}

func (svc *NotesService) resolveDetail(ctx context.Context, note *model.Note) (*NoteDetail, error) {
	detail := &NoteDetail{Note: note}

	if len(note.Tags) > 0 {
		tags, err := svc.TagsRepo.GetUserTags(ctx, note.UserID)
		if err != nil {
			return nil, utils.InternalErrorf("failed to resolve tags", err)
		}
		byID := make(map[string]*model.Tag, len(tags))
		for _, tag := range tags {
			byID[tag.ID] = tag
		}
		for _, id := range note.Tags {
			if tag, ok := byID[id]; ok {
				detail.Tags = append(detail.Tags, tag)
			}
		}
	}

	if note.FolderID != "" {
		folder, err := svc.FoldersRepo.GetFolder(ctx, note.FolderID, note.UserID)
		if err == nil {
			detail.Folder = folder
		} else if err != repository.ErrNotFound {
			return nil, utils.InternalErrorf("failed to resolve folder", err)
		}
	}

	return detail, nil
}

func (svc *NotesService) GetNote(ctx context.Context, noteID, userID string) (*NoteDetail, error) {
	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, utils.NotFoundError("note not found")
		}
		return nil, utils.InternalErrorf("failed to fetch note", err)
	}
	return svc.resolveDetail(ctx, note)
}

// UpdateNote applies a partial update to an active note. Fields absent
// from the input are left untouched; changing content recomputes the
// derived counts.
func (svc *NotesService) UpdateNote(ctx context.Context, noteID, userID string, input UpdateNoteInput) (*NoteDetail, error) {
	fields := bson.M{}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if err := validateTitle(title); err != nil {
			return nil, err
		}
		fields["title"] = title
	}
	if input.Content != nil {
		if err := validateContent(*input.Content); err != nil {
			return nil, err
		}
		fields["content"] = *input.Content
		fields["word_count"] = CountWords(*input.Content)
		fields["character_count"] = CountCharacters(*input.Content)
	}
	if input.ContentType != nil {
		if !input.ContentType.Valid() {
			return nil, utils.ValidationError("invalid content type")
		}
		fields["content_type"] = *input.ContentType
	}
	if input.Color != nil {
		if !utils.ValidHexColor(*input.Color) {
			return nil, utils.ValidationError("color must be a hex string like #rrggbb")
		}
		fields["color"] = *input.Color
	}
	if input.Tags != nil {
		tags := dedupe(*input.Tags)
		if err := svc.validateReferences(ctx, userID, tags, ""); err != nil {
			return nil, err
		}
		fields["tags"] = tags
	}
	if input.FolderID != nil {
		if err := svc.validateReferences(ctx, userID, nil, *input.FolderID); err != nil {
			return nil, err
		}
		fields["folder_id"] = *input.FolderID
	}
	if input.Order != nil {
		fields["order"] = *input.Order
	}

	if len(fields) == 0 {
		return nil, utils.ValidationError("no fields to update")
	}

	err := svc.NotesRepo.UpdateNoteFields(ctx, noteID, userID, fields, true)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, utils.NotFoundError("note not found")
		}
		return nil, utils.InternalErrorf("failed to update note", err)
	}
	utils.TrackNoteOperation("update")

	return svc.GetNote(ctx, noteID, userID)
}

// SoftDelete moves a note to the trash. Trashing an already-trashed
// note is a no-op success.
func (svc *NotesService) SoftDelete(ctx context.Context, noteID, userID string) error {
	err := svc.NotesRepo.SoftDelete(ctx, noteID, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return utils.NotFoundError("note not found")
		}
		return utils.InternalErrorf("failed to trash note", err)
	}
	utils.TrackNoteOperation("trash")
	return nil
}

// Restore brings a trashed note back to its pre-trash state.
func (svc *NotesService) Restore(ctx context.Context, noteID, userID string) (*model.Note, error) {
	note, err := svc.NotesRepo.Restore(ctx, noteID, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, utils.NotFoundError("no trashed note with that id")
		}
		return nil, utils.InternalErrorf("failed to restore note", err)
	}
	utils.TrackNoteOperation("restore")
	return note, nil
}

// HardDelete permanently removes a note and its shares. Irreversible.
func (svc *NotesService) HardDelete(ctx context.Context, noteID, userID string) error {
	err := svc.NotesRepo.HardDelete(ctx, noteID, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return utils.NotFoundError("note not found")
		}
		return utils.InternalErrorf("failed to delete note", err)
	}
	if svc.SharesRepo != nil {
		if err := svc.SharesRepo.DeleteSharesForNote(ctx, noteID); err != nil {
			utils.TrackError("database", "share_cleanup_failed")
		}
	}
	utils.TrackNoteOperation("delete")
	return nil
}

// ToggleArchive flips the archived flag. Trashed notes cannot be
// archived or unarchived.
func (svc *NotesService) ToggleArchive(ctx context.Context, noteID, userID string) (*model.Note, error) {
	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, utils.NotFoundError("note not found")
		}
		return nil, utils.InternalErrorf("failed to fetch note", err)
	}
	if note.IsTrashed {
		return nil, utils.ValidationError("trashed notes cannot be archived")
	}

	err = svc.NotesRepo.UpdateNoteFields(ctx, noteID, userID,
		bson.M{"is_archived": !note.IsArchived}, true)
	if err != nil {
		return nil, utils.InternalErrorf("failed to toggle archive", err)
	}
	utils.TrackNoteOperation("archive")

	note.IsArchived = !note.IsArchived
	return note, nil
}

func (svc *NotesService) TogglePin(ctx context.Context, noteID, userID string) (*model.Note, error) {
	return svc.toggleFlag(ctx, noteID, userID, "is_pinned")
}

func (svc *NotesService) ToggleFavorite(ctx context.Context, noteID, userID string) (*model.Note, error) {
	return svc.toggleFlag(ctx, noteID, userID, "is_favorite")
}

func (svc *NotesService) toggleFlag(ctx context.Context, noteID, userID, field string) (*model.Note, error) {
	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, utils.NotFoundError("note not found")
		}
		return nil, utils.InternalErrorf("failed to fetch note", err)
	}

	var next bool
	switch field {
	case "is_pinned":
		next = !note.IsPinned
		note.IsPinned = next
	case "is_favorite":
		next = !note.IsFavorite
		note.IsFavorite = next
	}

	err = svc.NotesRepo.UpdateNoteFields(ctx, noteID, userID, bson.M{field: next}, false)
	if err != nil {
		return nil, utils.InternalErrorf("failed to toggle flag", err)
	}
	utils.TrackNoteOperation(field)
	return note, nil
}

// Duplicate copies a note into a fresh record. The copy starts
// unpinned and unfavorited with new timestamps.
func (svc *NotesService) Duplicate(ctx context.Context, noteID, userID string) (*model.Note, error) {
	source, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, utils.NotFoundError("note not found")
		}
		return nil, utils.InternalErrorf("failed to fetch note", err)
	}

	now := time.Now()
	dup := &model.Note{
		ID:             utils.GenerateID(),
		UserID:         userID,
		Title:          source.Title + " (Copy)",
		Content:        source.Content,
		ContentType:    source.ContentType,
		FolderID:       source.FolderID,
		Tags:           source.Tags,
		Color:          source.Color,
		WordCount:      source.WordCount,
		CharacterCount: source.CharacterCount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := svc.NotesRepo.CreateNote(ctx, dup); err != nil {
		return nil, utils.InternalErrorf("failed to duplicate note", err)
	}
	utils.TrackNoteOperation("duplicate")
	return dup, nil
}

// RecordView bumps the view counter. Not a content mutation: derived
// counts and updated_at are untouched.
func (svc *NotesService) RecordView(ctx context.Context, noteID, userID string) error {
	err := svc.NotesRepo.IncrementViewCount(ctx, noteID, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return utils.NotFoundError("note not found")
		}
		return utils.InternalErrorf("failed to record view", err)
	}
	return nil
}

// ListNotes runs a normalized note query and returns one result page.
func (svc *NotesService) ListNotes(ctx context.Context, query repository.NoteQuery) (*NotesPage, error) {
	if query.UserID == "" {
		return nil, utils.ValidationError("user ID is required")
	}
	query = query.Normalize()

	notes, total, err := svc.NotesRepo.FindNotes(ctx, query)
	if err != nil {
		return nil, utils.InternalErrorf("failed to list notes", err)
	}
	if notes == nil {
		notes = []*model.Note{}
	}

	return &NotesPage{
		Notes:       notes,
		TotalCount:  total,
		PageCount:   repository.PageCount(total, query.PageSize),
		CurrentPage: query.Page,
	}, nil
}

// PurgeExpiredTrash is the maintenance sweep deleting trashed notes
// older than cutoffDays across all owners. Idempotent.
func (svc *NotesService) PurgeExpiredTrash(ctx context.Context, cutoffDays int) (int64, error) {
	if cutoffDays <= 0 {
		cutoffDays = TrashRetentionDays
	}
	cutoff := time.Now().AddDate(0, 0, -cutoffDays)

	deleted, err := svc.NotesRepo.PurgeExpiredTrash(ctx, cutoff)
	if err != nil {
		return 0, utils.InternalErrorf("trash purge failed", err)
	}
	if deleted > 0 {
		utils.TrackNoteOperation("purge")
	}
	return deleted, nil
}

// EmptyTrash permanently deletes every trashed note the caller owns.
func (svc *NotesService) EmptyTrash(ctx context.Context, userID string) (int64, error) {
	deleted, err := svc.NotesRepo.EmptyTrash(ctx, userID)
	if err != nil {
		return 0, utils.InternalErrorf("failed to empty trash", err)
	}
	utils.TrackNoteOperation("empty_trash")
	return deleted, nil
}
