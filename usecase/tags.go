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
	"go.mongodb.org/mongo-driver/mongo"
)

const MaxTagNameLength = 30

type TagsService struct {
	TagsRepo  *repository.TagsRepo
	NotesRepo *repository.NotesRepo
}

func validateTagName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", utils.ValidationError("tag name is required")
	}
	if utf8.RuneCountInString(name) > MaxTagNameLength {
		return "", utils.ValidationError("tag name exceeds maximum length")
	}
	return name, nil
}

// CreateTag inserts a tag after the case-insensitive per-owner name
// pre-check. The unique index is the backstop: a duplicate-key error
// from the store is reported as the same conflict.
func (svc *TagsService) CreateTag(ctx context.Context, userID, name, color string) (*model.Tag, error) {
	name, err := validateTagName(name)
	if err != nil {
		return nil, err
	}
	if !utils.ValidHexColor(color) {
		return nil, utils.ValidationError("color must be a hex string like #rrggbb")
	}

	existing, err := svc.TagsRepo.FindByName(ctx, userID, name)
	if err != nil {
		return nil, utils.InternalErrorf("failed to check tag name", err)
	}
	if existing != nil {
		return nil, utils.ConflictError("a tag with that name already exists")
	}

	now := time.Now()
	tag := &model.Tag{
		ID:        utils.GenerateID(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := svc.TagsRepo.CreateTag(ctx, tag); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.ConflictError("a tag with that name already exists")
		}
		return nil, utils.InternalErrorf("failed to create tag", err)
	}
	return tag, nil
}

func (svc *TagsService) ListTags(ctx context.Context, userID string) ([]*model.Tag, error) {
	tags, err := svc.TagsRepo.GetUserTags(ctx, userID)
	if err != nil {
		return nil, utils.InternalErrorf("failed to list tags", err)
	}
	if tags == nil {
		tags = []*model.Tag{}
	}
	return tags, nil
}

func (svc *TagsService) UpdateTag(ctx context.Context, tagID, userID string, name, color *string) (*model.Tag, error) {
	fields := bson.M{}

	if name != nil {
		normalized, err := validateTagName(*name)
		if err != nil {
			return nil, err
		}
		existing, err := svc.TagsRepo.FindByName(ctx, userID, normalized)
		if err != nil {
			return nil, utils.InternalErrorf("failed to check tag name", err)
		}
		if existing != nil && existing.ID != tagID {
			return nil, utils.ConflictError("a tag with that name already exists")
		}
		fields["name"] = normalized
	}
	if color != nil {
		if !utils.ValidHexColor(*color) {
			return nil, utils.ValidationError("color must be a hex string like #rrggbb")
		}
		fields["color"] = *color
	}
	if len(fields) == 0 {
		return nil, utils.ValidationError("no fields to update")
	}
	fields["updated_at"] = time.Now()

	err := svc.TagsRepo.UpdateTag(ctx, tagID, userID, fields)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, utils.NotFoundError("tag not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.ConflictError("a tag with that name already exists")
		}
		return nil, utils.InternalErrorf("failed to update tag", err)
	}

	tag, err := svc.TagsRepo.GetTag(ctx, tagID, userID)
	if err != nil {
		return nil, utils.InternalErrorf("failed to fetch tag", err)
	}
	return tag, nil
}

// DeleteTag removes the tag and pulls its reference from every note
// that held it.
func (svc *TagsService) DeleteTag(ctx context.Context, tagID, userID string) error {
	err := svc.TagsRepo.DeleteTag(ctx, tagID, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return utils.NotFoundError("tag not found")
		}
		return utils.InternalErrorf("failed to delete tag", err)
	}

	if err := svc.NotesRepo.PullTagFromNotes(ctx, userID, tagID); err != nil {
		return utils.InternalErrorf("failed to remove tag from notes", err)
	}
	return nil
}
