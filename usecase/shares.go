package usecase

import (
	"context"
	"strings"
	"time"

	"notewell/model"
	"notewell/repository"
	"notewell/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SharesService struct {
	SharesRepo *repository.SharesRepo
	NotesRepo  *repository.NotesRepo
	UsersRepo  *repository.UsersRepo
	// PublicBaseURL prefixes generated share links, e.g. https://app.example.com
	PublicBaseURL string
}

// ShareDetail pairs a share record with its source note.
type ShareDetail struct {
	Share *model.SharedNote
	Note  *model.Note
}

type ShareWithUserInput struct {
	NoteID     string
	Email      string
	Permission model.SharePermission
	ExpiresAt  *time.Time
}

type ShareLink struct {
	Share *model.SharedNote
	URL   string
}

func validateExpiry(expiresAt *time.Time) error {
	if expiresAt != nil && !expiresAt.After(time.Now()) {
		return utils.ValidationError("expiry must be in the future")
	}
	return nil
}

// ShareWithUser grants a known user access to a note by email. Sharing
// again with the same recipient updates permission and expiry.
func (svc *SharesService) ShareWithUser(ctx context.Context, userID string, input ShareWithUserInput) (*model.SharedNote, error) {
	if !input.Permission.Valid() {
		return nil, utils.ValidationError("permission must be read or edit")
	}
	if err := validateExpiry(input.ExpiresAt); err != nil {
		return nil, err
	}

	note, err := svc.NotesRepo.GetNote(ctx, input.NoteID, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, utils.NotFoundError("note not found")
		}
		return nil, utils.InternalErrorf("failed to fetch note", err)
	}
	if note.IsTrashed {
		return nil, utils.ValidationError("trashed notes cannot be shared")
	}

	recipient, err := svc.UsersRepo.FindUserByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		return nil, utils.InternalErrorf("failed to resolve recipient", err)
	}
	if recipient == nil {
		return nil, utils.NotFoundError("no user with that email")
	}
	if recipient.UserID == userID {
		return nil, utils.ValidationError("cannot share a note with yourself")
	}

	share := &model.SharedNote{
		ID:         utils.GenerateID(),
		NoteID:     input.NoteID,
		UserID:     userID,
		SharedWith: recipient.UserID,
		Permission: input.Permission,
		ExpiresAt:  input.ExpiresAt,
	}
	if err := svc.SharesRepo.UpsertUserShare(ctx, share); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.ConflictError("note is already shared with that user")
		}
		return nil, utils.InternalErrorf("failed to share note", err)
	}
	return share, nil
}

// CreateShareLink issues a public link share backed by a 256-bit
// random token. Fetching the link requires no authentication.
func (svc *SharesService) CreateShareLink(ctx context.Context, userID, noteID string, permission model.SharePermission, expiresAt *time.Time) (*ShareLink, error) {
	if permission == "" {
		permission = model.PermissionRead
	}
	if !permission.Valid() {
		return nil, utils.ValidationError("permission must be read or edit")
	}
	if err := validateExpiry(expiresAt); err != nil {
		return nil, err
	}

	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, utils.NotFoundError("note not found")
		}
		return nil, utils.InternalErrorf("failed to fetch note", err)
	}
	if note.IsTrashed {
		return nil, utils.ValidationError("trashed notes cannot be shared")
	}

	token, err := utils.GenerateShareToken()
	if err != nil {
		return nil, utils.InternalErrorf("failed to generate share token", err)
	}

	now := time.Now()
	share := &model.SharedNote{
		ID:         utils.GenerateID(),
		NoteID:     noteID,
		UserID:     userID,
		ShareToken: token,
		Permission: permission,
		ExpiresAt:  expiresAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := svc.SharesRepo.CreateShare(ctx, share); err != nil {
		return nil, utils.InternalErrorf("failed to create share link", err)
	}

	return &ShareLink{
		Share: share,
		URL:   strings.TrimRight(svc.PublicBaseURL, "/") + "/share/" + token,
	}, nil
}

// ShareExpired reports whether a share has an expiry in the past.
func ShareExpired(share *model.SharedNote, now time.Time) bool {
	return share.ExpiresAt != nil && now.After(*share.ExpiresAt)
}

// GetSharedByToken is the unauthenticated public fetch. Expired links
// are forbidden; every successful fetch counts a view.
func (svc *SharesService) GetSharedByToken(ctx context.Context, token string) (*ShareDetail, error) {
	share, err := svc.SharesRepo.GetByToken(ctx, token)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, utils.NotFoundError("share not found")
		}
		return nil, utils.InternalErrorf("failed to fetch share", err)
	}
	if ShareExpired(share, time.Now()) {
		return nil, utils.ForbiddenError("share link has expired")
	}

	note, err := svc.NotesRepo.GetNote(ctx, share.NoteID, share.UserID)
	if err != nil || note.IsTrashed {
		if err != nil && err != repository.ErrNotFound {
			return nil, utils.InternalErrorf("failed to fetch shared note", err)
		}
		return nil, utils.NotFoundError("shared note no longer exists")
	}

	if err := svc.SharesRepo.IncrementViews(ctx, share.ID); err != nil {
		return nil, utils.InternalErrorf("failed to count share view", err)
	}
	share.Views++
	utils.ShareViewsTotal.Inc()

	return &ShareDetail{Share: share, Note: note}, nil
}

func (svc *SharesService) ListSentShares(ctx context.Context, userID string) ([]*model.SharedNote, error) {
	shares, err := svc.SharesRepo.GetSentShares(ctx, userID)
	if err != nil {
		return nil, utils.InternalErrorf("failed to list shares", err)
	}
	if shares == nil {
		shares = []*model.SharedNote{}
	}
	return shares, nil
}

// ListReceivedShares returns shares granted to the user, dropping any
// whose source note has been trashed or deleted.
func (svc *SharesService) ListReceivedShares(ctx context.Context, userID string) ([]*ShareDetail, error) {
	shares, err := svc.SharesRepo.GetReceivedShares(ctx, userID)
	if err != nil {
		return nil, utils.InternalErrorf("failed to list received shares", err)
	}

	details := []*ShareDetail{}
	for _, share := range shares {
		note, err := svc.NotesRepo.GetNote(ctx, share.NoteID, share.UserID)
		if err != nil {
			if err == repository.ErrNotFound {
				continue
			}
			return nil, utils.InternalErrorf("failed to fetch shared note", err)
		}
		if note.IsTrashed {
			continue
		}
		details = append(details, &ShareDetail{Share: share, Note: note})
	}
	return details, nil
}

func (svc *SharesService) UpdateShare(ctx context.Context, shareID, userID string, permission *model.SharePermission, expiresAt *time.Time, clearExpiry bool) (*model.SharedNote, error) {
	fields := bson.M{}
	var unset []string
	if permission != nil {
		if !permission.Valid() {
			return nil, utils.ValidationError("permission must be read or edit")
		}
		fields["permission"] = *permission
	}
	if clearExpiry {
		unset = append(unset, "expires_at")
	} else if expiresAt != nil {
		if err := validateExpiry(expiresAt); err != nil {
			return nil, err
		}
		fields["expires_at"] = *expiresAt
	}
	if len(fields) == 0 && len(unset) == 0 {
		return nil, utils.ValidationError("no fields to update")
	}

	if err := svc.SharesRepo.PatchShare(ctx, shareID, userID, fields, unset); err != nil {
		if err == repository.ErrNotFound {
			return nil, utils.NotFoundError("share not found")
		}
		return nil, utils.InternalErrorf("failed to update share", err)
	}

	share, err := svc.SharesRepo.GetShare(ctx, shareID, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, utils.NotFoundError("share not found")
		}
		return nil, utils.InternalErrorf("failed to fetch share", err)
	}
	return share, nil
}

func (svc *SharesService) RevokeShare(ctx context.Context, shareID, userID string) error {
	err := svc.SharesRepo.DeleteShare(ctx, shareID, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return utils.NotFoundError("share not found")
		}
		return utils.InternalErrorf("failed to revoke share", err)
	}
	return nil
}
