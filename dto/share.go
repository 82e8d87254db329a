package dto

import (
	"time"

	"notewell/model"
	"notewell/usecase"
)

type ShareWithUserRequest struct {
	NoteID     string     `json:"note_id" binding:"required"`
	Email      string     `json:"email" binding:"required,email"`
	Permission string     `json:"permission" binding:"required"`
	ExpiresAt  *time.Time `json:"expires_at"`
}

type CreateShareLinkRequest struct {
	NoteID     string     `json:"note_id" binding:"required"`
	Permission string     `json:"permission"`
	ExpiresAt  *time.Time `json:"expires_at"`
}

type UpdateShareRequest struct {
	Permission  *string    `json:"permission"`
	ExpiresAt   *time.Time `json:"expires_at"`
	ClearExpiry bool       `json:"clear_expiry"`
}

type ShareResponse struct {
	ID         string     `json:"id"`
	NoteID     string     `json:"note_id"`
	SharedWith string     `json:"shared_with,omitempty"`
	ShareToken string     `json:"share_token,omitempty"`
	Permission string     `json:"permission"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	Views      int64      `json:"views"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ShareLinkResponse struct {
	Share ShareResponse `json:"share"`
	URL   string        `json:"url"`
}

// SharedNoteResponse is what a recipient or link holder sees: the note
// plus the grant it arrived through.
type SharedNoteResponse struct {
	Share ShareResponse `json:"share"`
	Note  NoteResponse  `json:"note"`
}

func ToShareResponse(share *model.SharedNote) ShareResponse {
	return ShareResponse{
		ID:         share.ID,
		NoteID:     share.NoteID,
		SharedWith: share.SharedWith,
		ShareToken: share.ShareToken,
		Permission: string(share.Permission),
		ExpiresAt:  share.ExpiresAt,
		Views:      share.Views,
		CreatedAt:  share.CreatedAt,
	}
}

func ToShareResponses(shares []*model.SharedNote) []ShareResponse {
	responses := make([]ShareResponse, len(shares))
	for i, share := range shares {
		responses[i] = ToShareResponse(share)
	}
	return responses
}

func ToSharedNoteResponse(detail *usecase.ShareDetail) SharedNoteResponse {
	return SharedNoteResponse{
		Share: ToShareResponse(detail.Share),
		Note:  ToNoteResponse(detail.Note),
	}
}

func ToSharedNoteResponses(details []*usecase.ShareDetail) []SharedNoteResponse {
	responses := make([]SharedNoteResponse, len(details))
	for i, detail := range details {
		responses[i] = ToSharedNoteResponse(detail)
	}
	return responses
}
