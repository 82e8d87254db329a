package dto

import (
	"time"

	"notewell/model"
	"notewell/usecase"
)

type CreateNoteRequest struct {
	Title       string   `json:"title" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	ContentType string   `json:"content_type"`
	Color       string   `json:"color"`
	Tags        []string `json:"tags"`
	FolderID    string   `json:"folder_id"`
}

// UpdateNoteRequest uses pointers so absent fields are left untouched.
type UpdateNoteRequest struct {
	Title       *string   `json:"title"`
	Content     *string   `json:"content"`
	ContentType *string   `json:"content_type"`
	Color       *string   `json:"color"`
	Tags        *[]string `json:"tags"`
	FolderID    *string   `json:"folder_id"`
	Order       *float64  `json:"order"`
}

type NoteResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	ContentType    string     `json:"content_type"`
	FolderID       string     `json:"folder_id,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	Color          string     `json:"color,omitempty"`
	IsPinned       bool       `json:"is_pinned"`
	IsArchived     bool       `json:"is_archived"`
	IsTrashed      bool       `json:"is_trashed"`
	IsFavorite     bool       `json:"is_favorite"`
	TrashedAt      *time.Time `json:"trashed_at,omitempty"`
	WordCount      int        `json:"word_count"`
	CharacterCount int        `json:"character_count"`
	ViewCount      int64      `json:"view_count"`
	LastViewedAt   *time.Time `json:"last_viewed_at,omitempty"`
	Order          float64    `json:"order"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NoteDetailResponse adds the resolved tag and folder records to a note.
type NoteDetailResponse struct {
	NoteResponse
	TagDetails []TagResponse   `json:"tag_details,omitempty"`
	Folder     *FolderResponse `json:"folder,omitempty"`
}

type NotesPageResponse struct {
	Notes       []NoteResponse `json:"notes"`
	TotalCount  int64          `json:"total_count"`
	PageCount   int            `json:"page_count"`
	CurrentPage int            `json:"current_page"`
}

func ToNoteResponse(note *model.Note) NoteResponse {
	return NoteResponse{
		ID:             note.ID,
		Title:          note.Title,
		Content:        note.Content,
		ContentType:    string(note.ContentType),
		FolderID:       note.FolderID,
		Tags:           note.Tags,
		Color:          note.Color,
		IsPinned:       note.IsPinned,
		IsArchived:     note.IsArchived,
		IsTrashed:      note.IsTrashed,
		IsFavorite:     note.IsFavorite,
		TrashedAt:      note.TrashedAt,
		WordCount:      note.WordCount,
		CharacterCount: note.CharacterCount,
		ViewCount:      note.ViewCount,
		LastViewedAt:   note.LastViewedAt,
		Order:          note.Order,
		CreatedAt:      note.CreatedAt,
		UpdatedAt:      note.UpdatedAt,
	}
}

func ToNoteResponses(notes []*model.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = ToNoteResponse(note)
	}
	return responses
}

func ToNoteDetailResponse(detail *usecase.NoteDetail) NoteDetailResponse {
	response := NoteDetailResponse{
		NoteResponse: ToNoteResponse(detail.Note),
	}
	if len(detail.Tags) > 0 {
		response.TagDetails = ToTagResponses(detail.Tags)
	}
	if detail.Folder != nil {
		folder := ToFolderResponse(detail.Folder)
		response.Folder = &folder
	}
	return response
}

func NewNotesPageResponse(page *usecase.NotesPage) *NotesPageResponse {
	return &NotesPageResponse{
		Notes:       ToNoteResponses(page.Notes),
		TotalCount:  page.TotalCount,
		PageCount:   page.PageCount,
		CurrentPage: page.CurrentPage,
	}
}
