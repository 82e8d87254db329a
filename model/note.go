package model

import (
	"time"
)

type ContentType string

const (
	ContentTypePlain    ContentType = "plain"
	ContentTypeMarkdown ContentType = "markdown"
	ContentTypeRichText ContentType = "richtext"
)

func (c ContentType) Valid() bool {
	switch c {
	case ContentTypePlain, ContentTypeMarkdown, ContentTypeRichText:
		return true
	}
	return false
}

type Note struct {
	ID             string      `bson:"_id,omitempty" json:"id"`
	UserID         string      `bson:"user_id" json:"user_id"`
	Title          string      `bson:"title" json:"title"`
	Content        string      `bson:"content" json:"content"`
	ContentType    ContentType `bson:"content_type" json:"content_type"`
	FolderID       string      `bson:"folder_id,omitempty" json:"folder_id,omitempty"`
	Tags           []string    `bson:"tags,omitempty" json:"tags,omitempty"`
	Color          string      `bson:"color,omitempty" json:"color,omitempty"`
	IsPinned       bool        `bson:"is_pinned" json:"is_pinned"`
	IsArchived     bool        `bson:"is_archived" json:"is_archived"`
	IsTrashed      bool        `bson:"is_trashed" json:"is_trashed"`
	IsFavorite     bool        `bson:"is_favorite" json:"is_favorite"`
	WasArchived    bool        `bson:"was_archived,omitempty" json:"-"`
	TrashedAt      *time.Time  `bson:"trashed_at,omitempty" json:"trashed_at,omitempty"`
	WordCount      int         `bson:"word_count" json:"word_count"`
	CharacterCount int         `bson:"character_count" json:"character_count"`
	ViewCount      int64       `bson:"view_count" json:"view_count"`
	LastViewedAt   *time.Time  `bson:"last_viewed_at,omitempty" json:"last_viewed_at,omitempty"`
	Order          float64     `bson:"order" json:"order"`
	CreatedAt      time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time   `bson:"updated_at" json:"updated_at"`
}
