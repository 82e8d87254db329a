package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	SortByCreated = "created_at"
	SortByUpdated = "updated_at"
	SortByTitle   = "title"
	SortByViewed  = "last_viewed_at"
	SortByOrder   = "order"
)

// NoteView selects which lifecycle slice of a user's notes a query
// sees. Trashed notes only ever appear in ViewTrashed.
type NoteView string

const (
	ViewDefault  NoteView = "default"
	ViewArchived NoteView = "archived"
	ViewTrashed  NoteView = "trashed"
)

// NoteQuery is the normalized filter specification for a note listing.
// Zero values mean "predicate not applied", except FolderNone which
// explicitly selects notes without a folder.
type NoteQuery struct {
	UserID       string
	Search       string
	TagID        string
	FolderID     string
	FolderNone   bool
	Color        string
	FavoriteOnly bool
	View         NoteView
	SortBy       string
	SortOrder    string
	Page         int
	PageSize     int
}

// Normalize clamps malformed pagination to defaults and fills in the
// default view and sort. Lenient on purpose: a bad page number from a
// client degrades to page one instead of erroring.
func (q NoteQuery) Normalize() NoteQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	if q.View == "" {
		q.View = ViewDefault
	}
	switch q.SortBy {
	case SortByCreated, SortByUpdated, SortByTitle, SortByViewed, SortByOrder:
	default:
		q.SortBy = SortByUpdated
	}
	if q.SortOrder != "asc" && q.SortOrder != "desc" {
		q.SortOrder = "desc"
	}
	return q
}

// Filter translates the query spec into a Mongo filter document. Every
// predicate is ANDed; the free-text match is an OR across title and
// content with case-insensitive substring semantics.
func (q NoteQuery) Filter() bson.M {
	filter := bson.M{"user_id": q.UserID}

	switch q.View {
	case ViewTrashed:
		filter["is_trashed"] = true
	case ViewArchived:
		filter["is_trashed"] = false
		filter["is_archived"] = true
	default:
		filter["is_trashed"] = false
		filter["is_archived"] = false
	}

	if q.Search != "" {
		quoted := regexp.QuoteMeta(q.Search)
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": quoted, "$options": "i"}},
			{"content": bson.M{"$regex": quoted, "$options": "i"}},
		}
	}
	if q.TagID != "" {
		filter["tags"] = q.TagID
	}
	if q.FolderNone {
		filter["folder_id"] = bson.M{"$in": []interface{}{nil, ""}}
	} else if q.FolderID != "" {
		filter["folder_id"] = q.FolderID
	}
	if q.Color != "" {
		filter["color"] = q.Color
	}
	if q.FavoriteOnly {
		filter["is_favorite"] = true
	}

	return filter
}

// Sort builds the sort document. Pinned notes always come first; the
// requested field and direction order notes within each partition.
func (q NoteQuery) Sort() bson.D {
	dir := -1
	if q.SortOrder == "asc" {
		dir = 1
	}
	return bson.D{
		{Key: "is_pinned", Value: -1},
		{Key: q.SortBy, Value: dir},
		{Key: "_id", Value: 1}, // stable tiebreak across pages
	}
}

// Skip returns the number of documents to skip for the requested page.
func (q NoteQuery) Skip() int64 {
	return int64((q.Page - 1) * q.PageSize)
}

// PageCount computes the number of pages for a total match count.
func PageCount(total int64, pageSize int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
