package repository

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestNoteQueryNormalizeDefaults(t *testing.T) {
	q := NoteQuery{UserID: "u1"}.Normalize()

	if q.Page != DefaultPage {
		t.Errorf("expected page %d, got %d", DefaultPage, q.Page)
	}
	if q.PageSize != DefaultPageSize {
		t.Errorf("expected page size %d, got %d", DefaultPageSize, q.PageSize)
	}
	if q.View != ViewDefault {
		t.Errorf("expected view %q, got %q", ViewDefault, q.View)
	}
	if q.SortBy != SortByUpdated {
		t.Errorf("expected sort by %q, got %q", SortByUpdated, q.SortBy)
	}
	if q.SortOrder != "desc" {
		t.Errorf("expected sort order desc, got %q", q.SortOrder)
	}
}

func TestNoteQueryNormalizeClamping(t *testing.T) {
	tests := []struct {
		name         string
		in           NoteQuery
		wantPage     int
		wantPageSize int
	}{
		{"negative page", NoteQuery{Page: -3, PageSize: 10}, 1, 10},
		{"zero page", NoteQuery{Page: 0, PageSize: 10}, 1, 10},
		{"oversized page size", NoteQuery{Page: 2, PageSize: 500}, 2, MaxPageSize},
		{"zero page size", NoteQuery{Page: 2, PageSize: 0}, 2, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if got.Page != tt.wantPage {
				t.Errorf("page = %d, want %d", got.Page, tt.wantPage)
			}
			if got.PageSize != tt.wantPageSize {
				t.Errorf("page size = %d, want %d", got.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestNoteQueryNormalizeRejectsUnknownSortField(t *testing.T) {
	q := NoteQuery{SortBy: "password", SortOrder: "sideways"}.Normalize()
	if q.SortBy != SortByUpdated {
		t.Errorf("unknown sort field should fall back to %q, got %q", SortByUpdated, q.SortBy)
	}
	if q.SortOrder != "desc" {
		t.Errorf("unknown sort order should fall back to desc, got %q", q.SortOrder)
	}
}

func TestNoteQueryFilterViews(t *testing.T) {
	base := NoteQuery{UserID: "u1"}

	def := base
	def.View = ViewDefault
	filter := def.Filter()
	if filter["is_trashed"] != false || filter["is_archived"] != false {
		t.Errorf("default view should exclude trashed and archived, got %v", filter)
	}

	archived := base
	archived.View = ViewArchived
	filter = archived.Filter()
	if filter["is_trashed"] != false || filter["is_archived"] != true {
		t.Errorf("archived view filter wrong: %v", filter)
	}

	trashed := base
	trashed.View = ViewTrashed
	filter = trashed.Filter()
	if filter["is_trashed"] != true {
		t.Errorf("trashed view filter wrong: %v", filter)
	}
	if _, ok := filter["is_archived"]; ok {
		t.Errorf("trashed view should not filter on is_archived: %v", filter)
	}
}

func TestNoteQueryFilterPredicates(t *testing.T) {
	q := NoteQuery{
		UserID:       "u1",
		TagID:        "tag-1",
		FolderID:     "folder-1",
		Color:        "#ff0000",
		FavoriteOnly: true,
	}
	filter := q.Filter()

	if filter["tags"] != "tag-1" {
		t.Errorf("tag predicate missing: %v", filter)
	}
	if filter["folder_id"] != "folder-1" {
		t.Errorf("folder predicate missing: %v", filter)
	}
	if filter["color"] != "#ff0000" {
		t.Errorf("color predicate missing: %v", filter)
	}
	if filter["is_favorite"] != true {
		t.Errorf("favorite predicate missing: %v", filter)
	}
}

func TestNoteQueryFilterFolderNone(t *testing.T) {
	q := NoteQuery{UserID: "u1", FolderNone: true, FolderID: "ignored"}
	filter := q.Filter()

	want := bson.M{"$in": []interface{}{nil, ""}}
	if !reflect.DeepEqual(filter["folder_id"], want) {
		t.Errorf("folder none predicate = %v, want %v", filter["folder_id"], want)
	}
}

func TestNoteQueryFilterSearchEscapesRegex(t *testing.T) {
	q := NoteQuery{UserID: "u1", Search: "a+b(c"}
	filter := q.Filter()

	or, ok := filter["$or"].([]bson.M)
	if !ok || len(or) != 2 {
		t.Fatalf("expected $or over title and content, got %v", filter["$or"])
	}
	titleMatch := or[0]["title"].(bson.M)
	if titleMatch["$regex"] != `a\+b\(c` {
		t.Errorf("regex metacharacters not escaped: %v", titleMatch["$regex"])
	}
	if titleMatch["$options"] != "i" {
		t.Errorf("search should be case-insensitive: %v", titleMatch)
	}
}

func TestNoteQuerySortPinnedFirst(t *testing.T) {
	q := NoteQuery{SortBy: SortByTitle, SortOrder: "asc"}.Normalize()
	sort := q.Sort()

	if len(sort) != 3 {
		t.Fatalf("expected 3 sort keys, got %d", len(sort))
	}
	if sort[0].Key != "is_pinned" || sort[0].Value != -1 {
		t.Errorf("pinned notes must sort first: %v", sort[0])
	}
	if sort[1].Key != SortByTitle || sort[1].Value != 1 {
		t.Errorf("requested field not applied: %v", sort[1])
	}
	if sort[2].Key != "_id" {
		t.Errorf("missing stable tiebreak: %v", sort[2])
	}
}

func TestNoteQuerySkip(t *testing.T) {
	q := NoteQuery{Page: 3, PageSize: 20}.Normalize()
	if got := q.Skip(); got != 40 {
		t.Errorf("skip = %d, want 40", got)
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 20, 5},
		{101, 20, 6},
	}

	for _, tt := range tests {
		if got := PageCount(tt.total, tt.pageSize); got != tt.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tt.total, tt.pageSize, got, tt.want)
		}
	}
}
