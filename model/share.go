package model

import "time"

type SharePermission string

const (
	PermissionRead SharePermission = "read"
	PermissionEdit SharePermission = "edit"
)

func (p SharePermission) Valid() bool {
	return p == PermissionRead || p == PermissionEdit
}

// SharedNote grants visibility of a note either to a known user
// (SharedWith set) or to anonymous holders of ShareToken. Exactly one
// of the two identifies the grantee.
type SharedNote struct {
	ID         string          `bson:"_id,omitempty" json:"id"`
	NoteID     string          `bson:"note_id" json:"note_id"`
	UserID     string          `bson:"user_id" json:"user_id"`
	SharedWith string          `bson:"shared_with,omitempty" json:"shared_with,omitempty"`
	ShareToken string          `bson:"share_token,omitempty" json:"share_token,omitempty"`
	Permission SharePermission `bson:"permission" json:"permission"`
	ExpiresAt  *time.Time      `bson:"expires_at,omitempty" json:"expires_at,omitempty"`
	Views      int64           `bson:"views" json:"views"`
	CreatedAt  time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time       `bson:"updated_at" json:"updated_at"`
}
