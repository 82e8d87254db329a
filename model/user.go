package model

import "time"

type UserPreferences struct {
	Theme              string      `bson:"theme" json:"theme"`
	DefaultNoteColor   string      `bson:"default_note_color" json:"default_note_color"`
	DefaultContentType ContentType `bson:"default_content_type" json:"default_content_type"`
	PageSize           int         `bson:"page_size" json:"page_size"`
	EmailNotifications bool        `bson:"email_notifications" json:"email_notifications"`
}

type User struct {
	UserID           string          `bson:"user_id" json:"user_id"`
	Name             string          `bson:"name" json:"name"`
	Email            string          `bson:"email" json:"email"`
	Password         string          `bson:"password" json:"-"` // argon2id salt$hash
	Bio              string          `bson:"bio,omitempty" json:"bio,omitempty"`
	Avatar           string          `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Preferences      UserPreferences `bson:"preferences" json:"preferences"`
	TwoFactorSecret  string          `bson:"two_factor_secret,omitempty" json:"-"`
	TwoFactorEnabled bool            `bson:"two_factor_enabled" json:"two_factor_enabled"`
	// Lockout counters are stored but not enforced by any request path.
	FailedLoginAttempts int        `bson:"failed_login_attempts" json:"-"`
	LockedUntil         *time.Time `bson:"locked_until,omitempty" json:"-"`
	CreatedAt           time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time  `bson:"updated_at" json:"updated_at"`
}

func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Theme:              "system",
		DefaultNoteColor:   "#ffffff",
		DefaultContentType: ContentTypeMarkdown,
		PageSize:           20,
		EmailNotifications: true,
	}
}
