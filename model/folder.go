package model

import "time"

type Folder struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Name      string    `bson:"name" json:"name"`
	ParentID  string    `bson:"parent_id,omitempty" json:"parent_id,omitempty"`
	Icon      string    `bson:"icon,omitempty" json:"icon,omitempty"`
	Color     string    `bson:"color,omitempty" json:"color,omitempty"`
	Order     int       `bson:"order" json:"order"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
