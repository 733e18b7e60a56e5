package domain

import (
	"errors"
	"time"
)

var ErrBlogNotFound = errors.New("blog not found")
var ErrEmptyFields = errors.New("all fields are required")

// BlogPost is a published article on the public site.
//
// CreatedBy holds the username of the admin that created the post and is
// never changed afterwards, regardless of who edits the post later.
type BlogPost struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	CreatedBy string    `json:"createdBy" bson:"created_by"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}
