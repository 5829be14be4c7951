package template

import "time"

// Template is a reusable report layout. Content is an opaque structured
// blob the front-end interprets; the server only requires it to be present.
type Template struct {
	ID          string         `json:"id" bson:"_id"`
	Name        string         `json:"name" bson:"name"`
	Description string         `json:"description" bson:"description"`
	Department  string         `json:"department" bson:"department"`
	Content     map[string]any `json:"content" bson:"content"`
	IsDefault   bool           `json:"isDefault" bson:"is_default"`
	CreatedBy   string         `json:"createdBy" bson:"created_by"`
	CreatedAt   time.Time      `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" bson:"updated_at"`
}

type CreateRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Department  string         `json:"department"`
	Content     map[string]any `json:"content"`
	IsDefault   bool           `json:"isDefault"`
	CreatedBy   string         `json:"createdBy"`
}

type Update struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Department  *string         `json:"department"`
	Content     *map[string]any `json:"content"`
	IsDefault   *bool           `json:"isDefault"`
}

func (u *Update) apply(t *Template) {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Department != nil {
		t.Department = *u.Department
	}
	if u.Content != nil {
		t.Content = *u.Content
	}
	if u.IsDefault != nil {
		t.IsDefault = *u.IsDefault
	}
}
