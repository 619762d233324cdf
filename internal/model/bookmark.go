package model

import "time"

// Bookmark represents a saved URL with metadata.
type Bookmark struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	Tags        []string  `json:"tags"`
	FolderID    *string   `json:"folderId"` // nil = unfiled
	Favorite    bool      `json:"favorite"`
	CreatedAt   time.Time `json:"dateAdded"`
}

// NewBookmarkParams holds parameters for creating a new Bookmark.
type NewBookmarkParams struct {
	Title       string
	URL         string
	Description string
	Thumbnail   string
	Tags        []string
	Favorite    bool
}

// NewBookmark creates a Bookmark with generated UUID and timestamp.
// The scope decides where it is filed: a folder scope files it in that
// folder, every other scope leaves it unfiled.
func NewBookmark(params NewBookmarkParams, scope Scope) Bookmark {
	tags := params.Tags
	if tags == nil {
		tags = []string{}
	}

	var folderID *string
	if scope.Kind == ScopeFolder {
		id := scope.FolderID
		folderID = &id
	}

	return Bookmark{
		ID:          GenerateUUID(),
		Title:       params.Title,
		URL:         params.URL,
		Description: params.Description,
		Thumbnail:   params.Thumbnail,
		Tags:        tags,
		FolderID:    folderID,
		Favorite:    params.Favorite,
		CreatedAt:   time.Now(),
	}
}

// HasTag reports whether the bookmark carries the given tag (exact match).
func (b Bookmark) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
