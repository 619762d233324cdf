package model

// ScopeKind enumerates the ways the visible set can be restricted.
type ScopeKind int

const (
	ScopeAll ScopeKind = iota
	ScopeFavorites
	ScopeFolder
	ScopeTag
)

// Scope is the current folder-or-tag selection. Folder and tag selection
// are mutually exclusive by construction: a Scope is exactly one variant.
type Scope struct {
	Kind     ScopeKind
	FolderID string // set when Kind == ScopeFolder
	Tag      string // set when Kind == ScopeTag
}

// AllScope selects every bookmark.
func AllScope() Scope {
	return Scope{Kind: ScopeAll}
}

// FavoritesScope selects favorited bookmarks.
func FavoritesScope() Scope {
	return Scope{Kind: ScopeFavorites}
}

// FolderScope selects bookmarks in the given folder.
func FolderScope(folderID string) Scope {
	return Scope{Kind: ScopeFolder, FolderID: folderID}
}

// TagScope selects bookmarks carrying the given tag.
func TagScope(tag string) Scope {
	return Scope{Kind: ScopeTag, Tag: tag}
}
