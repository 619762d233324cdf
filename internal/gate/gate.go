// Package gate wraps the store's mutations with an authorization check.
// Rejection is a signal, not an error: callers use it to prompt for
// credentials, and the store is left untouched.
package gate

import "github.com/hoardapp/hoard/internal/model"

// AuthFunc reports whether the current caller may mutate the store.
type AuthFunc func() bool

// Gate guards every store mutation behind a single capability check.
type Gate struct {
	store *model.Store
	auth  AuthFunc
}

// New creates a Gate over the store using the given auth predicate.
func New(store *model.Store, auth AuthFunc) *Gate {
	return &Gate{store: store, auth: auth}
}

// Authenticated reports whether mutations would currently be allowed.
func (g *Gate) Authenticated() bool {
	return g.auth()
}

// CreateFolder creates a folder if authenticated. The second return is
// false when the mutation was rejected. Note the folder may still be
// nil with ok=true when the store ignored a blank name.
func (g *Gate) CreateFolder(name string, parentID *string) (*model.Folder, bool) {
	if !g.auth() {
		return nil, false
	}
	return g.store.CreateFolder(name, parentID), true
}

// RenameFolder renames a folder if authenticated.
func (g *Gate) RenameFolder(id, newName string) bool {
	if !g.auth() {
		return false
	}
	g.store.RenameFolder(id, newName)
	return true
}

// AddBookmark adds a bookmark if authenticated.
func (g *Gate) AddBookmark(params model.NewBookmarkParams, scope model.Scope) (*model.Bookmark, bool) {
	if !g.auth() {
		return nil, false
	}
	return g.store.AddBookmark(params, scope), true
}

// UpdateBookmark replaces a bookmark if authenticated.
func (g *Gate) UpdateBookmark(updated model.Bookmark) bool {
	if !g.auth() {
		return false
	}
	g.store.UpdateBookmark(updated)
	return true
}

// DeleteBookmark removes a bookmark if authenticated.
func (g *Gate) DeleteBookmark(id string) bool {
	if !g.auth() {
		return false
	}
	g.store.DeleteBookmark(id)
	return true
}

// ToggleFavorite flips a bookmark's favorite flag if authenticated.
func (g *Gate) ToggleFavorite(id string) bool {
	if !g.auth() {
		return false
	}
	g.store.ToggleFavorite(id)
	return true
}
