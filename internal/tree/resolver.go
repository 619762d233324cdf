// Package tree answers hierarchy questions about the folder forest:
// children, descendant sets, display paths, and aggregate bookmark
// counts. All answers are derived from the store; the resolver keeps a
// children index memoized per store generation so repeated queries in
// one render stay cheap and any mutation invalidates it.
package tree

import (
	"strings"

	"github.com/hoardapp/hoard/internal/model"
)

// Resolver computes derived views of the folder hierarchy.
type Resolver struct {
	store *model.Store

	// Memoized per store generation.
	generation uint64
	children   map[string][]model.Folder // parent ID -> children, store order
	byID       map[string]model.Folder
	indexed    bool
}

// NewResolver creates a Resolver over the given store.
func NewResolver(store *model.Store) *Resolver {
	return &Resolver{store: store}
}

// refresh rebuilds the children index if the store has mutated since
// the last query.
func (r *Resolver) refresh() {
	if r.indexed && r.generation == r.store.Generation() {
		return
	}

	r.children = make(map[string][]model.Folder)
	r.byID = make(map[string]model.Folder, len(r.store.Folders))

	for _, f := range r.store.Folders {
		r.byID[f.ID] = f
		parent := ""
		if f.ParentID != nil {
			parent = *f.ParentID
		}
		r.children[parent] = append(r.children[parent], f)
	}

	r.generation = r.store.Generation()
	r.indexed = true
}

// ChildrenOf returns the folders whose parent is folderID, in store
// order. An unknown ID yields an empty slice.
func (r *Resolver) ChildrenOf(folderID string) []model.Folder {
	r.refresh()
	return r.children[folderID]
}

// RootFolders returns the folders with no parent, in store order.
func (r *Resolver) RootFolders() []model.Folder {
	r.refresh()
	return r.children[""]
}

// DescendantIDs returns the IDs of every folder transitively reachable
// below folderID. The set never contains folderID itself. A visited set
// guards against malformed (cyclic) input; on a well-formed forest it
// changes nothing.
func (r *Resolver) DescendantIDs(folderID string) map[string]bool {
	r.refresh()

	result := make(map[string]bool)
	visited := map[string]bool{folderID: true}

	stack := []string{folderID}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, child := range r.children[current] {
			if visited[child.ID] {
				continue
			}
			visited[child.ID] = true
			result[child.ID] = true
			stack = append(stack, child.ID)
		}
	}

	return result
}

// PathName returns a display name for a scope. Folder scopes produce
// the " > "-joined chain of names from the root ancestor down to the
// folder; a folder whose parent is missing is treated as a root.
func (r *Resolver) PathName(scope model.Scope) string {
	switch scope.Kind {
	case model.ScopeFavorites:
		return "Favorites"
	case model.ScopeTag:
		return scope.Tag
	case model.ScopeFolder:
		return r.folderPath(scope.FolderID)
	default:
		return "All Bookmarks"
	}
}

// folderPath walks parent pointers from the folder up to its root
// ancestor and joins the names root-first.
func (r *Resolver) folderPath(folderID string) string {
	r.refresh()

	folder, ok := r.byID[folderID]
	if !ok {
		return "Unknown Folder"
	}

	names := []string{folder.Name}
	visited := map[string]bool{folder.ID: true}

	for folder.ParentID != nil {
		parent, ok := r.byID[*folder.ParentID]
		if !ok || visited[parent.ID] {
			// Dangling parent (or malformed cycle): treat as root.
			break
		}
		visited[parent.ID] = true
		names = append([]string{parent.Name}, names...)
		folder = parent
	}

	return strings.Join(names, " > ")
}

// BookmarkCount returns how many bookmarks live in the folder or any of
// its descendants. Used for sidebar badges.
func (r *Resolver) BookmarkCount(folderID string) int {
	r.refresh()

	ids := r.DescendantIDs(folderID)
	ids[folderID] = true

	count := 0
	for _, b := range r.store.Bookmarks {
		if b.FolderID != nil && ids[*b.FolderID] {
			count++
		}
	}
	return count
}
