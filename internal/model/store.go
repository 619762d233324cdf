package model

import (
	"sort"
	"strings"
)

// Store holds all bookmarks and folders. It is the only owner of the
// two collections: every write goes through a Store method, and each
// write bumps the generation counter so memoized readers can tell that
// their snapshot is stale.
type Store struct {
	Folders   []Folder   `json:"folders"`
	Bookmarks []Bookmark `json:"bookmarks"`

	generation uint64
}

// NewStore creates an empty Store with initialized slices.
func NewStore() *Store {
	return &Store{
		Folders:   []Folder{},
		Bookmarks: []Bookmark{},
	}
}

// Generation returns a counter that changes on every mutation.
func (s *Store) Generation() uint64 {
	return s.generation
}

// touch marks the store as mutated.
func (s *Store) touch() {
	s.generation++
}

// CreateFolder adds a folder with the given name under parentID and
// returns it. A name that trims to empty is silently ignored and nil is
// returned; callers are expected to pre-validate.
func (s *Store) CreateFolder(name string, parentID *string) *Folder {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	folder := NewFolder(NewFolderParams{Name: name, ParentID: parentID})
	s.Folders = append(s.Folders, folder)
	s.touch()
	return &s.Folders[len(s.Folders)-1]
}

// RenameFolder sets a new name on the folder with the given ID.
// No-op if the name trims to empty or the folder is unknown.
func (s *Store) RenameFolder(id, newName string) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return
	}

	for i := range s.Folders {
		if s.Folders[i].ID == id {
			s.Folders[i].Name = newName
			s.touch()
			return
		}
	}
}

// AddBookmark creates a bookmark from params, filed according to scope,
// and returns it.
func (s *Store) AddBookmark(params NewBookmarkParams, scope Scope) *Bookmark {
	bookmark := NewBookmark(params, scope)
	s.Bookmarks = append(s.Bookmarks, bookmark)
	s.touch()
	return &s.Bookmarks[len(s.Bookmarks)-1]
}

// UpdateBookmark replaces the bookmark matching updated.ID in place.
// No-op if no bookmark has that ID.
func (s *Store) UpdateBookmark(updated Bookmark) {
	for i := range s.Bookmarks {
		if s.Bookmarks[i].ID == updated.ID {
			s.Bookmarks[i] = updated
			s.touch()
			return
		}
	}
}

// DeleteBookmark removes the bookmark with the given ID.
func (s *Store) DeleteBookmark(id string) {
	for i := range s.Bookmarks {
		if s.Bookmarks[i].ID == id {
			s.Bookmarks = append(s.Bookmarks[:i], s.Bookmarks[i+1:]...)
			s.touch()
			return
		}
	}
}

// ToggleFavorite flips the favorite flag on the bookmark with the given
// ID. No-op if the bookmark is unknown.
func (s *Store) ToggleFavorite(id string) {
	for i := range s.Bookmarks {
		if s.Bookmarks[i].ID == id {
			s.Bookmarks[i].Favorite = !s.Bookmarks[i].Favorite
			s.touch()
			return
		}
	}
}

// GetFoldersInFolder returns folders with the given parent ID, in store
// order. Pass nil for root level folders.
func (s *Store) GetFoldersInFolder(parentID *string) []Folder {
	var result []Folder
	for _, f := range s.Folders {
		if ptrEqual(f.ParentID, parentID) {
			result = append(result, f)
		}
	}
	return result
}

// GetBookmarksInFolder returns bookmarks in the given folder.
// Pass nil for unfiled bookmarks.
func (s *Store) GetBookmarksInFolder(folderID *string) []Bookmark {
	var result []Bookmark
	for _, b := range s.Bookmarks {
		if ptrEqual(b.FolderID, folderID) {
			result = append(result, b)
		}
	}
	return result
}

// GetFolderByID finds a folder by ID, returns nil if not found.
func (s *Store) GetFolderByID(id string) *Folder {
	for i := range s.Folders {
		if s.Folders[i].ID == id {
			return &s.Folders[i]
		}
	}
	return nil
}

// GetBookmarkByID finds a bookmark by ID, returns nil if not found.
func (s *Store) GetBookmarkByID(id string) *Bookmark {
	for i := range s.Bookmarks {
		if s.Bookmarks[i].ID == id {
			return &s.Bookmarks[i]
		}
	}
	return nil
}

// GetFavoriteBookmarks returns all favorited bookmarks in store order.
func (s *Store) GetFavoriteBookmarks() []Bookmark {
	var result []Bookmark
	for _, b := range s.Bookmarks {
		if b.Favorite {
			result = append(result, b)
		}
	}
	return result
}

// AllTags returns the distinct tags across all bookmarks, sorted.
func (s *Store) AllTags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, b := range s.Bookmarks {
		for _, t := range b.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// HasBookmarkURL reports whether any bookmark already has the given URL.
func (s *Store) HasBookmarkURL(url string) bool {
	for _, b := range s.Bookmarks {
		if b.URL == url {
			return true
		}
	}
	return false
}

// ImportMerge merges imported folders and bookmarks into the store.
// Folders with the same name at the same level are reused rather than
// duplicated; bookmarks whose URL already exists are skipped.
// Returns (added, skipped) bookmark counts.
func (s *Store) ImportMerge(folders []Folder, bookmarks []Bookmark) (added, skipped int) {
	// Map imported folder IDs to final folder IDs (existing or new).
	idMap := make(map[string]string)

	// Folders arrive parent-before-child, so parents resolve in one pass.
	for _, f := range folders {
		parentID := f.ParentID
		if parentID != nil {
			if mapped, ok := idMap[*parentID]; ok {
				parentID = &mapped
			}
		}

		if existing := s.findFolderByName(f.Name, parentID); existing != nil {
			idMap[f.ID] = existing.ID
			continue
		}

		merged := f
		merged.ParentID = parentID
		s.Folders = append(s.Folders, merged)
		idMap[f.ID] = merged.ID
	}

	for _, b := range bookmarks {
		if s.HasBookmarkURL(b.URL) {
			skipped++
			continue
		}

		if b.FolderID != nil {
			if mapped, ok := idMap[*b.FolderID]; ok {
				b.FolderID = &mapped
			}
		}
		s.Bookmarks = append(s.Bookmarks, b)
		added++
	}

	s.touch()
	return added, skipped
}

// findFolderByName finds a folder by name under the given parent.
func (s *Store) findFolderByName(name string, parentID *string) *Folder {
	for i := range s.Folders {
		if s.Folders[i].Name == name && ptrEqual(s.Folders[i].ParentID, parentID) {
			return &s.Folders[i]
		}
	}
	return nil
}

// ptrEqual compares two string pointers for equality.
func ptrEqual(a, b *string) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}
