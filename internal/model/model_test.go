package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hoardapp/hoard/internal/model"
)

func stringPtr(s string) *string { return &s }

func TestBookmark_JSONSerialization(t *testing.T) {
	tests := []struct {
		name     string
		bookmark model.Bookmark
	}{
		{
			name: "bookmark with all fields",
			bookmark: model.Bookmark{
				ID:          "b1",
				Title:       "TanStack Router",
				URL:         "https://tanstack.com/router",
				Description: "Type-safe routing",
				Thumbnail:   "https://tanstack.com/og.png",
				Tags:        []string{"react", "routing"},
				FolderID:    stringPtr("f1"),
				Favorite:    true,
				CreatedAt:   time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
			},
		},
		{
			name: "unfiled bookmark",
			bookmark: model.Bookmark{
				ID:        "b2",
				Title:     "Hacker News",
				URL:       "https://news.ycombinator.com",
				Tags:      []string{},
				FolderID:  nil,
				CreatedAt: time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.bookmark)
			if err != nil {
				t.Fatalf("failed to marshal: %v", err)
			}

			var got model.Bookmark
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("failed to unmarshal: %v", err)
			}

			if got.ID != tt.bookmark.ID {
				t.Errorf("ID mismatch: got %q, want %q", got.ID, tt.bookmark.ID)
			}
			if got.URL != tt.bookmark.URL {
				t.Errorf("URL mismatch: got %q, want %q", got.URL, tt.bookmark.URL)
			}
			if got.Favorite != tt.bookmark.Favorite {
				t.Errorf("Favorite mismatch: got %v, want %v", got.Favorite, tt.bookmark.Favorite)
			}
		})
	}
}

func TestStore_CreateFolder(t *testing.T) {
	store := model.NewStore()

	folder := store.CreateFolder("Development", nil)
	if folder == nil {
		t.Fatal("expected folder to be created")
	}
	if folder.Name != "Development" {
		t.Errorf("expected name 'Development', got %q", folder.Name)
	}
	if folder.ID == "" {
		t.Error("expected generated ID")
	}
	if len(store.Folders) != 1 {
		t.Errorf("expected 1 folder, got %d", len(store.Folders))
	}

	// Nested folder
	child := store.CreateFolder("React", &folder.ID)
	if child == nil {
		t.Fatal("expected nested folder to be created")
	}
	if child.ParentID == nil || *child.ParentID != folder.ID {
		t.Error("expected nested folder to reference parent")
	}
}

func TestStore_CreateFolder_TrimsName(t *testing.T) {
	store := model.NewStore()

	folder := store.CreateFolder("  Tools  ", nil)
	if folder == nil {
		t.Fatal("expected folder to be created")
	}
	if folder.Name != "Tools" {
		t.Errorf("expected trimmed name 'Tools', got %q", folder.Name)
	}
}

func TestStore_CreateFolder_BlankNameIsNoop(t *testing.T) {
	store := model.NewStore()

	for _, name := range []string{"", "   ", "\t\n"} {
		folder := store.CreateFolder(name, nil)
		if folder != nil {
			t.Errorf("expected nil for blank name %q", name)
		}
	}

	if len(store.Folders) != 0 {
		t.Errorf("expected 0 folders, got %d", len(store.Folders))
	}
}

func TestStore_RenameFolder(t *testing.T) {
	store := model.NewStore()
	folder := store.CreateFolder("Old Name", nil)

	store.RenameFolder(folder.ID, "New Name")

	if store.Folders[0].Name != "New Name" {
		t.Errorf("expected 'New Name', got %q", store.Folders[0].Name)
	}

	// Unknown ID is a no-op
	store.RenameFolder("nonexistent", "Whatever")
	if len(store.Folders) != 1 || store.Folders[0].Name != "New Name" {
		t.Error("rename of unknown folder should not change anything")
	}

	// Blank name is a no-op
	store.RenameFolder(folder.ID, "   ")
	if store.Folders[0].Name != "New Name" {
		t.Error("blank rename should not change the name")
	}
}

func TestStore_AddBookmark_ScopeMapping(t *testing.T) {
	tests := []struct {
		name       string
		scope      model.Scope
		wantFolder *string
	}{
		{name: "all scope is unfiled", scope: model.AllScope(), wantFolder: nil},
		{name: "favorites scope is unfiled", scope: model.FavoritesScope(), wantFolder: nil},
		{name: "tag scope is unfiled", scope: model.TagScope("go"), wantFolder: nil},
		{name: "folder scope files in folder", scope: model.FolderScope("f1"), wantFolder: stringPtr("f1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := model.NewStore()
			b := store.AddBookmark(model.NewBookmarkParams{
				Title: "New Bookmark",
				URL:   "https://example.com",
			}, tt.scope)

			if tt.wantFolder == nil {
				if b.FolderID != nil {
					t.Errorf("expected unfiled bookmark, got folder %q", *b.FolderID)
				}
			} else {
				if b.FolderID == nil || *b.FolderID != *tt.wantFolder {
					t.Errorf("expected folder %q, got %v", *tt.wantFolder, b.FolderID)
				}
			}

			if b.CreatedAt.IsZero() {
				t.Error("expected CreatedAt to be set")
			}
			if b.Tags == nil {
				t.Error("expected tags slice to be initialized")
			}
		})
	}
}

func TestStore_UpdateBookmark(t *testing.T) {
	store := model.NewStore()
	b := store.AddBookmark(model.NewBookmarkParams{Title: "Old", URL: "https://old.com"}, model.AllScope())

	updated := *b
	updated.Title = "New"
	updated.Tags = []string{"updated"}
	store.UpdateBookmark(updated)

	got := store.GetBookmarkByID(b.ID)
	if got.Title != "New" {
		t.Errorf("expected title 'New', got %q", got.Title)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "updated" {
		t.Errorf("expected tags to be replaced, got %v", got.Tags)
	}

	// Unknown ID is a no-op
	store.UpdateBookmark(model.Bookmark{ID: "nonexistent", Title: "Ghost"})
	if len(store.Bookmarks) != 1 {
		t.Errorf("expected 1 bookmark, got %d", len(store.Bookmarks))
	}
}

func TestStore_DeleteBookmark(t *testing.T) {
	store := model.NewStore()
	b1 := store.AddBookmark(model.NewBookmarkParams{Title: "One", URL: "https://one.com"}, model.AllScope())
	b2 := store.AddBookmark(model.NewBookmarkParams{Title: "Two", URL: "https://two.com"}, model.AllScope())

	store.DeleteBookmark(b1.ID)

	if len(store.Bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(store.Bookmarks))
	}
	if store.Bookmarks[0].ID != b2.ID {
		t.Error("wrong bookmark deleted")
	}

	// Unknown ID is a no-op
	store.DeleteBookmark("nonexistent")
	if len(store.Bookmarks) != 1 {
		t.Errorf("expected 1 bookmark, got %d", len(store.Bookmarks))
	}
}

func TestStore_ToggleFavorite(t *testing.T) {
	store := model.NewStore()
	b := store.AddBookmark(model.NewBookmarkParams{Title: "Test", URL: "https://test.com"}, model.AllScope())

	store.ToggleFavorite(b.ID)
	if !store.Bookmarks[0].Favorite {
		t.Error("expected bookmark to be favorited after toggle")
	}

	store.ToggleFavorite(b.ID)
	if store.Bookmarks[0].Favorite {
		t.Error("expected bookmark to be unfavorited after second toggle")
	}

	// Unknown ID is a no-op
	gen := store.Generation()
	store.ToggleFavorite("nonexistent")
	if store.Generation() != gen {
		t.Error("toggle of unknown bookmark should not mutate the store")
	}
}

func TestStore_GenerationBumpsOnMutation(t *testing.T) {
	store := model.NewStore()
	gen := store.Generation()

	folder := store.CreateFolder("Development", nil)
	if store.Generation() == gen {
		t.Error("CreateFolder should bump generation")
	}

	gen = store.Generation()
	store.RenameFolder(folder.ID, "Dev")
	if store.Generation() == gen {
		t.Error("RenameFolder should bump generation")
	}

	// Rejected validation must not bump
	gen = store.Generation()
	store.CreateFolder("   ", nil)
	if store.Generation() != gen {
		t.Error("blank CreateFolder should not bump generation")
	}
}

func TestStore_GetFoldersInFolder(t *testing.T) {
	store := model.Store{
		Folders: []model.Folder{
			{ID: "f1", Name: "Development", ParentID: nil},
			{ID: "f2", Name: "React", ParentID: stringPtr("f1")},
			{ID: "f3", Name: "Design", ParentID: nil},
			{ID: "f4", Name: "Node", ParentID: stringPtr("f1")},
		},
		Bookmarks: []model.Bookmark{},
	}

	rootFolders := store.GetFoldersInFolder(nil)
	if len(rootFolders) != 2 {
		t.Errorf("expected 2 root folders, got %d", len(rootFolders))
	}

	f1ID := "f1"
	nested := store.GetFoldersInFolder(&f1ID)
	if len(nested) != 2 {
		t.Errorf("expected 2 nested folders in f1, got %d", len(nested))
	}
}

func TestStore_AllTags(t *testing.T) {
	store := model.Store{
		Bookmarks: []model.Bookmark{
			{ID: "b1", Title: "One", URL: "https://one.com", Tags: []string{"go", "web"}},
			{ID: "b2", Title: "Two", URL: "https://two.com", Tags: []string{"web", "css"}},
			{ID: "b3", Title: "Three", URL: "https://three.com", Tags: []string{}},
		},
	}

	tags := store.AllTags()
	want := []string{"css", "go", "web"}
	if len(tags) != len(want) {
		t.Fatalf("expected %d tags, got %d", len(want), len(tags))
	}
	for i, tag := range want {
		if tags[i] != tag {
			t.Errorf("expected tag %q at %d, got %q", tag, i, tags[i])
		}
	}
}

func TestStore_ImportMerge_SkipsDuplicateURLs(t *testing.T) {
	store := model.Store{
		Folders: []model.Folder{},
		Bookmarks: []model.Bookmark{
			{ID: "existing", Title: "Existing", URL: "https://example.com", FolderID: nil},
		},
	}

	newBookmarks := []model.Bookmark{
		{ID: "new1", Title: "Duplicate", URL: "https://example.com", FolderID: nil},
		{ID: "new2", Title: "New Site", URL: "https://newsite.com", FolderID: nil},
	}

	added, skipped := store.ImportMerge(nil, newBookmarks)

	if added != 1 {
		t.Errorf("expected 1 added, got %d", added)
	}
	if skipped != 1 {
		t.Errorf("expected 1 skipped, got %d", skipped)
	}
	if len(store.Bookmarks) != 2 {
		t.Errorf("expected 2 bookmarks, got %d", len(store.Bookmarks))
	}
}

func TestStore_ImportMerge_ReusesFolderByName(t *testing.T) {
	existingFolderID := "existing-folder"
	store := model.Store{
		Folders: []model.Folder{
			{ID: existingFolderID, Name: "Development", ParentID: nil},
		},
		Bookmarks: []model.Bookmark{},
	}

	newFolders := []model.Folder{
		{ID: "imported-folder", Name: "Development", ParentID: nil},
	}
	newBookmarks := []model.Bookmark{
		{ID: "b1", Title: "New Bookmark", URL: "https://new.com", FolderID: stringPtr("imported-folder")},
	}

	store.ImportMerge(newFolders, newBookmarks)

	if len(store.Folders) != 1 {
		t.Errorf("expected 1 folder (reused), got %d", len(store.Folders))
	}
	if len(store.Bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(store.Bookmarks))
	}
	if store.Bookmarks[0].FolderID == nil || *store.Bookmarks[0].FolderID != existingFolderID {
		t.Errorf("bookmark should be remapped to existing folder %s, got %v", existingFolderID, store.Bookmarks[0].FolderID)
	}
}
