// Package view derives the visible bookmark subset from the current
// selection and configuration. Filtering is two pure predicates applied
// in a fixed order: scope first, then free-text search.
package view

import (
	"strings"

	"github.com/hoardapp/hoard/internal/model"
	"github.com/hoardapp/hoard/internal/tree"
)

// Selection is the ephemeral UI selection consumed by the pipeline.
type Selection struct {
	Scope model.Scope
	Query string
}

// Config holds the display configuration that affects filtering.
type Config struct {
	// FlattenSubfolders includes descendant folders' bookmarks when a
	// folder is selected, instead of only direct contents.
	FlattenSubfolders bool
}

// VisibleBookmarks returns the bookmarks matching the selection, in
// their original relative order. It never errors: an unknown folder ID
// simply matches nothing.
func VisibleBookmarks(bookmarks []model.Bookmark, sel Selection, cfg Config, resolver *tree.Resolver) []model.Bookmark {
	scoped := filterByScope(bookmarks, sel.Scope, cfg, resolver)
	return filterByQuery(scoped, sel.Query)
}

// filterByScope keeps the bookmarks inside the selected scope.
func filterByScope(bookmarks []model.Bookmark, scope model.Scope, cfg Config, resolver *tree.Resolver) []model.Bookmark {
	switch scope.Kind {
	case model.ScopeTag:
		var result []model.Bookmark
		for _, b := range bookmarks {
			if b.HasTag(scope.Tag) {
				result = append(result, b)
			}
		}
		return result

	case model.ScopeFavorites:
		var result []model.Bookmark
		for _, b := range bookmarks {
			if b.Favorite {
				result = append(result, b)
			}
		}
		return result

	case model.ScopeFolder:
		include := map[string]bool{scope.FolderID: true}
		if cfg.FlattenSubfolders {
			for id := range resolver.DescendantIDs(scope.FolderID) {
				include[id] = true
			}
		}

		var result []model.Bookmark
		for _, b := range bookmarks {
			if b.FolderID != nil && include[*b.FolderID] {
				result = append(result, b)
			}
		}
		return result

	default:
		// ScopeAll, and the zero-value no-selection default.
		return bookmarks
	}
}

// filterByQuery keeps bookmarks where the case-insensitive query is a
// substring of the title, the URL, or any tag. A query that trims to
// empty keeps everything.
func filterByQuery(bookmarks []model.Bookmark, query string) []model.Bookmark {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return bookmarks
	}

	var result []model.Bookmark
	for _, b := range bookmarks {
		if matchesQuery(b, query) {
			result = append(result, b)
		}
	}
	return result
}

// matchesQuery expects query to be lowercased already.
func matchesQuery(b model.Bookmark, query string) bool {
	if strings.Contains(strings.ToLower(b.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(b.URL), query) {
		return true
	}
	for _, tag := range b.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
