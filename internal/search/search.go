// Package search provides fuzzy matching for the quick-open command
// line flow. The in-app visible list uses the substring pipeline in
// internal/view instead; fuzzy ranking is only for picking a single
// bookmark fast.
package search

import (
	"github.com/hoardapp/hoard/internal/model"
	"github.com/sahilm/fuzzy"
)

// Result represents a fuzzy search match.
type Result struct {
	Bookmark       *model.Bookmark
	MatchedIndexes []int
	Score          int
}

// bookmarkTitles implements fuzzy.Source for bookmark slice.
type bookmarkTitles []*model.Bookmark

func (bt bookmarkTitles) String(i int) string {
	return bt[i].Title
}

func (bt bookmarkTitles) Len() int {
	return len(bt)
}

// FuzzySearchBookmarks searches all bookmarks by title using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearchBookmarks(store *model.Store, query string) []Result {
	if query == "" {
		return nil
	}

	bookmarks := make(bookmarkTitles, len(store.Bookmarks))
	for i := range store.Bookmarks {
		bookmarks[i] = &store.Bookmarks[i]
	}

	matches := fuzzy.FindFrom(query, bookmarks)

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Bookmark:       bookmarks[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
