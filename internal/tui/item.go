package tui

import "github.com/hoardapp/hoard/internal/model"

// SidebarEntry is one selectable row in the scope sidebar: a fixed
// scope (All/Favorites), a folder, or a tag.
type SidebarEntry struct {
	Scope model.Scope
	Label string
	Depth int // folder nesting depth for indentation
	Count int // bookmark count badge (folders only)
}

// IsFolder returns true if this entry selects a folder scope.
func (e SidebarEntry) IsFolder() bool {
	return e.Scope.Kind == model.ScopeFolder
}
