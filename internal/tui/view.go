package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hoardapp/hoard/internal/model"
	"github.com/hoardapp/hoard/internal/tui/layout"
)

// View implements tea.Model.
func (a App) View() string {
	if a.mode == modeInput {
		return a.renderModal()
	}

	sizes := layout.ComputePanes(a.width, a.height, a.layout.Pane)

	sidebar := a.renderSidebar(sizes.SidebarWidth, sizes.Height)
	list := a.renderList(sizes.ListWidth, sizes.Height)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, list)

	header := a.renderHeader()
	statusBar := a.renderStatusBar()

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, header, panes, statusBar),
	)

	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderHeader shows the current scope path and an active search query.
func (a App) renderHeader() string {
	availableWidth := a.width - 4
	path, _ := layout.TruncateText(a.resolver.PathName(a.scope.Scope), availableWidth, a.layout.Text)

	header := a.styles.Title.Render(path)
	if a.mode == modeSearch {
		header += "  /" + a.searchInput.View()
	} else if a.scope.Query != "" {
		header += "  " + a.styles.Tag.Render("/"+a.scope.Query)
	}
	if a.cfg.FlattenSubfolders {
		header += "  " + a.styles.Count.Render("[flat]")
	}
	return header
}

// renderSidebar renders the scope pane: fixed scopes, folder tree, tags.
func (a App) renderSidebar(width, height int) string {
	var content strings.Builder

	itemWidth := width - a.layout.Pane.ContentPadding

	for i, entry := range a.sidebar {
		if i >= height {
			break
		}

		label := strings.Repeat("  ", entry.Depth) + entry.Label
		if entry.IsFolder() {
			label += "/"
		}

		var badge string
		if entry.Count > 0 {
			badge = " " + strconv.Itoa(entry.Count)
		}

		line, _ := layout.TruncateText(label, itemWidth-len(badge), a.layout.Text)

		isCursor := a.focus == focusSidebar && i == a.sidebarCursor
		isActive := entry.Scope == a.scope.Scope

		switch {
		case isCursor:
			for layout.VisibleLength(line)+len(badge) < itemWidth {
				line += " "
			}
			content.WriteString(a.styles.ItemSelected.Render(line + badge))
		case isActive:
			content.WriteString(a.styles.ScopeActive.Render(line) + a.styles.Count.Render(badge))
		default:
			content.WriteString(a.styles.Scope.Render(line) + a.styles.Count.Render(badge))
		}
		content.WriteString("\n")
	}

	style := a.styles.Pane
	if a.focus == focusSidebar {
		style = a.styles.PaneActive
	}
	return style.
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

// renderList renders the visible bookmarks for the current selection.
func (a App) renderList(width, height int) string {
	var content strings.Builder

	itemWidth := width - a.layout.Pane.ContentPadding

	if len(a.visible) == 0 {
		if a.scope.Query != "" {
			content.WriteString(a.styles.Empty.Render("(no matches)"))
		} else {
			content.WriteString(a.styles.Empty.Render("(empty)"))
		}
	} else {
		// Two lines per bookmark: title, then URL and tags
		visibleRows := height / 2
		offset := 0
		if a.listCursor >= visibleRows {
			offset = a.listCursor - visibleRows + 1
		}

		for i, b := range a.visible {
			if i < offset {
				continue
			}
			if i >= offset+visibleRows {
				break
			}
			isCursor := a.focus == focusList && i == a.listCursor
			content.WriteString(a.renderBookmark(b, isCursor, itemWidth))
		}
	}

	style := a.styles.Pane
	if a.focus == focusList {
		style = a.styles.PaneActive
	}
	return style.
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

// renderBookmark renders one bookmark as a title line plus a detail line.
func (a App) renderBookmark(b model.Bookmark, isCursor bool, maxWidth int) string {
	title := b.Title
	if b.Favorite {
		title = "* " + title
	}
	titleLine, _ := layout.TruncateText(title, maxWidth, a.layout.Text)

	detail := b.URL
	if len(b.Tags) > 0 {
		tags := make([]string, len(b.Tags))
		for i, tag := range b.Tags {
			tags[i] = "#" + tag
		}
		detail += "  " + strings.Join(tags, " ")
	}
	detailLine, _ := layout.TruncateText(detail, maxWidth, a.layout.Text)

	var out strings.Builder
	if isCursor {
		for len(titleLine) < maxWidth {
			titleLine += " "
		}
		out.WriteString(a.styles.ItemSelected.Render(titleLine))
	} else if b.Favorite {
		out.WriteString(a.styles.Favorite.Render(titleLine))
	} else {
		out.WriteString(a.styles.Item.Render(titleLine))
	}
	out.WriteString("\n")
	out.WriteString(a.styles.URL.Render(" " + detailLine))
	out.WriteString("\n")
	return out.String()
}

// renderStatusBar shows the status message and key hints.
func (a App) renderStatusBar() string {
	var status string
	if a.status != "" {
		if a.status == authRequiredMsg {
			status = a.styles.Warning.Render(a.status)
		} else {
			status = a.styles.Status.Render(a.status)
		}
	} else {
		count := strconv.Itoa(len(a.visible))
		suffix := " bookmarks"
		if len(a.visible) == 1 {
			suffix = " bookmark"
		}
		status = a.styles.Status.Render(count + suffix)
	}

	hints := a.styles.Help.Render(
		"j/k move  enter select  / search  f flatten  a add  e edit  d delete  * favorite  Y yank  q quit",
	)

	return lipgloss.JoinVertical(lipgloss.Left, status, hints)
}

// renderModal renders the add/edit dialog centered on screen.
func (a App) renderModal() string {
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(accent).
		Padding(1, 2)

	var content strings.Builder

	switch a.inputKind {
	case inputAddFolder:
		content.WriteString(a.styles.Title.Render("Add Folder"))
		content.WriteString("\n\n")
		content.WriteString("Name:\n")
		content.WriteString(a.titleInput.View())

	case inputRenameFolder:
		content.WriteString(a.styles.Title.Render("Rename Folder"))
		content.WriteString("\n\n")
		content.WriteString("Name:\n")
		content.WriteString(a.titleInput.View())

	case inputAddBookmark, inputEditBookmark:
		if a.inputKind == inputAddBookmark {
			content.WriteString(a.styles.Title.Render("Add Bookmark"))
		} else {
			content.WriteString(a.styles.Title.Render("Edit Bookmark"))
		}
		content.WriteString("\n\n")
		content.WriteString("Title:\n")
		content.WriteString(a.titleInput.View())
		content.WriteString("\n\n")
		content.WriteString("URL:\n")
		content.WriteString(a.urlInput.View())
		content.WriteString("\n\n")
		content.WriteString("Tags (comma-separated):\n")
		content.WriteString(a.tagsInput.View())
	}

	content.WriteString("\n\n")
	content.WriteString(a.styles.Help.Render("[enter] save  [esc] cancel"))

	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Center,
		lipgloss.Center,
		modalStyle.Render(content.String()),
	)
}
