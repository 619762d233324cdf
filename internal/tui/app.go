package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hoardapp/hoard/internal/gate"
	"github.com/hoardapp/hoard/internal/model"
	"github.com/hoardapp/hoard/internal/tree"
	"github.com/hoardapp/hoard/internal/tui/layout"
	"github.com/hoardapp/hoard/internal/view"
)

// mode is the current input mode of the app.
type mode int

const (
	modeBrowse mode = iota
	modeSearch      // typing in the search input
	modeInput       // typing in an add/edit modal
)

// focus is the pane that receives navigation keys.
type focus int

const (
	focusSidebar focus = iota
	focusList
)

// inputKind distinguishes what the input modal is editing.
type inputKind int

const (
	inputAddFolder inputKind = iota
	inputRenameFolder
	inputAddBookmark
	inputEditBookmark
)

const authRequiredMsg = "Authentication required - run 'hoard login <key>'"

// App is the main bubbletea model for the bookmark organizer.
type App struct {
	store    *model.Store
	gate     *gate.Gate
	resolver *tree.Resolver
	keys     KeyMap
	styles   Styles
	layout   layout.Config

	// Selection state
	scope view.Selection
	cfg   view.Config

	// Pane state
	focus         focus
	sidebar       []SidebarEntry
	sidebarCursor int
	visible       []model.Bookmark
	listCursor    int

	// Mode state
	mode        mode
	searchInput textinput.Model

	// Input modal state
	inputKind  inputKind
	titleInput textinput.Model
	urlInput   textinput.Model
	tagsInput  textinput.Model
	inputFocus int    // which modal input has focus
	editItemID string // folder or bookmark being edited

	status string

	// For gg command
	lastKeyWasG bool

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Store             *model.Store
	Gate              *gate.Gate
	FlattenSubfolders bool
	Keys              *KeyMap        // optional, uses default if nil
	Styles            *Styles        // optional, uses default if nil
	Layout            *layout.Config // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	cfg := layout.DefaultConfig()
	if params.Layout != nil {
		cfg = *params.Layout
	}

	g := params.Gate
	if g == nil {
		g = gate.New(params.Store, func() bool { return true })
	}

	searchInput := textinput.New()
	searchInput.Placeholder = "Search..."
	searchInput.CharLimit = cfg.Input.SearchCharLimit
	searchInput.Width = cfg.Input.SearchWidth

	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.CharLimit = cfg.Input.TitleCharLimit
	titleInput.Width = cfg.Input.StandardWidth

	urlInput := textinput.New()
	urlInput.Placeholder = "URL"
	urlInput.CharLimit = cfg.Input.URLCharLimit
	urlInput.Width = cfg.Input.StandardWidth

	tagsInput := textinput.New()
	tagsInput.Placeholder = "tag1, tag2, tag3"
	tagsInput.CharLimit = cfg.Input.TagsCharLimit
	tagsInput.Width = cfg.Input.StandardWidth

	app := App{
		store:       params.Store,
		gate:        g,
		resolver:    tree.NewResolver(params.Store),
		keys:        keys,
		styles:      styles,
		layout:      cfg,
		scope:       view.Selection{Scope: model.AllScope()},
		cfg:         view.Config{FlattenSubfolders: params.FlattenSubfolders},
		focus:       focusSidebar,
		searchInput: searchInput,
		titleInput:  titleInput,
		urlInput:    urlInput,
		tagsInput:   tagsInput,
		width:       80,
		height:      24,
	}

	app.refresh()
	return app
}

// refresh rebuilds the sidebar and the visible bookmark list from the
// store. Called after every mutation and selection change.
func (a *App) refresh() {
	a.rebuildSidebar()
	a.visible = view.VisibleBookmarks(a.store.Bookmarks, a.scope, a.cfg, a.resolver)
	if a.listCursor >= len(a.visible) {
		a.listCursor = len(a.visible) - 1
	}
	if a.listCursor < 0 {
		a.listCursor = 0
	}
}

// rebuildSidebar lists the fixed scopes, the folder tree depth-first,
// and the distinct tags.
func (a *App) rebuildSidebar() {
	entries := []SidebarEntry{
		{Scope: model.AllScope(), Label: "All Bookmarks", Count: len(a.store.Bookmarks)},
		{Scope: model.FavoritesScope(), Label: "Favorites", Count: len(a.store.GetFavoriteBookmarks())},
	}

	var walk func(parentID string, depth int)
	walk = func(parentID string, depth int) {
		for _, f := range a.resolver.ChildrenOf(parentID) {
			entries = append(entries, SidebarEntry{
				Scope: model.FolderScope(f.ID),
				Label: f.Name,
				Depth: depth,
				Count: a.resolver.BookmarkCount(f.ID),
			})
			walk(f.ID, depth+1)
		}
	}
	walk("", 0)

	for _, tag := range a.store.AllTags() {
		entries = append(entries, SidebarEntry{
			Scope: model.TagScope(tag),
			Label: "#" + tag,
		})
	}

	a.sidebar = entries
	if a.sidebarCursor >= len(a.sidebar) {
		a.sidebarCursor = len(a.sidebar) - 1
	}
	if a.sidebarCursor < 0 {
		a.sidebarCursor = 0
	}
}

// Store returns the underlying store, for saving on exit.
func (a App) Store() *model.Store {
	return a.store
}

// Scope returns the current selection.
func (a App) Scope() model.Scope {
	return a.scope.Scope
}

// Visible returns the currently visible bookmarks.
func (a App) Visible() []model.Bookmark {
	return a.visible
}

// FlattenSubfolders returns the current flatten toggle value, so the
// caller can persist it on exit.
func (a App) FlattenSubfolders() bool {
	return a.cfg.FlattenSubfolders
}

// Status returns the current status line text.
func (a App) Status() string {
	return a.status
}

// WithDimensions returns a copy with fixed dimensions (for tests).
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case modeSearch:
			return a.updateSearch(msg)
		case modeInput:
			return a.updateInput(msg)
		default:
			return a.updateBrowse(msg)
		}
	}

	return a, nil
}

// updateBrowse handles keys in normal browse mode.
func (a App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.cursorToTop()
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		a.cursorDown()

	case key.Matches(msg, a.keys.Up):
		a.cursorUp()

	case key.Matches(msg, a.keys.Bottom):
		a.cursorToBottom()

	case key.Matches(msg, a.keys.Left):
		a.focus = focusSidebar

	case key.Matches(msg, a.keys.Right):
		a.focus = focusList

	case key.Matches(msg, a.keys.Select):
		if a.focus == focusSidebar && a.sidebarCursor < len(a.sidebar) {
			a.scope.Scope = a.sidebar[a.sidebarCursor].Scope
			a.listCursor = 0
			a.status = ""
			a.refresh()
		}

	case key.Matches(msg, a.keys.Search):
		a.mode = modeSearch
		a.searchInput.SetValue(a.scope.Query)
		a.searchInput.Focus()
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Flatten):
		a.cfg.FlattenSubfolders = !a.cfg.FlattenSubfolders
		a.refresh()

	case key.Matches(msg, a.keys.Favorite):
		if b := a.selectedBookmark(); b != nil {
			if !a.gate.ToggleFavorite(b.ID) {
				a.status = authRequiredMsg
			} else {
				a.refresh()
			}
		}

	case key.Matches(msg, a.keys.YankURL):
		if b := a.selectedBookmark(); b != nil {
			if err := clipboard.WriteAll(b.URL); err == nil {
				a.status = "Copied " + b.URL
			}
		}

	case key.Matches(msg, a.keys.AddFolder):
		a.openInput(inputAddFolder, nil)
		return a, textinput.Blink

	case key.Matches(msg, a.keys.AddBookmark):
		a.openInput(inputAddBookmark, nil)
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Edit):
		if a.focus == focusSidebar {
			if e := a.selectedSidebarEntry(); e != nil && e.IsFolder() {
				folder := a.store.GetFolderByID(e.Scope.FolderID)
				if folder != nil {
					a.openInput(inputRenameFolder, folder)
					return a, textinput.Blink
				}
			}
		} else if b := a.selectedBookmark(); b != nil {
			a.openInput(inputEditBookmark, b)
			return a, textinput.Blink
		}

	case key.Matches(msg, a.keys.Delete):
		if b := a.selectedBookmark(); b != nil {
			if !a.gate.DeleteBookmark(b.ID) {
				a.status = authRequiredMsg
			} else {
				a.status = "Deleted " + b.Title
				a.refresh()
			}
		}
	}

	return a, nil
}

// updateSearch handles keys while the search input is focused.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.mode = modeBrowse
		a.searchInput.Blur()
		a.scope.Query = ""
		a.searchInput.Reset()
		a.refresh()
		return a, nil

	case tea.KeyEnter:
		a.mode = modeBrowse
		a.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	a.scope.Query = a.searchInput.Value()
	a.refresh()
	return a, cmd
}

// openInput prepares the input modal. For edits, item is the folder or
// bookmark being edited; for adds it is nil.
func (a *App) openInput(kind inputKind, item any) {
	a.inputKind = kind
	a.inputFocus = 0
	a.titleInput.Reset()
	a.urlInput.Reset()
	a.tagsInput.Reset()
	a.editItemID = ""

	switch kind {
	case inputRenameFolder:
		folder := item.(*model.Folder)
		a.editItemID = folder.ID
		a.titleInput.SetValue(folder.Name)
	case inputEditBookmark:
		b := item.(*model.Bookmark)
		a.editItemID = b.ID
		a.titleInput.SetValue(b.Title)
		a.urlInput.SetValue(b.URL)
		a.tagsInput.SetValue(strings.Join(b.Tags, ", "))
	}

	a.mode = modeInput
	a.titleInput.Focus()
}

// updateInput handles keys while the add/edit modal is open.
func (a App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.closeInput()
		return a, nil

	case tea.KeyTab, tea.KeyShiftTab:
		if a.inputKind == inputAddBookmark || a.inputKind == inputEditBookmark {
			a.cycleInputFocus(msg.Type == tea.KeyShiftTab)
		}
		return a, textinput.Blink

	case tea.KeyEnter:
		a.submitInput()
		return a, nil
	}

	var cmd tea.Cmd
	switch a.inputFocus {
	case 0:
		a.titleInput, cmd = a.titleInput.Update(msg)
	case 1:
		a.urlInput, cmd = a.urlInput.Update(msg)
	case 2:
		a.tagsInput, cmd = a.tagsInput.Update(msg)
	}
	return a, cmd
}

// cycleInputFocus moves focus between the bookmark modal inputs.
func (a *App) cycleInputFocus(backwards bool) {
	inputs := []*textinput.Model{&a.titleInput, &a.urlInput, &a.tagsInput}
	inputs[a.inputFocus].Blur()

	if backwards {
		a.inputFocus = (a.inputFocus + len(inputs) - 1) % len(inputs)
	} else {
		a.inputFocus = (a.inputFocus + 1) % len(inputs)
	}
	inputs[a.inputFocus].Focus()
}

// closeInput discards the modal.
func (a *App) closeInput() {
	a.mode = modeBrowse
	a.titleInput.Blur()
	a.urlInput.Blur()
	a.tagsInput.Blur()
}

// submitInput applies the modal through the mutation gate.
func (a *App) submitInput() {
	switch a.inputKind {
	case inputAddFolder:
		name := a.titleInput.Value()
		if strings.TrimSpace(name) == "" {
			// Silently ignored, matching the store's contract
			a.closeInput()
			return
		}
		parentID := a.currentFolderParent()
		if _, ok := a.gate.CreateFolder(name, parentID); !ok {
			a.status = authRequiredMsg
		}

	case inputRenameFolder:
		if !a.gate.RenameFolder(a.editItemID, a.titleInput.Value()) {
			a.status = authRequiredMsg
		}

	case inputAddBookmark:
		params := model.NewBookmarkParams{
			Title: strings.TrimSpace(a.titleInput.Value()),
			URL:   strings.TrimSpace(a.urlInput.Value()),
			Tags:  parseTagsInput(a.tagsInput.Value()),
		}
		if params.Title == "" {
			params.Title = "New Bookmark"
		}
		if _, ok := a.gate.AddBookmark(params, a.scope.Scope); !ok {
			a.status = authRequiredMsg
		}

	case inputEditBookmark:
		existing := a.store.GetBookmarkByID(a.editItemID)
		if existing != nil {
			updated := *existing
			updated.Title = strings.TrimSpace(a.titleInput.Value())
			updated.URL = strings.TrimSpace(a.urlInput.Value())
			updated.Tags = parseTagsInput(a.tagsInput.Value())
			if !a.gate.UpdateBookmark(updated) {
				a.status = authRequiredMsg
			}
		}
	}

	a.closeInput()
	a.refresh()
}

// currentFolderParent returns the selected folder as parent for a new
// folder, or nil when a non-folder scope is selected.
func (a *App) currentFolderParent() *string {
	if a.scope.Scope.Kind == model.ScopeFolder {
		id := a.scope.Scope.FolderID
		return &id
	}
	return nil
}

// parseTagsInput splits a comma-separated tags field.
func parseTagsInput(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	if tags == nil {
		return []string{}
	}
	return tags
}

// selectedBookmark returns the bookmark under the list cursor, or nil.
func (a *App) selectedBookmark() *model.Bookmark {
	if a.focus != focusList || a.listCursor >= len(a.visible) {
		return nil
	}
	return &a.visible[a.listCursor]
}

// selectedSidebarEntry returns the sidebar entry under the cursor, or nil.
func (a *App) selectedSidebarEntry() *SidebarEntry {
	if a.sidebarCursor >= len(a.sidebar) {
		return nil
	}
	return &a.sidebar[a.sidebarCursor]
}

func (a *App) cursorDown() {
	if a.focus == focusSidebar {
		if a.sidebarCursor < len(a.sidebar)-1 {
			a.sidebarCursor++
		}
	} else if len(a.visible) > 0 && a.listCursor < len(a.visible)-1 {
		a.listCursor++
	}
}

func (a *App) cursorUp() {
	if a.focus == focusSidebar {
		if a.sidebarCursor > 0 {
			a.sidebarCursor--
		}
	} else if a.listCursor > 0 {
		a.listCursor--
	}
}

func (a *App) cursorToTop() {
	if a.focus == focusSidebar {
		a.sidebarCursor = 0
	} else {
		a.listCursor = 0
	}
}

func (a *App) cursorToBottom() {
	if a.focus == focusSidebar && len(a.sidebar) > 0 {
		a.sidebarCursor = len(a.sidebar) - 1
	} else if a.focus == focusList && len(a.visible) > 0 {
		a.listCursor = len(a.visible) - 1
	}
}
