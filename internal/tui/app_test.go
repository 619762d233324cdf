package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hoardapp/hoard/internal/gate"
	"github.com/hoardapp/hoard/internal/model"
	"github.com/hoardapp/hoard/internal/tui"
	"gotest.tools/v3/assert"
)

func stringPtr(s string) *string { return &s }

func pressKey(t *testing.T, app tui.App, r rune) tui.App {
	t.Helper()
	updated, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return updated.(tui.App)
}

func pressEnter(t *testing.T, app tui.App) tui.App {
	t.Helper()
	updated, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(tui.App)
}

func typeString(t *testing.T, app tui.App, s string) tui.App {
	t.Helper()
	for _, r := range s {
		app = pressKey(t, app, r)
	}
	return app
}

func testStore() *model.Store {
	return &model.Store{
		Folders: []model.Folder{
			{ID: "dev", Name: "Development", ParentID: nil},
			{ID: "react", Name: "React", ParentID: stringPtr("dev")},
		},
		Bookmarks: []model.Bookmark{
			{ID: "b1", Title: "Go Blog", URL: "https://go.dev/blog", FolderID: stringPtr("dev")},
			{ID: "b2", Title: "React Docs", URL: "https://react.dev", FolderID: stringPtr("react")},
			{ID: "b3", Title: "News", URL: "https://news.example.com", Favorite: true, Tags: []string{"reading"}},
		},
	}
}

func TestApp_StartsWithAllScope(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Store: testStore()})

	assert.Equal(t, app.Scope().Kind, model.ScopeAll)
	assert.Equal(t, len(app.Visible()), 3)
}

func TestApp_SelectFolderScope(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Store: testStore()})

	// Sidebar order: All, Favorites, Development, React, #reading.
	// Move down twice to reach Development and select it.
	app = pressKey(t, app, 'j')
	app = pressKey(t, app, 'j')
	app = pressEnter(t, app)

	assert.Equal(t, app.Scope().Kind, model.ScopeFolder)
	assert.Equal(t, app.Scope().FolderID, "dev")

	// Direct contents only: b1
	assert.Equal(t, len(app.Visible()), 1)
	assert.Equal(t, app.Visible()[0].ID, "b1")
}

func TestApp_FlattenToggleIncludesSubfolders(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Store: testStore()})

	app = pressKey(t, app, 'j')
	app = pressKey(t, app, 'j')
	app = pressEnter(t, app)
	assert.Equal(t, len(app.Visible()), 1)

	app = pressKey(t, app, 'f')
	assert.Assert(t, app.FlattenSubfolders())
	assert.Equal(t, len(app.Visible()), 2) // b1 + b2 from React

	app = pressKey(t, app, 'f')
	assert.Equal(t, len(app.Visible()), 1)
}

func TestApp_SelectFavoritesScope(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Store: testStore()})

	app = pressKey(t, app, 'j')
	app = pressEnter(t, app)

	assert.Equal(t, app.Scope().Kind, model.ScopeFavorites)
	assert.Equal(t, len(app.Visible()), 1)
	assert.Equal(t, app.Visible()[0].ID, "b3")
}

func TestApp_SearchFiltersList(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Store: testStore()})

	app = pressKey(t, app, '/')
	app = typeString(t, app, "react")

	assert.Equal(t, len(app.Visible()), 1)
	assert.Equal(t, app.Visible()[0].ID, "b2")

	// Enter commits the query, list stays filtered
	app = pressEnter(t, app)
	assert.Equal(t, len(app.Visible()), 1)
}

func TestApp_SearchEscClearsQuery(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Store: testStore()})

	app = pressKey(t, app, '/')
	app = typeString(t, app, "react")
	assert.Equal(t, len(app.Visible()), 1)

	updated, _ := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = updated.(tui.App)

	assert.Equal(t, len(app.Visible()), 3)
}

func TestApp_AddFolderThroughModal(t *testing.T) {
	store := testStore()
	app := tui.NewApp(tui.AppParams{Store: store})

	app = pressKey(t, app, 'A')
	app = typeString(t, app, "Reading List")
	app = pressEnter(t, app)

	assert.Equal(t, len(store.Folders), 3)
	assert.Equal(t, store.Folders[2].Name, "Reading List")
}

func TestApp_ToggleFavorite(t *testing.T) {
	store := testStore()
	app := tui.NewApp(tui.AppParams{Store: store})

	app = pressKey(t, app, 'l') // focus list, cursor on b1
	app = pressKey(t, app, '*')

	assert.Assert(t, store.GetBookmarkByID("b1").Favorite)
}

func TestApp_DeleteBookmark(t *testing.T) {
	store := testStore()
	app := tui.NewApp(tui.AppParams{Store: store})

	app = pressKey(t, app, 'l')
	app = pressKey(t, app, 'd')

	assert.Equal(t, len(store.Bookmarks), 2)
	assert.Assert(t, store.GetBookmarkByID("b1") == nil)
}

func TestApp_UnauthenticatedMutationSetsStatus(t *testing.T) {
	store := testStore()
	g := gate.New(store, func() bool { return false })
	app := tui.NewApp(tui.AppParams{Store: store, Gate: g})

	app = pressKey(t, app, 'l')
	app = pressKey(t, app, 'd')

	assert.Equal(t, len(store.Bookmarks), 3)
	assert.Assert(t, app.Status() != "")
}

func TestApp_UnauthenticatedNavigationStillWorks(t *testing.T) {
	store := testStore()
	g := gate.New(store, func() bool { return false })
	app := tui.NewApp(tui.AppParams{Store: store, Gate: g})

	app = pressKey(t, app, 'j')
	app = pressEnter(t, app)

	assert.Equal(t, app.Scope().Kind, model.ScopeFavorites)
	assert.Equal(t, app.Status(), "")
}

func TestApp_GGMovesToTop(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Store: testStore()})

	app = pressKey(t, app, 'j')
	app = pressKey(t, app, 'j')
	app = pressKey(t, app, 'G')
	app = pressKey(t, app, 'g')
	app = pressKey(t, app, 'g')
	app = pressEnter(t, app)

	assert.Equal(t, app.Scope().Kind, model.ScopeAll)
}

func TestApp_ViewRenders(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Store: testStore()}).WithDimensions(100, 30)

	out := app.View()
	assert.Assert(t, out != "")
}
