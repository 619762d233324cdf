package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hoardapp/hoard/internal/exporter"
	"github.com/hoardapp/hoard/internal/gate"
	"github.com/hoardapp/hoard/internal/importer"
	"github.com/hoardapp/hoard/internal/model"
	"github.com/hoardapp/hoard/internal/picker"
	"github.com/hoardapp/hoard/internal/search"
	"github.com/hoardapp/hoard/internal/storage"
	"github.com/hoardapp/hoard/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "login":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: hoard login <key>\n")
				os.Exit(1)
			}
			runLogin(os.Args[2])
			return
		case "logout":
			runLogout()
			return
		case "import":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: hoard import <file.html>\n")
				os.Exit(1)
			}
			runImport(os.Args[2])
			return
		case "export":
			var outputPath string
			if len(os.Args) >= 3 {
				outputPath = os.Args[2]
			}
			runExport(outputPath)
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickSearch(query)
			return
		}
	}

	// No args - run full TUI
	runTUI()
}

func printHelp() {
	help := `hoard - bookmark organizer

Usage:
  hoard                 Open interactive TUI
  hoard <query>         Quick search -> select -> open
  hoard login <key>     Store API key, unlock editing
  hoard logout          Forget API key
  hoard import <file>   Import bookmarks from HTML
  hoard export [path]   Export bookmarks to HTML
  hoard help            Show this help

TUI Keybindings:
  Navigation:
    j/k         Move down/up
    h/l         Focus sidebar/list
    gg/G        Jump to top/bottom
    Enter       Select scope (sidebar)

  View:
    /           Search title, URL and tags
    f           Toggle showing subfolder bookmarks

  Editing (requires login):
    a/A         Add bookmark/folder
    e           Edit selected item
    d           Delete bookmark
    *           Toggle favorite

  Other:
    Y           Copy URL to clipboard
    q           Quit

Data Storage:
  ~/.config/hoard/bookmarks.json (or bookmarks.db)
  ~/.config/hoard/config.json
`
	fmt.Print(help)
}

// loadStore opens the configured backend and loads the store.
func loadStore() (storage.Storage, *model.Store) {
	backend, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}

	store, err := backend.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bookmarks: %v\n", err)
		os.Exit(1)
	}

	return backend, store
}

// loadConfig reads the app config, exiting on error.
func loadConfig() (string, *storage.Config) {
	path, err := storage.DefaultConfigFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}

	config, err := storage.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	return path, config
}

// runTUI runs the full interactive TUI.
func runTUI() {
	backend, store := loadStore()
	configPath, config := loadConfig()

	apiKey := config.APIKey
	g := gate.New(store, func() bool { return apiKey != "" })

	app := tui.NewApp(tui.AppParams{
		Store:             store,
		Gate:              g,
		FlattenSubfolders: config.FlattenSubfolders,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}

	finalApp := finalModel.(tui.App)
	if err := backend.Save(finalApp.Store()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving bookmarks: %v\n", err)
		os.Exit(1)
	}

	// Persist the flatten toggle if it changed during the session
	if finalApp.FlattenSubfolders() != config.FlattenSubfolders {
		config.FlattenSubfolders = finalApp.FlattenSubfolders()
		if err := storage.SaveConfig(configPath, config); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		}
	}
}

// runLogin stores the API key in the config, unlocking mutations.
func runLogin(key string) {
	configPath, config := loadConfig()

	config.APIKey = key
	if err := storage.SaveConfig(configPath, config); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Logged in. Editing unlocked.")
}

// runLogout clears the stored API key.
func runLogout() {
	configPath, config := loadConfig()

	config.APIKey = ""
	if err := storage.SaveConfig(configPath, config); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Logged out. Session is read-only.")
}

// runQuickSearch performs a fuzzy search and opens the selected bookmark.
func runQuickSearch(query string) {
	_, store := loadStore()

	results := search.FuzzySearchBookmarks(store, query)

	if len(results) == 0 {
		fmt.Printf("No bookmarks found for '%s'\n", query)
		os.Exit(0)
	}

	var selected *model.Bookmark

	if len(results) == 1 {
		selected = results[0].Bookmark
		fmt.Printf("Opening: %s\n", selected.Title)
	} else {
		p := picker.New(results, query)
		program := tea.NewProgram(p)
		finalModel, err := program.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			os.Exit(1)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			os.Exit(0)
		}
		selected = finalPicker.SelectedBookmark()
	}

	if selected == nil {
		os.Exit(0)
	}

	openURL(selected.URL)
}

// openURL opens a URL in the default browser.
func openURL(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	if cmd != nil {
		_ = cmd.Start()
	}
}

// runImport handles the import subcommand.
func runImport(filePath string) {
	backend, store := loadStore()

	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	folders, bookmarks, err := importer.ParseHTMLBookmarks(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	added, skipped := store.ImportMerge(folders, bookmarks)

	if err := backend.Save(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving bookmarks: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d bookmarks, %d folders", added, len(folders))
	if skipped > 0 {
		fmt.Printf(" (%d duplicates skipped)", skipped)
	}
	fmt.Println()
}

// runExport handles the export subcommand.
func runExport(outputPath string) {
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting default export path: %v\n", err)
			os.Exit(1)
		}
	}

	_, store := loadStore()

	html := exporter.ExportHTML(store)

	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d bookmarks, %d folders to %s\n",
		len(store.Bookmarks), len(store.Folders), outputPath)
}
