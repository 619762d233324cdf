package layout

// Config holds all layout-related configuration values.
type Config struct {
	Pane  PaneConfig
	Input InputConfig
	Text  TextConfig
}

// PaneConfig holds pane dimension configuration.
type PaneConfig struct {
	// HeightReduction is subtracted from terminal height for pane content.
	// Accounts for: app padding (1) + header (1) + pane borders (2) + status bar (2) = 6
	HeightReduction int

	// MinHeight is the minimum pane height.
	MinHeight int

	// SidebarWidthPercent is the share of terminal width for the scope sidebar.
	SidebarWidthPercent int

	// MinSidebarWidth is the minimum sidebar width.
	MinSidebarWidth int

	// WidthOffset is subtracted before splitting the width between panes.
	// Accounts for borders and spacing.
	WidthOffset int

	// ContentPadding is subtracted from pane width for item rendering.
	ContentPadding int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	// Character limits
	TitleCharLimit  int
	URLCharLimit    int
	TagsCharLimit   int
	SearchCharLimit int

	// Display widths
	StandardWidth int
	SearchWidth   int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() Config {
	return Config{
		Pane: PaneConfig{
			HeightReduction:     6,
			MinHeight:           5,
			SidebarWidthPercent: 30,
			MinSidebarWidth:     20,
			WidthOffset:         6,
			ContentPadding:      4,
		},
		Input: InputConfig{
			TitleCharLimit:  100,
			URLCharLimit:    500,
			TagsCharLimit:   200,
			SearchCharLimit: 100,
			StandardWidth:   40,
			SearchWidth:     30,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
