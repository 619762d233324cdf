package layout

// PaneSizes holds the computed dimensions for the two-pane layout.
type PaneSizes struct {
	SidebarWidth int
	ListWidth    int
	Height       int
}

// ComputePanes splits the terminal into the scope sidebar and the
// bookmark list pane.
func ComputePanes(width, height int, cfg PaneConfig) PaneSizes {
	usable := width - cfg.WidthOffset
	if usable < 0 {
		usable = 0
	}

	sidebar := usable * cfg.SidebarWidthPercent / 100
	if sidebar < cfg.MinSidebarWidth {
		sidebar = cfg.MinSidebarWidth
	}

	list := usable - sidebar
	if list < 0 {
		list = 0
	}

	h := height - cfg.HeightReduction
	if h < cfg.MinHeight {
		h = cfg.MinHeight
	}

	return PaneSizes{
		SidebarWidth: sidebar,
		ListWidth:    list,
		Height:       h,
	}
}
