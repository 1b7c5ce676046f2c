package tui

// LayoutCache stores layout dimensions derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int
	PanelW int
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	appH, appV := m.styles.AppStyle.GetFrameSize()
	innerW := max(width-appH, 0)
	innerH := max(height-appV, 0)

	return LayoutCache{
		InnerW: innerW,
		InnerH: innerH,
		PanelW: min(innerW, maxPanelWidth),
	}
}
