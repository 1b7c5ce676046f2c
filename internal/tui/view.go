package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/hrportal/internal/content"
	"github.com/javiermolinar/hrportal/internal/portal"
	"github.com/javiermolinar/hrportal/internal/tui/view"
)

// App padding and the rows above the tab bar.
const (
	appPadTop    = 1
	appPadLeft   = 2
	tabBarOffset = 2                // title line, blank line
	panelOffset  = tabBarOffset + 2 // tab bar, blank line

	maxPanelWidth = 76
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	return view.Render(m.screen())
}

func (m Model) screen() view.Screen {
	return view.Screen{
		Width:   m.width,
		Height:  m.height,
		App:     m.renderAppContent(),
		Dialog:  m.renderModal(),
		Overlay: m.overlay,
	}
}

func (m Model) renderAppContent() string {
	if m.layout.InnerW <= 0 || m.height <= 0 {
		return "Terminal too small"
	}

	tabs, _ := m.renderTabBar()
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		"",
		tabs,
		"",
		m.renderPanel(m.layout.PanelW),
		"",
		m.renderFooter(),
	)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) renderTitle() string {
	title := m.styles.TitleStyle.Render(m.content.Title)
	if name := m.config.Employee.Name; name != "" {
		title += m.styles.SubtitleStyle.Render("  " + name)
	}
	return title
}

// renderTabBar renders the tab labels and their spans relative to the bar.
func (m Model) renderTabBar() (string, []view.Span) {
	tabs := portal.Tabs()
	labels := make([]string, len(tabs))
	for i, t := range tabs {
		labels[i] = t.Title()
	}
	return view.RenderTabBar(
		view.TabBarModel{Labels: labels, Active: int(m.state.Tab)},
		view.TabBarStyles{
			Tab:       m.styles.TabStyle,
			ActiveTab: m.styles.TabActiveStyle,
			Gap:       m.styles.TabGapStyle,
		},
	)
}

func (m Model) panelStyles() view.PanelStyles {
	return view.PanelStyles{
		Frame:      m.styles.PanelStyle,
		Title:      m.styles.PanelTitleStyle,
		Body:       m.styles.BodyStyle,
		Caption:    m.styles.CaptionStyle,
		Score:      m.styles.ScoreStyle,
		Insight:    m.styles.InsightStyle,
		Label:      m.styles.LabelStyle,
		Button:     m.styles.ButtonStyle,
		TrendBar:   m.styles.TrendBarStyle,
		TrendTrack: m.styles.TrendTrackStyle,
	}
}

// renderPanel renders the content panel for the active tab.
func (m Model) renderPanel(width int) string {
	styles := m.panelStyles()
	innerW := view.PanelInnerWidth(width, styles)
	c := m.content
	symbol := m.config.Currency.Symbol

	var body string
	switch m.state.Tab {
	case portal.TabDashboard:
		trend := make([]view.TrendBar, len(c.Engagement.Trend))
		for i, p := range c.Engagement.Trend {
			trend[i] = view.TrendBar{Label: p.Day, Score: p.Score}
		}
		body = view.RenderDashboardBody(view.DashboardModel{
			Score:   c.Engagement.Score,
			Caption: c.Engagement.Caption,
			Trend:   trend,
		}, innerW, styles)
	case portal.TabLearning:
		bar := m.progress
		bar.Width = innerW
		body = view.RenderLearningBody(view.LearningModel{
			Course:   c.Learning.Course,
			Progress: bar.ViewAs(c.Learning.Completed),
			Percent:  content.PercentLabel(c.Learning.Completed),
			Note:     c.Learning.Note,
			Button:   panelButton(portal.TabLearning),
		}, innerW, styles)
	case portal.TabWellness:
		body = view.RenderWellnessBody(view.WellnessModel{
			Insight: c.Wellness.Insight,
			Tips:    c.Wellness.Tips,
			Button:  panelButton(portal.TabWellness),
		}, innerW, styles)
	case portal.TabCompensation:
		body = view.RenderCompensationBody(view.CompensationModel{
			Rows: [][2]string{
				{"Base Salary", c.Compensation.BaseMonthly.Format(symbol) + " / month"},
				{"Performance Bonus", c.Compensation.PerformanceBonus.Format(symbol)},
				{"Wellness Bonus", c.Compensation.WellnessBonus.Format(symbol)},
			},
			Note:   c.Compensation.Note,
			Button: panelButton(portal.TabCompensation),
		}, innerW, styles)
	}

	return view.RenderPanel(panelTitle(m.state.Tab), body, width, styles)
}

// panelButton returns the label of the button that ends a tab's panel.
func panelButton(t portal.Tab) string {
	switch t {
	case portal.TabLearning:
		return "View Modules"
	case portal.TabWellness:
		return "Request Leave"
	case portal.TabCompensation:
		return "View Payslip"
	case portal.TabDashboard:
	}
	return ""
}

func panelTitle(t portal.Tab) string {
	switch t {
	case portal.TabDashboard:
		return "Employee Engagement"
	case portal.TabLearning:
		return "Learning & Development"
	case portal.TabWellness:
		return "Wellness Insights"
	case portal.TabCompensation:
		return "Compensation & Benefits"
	}
	return t.Title()
}
