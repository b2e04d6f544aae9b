package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/docent/pkg/geometry"
	"github.com/matzehuels/docent/pkg/tour"
)

// Dashboard styles
var (
	dashHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(lipgloss.Color("24"))
	dashStatusStyle   = lipgloss.NewStyle().Foreground(colorGray).Background(lipgloss.Color("236"))
	dashTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	dashSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	dashNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	dashDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// sidebarWidth is the fixed column width of the menu, excluding the divider.
const sidebarWidth = 16

// menuItems are the sidebar entries.
var menuItems = []string{"Overview", "Services", "Deploys", "Alerts", "Settings"}

// demoServices is the static service inventory shown in the dashboard.
var demoServices = [][]string{
	{"api-gateway", "healthy", "41%", "12ms"},
	{"auth", "healthy", "18%", "4ms"},
	{"billing", "degraded", "77%", "203ms"},
	{"search", "healthy", "33%", "27ms"},
	{"worker-pool", "healthy", "52%", "9ms"},
}

// demoActivity generates n deterministic activity-feed lines.
func demoActivity(n int) []string {
	events := []string{
		"deploy finished for api-gateway",
		"autoscaled search to 4 replicas",
		"billing latency above threshold",
		"rotated credentials for auth",
		"worker-pool drained 1.2k jobs",
	}
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("%02d:%02d  %s", 9+i/60, i%60, events[i%len(events)])
	}
	return lines
}

// =============================================================================
// Region Index
// =============================================================================

// regionIndex is the mutable target lookup shared between the dashboard
// model and the tour controller. Bubble Tea delivers messages on a single
// goroutine, so plain map access is safe.
type regionIndex struct {
	rects map[string]geometry.Rect
}

func newRegionIndex() *regionIndex {
	return &regionIndex{rects: make(map[string]geometry.Rect)}
}

// Find implements tour.TargetResolver.
func (r *regionIndex) Find(name string) (geometry.Rect, bool) {
	rect, ok := r.rects[name]
	return rect, ok
}

func (r *regionIndex) replace(rects map[string]geometry.Rect) {
	r.rects = rects
}

// =============================================================================
// Dashboard Model
// =============================================================================

// dashboardModel is the demo host: a small service dashboard whose
// regions (header, menu, services, activity, status) double as tour
// targets. It owns scrolling of the main panel and republishes target
// geometry into the shared region index after every change.
type dashboardModel struct {
	tour    tour.Model
	regions *regionIndex

	width      int
	height     int
	scroll     int
	contentLen int
	menuCursor int
	autostart  bool

	services [][]string
	activity []string
}

// newDashboard creates the demo dashboard around a tour model.
func newDashboard(t tour.Model, regions *regionIndex, autostart bool) dashboardModel {
	return dashboardModel{
		tour:      t,
		regions:   regions,
		autostart: autostart,
		services:  demoServices,
		activity:  demoActivity(30),
	}
}

func (m dashboardModel) Init() tea.Cmd {
	if m.autostart {
		return func() tea.Msg { return tour.RunMsg{Run: true} }
	}
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m = m.sync()
		return m.forward(msg)

	case tour.ScrollRequestMsg:
		before := m.scroll
		m.scroll = m.scrollFor(msg.TargetTop, msg.Offset)
		m = m.sync()
		if m.scroll == before {
			// Nothing moved, so target geometry is still fresh. Staying
			// silent here is what terminates the request/scrolled loop.
			return m, nil
		}
		return m.forward(tour.ScrolledMsg{})

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.tour.WantsKey(msg) {
			return m.forward(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "t":
			return m.forward(tour.RunMsg{Run: true})
		case "up", "k":
			if m.menuCursor > 0 {
				m.menuCursor--
			}
		case "down", "j":
			if m.menuCursor < len(menuItems)-1 {
				m.menuCursor++
			}
		case "u", "pgup":
			m.scroll -= m.bodyHeight() / 2
			m = m.sync()
		case "d", "pgdown":
			m.scroll += m.bodyHeight() / 2
			m = m.sync()
		}
		return m, nil

	default:
		return m.forward(msg)
	}
}

// forward routes a message to the embedded tour model.
func (m dashboardModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.tour, cmd = m.tour.Update(msg)
	return m, cmd
}

func (m dashboardModel) View() string {
	if m.width == 0 || m.height < 4 {
		return ""
	}
	h := m.bodyHeight()
	base := strings.Join([]string{
		m.headerView(),
		lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(h), m.mainView(h)),
		m.statusView(),
	}, "\n")
	return m.tour.Overlay(base)
}

// =============================================================================
// Layout
// =============================================================================

func (m dashboardModel) bodyHeight() int { return m.height - 2 }

// mainLeft is the viewport column where panel content starts: sidebar,
// divider, one cell of margin.
func (m dashboardModel) mainLeft() int { return sidebarWidth + 2 }

func (m dashboardModel) mainWidth() int { return m.width - m.mainLeft() }

// sync recomputes scroll bounds and republishes target regions. Call it
// after any change to size, scroll, or panel content, before the change
// reaches the tour.
func (m dashboardModel) sync() dashboardModel {
	if m.width == 0 || m.height < 4 {
		return m
	}
	lines, marks := m.mainContent(m.mainWidth())
	m.contentLen = len(lines)
	if max := m.contentLen - m.bodyHeight(); m.scroll > max {
		m.scroll = max
	}
	if m.scroll < 0 {
		m.scroll = 0
	}

	rects := map[string]geometry.Rect{
		"header": {Top: 0, Left: 0, Width: m.width, Height: 1},
		"menu":   {Top: 1, Left: 0, Width: sidebarWidth, Height: m.bodyHeight()},
		"status": {Top: m.height - 1, Left: 0, Width: m.width, Height: 1},
	}
	for name, mark := range marks {
		rects[name] = geometry.Rect{
			Top:    1 + mark.Top - m.scroll,
			Left:   m.mainLeft() + mark.Left,
			Width:  mark.Width,
			Height: mark.Height,
		}
	}
	m.regions.replace(rects)
	return m
}

// scrollFor converts a tour scroll request into a new scroll offset. The
// requested offset is the gap wanted between the viewport top and the
// target; it is capped to a third of the panel so the large default still
// behaves on short terminals.
func (m dashboardModel) scrollFor(targetTop, offset int) int {
	desired := offset
	if limit := m.bodyHeight() / 3; desired > limit {
		desired = limit
	}
	return m.scroll + targetTop - 1 - desired
}

// mainContent builds the scrollable panel lines and records each tour
// target inside it as a rect in content coordinates (Top is a content
// row, Left is relative to the panel's left edge).
func (m dashboardModel) mainContent(width int) ([]string, map[string]geometry.Rect) {
	marks := make(map[string]geometry.Rect)
	var lines []string

	lines = append(lines, dashTitleStyle.Render("Services"))
	tbl := m.servicesTable()
	tblLines := strings.Split(tbl, "\n")
	marks["services"] = geometry.Rect{
		Top: len(lines), Left: 0, Width: lipgloss.Width(tbl), Height: len(tblLines),
	}
	lines = append(lines, tblLines...)

	lines = append(lines, "")
	marks["activity"] = geometry.Rect{
		Top: len(lines), Left: 0, Width: width, Height: 1 + len(m.activity),
	}
	lines = append(lines, dashTitleStyle.Render("Activity"))
	for _, ev := range m.activity {
		lines = append(lines, dashDimStyle.Render(ev))
	}

	return lines, marks
}

// =============================================================================
// Views
// =============================================================================

func (m dashboardModel) headerView() string {
	return dashHeaderStyle.Width(m.width).Render(" docent · service control plane")
}

func (m dashboardModel) sidebarView(h int) string {
	div := dashDimStyle.Render("│")
	lines := make([]string, 0, h)
	lines = append(lines, "")
	for i, item := range menuItems {
		cursor := "  "
		style := dashNormalStyle
		if i == m.menuCursor {
			cursor = "▸ "
			style = dashSelectedStyle
		}
		lines = append(lines, " "+style.Render(cursor+item))
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(sidebarWidth, lipgloss.Left, line) + div
	}
	return strings.Join(lines[:h], "\n")
}

func (m dashboardModel) mainView(h int) string {
	lines, _ := m.mainContent(m.mainWidth())
	end := m.scroll + h
	if end > len(lines) {
		end = len(lines)
	}
	visible := make([]string, 0, h)
	for _, line := range lines[m.scroll:end] {
		visible = append(visible, " "+line)
	}
	for len(visible) < h {
		visible = append(visible, "")
	}
	return strings.Join(visible, "\n")
}

func (m dashboardModel) statusView() string {
	hints := " t tour · j/k menu · d/u scroll · q quit"
	if h := m.tour.Handle(); h.Active() {
		hints = fmt.Sprintf(" step %d/%d · ←/→ navigate · s skip · esc end tour", h.CurrentStep()+1, h.StepCount())
	}
	return dashStatusStyle.Width(m.width).Render(hints)
}

func (m dashboardModel) servicesTable() string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Service", "Status", "CPU", "p99").
		Rows(m.services...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 && row >= 0 && row < len(m.services) && m.services[row][1] != "healthy" {
				return lipgloss.NewStyle().Foreground(colorYellow)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
