// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/showcase/catalog"
	"github.com/cybrota/showcase/filter"
)

// Focus targets, cycled with tab
const (
	FocusSearch = iota
	FocusProjects
	FocusDetail
	focusCount
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	searchInput    textinput.Model
	projectList    list.Model
	detailViewport viewport.Model
	spinner        spinner.Model

	// Data
	items       []catalog.Item
	counts      catalog.Counts
	engine      *filter.Engine
	updates     chan filter.Result
	result      filter.Result
	detailCache *cache.Cache
	config      *Config

	// State
	focusIndex int
	lastQuery  string
	status     string

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// resultMsg tells the model the engine changed state. The model always re-reads
// the engine, so a dropped notification never leaves a stale view behind.
type resultMsg struct{}

type statusMsg string

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	CategoryActive lipgloss.Style
	CategoryIdle   lipgloss.Style
	Stats          lipgloss.Style
	EmptyTitle     lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
}

// NewStyles creates the styles from the detected colour scheme
func NewStyles(scheme *ColorScheme) *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		CategoryActive: lipgloss.NewStyle().
			Foreground(scheme.Text).
			Background(scheme.Accent).
			Padding(0, 1).
			Bold(true),
		CategoryIdle: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Padding(0, 1),
		Stats: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Italic(true),
		EmptyTitle: lipgloss.NewStyle().
			Foreground(scheme.Warning).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
	}
}

// projectItem represents a project in the results list
type projectItem struct {
	item catalog.Item
}

func (i projectItem) FilterValue() string { return i.item.Title }
func (i projectItem) Title() string       { return i.item.Title }
func (i projectItem) Description() string { return strings.Join(i.item.Tags(), " · ") }

// InitialModel creates the initial model. The engine is owned by the caller,
// which must Close it once the program exits.
func InitialModel(items []catalog.Item, engine *filter.Engine, dc *cache.Cache, config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Search projects by title, tech, or category..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	projectList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	projectList.SetShowTitle(false)
	projectList.SetShowHelp(false)
	projectList.SetShowStatusBar(false)
	// Filtering is done by the engine, not by the list
	projectList.SetFilteringEnabled(false)

	detailViewport := viewport.New(0, 0)
	detailViewport.SetContent("Select a project to see its details...")

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	var renderer *glamour.TermRenderer
	if config.UI.RenderMarkdown {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(72),
		)
	}

	updates := make(chan filter.Result, 1)
	engine.Subscribe(func(r filter.Result) {
		select {
		case updates <- r:
		default:
		}
	})

	m := Model{
		searchInput:     ti,
		projectList:     projectList,
		detailViewport:  detailViewport,
		spinner:         sp,
		items:           items,
		counts:          catalog.Tally(items),
		engine:          engine,
		updates:         updates,
		result:          engine.Result(),
		detailCache:     dc,
		config:          config,
		focusIndex:      FocusSearch,
		styles:          NewStyles(GetColorScheme()),
		glamourRenderer: renderer,
	}
	m.syncResults()

	return m
}

// waitForResult blocks until the engine reports a transition
func waitForResult(updates <-chan filter.Result) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return nil
		}
		return resultMsg{}
	}
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, waitForResult(m.updates))
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		m.updateDetail()

	case resultMsg:
		m.result = m.engine.Result()
		if !m.result.Computing {
			m.syncResults()
		}
		return m, waitForResult(m.updates)

	case statusMsg:
		m.status = string(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.focusIndex = (m.focusIndex + 1) % focusCount
		if m.focusIndex == FocusSearch {
			m.searchInput.Focus()
		} else {
			m.searchInput.Blur()
		}
		return m, nil
	case "ctrl+t":
		m.selectCategory(m.engine.State().Category.Next())
		return m, nil
	case "ctrl+b":
		m.selectCategory(m.engine.State().Category.Prev())
		return m, nil
	case "ctrl+r":
		m.clearFilters()
		return m, nil
	}

	switch m.focusIndex {
	case FocusSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
		if query := m.searchInput.Value(); query != m.lastQuery {
			m.lastQuery = query
			m.engine.SetQuery(query)
			m.result = m.engine.Result()
		}
		return m, cmd

	case FocusProjects:
		if msg.Type == tea.KeyEnter {
			return m, m.copySelectedLink()
		}
		if n, ok := badgeIndex(msg); ok {
			m.selectBadge(n)
			return m, nil
		}
		before := m.projectList.Index()
		m.projectList, cmd = m.projectList.Update(msg)
		if m.projectList.Index() != before {
			m.updateDetail()
		}
		return m, cmd

	default:
		m.detailViewport, cmd = m.detailViewport.Update(msg)
		return m, cmd
	}
}

// badgeIndex maps the keys 1-9 to a zero-based badge position
func badgeIndex(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}

// selectCategory forwards a category button press to the engine
func (m *Model) selectCategory(c catalog.Category) {
	log.Printf("category selected: %s", c)
	m.status = ""
	m.engine.SetCategory(c)
	m.result = m.engine.Result()
}

// selectBadge applies the n-th category badge of the highlighted project
func (m *Model) selectBadge(n int) {
	it, ok := m.selectedItem()
	if !ok || n >= len(it.Categories) {
		return
	}
	m.selectCategory(it.Categories[n])
}

func (m *Model) clearFilters() {
	log.Printf("filters cleared")
	m.status = ""
	m.searchInput.SetValue("")
	m.lastQuery = ""
	m.engine.Clear()
	m.result = m.engine.Result()
}

func (m Model) selectedItem() (catalog.Item, bool) {
	sel, ok := m.projectList.SelectedItem().(projectItem)
	if !ok {
		return catalog.Item{}, false
	}
	return sel.item, true
}

func (m Model) copySelectedLink() tea.Cmd {
	it, ok := m.selectedItem()
	if !ok || it.Link == "" {
		return nil
	}
	link := it.Link
	return func() tea.Msg {
		if err := clipboard.WriteAll(link); err != nil {
			log.Printf("clipboard: %v", err)
			return statusMsg("Failed to copy link: " + err.Error())
		}
		return statusMsg("📋 Copied " + link)
	}
}

// syncResults pushes the settled result into the list and detail pane
func (m *Model) syncResults() {
	listItems := make([]list.Item, len(m.result.Items))
	for i, it := range m.result.Items {
		listItems[i] = projectItem{item: it}
	}
	m.projectList.SetItems(listItems)
	m.projectList.ResetSelected()
	m.updateDetail()
}

// updateDetail renders the highlighted project into the detail viewport
func (m *Model) updateDetail() {
	it, ok := m.selectedItem()
	if !ok {
		m.detailViewport.SetContent("No project selected.")
		return
	}

	width := m.detailViewport.Width
	if cached := GetDetail(m.detailCache, it.Title, width); cached != "" {
		m.detailViewport.SetContent(cached)
		return
	}

	content := itemMarkdown(it)
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(content); err == nil {
			content = rendered
		} else {
			log.Printf("render %q: %v", it.Title, err)
		}
	}
	CacheDetail(m.detailCache, it.Title, width, content)
	m.detailViewport.SetContent(content)
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	bodyHeight := m.bodyHeight()
	listWidth := (m.width * 4 / 10) - 1
	detailWidth := m.width - listWidth - 3

	m.searchInput.Width = m.width - 6
	m.projectList.SetSize(listWidth-2, bodyHeight-2)
	m.detailViewport.Width = detailWidth - 2
	m.detailViewport.Height = bodyHeight - 2

	if m.config.UI.RenderMarkdown && detailWidth > 10 {
		if renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(detailWidth-6),
		); err == nil {
			m.glamourRenderer = renderer
		}
	}
}

// bodyHeight is what remains below the search box, category row and stats line
func (m Model) bodyHeight() int {
	return m.height - 12
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 16 {
		return "Terminal too small. Please resize your terminal."
	}

	sections := []string{m.renderSearch(), m.renderCategories()}
	if stats, ok := filterStats(len(m.items), len(m.result.Items), m.engine.State()); ok {
		sections = append(sections, m.styles.Stats.Render("  "+stats))
	} else {
		sections = append(sections, "")
	}
	sections = append(sections, m.renderBody(), m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderSearch() string {
	style := m.styles.BorderBlurred
	title := " 🔍 Search Projects "
	if m.focusIndex == FocusSearch {
		style = m.styles.BorderFocused
		title = " 🔍 Search Projects (Active) "
	}

	return style.
		Width(m.width - 2).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(title),
			m.searchInput.View(),
		))
}

func (m Model) renderCategories() string {
	selected := m.engine.State().Category

	buttons := make([]string, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		label := categoryLabel(c, m.counts)
		if c == selected {
			buttons = append(buttons, m.styles.CategoryActive.Render(label))
		} else {
			buttons = append(buttons, m.styles.CategoryIdle.Render(label))
		}
	}
	return lipgloss.NewStyle().Padding(1, 1, 0, 1).Render(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
}

func (m Model) renderBody() string {
	bodyHeight := m.bodyHeight()

	switch Present(m.result) {
	case PresentLoading:
		return lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center,
			fmt.Sprintf("%s Filtering projects...", m.spinner.View()))

	case PresentEmpty:
		return lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center,
				m.styles.EmptyTitle.Render("🔎 No projects found"),
				"Try adjusting your search or filter to find what you're looking for.",
				"",
				m.styles.HelpKey.Render("ctrl+r")+" "+m.styles.HelpDesc.Render("clear filters"),
			))
	}

	listWidth := (m.width * 4 / 10) - 1
	detailWidth := m.width - listWidth - 3

	listStyle, listTitle := m.styles.BorderBlurred, " 📋 Projects "
	if m.focusIndex == FocusProjects {
		listStyle, listTitle = m.styles.BorderFocused, " 📋 Projects (Active) "
	}
	detailStyle, detailTitle := m.styles.BorderBlurred, " 📄 Details "
	if m.focusIndex == FocusDetail {
		detailStyle, detailTitle = m.styles.BorderFocused, " 📄 Details (Active) "
	}

	listBox := listStyle.
		Width(listWidth).
		Height(bodyHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(listTitle),
			m.projectList.View(),
		))

	detailBox := detailStyle.
		Width(detailWidth).
		Height(bodyHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(detailTitle),
			m.detailViewport.View(),
		))

	return lipgloss.JoinHorizontal(lipgloss.Top, listBox, detailBox)
}

// renderHelp renders the key help footer
func (m Model) renderHelp() string {
	keys := []string{"tab", "ctrl+t/ctrl+b", "1-9", "ctrl+r", "enter", "esc"}
	descs := []string{"switch focus", "next/prev category", "pick badge", "clear filters", "copy link", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	footer := strings.Join(helpEntries, " • ")
	if m.status != "" {
		footer = m.styles.SuccessMessage.Render(m.status) + "  " + footer
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(footer)
}

// runBubbleTeaApp starts the Bubble Tea application and tears the engine down
// once the program exits.
func runBubbleTeaApp(items []catalog.Item, config *Config) error {
	InitializeColors()

	if config.UI.LogFile != "" {
		f, err := tea.LogToFile(config.UI.LogFile, "showcase")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	engine := filter.New(items, filter.WithDelay(config.Debounce()))
	defer engine.Close()

	model := InitialModel(items, engine, NewDetailCache(), config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
