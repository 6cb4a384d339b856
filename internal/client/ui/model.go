package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/kolab-hr/kolabctl/internal/client/confirm"
	"github.com/kolab-hr/kolabctl/internal/notify"
)

type viewState int

const (
	stateMenu viewState = iota
	stateList
	stateForm
	stateConfirm
)

type model struct {
	ctx  context.Context
	deps Deps

	state  viewState
	width  int
	height int

	screens    []*screen
	menuCursor int

	active  *screen
	search  textinput.Model
	cursor  int
	sortIdx int
	desc    bool
	listErr string

	form *formSession

	toast     string
	toastKind notify.Kind
}

func newModel(ctx context.Context, deps Deps) *model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Type to search"
	search.CharLimit = 64

	m := &model{
		ctx:     ctx,
		deps:    deps,
		state:   stateMenu,
		search:  search,
		sortIdx: -1,
	}
	m.screens = m.buildScreens()
	return m
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	var cmd tea.Cmd
	switch m.state {
	case stateMenu:
		cmd = m.updateMenu(msg)
	case stateList:
		cmd = m.updateList(msg)
	case stateForm:
		cmd = m.updateForm(msg)
	case stateConfirm:
		cmd = m.updateConfirm(msg)
	default:
		m.state = stateMenu
		cmd = m.updateMenu(msg)
	}
	return m, cmd
}

func (m *model) View() string {
	var body string
	switch m.state {
	case stateMenu:
		body = m.viewMenu()
	case stateList:
		body = m.viewList()
	case stateForm:
		body = m.viewForm()
	case stateConfirm:
		body = m.viewConfirm()
	}

	if m.toast != "" {
		style := successStyle
		if m.toastKind == notify.Error {
			style = errorStyle
		}
		body += "\n" + style.Render(m.toast)
	}
	return body
}

// drainToast shows the most recent pending notification.
func (m *model) drainToast() {
	pending := m.deps.Center.Drain()
	if len(pending) == 0 {
		return
	}
	last := pending[len(pending)-1]
	m.toast = last.Info
	m.toastKind = last.Kind
}

// ---- menu ----

func (m *model) updateMenu(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case "down", "j":
		if m.menuCursor < len(m.screens)-1 {
			m.menuCursor++
		}
	case "enter":
		return m.openScreen(m.screens[m.menuCursor])
	case "q", "esc":
		return tea.Quit
	}
	return nil
}

func (m *model) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Kolab"))
	b.WriteString("\n\n")
	for i, s := range m.screens {
		line := "  " + s.title
		if i == m.menuCursor {
			line = selectedStyle.Render("> " + s.title)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move · enter open · q quit"))
	return b.String()
}

// ---- listing ----

func (m *model) openScreen(s *screen) tea.Cmd {
	m.active = s
	m.cursor = 0
	m.sortIdx = -1
	m.desc = false
	m.listErr = ""
	m.search.SetValue("")
	m.toast = ""

	if err := s.fetch(); err != nil {
		m.listErr = "An error occurred whilst trying to connect to server."
	}
	m.state = stateList
	return m.search.Focus()
}

// reload refetches the active screen, keeping search and sort.
func (m *model) reload() {
	if m.active == nil {
		return
	}
	if err := m.active.fetch(); err != nil {
		m.listErr = "An error occurred whilst trying to connect to server."
		return
	}
	m.listErr = ""
}

func (m *model) sortKey() string {
	if m.active == nil || m.sortIdx < 0 || m.sortIdx >= len(m.active.sortKeys) {
		return ""
	}
	return m.active.sortKeys[m.sortIdx]
}

func (m *model) visibleRows() []row {
	if m.active == nil {
		return nil
	}
	return m.active.rows(m.search.Value(), m.sortKey(), m.desc)
}

func (m *model) selectedRow() (row, bool) {
	rows := m.visibleRows()
	if len(rows) == 0 || m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.cursor], true
}

func (m *model) updateList(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return cmd
	}

	switch key.String() {
	case "esc":
		m.state = stateMenu
		m.active = nil
		return nil

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return nil

	case "down":
		if m.cursor < len(m.visibleRows())-1 {
			m.cursor++
		}
		return nil

	case "enter":
		return m.openEditForm()

	case "ctrl+n":
		return m.openAddForm()

	case "ctrl+d":
		return m.stageDelete()

	case "ctrl+t":
		return m.openContacts()

	case "ctrl+o":
		// перебираем сортируемые колонки по кругу
		if len(m.active.sortKeys) > 0 {
			m.sortIdx = (m.sortIdx + 1) % len(m.active.sortKeys)
			m.desc = false
		}
		return nil

	case "ctrl+r":
		if m.sortIdx >= 0 {
			m.desc = !m.desc
		}
		return nil

	case "ctrl+l":
		m.reload()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.cursor = 0
	return cmd
}

func (m *model) viewList() string {
	if m.active == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.active.title))
	if key := m.sortKey(); key != "" {
		dir := "↑"
		if m.desc {
			dir = "↓"
		}
		b.WriteString(helpStyle.Render(fmt.Sprintf("  sorted by %s %s", key, dir)))
	}
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	if m.listErr != "" {
		b.WriteString(errorStyle.Render(m.listErr) + "\n")
	}

	b.WriteString(headerStyle.Render(strings.Join(m.active.headers, " | ")))
	b.WriteString("\n")

	rows := m.visibleRows()
	for i, r := range rows {
		line := strings.Join(r.cells, " | ")
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if len(rows) == 0 {
		b.WriteString(helpStyle.Render("no records") + "\n")
	}

	b.WriteString("\n")
	help := "enter edit · ctrl+n add · ctrl+d delete · ctrl+o sort · ctrl+r reverse · ctrl+l refresh · esc back"
	if m.active.entityType == "Company" {
		help = "ctrl+t contacts · " + help
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

// openContacts drills into the selected company's contacts.
func (m *model) openContacts() tea.Cmd {
	if m.active == nil || m.active.entityType != "Company" {
		return nil
	}
	r, ok := m.selectedRow()
	if !ok {
		return nil
	}
	companyID, err := uuid.Parse(r.id)
	if err != nil {
		return nil
	}
	return m.openScreen(m.contactScreen(companyID, r.label))
}

// ---- delete dialog ----

func (m *model) stageDelete() tea.Cmd {
	r, ok := m.selectedRow()
	if !ok || m.active == nil {
		return nil
	}

	err := m.deps.Flow.Stage(confirm.Request{
		Type:     m.active.entityType,
		Label:    r.label,
		Endpoint: m.active.endpoint(r.id),
		Refresh:  m.reload,
	})
	if err != nil {
		return nil
	}
	m.state = stateConfirm
	return nil
}

func (m *model) updateConfirm(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "y", "Y", "enter":
		m.deps.Flow.Confirm(m.ctx)
		m.drainToast()
		m.state = stateList
	case "n", "N", "esc":
		m.deps.Flow.Cancel()
		m.state = stateList
	}
	return nil
}

func (m *model) viewConfirm() string {
	req := m.deps.Flow.Pending()
	if req == nil {
		return ""
	}

	prompt := fmt.Sprintf("Delete %s %s?", req.Type, req.Label)
	if req.Label == "" {
		prompt = fmt.Sprintf("Delete this %s?", strings.ToLower(req.Type))
	}
	return dialogStyle.Render(prompt + "\n\n" + helpStyle.Render("y confirm · n cancel"))
}
