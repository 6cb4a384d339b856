package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/kolab-hr/kolabctl/internal/form"
	"github.com/kolab-hr/kolabctl/internal/models"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldSelect
	fieldTags
)

type choice struct {
	id    string
	label string
}

type fieldState struct {
	name    string
	label   string
	kind    fieldKind
	input   textinput.Model
	choices []choice
	sel     int
}

// formSession is the state of one open modal form.
type formSession struct {
	f      *form.Form
	spec   form.Spec
	fields []fieldState
	idx    int
	title  string
}

func (m *model) openAddForm() tea.Cmd {
	if m.active == nil || m.active.spec == nil {
		return nil
	}
	spec := m.active.spec()
	f := form.New(spec, "", nil, nil)
	return m.openForm("Add "+spec.Messages.Title, spec, f)
}

func (m *model) openEditForm() tea.Cmd {
	if m.active == nil || m.active.spec == nil {
		return nil
	}
	r, ok := m.selectedRow()
	if !ok {
		return nil
	}
	values, ok := m.active.values(r.id)
	if !ok {
		return nil
	}

	spec := m.active.spec()
	f := form.New(spec, r.id, values, nil)
	return m.openForm("Edit "+spec.Messages.Title, spec, f)
}

func (m *model) openForm(title string, spec form.Spec, f *form.Form) tea.Cmd {
	session := &formSession{f: f, spec: spec, title: title}

	for _, fld := range spec.Fields {
		state := fieldState{name: fld.Name, label: fld.Label}

		switch fieldKindOf(spec, fld.Name) {
		case fieldSelect:
			state.kind = fieldSelect
			state.choices = m.fieldChoices(spec, fld.Name, f)
			state.sel = choiceIndex(state.choices, f.Value(fld.Name))
		case fieldTags:
			state.kind = fieldTags
		default:
			input := textinput.New()
			input.Prompt = ""
			input.CharLimit = 512
			input.SetValue(f.Value(fld.Name))
			state.input = input
		}

		session.fields = append(session.fields, state)
	}

	m.form = session
	m.state = stateForm
	m.toast = ""
	return session.focus(0)
}

// fieldKindOf classifies a field by its name; selection fields are the
// dropdowns of the web forms.
func fieldKindOf(spec form.Spec, name string) fieldKind {
	switch name {
	case "industryId", "categoryId", "responsibleId", "projectId", "companyId",
		"contactId", "country", "authorization", "categorization",
		"budgetPlanningMonth", "type", "contactInFuture", "status":
		return fieldSelect
	case "category":
		if spec.Entity == "collaboration" {
			return fieldTags
		}
	}
	return fieldText
}

// fieldChoices loads the selectable values of one field. Reference lists
// come straight from the server; a failed fetch leaves the list empty and
// the field unfillable until the connection returns.
func (m *model) fieldChoices(spec form.Spec, name string, f *form.Form) []choice {
	static := func(values ...string) []choice {
		out := make([]choice, 0, len(values))
		for _, v := range values {
			out = append(out, choice{id: v, label: v})
		}
		return out
	}

	switch name {
	case "industryId":
		industries, err := m.deps.API.ListIndustries(m.ctx)
		if err != nil {
			return nil
		}
		out := make([]choice, 0, len(industries))
		for _, i := range industries {
			out = append(out, choice{id: i.ID.String(), label: i.Name})
		}
		return out

	case "categoryId":
		categories, err := m.deps.API.ListCategories(m.ctx)
		if err != nil {
			return nil
		}
		out := make([]choice, 0, len(categories))
		for _, c := range categories {
			out = append(out, choice{id: c.ID.String(), label: c.Name})
		}
		return out

	case "responsibleId":
		users, err := m.deps.API.ListUsers(m.ctx)
		if err != nil {
			return nil
		}
		out := make([]choice, 0, len(users))
		for _, u := range users {
			out = append(out, choice{id: u.ID.String(), label: u.FullName()})
		}
		return out

	case "projectId":
		projects, err := m.deps.API.ListProjects(m.ctx)
		if err != nil {
			return nil
		}
		out := make([]choice, 0, len(projects))
		for _, p := range projects {
			out = append(out, choice{id: p.ID.String(), label: p.Name})
		}
		return out

	case "companyId":
		companies, err := m.deps.API.ListCompanies(m.ctx)
		if err != nil {
			return nil
		}
		out := make([]choice, 0, len(companies))
		for _, c := range companies {
			out = append(out, choice{id: c.ID.String(), label: c.Name})
		}
		return out

	case "contactId":
		companyID, err := uuid.Parse(f.Value("companyId"))
		if err != nil {
			return nil
		}
		contacts, err := m.deps.API.ListContacts(m.ctx, companyID)
		if err != nil {
			return nil
		}
		out := make([]choice, 0, len(contacts))
		for _, c := range contacts {
			out = append(out, choice{id: c.ID.String(), label: c.FullName()})
		}
		return out

	case "country":
		countries, err := m.deps.API.Countries(m.ctx)
		if err != nil {
			return nil
		}
		out := make([]choice, 0, len(countries))
		for _, c := range countries {
			out = append(out, choice{id: c.Name.Common, label: c.Name.Common})
		}
		return out

	case "authorization":
		return static(models.Authorizations...)
	case "categorization":
		return static(models.Categorizations...)
	case "budgetPlanningMonth":
		return static(models.Months...)
	case "type":
		return static(models.ProjectTypes...)
	case "contactInFuture":
		return static("true", "false")
	case "status":
		out := make([]choice, 0, len(models.Statuses))
		for _, s := range models.Statuses {
			out = append(out, choice{id: string(s), label: s.Label()})
		}
		return out
	}
	return nil
}

func choiceIndex(choices []choice, id string) int {
	for i, c := range choices {
		if c.id == id {
			return i
		}
	}
	return -1
}

func (s *formSession) focus(idx int) tea.Cmd {
	if idx < 0 || idx >= len(s.fields) {
		return nil
	}
	for i := range s.fields {
		s.fields[i].input.Blur()
	}
	s.idx = idx
	if s.fields[idx].kind == fieldText {
		return s.fields[idx].input.Focus()
	}
	return nil
}

func (m *model) updateForm(msg tea.Msg) tea.Cmd {
	s := m.form
	if s == nil {
		m.state = stateList
		return nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocusedInput(msg)
	}

	fld := &s.fields[s.idx]

	switch key.String() {
	case "esc":
		// форма закрывается без сохранения
		m.form = nil
		m.state = stateList
		return nil

	case "enter":
		if !s.f.Valid() {
			return nil
		}
		if s.f.Submit(m.ctx, m.deps.API, m.deps.Center, m.reload) {
			m.form = nil
			m.state = stateList
		}
		m.drainToast()
		return nil

	case "tab", "down":
		return s.focus((s.idx + 1) % len(s.fields))

	case "shift+tab", "up":
		return s.focus((s.idx - 1 + len(s.fields)) % len(s.fields))
	}

	switch fld.kind {
	case fieldSelect:
		switch key.String() {
		case "left":
			m.cycleChoice(fld, -1)
		case "right", " ":
			m.cycleChoice(fld, 1)
		}
		return nil

	case fieldTags:
		switch key.String() {
		case "1", "2", "3":
			idx := int(key.String()[0] - '1')
			m.toggleTag(fld, models.TagOrder[idx])
		}
		return nil

	default:
		return m.updateFocusedInput(msg)
	}
}

// updateFocusedInput forwards the message to the focused text input and
// records the new value in the form state.
func (m *model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	s := m.form
	fld := &s.fields[s.idx]
	if fld.kind != fieldText {
		return nil
	}

	var cmd tea.Cmd
	fld.input, cmd = fld.input.Update(msg)
	s.f.Set(fld.name, fld.input.Value())
	return cmd
}

func (m *model) cycleChoice(fld *fieldState, delta int) {
	// contactId зависит от выбранной компании, список перечитывается
	if fld.name == "contactId" {
		fld.choices = m.fieldChoices(m.form.spec, fld.name, m.form.f)
		fld.sel = choiceIndex(fld.choices, m.form.f.Value(fld.name))
	}
	if len(fld.choices) == 0 {
		return
	}

	fld.sel = (fld.sel + delta + len(fld.choices)) % len(fld.choices)
	m.form.f.Set(fld.name, fld.choices[fld.sel].id)

	// смена компании сбрасывает выбранный контакт
	if fld.name == "companyId" {
		for i := range m.form.fields {
			if m.form.fields[i].name == "contactId" {
				m.form.fields[i].choices = nil
				m.form.fields[i].sel = -1
			}
		}
	}
}

func (m *model) toggleTag(fld *fieldState, tag models.CollaborationTag) {
	current := m.form.f.Value(fld.name)
	var encoded *string
	if current != "" {
		encoded = &current
	}
	next := models.ToggleTag(encoded, tag)
	if next == nil {
		m.form.f.Set(fld.name, "")
	} else {
		m.form.f.Set(fld.name, *next)
	}
}

func (m *model) viewForm() string {
	s := m.form
	if s == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(s.title))
	b.WriteString("\n\n")

	for i := range s.fields {
		fld := &s.fields[i]

		marker := "  "
		if i == s.idx {
			marker = "> "
		}

		var value string
		switch fld.kind {
		case fieldSelect:
			value = "‹none›"
			if fld.sel >= 0 && fld.sel < len(fld.choices) {
				value = "‹" + fld.choices[fld.sel].label + "›"
			}
		case fieldTags:
			value = renderTags(s.f.Value(fld.name))
		default:
			if i == s.idx {
				value = fld.input.View()
			} else {
				value = fld.input.Value()
			}
		}

		line := marker + fld.label + ": " + value
		if !s.f.FieldValid(fld.name) {
			line += " " + invalidStyle.Render("✗")
		}
		if i == s.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	help := "tab next · ←/→ choose · enter save · esc discard"
	if !s.f.Valid() {
		help = "fix the marked fields · " + help
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

// renderTags shows the encoded tag set as checkboxes toggled by 1/2/3.
func renderTags(encoded string) string {
	var ptr *string
	if encoded != "" {
		ptr = &encoded
	}
	active := models.DecodeTags(ptr)

	parts := make([]string, 0, len(models.TagOrder))
	for i, tag := range models.TagOrder {
		mark := " "
		for _, a := range active {
			if a == tag {
				mark = "x"
			}
		}
		parts = append(parts, fmt.Sprintf("[%s] %s (%d)", mark, tag.Label(), i+1))
	}
	return strings.Join(parts, "  ")
}
