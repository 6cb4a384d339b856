package ui

import (
	"github.com/google/uuid"

	"github.com/kolab-hr/kolabctl/internal/form"
	"github.com/kolab-hr/kolabctl/internal/models"
	"github.com/kolab-hr/kolabctl/internal/table"
)

// row is one flattened listing row, ready to render.
type row struct {
	id    string
	cells []string
	label string
}

// screen is one entity listing: a cached fetch plus pure projections of the
// cache under the current search and sort.
type screen struct {
	title      string
	entityType string
	headers    []string
	sortKeys   []string

	// fetch refreshes the cache from the server
	fetch func() error

	// rows projects the cache through filter and sort
	rows func(search, sortKey string, desc bool) []row

	// endpoint is the delete path of one record
	endpoint func(id string) string

	// spec builds the add/edit form
	spec func() form.Spec

	// values flattens a cached record for the edit form; ok is false when
	// the id is no longer in the cache
	values func(id string) (form.Values, bool)
}

// newScreen builds a screen over typed rows. The cache lives in the
// closures; every projection works on the last successful fetch.
func newScreen[T any](
	m *model,
	title, entityType string,
	columns []table.Column[T],
	label func(T) string,
	fetch func() ([]T, error),
	id func(T) string,
	endpoint func(id string) string,
	spec func() form.Spec,
	values func(T) form.Values,
) *screen {
	var cache []T

	headers := make([]string, 0, len(columns))
	sortKeys := make([]string, 0, len(columns))
	for _, col := range columns {
		headers = append(headers, col.Title)
		if col.Sortable {
			sortKeys = append(sortKeys, col.Key)
		}
	}

	s := &screen{
		title:      title,
		entityType: entityType,
		headers:    headers,
		sortKeys:   sortKeys,
		endpoint:   endpoint,
		spec:       spec,
	}

	s.fetch = func() error {
		rows, err := fetch()
		if err != nil {
			return err
		}
		cache = rows
		return nil
	}

	s.rows = func(search, sortKey string, desc bool) []row {
		// Таблица сортирует на месте; кэш экрана остается в серверном порядке
		filtered := append([]T(nil), table.Filter(cache, search, label)...)

		t := table.New(m.deps.Locale, columns)
		t.SetRows(filtered)
		if sortKey != "" {
			t.SortBy(sortKey)
			if desc {
				t.SortBy(sortKey)
			}
		}

		out := make([]row, 0, len(t.Rows()))
		for _, r := range t.Rows() {
			cells := make([]string, 0, len(columns))
			for _, col := range columns {
				cells = append(cells, col.String(r))
			}
			out = append(out, row{id: id(r), cells: cells, label: label(r)})
		}
		return out
	}

	s.values = func(recordID string) (form.Values, bool) {
		for _, r := range cache {
			if id(r) == recordID {
				return values(r), true
			}
		}
		return nil, false
	}

	return s
}

// screens builds the top-level listings in menu order.
func (m *model) buildScreens() []*screen {
	return []*screen{
		newScreen(m, "Categories", "Category",
			table.CategoryColumns(),
			func(c models.Category) string { return c.Name },
			func() ([]models.Category, error) { return m.deps.API.ListCategories(m.ctx) },
			func(c models.Category) string { return c.ID.String() },
			func(id string) string { return "/api/categories/" + id },
			form.Category,
			form.CategoryValues,
		),
		newScreen(m, "Industries", "Industry",
			table.IndustryColumns(),
			func(i models.Industry) string { return i.Name },
			func() ([]models.Industry, error) { return m.deps.API.ListIndustries(m.ctx) },
			func(i models.Industry) string { return i.ID.String() },
			func(id string) string { return "/api/industries/" + id },
			form.Industry,
			form.IndustryValues,
		),
		newScreen(m, "Companies", "Company",
			table.CompanyColumns(),
			func(c models.Company) string { return c.Name },
			func() ([]models.Company, error) { return m.deps.API.ListCompanies(m.ctx) },
			func(c models.Company) string { return c.ID.String() },
			func(id string) string { return "/api/companies/" + id },
			form.Company,
			form.CompanyValues,
		),
		newScreen(m, "Projects", "Project",
			table.ProjectColumns(),
			func(p models.Project) string { return p.Name },
			func() ([]models.Project, error) { return m.deps.API.ListProjects(m.ctx) },
			func(p models.Project) string { return p.ID.String() },
			func(id string) string { return "/api/projects/" + id },
			form.Project,
			form.ProjectValues,
		),
		newScreen(m, "Users", "User",
			table.UserColumns(),
			models.User.FullName,
			func() ([]models.User, error) { return m.deps.API.ListUsers(m.ctx) },
			func(u models.User) string { return u.ID.String() },
			func(id string) string { return "/api/users/" + id },
			form.User,
			form.UserValues,
		),
		newScreen(m, "Collaborations", "Collaboration",
			table.CollaborationColumns(table.CollaborationsAll),
			table.CollaborationLabel(table.CollaborationsAll),
			func() ([]models.Collaboration, error) { return m.deps.API.ListCollaborations(m.ctx) },
			func(c models.Collaboration) string { return c.ID.String() },
			func(id string) string { return "/api/collaborations/" + id },
			form.Collaboration,
			form.CollaborationValues,
		),
	}
}

// contactScreen builds the nested listing of one company's contacts.
func (m *model) contactScreen(companyID uuid.UUID, companyName string) *screen {
	return newScreen(m, "Contacts of "+companyName, "Contact",
		table.ContactColumns(),
		models.Contact.FullName,
		func() ([]models.Contact, error) { return m.deps.API.ListContacts(m.ctx, companyID) },
		func(c models.Contact) string { return c.ID.String() },
		func(id string) string { return "/api/companies/" + companyID.String() + "/contacts/" + id },
		func() form.Spec { return form.Contact(companyID) },
		form.ContactValues,
	)
}
