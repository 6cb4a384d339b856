package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/kolab-hr/kolabctl/internal/client/storage"
	"github.com/kolab-hr/kolabctl/internal/models"
	"github.com/kolab-hr/kolabctl/internal/table"
)

type entityKind string

const (
	entityCategory      entityKind = "category"
	entityIndustry      entityKind = "industry"
	entityCompany       entityKind = "company"
	entityContact       entityKind = "contact"
	entityProject       entityKind = "project"
	entityUser          entityKind = "user"
	entityCollaboration entityKind = "collaboration"
)

// parseEntity accepts the singular and plural spelling of every entity.
func parseEntity(arg string) (entityKind, error) {
	switch strings.ToLower(arg) {
	case "category", "categories":
		return entityCategory, nil
	case "industry", "industries":
		return entityIndustry, nil
	case "company", "companies":
		return entityCompany, nil
	case "contact", "contacts":
		return entityContact, nil
	case "project", "projects":
		return entityProject, nil
	case "user", "users":
		return entityUser, nil
	case "collaboration", "collaborations":
		return entityCollaboration, nil
	default:
		return "", fmt.Errorf("unknown entity %q", arg)
	}
}

// option is one selectable dropdown value.
type option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// loadOptions fetches a reference list and refreshes the local cache; when
// the fetch fails the last cached copy keeps the form usable offline.
func (c *Cli) loadOptions(ctx context.Context, key string, fetch func(context.Context) ([]option, error)) ([]option, error) {
	opts, err := fetch(ctx)
	if err == nil {
		if data, merr := json.Marshal(opts); merr == nil {
			_ = c.options.SaveOptions(ctx, key, data)
		}
		return opts, nil
	}

	data, cerr := c.options.GetOptions(ctx, key)
	if cerr != nil {
		if errors.Is(cerr, storage.ErrOptionsNotFound) {
			return nil, err
		}
		return nil, cerr
	}

	var cached []option
	if uerr := json.Unmarshal(data, &cached); uerr != nil {
		return nil, err
	}
	return cached, nil
}

func (c *Cli) industryOptions(ctx context.Context) ([]option, error) {
	return c.loadOptions(ctx, storage.OptionsIndustries, func(ctx context.Context) ([]option, error) {
		industries, err := c.apiClient.ListIndustries(ctx)
		if err != nil {
			return nil, err
		}
		opts := make([]option, 0, len(industries))
		for _, i := range industries {
			opts = append(opts, option{ID: i.ID.String(), Label: i.Name})
		}
		return opts, nil
	})
}

func (c *Cli) categoryOptions(ctx context.Context) ([]option, error) {
	return c.loadOptions(ctx, storage.OptionsCategories, func(ctx context.Context) ([]option, error) {
		categories, err := c.apiClient.ListCategories(ctx)
		if err != nil {
			return nil, err
		}
		opts := make([]option, 0, len(categories))
		for _, cat := range categories {
			opts = append(opts, option{ID: cat.ID.String(), Label: cat.Name})
		}
		return opts, nil
	})
}

func (c *Cli) userOptions(ctx context.Context) ([]option, error) {
	return c.loadOptions(ctx, storage.OptionsUsers, func(ctx context.Context) ([]option, error) {
		users, err := c.apiClient.ListUsers(ctx)
		if err != nil {
			return nil, err
		}
		opts := make([]option, 0, len(users))
		for _, u := range users {
			opts = append(opts, option{ID: u.ID.String(), Label: u.FullName()})
		}
		return opts, nil
	})
}

func (c *Cli) companyOptions(ctx context.Context) ([]option, error) {
	return c.loadOptions(ctx, storage.OptionsCompanies, func(ctx context.Context) ([]option, error) {
		companies, err := c.apiClient.ListCompanies(ctx)
		if err != nil {
			return nil, err
		}
		opts := make([]option, 0, len(companies))
		for _, co := range companies {
			opts = append(opts, option{ID: co.ID.String(), Label: co.Name})
		}
		return opts, nil
	})
}

func (c *Cli) projectOptions(ctx context.Context) ([]option, error) {
	return c.loadOptions(ctx, storage.OptionsProjects, func(ctx context.Context) ([]option, error) {
		projects, err := c.apiClient.ListProjects(ctx)
		if err != nil {
			return nil, err
		}
		opts := make([]option, 0, len(projects))
		for _, p := range projects {
			opts = append(opts, option{ID: p.ID.String(), Label: p.Name})
		}
		return opts, nil
	})
}

// countryOptions uses the country name as both id and label: the backend
// stores the name, not a code.
func (c *Cli) countryOptions(ctx context.Context) ([]option, error) {
	return c.loadOptions(ctx, storage.OptionsCountries, func(ctx context.Context) ([]option, error) {
		countries, err := c.apiClient.Countries(ctx)
		if err != nil {
			return nil, err
		}
		opts := make([]option, 0, len(countries))
		for _, country := range countries {
			opts = append(opts, option{ID: country.Name.Common, Label: country.Name.Common})
		}
		return opts, nil
	})
}

// renderTable prints rows through the shared column descriptors.
func renderTable[T any](c *Cli, t *table.Table[T], id func(T) string) {
	w := tabwriter.NewWriter(c.io, 0, 4, 2, ' ', 0)

	headers := []string{"ID"}
	for _, col := range t.Columns() {
		headers = append(headers, col.Title)
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	for _, row := range t.Rows() {
		cells := []string{id(row)}
		for _, col := range t.Columns() {
			cells = append(cells, col.String(row))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	_ = w.Flush()
}

// collaborationContext picks the listing context from the set flags.
func collaborationContext(companySet, projectSet, userSet bool) table.CollaborationContext {
	switch {
	case companySet:
		return table.CollaborationsOfCompany
	case projectSet:
		return table.CollaborationsOfProject
	case userSet:
		return table.CollaborationsOfUser
	default:
		return table.CollaborationsAll
	}
}

// Free-text filter labels, one per entity row type.
func categoryLabel(c models.Category) string { return c.Name }
func industryLabel(i models.Industry) string { return i.Name }
func companyLabel(c models.Company) string   { return c.Name }
func contactLabel(c models.Contact) string   { return c.FullName() }
func projectLabel(p models.Project) string   { return p.Name }
func userLabel(u models.User) string         { return u.FullName() }
