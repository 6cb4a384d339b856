package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/uuid"

	"github.com/kolab-hr/kolabctl/internal/models"
	"github.com/kolab-hr/kolabctl/internal/table"
)

type listFlags struct {
	search  string
	sortCol string
	desc    bool
	company string
	project string
	user    string
}

func (c *Cli) runList(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing entity. Usage: kolabctl list <entity> [--search q] [--sort col] [--desc]")
	}

	kind, err := parseEntity(args[0])
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	var flags listFlags
	fs.StringVar(&flags.search, "search", "", "filter rows by label")
	fs.StringVar(&flags.sortCol, "sort", "", "sort by column key")
	fs.BoolVar(&flags.desc, "desc", false, "sort descending")
	fs.StringVar(&flags.company, "company", "", "company id (contacts, collaborations)")
	fs.StringVar(&flags.project, "project", "", "project id (collaborations)")
	fs.StringVar(&flags.user, "user", "", "user id (projects, collaborations)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	switch kind {
	case entityCategory:
		rows, err := c.apiClient.ListCategories(ctx)
		if err != nil {
			return err
		}
		listEntity(c, rows, table.CategoryColumns(), categoryLabel, flags, func(r models.Category) string { return r.ID.String() })

	case entityIndustry:
		rows, err := c.apiClient.ListIndustries(ctx)
		if err != nil {
			return err
		}
		listEntity(c, rows, table.IndustryColumns(), industryLabel, flags, func(r models.Industry) string { return r.ID.String() })

	case entityCompany:
		rows, err := c.apiClient.ListCompanies(ctx)
		if err != nil {
			return err
		}
		listEntity(c, rows, table.CompanyColumns(), companyLabel, flags, func(r models.Company) string { return r.ID.String() })

	case entityContact:
		companyID, err := requireUUID(flags.company, "--company")
		if err != nil {
			return err
		}
		rows, err := c.apiClient.ListContacts(ctx, companyID)
		if err != nil {
			return err
		}
		listEntity(c, rows, table.ContactColumns(), contactLabel, flags, func(r models.Contact) string { return r.ID.String() })

	case entityProject:
		var rows []models.Project
		if flags.user != "" {
			userID, err := requireUUID(flags.user, "--user")
			if err != nil {
				return err
			}
			rows, err = c.apiClient.UserProjects(ctx, userID)
			if err != nil {
				return err
			}
		} else {
			var err error
			rows, err = c.apiClient.ListProjects(ctx)
			if err != nil {
				return err
			}
		}
		listEntity(c, rows, table.ProjectColumns(), projectLabel, flags, func(r models.Project) string { return r.ID.String() })

	case entityUser:
		rows, err := c.apiClient.ListUsers(ctx)
		if err != nil {
			return err
		}
		listEntity(c, rows, table.UserColumns(), userLabel, flags, func(r models.User) string { return r.ID.String() })

	case entityCollaboration:
		rows, tctx, err := c.listCollaborations(ctx, flags)
		if err != nil {
			return err
		}
		listEntity(c, rows, table.CollaborationColumns(tctx), table.CollaborationLabel(tctx), flags, func(r models.Collaboration) string { return r.ID.String() })
	}

	return nil
}

// listCollaborations picks the endpoint matching the context flag.
func (c *Cli) listCollaborations(ctx context.Context, flags listFlags) ([]models.Collaboration, table.CollaborationContext, error) {
	tctx := collaborationContext(flags.company != "", flags.project != "", flags.user != "")

	switch tctx {
	case table.CollaborationsOfCompany:
		companyID, err := requireUUID(flags.company, "--company")
		if err != nil {
			return nil, tctx, err
		}
		rows, err := c.apiClient.CompanyCollaborations(ctx, companyID)
		return rows, tctx, err

	case table.CollaborationsOfProject:
		projectID, err := requireUUID(flags.project, "--project")
		if err != nil {
			return nil, tctx, err
		}
		rows, err := c.apiClient.ProjectCollaborations(ctx, projectID)
		return rows, tctx, err

	case table.CollaborationsOfUser:
		userID, err := requireUUID(flags.user, "--user")
		if err != nil {
			return nil, tctx, err
		}
		rows, err := c.apiClient.UserCollaborations(ctx, userID)
		return rows, tctx, err

	default:
		rows, err := c.apiClient.ListCollaborations(ctx)
		return rows, tctx, err
	}
}

// listEntity filters, sorts and renders one listing.
func listEntity[T any](c *Cli, rows []T, columns []table.Column[T], label func(T) string, flags listFlags, id func(T) string) {
	rows = table.Filter(rows, flags.search, label)

	t := table.New(c.locale, columns)
	t.SetRows(rows)
	if flags.sortCol != "" {
		t.SortBy(flags.sortCol)
		if flags.desc {
			// второй запрос по той же колонке переключает направление
			t.SortBy(flags.sortCol)
		}
	}

	renderTable(c, t, id)
	c.io.Printf("\n%d record(s)\n", len(t.Rows()))
}

func requireUUID(value, flagName string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, fmt.Errorf("%s is required for this listing", flagName)
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", flagName, err)
	}
	return id, nil
}
