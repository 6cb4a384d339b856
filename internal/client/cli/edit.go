package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/uuid"

	"github.com/kolab-hr/kolabctl/internal/form"
)

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: kolabctl edit <entity> <id>")
	}

	kind, err := parseEntity(args[0])
	if err != nil {
		return err
	}
	recordID, err := uuid.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid record id: %w", err)
	}

	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	company := fs.String("company", "", "owning company id (contacts)")
	if err := fs.Parse(args[2:]); err != nil {
		return err
	}

	spec, err := c.formSpec(kind, *company)
	if err != nil {
		return err
	}

	existing, err := c.loadValues(ctx, kind, recordID, *company)
	if err != nil {
		return err
	}

	f := form.New(spec, recordID.String(), existing, nil)

	c.io.Printf("=== Edit %s ===\n", spec.Messages.Title)
	c.io.Println("Press Enter to keep the shown value.")
	c.io.Println()

	if err := c.fillForm(ctx, f); err != nil {
		return err
	}

	f.Submit(ctx, c.apiClient, c.center, nil)
	return nil
}

// loadValues fetches the record being edited and flattens it into form
// values. Categories, industries, contacts and collaborations have no
// single-record endpoint, so the owning list is scanned.
func (c *Cli) loadValues(ctx context.Context, kind entityKind, id uuid.UUID, company string) (form.Values, error) {
	switch kind {
	case entityCategory:
		categories, err := c.apiClient.ListCategories(ctx)
		if err != nil {
			return nil, err
		}
		for _, cat := range categories {
			if cat.ID == id {
				return form.CategoryValues(cat), nil
			}
		}

	case entityIndustry:
		industries, err := c.apiClient.ListIndustries(ctx)
		if err != nil {
			return nil, err
		}
		for _, ind := range industries {
			if ind.ID == id {
				return form.IndustryValues(ind), nil
			}
		}

	case entityCompany:
		record, err := c.apiClient.GetCompany(ctx, id)
		if err != nil {
			return nil, err
		}
		return form.CompanyValues(*record), nil

	case entityContact:
		companyID, err := requireUUID(company, "--company")
		if err != nil {
			return nil, err
		}
		contacts, err := c.apiClient.ListContacts(ctx, companyID)
		if err != nil {
			return nil, err
		}
		for _, contact := range contacts {
			if contact.ID == id {
				return form.ContactValues(contact), nil
			}
		}

	case entityProject:
		record, err := c.apiClient.GetProject(ctx, id)
		if err != nil {
			return nil, err
		}
		return form.ProjectValues(*record), nil

	case entityUser:
		record, err := c.apiClient.GetUser(ctx, id)
		if err != nil {
			return nil, err
		}
		return form.UserValues(*record), nil

	case entityCollaboration:
		collaborations, err := c.apiClient.ListCollaborations(ctx)
		if err != nil {
			return nil, err
		}
		for _, collab := range collaborations {
			if collab.ID == id {
				return form.CollaborationValues(collab), nil
			}
		}
	}

	return nil, fmt.Errorf("%s with id %s does not exist", kind, id)
}
