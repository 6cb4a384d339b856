package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/uuid"

	"github.com/kolab-hr/kolabctl/internal/client/confirm"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: kolabctl delete <entity> <id>")
	}

	kind, err := parseEntity(args[0])
	if err != nil {
		return err
	}
	recordID, err := uuid.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid record id: %w", err)
	}

	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	company := fs.String("company", "", "owning company id (contacts)")
	if err := fs.Parse(args[2:]); err != nil {
		return err
	}

	req, err := c.deleteRequest(ctx, kind, recordID, *company)
	if err != nil {
		return err
	}

	if err := c.flow.Stage(req); err != nil {
		return err
	}

	prompt := fmt.Sprintf("Delete %s %s?", req.Type, req.Label)
	if req.Label == "" {
		prompt = fmt.Sprintf("Delete this %s?", kind)
	}
	confirmed, err := c.io.Confirm(prompt)
	if err != nil {
		c.flow.Cancel()
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !confirmed {
		c.flow.Cancel()
		c.io.Println("Deletion cancelled.")
		return nil
	}

	c.flow.Confirm(ctx)
	return nil
}

// deleteRequest resolves the delete endpoint and a display label. The label
// fetch is best effort; an unresolvable record still gets a staged request
// so the server decides whether the id exists.
func (c *Cli) deleteRequest(ctx context.Context, kind entityKind, id uuid.UUID, company string) (confirm.Request, error) {
	switch kind {
	case entityCategory:
		return confirm.Request{
			Type:     "Category",
			Label:    c.lookupLabel(ctx, c.categoryOptions, id),
			Endpoint: "/api/categories/" + id.String(),
		}, nil

	case entityIndustry:
		return confirm.Request{
			Type:     "Industry",
			Label:    c.lookupLabel(ctx, c.industryOptions, id),
			Endpoint: "/api/industries/" + id.String(),
		}, nil

	case entityCompany:
		return confirm.Request{
			Type:     "Company",
			Label:    c.lookupLabel(ctx, c.companyOptions, id),
			Endpoint: "/api/companies/" + id.String(),
		}, nil

	case entityContact:
		companyID, err := requireUUID(company, "--company")
		if err != nil {
			return confirm.Request{}, err
		}
		label := ""
		if contacts, err := c.apiClient.ListContacts(ctx, companyID); err == nil {
			for _, contact := range contacts {
				if contact.ID == id {
					label = contact.FullName()
				}
			}
		}
		return confirm.Request{
			Type:     "Contact",
			Label:    label,
			Endpoint: fmt.Sprintf("/api/companies/%s/contacts/%s", companyID, id),
		}, nil

	case entityProject:
		return confirm.Request{
			Type:     "Project",
			Label:    c.lookupLabel(ctx, c.projectOptions, id),
			Endpoint: "/api/projects/" + id.String(),
		}, nil

	case entityUser:
		return confirm.Request{
			Type:     "User",
			Label:    c.lookupLabel(ctx, c.userOptions, id),
			Endpoint: "/api/users/" + id.String(),
		}, nil

	case entityCollaboration:
		return confirm.Request{
			Type:     "Collaboration",
			Endpoint: "/api/collaborations/" + id.String(),
		}, nil
	}

	return confirm.Request{}, fmt.Errorf("unknown entity %q", kind)
}

// lookupLabel resolves an id to its display label through an option list.
func (c *Cli) lookupLabel(ctx context.Context, load func(context.Context) ([]option, error), id uuid.UUID) string {
	opts, err := load(ctx)
	if err != nil {
		return ""
	}
	for _, opt := range opts {
		if opt.ID == id.String() {
			return opt.Label
		}
	}
	return ""
}
