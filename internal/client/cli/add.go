package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/kolab-hr/kolabctl/internal/form"
	"github.com/kolab-hr/kolabctl/internal/models"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing entity. Usage: kolabctl add <entity>")
	}

	kind, err := parseEntity(args[0])
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	company := fs.String("company", "", "owning company id (contacts)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	spec, err := c.formSpec(kind, *company)
	if err != nil {
		return err
	}

	f := form.New(spec, "", nil, nil)

	c.io.Printf("=== Add %s ===\n", spec.Messages.Title)
	c.io.Println()

	if err := c.fillForm(ctx, f); err != nil {
		return err
	}

	f.Submit(ctx, c.apiClient, c.center, nil)
	return nil
}

// formSpec builds the field table of one entity; contacts need the owning
// company because it is part of their endpoint.
func (c *Cli) formSpec(kind entityKind, company string) (form.Spec, error) {
	switch kind {
	case entityCategory:
		return form.Category(), nil
	case entityIndustry:
		return form.Industry(), nil
	case entityCompany:
		return form.Company(), nil
	case entityContact:
		companyID, err := requireUUID(company, "--company")
		if err != nil {
			return form.Spec{}, err
		}
		return form.Contact(companyID), nil
	case entityProject:
		return form.Project(), nil
	case entityUser:
		return form.User(), nil
	case entityCollaboration:
		return form.Collaboration(), nil
	}
	return form.Spec{}, fmt.Errorf("unknown entity %q", kind)
}

// fillForm prompts for every field in table order, re-asking until the
// field validates. An empty answer keeps the current value.
func (c *Cli) fillForm(ctx context.Context, f *form.Form) error {
	for _, fld := range f.Spec().Fields {
		opts, selectable, err := c.fieldOptions(ctx, f, fld.Name)
		if err != nil {
			return err
		}

		for {
			if selectable {
				c.printOptions(fld.Label, opts, f.Value(fld.Name))
			}

			prompt := fld.Label
			if current := f.Value(fld.Name); current != "" {
				prompt += fmt.Sprintf(" [%s]", displayValue(current, opts))
			}
			input, err := c.io.ReadInput(prompt + ": ")
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", fld.Label, err)
			}

			if input != "" {
				value, verr := resolveInput(fld.Name, input, opts)
				if verr != nil {
					c.io.Printf("✗ %v\n", verr)
					continue
				}
				f.Set(fld.Name, value)
			}

			if f.FieldValid(fld.Name) {
				break
			}
			c.io.Printf("✗ Invalid %s.\n", strings.ToLower(fld.Label))
		}
	}
	return nil
}

// fieldOptions returns the selectable values of a field, when it has any.
func (c *Cli) fieldOptions(ctx context.Context, f *form.Form, name string) ([]option, bool, error) {
	static := func(values ...string) []option {
		opts := make([]option, 0, len(values))
		for _, v := range values {
			opts = append(opts, option{ID: v, Label: v})
		}
		return opts
	}

	switch name {
	case "industryId":
		opts, err := c.industryOptions(ctx)
		return opts, true, err
	case "categoryId":
		opts, err := c.categoryOptions(ctx)
		return opts, true, err
	case "responsibleId":
		opts, err := c.userOptions(ctx)
		return opts, true, err
	case "projectId":
		opts, err := c.projectOptions(ctx)
		return opts, true, err
	case "companyId":
		opts, err := c.companyOptions(ctx)
		return opts, true, err
	case "contactId":
		opts, err := c.contactOptions(ctx, f.Value("companyId"))
		return opts, true, err
	case "country":
		opts, err := c.countryOptions(ctx)
		return opts, true, err
	case "authorization":
		return static(models.Authorizations...), true, nil
	case "categorization":
		return static(models.Categorizations...), true, nil
	case "budgetPlanningMonth":
		return static(models.Months...), true, nil
	case "type":
		return static(models.ProjectTypes...), true, nil
	case "contactInFuture":
		return static("true", "false"), true, nil
	case "status":
		opts := make([]option, 0, len(models.Statuses))
		for _, s := range models.Statuses {
			opts = append(opts, option{ID: string(s), Label: s.Label()})
		}
		return opts, true, nil
	case "category":
		if f.Spec().Entity != "collaboration" {
			return nil, false, nil
		}
		// Набор тегов, а не одиночный выбор
		opts := make([]option, 0, len(models.TagOrder))
		for _, tag := range models.TagOrder {
			opts = append(opts, option{ID: string(tag), Label: tag.Label()})
		}
		return opts, true, nil
	default:
		return nil, false, nil
	}
}

// contactOptions lists the contacts of the selected company; empty until a
// company is chosen.
func (c *Cli) contactOptions(ctx context.Context, company string) ([]option, error) {
	if company == "" {
		return nil, nil
	}
	companyID, err := uuid.Parse(company)
	if err != nil {
		return nil, fmt.Errorf("invalid company id: %w", err)
	}

	contacts, err := c.apiClient.ListContacts(ctx, companyID)
	if err != nil {
		return nil, err
	}
	opts := make([]option, 0, len(contacts))
	for _, contact := range contacts {
		opts = append(opts, option{ID: contact.ID.String(), Label: contact.FullName()})
	}
	return opts, nil
}

func (c *Cli) printOptions(label string, opts []option, current string) {
	if len(opts) == 0 {
		return
	}
	c.io.Printf("%s options:\n", label)
	for i, opt := range opts {
		marker := " "
		if opt.ID == current {
			marker = "*"
		}
		c.io.Printf("  %s %d) %s\n", marker, i+1, opt.Label)
	}
}

// resolveInput turns the raw answer into the stored value: an option number,
// a literal option id, or - for the collaboration tag set - a comma list of
// tags encoded canonically.
func resolveInput(name, input string, opts []option) (string, error) {
	if name == "category" && len(opts) > 0 {
		return resolveTags(input)
	}

	if len(opts) == 0 {
		return input, nil
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(opts) {
			return "", fmt.Errorf("option number out of range")
		}
		return opts[n-1].ID, nil
	}

	for _, opt := range opts {
		if strings.EqualFold(opt.ID, input) || strings.EqualFold(opt.Label, input) {
			return opt.ID, nil
		}
	}
	return "", fmt.Errorf("no option matches %q", input)
}

// resolveTags parses a comma-separated tag list ("financial, academic") and
// encodes it in canonical order.
func resolveTags(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}

	var tags []models.CollaborationTag
	for _, part := range strings.Split(input, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		tag := models.CollaborationTag(part)
		if !validTag(tag) {
			return "", fmt.Errorf("unknown category %q", part)
		}
		tags = append(tags, tag)
	}

	encoded := models.EncodeTags(tags)
	if encoded == nil {
		return "", nil
	}
	return *encoded, nil
}

func validTag(tag models.CollaborationTag) bool {
	for _, known := range models.TagOrder {
		if known == tag {
			return true
		}
	}
	return false
}

// displayValue shows the human label of the current value when the field is
// a selection.
func displayValue(current string, opts []option) string {
	for _, opt := range opts {
		if opt.ID == current {
			return opt.Label
		}
	}
	return current
}
