package table

import (
	"strconv"

	"github.com/kolab-hr/kolabctl/internal/models"
	"github.com/kolab-hr/kolabctl/internal/validation"
)

// CollaborationContext says which page a collaboration listing belongs to;
// it decides both the search label and the leading column.
type CollaborationContext int

const (
	// CollaborationsAll is the standalone listing of every collaboration.
	CollaborationsAll CollaborationContext = iota
	// CollaborationsOfCompany lists one company's collaborations, so rows
	// are told apart by project.
	CollaborationsOfCompany
	// CollaborationsOfProject lists one project's collaborations, so rows
	// are told apart by company.
	CollaborationsOfProject
	// CollaborationsOfUser lists the collaborations a user is responsible
	// for, labelled "project - company".
	CollaborationsOfUser
)

func CategoryColumns() []Column[models.Category] {
	return []Column[models.Category]{
		{Key: "name", Title: "Name", String: func(c models.Category) string { return c.Name }, Sortable: true},
	}
}

func IndustryColumns() []Column[models.Industry] {
	return []Column[models.Industry]{
		{Key: "name", Title: "Name", String: func(i models.Industry) string { return i.Name }, Sortable: true},
	}
}

func ContactColumns() []Column[models.Contact] {
	return []Column[models.Contact]{
		{Key: "name", Title: "Name", String: models.Contact.FullName, Sortable: true},
		{Key: "email", Title: "Email", String: func(c models.Contact) string { return c.Email }, Sortable: true},
		{Key: "phone", Title: "Phone", String: func(c models.Contact) string { return c.Phone }},
		{Key: "position", Title: "Position", String: func(c models.Contact) string { return c.Position }, Sortable: true},
	}
}

func UserColumns() []Column[models.User] {
	return []Column[models.User]{
		{Key: "name", Title: "Name", String: models.User.FullName, Sortable: true},
		{Key: "nickname", Title: "Nickname", String: func(u models.User) string { return u.Nickname }, Sortable: true},
		{Key: "email", Title: "Email", String: func(u models.User) string { return u.Email }, Sortable: true},
		{Key: "authorization", Title: "Authorization", String: func(u models.User) string { return string(u.Authorization) }, Sortable: true},
	}
}

func CompanyColumns() []Column[models.Company] {
	return []Column[models.Company]{
		{Key: "name", Title: "Name", String: func(c models.Company) string { return c.Name }, Sortable: true},
		{Key: "industry", Title: "Industry", String: func(c models.Company) string {
			if c.Industry == nil {
				return ""
			}
			return c.Industry.Name
		}, Sortable: true},
		{Key: "categorization", Title: "ABC", String: func(c models.Company) string {
			if c.Categorization == "" {
				return "Unknown"
			}
			return string(c.Categorization)
		}, Sortable: true},
		{Key: "country", Title: "Country", String: func(c models.Company) string { return c.Country }, Sortable: true},
		{Key: "city", Title: "City", String: func(c models.Company) string { return c.City }, Sortable: true},
	}
}

func ProjectColumns() []Column[models.Project] {
	return []Column[models.Project]{
		{Key: "name", Title: "Name", String: func(p models.Project) string { return p.Name }, Sortable: true},
		{Key: "category", Title: "Category", String: func(p models.Project) string {
			if p.Category == nil {
				return ""
			}
			return p.Category.Name
		}, Sortable: true},
		{Key: "type", Title: "Type", String: func(p models.Project) string { return models.ProjectTypeLabel(p.Type) }, Sortable: true},
		{Key: "startDate", Title: "Start date", String: func(p models.Project) string {
			return p.StartDate.Format(validation.DateLayout)
		}, Number: func(p models.Project) float64 { return float64(p.StartDate.Unix()) }, Sortable: true},
		{Key: "endDate", Title: "End date", String: func(p models.Project) string {
			return p.EndDate.Format(validation.DateLayout)
		}, Number: func(p models.Project) float64 { return float64(p.EndDate.Unix()) }, Sortable: true},
		{Key: "goal", Title: "Goal", String: func(p models.Project) string {
			if p.Goal == nil {
				return ""
			}
			return strconv.FormatInt(*p.Goal, 10)
		}, Number: func(p models.Project) float64 {
			if p.Goal == nil {
				return 0
			}
			return float64(*p.Goal)
		}, Sortable: true},
	}
}

// CollaborationColumns renders the context column first, then the shared
// status/achieved/responsible block.
func CollaborationColumns(ctx CollaborationContext) []Column[models.Collaboration] {
	cols := []Column[models.Collaboration]{
		{Key: "label", Title: collaborationTitle(ctx), String: CollaborationLabel(ctx), Sortable: true},
		{Key: "status", Title: "Status", String: func(c models.Collaboration) string { return c.Status.Label() }, Sortable: true},
		{Key: "achievedValue", Title: "Achieved", String: func(c models.Collaboration) string {
			if c.AchievedValue == nil {
				return ""
			}
			return strconv.FormatFloat(*c.AchievedValue, 'f', -1, 64)
		}, Number: func(c models.Collaboration) float64 {
			if c.AchievedValue == nil {
				return 0
			}
			return *c.AchievedValue
		}, Sortable: true},
		{Key: "responsible", Title: "Responsible", String: func(c models.Collaboration) string {
			if c.Responsible == nil {
				return ""
			}
			return c.Responsible.FullName()
		}, Sortable: true},
	}
	return cols
}

func collaborationTitle(ctx CollaborationContext) string {
	switch ctx {
	case CollaborationsOfCompany:
		return "Project"
	case CollaborationsOfProject:
		return "Company"
	default:
		return "Collaboration"
	}
}

// CollaborationLabel returns the search label of a collaboration row for
// the given page context.
func CollaborationLabel(ctx CollaborationContext) func(models.Collaboration) string {
	return func(c models.Collaboration) string {
		project := ""
		if c.Project != nil {
			project = c.Project.Name
		}
		company := ""
		if c.Company != nil {
			company = c.Company.Name
		}

		switch ctx {
		case CollaborationsOfCompany:
			return project
		case CollaborationsOfProject:
			return company
		default:
			return project + " - " + company
		}
	}
}
