package form

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kolab-hr/kolabctl/internal/models"
	"github.com/kolab-hr/kolabctl/internal/validation"
	"github.com/kolab-hr/kolabctl/pkg/api"
)

// Category returns the project category form.
func Category() Spec {
	return Spec{
		Entity: "category",
		Path:   "/api/categories",
		Fields: []Field{
			{Name: "name", Label: "Category name", Validator: validation.Name, Trim: true},
		},
		Messages: Messages{
			Noun:         "category",
			Title:        "Category",
			CreateAction: "create",
			CreateVerb:   "created",
			Privilege:    "Higher privileges are required for managing categories.",
			DisplayName:  func(v Values) string { return v["name"] },
		},
		Serialize: func(v Values) (any, error) {
			return api.CategoryRequest{Name: v["name"]}, nil
		},
	}
}

// Industry returns the industry form.
func Industry() Spec {
	return Spec{
		Entity: "industry",
		Path:   "/api/industries",
		Fields: []Field{
			{Name: "name", Label: "Industry name", Validator: validation.Name, Trim: true},
		},
		Messages: Messages{
			Noun:         "industry",
			Title:        "Industry",
			CreateAction: "create",
			CreateVerb:   "created",
			Privilege:    "Higher privileges are required for managing industries.",
			DisplayName:  func(v Values) string { return v["name"] },
		},
		Serialize: func(v Values) (any, error) {
			return api.IndustryRequest{Name: v["name"]}, nil
		},
	}
}

// Contact returns the contact form of one company. The owning company is
// part of the endpoint, not a field.
func Contact(companyID uuid.UUID) Spec {
	return Spec{
		Entity: "contact",
		Path:   fmt.Sprintf("/api/companies/%s/contacts", companyID),
		Fields: []Field{
			{Name: "firstName", Label: "First name", Validator: validation.Name, Trim: true},
			{Name: "lastName", Label: "Last name", Validator: validation.Name, Trim: true},
			{Name: "email", Label: "Email", Validator: validation.Email, Trim: true},
			{Name: "phone", Label: "Phone", Validator: validation.Phone, Trim: true},
			{Name: "position", Label: "Position in company", Validator: validation.MaxLength(validation.MaxNameLen), Trim: true},
		},
		Messages: Messages{
			Noun:         "contact",
			Title:        "Contact",
			CreateAction: "add",
			CreateVerb:   "added",
			Privilege:    "Project member privileges are required for manipulating contact.",
			DisplayName:  func(v Values) string { return v["firstName"] + " " + v["lastName"] },
		},
		Serialize: func(v Values) (any, error) {
			return api.ContactRequest{
				FirstName: v["firstName"],
				LastName:  v["lastName"],
				Email:     v["email"],
				Phone:     v["phone"],
				Position:  v["position"],
			}, nil
		},
	}
}

// User returns the user form.
func User() Spec {
	return Spec{
		Entity: "user",
		Path:   "/api/users",
		Fields: []Field{
			{Name: "name", Label: "First name", Validator: validation.Name, Trim: true},
			{Name: "surname", Label: "Last name", Validator: validation.Name, Trim: true},
			{Name: "nickname", Label: "Nickname", Validator: validation.Name, Trim: true},
			{Name: "email", Label: "Email", Validator: validation.Email, Trim: true},
			{Name: "authorization", Label: "Authorization", Default: models.Authorizations[0], Validator: validation.OneOf(models.Authorizations...)},
			{Name: "description", Label: "Description", Validator: validation.MaxLength(validation.MaxTextLen), Trim: true},
		},
		Messages: Messages{
			Noun:         "user",
			Title:        "User",
			CreateAction: "add",
			CreateVerb:   "added",
			Privilege:    "Administrator privileges are required for manipulating users.",
			DisplayName:  func(v Values) string { return v["name"] + " " + v["surname"] },
		},
		Serialize: func(v Values) (any, error) {
			return api.UserRequest{
				Name:          v["name"],
				Surname:       v["surname"],
				Nickname:      v["nickname"],
				Email:         v["email"],
				Authorization: v["authorization"],
				Description:   v["description"],
			}, nil
		},
	}
}

// Company returns the company form.
func Company() Spec {
	return Spec{
		Entity: "company",
		Path:   "/api/companies",
		Fields: []Field{
			{Name: "name", Label: "Company name", Validator: validation.Name, Trim: true},
			{Name: "industryId", Label: "Industry", Validator: validation.NotEmpty},
			{Name: "categorization", Label: "ABC categorization", Default: models.Categorizations[0], Validator: validation.OneOf(models.Categorizations...)},
			{Name: "budgetPlanningMonth", Label: "Budget planning month", Default: models.Months[0], Validator: validation.OneOf(models.Months...)},
			{Name: "country", Label: "Country", Validator: validation.LengthBetween(4, 56), Trim: true},
			{Name: "city", Label: "City", Validator: validation.LengthBetween(2, 115), Trim: true},
			{Name: "zip", Label: "Zip code", Validator: validation.Zip, Trim: true},
			{Name: "address", Label: "Address", Validator: validation.LengthBetween(2, 115), Trim: true},
			{Name: "webLink", Label: "Webpage URL", Validator: validation.WebLink, Trim: true},
			{Name: "description", Label: "Description", Validator: validation.MaxLength(validation.MaxTextLen), Trim: true},
			{Name: "contactInFuture", Label: "Contact in future", Default: "true", Validator: validation.OneOf("true", "false")},
		},
		Messages: Messages{
			Noun:         "company",
			Title:        "Company",
			CreateAction: "add",
			CreateVerb:   "added",
			Privilege:    "Higher privileges are required for managing companies.",
			DisplayName:  func(v Values) string { return v["name"] },
		},
		Serialize: serializeCompany,
	}
}

func serializeCompany(v Values) (any, error) {
	industryID, err := uuid.Parse(v["industryId"])
	if err != nil {
		return nil, fmt.Errorf("invalid industry id: %w", err)
	}

	var zip *int64
	if v["zip"] != "" {
		z, err := strconv.ParseInt(v["zip"], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid zip: %w", err)
		}
		zip = &z
	}

	return api.CompanyRequest{
		Name:                v["name"],
		IndustryID:          industryID,
		Categorization:      nullIfUnknown(v["categorization"], "Unknown"),
		BudgetPlanningMonth: nullIfUnknown(v["budgetPlanningMonth"], "UNKNOWN"),
		Country:             v["country"],
		Zip:                 zip,
		City:                v["city"],
		Address:             v["address"],
		WebLink:             v["webLink"],
		Description:         v["description"],
		ContactInFuture:     v["contactInFuture"] == "true",
	}, nil
}

// Project returns the project form. Date defaults are today and six months
// out, both inside the acceptable window.
func Project() Spec {
	now := time.Now()
	return Spec{
		Entity: "project",
		Path:   "/api/projects",
		Fields: []Field{
			{Name: "name", Label: "Project name", Validator: validation.Name, Trim: true},
			{Name: "categoryId", Label: "Category", Validator: validation.NotEmpty},
			{Name: "type", Label: "Project type", Default: models.ProjectTypes[0], Validator: validation.OneOf(models.ProjectTypes...)},
			{
				Name:        "startDate",
				Label:       "Start date",
				Default:     now.Format(validation.DateLayout),
				Validator:   validation.StartDateString,
				Trim:        true,
				Revalidates: []string{"endDate"},
			},
			{
				Name:    "endDate",
				Label:   "End date",
				Default: now.AddDate(0, 6, 0).Format(validation.DateLayout),
				CrossValidator: func(v Values, input string) bool {
					return validation.EndDateAfter(func() string { return v["startDate"] })(input)
				},
				Trim: true,
			},
			{Name: "responsibleId", Label: "Project responsible", Validator: validation.NotEmpty},
			{Name: "goal", Label: "Goal", Validator: validation.Goal, Trim: true},
		},
		Messages: Messages{
			Noun:         "project",
			Title:        "Project",
			CreateAction: "add",
			CreateVerb:   "added",
			Privilege:    "Moderator privileges are required for manipulating projects.",
			DisplayName:  func(v Values) string { return v["name"] },
		},
		Serialize: serializeProject,
	}
}

func serializeProject(v Values) (any, error) {
	categoryID, err := uuid.Parse(v["categoryId"])
	if err != nil {
		return nil, fmt.Errorf("invalid category id: %w", err)
	}
	responsibleID, err := uuid.Parse(v["responsibleId"])
	if err != nil {
		return nil, fmt.Errorf("invalid responsible id: %w", err)
	}

	start, err := time.Parse(validation.DateLayout, v["startDate"])
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.Parse(validation.DateLayout, v["endDate"])
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}

	var goal *int64
	if v["goal"] != "" {
		g, err := strconv.ParseInt(v["goal"], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid goal: %w", err)
		}
		goal = &g
	}

	return api.ProjectRequest{
		Name:          v["name"],
		CategoryID:    categoryID,
		Type:          strings.ToUpper(v["type"]),
		StartDate:     start.UTC().Format(time.RFC3339),
		EndDate:       end.UTC().Format(time.RFC3339),
		ResponsibleID: responsibleID,
		Goal:          goal,
	}, nil
}

// Collaboration returns the collaboration form. Context defaults (a
// preselected project or company id) are supplied through New's defaults
// and start valid when present.
func Collaboration() Spec {
	return Spec{
		Entity: "collaboration",
		Path:   "/api/collaborations",
		Fields: []Field{
			{Name: "projectId", Label: "Project", Validator: validation.NotEmpty},
			{
				Name:      "companyId",
				Label:     "Company",
				Validator: validation.NotEmpty,
				// Contacts belong to the selected company; picking a new
				// company discards the previous choice.
				Invalidates: []string{"contactId"},
			},
			{Name: "responsibleId", Label: "Collaboration responsible", Validator: validation.NotEmpty},
			{Name: "status", Label: "Status", Default: string(models.StatusTodo), Validator: statusValidator},
			{Name: "contactId", Label: "Contact in company", Validator: validation.NotEmpty},
			{Name: "category", Label: "Categories", Validator: validation.CategoryTags},
			{Name: "achievedValue", Label: "Achieved value", Default: "0", Validator: validation.AchievedValue, Trim: true},
			{Name: "comment", Label: "Comment", Validator: validation.MaxLength(validation.MaxTextLen), Trim: true},
		},
		Messages: Messages{
			Noun:         "collaboration",
			Title:        "Collaboration",
			CreateAction: "add",
			CreateVerb:   "added",
			Privilege:    "Project member privileges are required for manipulating collaborations.",
			DisplayName:  func(v Values) string { return "" },
		},
		Serialize: serializeCollaboration,
	}
}

func statusValidator(input string) bool {
	return models.ValidStatus(input)
}

func serializeCollaboration(v Values) (any, error) {
	projectID, err := uuid.Parse(v["projectId"])
	if err != nil {
		return nil, fmt.Errorf("invalid project id: %w", err)
	}
	companyID, err := uuid.Parse(v["companyId"])
	if err != nil {
		return nil, fmt.Errorf("invalid company id: %w", err)
	}
	responsibleID, err := uuid.Parse(v["responsibleId"])
	if err != nil {
		return nil, fmt.Errorf("invalid responsible id: %w", err)
	}
	contactID, err := uuid.Parse(v["contactId"])
	if err != nil {
		return nil, fmt.Errorf("invalid contact id: %w", err)
	}

	var achieved *float64
	if v["achievedValue"] != "" {
		a, err := strconv.ParseFloat(v["achievedValue"], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid achieved value: %w", err)
		}
		achieved = &a
	}

	var category *string
	if v["category"] != "" {
		c := v["category"]
		category = &c
	}

	return api.CollaborationRequest{
		ProjectID:     projectID,
		CompanyID:     companyID,
		ResponsibleID: responsibleID,
		Status:        v["status"],
		ContactID:     contactID,
		Category:      category,
		AchievedValue: achieved,
		Comment:       v["comment"],
	}, nil
}

// nullIfUnknown maps the "Unknown" dropdown option to a JSON null.
func nullIfUnknown(v, unknown string) *string {
	if v == "" || v == unknown {
		return nil
	}
	return &v
}
