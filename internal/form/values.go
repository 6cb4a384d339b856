package form

import (
	"strconv"

	"github.com/kolab-hr/kolabctl/internal/models"
	"github.com/kolab-hr/kolabctl/internal/validation"
)

// The *Values helpers flatten a stored record back into form values so an
// edit form opens showing exactly what the server holds.

func CategoryValues(c models.Category) Values {
	return Values{"name": c.Name}
}

func IndustryValues(i models.Industry) Values {
	return Values{"name": i.Name}
}

func ContactValues(c models.Contact) Values {
	return Values{
		"firstName": c.FirstName,
		"lastName":  c.LastName,
		"email":     c.Email,
		"phone":     c.Phone,
		"position":  c.Position,
	}
}

func UserValues(u models.User) Values {
	return Values{
		"name":          u.Name,
		"surname":       u.Surname,
		"nickname":      u.Nickname,
		"email":         u.Email,
		"authorization": string(u.Authorization),
		"description":   u.Description,
	}
}

func CompanyValues(c models.Company) Values {
	v := Values{
		"name":                c.Name,
		"industryId":          "",
		"categorization":      models.Categorizations[0],
		"budgetPlanningMonth": models.Months[0],
		"country":             c.Country,
		"city":                c.City,
		"zip":                 "",
		"address":             c.Address,
		"webLink":             c.WebLink,
		"description":         c.Description,
		"contactInFuture":     strconv.FormatBool(c.ContactInFuture),
	}
	if c.Industry != nil {
		v["industryId"] = c.Industry.ID.String()
	}
	if c.Categorization != "" {
		v["categorization"] = string(c.Categorization)
	}
	if c.BudgetPlanningMonth != "" {
		v["budgetPlanningMonth"] = c.BudgetPlanningMonth
	}
	if c.Zip != nil {
		v["zip"] = strconv.FormatInt(*c.Zip, 10)
	}
	return v
}

func ProjectValues(p models.Project) Values {
	v := Values{
		"name":          p.Name,
		"categoryId":    "",
		"type":          models.ProjectTypeLabel(p.Type),
		"startDate":     p.StartDate.Format(validation.DateLayout),
		"endDate":       p.EndDate.Format(validation.DateLayout),
		"responsibleId": "",
		"goal":          "",
	}
	if p.Category != nil {
		v["categoryId"] = p.Category.ID.String()
	}
	if p.Responsible != nil {
		v["responsibleId"] = p.Responsible.ID.String()
	}
	if p.Goal != nil {
		v["goal"] = strconv.FormatInt(*p.Goal, 10)
	}
	return v
}

func CollaborationValues(c models.Collaboration) Values {
	v := Values{
		"projectId":     "",
		"companyId":     "",
		"responsibleId": "",
		"status":        string(c.Status),
		"contactId":     "",
		"category":      "",
		"achievedValue": "",
		"comment":       c.Comment,
	}
	if c.Project != nil {
		v["projectId"] = c.Project.ID.String()
	}
	if c.Company != nil {
		v["companyId"] = c.Company.ID.String()
	}
	if c.Responsible != nil {
		v["responsibleId"] = c.Responsible.ID.String()
	}
	if c.Contact != nil {
		v["contactId"] = c.Contact.ID.String()
	}
	if c.Category != nil {
		v["category"] = *c.Category
	}
	if c.AchievedValue != nil {
		v["achievedValue"] = strconv.FormatFloat(*c.AchievedValue, 'f', -1, 64)
	}
	return v
}
