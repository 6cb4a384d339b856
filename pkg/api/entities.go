// Package api defines the JSON payloads exchanged with the Kolab backend.
// These mirror the backend DTOs field for field; the client builds them from
// form values and never sends anything else.
package api

import "github.com/google/uuid"

// CategoryRequest представляет payload для create/update категории проекта
type CategoryRequest struct {
	Name string `json:"name"`
}

// IndustryRequest представляет payload для create/update индустрии
type IndustryRequest struct {
	Name string `json:"name"`
}

// ContactRequest is the payload for creating or updating a company contact.
// The owning company is addressed through the URL, not the body.
type ContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Position  string `json:"position,omitempty"`
}

// UserRequest is the payload for creating or updating a user.
type UserRequest struct {
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	Nickname      string `json:"nickname"`
	Email         string `json:"email"`
	Authorization string `json:"authorization"` // USER or ADMINISTRATOR
	Description   string `json:"description,omitempty"`
}

// CompanyRequest is the payload for creating or updating a company.
// Categorization and BudgetPlanningMonth are null when "Unknown" was chosen.
type CompanyRequest struct {
	Name                string    `json:"name"`
	IndustryID          uuid.UUID `json:"industryId"`
	Categorization      *string   `json:"categorization"`
	BudgetPlanningMonth *string   `json:"budgetPlanningMonth"`
	Country             string    `json:"country"`
	Zip                 *int64    `json:"zip"`
	City                string    `json:"city"`
	Address             string    `json:"address"`
	WebLink             string    `json:"webLink,omitempty"`
	Description         string    `json:"description,omitempty"`
	ContactInFuture     bool      `json:"contactInFuture"`
}

// ProjectRequest is the payload for creating or updating a project.
// Dates are RFC 3339; Type is upper-cased (INTERNAL/EXTERNAL).
type ProjectRequest struct {
	Name          string    `json:"name"`
	CategoryID    uuid.UUID `json:"categoryId"`
	Type          string    `json:"type"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	ResponsibleID uuid.UUID `json:"responsibleId"`
	Goal          *int64    `json:"goal"`
}

// CollaborationRequest is the payload for creating or updating a collaboration.
// Category carries the encoded tag set (e.g. "FINANCIAL_ACADEMIC"), null when empty.
type CollaborationRequest struct {
	ProjectID     uuid.UUID `json:"projectId"`
	CompanyID     uuid.UUID `json:"companyId"`
	ResponsibleID uuid.UUID `json:"responsibleId"`
	Status        string    `json:"status"`
	ContactID     uuid.UUID `json:"contactId"`
	Category      *string   `json:"category"`
	AchievedValue *float64  `json:"achievedValue"`
	Comment       string    `json:"comment,omitempty"`
}

// ErrorResponse представляет тело ответа при ошибке
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
