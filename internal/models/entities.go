// Package models holds the entity records the Kolab backend returns.
// List and detail endpoints respond with nested records (a company carries
// its industry, a collaboration carries project/company/contact/responsible),
// so these are read models, not the write payloads from pkg/api.
package models

import (
	"time"

	"github.com/google/uuid"
)

// UserAuthorization определяет уровень доступа пользователя
type UserAuthorization string

const (
	AuthorizationUser          UserAuthorization = "USER"
	AuthorizationAdministrator UserAuthorization = "ADMINISTRATOR"
)

// ProjectType distinguishes internal faculty projects from external ones.
type ProjectType string

const (
	ProjectInternal ProjectType = "INTERNAL"
	ProjectExternal ProjectType = "EXTERNAL"
)

// Categorization is the ABC categorization of a company.
// An empty value on the wire (null) is shown as "Unknown".
type Categorization string

const (
	CategorizationA Categorization = "A"
	CategorizationB Categorization = "B"
	CategorizationC Categorization = "C"
)

// Category is a project category (e.g. a student branch).
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Industry is a company industry.
type Industry struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Contact is a person at a company.
type Contact struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Position  string    `json:"position,omitempty"`
}

// FullName returns "firstName lastName", the label used in search and dropdowns.
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// User is a Kolab user.
type User struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	Surname       string            `json:"surname"`
	Nickname      string            `json:"nickname"`
	Email         string            `json:"email"`
	Authorization UserAuthorization `json:"authorization"`
	Description   string            `json:"description,omitempty"`
}

// FullName returns "name surname".
func (u User) FullName() string {
	return u.Name + " " + u.Surname
}

// Company is a partner company together with its industry.
type Company struct {
	ID                  uuid.UUID      `json:"id"`
	Industry            *Industry      `json:"industry"`
	Name                string         `json:"name"`
	Categorization      Categorization `json:"categorization,omitempty"`
	BudgetPlanningMonth string         `json:"budgetPlanningMonth,omitempty"`
	Country             string         `json:"country"`
	Zip                 *int64         `json:"zip"`
	City                string         `json:"city"`
	Address             string         `json:"address"`
	WebLink             string         `json:"webLink,omitempty"`
	Description         string         `json:"description,omitempty"`
	ContactInFuture     bool           `json:"contactInFuture"`
}

// Project is a project with its category and responsible user.
type Project struct {
	ID          uuid.UUID   `json:"id"`
	Category    *Category   `json:"category"`
	Name        string      `json:"name"`
	Type        ProjectType `json:"type"`
	StartDate   time.Time   `json:"startDate"`
	EndDate     time.Time   `json:"endDate"`
	Goal        *int64      `json:"goal"`
	Responsible *User       `json:"responsible"`
}

// Collaboration links one project and one company.
type Collaboration struct {
	ID            uuid.UUID           `json:"id"`
	Project       *Project            `json:"project"`
	Company       *Company            `json:"company"`
	Contact       *Contact            `json:"contact"`
	Responsible   *User               `json:"responsible"`
	Category      *string             `json:"category"`
	Status        CollaborationStatus `json:"status"`
	Comment       string              `json:"comment,omitempty"`
	AchievedValue *float64            `json:"achievedValue"`
}

// Country is one entry of the restcountries.com lookup.
type Country struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	CCA2 string `json:"cca2"`
}
