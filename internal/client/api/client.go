// Package api implements the HTTP client for the Kolab backend. All
// authenticated calls read the bearer credential from the token source right
// before the request; failures map onto the taxonomy in errors.go and are
// never retried.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kolab-hr/kolabctl/internal/models"
	"github.com/kolab-hr/kolabctl/pkg/api"
)

// CountriesURL is the unauthenticated third-party lookup for the country
// dropdown of the company form.
const CountriesURL = "https://restcountries.com/v3.1/all?fields=name,cca2"

//go:generate moq -out tokens_mock.go . TokenSource

// TokenSource yields the bearer credential attached to every request.
type TokenSource interface {
	// Credential returns the stored bearer token
	Credential(ctx context.Context) (string, error)
}

// Client представляет HTTP клиент для взаимодействия с Kolab backend
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
}

// NewClient создает новый API клиент
func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Login exchanges an externally obtained credential for the user profile via
// POST /api/login. The credential is sent explicitly; nothing is read from
// the token source because no session exists yet.
func (c *Client) Login(ctx context.Context, credential string) (*models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/api/login", credential, nil, &user)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &user, nil
}

// Create issues POST to a collection path.
func (c *Client) Create(ctx context.Context, path string, body any) error {
	return c.doAuthenticated(ctx, http.MethodPost, path, body, nil)
}

// Update issues PUT to a record path.
func (c *Client) Update(ctx context.Context, path string, body any) error {
	return c.doAuthenticated(ctx, http.MethodPut, path, body, nil)
}

// Delete issues DELETE to a record path.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.doAuthenticated(ctx, http.MethodDelete, path, nil, nil)
}

// ListCategories возвращает все категории проектов
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.doAuthenticated(ctx, http.MethodGet, "/api/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListIndustries возвращает все индустрии
func (c *Client) ListIndustries(ctx context.Context) ([]models.Industry, error) {
	var out []models.Industry
	if err := c.doAuthenticated(ctx, http.MethodGet, "/api/industries", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCompanies returns every company.
func (c *Client) ListCompanies(ctx context.Context) ([]models.Company, error) {
	var out []models.Company
	if err := c.doAuthenticated(ctx, http.MethodGet, "/api/companies", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCompany returns one company by id.
func (c *Client) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var out models.Company
	if err := c.doAuthenticated(ctx, http.MethodGet, "/api/companies/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListContacts returns the contacts of one company.
func (c *Client) ListContacts(ctx context.Context, companyID uuid.UUID) ([]models.Contact, error) {
	var out []models.Contact
	path := fmt.Sprintf("/api/companies/%s/contacts", companyID)
	if err := c.doAuthenticated(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProjects returns every project.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	if err := c.doAuthenticated(ctx, http.MethodGet, "/api/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProject returns one project by id.
func (c *Client) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var out models.Project
	if err := c.doAuthenticated(ctx, http.MethodGet, "/api/projects/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers returns every user.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.doAuthenticated(ctx, http.MethodGet, "/api/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUser returns one user by id.
func (c *Client) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var out models.User
	if err := c.doAuthenticated(ctx, http.MethodGet, "/api/users/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCollaborations returns every collaboration.
func (c *Client) ListCollaborations(ctx context.Context) ([]models.Collaboration, error) {
	var out []models.Collaboration
	if err := c.doAuthenticated(ctx, http.MethodGet, "/api/collaborations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CompanyCollaborations returns the collaborations of one company.
func (c *Client) CompanyCollaborations(ctx context.Context, companyID uuid.UUID) ([]models.Collaboration, error) {
	var out []models.Collaboration
	path := fmt.Sprintf("/api/companies/%s/collaborations", companyID)
	if err := c.doAuthenticated(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProjectCollaborations returns the collaborations of one project.
func (c *Client) ProjectCollaborations(ctx context.Context, projectID uuid.UUID) ([]models.Collaboration, error) {
	var out []models.Collaboration
	path := fmt.Sprintf("/api/projects/%s/collaborations", projectID)
	if err := c.doAuthenticated(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserProjects returns the projects one user is responsible for.
func (c *Client) UserProjects(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	var out []models.Project
	path := fmt.Sprintf("/api/users/%s/projects", userID)
	if err := c.doAuthenticated(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserCollaborations returns the collaborations one user is responsible for.
func (c *Client) UserCollaborations(ctx context.Context, userID uuid.UUID) ([]models.Collaboration, error) {
	var out []models.Collaboration
	path := fmt.Sprintf("/api/users/%s/collaborations", userID)
	if err := c.doAuthenticated(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Countries fetches the country lookup. The endpoint is public, so no
// credential is attached, and the absolute URL bypasses the base URL.
func (c *Client) Countries(ctx context.Context) ([]models.Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, CountriesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var out []models.Country
	if err := c.send(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// doAuthenticated reads the stored credential and performs the request.
func (c *Client) doAuthenticated(ctx context.Context, method, path string, body, result any) error {
	credential, err := c.tokens.Credential(ctx)
	if err != nil {
		return fmt.Errorf("failed to read credential: %w", err)
	}
	return c.do(ctx, method, path, credential, body, result)
}

// do выполняет HTTP запрос с указанным credential
func (c *Client) do(ctx context.Context, method, path, credential string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	return c.send(req, result)
}

// send executes the request and maps the outcome onto the error taxonomy.
func (c *Client) send(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// A canceled request is not a connectivity failure; the caller
		// asked for it and must discard the outcome.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := string(respBody)
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			message = errResp.Error
		}

		switch resp.StatusCode {
		case http.StatusBadRequest:
			return fmt.Errorf("%w: %s", ErrBadRequest, message)
		case http.StatusForbidden:
			return fmt.Errorf("%w: %s", ErrForbidden, message)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrNotFound, message)
		default:
			return &StatusError{StatusCode: resp.StatusCode, Message: message}
		}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
