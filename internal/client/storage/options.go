package storage

import "context"

//go:generate moq -out options_mock.go . OptionStorage

// OptionStorage caches reference lists the forms offer as dropdown options
// (industries, categories, users, countries). When a fetch supporting a
// dropdown fails, the form falls back to the cached list and stays usable.
type OptionStorage interface {
	// SaveOptions stores the serialized option list under the given key
	SaveOptions(ctx context.Context, key string, data []byte) error

	// GetOptions retrieves the cached option list
	// Returns ErrOptionsNotFound if the key was never cached
	GetOptions(ctx context.Context, key string) ([]byte, error)
}

// Cache keys for option lists.
const (
	OptionsIndustries = "industries"
	OptionsCategories = "categories"
	OptionsUsers      = "users"
	OptionsCountries  = "countries"
	OptionsCompanies  = "companies"
	OptionsProjects   = "projects"
)
