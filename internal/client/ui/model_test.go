package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/kolab-hr/kolabctl/internal/client/api"
	"github.com/kolab-hr/kolabctl/internal/client/confirm"
	"github.com/kolab-hr/kolabctl/internal/form"
	"github.com/kolab-hr/kolabctl/internal/models"
	"github.com/kolab-hr/kolabctl/internal/notify"
	"github.com/kolab-hr/kolabctl/internal/table"
)

type staticTokens struct{}

func (staticTokens) Credential(context.Context) (string, error) {
	return "secret-token", nil
}

// newTestModel wires the dashboard model to an httptest backend.
func newTestModel(t *testing.T, handler http.Handler) *model {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, staticTokens{}, time.Second)
	center := notify.NewCenter(nil)
	deps := Deps{
		API:    client,
		Flow:   confirm.NewFlow(client, center),
		Center: center,
		Locale: language.English,
	}
	return newModel(context.Background(), deps)
}

// categoriesBackend serves the categories screen and counts creates.
func categoriesBackend(creates *atomic.Int32) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/categories" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[]`))
		case http.MethodPost:
			creates.Add(1)
			w.WriteHeader(http.StatusCreated)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

func TestEnterDoesNotSubmitInvalidForm(t *testing.T) {
	var creates atomic.Int32
	m := newTestModel(t, categoriesBackend(&creates))

	m.active = m.screens[0]
	m.openAddForm()
	require.NotNil(t, m.form)
	require.False(t, m.form.f.Valid())

	m.updateForm(tea.KeyMsg{Type: tea.KeyEnter})

	// невалидная форма остается открытой, запрос не отправляется
	assert.Equal(t, stateForm, m.state)
	assert.NotNil(t, m.form)
	assert.Equal(t, int32(0), creates.Load())
}

func TestEnterSubmitsValidForm(t *testing.T) {
	var creates atomic.Int32
	m := newTestModel(t, categoriesBackend(&creates))

	m.active = m.screens[0]
	m.openAddForm()
	require.NotNil(t, m.form)

	m.form.f.Set("name", "Robotics")
	require.True(t, m.form.f.Valid())

	m.updateForm(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, int32(1), creates.Load())
	assert.Nil(t, m.form)
	assert.Equal(t, stateList, m.state)
	assert.Equal(t, "Category Robotics created.", m.toast)
	assert.Equal(t, notify.Success, m.toastKind)
}

func TestEscDiscardsFormEdits(t *testing.T) {
	var creates atomic.Int32
	m := newTestModel(t, categoriesBackend(&creates))

	m.active = m.screens[0]
	m.openAddForm()
	require.NotNil(t, m.form)

	m.form.f.Set("name", "Robotics")
	m.updateForm(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, m.form)
	assert.Equal(t, stateList, m.state)
	assert.Equal(t, int32(0), creates.Load())

	// повторное открытие дает чистое состояние
	m.openAddForm()
	require.NotNil(t, m.form)
	assert.Empty(t, m.form.f.Value("name"))
}

func TestTypingReachesFormState(t *testing.T) {
	var creates atomic.Int32
	m := newTestModel(t, categoriesBackend(&creates))

	m.active = m.screens[0]
	m.openAddForm()
	require.NotNil(t, m.form)

	m.updateForm(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Robotics")})

	assert.Equal(t, "Robotics", m.form.f.Value("name"))
	assert.True(t, m.form.f.Valid())
}

func TestRowsKeepCacheInServerOrder(t *testing.T) {
	m := newTestModel(t, http.NotFoundHandler())

	fetched := []models.Category{
		{ID: uuid.New(), Name: "zeta"},
		{ID: uuid.New(), Name: "Acme"},
		{ID: uuid.New(), Name: "midway"},
	}

	s := newScreen(m, "Categories", "Category",
		table.CategoryColumns(),
		func(c models.Category) string { return c.Name },
		func() ([]models.Category, error) { return fetched, nil },
		func(c models.Category) string { return c.ID.String() },
		func(id string) string { return "/api/categories/" + id },
		form.Category,
		form.CategoryValues,
	)
	require.NoError(t, s.fetch())

	sorted := s.rows("", "name", false)
	require.Len(t, sorted, 3)
	assert.Equal(t, "Acme", sorted[0].cells[0])

	// несортированная проекция после сортированной сохраняет серверный порядок
	rows := s.rows("", "", false)
	require.Len(t, rows, 3)
	assert.Equal(t, "zeta", rows[0].cells[0])
	assert.Equal(t, "Acme", rows[1].cells[0])
	assert.Equal(t, "midway", rows[2].cells[0])
}
