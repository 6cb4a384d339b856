package table

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/kolab-hr/kolabctl/internal/models"
)

func testCompanies() []models.Company {
	return []models.Company{
		{ID: uuid.New(), Name: "zeta", Country: "Croatia", City: "Zagreb"},
		{ID: uuid.New(), Name: "Acme", Country: "Germany", City: "Berlin"},
		{ID: uuid.New(), Name: "midway", Country: "Croatia", City: "Split"},
	}
}

func names(rows []models.Company) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	rows := testCompanies()

	// регистр не учитывается
	filtered := Filter(rows, "ACM", func(c models.Company) string { return c.Name })
	require.Len(t, filtered, 1)
	assert.Equal(t, "Acme", filtered[0].Name)

	// пустой запрос оставляет все строки
	assert.Len(t, Filter(rows, "", func(c models.Company) string { return c.Name }), 3)
	assert.Len(t, Filter(rows, "   ", func(c models.Company) string { return c.Name }), 3)

	// подстрока в середине тоже совпадает
	filtered = Filter(rows, "dwa", func(c models.Company) string { return c.Name })
	require.Len(t, filtered, 1)
	assert.Equal(t, "midway", filtered[0].Name)

	assert.Empty(t, Filter(rows, "nothing", func(c models.Company) string { return c.Name }))
}

func TestSortByTogglesDirection(t *testing.T) {
	tbl := New(language.English, CompanyColumns())
	tbl.SetRows(testCompanies())

	// сортировка без учета регистра
	tbl.SortBy("name")
	assert.Equal(t, []string{"Acme", "midway", "zeta"}, names(tbl.Rows()))
	key, dir := tbl.SortKey()
	assert.Equal(t, "name", key)
	assert.Equal(t, Ascending, dir)

	// повторный запрос переворачивает направление
	tbl.SortBy("name")
	assert.Equal(t, []string{"zeta", "midway", "Acme"}, names(tbl.Rows()))
	_, dir = tbl.SortKey()
	assert.Equal(t, Descending, dir)

	// переключение на другую колонку сбрасывает в возрастание
	tbl.SortBy("city")
	assert.Equal(t, []string{"Acme", "midway", "zeta"}, names(tbl.Rows()))
	key, dir = tbl.SortKey()
	assert.Equal(t, "city", key)
	assert.Equal(t, Ascending, dir)
}

func TestSortByUnknownColumnIsInert(t *testing.T) {
	tbl := New(language.English, CompanyColumns())
	tbl.SetRows(testCompanies())

	tbl.SortBy("bogus")
	assert.Equal(t, []string{"zeta", "Acme", "midway"}, names(tbl.Rows()))
	key, _ := tbl.SortKey()
	assert.Equal(t, "", key)
}

func TestSortByNonSortableColumnIsInert(t *testing.T) {
	tbl := New(language.English, ContactColumns())
	tbl.SetRows([]models.Contact{
		{ID: uuid.New(), FirstName: "Bob", LastName: "B", Phone: "999-999-999"},
		{ID: uuid.New(), FirstName: "Ann", LastName: "A", Phone: "111-111-111"},
	})

	// колонка phone не сортируемая
	tbl.SortBy("phone")
	assert.Equal(t, "Bob", tbl.Rows()[0].FirstName)
}

func TestSortNumericColumn(t *testing.T) {
	goalSmall := int64(5)
	goalBig := int64(40)

	tbl := New(language.English, ProjectColumns())
	tbl.SetRows([]models.Project{
		{ID: uuid.New(), Name: "big", Goal: &goalBig},
		{ID: uuid.New(), Name: "none"},
		{ID: uuid.New(), Name: "small", Goal: &goalSmall},
	})

	// числовое сравнение, отсутствующее значение считается нулем
	tbl.SortBy("goal")
	rows := tbl.Rows()
	assert.Equal(t, "none", rows[0].Name)
	assert.Equal(t, "small", rows[1].Name)
	assert.Equal(t, "big", rows[2].Name)
}

func TestSetRowsKeepsSort(t *testing.T) {
	tbl := New(language.English, CompanyColumns())
	tbl.SetRows(testCompanies())
	tbl.SortBy("name")

	// обновление данных не теряет выбранный порядок
	tbl.SetRows(testCompanies())
	assert.Equal(t, []string{"Acme", "midway", "zeta"}, names(tbl.Rows()))
}

func TestSortIsStable(t *testing.T) {
	a := models.Company{ID: uuid.New(), Name: "first", Country: "Croatia"}
	b := models.Company{ID: uuid.New(), Name: "second", Country: "Croatia"}

	tbl := New(language.English, CompanyColumns())
	tbl.SetRows([]models.Company{a, b})

	tbl.SortBy("country")
	rows := tbl.Rows()
	assert.Equal(t, a.ID, rows[0].ID)
	assert.Equal(t, b.ID, rows[1].ID)
}

func TestCollaborationLabel(t *testing.T) {
	collab := models.Collaboration{
		Project: &models.Project{Name: "Job Fair"},
		Company: &models.Company{Name: "Acme"},
	}

	assert.Equal(t, "Job Fair", CollaborationLabel(CollaborationsOfCompany)(collab))
	assert.Equal(t, "Acme", CollaborationLabel(CollaborationsOfProject)(collab))
	assert.Equal(t, "Job Fair - Acme", CollaborationLabel(CollaborationsOfUser)(collab))
	assert.Equal(t, "Job Fair - Acme", CollaborationLabel(CollaborationsAll)(collab))

	// отсутствующие ссылки не роняют поиск
	assert.Equal(t, " - ", CollaborationLabel(CollaborationsAll)(models.Collaboration{}))
}
