package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntity(t *testing.T) {
	tests := []struct {
		arg  string
		want entityKind
	}{
		{arg: "category", want: entityCategory},
		{arg: "categories", want: entityCategory},
		{arg: "Industries", want: entityIndustry},
		{arg: "company", want: entityCompany},
		{arg: "contacts", want: entityContact},
		{arg: "PROJECT", want: entityProject},
		{arg: "users", want: entityUser},
		{arg: "collaboration", want: entityCollaboration},
	}

	for _, tt := range tests {
		got, err := parseEntity(tt.arg)
		require.NoError(t, err, tt.arg)
		assert.Equal(t, tt.want, got)
	}

	_, err := parseEntity("widget")
	assert.Error(t, err)
}

func TestResolveInput(t *testing.T) {
	opts := []option{
		{ID: "id-1", Label: "Robotics"},
		{ID: "id-2", Label: "Energy"},
	}

	// номер варианта из списка
	got, err := resolveInput("industryId", "2", opts)
	require.NoError(t, err)
	assert.Equal(t, "id-2", got)

	// точный id
	got, err = resolveInput("industryId", "id-1", opts)
	require.NoError(t, err)
	assert.Equal(t, "id-1", got)

	// подпись без учета регистра
	got, err = resolveInput("industryId", "robotics", opts)
	require.NoError(t, err)
	assert.Equal(t, "id-1", got)

	_, err = resolveInput("industryId", "5", opts)
	assert.Error(t, err)

	_, err = resolveInput("industryId", "Chemistry", opts)
	assert.Error(t, err)

	// свободный ввод без вариантов проходит как есть
	got, err = resolveInput("name", "Acme", nil)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got)
}

func TestResolveTags(t *testing.T) {
	got, err := resolveTags("financial, academic")
	require.NoError(t, err)
	assert.Equal(t, "FINANCIAL_ACADEMIC", got)

	// порядок ввода не влияет на каноническую форму
	got, err = resolveTags("ACADEMIC,MATERIAL,FINANCIAL")
	require.NoError(t, err)
	assert.Equal(t, "FINANCIAL_MATERIAL_ACADEMIC", got)

	got, err = resolveTags("  ")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = resolveTags("financial, bogus")
	assert.Error(t, err)
}

func TestDisplayValue(t *testing.T) {
	opts := []option{{ID: "id-1", Label: "Robotics"}}

	assert.Equal(t, "Robotics", displayValue("id-1", opts))
	assert.Equal(t, "unmatched", displayValue("unmatched", opts))
	assert.Equal(t, "plain", displayValue("plain", nil))
}
