package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "valid short name", input: "Ab", want: true},
		{name: "valid with spaces around", input: "  Acme  ", want: true},
		{name: "valid max length", input: "12345678901234567890123456789012345", want: true}, // 35
		{name: "too short after trim", input: " a ", want: false},
		{name: "empty", input: "", want: false},
		{name: "only spaces", input: "   ", want: false},
		{name: "too long", input: "123456789012345678901234567890123456", want: false}, // 36
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.input))
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "valid minimal", input: "a@b.co", want: true},
		{name: "valid six chars", input: "ab@c.de", want: true},
		{name: "valid with dots", input: "john.doe@example.com", want: true},
		{name: "not an email", input: "not-an-email", want: false},
		{name: "below length floor", input: "a@b.c", want: false},
		{name: "empty", input: "", want: false},
		{name: "missing tld", input: "john@example", want: false},
		{name: "too long", input: "a@" + strings.Repeat("b", 50) + ".com", want: false}, // 56 chars
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Email(tt.input))
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty is optional", input: "", want: true},
		{name: "valid plain", input: "123456789", want: true},
		{name: "valid international", input: "+385915555555", want: true},
		{name: "valid grouped", input: "+123 456 7890", want: true},
		{name: "valid dashed", input: "091-555-1234", want: true},
		{name: "letters", input: "callme", want: false},
		{name: "too short", input: "12345", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.input))
		})
	}
}

func TestWebLink(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty is optional", input: "", want: true},
		{name: "domain only", input: "example.com", want: true},
		{name: "with scheme", input: "https://example.com/about", want: true},
		{name: "ip address", input: "192.168.1.1:8080", want: true},
		{name: "not a link", input: "not a link", want: false},
		{name: "too long", input: "https://example.com/0123456789012345678901234567890123456789", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WebLink(tt.input))
		})
	}
}

func TestZipAndGoal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty is optional", input: "", want: true},
		{name: "minimum", input: "1", want: true},
		{name: "maximum", input: "999999", want: true},
		{name: "zero", input: "0", want: false},
		{name: "seven digits", input: "1000000", want: false},
		{name: "not a number", input: "10a00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Zip(tt.input))
			assert.Equal(t, tt.want, Goal(tt.input))
		})
	}
}

func TestAchievedValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty is optional", input: "", want: true},
		{name: "zero", input: "0", want: true},
		{name: "maximum", input: "99999", want: true},
		{name: "fractional", input: "1234.5", want: true},
		{name: "above maximum", input: "100000", want: false},
		{name: "negative", input: "-1", want: false},
		{name: "not a number", input: "many", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AchievedValue(tt.input))
		})
	}
}

func TestMaxLength(t *testing.T) {
	v := MaxLength(MaxTextLen)
	assert.True(t, v(""))
	assert.True(t, v("short description"))

	long := make([]rune, MaxTextLen+1)
	for i := range long {
		long[i] = 'x'
	}
	assert.False(t, v(string(long)))
	assert.True(t, v(string(long[:MaxTextLen])))
}

func TestOneOf(t *testing.T) {
	v := OneOf("USER", "ADMINISTRATOR")
	assert.True(t, v("USER"))
	assert.True(t, v("ADMINISTRATOR"))
	assert.False(t, v("user"))
	assert.False(t, v(""))
}

func TestStartDate(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "today", date: now, want: true},
		{name: "epoch boundary is excluded", date: time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC), want: false},
		{name: "day after epoch", date: time.Date(1980, 1, 2, 0, 0, 0, 0, time.UTC), want: true},
		{name: "before epoch", date: time.Date(1979, 12, 31, 0, 0, 0, 0, time.UTC), want: false},
		{name: "just inside horizon", date: now.AddDate(2, 0, -1), want: true},
		{name: "beyond horizon", date: now.AddDate(2, 0, 1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartDate(tt.date, now))
		})
	}
}

func TestEndDate(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, EndDate(start.AddDate(0, 0, 1), start, now))
	// конец раньше начала недопустим
	assert.False(t, EndDate(start.AddDate(0, 0, -1), start, now))
	assert.False(t, EndDate(start, start, now))
	assert.False(t, EndDate(now.AddDate(2, 0, 1), start, now))
}

func TestEndDateAfter(t *testing.T) {
	start := "2024-06-01"
	v := EndDateAfter(func() string { return start })

	assert.True(t, v("2024-07-01"))
	assert.False(t, v("2024-05-01"))
	assert.False(t, v("2024-06-01"))
	assert.False(t, v("not-a-date"))

	// правило следует за изменением начальной даты
	start = "2024-08-01"
	assert.False(t, v("2024-07-01"))
	assert.True(t, v("2024-09-01"))
}

func TestCategoryTags(t *testing.T) {
	assert.False(t, CategoryTags(""))
	assert.True(t, CategoryTags("FINANCIAL"))
	assert.True(t, CategoryTags("FINANCIAL_ACADEMIC"))
}
