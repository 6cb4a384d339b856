// Package validation holds the per-field validators of the entity forms.
// Every validator is a pure func(string) bool run on each field change; the
// rules reproduce the backend's constraints so a form that passes here is
// accepted by the server except for referential problems.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Func is a field validator. It receives the raw input and must not have
// side effects.
type Func func(input string) bool

// EmailPattern принимает простой формат local@domain.tld
var EmailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// PhonePattern accepts loose international numbers: optional +, optional
// parentheses around the first group, digits separated by -, space or dot.
var PhonePattern = regexp.MustCompile(`^\+?\(?[0-9]{3}\)?[-\s.]?[0-9]{3}[-\s.]?[0-9]{3,6}$`)

// WebLinkPattern accepts a domain name or IPv4 address with optional scheme,
// port, path, query string and fragment.
var WebLinkPattern = regexp.MustCompile(`^(?i)(https?://)?((([a-z\d]([a-z\d-]*[a-z\d])*)\.)+[a-z]{2,}|((\d{1,3}\.){3}\d{1,3}))(:\d+)?(/[-a-z\d%_.~+]*)*(\?[;&a-z\d%_.~+=-]*)?(#[-a-z\d_]*)?$`)

const (
	// MinNameLen/MaxNameLen bound every name-like field (entity names,
	// first/last names, nicknames).
	MinNameLen = 2
	MaxNameLen = 35

	// MinEmailLen/MaxEmailLen bound email and phone fields.
	MinEmailLen = 6
	MaxEmailLen = 55

	// MaxTextLen bounds free-text fields (description, comment).
	MaxTextLen = 475

	// MaxWebLinkLen bounds the company web link.
	MaxWebLinkLen = 55
)

// LengthBetween returns a validator accepting trimmed input of min..max runes.
func LengthBetween(min, max int) Func {
	return func(input string) bool {
		n := utf8.RuneCountInString(strings.TrimSpace(input))
		return n >= min && n <= max
	}
}

// MaxLength returns a validator accepting trimmed input of at most max runes.
// There is no lower bound, so empty input is accepted.
func MaxLength(max int) Func {
	return func(input string) bool {
		return utf8.RuneCountInString(strings.TrimSpace(input)) <= max
	}
}

// Name validates name-like fields: trimmed length 2..35.
var Name = LengthBetween(MinNameLen, MaxNameLen)

// Email validates trimmed length 6..55 plus the email pattern.
func Email(input string) bool {
	trimmed := strings.TrimSpace(input)
	n := utf8.RuneCountInString(trimmed)
	return n >= MinEmailLen && n <= MaxEmailLen && EmailPattern.MatchString(trimmed)
}

// Phone validates an optional phone number: empty is accepted; otherwise
// trimmed length 6..55 plus the phone pattern.
func Phone(input string) bool {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return true
	}
	n := utf8.RuneCountInString(trimmed)
	return n >= MinEmailLen && n <= MaxEmailLen && PhonePattern.MatchString(trimmed)
}

// WebLink validates an optional URL: empty is accepted; otherwise length at
// most 55 plus the URL-or-IP pattern.
func WebLink(input string) bool {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return true
	}
	return utf8.RuneCountInString(trimmed) <= MaxWebLinkLen && WebLinkPattern.MatchString(trimmed)
}

// IntBetween returns a validator for an optional numeric field: empty input
// is accepted; otherwise the input must parse as an integer in min..max and
// keep its string length within minLen..maxLen digits.
func IntBetween(min, max int64, minLen, maxLen int) Func {
	return func(input string) bool {
		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			return true
		}
		v, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return false
		}
		n := len(trimmed)
		return v >= min && v <= max && n >= minLen && n <= maxLen
	}
}

// Zip validates an optional zip code: 1..999999, at most 6 digits.
var Zip = IntBetween(1, 999999, 1, 6)

// Goal validates an optional project goal: 1..999999, at most 6 digits.
var Goal = IntBetween(1, 999999, 1, 6)

// AchievedValue validates an optional collaboration value: a number in
// 0..99999. Empty input is accepted.
func AchievedValue(input string) bool {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return true
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return false
	}
	return v >= 0 && v <= 99999
}

// CategoryTags validates the encoded collaboration category set: at least
// one tag must be selected.
func CategoryTags(encoded string) bool {
	return encoded != ""
}

// OneOf returns a validator accepting exactly the given options.
func OneOf(options ...string) Func {
	return func(input string) bool {
		for _, o := range options {
			if input == o {
				return true
			}
		}
		return false
	}
}

// NotEmpty accepts any non-empty trimmed input. Used for reference fields
// that hold a selected record id.
func NotEmpty(input string) bool {
	return strings.TrimSpace(input) != ""
}

// dateEpoch is the earliest acceptable project start date.
var dateEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// dateHorizon returns the latest acceptable project date, two years out.
func dateHorizon(now time.Time) time.Time {
	return now.AddDate(2, 0, 0)
}

// StartDate reports whether t is strictly after 1980-01-01 and strictly
// before now plus two years.
func StartDate(t, now time.Time) bool {
	return t.After(dateEpoch) && t.Before(dateHorizon(now))
}

// EndDate reports whether t is strictly after the start date and strictly
// before now plus two years.
func EndDate(t, start, now time.Time) bool {
	return t.After(start) && t.Before(dateHorizon(now))
}

// DateLayout is how the client reads and prints project dates.
const DateLayout = "2006-01-02"

// StartDateString validates a start date field holding a DateLayout value.
func StartDateString(input string) bool {
	t, err := time.Parse(DateLayout, strings.TrimSpace(input))
	if err != nil {
		return false
	}
	return StartDate(t, time.Now())
}

// EndDateAfter returns a validator for the end date field, bound to the
// current start value through the getter so the rule follows start date
// edits.
func EndDateAfter(start func() string) Func {
	return func(input string) bool {
		t, err := time.Parse(DateLayout, strings.TrimSpace(input))
		if err != nil {
			return false
		}
		s, err := time.Parse(DateLayout, strings.TrimSpace(start()))
		if err != nil {
			return false
		}
		return EndDate(t, s, time.Now())
	}
}
