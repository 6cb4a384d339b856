package models

// Months are the budget planning month options of the company form, in the
// order they are offered. "UNKNOWN" serializes to null.
var Months = []string{
	"UNKNOWN",
	"JANUARY",
	"FEBRUARY",
	"MARCH",
	"APRIL",
	"MAY",
	"JUNE",
	"JULY",
	"AUGUST",
	"SEPTEMBER",
	"OCTOBER",
	"NOVEMBER",
	"DECEMBER",
}

// ValidMonth reports whether m is one of the offered options.
func ValidMonth(m string) bool {
	for _, known := range Months {
		if known == m {
			return true
		}
	}
	return false
}

// Categorizations are the ABC categorization options. "Unknown" serializes
// to null.
var Categorizations = []string{"Unknown", "A", "B", "C"}

// ValidCategorization reports whether c is one of the offered options.
func ValidCategorization(c string) bool {
	for _, known := range Categorizations {
		if known == c {
			return true
		}
	}
	return false
}

// Authorizations are the user authorization options, default first.
var Authorizations = []string{"USER", "ADMINISTRATOR"}

// ValidAuthorization reports whether a is one of the offered options.
func ValidAuthorization(a string) bool {
	for _, known := range Authorizations {
		if known == a {
			return true
		}
	}
	return false
}

// ProjectTypes are the project type options as displayed, default first.
// They are upper-cased on serialization.
var ProjectTypes = []string{"External", "Internal"}

// ProjectTypeLabel maps a stored project type to its displayed form.
func ProjectTypeLabel(t ProjectType) string {
	switch t {
	case ProjectInternal:
		return "Internal"
	case ProjectExternal:
		return "External"
	}
	return string(t)
}

// ValidProjectType reports whether t is one of the displayed options.
func ValidProjectType(t string) bool {
	for _, known := range ProjectTypes {
		if known == t {
			return true
		}
	}
	return false
}
