package models

import "strings"

// CollaborationStatus is the fixed progression of a collaboration.
type CollaborationStatus string

const (
	StatusTodo         CollaborationStatus = "TODO"
	StatusContacted    CollaborationStatus = "CONTACTED"
	StatusPing         CollaborationStatus = "PING"
	StatusLetter       CollaborationStatus = "LETTER"
	StatusMeeting      CollaborationStatus = "MEETING"
	StatusSuccessful   CollaborationStatus = "SUCCESSFUL"
	StatusUnsuccessful CollaborationStatus = "UNSUCCESSFUL"
)

// Statuses lists every collaboration status in its fixed order.
var Statuses = []CollaborationStatus{
	StatusTodo,
	StatusContacted,
	StatusPing,
	StatusLetter,
	StatusMeeting,
	StatusSuccessful,
	StatusUnsuccessful,
}

// statusLabels are the display names shown in status dropdowns and tables.
var statusLabels = map[CollaborationStatus]string{
	StatusTodo:         "Todo",
	StatusContacted:    "Contacted",
	StatusPing:         "Pinged",
	StatusLetter:       "Offer sent",
	StatusMeeting:      "Meeting held",
	StatusSuccessful:   "Successful",
	StatusUnsuccessful: "Unsuccessful",
}

// Label returns the display name of the status, or the raw value for
// statuses this client does not know.
func (s CollaborationStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// ValidStatus reports whether s is one of the known statuses.
func ValidStatus(s string) bool {
	for _, known := range Statuses {
		if string(known) == s {
			return true
		}
	}
	return false
}

// CollaborationTag is one of the fixed collaboration category tags.
type CollaborationTag string

const (
	TagFinancial CollaborationTag = "FINANCIAL"
	TagMaterial  CollaborationTag = "MATERIAL"
	TagAcademic  CollaborationTag = "ACADEMIC"
)

// TagOrder is the canonical order the encoded form always follows.
var TagOrder = []CollaborationTag{TagFinancial, TagMaterial, TagAcademic}

const tagSeparator = "_"

// EncodeTags canonicalizes a tag selection into the wire form: the known
// tags, deduplicated, joined by "_" in canonical order. An empty selection
// encodes to nil, which the backend stores as null.
func EncodeTags(tags []CollaborationTag) *string {
	selected := map[CollaborationTag]bool{}
	for _, t := range tags {
		selected[t] = true
	}

	var parts []string
	for _, t := range TagOrder {
		if selected[t] {
			parts = append(parts, string(t))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	encoded := strings.Join(parts, tagSeparator)
	return &encoded
}

// DecodeTags parses the wire form back into the ordered tag set.
// Unknown segments are dropped; nil or empty input decodes to an empty set.
func DecodeTags(encoded *string) []CollaborationTag {
	if encoded == nil || *encoded == "" {
		return nil
	}

	selected := map[CollaborationTag]bool{}
	for _, part := range strings.Split(*encoded, tagSeparator) {
		selected[CollaborationTag(part)] = true
	}

	// Walking TagOrder restores canonical order regardless of input order.
	var tags []CollaborationTag
	for _, t := range TagOrder {
		if selected[t] {
			tags = append(tags, t)
		}
	}
	return tags
}

// ToggleTag adds the tag to the encoded set when absent and removes it when
// present, returning the re-encoded set. This is the checkbox behavior of
// the collaboration form.
func ToggleTag(encoded *string, tag CollaborationTag) *string {
	current := DecodeTags(encoded)
	for i, t := range current {
		if t == tag {
			return EncodeTags(append(current[:i], current[i+1:]...))
		}
	}
	return EncodeTags(append(current, tag))
}

// tagLabels are the display names of the category tags.
var tagLabels = map[CollaborationTag]string{
	TagFinancial: "Financial",
	TagMaterial:  "Material",
	TagAcademic:  "Academic",
}

// Label returns the display name of the tag.
func (t CollaborationTag) Label() string {
	if l, ok := tagLabels[t]; ok {
		return l
	}
	return string(t)
}
