// Package form implements the generic entity form: one engine parametrized
// by a per-entity field table instead of seven copies of the same logic.
// A Form holds the current field values next to a per-field validity map;
// it is built fresh every time a form is opened and discarded when the form
// closes or the submission succeeds.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/kolab-hr/kolabctl/internal/client/api"
	"github.com/kolab-hr/kolabctl/internal/validation"
)

// Values maps field names to raw input values.
type Values map[string]string

//go:generate moq -out submitter_mock.go . Submitter

// Submitter issues the create/update calls. Satisfied by the API client.
type Submitter interface {
	Create(ctx context.Context, path string, body any) error
	Update(ctx context.Context, path string, body any) error
}

// Notifier surfaces outcomes to the user. Satisfied by notify.Center.
type Notifier interface {
	Successf(info string)
	Errorf(info string)
}

// Field describes one entry of an entity's field table.
type Field struct {
	// Name is the wire/form name of the field (e.g. "industryId")
	Name string

	// Label is the prompt shown for the field
	Label string

	// Default seeds the field when no existing record is loaded
	Default string

	// Validator, when set, is re-run on every change of this field.
	// Fields without a validator are always valid.
	Validator validation.Func

	// CrossValidator replaces Validator for rules that depend on another
	// field's current value (project end date vs start date)
	CrossValidator func(v Values, input string) bool

	// Trim trims surrounding whitespace before serialization
	Trim bool

	// Invalidates lists fields reset to empty and revalidated when this
	// field changes (collaboration: companyId resets contactId)
	Invalidates []string

	// Revalidates lists fields whose validators are re-run against their
	// current values when this field changes (start date -> end date)
	Revalidates []string
}

// Messages carries the per-entity notification wording.
type Messages struct {
	// Noun appears in error messages ("Invalid company details.")
	Noun string

	// Title appears in success and not-found messages ("Company")
	Title string

	// CreateAction/CreateVerb are the verb pair for create mode
	// ("add"/"added" for most entities, "create"/"created" for
	// categories and industries)
	CreateAction string
	CreateVerb   string

	// Privilege is the full 403 message for this entity
	Privilege string

	// DisplayName derives the record name shown in the success message;
	// an empty result drops the name ("Collaboration added.")
	DisplayName func(v Values) string
}

// Spec is the complete description of one entity form.
type Spec struct {
	// Entity is the form's key, e.g. "company"
	Entity string

	// Path is the collection endpoint; updates append "/<id>"
	Path string

	Fields   []Field
	Messages Messages

	// Serialize builds the wire payload from the (already trimmed) values
	Serialize func(v Values) (any, error)
}

// fieldByName returns the field table entry, nil when unknown.
func (s *Spec) fieldByName(name string) *Field {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i]
		}
	}
	return nil
}

// Form is the state of one open entity form.
type Form struct {
	spec     Spec
	recordID string
	values   Values
	valid    map[string]bool

	submitting atomic.Bool
}

// New builds a fresh form state. recordID selects update mode; existing
// seeds the values of a loaded record (all fields start valid - the record
// already passed validation server-side). In create mode the values come
// from defaults merged over the field defaults, and each field starts with
// its validator's verdict on that initial value, so required empty fields
// start invalid while optional and preselected ones start valid.
func New(spec Spec, recordID string, existing, defaults Values) *Form {
	f := &Form{
		spec:   spec,
		values: Values{},
		valid:  map[string]bool{},
	}

	if existing != nil {
		f.recordID = recordID
		for _, fld := range spec.Fields {
			f.values[fld.Name] = existing[fld.Name]
			f.valid[fld.Name] = true
		}
		return f
	}

	for _, fld := range spec.Fields {
		value := fld.Default
		if v, ok := defaults[fld.Name]; ok {
			value = v
		}
		f.values[fld.Name] = value
		f.valid[fld.Name] = f.validate(&fld, value)
	}
	return f
}

// validate runs the field's validator against the input.
func (f *Form) validate(fld *Field, input string) bool {
	switch {
	case fld.CrossValidator != nil:
		return fld.CrossValidator(f.values, input)
	case fld.Validator != nil:
		return fld.Validator(input)
	default:
		return true
	}
}

// Set records a field change and recomputes the affected validity entries.
func (f *Form) Set(name, raw string) {
	fld := f.spec.fieldByName(name)
	if fld == nil {
		return
	}

	f.values[name] = raw
	f.valid[name] = f.validate(fld, raw)

	for _, dep := range fld.Invalidates {
		depFld := f.spec.fieldByName(dep)
		if depFld == nil {
			continue
		}
		f.values[dep] = ""
		f.valid[dep] = f.validate(depFld, "")
	}

	for _, dep := range fld.Revalidates {
		depFld := f.spec.fieldByName(dep)
		if depFld == nil {
			continue
		}
		f.valid[dep] = f.validate(depFld, f.values[dep])
	}
}

// Value returns the current raw value of a field.
func (f *Form) Value(name string) string {
	return f.values[name]
}

// FieldValid returns the current validity of a field.
func (f *Form) FieldValid(name string) bool {
	return f.valid[name]
}

// Valid reports whether every field is valid - the submit gate.
func (f *Form) Valid() bool {
	for _, ok := range f.valid {
		if !ok {
			return false
		}
	}
	return true
}

// IsUpdate reports whether the form edits an existing record.
func (f *Form) IsUpdate() bool {
	return f.recordID != ""
}

// Spec returns the form's spec.
func (f *Form) Spec() Spec {
	return f.spec
}

// Submit validates, serializes and sends the form. It returns true when the
// form should close (the record was saved and refresh was invoked). A submit
// while another one is in flight is rejected outright; the guard is a real
// check-and-set, not a disabled button.
func (f *Form) Submit(ctx context.Context, client Submitter, notifier Notifier, refresh func()) bool {
	if !f.submitting.CompareAndSwap(false, true) {
		return false
	}
	defer f.submitting.Store(false)

	msg := f.spec.Messages

	if !f.Valid() {
		notifier.Errorf(fmt.Sprintf("Invalid %s details.", msg.Noun))
		return false
	}

	// Трим уходит только в тело запроса; поля открытой формы остаются как введены
	values := Values{}
	for _, fld := range f.spec.Fields {
		v := f.values[fld.Name]
		if fld.Trim {
			v = strings.TrimSpace(v)
		}
		values[fld.Name] = v
	}

	body, err := f.spec.Serialize(values)
	if err != nil {
		notifier.Errorf(fmt.Sprintf("Invalid %s details.", msg.Noun))
		return false
	}

	if f.IsUpdate() {
		err = client.Update(ctx, f.spec.Path+"/"+f.recordID, body)
	} else {
		err = client.Create(ctx, f.spec.Path, body)
	}

	switch {
	case err == nil:
		name := msg.DisplayName(values)
		verb := "updated"
		if !f.IsUpdate() {
			verb = msg.CreateVerb
		}
		if name != "" {
			notifier.Successf(fmt.Sprintf("%s %s %s.", msg.Title, name, verb))
		} else {
			notifier.Successf(fmt.Sprintf("%s %s.", msg.Title, verb))
		}
		if refresh != nil {
			refresh()
		}
		return true

	case errors.Is(err, api.ErrBadRequest):
		notifier.Errorf(fmt.Sprintf("Invalid %s details.", msg.Noun))

	case errors.Is(err, api.ErrForbidden):
		notifier.Errorf(msg.Privilege)

	case errors.Is(err, api.ErrNotFound):
		notifier.Errorf(fmt.Sprintf("%s with id %s does not exist.", msg.Title, f.recordID))

	case errors.Is(err, api.ErrConnectivity):
		notifier.Errorf("An error occurred whilst trying to connect to server.")

	default:
		action := "update"
		if !f.IsUpdate() {
			action = msg.CreateAction
		}
		notifier.Errorf(fmt.Sprintf("An unknown error occurred whilst trying to %s %s.", action, msg.Noun))
	}

	return false
}
