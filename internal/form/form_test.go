package form

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolab-hr/kolabctl/internal/client/api"
	kolabapi "github.com/kolab-hr/kolabctl/pkg/api"
)

// fakeSubmitter records calls and returns a preset error.
type fakeSubmitter struct {
	err     error
	creates []string
	updates []string
	bodies  []any
}

func (f *fakeSubmitter) Create(_ context.Context, path string, body any) error {
	f.creates = append(f.creates, path)
	f.bodies = append(f.bodies, body)
	return f.err
}

func (f *fakeSubmitter) Update(_ context.Context, path string, body any) error {
	f.updates = append(f.updates, path)
	f.bodies = append(f.bodies, body)
	return f.err
}

// fakeNotifier collects published messages.
type fakeNotifier struct {
	successes []string
	errors    []string
}

func (f *fakeNotifier) Successf(info string) { f.successes = append(f.successes, info) }
func (f *fakeNotifier) Errorf(info string)   { f.errors = append(f.errors, info) }

func TestNewCreateMode(t *testing.T) {
	f := New(Company(), "", nil, nil)

	// обязательные пустые поля стартуют невалидными
	assert.False(t, f.FieldValid("name"))
	assert.False(t, f.FieldValid("industryId"))
	assert.False(t, f.FieldValid("country"))

	// необязательные и предзаполненные - валидными
	assert.True(t, f.FieldValid("zip"))
	assert.True(t, f.FieldValid("webLink"))
	assert.True(t, f.FieldValid("description"))
	assert.True(t, f.FieldValid("categorization"))
	assert.True(t, f.FieldValid("contactInFuture"))

	assert.Equal(t, "Unknown", f.Value("categorization"))
	assert.Equal(t, "UNKNOWN", f.Value("budgetPlanningMonth"))
	assert.Equal(t, "true", f.Value("contactInFuture"))

	assert.False(t, f.Valid())
	assert.False(t, f.IsUpdate())
}

func TestNewCreateModeWithDefaults(t *testing.T) {
	companyID := uuid.New().String()
	f := New(Collaboration(), "", nil, Values{"companyId": companyID})

	// контекстный id предвыбран и сразу валиден
	assert.Equal(t, companyID, f.Value("companyId"))
	assert.True(t, f.FieldValid("companyId"))
	assert.False(t, f.FieldValid("projectId"))

	assert.Equal(t, "TODO", f.Value("status"))
	assert.True(t, f.FieldValid("status"))
	assert.Equal(t, "0", f.Value("achievedValue"))
	assert.True(t, f.FieldValid("achievedValue"))
}

func TestNewEditMode(t *testing.T) {
	recordID := uuid.New().String()
	f := New(Category(), recordID, Values{"name": "Robotics"}, nil)

	// загруженная запись стартует полностью валидной
	assert.True(t, f.Valid())
	assert.True(t, f.IsUpdate())
	assert.Equal(t, "Robotics", f.Value("name"))
}

func TestSetRecomputesValidity(t *testing.T) {
	f := New(Category(), "", nil, nil)
	assert.False(t, f.FieldValid("name"))

	f.Set("name", "Robotics")
	assert.True(t, f.FieldValid("name"))
	assert.True(t, f.Valid())

	f.Set("name", "x")
	assert.False(t, f.FieldValid("name"))
}

func TestCompanyChangeResetsContact(t *testing.T) {
	f := New(Collaboration(), "", nil, nil)

	contactID := uuid.New().String()
	f.Set("contactId", contactID)
	assert.True(t, f.FieldValid("contactId"))

	// выбор другой компании сбрасывает контакт
	f.Set("companyId", uuid.New().String())
	assert.Equal(t, "", f.Value("contactId"))
	assert.False(t, f.FieldValid("contactId"))
}

func TestStartDateChangeRevalidatesEndDate(t *testing.T) {
	f := New(Project(), "", nil, nil)

	f.Set("startDate", "2024-06-01")
	f.Set("endDate", "2024-07-01")
	assert.True(t, f.FieldValid("endDate"))

	// сдвиг начала за конец делает конец невалидным без его изменения
	f.Set("startDate", "2024-08-01")
	assert.False(t, f.FieldValid("endDate"))

	f.Set("startDate", "2024-05-01")
	assert.True(t, f.FieldValid("endDate"))
}

func TestSubmitBlockedWhileInvalid(t *testing.T) {
	submitter := &fakeSubmitter{}
	notifier := &fakeNotifier{}

	f := New(Category(), "", nil, nil)
	ok := f.Submit(context.Background(), submitter, notifier, nil)

	assert.False(t, ok)
	// сеть не трогается, публикуется только ошибка
	assert.Empty(t, submitter.creates)
	assert.Empty(t, submitter.updates)
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, "Invalid category details.", notifier.errors[0])
}

func TestSubmitCreateSuccess(t *testing.T) {
	submitter := &fakeSubmitter{}
	notifier := &fakeNotifier{}
	refreshed := 0

	f := New(Category(), "", nil, nil)
	f.Set("name", "  Robotics  ")

	ok := f.Submit(context.Background(), submitter, notifier, func() { refreshed++ })

	assert.True(t, ok)
	require.Len(t, submitter.creates, 1)
	assert.Equal(t, "/api/categories", submitter.creates[0])
	assert.Equal(t, 1, refreshed)

	// значение отправляется обрезанным
	require.Len(t, submitter.bodies, 1)
	body, isReq := submitter.bodies[0].(kolabapi.CategoryRequest)
	require.True(t, isReq)
	assert.Equal(t, "Robotics", body.Name)

	require.Len(t, notifier.successes, 1)
	assert.Equal(t, "Category Robotics created.", notifier.successes[0])
}

func TestSubmitUpdateSuccess(t *testing.T) {
	submitter := &fakeSubmitter{}
	notifier := &fakeNotifier{}
	recordID := uuid.New().String()

	f := New(User(), recordID, Values{
		"name":          "Jane",
		"surname":       "Doe",
		"nickname":      "jdoe",
		"email":         "jane@example.com",
		"authorization": "USER",
		"description":   "",
	}, nil)

	ok := f.Submit(context.Background(), submitter, notifier, nil)

	assert.True(t, ok)
	require.Len(t, submitter.updates, 1)
	assert.Equal(t, "/api/users/"+recordID, submitter.updates[0])
	require.Len(t, notifier.successes, 1)
	assert.Equal(t, "User Jane Doe updated.", notifier.successes[0])
}

func TestSubmitErrorWording(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "bad request", err: api.ErrBadRequest, want: "Invalid user details."},
		{name: "forbidden", err: api.ErrForbidden, want: "Administrator privileges are required for manipulating users."},
		{name: "connectivity", err: api.ErrConnectivity, want: "An error occurred whilst trying to connect to server."},
		{name: "unknown", err: &api.StatusError{StatusCode: 500}, want: "An unknown error occurred whilst trying to add user."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			submitter := &fakeSubmitter{err: tt.err}
			notifier := &fakeNotifier{}

			f := New(User(), "", nil, nil)
			f.Set("name", "Jane")
			f.Set("surname", "Doe")
			f.Set("nickname", "jdoe")
			f.Set("email", "jane@example.com")
			require.True(t, f.Valid())

			ok := f.Submit(context.Background(), submitter, notifier, nil)
			assert.False(t, ok)
			require.Len(t, notifier.errors, 1)
			assert.Equal(t, tt.want, notifier.errors[0])
		})
	}
}

func TestSubmitNotFoundWording(t *testing.T) {
	submitter := &fakeSubmitter{err: api.ErrNotFound}
	notifier := &fakeNotifier{}
	recordID := uuid.New().String()

	f := New(Industry(), recordID, Values{"name": "Aerospace"}, nil)
	ok := f.Submit(context.Background(), submitter, notifier, nil)

	assert.False(t, ok)
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, "Industry with id "+recordID+" does not exist.", notifier.errors[0])
}

func TestSubmitPrivilegeWordingPerEntity(t *testing.T) {
	tests := []struct {
		spec Spec
		want string
	}{
		{spec: Category(), want: "Higher privileges are required for managing categories."},
		{spec: Industry(), want: "Higher privileges are required for managing industries."},
		{spec: Project(), want: "Moderator privileges are required for manipulating projects."},
		{spec: Contact(uuid.New()), want: "Project member privileges are required for manipulating contact."},
		{spec: Collaboration(), want: "Project member privileges are required for manipulating collaborations."},
	}

	for _, tt := range tests {
		t.Run(tt.spec.Entity, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.Messages.Privilege)
		})
	}
}

func TestCollaborationSuccessHasNoName(t *testing.T) {
	submitter := &fakeSubmitter{}
	notifier := &fakeNotifier{}

	f := New(Collaboration(), "", nil, Values{
		"projectId":     uuid.New().String(),
		"companyId":     uuid.New().String(),
		"responsibleId": uuid.New().String(),
		"contactId":     uuid.New().String(),
		"category":      "FINANCIAL",
	})
	require.True(t, f.Valid())

	ok := f.Submit(context.Background(), submitter, notifier, nil)
	assert.True(t, ok)
	require.Len(t, notifier.successes, 1)
	assert.Equal(t, "Collaboration added.", notifier.successes[0])
}

// blockingSubmitter parks Create until released, so a test can hold one
// submission in flight.
type blockingSubmitter struct {
	entered chan struct{}
	release chan struct{}
	calls   atomic.Int32
}

func (b *blockingSubmitter) Create(context.Context, string, any) error {
	b.calls.Add(1)
	close(b.entered)
	<-b.release
	return nil
}

func (b *blockingSubmitter) Update(context.Context, string, any) error { return nil }

func TestSubmitRejectsConcurrentSubmit(t *testing.T) {
	submitter := &blockingSubmitter{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	notifier := &fakeNotifier{}

	f := New(Category(), "", nil, nil)
	f.Set("name", "Robotics")

	done := make(chan bool, 1)
	go func() {
		done <- f.Submit(context.Background(), submitter, notifier, nil)
	}()

	<-submitter.entered

	// второй сабмит отклоняется, пока первый висит в сети
	assert.False(t, f.Submit(context.Background(), submitter, notifier, nil))
	assert.Equal(t, int32(1), submitter.calls.Load())

	close(submitter.release)
	assert.True(t, <-done)

	// после завершения форма снова принимает сабмит
	assert.True(t, f.Submit(context.Background(), &fakeSubmitter{}, notifier, nil))
}

func TestSubmitFailureKeepsRawFieldValues(t *testing.T) {
	submitter := &fakeSubmitter{err: api.ErrBadRequest}
	notifier := &fakeNotifier{}

	f := New(Category(), "", nil, nil)
	f.Set("name", "  Robotics  ")

	assert.False(t, f.Submit(context.Background(), submitter, notifier, nil))

	// тело запроса уходит обрезанным
	require.Len(t, submitter.bodies, 1)
	body, isReq := submitter.bodies[0].(kolabapi.CategoryRequest)
	require.True(t, isReq)
	assert.Equal(t, "Robotics", body.Name)

	// открытая форма показывает значение как его ввели
	assert.Equal(t, "  Robotics  ", f.Value("name"))
}
