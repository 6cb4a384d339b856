package confirm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolab-hr/kolabctl/internal/client/api"
)

type fakeDeleter struct {
	err   error
	paths []string
}

func (f *fakeDeleter) Delete(_ context.Context, path string) error {
	f.paths = append(f.paths, path)
	return f.err
}

type fakeNotifier struct {
	successes []string
	errors    []string
}

func (f *fakeNotifier) Successf(info string) { f.successes = append(f.successes, info) }
func (f *fakeNotifier) Errorf(info string)   { f.errors = append(f.errors, info) }

func TestStage(t *testing.T) {
	flow := NewFlow(&fakeDeleter{}, &fakeNotifier{})

	require.Nil(t, flow.Pending())

	err := flow.Stage(Request{Type: "User", Label: "Jane Doe", Endpoint: "/api/users/123"})
	require.NoError(t, err)

	pending := flow.Pending()
	require.NotNil(t, pending)
	assert.Equal(t, "User", pending.Type)
	assert.Equal(t, "Jane Doe", pending.Label)
	assert.Equal(t, "/api/users/123", pending.Endpoint)
}

func TestStageWhilePendingIsRejected(t *testing.T) {
	flow := NewFlow(&fakeDeleter{}, &fakeNotifier{})

	require.NoError(t, flow.Stage(Request{Type: "User", Endpoint: "/api/users/1"}))

	err := flow.Stage(Request{Type: "Company", Endpoint: "/api/companies/2"})
	assert.ErrorIs(t, err, ErrPending)

	// первый запрос остается на месте
	pending := flow.Pending()
	require.NotNil(t, pending)
	assert.Equal(t, "User", pending.Type)
}

func TestCancel(t *testing.T) {
	deleter := &fakeDeleter{}
	flow := NewFlow(deleter, &fakeNotifier{})

	require.NoError(t, flow.Stage(Request{Type: "User", Endpoint: "/api/users/1"}))
	flow.Cancel()

	assert.Nil(t, flow.Pending())
	assert.Empty(t, deleter.paths)

	// после отмены можно ставить следующий запрос
	assert.NoError(t, flow.Stage(Request{Type: "Company", Endpoint: "/api/companies/2"}))
}

func TestConfirmSuccess(t *testing.T) {
	deleter := &fakeDeleter{}
	notifier := &fakeNotifier{}
	flow := NewFlow(deleter, notifier)

	refreshed := 0
	require.NoError(t, flow.Stage(Request{
		Type:     "User",
		Label:    "Jane Doe",
		Endpoint: "/api/users/123",
		Refresh:  func() { refreshed++ },
	}))

	ok := flow.Confirm(context.Background())
	assert.True(t, ok)
	assert.Equal(t, []string{"/api/users/123"}, deleter.paths)
	assert.Equal(t, 1, refreshed)
	require.Len(t, notifier.successes, 1)
	assert.Equal(t, "User Jane Doe deleted.", notifier.successes[0])
	assert.Nil(t, flow.Pending())
}

func TestConfirmFailureSkipsRefresh(t *testing.T) {
	deleter := &fakeDeleter{err: &api.StatusError{StatusCode: 500}}
	notifier := &fakeNotifier{}
	flow := NewFlow(deleter, notifier)

	refreshed := 0
	require.NoError(t, flow.Stage(Request{
		Type:     "Collaboration",
		Endpoint: "/api/collaborations/9",
		Refresh:  func() { refreshed++ },
	}))

	ok := flow.Confirm(context.Background())
	assert.False(t, ok)
	assert.Equal(t, 0, refreshed)
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, "An unknown error occurred whilst trying to delete collaboration.", notifier.errors[0])
	assert.Nil(t, flow.Pending())
}

func TestConfirmConnectivityWording(t *testing.T) {
	deleter := &fakeDeleter{err: api.ErrConnectivity}
	notifier := &fakeNotifier{}
	flow := NewFlow(deleter, notifier)

	require.NoError(t, flow.Stage(Request{Type: "User", Endpoint: "/api/users/1"}))

	assert.False(t, flow.Confirm(context.Background()))
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, "An error occurred whilst trying to connect to server.", notifier.errors[0])
}

func TestConfirmWithoutStaged(t *testing.T) {
	deleter := &fakeDeleter{}
	flow := NewFlow(deleter, &fakeNotifier{})

	assert.False(t, flow.Confirm(context.Background()))
	assert.Empty(t, deleter.paths)
}
