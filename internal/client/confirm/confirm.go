// Package confirm implements the staged delete flow shared by every screen:
// a delete action stages what to remove and how to refresh afterwards, and
// nothing is sent until the staged request is confirmed.
package confirm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/kolab-hr/kolabctl/internal/client/api"
)

//go:generate moq -out deleter_mock.go . Deleter

// Deleter issues the delete call. Satisfied by the API client.
type Deleter interface {
	Delete(ctx context.Context, path string) error
}

// Notifier surfaces outcomes to the user. Satisfied by notify.Center.
type Notifier interface {
	Successf(info string)
	Errorf(info string)
}

// Request is one staged deletion.
type Request struct {
	// Type is the displayed entity type, e.g. "User"
	Type string

	// Label identifies the record to the user, e.g. "Jane Doe"
	Label string

	// Endpoint is the exact resource path the DELETE goes to
	Endpoint string

	// Refresh re-fetches the owning list after a successful delete
	Refresh func()
}

// ErrPending is returned when a deletion is staged while another one
// already awaits confirmation.
var ErrPending = errors.New("a deletion is already awaiting confirmation")

// Flow is the process-wide delete confirmation state. One instance serves
// every screen, so at most one deletion is staged at a time.
type Flow struct {
	client   Deleter
	notifier Notifier

	mu      sync.Mutex
	pending *Request
}

// NewFlow builds the flow around the API client and notification sink.
func NewFlow(client Deleter, notifier Notifier) *Flow {
	return &Flow{client: client, notifier: notifier}
}

// Stage records a deletion to confirm. It fails with ErrPending while an
// earlier request is still staged.
func (f *Flow) Stage(req Request) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pending != nil {
		return ErrPending
	}
	f.pending = &req
	return nil
}

// Pending returns the staged request, nil when the flow is idle.
func (f *Flow) Pending() *Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending
}

// Cancel drops the staged request without sending anything.
func (f *Flow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = nil
}

// Confirm sends the staged DELETE. On success the stored refresh callback
// runs exactly once and a success notification is published; on failure the
// list stays as it is and an error notification is published. Either way
// the flow returns to idle.
func (f *Flow) Confirm(ctx context.Context) bool {
	f.mu.Lock()
	req := f.pending
	f.pending = nil
	f.mu.Unlock()

	if req == nil {
		return false
	}

	err := f.client.Delete(ctx, req.Endpoint)
	switch {
	case err == nil:
		if req.Label != "" {
			f.notifier.Successf(fmt.Sprintf("%s %s deleted.", req.Type, req.Label))
		} else {
			f.notifier.Successf(fmt.Sprintf("%s deleted.", req.Type))
		}
		if req.Refresh != nil {
			req.Refresh()
		}
		return true

	case errors.Is(err, api.ErrConnectivity):
		f.notifier.Errorf("An error occurred whilst trying to connect to server.")

	default:
		f.notifier.Errorf(fmt.Sprintf("An unknown error occurred whilst trying to delete %s.", strings.ToLower(req.Type)))
	}
	return false
}
