// Package notify is the transient notification channel of the client - the
// terminal counterpart of the web frontend's toast popups. One Center is
// created at startup and passed explicitly to everything that reports
// outcomes to the user.
package notify

import "sync"

// Kind classifies a notification.
type Kind int

const (
	Success Kind = iota
	Error
)

// Notification is one user-facing transient message.
type Notification struct {
	Kind Kind
	Info string
}

// Listener receives each notification as it is published.
type Listener func(Notification)

// Center collects notifications. Publishing never blocks; an optional
// listener (the CLI printer) sees each message immediately, while the UI
// drains the queue on its own schedule.
type Center struct {
	mu       sync.Mutex
	pending  []Notification
	listener Listener
}

// NewCenter creates a notification center with an optional listener.
func NewCenter(listener Listener) *Center {
	return &Center{listener: listener}
}

// Publish appends a notification and forwards it to the listener.
func (c *Center) Publish(n Notification) {
	c.mu.Lock()
	c.pending = append(c.pending, n)
	listener := c.listener
	c.mu.Unlock()

	if listener != nil {
		listener(n)
	}
}

// Successf publishes a success notification.
func (c *Center) Successf(info string) {
	c.Publish(Notification{Kind: Success, Info: info})
}

// Errorf publishes an error notification.
func (c *Center) Errorf(info string) {
	c.Publish(Notification{Kind: Error, Info: info})
}

// Drain returns and clears the pending notifications in publish order.
func (c *Center) Drain() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	pending := c.pending
	c.pending = nil
	return pending
}
