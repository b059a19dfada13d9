// Package notify is the toast side-channel: stores and handlers report
// user-visible events through a Notifier, and the presentation layer
// decides how to render them.
package notify

import (
	"context"
	"sync"

	"avtomaster/pkg/logger"
)

// Notification is a user-visible message.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Notifier receives notifications. Implementations must not fail; the
// emitting code treats delivery as fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Log forwards notifications to the application logger.
type Log struct {
	log *logger.Logger
}

// NewLog returns a logger-backed Notifier.
func NewLog(log *logger.Logger) *Log {
	return &Log{log: log}
}

// Notify logs the notification.
func (l *Log) Notify(ctx context.Context, n Notification) {
	l.log.Info(ctx, "notification", "title", n.Title, "description", n.Description)
}

// Recorder captures notifications for inspection in tests.
type Recorder struct {
	mu   sync.Mutex
	sent []Notification
}

// Notify records the notification.
func (r *Recorder) Notify(ctx context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

// Sent returns a copy of everything recorded so far.
func (r *Recorder) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.sent))
	copy(out, r.sent)
	return out
}

// Discard drops every notification.
type Discard struct{}

// Notify does nothing.
func (Discard) Notify(context.Context, Notification) {}
