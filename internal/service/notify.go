package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Shivanand-hulikatti/volunteer-connect/internal/model"
)

// Notifier receives the outcome of every store operation. Implementations
// must not call back into the Directory.
type Notifier interface {
	Notify(ctx context.Context, n model.Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, n model.Notification)

// Notify implements Notifier.
func (f NotifierFunc) Notify(ctx context.Context, n model.Notification) { f(ctx, n) }

// Discard drops every notification.
var Discard Notifier = NotifierFunc(func(context.Context, model.Notification) {})

// Notifiers fans a notification out to each member in order.
type Notifiers []Notifier

// Notify implements Notifier.
func (ns Notifiers) Notify(ctx context.Context, n model.Notification) {
	for _, x := range ns {
		x.Notify(ctx, n)
	}
}

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct {
	Logger *slog.Logger
}

// Notify implements Notifier.
func (l LogNotifier) Notify(ctx context.Context, n model.Notification) {
	if n.Kind == model.KindFailure {
		l.Logger.WarnContext(ctx, n.Message, "operation", n.Operation, "reason", n.Reason)
		return
	}
	l.Logger.InfoContext(ctx, n.Message, "operation", n.Operation, "kind", n.Kind)
}

// Feed keeps the most recent notifications in a fixed-size ring.
type Feed struct {
	mu    sync.Mutex
	items []model.Notification
	next  int
	full  bool
}

// NewFeed returns a Feed holding up to size notifications. size < 1 is treated as 1.
func NewFeed(size int) *Feed {
	if size < 1 {
		size = 1
	}
	return &Feed{items: make([]model.Notification, size)}
}

// Notify implements Notifier.
func (f *Feed) Notify(_ context.Context, n model.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[f.next] = n
	f.next = (f.next + 1) % len(f.items)
	if f.next == 0 {
		f.full = true
	}
}

// Recent returns the buffered notifications, oldest first.
func (f *Feed) Recent() []model.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.full {
		return append([]model.Notification(nil), f.items[:f.next]...)
	}
	out := make([]model.Notification, 0, len(f.items))
	out = append(out, f.items[f.next:]...)
	return append(out, f.items[:f.next]...)
}
