package contract

import (
	"context"

	"github.com/mikiasgoitom/PetLikes/internal/domain/entity"
)

// DispatchStatus is the outcome of a notification attempt.
type DispatchStatus int

const (
	DispatchDelivered DispatchStatus = iota
	// DispatchSkipped means no endpoint is configured; it counts as success.
	DispatchSkipped
	DispatchFailed
)

func (s DispatchStatus) String() string {
	switch s {
	case DispatchDelivered:
		return "delivered"
	case DispatchSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// DispatchResult carries the status and, for failures, the cause.
type DispatchResult struct {
	Status DispatchStatus
	Err    error
}

// OK reports whether the caller may treat the notification as sent.
func (r DispatchResult) OK() bool {
	return r.Status != DispatchFailed
}

// INotificationDispatcher delivers events to the notifications service.
type INotificationDispatcher interface {
	Dispatch(ctx context.Context, n *entity.Notification) DispatchResult
}

// ILikeCountPublisher pushes counter changes to live subscribers.
type ILikeCountPublisher interface {
	PublishLikeCount(ctx context.Context, evt entity.LikeCountChanged) error
}
