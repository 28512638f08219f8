package external_services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mikiasgoitom/PetLikes/internal/domain/contract"
	"github.com/mikiasgoitom/PetLikes/internal/domain/entity"
	"github.com/mikiasgoitom/PetLikes/internal/infrastructure/httpclient"
)

// WebhookNotifier posts like events to the notifications service.
type WebhookNotifier struct {
	url     string
	timeout time.Duration
	client  *httpclient.Client
}

// NewWebhookNotifier returns a notifier for url. An empty url disables
// delivery and every dispatch reports DispatchSkipped.
func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	return &WebhookNotifier{
		url:     strings.TrimSpace(url),
		timeout: timeout,
		client:  httpclient.New(timeout),
	}
}

var _ contract.INotificationDispatcher = (*WebhookNotifier)(nil)

func (w *WebhookNotifier) Dispatch(ctx context.Context, n *entity.Notification) contract.DispatchResult {
	if w.url == "" {
		return contract.DispatchResult{Status: contract.DispatchSkipped}
	}
	if n == nil {
		return contract.DispatchResult{Status: contract.DispatchFailed, Err: errors.New("nil notification")}
	}

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	if err := w.client.PostJSON(ctx, w.url, n); err != nil {
		return contract.DispatchResult{Status: contract.DispatchFailed, Err: err}
	}
	return contract.DispatchResult{Status: contract.DispatchDelivered}
}
