package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/order"
)

// WebhookNotifier POSTs dispatch notices as JSON to a configured endpoint,
// typically a messaging bridge watched by the dispatch staff. The payload
// mirrors the notice: no customer identity crosses the wire.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

type noticeDoc struct {
	Code       string          `json:"code"`
	Address    string          `json:"address"`
	City       string          `json:"city"`
	DistanceKm float64         `json:"distance_km"`
	Total      string          `json:"total"`
	Items      []noticeItemDoc `json:"items"`
}

type noticeItemDoc struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// NewWebhookNotifier creates a notifier posting to url.
func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NotifyNewOrder delivers the notice to the webhook. A non-2xx answer is an
// error like any transport failure, so callers can park the notice and
// retry it later.
func (n *WebhookNotifier) NotifyNewOrder(ctx context.Context, notice order.DispatchNotice) error {
	items := make([]noticeItemDoc, 0, len(notice.Lines))
	for _, line := range notice.Lines {
		items = append(items, noticeItemDoc{Name: line.Name, Qty: line.Qty})
	}

	payload, err := json.Marshal(noticeDoc{
		Code:       notice.Code,
		Address:    notice.Address,
		City:       notice.City,
		DistanceKm: notice.DistanceKm,
		Total:      notice.Total,
		Items:      items,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch notice: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create dispatch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver dispatch notice: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("dispatch endpoint answered %d for order %s", resp.StatusCode, notice.Code)
	}

	return nil
}
