package form

import (
	"context"
	"sync"
	"time"

	"github.com/navarrastar/landing-backend/pkg/models"
)

// Tracker records analytics events without blocking the caller
type Tracker interface {
	Track(event string, data map[string]any)
}

// EventSender delivers one analytics event; satisfied by landing.Client
type EventSender interface {
	Track(ctx context.Context, event models.AnalyticsEvent) error
}

type nopTracker struct{}

func (nopTracker) Track(string, map[string]any) {}

// BeaconTracker sends every event on its own goroutine and drops failures
type BeaconTracker struct {
	sender  EventSender
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewBeaconTracker creates a tracker whose sends give up after timeout
func NewBeaconTracker(sender EventSender, timeout time.Duration) *BeaconTracker {
	return &BeaconTracker{sender: sender, timeout: timeout}
}

func (t *BeaconTracker) Track(event string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
		defer cancel()
		_ = t.sender.Track(ctx, models.AnalyticsEvent{Event: event, Data: data})
	}()
}

// Wait blocks until every beacon sent so far has finished or timed out
func (t *BeaconTracker) Wait() {
	t.wg.Wait()
}

// PageView sends page_view, reporting "direct" when there is no referrer
func PageView(t Tracker, url, referrer string) {
	if referrer == "" {
		referrer = "direct"
	}
	t.Track(models.EventPageView, map[string]any{"url": url, "referrer": referrer})
}

// Click sends cta_click for a tracked element
func Click(t Tracker, action string) {
	t.Track(models.EventCTAClick, map[string]any{"action": action})
}
