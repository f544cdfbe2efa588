// posthog_client.go wraps the posthog.Client so callers need not care whether analytics is configured.
package utils

import (
	"fmt"
	"log/slog"

	"github.com/posthog/posthog-go"
)

// EventSink receives product usage events keyed by user.
type EventSink interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

// PosthogClient forwards usage events to PostHog. Built without an API key it drops every event.
type PosthogClient struct {
	client posthog.Client
	logger *slog.Logger
}

var _ EventSink = (*PosthogClient)(nil)

// NewPosthogClient creates the client, or a disabled one when apiKey is empty.
func NewPosthogClient(apiKey, endpoint string, logger *slog.Logger) (*PosthogClient, error) {
	if apiKey == "" {
		logger.Info("POSTHOG_API_KEY not set, usage events disabled")
		return &PosthogClient{logger: logger}, nil
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		return nil, fmt.Errorf("create posthog client: %w", err)
	}
	logger.Info("Posthog client initialized", slog.String("endpoint", endpoint))
	return &PosthogClient{client: client, logger: logger}, nil
}

// IsInitialized reports whether events are actually sent.
func (w *PosthogClient) IsInitialized() bool {
	return w.client != nil
}

func (w *PosthogClient) Enqueue(distinctID string, event string, properties map[string]any) {
	if w.client == nil {
		return
	}
	w.logger.Debug("Enqueueing event", slog.String("distinct_id", distinctID), slog.String("event", event))
	if err := w.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	}); err != nil {
		w.logger.Warn("Failed to enqueue posthog event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes queued events.
func (w *PosthogClient) Close() {
	if w.client == nil {
		return
	}
	if err := w.client.Close(); err != nil {
		w.logger.Warn("Failed to close posthog client", slog.String("error", err.Error()))
	}
}
