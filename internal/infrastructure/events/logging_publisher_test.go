package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	cblog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vlightbox/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/vlightbox/internal/lightbox"
	"github.com/alexisbeaulieu97/vlightbox/internal/ports"
)

func newTestPublisher(t *testing.T) (*LoggingPublisher, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	logger, err := logging.New(logging.Options{
		Writer:    buf,
		Level:     "info",
		Layer:     "test",
		Component: "publisher",
		Formatter: cblog.JSONFormatter,
	})
	require.NoError(t, err)
	return NewLoggingPublisher(logger), buf
}

func TestLoggingPublisherLogsPayload(t *testing.T) {
	t.Parallel()

	publisher, buf := newTestPublisher(t)

	ctx := ports.WithCorrelationID(context.Background(), "abc-123")
	require.NoError(t, publisher.Publish(ctx, lightbox.NavigationRequested{Index: 2}))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "lightbox event", entry["msg"])
	require.Equal(t, lightbox.EventNavigationRequested, entry["event_type"])
	require.Equal(t, "abc-123", entry["correlation_id"])
	require.Equal(t, float64(2), entry["index"])
}

func TestLoggingPublisherInvokesSubscribersUntilUnsubscribed(t *testing.T) {
	t.Parallel()

	publisher, _ := newTestPublisher(t)

	var closed int
	sub, err := publisher.Subscribe(lightbox.EventClosed, func(ctx context.Context, event ports.DomainEvent) error {
		closed++
		return nil
	})
	require.NoError(t, err)

	for _, event := range lightbox.RequestClose() {
		require.NoError(t, publisher.Publish(context.Background(), event))
	}
	require.Equal(t, 1, closed)

	sub.Unsubscribe()
	sub.Unsubscribe()
	require.NoError(t, publisher.Publish(context.Background(), lightbox.Closed{}))
	require.Equal(t, 1, closed)
}

func TestLoggingPublisherContinuesAfterHandlerError(t *testing.T) {
	t.Parallel()

	publisher, buf := newTestPublisher(t)

	var second bool
	_, err := publisher.Subscribe(lightbox.EventDownloadRequested, func(context.Context, ports.DomainEvent) error {
		return errors.New("boom")
	})
	require.NoError(t, err)
	_, err = publisher.Subscribe(lightbox.EventDownloadRequested, func(context.Context, ports.DomainEvent) error {
		second = true
		return nil
	})
	require.NoError(t, err)

	event := lightbox.DownloadRequested{Index: 0, Image: lightbox.Image{Src: "a.jpg"}}
	require.NoError(t, publisher.Publish(context.Background(), event))
	require.True(t, second)
	require.Contains(t, buf.String(), "event handler failed")
	require.Equal(t, 2, strings.Count(strings.TrimSpace(buf.String()), "\n")+1)
}
