package notify_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/amirasaad/transfers/pkg/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures delivered notifications and can be made to
// fail or panic on selected messages.
type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
	failOn   string
	panicOn  string
	block    chan struct{}
}

func (n *recordingNotifier) Notify(_ context.Context, accountID, message string) error {
	if n.block != nil {
		<-n.block
	}
	if n.panicOn != "" && message == n.panicOn {
		panic("notifier exploded")
	}
	if n.failOn != "" && message == n.failOn {
		return errors.New("delivery failed")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, fmt.Sprintf("%s: %s", accountID, message))
	return nil
}

func (n *recordingNotifier) delivered() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDeliversInOrder(t *testing.T) {
	t.Parallel()
	recorder := &recordingNotifier{}
	p := notify.NewPipeline(recorder, 16, discardLogger())

	for i := 0; i < 5; i++ {
		p.Enqueue(notify.NewEvent("Id-1", fmt.Sprintf("event %d", i)))
	}
	p.Close()

	got := recorder.delivered()
	require.Len(t, got, 5)
	for i, msg := range got {
		assert.Equal(t, fmt.Sprintf("Id-1: event %d", i), msg)
	}
}

func TestEnqueueNeverBlocksWhenBufferFull(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	recorder := &recordingNotifier{block: release}
	p := notify.NewPipeline(recorder, 1, discardLogger())

	// First event occupies the consumer; second fills the buffer; the rest
	// must drop without blocking.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			p.Enqueue(notify.NewEvent("Id-1", fmt.Sprintf("event %d", i)))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full buffer")
	}

	close(release)
	p.Close()
	assert.Less(t, len(recorder.delivered()), 10)
}

func TestDeliveryFailureDoesNotStallQueue(t *testing.T) {
	t.Parallel()
	recorder := &recordingNotifier{failOn: "bad"}
	p := notify.NewPipeline(recorder, 16, discardLogger())

	p.Enqueue(notify.NewEvent("Id-1", "first"))
	p.Enqueue(notify.NewEvent("Id-1", "bad"))
	p.Enqueue(notify.NewEvent("Id-1", "last"))
	p.Close()

	assert.Equal(t, []string{"Id-1: first", "Id-1: last"}, recorder.delivered())
}

func TestNotifierPanicIsAbsorbed(t *testing.T) {
	t.Parallel()
	recorder := &recordingNotifier{panicOn: "boom"}
	p := notify.NewPipeline(recorder, 16, discardLogger())

	p.Enqueue(notify.NewEvent("Id-1", "boom"))
	p.Enqueue(notify.NewEvent("Id-1", "after"))
	p.Close()

	assert.Equal(t, []string{"Id-1: after"}, recorder.delivered())
}

func TestCloseDrainsPendingEvents(t *testing.T) {
	t.Parallel()
	recorder := &recordingNotifier{}
	p := notify.NewPipeline(recorder, 64, discardLogger())

	for i := 0; i < 20; i++ {
		p.Enqueue(notify.NewEvent("Id-1", fmt.Sprintf("event %d", i)))
	}
	p.Close()

	assert.Len(t, recorder.delivered(), 20)
}

func TestEnqueueAfterCloseIsDiscarded(t *testing.T) {
	t.Parallel()
	recorder := &recordingNotifier{}
	p := notify.NewPipeline(recorder, 16, discardLogger())
	p.Close()

	p.Enqueue(notify.NewEvent("Id-1", "late"))
	assert.Empty(t, recorder.delivered())
}

func TestNewEvent(t *testing.T) {
	t.Parallel()
	e := notify.NewEvent("Id-1", "hello")
	assert.Equal(t, "Id-1", e.AccountID)
	assert.Equal(t, "hello", e.Message)
	assert.NotZero(t, e.ID)
	assert.False(t, e.OccurredAt.IsZero())
}
