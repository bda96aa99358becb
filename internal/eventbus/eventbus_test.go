package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventVoiceResulted, func(e DomainEvent) { got <- e })

	b.Publish(VoiceResultedEvent{Attempt: 3, Text: "voice search"})

	select {
	case e := <-got:
		ev, ok := e.(VoiceResultedEvent)
		require.True(t, ok)
		assert.Equal(t, uint64(3), ev.Attempt)
		assert.Equal(t, "voice search", ev.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestSubscribersOnlySeeTheirType(t *testing.T) {
	b := New()
	defer b.Close()

	var wrong atomic.Int32
	b.Subscribe(EventImagePicked, func(DomainEvent) { wrong.Add(1) })

	got := make(chan struct{}, 1)
	b.Subscribe(EventQueryChanged, func(DomainEvent) { got <- struct{}{} })

	b.Publish(QueryChangedEvent{Query: "lens", Visible: 1})

	select {
	case <-got:
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
	assert.Equal(t, int32(0), wrong.Load())
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	var removed atomic.Int32
	unsubscribe := b.Subscribe(EventError, func(DomainEvent) { removed.Add(1) })
	unsubscribe()

	got := make(chan struct{}, 1)
	b.Subscribe(EventError, func(DomainEvent) { got <- struct{}{} })

	b.Publish(ErrorEvent{Message: "picker failed"})

	select {
	case <-got:
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
	// Give a stray handler time to run before asserting it never did
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), removed.Load())
}

func TestHandlerPanicDoesNotStopBus(t *testing.T) {
	b := New()
	defer b.Close()

	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })

	got := make(chan struct{}, 2)
	b.Subscribe(EventError, func(DomainEvent) { got <- struct{}{} })

	b.Publish(ErrorEvent{Message: "first"})
	b.Publish(ErrorEvent{Message: "second"})

	for i := 0; i < 2; i++ {
		select {
		case <-got:
		case <-time.After(2 * time.Second):
			t.Fatalf("event %d was not delivered", i)
		}
	}
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New()
	b.Close()

	require.NotPanics(t, func() {
		b.Publish(ConfigSavedEvent{Path: "x"})
	})
}
