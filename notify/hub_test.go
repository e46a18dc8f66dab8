package notify

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeAndPublish(t *testing.T) {
	hub := NewHub[string]()

	var got []string
	sub := hub.Subscribe(func(v string) { got = append(got, v) })
	require.NotNil(t, sub)
	require.NotEmpty(t, sub.ID())
	require.True(t, sub.IsActive())

	hub.Publish("a")
	hub.Publish("b")

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestDeliveryOrderFollowsSubscriptionOrder(t *testing.T) {
	hub := NewHub[int]()

	var order []string
	hub.Subscribe(func(int) { order = append(order, "first") })
	hub.Subscribe(func(int) { order = append(order, "second") })
	hub.Subscribe(func(int) { order = append(order, "third") })

	hub.Publish(1)

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub[int]()

	calls := 0
	sub := hub.Subscribe(func(int) { calls++ })

	hub.Publish(1)
	require.True(t, hub.Unsubscribe(sub))
	hub.Publish(2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, hub.Count())
	assert.Equal(t, StateCancelled, sub.State())
}

func TestUnsubscribeUnknown(t *testing.T) {
	hub := NewHub[int]()

	assert.False(t, hub.Unsubscribe(nil))

	other := NewHub[int]()
	sub := other.Subscribe(func(int) {})
	assert.False(t, hub.Unsubscribe(sub))
}

func TestPauseResume(t *testing.T) {
	hub := NewHub[int]()

	calls := 0
	sub := hub.Subscribe(func(int) { calls++ })

	sub.Pause()
	assert.Equal(t, StatePaused, sub.State())
	hub.Publish(1)
	assert.Equal(t, 0, calls)

	sub.Resume()
	hub.Publish(2)
	assert.Equal(t, 1, calls)

	// Paused subscriptions still count as registered.
	sub.Pause()
	assert.Equal(t, 1, hub.Count())
}

func TestPauseResumeAfterCancel(t *testing.T) {
	hub := NewHub[int]()
	sub := hub.Subscribe(func(int) {})

	sub.Cancel()
	sub.Pause()
	assert.Equal(t, StateCancelled, sub.State())
	sub.Resume()
	assert.Equal(t, StateCancelled, sub.State())
}

func TestNilHandler(t *testing.T) {
	hub := NewHub[int]()
	sub := hub.Subscribe(nil)

	require.NotNil(t, sub)
	assert.Equal(t, StateCancelled, sub.State())
	assert.Equal(t, 0, hub.Count())

	// Publishing must not panic.
	hub.Publish(1)
}

func TestPanicIsolation(t *testing.T) {
	hub := NewHub[int]()

	var got []int
	hub.Subscribe(func(int) { panic("boom") })
	hub.Subscribe(func(v int) { got = append(got, v) })

	hub.Publish(7)

	assert.Equal(t, []int{7}, got, "panic in one handler must not skip others")

	stats := hub.Stats()
	assert.Equal(t, uint64(1), stats.HandlerPanics)
	assert.Equal(t, uint64(1), stats.Delivered)
	assert.Equal(t, uint64(1), stats.Published)
}

func TestConcurrentSubscribeUnsubscribe(t *testing.T) {
	hub := NewHub[int]()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub := hub.Subscribe(func(int) {})
			hub.Publish(1)
			hub.Unsubscribe(sub)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, hub.Count())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "active", StateActive.String())
	assert.Equal(t, "paused", StatePaused.String())
	assert.Equal(t, "cancelled", StateCancelled.String())
	assert.Equal(t, "unknown", State(99).String())
}
