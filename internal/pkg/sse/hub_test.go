package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesOnlyTargetUser(t *testing.T) {
	hub := NewHub()

	chA, cleanupA := hub.Subscribe("user-a")
	defer cleanupA()
	chB, cleanupB := hub.Subscribe("user-b")
	defer cleanupB()

	hub.Publish("user-a", Event{UserID: "user-a", Event: "notification", Data: "hello"})

	select {
	case event := <-chA:
		assert.Equal(t, "notification", event.Event)
	default:
		t.Fatal("expected an event for user-a")
	}

	select {
	case <-chB:
		t.Fatal("user-b must not receive user-a events")
	default:
	}
}

func TestCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("user-a")
	require.Equal(t, 1, hub.SubscriberCount("user-a"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("user-a"))

	// Publishing to a user with no streams is a no-op.
	hub.Publish("user-a", Event{Event: "notification"})
}

func TestPublishDoesNotBlockOnFullChannel(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-a")
	defer cleanup()

	// Fill the channel past its buffer; Publish must drop, not block.
	for i := 0; i < cap(ch)+5; i++ {
		hub.Publish("user-a", Event{Event: "notification", Data: i})
	}

	assert.Equal(t, cap(ch), len(ch))
}

func TestPublishToMany(t *testing.T) {
	hub := NewHub()

	chA, cleanupA := hub.Subscribe("user-a")
	defer cleanupA()
	chB, cleanupB := hub.Subscribe("user-b")
	defer cleanupB()

	hub.PublishToMany([]string{"user-a", "user-b"}, Event{Event: "notification"})

	assert.Len(t, chA, 1)
	assert.Len(t, chB, 1)
}
