package events

import (
	"errors"
	"testing"

	"github.com/fairwaylab/fairway_crm/src/internal/domain/round"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler 測試用訂閱者：記錄收到的事件
type recordingHandler struct {
	eventType string
	received  []shared.DomainEvent
	err       error
}

func (h *recordingHandler) Handle(event shared.DomainEvent) error {
	h.received = append(h.received, event)
	return h.err
}

func (h *recordingHandler) EventType() string {
	return h.eventType
}

// Test 1: Subscribers only receive their own event type
func TestInMemoryEventBus_RoutesByEventType(t *testing.T) {
	// Arrange
	bus := NewInMemoryEventBus()
	started := &recordingHandler{eventType: "round.session_started"}
	finished := &recordingHandler{eventType: "round.session_finished"}

	require.NoError(t, bus.Subscribe(started.EventType(), started))
	require.NoError(t, bus.Subscribe(finished.EventType(), finished))

	sessionID := round.NewSessionID()

	// Act
	err := bus.Publish(round.NewSessionStartedEvent(sessionID))

	// Assert
	require.NoError(t, err)
	assert.Len(t, started.received, 1)
	assert.Empty(t, finished.received)
	assert.Equal(t, sessionID.String(), started.received[0].AggregateID())
}

// Test 2: PublishBatch delivers in order and stops at the first failure
func TestInMemoryEventBus_PublishBatch_StopsOnError(t *testing.T) {
	// Arrange
	bus := NewInMemoryEventBus()
	handlerErr := errors.New("downstream unavailable")

	failing := &recordingHandler{eventType: "round.session_started", err: handlerErr}
	after := &recordingHandler{eventType: "round.session_finished"}

	require.NoError(t, bus.Subscribe(failing.EventType(), failing))
	require.NoError(t, bus.Subscribe(after.EventType(), after))

	sessionID := round.NewSessionID()
	batch := []shared.DomainEvent{
		round.NewSessionStartedEvent(sessionID),
		round.NewSessionFinishedEvent(sessionID),
	}

	// Act
	err := bus.PublishBatch(batch)

	// Assert
	assert.ErrorIs(t, err, handlerErr)
	assert.Len(t, failing.received, 1)
	assert.Empty(t, after.received, "delivery stops at the first failing event")
}

// Test 3: Publishing with no subscribers is a no-op
func TestInMemoryEventBus_NoSubscribers_NoError(t *testing.T) {
	bus := NewInMemoryEventBus()

	err := bus.Publish(round.NewSessionStartedEvent(round.NewSessionID()))

	assert.NoError(t, err)
}

// Test 4: Multiple subscribers on one type all receive the event
func TestInMemoryEventBus_MultipleSubscribers(t *testing.T) {
	// Arrange
	bus := NewInMemoryEventBus()
	first := &recordingHandler{eventType: "round.player_removed"}
	second := &recordingHandler{eventType: "round.player_removed"}

	require.NoError(t, bus.Subscribe(first.EventType(), first))
	require.NoError(t, bus.Subscribe(second.EventType(), second))

	// Act
	err := bus.Publish(round.NewPlayerRemovedEvent(round.NewSessionID(), round.NewPlayerID()))

	// Assert
	require.NoError(t, err)
	assert.Len(t, first.received, 1)
	assert.Len(t, second.received, 1)
}