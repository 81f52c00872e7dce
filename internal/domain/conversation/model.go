package conversation

import (
	"math"
	"time"
)

// DefaultDelay is applied to events whose script does not specify a delay.
const DefaultDelay = 40 * time.Millisecond

// TimedEvent pairs an item with the pause taken before it is emitted.
type TimedEvent struct {
	Item  Item
	Delay time.Duration
}

// Event returns a TimedEvent using DefaultDelay.
func Event(item Item) TimedEvent {
	return TimedEvent{Item: item, Delay: DefaultDelay}
}

// EventAfter returns a TimedEvent emitted after the given delay.
func EventAfter(delay time.Duration, item Item) TimedEvent {
	return TimedEvent{Item: item, Delay: delay}
}

// Conversation is one scripted assistant reply.
type Conversation struct {
	Name   string
	Events []TimedEvent
}

// TotalDelay is the sum of all event delays, i.e. the minimum time needed to
// stream the conversation.
func (c Conversation) TotalDelay() time.Duration {
	var total time.Duration
	for _, ev := range c.Events {
		total += ev.Delay
	}
	return total
}

// Seconds converts a script delay expressed in seconds.
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
