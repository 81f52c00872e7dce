package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/janhq/chat-demo-api/internal/domain/conversation"
)

// ErrStreamClosed is returned by Next after the stream was aborted.
var ErrStreamClosed = errors.New("stream closed")

// Serializer turns conversations into paced record streams.
type Serializer struct {
	encode func(conversation.Item) (Line, error)
}

// NewSerializer returns a Serializer producing JSON lines.
func NewSerializer() *Serializer {
	return &Serializer{encode: encodeLine}
}

// Stream returns a fresh, single use stream over the conversation's events.
func (s *Serializer) Stream(conv conversation.Conversation) *Stream {
	return &Stream{
		events: conv.Events,
		encode: s.encode,
	}
}

// Stream yields one encoded record per call to Next, in script order.
type Stream struct {
	events  []conversation.TimedEvent
	encode  func(conversation.Item) (Line, error)
	next    int
	aborted error
}

// Next waits for the next event's delay and returns its encoded line. It
// returns io.EOF once every event has been emitted. A cancelled context or an
// encoding failure ends the stream for good.
func (s *Stream) Next(ctx context.Context) (Line, error) {
	if s.aborted != nil {
		return Line{}, fmt.Errorf("%w: %w", ErrStreamClosed, s.aborted)
	}
	if s.next >= len(s.events) {
		return Line{}, io.EOF
	}

	ev := s.events[s.next]
	if err := wait(ctx, ev.Delay); err != nil {
		s.aborted = err
		return Line{}, err
	}

	line, err := s.encode(ev.Item)
	if err != nil {
		s.aborted = err
		return Line{}, err
	}
	s.next++
	return line, nil
}

// Emitted returns how many records have been returned so far.
func (s *Stream) Emitted() int {
	return s.next
}

// Len returns the total number of records in the stream.
func (s *Stream) Len() int {
	return len(s.events)
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
