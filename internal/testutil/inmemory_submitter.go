package testutil

import (
	"context"
	"sync"

	"github.com/flexprice/rentalbilling/internal/submission"
)

// InMemorySubmitter records submitted drops and can be told to fail
type InMemorySubmitter struct {
	mu     sync.Mutex
	events []*submission.DropEvent
	err    error
}

func NewInMemorySubmitter() *InMemorySubmitter {
	return &InMemorySubmitter{}
}

func (s *InMemorySubmitter) SubmitDrop(_ context.Context, event *submission.DropEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

// FailWith makes every following submission return err, nil clears it
func (s *InMemorySubmitter) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *InMemorySubmitter) Events() []*submission.DropEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*submission.DropEvent(nil), s.events...)
}

func (s *InMemorySubmitter) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
	s.err = nil
}
